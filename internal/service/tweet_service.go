package service

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"chirp/internal/mention"
	"chirp/internal/models"
	"chirp/internal/observability"
	"chirp/internal/repository"
	"chirp/internal/validation"
)

// TweetService orchestrates tweet creation with tagging and assembles the
// read feeds.
type TweetService struct {
	tweetRepo repository.TweetRepository
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// CreateTweetResult is the outcome of a creation call: the persisted tweet
// and the usernames that were actually tagged. Candidates that failed to
// resolve are absent, not errors.
type CreateTweetResult struct {
	Tweet       *models.Tweet `json:"tweet"`
	TaggedUsers []string      `json:"tagged_users"`
}

// UserTweets bundles the two per-user read views: tweets the user authored
// and tweets the user was tagged in. Neither view is paginated.
type UserTweets struct {
	Authored []*models.Tweet `json:"tweets"`
	TaggedIn []*models.Tweet `json:"tagged_tweets"`
}

// NewTweetService creates a new tweet service
func NewTweetService(tweetRepo repository.TweetRepository, userRepo repository.UserRepository) *TweetService {
	return &TweetService{
		tweetRepo: tweetRepo,
		userRepo:  userRepo,
		logger:    observability.Logger,
	}
}

// tagCandidate identifies a prospective tag target either by user id
// (explicit mode) or by username (inline mode).
type tagCandidate struct {
	userID   uint
	username string
	byID     bool
}

// resolveTags looks up each candidate in input order, keeping hits and
// counting misses. A miss never aborts the batch, and duplicates are kept:
// the taggings table's composite key catches repeats at insert time.
func (s *TweetService) resolveTags(ctx context.Context, candidates []tagCandidate) ([]*models.User, int) {
	valid := make([]*models.User, 0, len(candidates))
	skipped := 0

	for _, c := range candidates {
		var user *models.User
		var err error
		if c.byID {
			user, err = s.userRepo.GetByID(ctx, c.userID)
		} else {
			user, err = s.userRepo.GetByUsername(ctx, c.username)
		}
		if err != nil {
			s.logger.WarnContext(ctx, "tag candidate lookup failed",
				"by_id", c.byID, "user_id", c.userID, "username", c.username, "error", err)
			skipped++
			continue
		}
		if user == nil {
			observability.TaggingsSkipped.WithLabelValues("not_found").Inc()
			skipped++
			continue
		}
		valid = append(valid, user)
	}

	return valid, skipped
}

// persistTaggings inserts one tagging row per resolved user. A duplicate-key
// violation (repeated candidate or a concurrent insert racing on the same
// pair) is skipped exactly like an unresolvable candidate; other storage
// errors are logged and the loop continues so every candidate gets its
// attempt. The tweet itself is already durable at this point and is never
// rolled back.
func (s *TweetService) persistTaggings(ctx context.Context, tweetID uint, users []*models.User) []string {
	taggedUsers := make([]string, 0, len(users))
	for _, user := range users {
		if err := s.tweetRepo.CreateTagging(ctx, tweetID, user.ID); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				observability.TaggingsSkipped.WithLabelValues("duplicate").Inc()
				continue
			}
			s.logger.ErrorContext(ctx, "tagging insert failed",
				"tweet_id", tweetID, "user_id", user.ID, "error", err)
			continue
		}
		observability.TaggingsCreated.Inc()
		taggedUsers = append(taggedUsers, user.Username)
	}
	return taggedUsers
}

func validateCreateInput(userID uint, content string) error {
	if userID == 0 {
		return models.NewValidationError("Invalid user reference")
	}
	if err := validation.ValidateTweetContent(content); err != nil {
		return models.NewValidationError(err.Error())
	}
	return nil
}

// CreateWithTags creates a tweet whose tag targets arrive as an explicit
// list of user ids. The tweet is persisted first, unconditionally; tag
// targets that do not exist (or are inactive) are skipped without error.
func (s *TweetService) CreateWithTags(ctx context.Context, userID uint, content string, taggedUserIDs []uint) (*CreateTweetResult, error) {
	if err := validateCreateInput(userID, content); err != nil {
		return nil, err
	}

	tweet := &models.Tweet{UserID: userID, Content: content}
	if err := s.tweetRepo.Create(ctx, tweet); err != nil {
		return nil, err
	}
	observability.TweetsCreated.WithLabelValues("explicit").Inc()

	candidates := make([]tagCandidate, 0, len(taggedUserIDs))
	for _, id := range taggedUserIDs {
		candidates = append(candidates, tagCandidate{userID: id, byID: true})
	}
	valid, _ := s.resolveTags(ctx, candidates)
	taggedUsers := s.persistTaggings(ctx, tweet.ID, valid)

	return &CreateTweetResult{Tweet: tweet, TaggedUsers: taggedUsers}, nil
}

// CreateWithInlineTags creates a tweet whose tag targets are @username
// mentions embedded in the content. Mentions are resolved before the tweet
// insert; unresolvable mentions are dropped without error.
func (s *TweetService) CreateWithInlineTags(ctx context.Context, userID uint, content string) (*CreateTweetResult, error) {
	if err := validateCreateInput(userID, content); err != nil {
		return nil, err
	}

	names := mention.Extract(content)
	candidates := make([]tagCandidate, 0, len(names))
	for _, name := range names {
		candidates = append(candidates, tagCandidate{username: name})
	}
	valid, _ := s.resolveTags(ctx, candidates)

	tweet := &models.Tweet{UserID: userID, Content: content}
	if err := s.tweetRepo.Create(ctx, tweet); err != nil {
		return nil, err
	}
	observability.TweetsCreated.WithLabelValues("inline").Inc()

	taggedUsers := s.persistTaggings(ctx, tweet.ID, valid)

	return &CreateTweetResult{Tweet: tweet, TaggedUsers: taggedUsers}, nil
}

// GetGlobalFeed returns one page of all tweets in chronological order, each
// joined to its author. The requested page is echoed back even when it is
// past the end of the result set.
func (s *TweetService) GetGlobalFeed(ctx context.Context, page, pageSize int) (*models.TweetPage, error) {
	if page < 1 || pageSize < 1 {
		return nil, models.NewValidationError("page and page size must be at least 1")
	}

	offset := (page - 1) * pageSize
	tweets, total, err := s.tweetRepo.List(ctx, pageSize, offset)
	if err != nil {
		return nil, err
	}
	if tweets == nil {
		tweets = []*models.Tweet{}
	}

	return &models.TweetPage{
		TotalItems:  total,
		TotalPages:  models.PageCount(total, pageSize),
		CurrentPage: page,
		Items:       tweets,
	}, nil
}

// GetTweetsForUser returns every tweet the user authored and every tweet the
// user was tagged in, both in chronological order. These views are
// intentionally unpaginated, unlike the global feed.
func (s *TweetService) GetTweetsForUser(ctx context.Context, userID uint) (*UserTweets, error) {
	authored, err := s.tweetRepo.GetByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}
	taggedIn, err := s.tweetRepo.GetTaggedIn(ctx, userID)
	if err != nil {
		return nil, err
	}

	if authored == nil {
		authored = []*models.Tweet{}
	}
	if taggedIn == nil {
		taggedIn = []*models.Tweet{}
	}

	return &UserTweets{Authored: authored, TaggedIn: taggedIn}, nil
}
