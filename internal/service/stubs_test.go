package service

import (
	"context"

	"chirp/internal/models"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	createFn               func(context.Context, *models.User) error
	getByIDFn              func(context.Context, uint) (*models.User, error)
	getByUsernameFn        func(context.Context, string) (*models.User, error)
	getByEmailFn           func(context.Context, string) (*models.User, error)
	getByUsernameOrEmailFn func(context.Context, string) (*models.User, error)
	isActiveFn             func(context.Context, uint) (bool, error)
	searchByUsernameFn     func(context.Context, string, int, int) ([]models.UserSummary, int64, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsernameOrEmail(ctx context.Context, ref string) (*models.User, error) {
	return s.getByUsernameOrEmailFn(ctx, ref)
}
func (s *userRepoStub) IsActive(ctx context.Context, id uint) (bool, error) {
	return s.isActiveFn(ctx, id)
}
func (s *userRepoStub) SearchByUsername(ctx context.Context, query string, limit, offset int) ([]models.UserSummary, int64, error) {
	return s.searchByUsernameFn(ctx, query, limit, offset)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:               func(_ context.Context, _ *models.User) error { return nil },
		getByIDFn:              func(_ context.Context, _ uint) (*models.User, error) { return nil, nil },
		getByUsernameFn:        func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		getByEmailFn:           func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		getByUsernameOrEmailFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		isActiveFn:             func(_ context.Context, _ uint) (bool, error) { return true, nil },
		searchByUsernameFn: func(_ context.Context, _ string, _, _ int) ([]models.UserSummary, int64, error) {
			return nil, 0, nil
		},
	}
}

// tweetRepoStub is a stub for repository.TweetRepository.
type tweetRepoStub struct {
	createFn        func(context.Context, *models.Tweet) error
	createTaggingFn func(context.Context, uint, uint) error
	listFn          func(context.Context, int, int) ([]*models.Tweet, int64, error)
	getByAuthorFn   func(context.Context, uint) ([]*models.Tweet, error)
	getTaggedInFn   func(context.Context, uint) ([]*models.Tweet, error)
}

func (s *tweetRepoStub) Create(ctx context.Context, tweet *models.Tweet) error {
	return s.createFn(ctx, tweet)
}
func (s *tweetRepoStub) CreateTagging(ctx context.Context, tweetID, userID uint) error {
	return s.createTaggingFn(ctx, tweetID, userID)
}
func (s *tweetRepoStub) List(ctx context.Context, limit, offset int) ([]*models.Tweet, int64, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *tweetRepoStub) GetByAuthor(ctx context.Context, userID uint) ([]*models.Tweet, error) {
	return s.getByAuthorFn(ctx, userID)
}
func (s *tweetRepoStub) GetTaggedIn(ctx context.Context, userID uint) ([]*models.Tweet, error) {
	return s.getTaggedInFn(ctx, userID)
}

func noopTweetRepo() *tweetRepoStub {
	nextID := uint(0)
	return &tweetRepoStub{
		createFn: func(_ context.Context, tweet *models.Tweet) error {
			nextID++
			tweet.ID = nextID
			return nil
		},
		createTaggingFn: func(_ context.Context, _, _ uint) error { return nil },
		listFn:          func(_ context.Context, _, _ int) ([]*models.Tweet, int64, error) { return nil, 0, nil },
		getByAuthorFn:   func(_ context.Context, _ uint) ([]*models.Tweet, error) { return nil, nil },
		getTaggedInFn:   func(_ context.Context, _ uint) ([]*models.Tweet, error) { return nil, nil },
	}
}
