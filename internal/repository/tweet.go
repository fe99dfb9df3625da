package repository

import (
	"context"

	"gorm.io/gorm"

	"chirp/internal/models"
)

// feedOrder is the stable ordering for every feed: chronological, with the
// insertion id breaking timestamp ties.
const feedOrder = "tweets.created_at ASC, tweets.id ASC"

// TweetRepository provides persistence for tweets and tagging rows.
type TweetRepository interface {
	Create(ctx context.Context, tweet *models.Tweet) error
	// CreateTagging inserts a tagging row. It returns the raw storage error;
	// callers decide whether a constraint violation is fatal.
	CreateTagging(ctx context.Context, tweetID, userID uint) error
	// List returns one page of the global feed along with the total tweet
	// count.
	List(ctx context.Context, limit, offset int) ([]*models.Tweet, int64, error)
	GetByAuthor(ctx context.Context, userID uint) ([]*models.Tweet, error)
	GetTaggedIn(ctx context.Context, userID uint) ([]*models.Tweet, error)
}

type tweetRepository struct {
	db *gorm.DB
}

// NewTweetRepository creates a new tweet repository
func NewTweetRepository(db *gorm.DB) TweetRepository {
	return &tweetRepository{db: db}
}

func (r *tweetRepository) Create(ctx context.Context, tweet *models.Tweet) error {
	if err := r.db.WithContext(ctx).Create(tweet).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *tweetRepository) CreateTagging(ctx context.Context, tweetID, userID uint) error {
	tagging := models.Tagging{TweetID: tweetID, UserID: userID}
	return r.db.WithContext(ctx).Create(&tagging).Error
}

func (r *tweetRepository) List(ctx context.Context, limit, offset int) ([]*models.Tweet, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Tweet{}).Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	var tweets []*models.Tweet
	err := r.db.WithContext(ctx).
		Preload("User").
		Order(feedOrder).
		Limit(limit).
		Offset(offset).
		Find(&tweets).Error
	if err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return tweets, total, nil
}

func (r *tweetRepository) GetByAuthor(ctx context.Context, userID uint) ([]*models.Tweet, error) {
	var tweets []*models.Tweet
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		Order(feedOrder).
		Find(&tweets).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return tweets, nil
}

func (r *tweetRepository) GetTaggedIn(ctx context.Context, userID uint) ([]*models.Tweet, error) {
	var tweets []*models.Tweet
	err := r.db.WithContext(ctx).
		Preload("User").
		Joins("JOIN taggings ON taggings.tweet_id = tweets.id").
		Where("taggings.user_id = ?", userID).
		Order(feedOrder).
		Find(&tweets).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return tweets, nil
}
