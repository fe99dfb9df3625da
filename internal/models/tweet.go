package models

import (
	"time"
)

// MaxTweetLength is the maximum tweet body length in characters.
const MaxTweetLength = 280

// Tweet is a single short text contribution authored by one user. Tweets are
// immutable once created; there is no edit or delete flow.
type Tweet struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	Content   string    `gorm:"not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Tagging marks a user as referenced within a specific tweet. The composite
// primary key enforces at most one tagging per (tweet, user) pair; a
// duplicate insert surfaces as gorm.ErrDuplicatedKey and is skipped by the
// caller rather than treated as a failure.
type Tagging struct {
	TweetID   uint      `gorm:"primaryKey;autoIncrement:false" json:"tweet_id"`
	UserID    uint      `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
