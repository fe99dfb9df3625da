// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered account capable of authoring and being tagged
// in tweets. Inactive users are invisible to every directory lookup; rows are
// never physically deleted.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Active    bool      `gorm:"not null;default:true" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Tweets    []Tweet   `gorm:"foreignKey:UserID" json:"tweets,omitempty"`
}

// UserSummary is the public slice of a user embedded in feeds and search
// results.
type UserSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Summary returns the public fields of the user.
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Username: u.Username, Email: u.Email}
}
