// Package repository provides data access for users, tweets, and taggings.
package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"chirp/internal/models"
)

// UserRepository is the directory of user accounts. Every lookup except
// Create treats inactive users as nonexistent; disabling an account makes it
// vanish from tagging, search, and authentication without a physical delete.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsernameOrEmail(ctx context.Context, ref string) (*models.User, error)
	IsActive(ctx context.Context, id uint) (bool, error)
	// SearchByUsername returns active users whose username contains query
	// (case-insensitive), ordered by username ascending, plus the total
	// match count.
	SearchByUsername(ctx context.Context, query string, limit, offset int) ([]models.UserSummary, int64, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// findOne runs a lookup restricted to active users, mapping a missing row to
// (nil, nil) rather than an error: absence is routine for tag resolution.
func (r *userRepository) findOne(ctx context.Context, query string, args ...interface{}) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Where(query, args...).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.findOne(ctx, "username = ?", username)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *userRepository) GetByUsernameOrEmail(ctx context.Context, ref string) (*models.User, error) {
	return r.findOne(ctx, "username = ? OR email = ?", ref, ref)
}

func (r *userRepository) IsActive(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ? AND active = ?", id, true).
		Count(&count).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *userRepository) SearchByUsername(ctx context.Context, query string, limit, offset int) ([]models.UserSummary, int64, error) {
	pattern := "%" + strings.ToLower(query) + "%"

	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("active = ?", true).
		Where("LOWER(username) LIKE ?", pattern).
		Count(&total).Error
	if err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	var users []models.UserSummary
	err = r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("active = ?", true).
		Where("LOWER(username) LIKE ?", pattern).
		Select("id", "username", "email").
		Order("username ASC").
		Limit(limit).
		Offset(offset).
		Scan(&users).Error
	if err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return users, total, nil
}
