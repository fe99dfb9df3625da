// Package service implements the application's business logic on top of the
// repository layer.
package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"chirp/internal/models"
	"chirp/internal/repository"
	"chirp/internal/validation"
)

// UserService handles registration, authentication, and the user directory
// policies (search) on top of UserRepository.
type UserService struct {
	userRepo       repository.UserRepository
	searchMinChars int
}

// RegisterInput is the payload for creating a new account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// NewUserService creates a new user service. searchMinChars is the minimum
// query length accepted by SearchByUsername.
func NewUserService(userRepo repository.UserRepository, searchMinChars int) *UserService {
	return &UserService{
		userRepo:       userRepo,
		searchMinChars: searchMinChars,
	}
}

// Register validates the input, checks username and email uniqueness, hashes
// the password, and creates the account.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateUsername(in.Username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	if existing, err := s.userRepo.GetByEmail(ctx, in.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, models.NewValidationError("Email already exists")
	}
	if existing, err := s.userRepo.GetByUsername(ctx, in.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, models.NewValidationError("Username already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Username: in.Username,
		Email:    in.Email,
		Password: string(hashed),
		Active:   true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies the given username-or-email and password against an
// active account. Inactive accounts fail exactly like wrong credentials.
func (s *UserService) Authenticate(ctx context.Context, ref, password string) (*models.User, error) {
	user, err := s.userRepo.GetByUsernameOrEmail(ctx, ref)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewUnauthorizedError("Invalid credentials or user is not active")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.NewUnauthorizedError("Invalid credentials or user is not active")
	}
	return user, nil
}

// IsActive reports whether the given user id refers to an active account.
func (s *UserService) IsActive(ctx context.Context, id uint) (bool, error) {
	return s.userRepo.IsActive(ctx, id)
}

// SearchByUsername returns a page of active users whose username contains
// query, ordered alphabetically. Queries shorter than the configured minimum
// are rejected before touching storage.
func (s *UserService) SearchByUsername(ctx context.Context, query string, page, pageSize int) (*models.UserPage, error) {
	if len(query) < s.searchMinChars {
		return nil, models.NewValidationError("Search keyword is too short")
	}
	if page < 1 || pageSize < 1 {
		return nil, models.NewValidationError("page and page size must be at least 1")
	}

	offset := (page - 1) * pageSize
	users, total, err := s.userRepo.SearchByUsername(ctx, query, pageSize, offset)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.UserSummary{}
	}

	return &models.UserPage{
		TotalItems:  total,
		TotalPages:  models.PageCount(total, pageSize),
		CurrentPage: page,
		Items:       users,
	}, nil
}
