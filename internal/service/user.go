package service

import (
	"errors"
	"fmt"
	"time"

	"wishlist-backend/internal/database/models"
	apperrors "wishlist-backend/internal/errors"
	"wishlist-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService manages account profiles
type UserService struct {
	repo     repository.UserRepositoryInterface
	validate *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface) *UserService {
	return &UserService{
		repo:     repo,
		validate: validator.New(),
	}
}

// RegisterRequest represents the payload for creating an account
type RegisterRequest struct {
	DisplayName string `json:"display_name" validate:"required,min=1,max=100"`
	Email       string `json:"email" validate:"required,email"`
	AvatarURL   string `json:"avatar_url" validate:"omitempty,url,max=400"`
	Birthday    string `json:"birthday" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateProfileRequest represents the payload for updating a profile
type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name" validate:"omitempty,min=1,max=100"`
	AvatarURL   *string `json:"avatar_url" validate:"omitempty,url,max=400"`
	Birthday    *string `json:"birthday" validate:"omitempty,datetime=2006-01-02"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	Birthday    *string   `json:"birthday,omitempty"`
	CreatedAt   string    `json:"created_at"`
}

// Register creates a new account
func (s *UserService) Register(req RegisterRequest) (*models.User, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	user := &models.User{
		DisplayName: req.DisplayName,
		Email:       req.Email,
		AvatarURL:   req.AvatarURL,
	}
	if req.Birthday != "" {
		birthday, err := time.Parse("2006-01-02", req.Birthday)
		if err != nil {
			return nil, apperrors.NewValidationError("birthday", "must be YYYY-MM-DD")
		}
		user.Birthday = &birthday
	}

	if err := s.repo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetByEmail looks up an account by email
func (s *UserService) GetByEmail(email string) (*models.User, error) {
	user, err := s.repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// GetProfile returns a user's profile
func (s *UserService) GetProfile(userID uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	response := toUserResponse(user)
	return &response, nil
}

// UpdateProfile applies partial updates to the caller's profile
func (s *UserService) UpdateProfile(userID uuid.UUID, req UpdateProfileRequest) (*UserResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	user, err := s.repo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if req.DisplayName != nil {
		user.DisplayName = *req.DisplayName
	}
	if req.AvatarURL != nil {
		user.AvatarURL = *req.AvatarURL
	}
	if req.Birthday != nil {
		if *req.Birthday == "" {
			user.Birthday = nil
		} else {
			birthday, err := time.Parse("2006-01-02", *req.Birthday)
			if err != nil {
				return nil, apperrors.NewValidationError("birthday", "must be YYYY-MM-DD")
			}
			user.Birthday = &birthday
		}
	}

	if err := s.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	response := toUserResponse(user)
	return &response, nil
}

func toUserResponse(u *models.User) UserResponse {
	response := UserResponse{
		ID:          u.ID,
		DisplayName: u.DisplayName,
		Email:       u.Email,
		AvatarURL:   u.AvatarURL,
		CreatedAt:   u.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if u.Birthday != nil {
		birthday := u.Birthday.Format("2006-01-02")
		response.Birthday = &birthday
	}
	return response
}
