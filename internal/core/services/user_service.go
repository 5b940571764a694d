package services

import (
	"context"
	"strings"

	"petcare-booking/internal/adapters/persistence/models"
	"petcare-booking/internal/adapters/persistence/repositories"
	"petcare-booking/internal/core/domain"
	"petcare-booking/internal/pkg/logger"
	"petcare-booking/internal/pkg/pagination"
	"petcare-booking/internal/pkg/password"
)

// User service errors
var (
	ErrNewPasswordRequired = domain.NewError(domain.ErrValidation, "new password is required")
)

// UserService handles profile management
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// UpdateProfileInput represents update profile input. Nil fields are left unchanged.
type UpdateProfileInput struct {
	Name  *string `json:"name" validate:"omitempty,max=120"`
	Email *string `json:"email" validate:"omitempty,max=191"`
	Phone *string `json:"phone" validate:"omitempty,max=30"`
}

// ChangePasswordInput represents change password input
type ChangePasswordInput struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword" validate:"max=72"`
}

// ListUsersOutput is a page of user summaries
type ListUsersOutput struct {
	Users []*models.UserResponse
	Total int64
}

// GetProfile gets own profile with pets
func (s *UserService) GetProfile(ctx context.Context, userID uint) (*models.ProfileResponse, error) {
	user, err := s.userRepo.GetByIDWithCats(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.ToProfile(), nil
}

// GetAdminProfile gets the caretaker self view
func (s *UserService) GetAdminProfile(ctx context.Context, userID uint) (*models.AdminProfile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.ToAdminProfile(), nil
}

// UpdateProfile updates name, email and phone of own profile
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, input *UpdateProfileInput) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = strings.TrimSpace(*input.Name)
	}
	if input.Phone != nil {
		user.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.Email != nil {
		email := strings.TrimSpace(*input.Email)
		if email != user.Email {
			exists, err := s.userRepo.ExistsByEmail(ctx, email)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, domain.ErrEmailTaken
			}
			user.Email = email
		}
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user.ToResponse(), nil
}

// ChangePassword changes own password after checking the old one
func (s *UserService) ChangePassword(ctx context.Context, userID uint, input *ChangePasswordInput) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if !password.Verify(input.OldPassword, user.Password) {
		return domain.ErrWrongPassword
	}

	if input.NewPassword == "" {
		return ErrNewPasswordRequired
	}

	hashedPassword, err := password.Hash(input.NewPassword)
	if err != nil {
		return err
	}

	if err := s.userRepo.UpdatePassword(ctx, user.ID, hashedPassword); err != nil {
		return err
	}

	log := logger.Get()
	log.Info().Uint("user_id", user.ID).Msg("password changed")
	return nil
}

// ListUsers lists users newest first
func (s *UserService) ListUsers(ctx context.Context, params *pagination.Params) (*ListUsersOutput, error) {
	users, total, err := s.userRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	out := make([]*models.UserResponse, len(users))
	for i, user := range users {
		out[i] = user.ToResponse()
	}

	return &ListUsersOutput{Users: out, Total: total}, nil
}
