package services

import (
	"context"
	"strings"

	"petcare-booking/internal/adapters/persistence/models"
	"petcare-booking/internal/adapters/persistence/repositories"
	"petcare-booking/internal/core/domain"
	"petcare-booking/internal/pkg/jwt"
	"petcare-booking/internal/pkg/logger"
	"petcare-booking/internal/pkg/password"
)

// Auth errors
var (
	ErrInvalidBirthday = domain.NewError(domain.ErrValidation, "birthday must be a date in YYYY-MM-DD format")
)

// AuthService handles registration and login
type AuthService struct {
	userRepo repositories.UserRepository
	codec    *jwt.Codec
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository, codec *jwt.Codec) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		codec:    codec,
	}
}

// CatInput represents a pet submitted at registration
type CatInput struct {
	Name  string  `json:"name" validate:"required,max=120"`
	Age   int     `json:"age" validate:"gte=0"`
	Needs *string `json:"needs"`
}

// RegisterInput represents registration input
type RegisterInput struct {
	Name     string     `json:"name" validate:"required,max=120"`
	Email    string     `json:"email" validate:"required,max=191"`
	Phone    string     `json:"phone" validate:"required,max=30"`
	Birthday string     `json:"birthday" validate:"required"`
	Password string     `json:"password" validate:"required,max=72"`
	Cats     []CatInput `json:"cats" validate:"dive"`
}

// LoginInput represents login input
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResult is the token plus the user summary
type LoginResult struct {
	Token string            `json:"token"`
	User  *models.LoginUser `json:"user"`
}

// Register creates a user with role user and its pets
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*models.ProfileResponse, error) {
	email := strings.TrimSpace(input.Email)

	birthday, err := models.ParseDate(strings.TrimSpace(input.Birthday))
	if err != nil {
		return nil, ErrInvalidBirthday
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailTaken
	}

	hashedPassword, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	cats := make([]models.Cat, 0, len(input.Cats))
	for _, c := range input.Cats {
		cats = append(cats, models.Cat{Name: c.Name, Age: c.Age, Needs: c.Needs})
	}

	user := &models.User{
		Name:     strings.TrimSpace(input.Name),
		Email:    email,
		Phone:    strings.TrimSpace(input.Phone),
		Birthday: birthday,
		Password: hashedPassword,
		Role:     string(domain.RoleUser),
		Cats:     cats,
	}

	// the unique email index still guards a concurrent duplicate
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	log := logger.Get()
	log.Info().Uint("user_id", user.ID).Int("cats", len(cats)).Msg("user registered")

	return user.ToProfile(), nil
}

// Login verifies credentials and issues a token
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.TrimSpace(input.Email))
	if err != nil {
		return nil, err
	}

	if !password.Verify(input.Password, user.Password) {
		return nil, domain.ErrWrongPassword
	}

	token, err := s.codec.Issue(user.Identity())
	if err != nil {
		return nil, err
	}

	log := logger.Get()
	log.Info().Uint("user_id", user.ID).Str("role", string(user.Identity().Role)).Msg("user logged in")

	return &LoginResult{
		Token: token,
		User:  user.ToLoginUser(),
	}, nil
}
