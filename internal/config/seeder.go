package config

import (
	"context"
	"errors"
	"fmt"

	"petcare-booking/internal/adapters/persistence/models"
	"petcare-booking/internal/adapters/persistence/repositories"
	"petcare-booking/internal/core/domain"
	"petcare-booking/internal/pkg/logger"
	"petcare-booking/internal/pkg/password"
)

// Seeder creates the caretaker account bookings are assigned to.
type Seeder struct {
	users repositories.UserRepository
	seed  SeedConfig
}

// NewSeeder creates a new seeder instance
func NewSeeder(users repositories.UserRepository, seed SeedConfig) *Seeder {
	return &Seeder{users: users, seed: seed}
}

// Run executes all seeders. It is safe to run repeatedly.
func (s *Seeder) Run(ctx context.Context) (*models.User, error) {
	log := logger.Get()
	log.Info().Msg("running database seeders")

	admin, err := s.seedAdminUser(ctx)
	if err != nil {
		return nil, err
	}

	log.Info().Uint("admin_id", admin.ID).Str("email", admin.Email).Msg("database seeding completed")
	return admin, nil
}

func (s *Seeder) seedAdminUser(ctx context.Context) (*models.User, error) {
	if s.seed.Email == "" || s.seed.Password == "" {
		return nil, errors.New("SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD are required")
	}

	existing, err := s.users.GetByEmail(ctx, s.seed.Email)
	switch {
	case err == nil:
		log := logger.Get()
		log.Info().Str("email", existing.Email).Msg("admin already exists, skipping")
		return existing, nil
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, err
	}

	birthday, err := models.ParseDate(s.seed.Birthday)
	if err != nil {
		return nil, fmt.Errorf("invalid SEED_ADMIN_BIRTHDAY: %w", err)
	}

	hashedPassword, err := password.Hash(s.seed.Password)
	if err != nil {
		return nil, err
	}

	admin := &models.User{
		Name:     s.seed.Name,
		Email:    s.seed.Email,
		Phone:    s.seed.Phone,
		Birthday: birthday,
		Password: hashedPassword,
		Role:     string(domain.RoleAdmin),
	}
	if err := s.users.Create(ctx, admin); err != nil {
		return nil, err
	}

	log := logger.Get()
	log.Info().Str("email", admin.Email).Msg("admin user created")
	return admin, nil
}
