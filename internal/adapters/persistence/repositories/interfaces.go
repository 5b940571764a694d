package repositories

import (
	"context"
	"time"

	"petcare-booking/internal/adapters/persistence/models"
	"petcare-booking/internal/pkg/pagination"
)

// UserRepository defines the credential store.
// Lookups return domain.ErrUserNotFound when the row is absent; writes that
// hit the unique email index return domain.ErrEmailTaken.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByIDWithCats(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Update(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, id uint, hash string) error
	List(ctx context.Context, params *pagination.Params) ([]*models.User, int64, error)
}

// BookingFilter narrows a booking listing. Zero fields are ignored.
type BookingFilter struct {
	UserID  uint
	AdminID uint
	Status  string
	Date    time.Time
}

// BookingRepository defines the booking store.
type BookingRepository interface {
	// CreateInFreeSlot inserts the booking unless another booking already
	// holds its (date, time), in which case it returns domain.ErrSlotConflict.
	CreateInFreeSlot(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id uint) (*models.Booking, error)
	List(ctx context.Context, filter BookingFilter, params *pagination.Params) ([]*models.Booking, int64, error)
	UpdateStatus(ctx context.Context, id uint, status string) (*models.Booking, error)
}
