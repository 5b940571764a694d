package repositories

import (
	"context"
	"errors"

	"petcare-booking/internal/adapters/persistence/models"
	"petcare-booking/internal/core/domain"
	"petcare-booking/internal/pkg/pagination"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// erDeadlock is returned by InnoDB when two creators hold the gap lock of
// the same free slot and both try to insert into it
const erDeadlock = 1213

// bookingRepository implements BookingRepository interface
type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

// CreateInFreeSlot checks the slot and inserts in one transaction.
// The locking read serializes creators once the slot row exists. Two
// creators racing for a free slot either hit the unique index
// idx_services_slot or deadlock on its gap lock; both mean the slot was
// taken by the other request.
func (r *bookingRepository) CreateInFreeSlot(ctx context.Context, booking *models.Booking) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&models.Booking{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(map[string]interface{}{"date": booking.Date, "time": booking.Time}).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrSlotConflict
		}

		return tx.Omit(clause.Associations).Create(booking).Error
	})
	if isSlotRace(err) {
		return domain.ErrSlotConflict
	}
	return err
}

func isSlotRace(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var myErr *mysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == erDeadlock
}

// GetByID gets a booking by ID
func (r *bookingRepository) GetByID(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// List lists bookings newest first with both parties preloaded
func (r *bookingRepository) List(ctx context.Context, filter BookingFilter, params *pagination.Params) ([]*models.Booking, int64, error) {
	var bookings []*models.Booking
	var total int64

	scope := func(db *gorm.DB) *gorm.DB {
		if filter.UserID != 0 {
			db = db.Where("user_id = ?", filter.UserID)
		}
		if filter.AdminID != 0 {
			db = db.Where("admin_id = ?", filter.AdminID)
		}
		if filter.Status != "" {
			db = db.Where("status = ?", filter.Status)
		}
		if !filter.Date.IsZero() {
			db = db.Where(map[string]interface{}{"date": filter.Date})
		}
		return db
	}

	if err := r.db.WithContext(ctx).Model(&models.Booking{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.db.WithContext(ctx).
		Scopes(scope).
		Preload("User").
		Preload("Admin").
		Order("created_at DESC, id DESC")
	if params != nil {
		query = query.Offset(params.Offset).Limit(params.Limit)
	}
	if err := query.Find(&bookings).Error; err != nil {
		return nil, 0, err
	}

	return bookings, total, nil
}

// UpdateStatus sets the status of a booking and returns the updated row
func (r *bookingRepository) UpdateStatus(ctx context.Context, id uint, status string) (*models.Booking, error) {
	booking, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if booking.Status != status {
		err = r.db.WithContext(ctx).
			Model(&models.Booking{}).
			Where("id = ?", id).
			Update("status", status).Error
		if err != nil {
			return nil, err
		}
		booking.Status = status
	}

	return booking, nil
}
