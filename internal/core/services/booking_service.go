package services

import (
	"context"
	"errors"
	"strings"

	"petcare-booking/internal/adapters/persistence/models"
	"petcare-booking/internal/adapters/persistence/repositories"
	"petcare-booking/internal/core/domain"
	"petcare-booking/internal/pkg/logger"
	"petcare-booking/internal/pkg/metrics"
	"petcare-booking/internal/pkg/pagination"
)

// Booking service errors
var (
	ErrInvalidDate = domain.NewError(domain.ErrValidation, "date must be in YYYY-MM-DD format")
)

// BookingService handles booking creation, listing and completion
type BookingService struct {
	bookingRepo repositories.BookingRepository
	userRepo    repositories.UserRepository
}

// NewBookingService creates a new booking service
func NewBookingService(bookingRepo repositories.BookingRepository, userRepo repositories.UserRepository) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
	}
}

// CreateBookingInput represents create booking input
type CreateBookingInput struct {
	UserID      uint     `json:"userId" validate:"required"`
	AdminID     uint     `json:"adminId" validate:"required"`
	PetName     string   `json:"petName" validate:"required,max=120"`
	ServiceType string   `json:"serviceType" validate:"required,max=120"`
	Date        string   `json:"date" validate:"required"`
	Time        string   `json:"time" validate:"required,max=10"`
	Notes       *string  `json:"notes"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0,lt=100000000"`
}

// ListBookingsOutput is a page of bookings
type ListBookingsOutput struct {
	Bookings []*models.Booking
	Total    int64
}

// Create books a slot. Both parties must exist before the slot is checked;
// the slot check and the insert happen atomically in the repository.
func (s *BookingService) Create(ctx context.Context, input *CreateBookingInput) (*models.Booking, error) {
	date, err := models.ParseDate(strings.TrimSpace(input.Date))
	if err != nil {
		return nil, ErrInvalidDate
	}

	exists, err := s.userRepo.Exists(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrUserNotFound
	}

	exists, err = s.userRepo.Exists(ctx, input.AdminID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrCaretakerNotFound
	}

	booking := &models.Booking{
		UserID:      input.UserID,
		AdminID:     input.AdminID,
		PetName:     strings.TrimSpace(input.PetName),
		ServiceType: strings.TrimSpace(input.ServiceType),
		Date:        date,
		Time:        strings.TrimSpace(input.Time),
		Status:      string(domain.StatusPending),
	}
	if input.Notes != nil {
		booking.Notes = *input.Notes
	}
	if input.Price != nil {
		booking.Price = *input.Price
	}

	log := logger.Get()
	if err := s.bookingRepo.CreateInFreeSlot(ctx, booking); err != nil {
		if errors.Is(err, domain.ErrSlotConflict) {
			metrics.BookingSlotConflictsTotal.Inc()
			log.Info().
				Str("date", booking.Date.Format(models.DateLayout)).
				Str("time", booking.Time).
				Msg("booking rejected: slot taken")
		}
		return nil, err
	}

	metrics.BookingsCreatedTotal.WithLabelValues(booking.ServiceType).Inc()
	log.Info().
		Uint("booking_id", booking.ID).
		Uint("user_id", booking.UserID).
		Uint("admin_id", booking.AdminID).
		Msg("booking created")

	return booking, nil
}

// List lists every booking newest first
func (s *BookingService) List(ctx context.Context, params *pagination.Params) (*ListBookingsOutput, error) {
	return s.list(ctx, repositories.BookingFilter{}, params)
}

// ListByClient lists the bookings of one client newest first
func (s *BookingService) ListByClient(ctx context.Context, userID uint, params *pagination.Params) (*ListBookingsOutput, error) {
	return s.list(ctx, repositories.BookingFilter{UserID: userID}, params)
}

// ListByCaretaker lists the bookings served by one caretaker newest first
func (s *BookingService) ListByCaretaker(ctx context.Context, adminID uint, params *pagination.Params) (*ListBookingsOutput, error) {
	return s.list(ctx, repositories.BookingFilter{AdminID: adminID}, params)
}

func (s *BookingService) list(ctx context.Context, filter repositories.BookingFilter, params *pagination.Params) (*ListBookingsOutput, error) {
	bookings, total, err := s.bookingRepo.List(ctx, filter, params)
	if err != nil {
		return nil, err
	}
	return &ListBookingsOutput{Bookings: bookings, Total: total}, nil
}

// MarkConcluded moves a booking to concluido. Already concluded bookings
// are returned unchanged.
func (s *BookingService) MarkConcluded(ctx context.Context, id uint) (*models.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	current := domain.BookingStatus(booking.Status)
	if current.IsTerminal() {
		return booking, nil
	}

	updated, err := s.bookingRepo.UpdateStatus(ctx, id, string(current.Conclude()))
	if err != nil {
		return nil, err
	}

	log := logger.Get()
	log.Info().Uint("booking_id", id).Msg("booking concluded")
	return updated, nil
}
