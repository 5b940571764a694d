// Package testutil provides in-memory repositories for service and handler tests.
package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"petcare-booking/internal/adapters/persistence/models"
	"petcare-booking/internal/adapters/persistence/repositories"
	"petcare-booking/internal/core/domain"
	"petcare-booking/internal/pkg/pagination"
)

// Store backs both in-memory repositories so bookings can embed users
type Store struct {
	mu       sync.Mutex
	users    map[uint]*models.User
	bookings map[uint]*models.Booking
	nextUser uint
	nextBook uint
	clock    time.Time
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		users:    make(map[uint]*models.User),
		bookings: make(map[uint]*models.Booking),
		clock:    time.Date(2025, 1, 1, 8, 0, 0, 0, time.Local),
	}
}

// tick returns strictly increasing creation times so "newest first" is deterministic
func (s *Store) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

// Users returns the user repository view of the store
func (s *Store) Users() repositories.UserRepository {
	return &userRepo{s: s}
}

// Bookings returns the booking repository view of the store
func (s *Store) Bookings() repositories.BookingRepository {
	return &bookingRepo{s: s}
}

func cloneUser(u *models.User) *models.User {
	c := *u
	if u.Cats != nil {
		c.Cats = append([]models.Cat(nil), u.Cats...)
	}
	return &c
}

func cloneBooking(b *models.Booking) *models.Booking {
	c := *b
	c.User = nil
	c.Admin = nil
	return &c
}

type userRepo struct {
	s *Store
}

func (r *userRepo) Create(_ context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Email == user.Email {
			return domain.ErrEmailTaken
		}
	}
	r.s.nextUser++
	user.ID = r.s.nextUser
	if user.Role == "" {
		user.Role = string(domain.RoleUser)
	}
	user.CreatedAt = r.s.tick()
	user.UpdatedAt = user.CreatedAt
	for i := range user.Cats {
		user.Cats[i].ID = uint(i + 1)
		user.Cats[i].UserID = user.ID
	}
	r.s.users[user.ID] = cloneUser(user)
	return nil
}

func (r *userRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	c := cloneUser(u)
	c.Cats = nil
	return c, nil
}

func (r *userRepo) GetByIDWithCats(_ context.Context, id uint) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *userRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *userRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	return err == nil, nil
}

func (r *userRepo) Exists(_ context.Context, id uint) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	_, ok := r.s.users[id]
	return ok, nil
}

func (r *userRepo) Update(_ context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.users[user.ID]
	if !ok {
		return domain.ErrUserNotFound
	}
	for id, u := range r.s.users {
		if id != user.ID && u.Email == user.Email {
			return domain.ErrEmailTaken
		}
	}
	stored.Name = user.Name
	stored.Email = user.Email
	stored.Phone = user.Phone
	return nil
}

func (r *userRepo) UpdatePassword(_ context.Context, id uint, hash string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	stored.Password = hash
	return nil
}

func (r *userRepo) List(_ context.Context, params *pagination.Params) ([]*models.User, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	users := make([]*models.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		users = append(users, cloneUser(u))
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.After(users[j].CreatedAt) })

	return page(users, params), int64(len(users)), nil
}

type bookingRepo struct {
	s *Store
}

func (r *bookingRepo) CreateInFreeSlot(_ context.Context, booking *models.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, b := range r.s.bookings {
		if b.Date.Equal(booking.Date) && b.Time == booking.Time {
			return domain.ErrSlotConflict
		}
	}
	r.s.nextBook++
	booking.ID = r.s.nextBook
	if booking.Status == "" {
		booking.Status = string(domain.StatusPending)
	}
	booking.CreatedAt = r.s.tick()
	r.s.bookings[booking.ID] = cloneBooking(booking)
	return nil
}

func (r *bookingRepo) GetByID(_ context.Context, id uint) (*models.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return cloneBooking(b), nil
}

func (r *bookingRepo) List(_ context.Context, filter repositories.BookingFilter, params *pagination.Params) ([]*models.Booking, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []*models.Booking
	for _, b := range r.s.bookings {
		if filter.UserID != 0 && b.UserID != filter.UserID {
			continue
		}
		if filter.AdminID != 0 && b.AdminID != filter.AdminID {
			continue
		}
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		if !filter.Date.IsZero() && !b.Date.Equal(filter.Date) {
			continue
		}
		c := cloneBooking(b)
		if u, ok := r.s.users[b.UserID]; ok {
			c.User = cloneUser(u)
		}
		if a, ok := r.s.users[b.AdminID]; ok {
			c.Admin = cloneUser(a)
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	return page(out, params), int64(len(out)), nil
}

func (r *bookingRepo) UpdateStatus(_ context.Context, id uint, status string) (*models.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	b.Status = status
	return cloneBooking(b), nil
}

func page[T any](items []T, params *pagination.Params) []T {
	if params == nil {
		return items
	}
	if params.Offset >= len(items) {
		return []T{}
	}
	end := params.Offset + params.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[params.Offset:end]
}
