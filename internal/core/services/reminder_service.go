package services

import (
	"context"
	"sort"
	"time"

	"petcare-booking/internal/adapters/persistence/models"
	"petcare-booking/internal/adapters/persistence/repositories"
	"petcare-booking/internal/core/domain"
	"petcare-booking/internal/pkg/logger"
	"petcare-booking/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// DefaultReminderSpec fires every day at 07:30
const DefaultReminderSpec = "30 7 * * *"

// ReminderService sends each caretaker the pending bookings of the day
type ReminderService struct {
	bookingRepo repositories.BookingRepository
	notifier    Notifier
	spec        string
	cron        *cron.Cron
	now         func() time.Time
}

// NewReminderService creates a new reminder service
func NewReminderService(bookingRepo repositories.BookingRepository, notifier Notifier, spec string) *ReminderService {
	if spec == "" {
		spec = DefaultReminderSpec
	}
	return &ReminderService{
		bookingRepo: bookingRepo,
		notifier:    notifier,
		spec:        spec,
		now:         time.Now,
	}
}

// Start schedules the daily job
func (s *ReminderService) Start() error {
	s.cron = cron.New()
	if _, err := s.cron.AddFunc(s.spec, s.runDaily); err != nil {
		return err
	}
	s.cron.Start()

	log := logger.Get()
	log.Info().Str("spec", s.spec).Msg("reminder job scheduled")
	return nil
}

// Stop waits for a running job to finish
func (s *ReminderService) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
}

func (s *ReminderService) runDaily() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	log := logger.Get()
	sent, err := s.SendReminders(ctx, s.now())
	if err != nil {
		log.Error().Err(err).Msg("reminder job failed")
		return
	}
	log.Info().Int("sent", sent).Msg("reminder job finished")
}

// SendReminders notifies every caretaker with pending bookings on day's date
// and returns how many reminders were delivered
func (s *ReminderService) SendReminders(ctx context.Context, day time.Time) (int, error) {
	date := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.Local)

	bookings, _, err := s.bookingRepo.List(ctx, repositories.BookingFilter{
		Status: string(domain.StatusPending),
		Date:   date,
	}, nil)
	if err != nil {
		return 0, err
	}

	byAdmin := make(map[uint]*Reminder)
	for _, b := range bookings {
		r, ok := byAdmin[b.AdminID]
		if !ok {
			r = &Reminder{AdminID: b.AdminID, Date: date.Format(models.DateLayout)}
			if b.Admin != nil {
				r.AdminName = b.Admin.Name
			}
			byAdmin[b.AdminID] = r
		}
		r.Bookings = append(r.Bookings, b.WithClient())
	}

	adminIDs := make([]uint, 0, len(byAdmin))
	for id := range byAdmin {
		adminIDs = append(adminIDs, id)
	}
	sort.Slice(adminIDs, func(i, j int) bool { return adminIDs[i] < adminIDs[j] })

	log := logger.Get()
	sent := 0
	for _, id := range adminIDs {
		r := byAdmin[id]
		sort.Slice(r.Bookings, func(i, j int) bool { return r.Bookings[i].Time < r.Bookings[j].Time })
		if err := s.notifier.Notify(ctx, r); err != nil {
			log.Warn().Err(err).Uint("admin_id", id).Msg("reminder not delivered")
			continue
		}
		metrics.RemindersSentTotal.Inc()
		sent++
	}

	return sent, nil
}
