package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"petcare-booking/internal/adapters/persistence/models"
	"petcare-booking/internal/pkg/logger"
)

// Reminder is the daily agenda of one caretaker
type Reminder struct {
	AdminID   uint                      `json:"adminId"`
	AdminName string                    `json:"adminName"`
	Date      string                    `json:"date"`
	Bookings  []*models.BookingResponse `json:"bookings"`
}

// Notifier delivers caretaker reminders
type Notifier interface {
	Notify(ctx context.Context, reminder *Reminder) error
}

// NotificationService posts reminders to a webhook when one is configured
// and otherwise writes them to the log
type NotificationService struct {
	webhookURL string
	client     *http.Client
}

// NewNotificationService creates a new notification service
func NewNotificationService(webhookURL string) *NotificationService {
	return &NotificationService{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// IsEnabled reports whether reminders leave the process
func (s *NotificationService) IsEnabled() bool {
	return s.webhookURL != ""
}

// Notify sends one reminder
func (s *NotificationService) Notify(ctx context.Context, reminder *Reminder) error {
	log := logger.Get()
	if !s.IsEnabled() {
		log.Info().
			Uint("admin_id", reminder.AdminID).
			Str("date", reminder.Date).
			Int("bookings", len(reminder.Bookings)).
			Msg("caretaker reminder")
		return nil
	}

	body, err := json.Marshal(reminder)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("reminder webhook returned %d", resp.StatusCode)
	}
	return nil
}
