package services

import (
	"context"
	"errors"
	"testing"
	"time"
)

type recordingNotifier struct {
	reminders []*Reminder
	failFor   uint
}

func (n *recordingNotifier) Notify(_ context.Context, r *Reminder) error {
	if r.AdminID == n.failFor {
		return errors.New("unreachable")
	}
	n.reminders = append(n.reminders, r)
	return nil
}

func TestReminderService_SendReminders(t *testing.T) {
	bookings, store, userID, adminID := bookingFixture(t)
	ctx := context.Background()
	other := seedUser(t, store, "Bia", "bia@x.com", "admin")

	mustCreate := func(admin uint, date, at string) uint {
		b, err := bookings.Create(ctx, bookingInput(userID, admin, date, at))
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		return b.ID
	}
	mustCreate(adminID, "2025-06-01", "14:00")
	mustCreate(adminID, "2025-06-01", "09:00")
	done := mustCreate(other.ID, "2025-06-01", "10:00")
	mustCreate(adminID, "2025-06-02", "09:00")

	if _, err := bookings.MarkConcluded(ctx, done); err != nil {
		t.Fatalf("conclude: %v", err)
	}

	notifier := &recordingNotifier{}
	svc := NewReminderService(store.Bookings(), notifier, "")

	sent, err := svc.SendReminders(ctx, time.Date(2025, 6, 1, 7, 30, 0, 0, time.Local))
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if sent != 1 || len(notifier.reminders) != 1 {
		t.Fatalf("expected one reminder, got %d", sent)
	}

	r := notifier.reminders[0]
	if r.AdminID != adminID || r.AdminName != "Luiza" || r.Date != "2025-06-01" {
		t.Fatalf("unexpected reminder: %+v", r)
	}
	if len(r.Bookings) != 2 || r.Bookings[0].Time != "09:00" {
		t.Fatalf("expected two bookings ordered by time, got %+v", r.Bookings)
	}
}

func TestReminderService_SkipsFailedDeliveries(t *testing.T) {
	bookings, store, userID, adminID := bookingFixture(t)

	if _, err := bookings.Create(context.Background(), bookingInput(userID, adminID, "2025-06-01", "14:00")); err != nil {
		t.Fatalf("create: %v", err)
	}

	svc := NewReminderService(store.Bookings(), &recordingNotifier{failFor: adminID}, "")
	sent, err := svc.SendReminders(context.Background(), time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local))
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if sent != 0 {
		t.Fatalf("expected no delivered reminders, got %d", sent)
	}
}

func TestReminderService_StartRejectsBadSpec(t *testing.T) {
	svc := NewReminderService(nil, &recordingNotifier{}, "not a cron spec")
	if err := svc.Start(); err == nil {
		svc.Stop()
		t.Fatalf("expected invalid spec error")
	}
}
