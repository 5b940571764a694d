package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		err  error
		kind error
	}{
		{ErrUserNotFound, ErrNotFound},
		{ErrBookingNotFound, ErrNotFound},
		{ErrCaretakerNotFound, ErrNotFound},
		{ErrEmailTaken, ErrConflict},
		{ErrSlotConflict, ErrConflict},
		{ErrWrongPassword, ErrValidation},
	}

	for _, tt := range tests {
		if !errors.Is(tt.err, tt.kind) {
			t.Errorf("%v should match kind %v", tt.err, tt.kind)
		}
		wrapped := fmt.Errorf("store: %w", tt.err)
		if !errors.Is(wrapped, tt.err) || !errors.Is(wrapped, tt.kind) {
			t.Errorf("wrapped %v should keep both identities", tt.err)
		}
	}
}

func TestNewError_KeepsIdentity(t *testing.T) {
	if errors.Is(ErrUserNotFound, ErrBookingNotFound) {
		t.Fatalf("errors of the same kind must stay distinct")
	}
	if ErrSlotConflict.Error() != "a booking already exists at this date and time" {
		t.Fatalf("unexpected message %q", ErrSlotConflict.Error())
	}
}
