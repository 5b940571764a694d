package response

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"petcare-booking/internal/core/domain"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domain.ErrWrongPassword, http.StatusBadRequest},
		{domain.NewError(domain.ErrValidation, "bad date"), http.StatusBadRequest},
		{domain.NewError(domain.ErrUnauthenticated, "expired"), http.StatusUnauthorized},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrBookingNotFound, http.StatusNotFound},
		{fmt.Errorf("create: %w", domain.ErrSlotConflict), http.StatusConflict},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := StatusOf(tt.err); got != tt.want {
			t.Errorf("StatusOf(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
