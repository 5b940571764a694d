package domain

import (
	"errors"
	"testing"
)

func TestParseRole(t *testing.T) {
	if got := ParseRole(""); got != RoleUser {
		t.Fatalf("expected empty role to be user, got %q", got)
	}
	if got := ParseRole("admin"); got != RoleAdmin {
		t.Fatalf("expected admin, got %q", got)
	}
}

func TestAuthorize(t *testing.T) {
	admin := Identity{UserID: 1, Role: RoleAdmin}
	user := Identity{UserID: 2, Role: RoleUser}

	if err := Authorize(admin, RoleAdmin); err != nil {
		t.Fatalf("admin should be allowed: %v", err)
	}
	if err := Authorize(user, RoleAdmin); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := Authorize(Identity{UserID: 3}, RoleAdmin); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for empty role, got %v", err)
	}
}

func TestBookingStatus_Conclude(t *testing.T) {
	if StatusPending.IsTerminal() {
		t.Fatalf("pendente must not be terminal")
	}
	s := StatusPending.Conclude()
	if s != StatusConcluded {
		t.Fatalf("expected concluido, got %q", s)
	}
	if s.Conclude() != StatusConcluded {
		t.Fatalf("concluding twice must stay concluido")
	}
	if !s.IsTerminal() {
		t.Fatalf("concluido must be terminal")
	}
}
