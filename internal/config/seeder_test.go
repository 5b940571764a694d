package config

import (
	"context"
	"testing"

	"petcare-booking/internal/core/domain"
	"petcare-booking/internal/pkg/password"
	"petcare-booking/internal/testutil"
)

func TestSeeder_CreatesAdminOnce(t *testing.T) {
	store := testutil.NewStore()
	seeder := NewSeeder(store.Users(), SeedConfig{
		Name:     "Carla",
		Email:    "carla@petcare.dev",
		Phone:    "11988887777",
		Birthday: "1988-03-14",
		Password: "caretaker-pass",
	})

	first, err := seeder.Run(context.Background())
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if first.Role != string(domain.RoleAdmin) {
		t.Fatalf("expected admin role, got %q", first.Role)
	}
	if !password.Verify("caretaker-pass", first.Password) {
		t.Fatalf("stored password should verify against the seed password")
	}

	second, err := seeder.Run(context.Background())
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected the existing admin to be reused, got id %d vs %d", second.ID, first.ID)
	}

	_, total, err := store.Users().List(context.Background(), nil)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected one user after two runs, got %d", total)
	}
}

func TestSeeder_RequiresCredentials(t *testing.T) {
	seeder := NewSeeder(testutil.NewStore().Users(), SeedConfig{Name: "Carla", Birthday: "1988-03-14"})
	if _, err := seeder.Run(context.Background()); err == nil {
		t.Fatalf("expected an error without email and password")
	}
}
