package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"petcare-booking/internal/adapters/persistence/models"
	"petcare-booking/internal/core/domain"
	"petcare-booking/internal/pkg/pagination"
)

func TestUserRepository_CreateWithCats(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	needs := "insulin at 8pm"
	u := &models.User{
		Name:     "Ana",
		Email:    "ana@x.com",
		Phone:    "123",
		Birthday: day(1990, time.January, 1),
		Password: "hash",
		Cats: []models.Cat{
			{Name: "Mimi", Age: 3},
			{Name: "Tom", Needs: &needs},
		},
	}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByIDWithCats(ctx, u.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Role != "user" {
		t.Fatalf("expected default role user, got %q", got.Role)
	}
	if len(got.Cats) != 2 || got.Cats[0].Name != "Mimi" || got.Cats[1].Needs == nil || *got.Cats[1].Needs != needs {
		t.Fatalf("unexpected cats: %+v", got.Cats)
	}
	if got.Birthday.Format(models.DateLayout) != "1990-01-01" {
		t.Fatalf("unexpected birthday %v", got.Birthday)
	}

	plain, err := repo.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("get without cats: %v", err)
	}
	if len(plain.Cats) != 0 {
		t.Fatalf("GetByID should not load cats")
	}
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()
	base := time.Date(2026, time.October, 1, 9, 0, 0, 0, time.Local)

	createUser(t, repo, "Ana", "ana@x.com", "user", base)
	bia := createUser(t, repo, "Bia", "bia@x.com", "user", base.Add(time.Minute))

	dup := &models.User{Name: "Ana 2", Email: "ana@x.com", Phone: "1", Birthday: day(1991, time.May, 5), Password: "hash"}
	if err := repo.Create(ctx, dup); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("create: expected ErrEmailTaken, got %v", err)
	}

	bia.Email = "ana@x.com"
	if err := repo.Update(ctx, bia); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("update: expected ErrEmailTaken, got %v", err)
	}
}

func TestUserRepository_Missing(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	if _, err := repo.GetByID(ctx, 404); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("GetByID: expected ErrUserNotFound, got %v", err)
	}
	if _, err := repo.GetByIDWithCats(ctx, 404); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("GetByIDWithCats: expected ErrUserNotFound, got %v", err)
	}
	if _, err := repo.GetByEmail(ctx, "nobody@x.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("GetByEmail: expected ErrUserNotFound, got %v", err)
	}
	if err := repo.UpdatePassword(ctx, 404, "hash"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("UpdatePassword: expected ErrUserNotFound, got %v", err)
	}

	exists, err := repo.Exists(ctx, 404)
	if err != nil || exists {
		t.Fatalf("Exists: expected false, got %v (%v)", exists, err)
	}
	exists, err = repo.ExistsByEmail(ctx, "nobody@x.com")
	if err != nil || exists {
		t.Fatalf("ExistsByEmail: expected false, got %v (%v)", exists, err)
	}
}

func TestUserRepository_UpdateAndPassword(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()
	u := createUser(t, repo, "Ana", "ana@x.com", "user", time.Date(2026, time.October, 1, 9, 0, 0, 0, time.Local))

	u.Name = "Ana Paula"
	u.Phone = "555"
	u.Password = "must-not-be-written"
	if err := repo.Update(ctx, u); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := repo.UpdatePassword(ctx, u.ID, "new-hash"); err != nil {
		t.Fatalf("update password: %v", err)
	}

	got, err := repo.GetByEmail(ctx, "ana@x.com")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Ana Paula" || got.Phone != "555" {
		t.Fatalf("profile not updated: %+v", got)
	}
	if got.Password != "new-hash" {
		t.Fatalf("expected only UpdatePassword to change the hash, got %q", got.Password)
	}

	exists, err := repo.ExistsByEmail(ctx, "ana@x.com")
	if err != nil || !exists {
		t.Fatalf("ExistsByEmail: expected true, got %v (%v)", exists, err)
	}
}

func TestUserRepository_List(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()
	base := time.Date(2026, time.October, 1, 9, 0, 0, 0, time.Local)

	ana := createUser(t, repo, "Ana", "ana@x.com", "user", base)
	bia := createUser(t, repo, "Bia", "bia@x.com", "user", base.Add(time.Hour))
	carla := createUser(t, repo, "Carla", "carla@x.com", "admin", base.Add(2*time.Hour))

	users, total, err := repo.List(ctx, nil)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 3 || len(users) != 3 {
		t.Fatalf("expected 3 users, got %d (total %d)", len(users), total)
	}
	if users[0].ID != carla.ID || users[1].ID != bia.ID || users[2].ID != ana.ID {
		t.Fatalf("expected newest first, got %d,%d,%d", users[0].ID, users[1].ID, users[2].ID)
	}

	page, total, err := repo.List(ctx, pagination.New(1, 2))
	if err != nil {
		t.Fatalf("paged list: %v", err)
	}
	if total != 3 || len(page) != 2 || page[0].ID != carla.ID {
		t.Fatalf("unexpected first page: total %d, %d items", total, len(page))
	}
}
