package repositories

import (
	"context"
	"testing"
	"time"

	"petcare-booking/internal/adapters/persistence/models"
	"petcare-booking/internal/core/domain"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database with the production schema.
// One connection keeps every statement on the same memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func createUser(t *testing.T, repo UserRepository, name, email, role string, createdAt time.Time) *models.User {
	t.Helper()
	u := &models.User{
		Name:      name,
		Email:     email,
		Phone:     "11999990000",
		Birthday:  day(1990, time.January, 1),
		Password:  "hash",
		Role:      role,
		CreatedAt: createdAt,
	}
	if err := repo.Create(context.Background(), u); err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return u
}

func newBooking(userID, adminID uint, date time.Time, slot string) *models.Booking {
	return &models.Booking{
		UserID:      userID,
		AdminID:     adminID,
		PetName:     "Mimi",
		ServiceType: "visita",
		Date:        date,
		Time:        slot,
		Status:      string(domain.StatusPending),
	}
}
