package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.IsDev() || cfg.Port != "3000" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.JWT.TTL != 7*24*time.Hour {
		t.Fatalf("expected 7 day ttl, got %v", cfg.JWT.TTL)
	}
	if cfg.JWT.Secret == "" {
		t.Fatalf("dev mode should fall back to a dev secret")
	}
	if cfg.Database.Port != "3306" || cfg.Database.DBName != "petcare" {
		t.Fatalf("unexpected database defaults: %+v", cfg.Database)
	}
	if cfg.Reminder.Spec != "30 7 * * *" || !cfg.Reminder.Enabled {
		t.Fatalf("unexpected reminder defaults: %+v", cfg.Reminder)
	}
	if cfg.GetAllowedOrigins() != "*" {
		t.Fatalf("dev should allow all origins")
	}
}

func TestLoadFrom_ProdPrefix(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"APP_MODE":     "prod",
		"JWT_SECRET":   "s3cret",
		"DEV_DB_HOST":  "dev-db",
		"PROD_DB_HOST": "prod-db",
		"PROD_DB_NAME": "petcare_prod",
		"JWT_TTL":      "24h",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Database.Host != "prod-db" || cfg.Database.DBName != "petcare_prod" {
		t.Fatalf("expected PROD_ values, got %+v", cfg.Database)
	}
	if cfg.JWT.Secret != "s3cret" || cfg.JWT.TTL != 24*time.Hour {
		t.Fatalf("unexpected jwt config: %+v", cfg.JWT)
	}
}

func TestLoadFrom_Errors(t *testing.T) {
	if _, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{"APP_MODE": "staging"})); err == nil {
		t.Fatalf("expected invalid APP_MODE error")
	}
	if _, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{"APP_MODE": "prod"})); err == nil {
		t.Fatalf("expected missing JWT_SECRET error in prod")
	}
}

func TestBuildDSN(t *testing.T) {
	dsn := buildDSN(DatabaseConfig{Host: "db", Port: "3306", User: "app", Password: "pw", DBName: "petcare"})
	want := "app:pw@tcp(db:3306)/petcare?charset=utf8mb4&parseTime=True&loc=Local"
	if dsn != want {
		t.Fatalf("got %q, want %q", dsn, want)
	}
}
