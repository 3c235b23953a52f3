package config

import (
	"os"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	os.Unsetenv("PORT")
	os.Unsetenv("DB_NAME")
	os.Unsetenv("JWT_EXPIRATION_MINUTES")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "5244" {
		t.Errorf("expected default port 5244, got %s", cfg.Port)
	}
	if cfg.Database.Name != "cliniccare" {
		t.Errorf("expected default database cliniccare, got %s", cfg.Database.Name)
	}
	if cfg.JWTExpirationMinutes != 60 {
		t.Errorf("expected default token expiry 60, got %d", cfg.JWTExpirationMinutes)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected default log level info, got %s", cfg.Log.Level)
	}
}

func TestLoadConfig_DSNIncludesCredentials(t *testing.T) {
	os.Setenv("DB_USERNAME", "clinic")
	os.Setenv("DB_PASSWORD", "secret")
	os.Setenv("DB_HOST", "db.internal")
	defer func() {
		os.Unsetenv("DB_USERNAME")
		os.Unsetenv("DB_PASSWORD")
		os.Unsetenv("DB_HOST")
	}()

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "clinic:secret@tcp(db.internal:3306)/cliniccare?charset=utf8mb4&parseTime=True&loc=Local"
	if cfg.Database.DSN != want {
		t.Errorf("unexpected DSN: %s", cfg.Database.DSN)
	}
}

func TestLoadConfig_InvalidExpiry(t *testing.T) {
	os.Setenv("JWT_EXPIRATION_MINUTES", "soon")
	defer os.Unsetenv("JWT_EXPIRATION_MINUTES")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for non-numeric JWT_EXPIRATION_MINUTES")
	}
}
