package utils

import (
	"testing"

	"clinic-care-server/internal/config"
	"clinic-care-server/internal/models"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:            "test-secret",
		JWTExpirationMinutes: 5,
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := testConfig()
	user := &models.User{
		BaseModel: models.BaseModel{ID: "user-1"},
		Username:  "drrao",
		Role:      models.RoleDoctor,
	}

	token, err := GenerateToken(user, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := ValidateToken(token, cfg.JWTSecret)
	if err != nil {
		t.Fatalf("unexpected error validating token: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("expected user id user-1, got %s", claims.UserID)
	}
	if claims.Role != models.RoleDoctor {
		t.Errorf("expected role doctor, got %s", claims.Role)
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := testConfig()
	user := &models.User{BaseModel: models.BaseModel{ID: "user-1"}, Role: models.RolePatient}

	token, err := GenerateToken(user, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := ValidateToken(token, "other-secret"); err == nil {
		t.Fatal("expected validation to fail with the wrong secret")
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	if _, err := ValidateToken("not-a-jwt", "test-secret"); err == nil {
		t.Fatal("expected validation to fail for a malformed token")
	}
}
