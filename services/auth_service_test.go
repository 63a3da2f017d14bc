package services

import (
	"errors"
	"testing"
	"time"

	"github.com/vishwaszadte/ride-sharing-app-backend/repository"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()
	db := newTestDB(t)
	return NewAuthService(
		repository.NewRiderRepository(db),
		repository.NewDriverRepository(db),
		"test-secret",
		time.Hour,
	)
}

func TestRiderSignupAndLogin(t *testing.T) {
	svc := newTestAuthService(t)

	rider, err := svc.SignupRider("Asha", "Asha@Example.com", "secret123", "9999999999")
	if err != nil {
		t.Fatalf("SignupRider: %v", err)
	}
	if rider.Email != "asha@example.com" {
		t.Errorf("email should be normalized, got %s", rider.Email)
	}
	if rider.Password == "secret123" {
		t.Error("password must be stored hashed")
	}

	token, got, err := svc.LoginRider("asha@example.com", "secret123")
	if err != nil {
		t.Fatalf("LoginRider: %v", err)
	}
	if token == "" {
		t.Error("expected a token")
	}
	if got.Password != "" {
		t.Error("login response must not carry the credential")
	}
}

func TestRiderLogin_BadCredentials(t *testing.T) {
	svc := newTestAuthService(t)
	if _, err := svc.SignupRider("Asha", "asha@example.com", "secret123", "9999999999"); err != nil {
		t.Fatalf("SignupRider: %v", err)
	}

	if _, _, err := svc.LoginRider("asha@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.LoginRider("nobody@example.com", "secret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRiderSignup_DuplicateEmail(t *testing.T) {
	svc := newTestAuthService(t)
	if _, err := svc.SignupRider("Asha", "asha@example.com", "secret123", "9999999999"); err != nil {
		t.Fatalf("SignupRider: %v", err)
	}

	if _, err := svc.SignupRider("Asha 2", "asha@example.com", "other456", "8888888888"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestDriverSignupAndLogin(t *testing.T) {
	svc := newTestAuthService(t)

	driver, err := svc.SignupDriver("Ravi", "ravi@example.com", "secret123", "8888888888",
		"Swift", "MH12AB1234", "sedan", "/uploads/drivers/abc.jpg")
	if err != nil {
		t.Fatalf("SignupDriver: %v", err)
	}
	if driver.Photo != "/uploads/drivers/abc.jpg" {
		t.Errorf("photo url not stored: %s", driver.Photo)
	}

	token, got, err := svc.LoginDriver("ravi@example.com", "secret123")
	if err != nil {
		t.Fatalf("LoginDriver: %v", err)
	}
	if token == "" {
		t.Error("expected a token")
	}
	if got.VehicleNumber != "MH12AB1234" {
		t.Errorf("vehicle number mismatch: %s", got.VehicleNumber)
	}
}
