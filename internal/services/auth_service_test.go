package services

import (
	"errors"
	"testing"

	"github.com/noctiluca/thermia/internal/models"
)

type stubAuthUserRepository struct {
	users []models.User
}

func (stub *stubAuthUserRepository) CountUsers() (int64, error) {
	return int64(len(stub.users)), nil
}

func (stub *stubAuthUserRepository) FindByNormalizedEmail(email string) (models.User, error) {
	for _, user := range stub.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, errors.New("not found")
}

func (stub *stubAuthUserRepository) FindByID(userID uint) (models.User, error) {
	for _, user := range stub.users {
		if user.ID == userID {
			return user, nil
		}
	}
	return models.User{}, errors.New("not found")
}

func (stub *stubAuthUserRepository) Create(user *models.User) error {
	user.ID = uint(len(stub.users) + 1)
	stub.users = append(stub.users, *user)
	return nil
}

func TestAuthServiceCreateOwnerAndAuthenticate(t *testing.T) {
	repo := &stubAuthUserRepository{}
	service := NewAuthService(repo)

	user, err := service.CreateOwner("  Owner@Example.COM ", "correct horse")
	if err != nil {
		t.Fatalf("CreateOwner() unexpected error: %v", err)
	}
	if user.Email != "owner@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}

	if _, err := service.CreateOwner("second@example.com", "another pass"); !errors.Is(err, ErrSetupCompleted) {
		t.Fatalf("expected ErrSetupCompleted for a second owner, got %v", err)
	}

	if _, err := service.Authenticate("owner@example.com", "correct horse"); err != nil {
		t.Fatalf("Authenticate() unexpected error: %v", err)
	}
	if _, err := service.Authenticate("owner@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for a wrong password, got %v", err)
	}
	if _, err := service.Authenticate("nobody@example.com", "correct horse"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for an unknown email, got %v", err)
	}
}

func TestValidateNewPassword(t *testing.T) {
	if err := ValidateNewPassword("short"); !errors.Is(err, ErrPasswordTooShort) {
		t.Fatalf("expected ErrPasswordTooShort, got %v", err)
	}
	if err := ValidateNewPassword("long enough"); err != nil {
		t.Fatalf("expected valid password, got %v", err)
	}
}
