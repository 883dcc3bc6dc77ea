package auth

import (
	"context"
	"errors"
	"testing"
)

func validInput() RegisterInput {
	return RegisterInput{
		Username:        "pavan",
		Email:           "pavan@example.com",
		Password:        "Password@123",
		ConfirmPassword: "Password@123",
		FirstName:       "Pavan",
		LastName:        "Kumar",
	}
}

func TestPasswordIsHashedBeforeSaving(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	in := validInput()
	user, err := service.Register(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if user.PasswordHash == in.Password {
		t.Fatalf("password was stored in plain text")
	}
	if user.ID == 0 {
		t.Fatalf("user id was not assigned")
	}
	if !user.IsVerified {
		t.Errorf("expected user to be created verified")
	}
	if user.VerificationToken == "" {
		t.Errorf("expected a verification token to be generated")
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	in := validInput()
	in.Password = "abc"
	in.ConfirmPassword = "abc"

	if _, err := service.Register(context.Background(), in); !errors.Is(err, ErrPasswordTooShort) {
		t.Fatalf("expected ErrPasswordTooShort, got %v", err)
	}
	if len(repo.users) != 0 {
		t.Fatalf("expected no user rows, got %d", len(repo.users))
	}
}

func TestRegisterRejectsPasswordMismatch(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	in := validInput()
	in.ConfirmPassword = "Different@123"

	if _, err := service.Register(context.Background(), in); !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}
	if len(repo.users) != 0 {
		t.Fatalf("expected no user rows, got %d", len(repo.users))
	}
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	in := validInput()
	in.FirstName = "  "

	if _, err := service.Register(context.Background(), in); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestRegisterPhoneIsOptional(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	in := validInput()
	in.Phone = ""

	if _, err := service.Register(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	if _, err := service.Register(context.Background(), validInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	in := validInput()
	in.Email = "other@example.com"

	if _, err := service.Register(context.Background(), in); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected 1 user row, got %d", len(repo.users))
	}
}

func TestRegisterRejectsDuplicateEmailCaseInsensitive(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	if _, err := service.Register(context.Background(), validInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	in := validInput()
	in.Username = "other"
	in.Email = "PAVAN@Example.COM"

	if _, err := service.Register(context.Background(), in); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected 1 user row, got %d", len(repo.users))
	}
}

func TestLoginByUsername(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	if _, err := service.Register(context.Background(), validInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user, err := service.Login(context.Background(), "pavan", "Password@123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Username != "pavan" {
		t.Errorf("unexpected user: %s", user.Username)
	}
}

func TestLoginByEmailCaseInsensitive(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	if _, err := service.Register(context.Background(), validInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := service.Login(context.Background(), "Pavan@EXAMPLE.com", "Password@123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoginFailuresAreGeneric(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	if _, err := service.Register(context.Background(), validInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		name       string
		identifier string
		password   string
	}{
		{"wrong password", "pavan", "WrongPassword"},
		{"unknown user", "nobody", "Password@123"},
		{"empty identifier", "", "Password@123"},
		{"empty password", "pavan", ""},
	}

	for _, tc := range cases {
		if _, err := service.Login(context.Background(), tc.identifier, tc.password); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("%s: expected ErrInvalidCredentials, got %v", tc.name, err)
		}
	}
}
