package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/naijamart/storefront/internal/domain/errors"
	"github.com/naijamart/storefront/internal/domain/model"
	pkgAuth "github.com/naijamart/storefront/internal/pkg/auth"
	testhelpers "github.com/naijamart/storefront/internal/test"
)

func newAuthFixture() (*AuthUseCase, *testhelpers.UserRepositoryStub) {
	users := testhelpers.NewUserRepositoryStub()
	hasher := pkgAuth.NewBcryptHasher(4)
	strategy := pkgAuth.NewJWTStrategy("test-secret", pkgAuth.Options{})
	return NewAuthUseCase(users, hasher, strategy), users
}

func TestRegisterAndAuthenticate(t *testing.T) {
	uc, _ := newAuthFixture()

	usr, token, err := uc.Register(context.Background(), "Ada@Example.com", "Ada Obi", "s3cret")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if usr.Email != "ada@example.com" {
		t.Fatalf("expected lowercased email, got %q", usr.Email)
	}
	if usr.Role != model.RoleUser {
		t.Fatalf("expected user role, got %q", usr.Role)
	}
	if token == "" {
		t.Fatal("expected a token")
	}

	id, role, err := uc.ParseToken(token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if id != usr.ID || role != model.RoleUser {
		t.Fatalf("unexpected claims id=%d role=%q", id, role)
	}

	if _, _, err := uc.Authenticate(context.Background(), "ada@example.com", "s3cret"); err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	uc, _ := newAuthFixture()
	cases := []struct {
		name                      string
		email, fullName, password string
	}{
		{"empty email", "", "Ada", "pw"},
		{"email without at", "ada.example.com", "Ada", "pw"},
		{"empty name", "ada@example.com", " ", "pw"},
		{"empty password", "ada@example.com", "Ada", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := uc.Register(context.Background(), tc.email, tc.fullName, tc.password); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
				t.Fatalf("expected invalid credentials, got %v", err)
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	uc, _ := newAuthFixture()
	if _, _, err := uc.Register(context.Background(), "ada@example.com", "Ada", "pw"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, _, err := uc.Register(context.Background(), "ADA@example.com", "Ada", "pw"); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected already exists, got %v", err)
	}
}

func TestAuthenticateWrongPassword(t *testing.T) {
	uc, _ := newAuthFixture()
	if _, _, err := uc.Register(context.Background(), "ada@example.com", "Ada", "pw"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, _, err := uc.Authenticate(context.Background(), "ada@example.com", "wrong"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestAuthenticateUnknownUser(t *testing.T) {
	uc, _ := newAuthFixture()
	if _, _, err := uc.Authenticate(context.Background(), "ghost@example.com", "pw"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestParseTokenEmpty(t *testing.T) {
	uc, _ := newAuthFixture()
	if _, _, err := uc.ParseToken(""); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
}

func TestAdminRoleRoundTripsThroughToken(t *testing.T) {
	uc, users := newAuthFixture()
	hasher := pkgAuth.NewBcryptHasher(4)
	hash, err := hasher.Hash("admin-pw")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	admin := users.Seed(&model.User{Email: "staff@example.com", PasswordHash: hash, Role: model.RoleAdmin})

	_, token, err := uc.Authenticate(context.Background(), "staff@example.com", "admin-pw")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	id, role, err := uc.ParseToken(token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if id != admin.ID || role != model.RoleAdmin {
		t.Fatalf("unexpected claims id=%d role=%q", id, role)
	}
}
