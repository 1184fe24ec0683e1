package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"feedbackManagement/internal/db"
	"feedbackManagement/models"
	"feedbackManagement/repository"
)

func newTestService(t *testing.T, name string) (*Service, *repository.UserRepository) {
	t.Helper()
	d, err := db.Open("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	users := repository.NewUserRepository(d)
	return NewService(users, NewTokenService(testSecret, time.Hour)), users
}

func TestService_SignupAndLogin(t *testing.T) {
	svc, users := newTestService(t, "authsvc")
	ctx := context.Background()

	u, err := svc.Signup(ctx, "alice", "s3cret", "")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if u.Role != models.RoleEmployee {
		t.Fatalf("role should default to employee: %+v", u)
	}

	// Stored material is a bcrypt hash, never the plaintext password.
	stored, err := users.GetByUsername(ctx, "alice")
	if err != nil || stored == nil {
		t.Fatalf("get stored user: %v %+v", err, stored)
	}
	if stored.PasswordHash == "s3cret" || stored.PasswordHash == "" {
		t.Fatalf("password stored in plaintext or empty: %q", stored.PasswordHash)
	}

	tok, err := svc.Login(ctx, "alice", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	sub, err := NewTokenService(testSecret, time.Hour).Validate(tok)
	if err != nil || sub != "alice" {
		t.Fatalf("token subject: %q err=%v", sub, err)
	}
}

func TestService_SignupDuplicate(t *testing.T) {
	svc, _ := newTestService(t, "authsvcdup")
	ctx := context.Background()

	if _, err := svc.Signup(ctx, "bob", "pw", models.RoleManager); err != nil {
		t.Fatalf("first signup: %v", err)
	}
	_, err := svc.Signup(ctx, "bob", "otherpw", "")
	if !errors.Is(err, repository.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestService_SignupValidation(t *testing.T) {
	svc, _ := newTestService(t, "authsvcval")
	ctx := context.Background()

	if _, err := svc.Signup(ctx, "", "pw", ""); err == nil {
		t.Fatalf("expected error for empty username")
	}
	if _, err := svc.Signup(ctx, "carol", "", ""); err == nil {
		t.Fatalf("expected error for empty password")
	}
	if _, err := svc.Signup(ctx, "carol", "pw", "superuser"); !errors.Is(err, ErrUnknownRole) {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
}

func TestService_LoginFailuresCollapse(t *testing.T) {
	svc, _ := newTestService(t, "authsvclogin")
	ctx := context.Background()

	if _, err := svc.Signup(ctx, "dave", "right", ""); err != nil {
		t.Fatalf("signup: %v", err)
	}

	// Unknown user and wrong password yield the same error.
	_, errMissing := svc.Login(ctx, "nobody", "whatever")
	_, errWrong := svc.Login(ctx, "dave", "wrong")
	if !errors.Is(errMissing, ErrInvalidCredentials) || !errors.Is(errWrong, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for both, got %v / %v", errMissing, errWrong)
	}
}
