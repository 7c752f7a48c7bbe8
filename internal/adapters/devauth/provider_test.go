package devauth

import (
	"context"
	"testing"
)

func TestProvider_SeededSignIn(t *testing.T) {
	prov, err := NewProvider(Config{Email: "dev@internmatch.local", Password: "devpass", Name: "Dev User"})
	if err != nil {
		t.Fatalf("NewProvider error: %v", err)
	}
	id, err := prov.SignIn(context.Background(), "dev@internmatch.local", "devpass")
	if err != nil {
		t.Fatalf("SignIn error: %v", err)
	}
	if id.Email != "dev@internmatch.local" || id.FullName != "Dev User" {
		t.Fatalf("unexpected identity: %+v", id)
	}
	if id.UserID == "" || id.Token == "" {
		t.Fatal("UserID and Token should be generated")
	}
}

func TestProvider_SignInWrongPassword(t *testing.T) {
	prov, err := NewProvider(Config{Email: "dev@internmatch.local", Password: "devpass"})
	if err != nil {
		t.Fatalf("NewProvider error: %v", err)
	}
	if _, err := prov.SignIn(context.Background(), "dev@internmatch.local", "nope"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := prov.SignIn(context.Background(), "unknown@internmatch.local", "devpass"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestProvider_SignUpThenSignIn(t *testing.T) {
	prov, err := NewProvider(Config{})
	if err != nil {
		t.Fatalf("NewProvider error: %v", err)
	}
	ctx := context.Background()

	id, err := prov.SignUp(ctx, "Student@Example.com", "secret", "Test Student")
	if err != nil {
		t.Fatalf("SignUp error: %v", err)
	}
	if id.Email != "student@example.com" {
		t.Fatalf("email should be lowercased, got %q", id.Email)
	}

	again, err := prov.SignIn(ctx, "student@example.com", "secret")
	if err != nil {
		t.Fatalf("SignIn after SignUp error: %v", err)
	}
	if again.UserID != id.UserID {
		t.Fatalf("UserID should be stable across sign-ins: %q vs %q", again.UserID, id.UserID)
	}
}

func TestProvider_SignUpDuplicate(t *testing.T) {
	prov, err := NewProvider(Config{})
	if err != nil {
		t.Fatalf("NewProvider error: %v", err)
	}
	ctx := context.Background()

	if _, err := prov.SignUp(ctx, "dup@example.com", "secret", ""); err != nil {
		t.Fatalf("first SignUp error: %v", err)
	}
	if _, err := prov.SignUp(ctx, "DUP@example.com", "other", ""); err != ErrAccountExists {
		t.Fatalf("expected ErrAccountExists, got %v", err)
	}
}
