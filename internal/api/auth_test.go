package api

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestJWTAuthenticatorRoundTripsIssuedToken(t *testing.T) {
	t.Parallel()

	auth := NewJWTAuthenticator([]byte("test-secret-key"))
	account := AccountContext{
		UserID:      uuid.New(),
		AccountID:   uuid.New(),
		AccountName: "Rize Up",
	}

	token, err := auth.IssueToken(account, time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	resolved, err := auth.Authenticate(token)
	if err != nil {
		t.Fatalf("authenticate issued token: %v", err)
	}
	if resolved != account {
		t.Fatalf("expected identity to round-trip, got %+v", resolved)
	}
}

func TestJWTAuthenticatorRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	auth := NewJWTAuthenticator([]byte("test-secret-key"))
	account := AccountContext{UserID: uuid.New(), AccountID: uuid.New(), AccountName: "Rize Up"}

	token, err := auth.IssueToken(account, -time.Minute)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if _, err := auth.Authenticate(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestJWTAuthenticatorRejectsForeignSignature(t *testing.T) {
	t.Parallel()

	issuer := NewJWTAuthenticator([]byte("issuer-key"))
	verifier := NewJWTAuthenticator([]byte("verifier-key"))
	account := AccountContext{UserID: uuid.New(), AccountID: uuid.New(), AccountName: "Rize Up"}

	token, err := issuer.IssueToken(account, time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if _, err := verifier.Authenticate(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for foreign signature, got %v", err)
	}
	if _, err := verifier.Authenticate("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for garbage, got %v", err)
	}
}

func TestStaticAuthenticatorYieldsFixedIdentity(t *testing.T) {
	t.Parallel()

	auth := NewStaticAuthenticator()
	first, err := auth.Authenticate("anything")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	second, err := auth.Authenticate("something else")
	if err != nil {
		t.Fatalf("authenticate again: %v", err)
	}
	if first != second {
		t.Fatal("expected the same identity for every token")
	}
	if first.AccountName != "Rize Up" {
		t.Fatalf("expected development account, got %q", first.AccountName)
	}
}
