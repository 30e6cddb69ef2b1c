package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func TestIssueAndParse(t *testing.T) {
	t.Parallel()

	manager := NewManager("secret", time.Hour)
	userID := uuid.New()

	token, err := manager.Issue(userID, time.Now())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := manager.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("expected user id %s, got %s", userID, claims.UserID)
	}
}

func TestParse_ExpiredToken(t *testing.T) {
	t.Parallel()

	manager := NewManager("secret", time.Hour)
	token, err := manager.Issue(uuid.New(), time.Now().Add(-2*time.Hour))
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	_, err = manager.Parse(token)
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected token expired error, got: %v", err)
	}
}

func TestParse_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := NewManager("secret-a", time.Hour).Issue(uuid.New(), time.Now())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := NewManager("secret-b", time.Hour).Parse(token); err == nil {
		t.Error("expected verification failure with a different secret")
	}
}

func TestParse_Garbage(t *testing.T) {
	t.Parallel()

	if _, err := NewManager("secret", time.Hour).Parse("not-a-token"); err == nil {
		t.Error("expected parse failure")
	}
}
