package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"fleetflow/internal/auth"
	"fleetflow/internal/model"
	"fleetflow/internal/repository"
)

const forgotPasswordReply = "If an account exists, a reset link has been sent."

type AuthService struct {
	store    repository.Store
	tokens   *auth.Manager
	resetTTL time.Duration
	devMode  bool
	now      func() time.Time
}

func NewAuthService(store repository.Store, tokens *auth.Manager, resetTTL time.Duration, devMode bool) *AuthService {
	return &AuthService{
		store:    store,
		tokens:   tokens,
		resetTTL: resetTTL,
		devMode:  devMode,
		now:      time.Now,
	}
}

type LoginResult struct {
	Token     string      `json:"token"`
	User      *model.User `json:"user"`
	ExpiresIn string      `json:"expiresIn"`
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.store.Users().GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, unauthorized("Invalid email or password.")
		}
		return nil, err
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, unauthorized("Invalid email or password.")
	}

	token, err := s.tokens.Issue(user.ID, s.now())
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:     token,
		User:      user,
		ExpiresIn: s.tokens.TTL().String(),
	}, nil
}

type ForgotPasswordResult struct {
	Message string `json:"message"`
	// ResetToken is only populated in development; delivery is an external
	// concern in other environments.
	ResetToken string `json:"resetToken,omitempty"`
}

// ForgotPassword stores a hashed one-hour reset token for the account. The
// response is identical whether or not the account exists.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) (*ForgotPasswordResult, error) {
	user, err := s.store.Users().GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &ForgotPasswordResult{Message: forgotPasswordReply}, nil
		}
		return nil, err
	}

	raw, hash, err := auth.NewResetToken()
	if err != nil {
		return nil, err
	}
	expires := s.now().Add(s.resetTTL)
	user.ResetTokenHash = &hash
	user.ResetTokenExpires = &expires
	if err := s.store.Users().Save(ctx, user); err != nil {
		return nil, err
	}

	result := &ForgotPasswordResult{Message: forgotPasswordReply}
	if s.devMode {
		result.ResetToken = raw
	}
	return result, nil
}

func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if token == "" || len(newPassword) < 6 {
		return validationf("Valid token and password (min 6 chars) are required.")
	}

	user, err := s.store.Users().GetByResetTokenHash(ctx, auth.HashResetToken(token))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return validationf("Invalid or expired reset token.")
		}
		return err
	}
	if user.ResetTokenExpires == nil || !user.ResetTokenExpires.After(s.now()) {
		return validationf("Invalid or expired reset token.")
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	user.ResetTokenHash = nil
	user.ResetTokenExpires = nil
	return s.store.Users().Save(ctx, user)
}

func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.store.Users().GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("User not found.")
		}
		return nil, err
	}
	return user, nil
}
