package service

import (
	"context"
	"errors"
	"strings"

	"fleetflow/internal/auth"
	"fleetflow/internal/model"
	"fleetflow/internal/repository"
)

type SeedUserInput struct {
	Email    string
	Password string
	Name     string
	Role     model.Role
}

// SeedUser creates an account if no user with the email exists yet. It
// reports whether a user was created, so a seeding run against an already
// initialized database is a no-op rather than an error.
func SeedUser(ctx context.Context, store repository.Store, input SeedUserInput) (bool, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	_, err := store.Users().GetByEmail(ctx, email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return false, err
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return false, err
	}

	user := &model.User{
		Email:        email,
		PasswordHash: hash,
		Role:         input.Role,
		Name:         input.Name,
	}
	if err := store.Users().Create(ctx, user); err != nil {
		return false, err
	}
	return true, nil
}
