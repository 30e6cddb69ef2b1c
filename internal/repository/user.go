package repository

import (
	"context"

	"github.com/google/uuid"

	"fleetflow/internal/model"
)

// UserRepository persists back-office accounts.
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByResetTokenHash(ctx context.Context, tokenHash string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	Save(ctx context.Context, user *model.User) error
}
