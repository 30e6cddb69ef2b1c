package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"fleetflow/internal/model"
)

type DriverFilter struct {
	Status *model.DriverStatus
}

// DriverRepository persists drivers.
type DriverRepository interface {
	List(ctx context.Context, filter DriverFilter) ([]model.Driver, error)
	// ListAvailable returns Off Duty drivers whose license expires after now.
	ListAvailable(ctx context.Context, now time.Time) ([]model.Driver, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Driver, error)
	GetByLicenseNumber(ctx context.Context, licenseNumber string) (*model.Driver, error)
	Create(ctx context.Context, driver *model.Driver) error
	Save(ctx context.Context, driver *model.Driver) error
	SetStatus(ctx context.Context, id uuid.UUID, status model.DriverStatus) error
	SetStatusFrom(ctx context.Context, id uuid.UUID, from, to model.DriverStatus) (bool, error)
	IncrementTripsCompleted(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}
