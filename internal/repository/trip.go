package repository

import (
	"context"

	"github.com/google/uuid"

	"fleetflow/internal/model"
)

type TripFilter struct {
	Status    *model.TripStatus
	VehicleID *uuid.UUID
	DriverID  *uuid.UUID
}

// TripRepository persists trips. List and GetByID return trips with their
// vehicle and driver preloaded.
type TripRepository interface {
	List(ctx context.Context, filter TripFilter) ([]model.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Trip, error)
	Create(ctx context.Context, trip *model.Trip) error
	Save(ctx context.Context, trip *model.Trip) error
	CountByStatus(ctx context.Context, status model.TripStatus) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
