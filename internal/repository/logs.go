package repository

import (
	"context"

	"github.com/google/uuid"

	"fleetflow/internal/model"
)

// FuelLogRepository persists fuel fill-ups.
type FuelLogRepository interface {
	// List returns logs ordered by date descending, optionally filtered by
	// vehicle.
	List(ctx context.Context, vehicleID *uuid.UUID) ([]model.FuelLog, error)
	// ListByVehicleAsc returns the vehicle's logs ordered by date ascending,
	// the order the efficiency computation consumes them in.
	ListByVehicleAsc(ctx context.Context, vehicleID uuid.UUID) ([]model.FuelLog, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.FuelLog, error)
	Create(ctx context.Context, log *model.FuelLog) error
	Save(ctx context.Context, log *model.FuelLog) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ServiceLogRepository persists maintenance records.
type ServiceLogRepository interface {
	List(ctx context.Context, vehicleID *uuid.UUID) ([]model.ServiceLog, error)
	ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]model.ServiceLog, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.ServiceLog, error)
	Create(ctx context.Context, log *model.ServiceLog) error
	Save(ctx context.Context, log *model.ServiceLog) error
	Delete(ctx context.Context, id uuid.UUID) error
}
