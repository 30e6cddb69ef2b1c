package repository

import (
	"context"

	"github.com/google/uuid"

	"fleetflow/internal/model"
)

type VehicleFilter struct {
	VehicleType *model.VehicleType
	Status      *model.VehicleStatus
	Region      string
}

// VehicleRepository persists vehicles.
type VehicleRepository interface {
	List(ctx context.Context, filter VehicleFilter) ([]model.Vehicle, error)
	ListAvailable(ctx context.Context) ([]model.Vehicle, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Vehicle, error)
	GetByPlate(ctx context.Context, plate string) (*model.Vehicle, error)
	Create(ctx context.Context, vehicle *model.Vehicle) error
	Save(ctx context.Context, vehicle *model.Vehicle) error
	SetStatus(ctx context.Context, id uuid.UUID, status model.VehicleStatus) error
	// SetStatusFrom performs a conditional status write: the update applies
	// only while the vehicle still has the expected status. It reports
	// whether a row was updated.
	SetStatusFrom(ctx context.Context, id uuid.UUID, from, to model.VehicleStatus) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
