package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"fleetflow/internal/model"
	"fleetflow/internal/repository"
)

type FuelLogService struct {
	store repository.Store
	now   func() time.Time
}

func NewFuelLogService(store repository.Store) *FuelLogService {
	return &FuelLogService{store: store, now: time.Now}
}

func (s *FuelLogService) List(ctx context.Context, vehicleID *uuid.UUID) ([]model.FuelLog, error) {
	return s.store.FuelLogs().List(ctx, vehicleID)
}

func (s *FuelLogService) Get(ctx context.Context, id uuid.UUID) (*model.FuelLog, error) {
	log, err := s.store.FuelLogs().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("Fuel log not found.")
		}
		return nil, err
	}
	return log, nil
}

type CreateFuelLogInput struct {
	VehicleID      uuid.UUID
	Liters         float64
	Cost           float64
	Date           *time.Time
	OdometerAtFill *float64
}

func (s *FuelLogService) Create(ctx context.Context, input CreateFuelLogInput) (*model.FuelLog, error) {
	vehicle, err := s.store.Vehicles().GetByID(ctx, input.VehicleID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("Vehicle not found.")
		}
		return nil, err
	}

	date := s.now()
	if input.Date != nil {
		date = *input.Date
	}
	odometer := input.OdometerAtFill
	if odometer == nil {
		// Fall back to the vehicle's current reading so consecutive fills
		// still yield a distance delta.
		reading := vehicle.Odometer
		odometer = &reading
	}

	log := &model.FuelLog{
		VehicleID:      vehicle.ID,
		Liters:         input.Liters,
		Cost:           input.Cost,
		Date:           date,
		OdometerAtFill: odometer,
	}
	if err := s.store.FuelLogs().Create(ctx, log); err != nil {
		return nil, err
	}
	return s.store.FuelLogs().GetByID(ctx, log.ID)
}

type UpdateFuelLogInput struct {
	Liters         *float64
	Cost           *float64
	Date           *time.Time
	OdometerAtFill *float64
}

func (s *FuelLogService) Update(ctx context.Context, id uuid.UUID, input UpdateFuelLogInput) (*model.FuelLog, error) {
	log, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Liters != nil {
		log.Liters = *input.Liters
	}
	if input.Cost != nil {
		log.Cost = *input.Cost
	}
	if input.Date != nil {
		log.Date = *input.Date
	}
	if input.OdometerAtFill != nil {
		log.OdometerAtFill = input.OdometerAtFill
	}

	if err := s.store.FuelLogs().Save(ctx, log); err != nil {
		return nil, err
	}
	return s.store.FuelLogs().GetByID(ctx, log.ID)
}

func (s *FuelLogService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.FuelLogs().Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("Fuel log not found.")
		}
		return err
	}
	return nil
}

type ServiceLogService struct {
	store repository.Store
	now   func() time.Time
}

func NewServiceLogService(store repository.Store) *ServiceLogService {
	return &ServiceLogService{store: store, now: time.Now}
}

func (s *ServiceLogService) List(ctx context.Context, vehicleID *uuid.UUID) ([]model.ServiceLog, error) {
	return s.store.ServiceLogs().List(ctx, vehicleID)
}

func (s *ServiceLogService) Get(ctx context.Context, id uuid.UUID) (*model.ServiceLog, error) {
	log, err := s.store.ServiceLogs().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("Service log not found.")
		}
		return nil, err
	}
	return log, nil
}

type CreateServiceLogInput struct {
	VehicleID   uuid.UUID
	ServiceType string
	Cost        float64
	Date        *time.Time
	Notes       string
}

// Create records a maintenance entry and moves the vehicle into the shop.
func (s *ServiceLogService) Create(ctx context.Context, input CreateServiceLogInput) (*model.ServiceLog, error) {
	vehicle, err := s.store.Vehicles().GetByID(ctx, input.VehicleID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("Vehicle not found.")
		}
		return nil, err
	}

	date := s.now()
	if input.Date != nil {
		date = *input.Date
	}

	log := &model.ServiceLog{
		VehicleID:   vehicle.ID,
		ServiceType: input.ServiceType,
		Cost:        input.Cost,
		Date:        date,
		Notes:       input.Notes,
	}
	if err := s.store.ServiceLogs().Create(ctx, log); err != nil {
		return nil, err
	}
	if err := s.store.Vehicles().SetStatus(ctx, vehicle.ID, model.VehicleStatusInShop); err != nil {
		return nil, err
	}
	return s.store.ServiceLogs().GetByID(ctx, log.ID)
}

type UpdateServiceLogInput struct {
	ServiceType *string
	Cost        *float64
	Date        *time.Time
	Notes       *string
}

func (s *ServiceLogService) Update(ctx context.Context, id uuid.UUID, input UpdateServiceLogInput) (*model.ServiceLog, error) {
	log, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.ServiceType != nil {
		log.ServiceType = *input.ServiceType
	}
	if input.Cost != nil {
		log.Cost = *input.Cost
	}
	if input.Date != nil {
		log.Date = *input.Date
	}
	if input.Notes != nil {
		log.Notes = *input.Notes
	}

	if err := s.store.ServiceLogs().Save(ctx, log); err != nil {
		return nil, err
	}
	return s.store.ServiceLogs().GetByID(ctx, log.ID)
}

func (s *ServiceLogService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.ServiceLogs().Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("Service log not found.")
		}
		return err
	}
	return nil
}
