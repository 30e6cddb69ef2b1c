package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"fleetflow/internal/model"
	"fleetflow/internal/repository"
)

type VehicleService struct {
	store repository.Store
}

func NewVehicleService(store repository.Store) *VehicleService {
	return &VehicleService{store: store}
}

type ListVehiclesOptions struct {
	VehicleType *model.VehicleType
	Status      *model.VehicleStatus
	Region      string
}

func (s *VehicleService) List(ctx context.Context, opts ListVehiclesOptions) ([]model.Vehicle, error) {
	return s.store.Vehicles().List(ctx, repository.VehicleFilter{
		VehicleType: opts.VehicleType,
		Status:      opts.Status,
		Region:      opts.Region,
	})
}

func (s *VehicleService) ListAvailable(ctx context.Context) ([]model.Vehicle, error) {
	return s.store.Vehicles().ListAvailable(ctx)
}

func (s *VehicleService) Get(ctx context.Context, id uuid.UUID) (*model.Vehicle, error) {
	vehicle, err := s.store.Vehicles().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("Vehicle not found.")
		}
		return nil, err
	}
	return vehicle, nil
}

type CreateVehicleInput struct {
	Name            string
	Model           string
	LicensePlate    string
	VehicleType     model.VehicleType
	MaxLoadCapacity float64
	Odometer        float64
	Status          model.VehicleStatus
	Region          string
	AcquisitionCost float64
}

func (s *VehicleService) Create(ctx context.Context, input CreateVehicleInput) (*model.Vehicle, error) {
	if !input.VehicleType.Valid() {
		return nil, validationf("Invalid vehicleType. Use: Truck, Van, Bike")
	}

	plate := model.NormalizePlate(input.LicensePlate)
	if _, err := s.store.Vehicles().GetByPlate(ctx, plate); err == nil {
		return nil, validationf("License plate already in use.")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	status := input.Status
	if !status.Valid() {
		status = model.VehicleStatusAvailable
	}

	vehicle := &model.Vehicle{
		Name:            input.Name,
		Model:           input.Model,
		LicensePlate:    plate,
		VehicleType:     input.VehicleType,
		MaxLoadCapacity: input.MaxLoadCapacity,
		Odometer:        input.Odometer,
		Status:          status,
		Region:          input.Region,
		AcquisitionCost: input.AcquisitionCost,
	}
	if err := s.store.Vehicles().Create(ctx, vehicle); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, validationf("License plate already in use.")
		}
		return nil, err
	}
	return vehicle, nil
}

type UpdateVehicleInput struct {
	Name            *string
	Model           *string
	LicensePlate    *string
	VehicleType     *model.VehicleType
	MaxLoadCapacity *float64
	Odometer        *float64
	Status          *model.VehicleStatus
	Region          *string
	AcquisitionCost *float64
	OutOfService    *bool
}

func (s *VehicleService) Update(ctx context.Context, id uuid.UUID, input UpdateVehicleInput) (*model.Vehicle, error) {
	vehicle, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		vehicle.Name = *input.Name
	}
	if input.Model != nil {
		vehicle.Model = *input.Model
	}
	if input.LicensePlate != nil {
		plate := model.NormalizePlate(*input.LicensePlate)
		if plate != vehicle.LicensePlate {
			if _, err := s.store.Vehicles().GetByPlate(ctx, plate); err == nil {
				return nil, validationf("License plate already in use.")
			} else if !errors.Is(err, repository.ErrNotFound) {
				return nil, err
			}
			vehicle.LicensePlate = plate
		}
	}
	if input.VehicleType != nil && input.VehicleType.Valid() {
		vehicle.VehicleType = *input.VehicleType
	}
	if input.MaxLoadCapacity != nil {
		vehicle.MaxLoadCapacity = *input.MaxLoadCapacity
	}
	if input.Odometer != nil {
		vehicle.Odometer = *input.Odometer
	}
	if input.Status != nil && input.Status.Valid() {
		vehicle.Status = *input.Status
	}
	if input.Region != nil {
		vehicle.Region = *input.Region
	}
	if input.AcquisitionCost != nil {
		vehicle.AcquisitionCost = *input.AcquisitionCost
	}
	if input.OutOfService != nil {
		if *input.OutOfService {
			vehicle.Status = model.VehicleStatusOutOfService
		} else if vehicle.Status == model.VehicleStatusOutOfService {
			vehicle.Status = model.VehicleStatusAvailable
		}
	}

	if err := s.store.Vehicles().Save(ctx, vehicle); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, validationf("License plate already in use.")
		}
		return nil, err
	}
	return vehicle, nil
}

func (s *VehicleService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Vehicles().Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("Vehicle not found.")
		}
		if errors.Is(err, repository.ErrReferenced) {
			return validationf("Vehicle has trip history and cannot be deleted.")
		}
		return err
	}
	return nil
}
