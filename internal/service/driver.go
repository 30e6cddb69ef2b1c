package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"fleetflow/internal/model"
	"fleetflow/internal/repository"
)

type DriverService struct {
	store repository.Store
	now   func() time.Time
}

func NewDriverService(store repository.Store) *DriverService {
	return &DriverService{store: store, now: time.Now}
}

func (s *DriverService) List(ctx context.Context, status *model.DriverStatus) ([]model.Driver, error) {
	return s.store.Drivers().List(ctx, repository.DriverFilter{Status: status})
}

func (s *DriverService) ListAvailable(ctx context.Context) ([]model.Driver, error) {
	return s.store.Drivers().ListAvailable(ctx, s.now())
}

func (s *DriverService) Get(ctx context.Context, id uuid.UUID) (*model.Driver, error) {
	driver, err := s.store.Drivers().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("Driver not found.")
		}
		return nil, err
	}
	return driver, nil
}

type CreateDriverInput struct {
	Name               string
	LicenseNumber      string
	LicenseExpiryDate  time.Time
	AllowedVehicleType []model.VehicleType
	Status             model.DriverStatus
	SafetyScore        *float64
	Email              string
	Phone              string
}

func (s *DriverService) Create(ctx context.Context, input CreateDriverInput) (*model.Driver, error) {
	if len(input.AllowedVehicleType) == 0 {
		return nil, validationf("At least one allowedVehicleType is required.")
	}
	for _, t := range input.AllowedVehicleType {
		if !t.Valid() {
			return nil, validationf("Invalid allowedVehicleType. Use: Truck, Van, Bike")
		}
	}

	status := input.Status
	if !status.Valid() {
		status = model.DriverStatusOffDuty
	}
	safetyScore := 100.0
	if input.SafetyScore != nil {
		safetyScore = clampScore(*input.SafetyScore)
	}

	driver := &model.Driver{
		Name:               input.Name,
		LicenseNumber:      input.LicenseNumber,
		LicenseExpiryDate:  input.LicenseExpiryDate,
		AllowedVehicleType: input.AllowedVehicleType,
		Status:             status,
		SafetyScore:        safetyScore,
		Email:              input.Email,
		Phone:              input.Phone,
	}
	if err := s.store.Drivers().Create(ctx, driver); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, validationf("License number already in use.")
		}
		return nil, err
	}
	return driver, nil
}

type UpdateDriverInput struct {
	Name               *string
	LicenseNumber      *string
	LicenseExpiryDate  *time.Time
	AllowedVehicleType []model.VehicleType
	Status             *model.DriverStatus
	SafetyScore        *float64
	Email              *string
	Phone              *string
}

func (s *DriverService) Update(ctx context.Context, id uuid.UUID, input UpdateDriverInput) (*model.Driver, error) {
	driver, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		driver.Name = *input.Name
	}
	if input.LicenseNumber != nil {
		driver.LicenseNumber = *input.LicenseNumber
	}
	if input.LicenseExpiryDate != nil {
		driver.LicenseExpiryDate = *input.LicenseExpiryDate
	}
	if input.AllowedVehicleType != nil {
		for _, t := range input.AllowedVehicleType {
			if !t.Valid() {
				return nil, validationf("Invalid allowedVehicleType.")
			}
		}
		if len(input.AllowedVehicleType) > 0 {
			driver.AllowedVehicleType = input.AllowedVehicleType
		}
	}
	if input.Status != nil && input.Status.Valid() {
		driver.Status = *input.Status
	}
	if input.SafetyScore != nil {
		driver.SafetyScore = clampScore(*input.SafetyScore)
	}
	if input.Email != nil {
		driver.Email = *input.Email
	}
	if input.Phone != nil {
		driver.Phone = *input.Phone
	}

	if err := s.store.Drivers().Save(ctx, driver); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, validationf("License number already in use.")
		}
		return nil, err
	}
	return driver, nil
}

func (s *DriverService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Drivers().Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("Driver not found.")
		}
		if errors.Is(err, repository.ErrReferenced) {
			return validationf("Driver has trip history and cannot be deleted.")
		}
		return err
	}
	return nil
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
