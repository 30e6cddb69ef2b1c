package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"fleetflow/internal/model"
	"fleetflow/internal/repository"
)

type TripService struct {
	store repository.Store
	now   func() time.Time
}

func NewTripService(store repository.Store) *TripService {
	return &TripService{store: store, now: time.Now}
}

type ListTripsOptions struct {
	Status    *model.TripStatus
	VehicleID *uuid.UUID
	DriverID  *uuid.UUID
}

func (s *TripService) List(ctx context.Context, opts ListTripsOptions) ([]model.Trip, error) {
	return s.store.Trips().List(ctx, repository.TripFilter{
		Status:    opts.Status,
		VehicleID: opts.VehicleID,
		DriverID:  opts.DriverID,
	})
}

func (s *TripService) Get(ctx context.Context, id uuid.UUID) (*model.Trip, error) {
	trip, err := s.store.Trips().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("Trip not found.")
		}
		return nil, err
	}
	return trip, nil
}

type CreateTripInput struct {
	VehicleID   uuid.UUID
	DriverID    uuid.UUID
	CargoWeight float64
	Origin      string
	Destination string
	Revenue     float64
	Distance    float64
}

// Create validates the vehicle/driver pair and persists a Draft trip. The
// checks run in a fixed order and the first failure wins: vehicle exists,
// vehicle available, driver exists, then the driver and cargo rules. Nothing
// is reserved on the vehicle or driver until dispatch.
func (s *TripService) Create(ctx context.Context, input CreateTripInput) (*model.Trip, error) {
	vehicle, err := s.store.Vehicles().GetByID(ctx, input.VehicleID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("Vehicle not found.")
		}
		return nil, err
	}
	if err := checkVehicleAvailable(vehicle); err != nil {
		return nil, err
	}

	driver, err := s.store.Drivers().GetByID(ctx, input.DriverID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("Driver not found.")
		}
		return nil, err
	}

	if err := s.checkDriverAssignment(driver, vehicle, input.CargoWeight); err != nil {
		return nil, err
	}

	trip := &model.Trip{
		VehicleID:   vehicle.ID,
		DriverID:    driver.ID,
		CargoWeight: input.CargoWeight,
		Origin:      input.Origin,
		Destination: input.Destination,
		Revenue:     input.Revenue,
		Distance:    input.Distance,
		Status:      model.TripStatusDraft,
	}
	if err := s.store.Trips().Create(ctx, trip); err != nil {
		return nil, err
	}

	return s.store.Trips().GetByID(ctx, trip.ID)
}

// checkVehicleAvailable runs the vehicle side of the dispatch eligibility
// rules. It is checked before the driver is even looked up, so an unavailable
// vehicle wins over a bad driver id.
func checkVehicleAvailable(vehicle *model.Vehicle) error {
	if !VehicleAvailableForDispatch(vehicle) {
		if vehicle.Status == model.VehicleStatusOnTrip {
			return validationf("Vehicle is already on a trip.")
		}
		return validationf("Vehicle is not available for dispatch (In Shop or Out of Service).")
	}
	return nil
}

// checkDriverAssignment runs the driver and cargo eligibility rules in
// precondition order.
func (s *TripService) checkDriverAssignment(driver *model.Driver, vehicle *model.Vehicle, cargoWeight float64) error {
	if driver.Status == model.DriverStatusSuspended {
		return validationf("Driver is suspended and cannot be assigned.")
	}
	if !driver.LicenseExpiryDate.After(s.now()) {
		return validationf("Driver license has expired.")
	}
	if !DriverEligibleForVehicle(driver, vehicle) {
		return validationf("Driver is not allowed to drive this vehicle type.")
	}
	if !CargoFits(cargoWeight, vehicle) {
		return validationf("Cargo weight (%g kg) exceeds vehicle max load capacity (%g kg).", cargoWeight, vehicle.MaxLoadCapacity)
	}
	return nil
}

type UpdateTripInput struct {
	VehicleID   *uuid.UUID
	DriverID    *uuid.UUID
	CargoWeight *float64
	Origin      *string
	Destination *string
	Revenue     *float64
	Distance    *float64
}

// Update edits a Draft trip. The full eligibility check set is re-run
// against the effective vehicle/driver pair, not just the cargo rule, so a
// swap cannot smuggle in an ineligible assignment.
func (s *TripService) Update(ctx context.Context, id uuid.UUID, input UpdateTripInput) (*model.Trip, error) {
	trip, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if trip.Status != model.TripStatusDraft {
		return nil, validationf("Only draft trips can be edited.")
	}

	vehicle := trip.Vehicle
	if input.VehicleID != nil && *input.VehicleID != trip.VehicleID {
		vehicle, err = s.store.Vehicles().GetByID(ctx, *input.VehicleID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, notFound("Vehicle not found.")
			}
			return nil, err
		}
	}
	if err := checkVehicleAvailable(vehicle); err != nil {
		return nil, err
	}

	driver := trip.Driver
	if input.DriverID != nil && *input.DriverID != trip.DriverID {
		driver, err = s.store.Drivers().GetByID(ctx, *input.DriverID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, notFound("Driver not found.")
			}
			return nil, err
		}
	}

	weight := trip.CargoWeight
	if input.CargoWeight != nil {
		weight = *input.CargoWeight
	}

	if err := s.checkDriverAssignment(driver, vehicle, weight); err != nil {
		return nil, err
	}

	trip.VehicleID = vehicle.ID
	trip.DriverID = driver.ID
	trip.CargoWeight = weight
	if input.Origin != nil {
		trip.Origin = *input.Origin
	}
	if input.Destination != nil {
		trip.Destination = *input.Destination
	}
	if input.Revenue != nil {
		trip.Revenue = *input.Revenue
	}
	if input.Distance != nil {
		trip.Distance = *input.Distance
	}

	if err := s.store.Trips().Save(ctx, trip); err != nil {
		return nil, err
	}
	return s.store.Trips().GetByID(ctx, trip.ID)
}

// UpdateStatus applies a lifecycle transition and its side effects on the
// assigned vehicle and driver. The trip update and the side effects run in
// one transaction; dispatch reserves the vehicle and driver with conditional
// writes so two concurrent dispatches cannot both win.
func (s *TripService) UpdateStatus(ctx context.Context, id uuid.UUID, target model.TripStatus) (*model.Trip, error) {
	if !target.Valid() {
		return nil, validationf("Valid status required: %s", joinTripStatuses())
	}

	trip, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanTransition(trip.Status, target) {
		return nil, validationf("Cannot change trip status from %s to %s.", trip.Status, target)
	}

	prev := trip.Status
	now := s.now()

	err = s.store.Transact(ctx, func(tx repository.Store) error {
		switch target {
		case model.TripStatusDispatched:
			ok, err := tx.Vehicles().SetStatusFrom(ctx, trip.VehicleID, model.VehicleStatusAvailable, model.VehicleStatusOnTrip)
			if err != nil {
				return err
			}
			if !ok {
				return conflictf("Vehicle is no longer available for dispatch.")
			}
			ok, err = tx.Drivers().SetStatusFrom(ctx, trip.DriverID, model.DriverStatusOffDuty, model.DriverStatusOnDuty)
			if err != nil {
				return err
			}
			if !ok {
				return conflictf("Driver is no longer available for dispatch.")
			}
			trip.Status = target
			trip.DispatchedAt = &now

		case model.TripStatusCompleted:
			trip.Status = target
			trip.CompletedAt = &now
			if err := tx.Vehicles().SetStatus(ctx, trip.VehicleID, model.VehicleStatusAvailable); err != nil {
				return err
			}
			if err := tx.Drivers().SetStatus(ctx, trip.DriverID, model.DriverStatusOffDuty); err != nil {
				return err
			}
			if err := tx.Drivers().IncrementTripsCompleted(ctx, trip.DriverID); err != nil {
				return err
			}

		case model.TripStatusCancelled:
			trip.Status = target
			if prev == model.TripStatusDispatched {
				if err := tx.Vehicles().SetStatus(ctx, trip.VehicleID, model.VehicleStatusAvailable); err != nil {
					return err
				}
				if err := tx.Drivers().SetStatus(ctx, trip.DriverID, model.DriverStatusOffDuty); err != nil {
					return err
				}
			}
		}
		return tx.Trips().Save(ctx, trip)
	})
	if err != nil {
		return nil, err
	}

	return s.store.Trips().GetByID(ctx, trip.ID)
}

func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	trip, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if trip.Status == model.TripStatusDispatched {
		return validationf("Cannot delete a dispatched trip. Cancel it first.")
	}
	return s.store.Trips().Delete(ctx, id)
}

func joinTripStatuses() string {
	names := make([]string, 0, len(model.TripStatuses))
	for _, st := range model.TripStatuses {
		names = append(names, string(st))
	}
	return strings.Join(names, ", ")
}
