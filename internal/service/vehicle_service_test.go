package service_test

import (
	"context"
	"testing"

	"fleetflow/internal/model"
	"fleetflow/internal/service"
)

func TestVehicleCreate_NormalizesPlate(t *testing.T) {
	t.Parallel()

	store := newMockStore()
	svc := service.NewVehicleService(store)

	vehicle, err := svc.Create(context.Background(), service.CreateVehicleInput{
		Name:            "Truck A",
		LicensePlate:    "  kz-777-ab ",
		VehicleType:     model.VehicleTypeTruck,
		MaxLoadCapacity: 1000,
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if vehicle.LicensePlate != "KZ-777-AB" {
		t.Errorf("expected normalized plate KZ-777-AB, got %q", vehicle.LicensePlate)
	}
	if vehicle.Status != model.VehicleStatusAvailable {
		t.Errorf("expected default status Available, got %s", vehicle.Status)
	}
}

func TestVehicleCreate_DuplicatePlateRejected(t *testing.T) {
	t.Parallel()

	store := newMockStore()
	svc := service.NewVehicleService(store)

	input := service.CreateVehicleInput{
		Name:            "Truck A",
		LicensePlate:    "KZ-777-AB",
		VehicleType:     model.VehicleTypeTruck,
		MaxLoadCapacity: 1000,
	}
	if _, err := svc.Create(context.Background(), input); err != nil {
		t.Fatalf("first create: %v", err)
	}

	// Same plate with different spacing and case still collides.
	input.LicensePlate = "kz-777-ab "
	_, err := svc.Create(context.Background(), input)
	if err == nil || err.Error() != "License plate already in use." {
		t.Errorf("expected duplicate plate error, got: %v", err)
	}
}

func TestVehicleCreate_InvalidType(t *testing.T) {
	t.Parallel()

	store := newMockStore()
	svc := service.NewVehicleService(store)

	_, err := svc.Create(context.Background(), service.CreateVehicleInput{
		Name:            "Truck A",
		LicensePlate:    "KZ-1",
		VehicleType:     model.VehicleType("Tank"),
		MaxLoadCapacity: 1000,
	})
	if err == nil || err.Error() != "Invalid vehicleType. Use: Truck, Van, Bike" {
		t.Errorf("expected invalid type error, got: %v", err)
	}
}

func TestVehicleUpdate_OutOfServiceToggle(t *testing.T) {
	t.Parallel()

	store := newMockStore()
	vehicle := seedVehicle(t, store, nil)
	svc := service.NewVehicleService(store)

	on := true
	updated, err := svc.Update(context.Background(), vehicle.ID, service.UpdateVehicleInput{OutOfService: &on})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if updated.Status != model.VehicleStatusOutOfService {
		t.Errorf("expected Out of Service, got %s", updated.Status)
	}

	off := false
	updated, err = svc.Update(context.Background(), vehicle.ID, service.UpdateVehicleInput{OutOfService: &off})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if updated.Status != model.VehicleStatusAvailable {
		t.Errorf("expected Available after toggle off, got %s", updated.Status)
	}
}

func TestVehicleUpdate_ToggleOffLeavesOtherStatuses(t *testing.T) {
	t.Parallel()

	store := newMockStore()
	vehicle := seedVehicle(t, store, func(v *model.Vehicle) { v.Status = model.VehicleStatusInShop })
	svc := service.NewVehicleService(store)

	off := false
	updated, err := svc.Update(context.Background(), vehicle.ID, service.UpdateVehicleInput{OutOfService: &off})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if updated.Status != model.VehicleStatusInShop {
		t.Errorf("toggle off must only release Out of Service, got %s", updated.Status)
	}
}

func TestVehicleDelete_Unknown(t *testing.T) {
	t.Parallel()

	store := newMockStore()
	vehicle := seedVehicle(t, store, nil)
	svc := service.NewVehicleService(store)

	if err := svc.Delete(context.Background(), vehicle.ID); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if err := svc.Delete(context.Background(), vehicle.ID); err == nil || err.Error() != "Vehicle not found." {
		t.Errorf("expected not found on second delete, got: %v", err)
	}
}

func TestVehicleDelete_WithTripHistoryRejected(t *testing.T) {
	t.Parallel()

	store := newMockStore()
	vehicle := seedVehicle(t, store, nil)
	driver := seedDriver(t, store, nil)
	seedTrip(t, store, vehicle, driver, model.TripStatusCompleted)
	svc := service.NewVehicleService(store)

	err := svc.Delete(context.Background(), vehicle.ID)
	if err == nil || err.Error() != "Vehicle has trip history and cannot be deleted." {
		t.Errorf("expected trip history error, got: %v", err)
	}
	if _, getErr := store.vehicles.GetByID(context.Background(), vehicle.ID); getErr != nil {
		t.Errorf("expected vehicle to survive the delete, got: %v", getErr)
	}
}
