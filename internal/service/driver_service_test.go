package service_test

import (
	"context"
	"testing"
	"time"

	"fleetflow/internal/model"
	"fleetflow/internal/service"
)

func TestDriverCreate_RequiresVehicleTypes(t *testing.T) {
	t.Parallel()

	store := newMockStore()
	svc := service.NewDriverService(store)

	_, err := svc.Create(context.Background(), service.CreateDriverInput{
		Name:              "Aset",
		LicenseNumber:     "DL-1",
		LicenseExpiryDate: time.Now().Add(24 * time.Hour),
	})
	if err == nil || err.Error() != "At least one allowedVehicleType is required." {
		t.Errorf("expected missing types error, got: %v", err)
	}

	_, err = svc.Create(context.Background(), service.CreateDriverInput{
		Name:               "Aset",
		LicenseNumber:      "DL-1",
		LicenseExpiryDate:  time.Now().Add(24 * time.Hour),
		AllowedVehicleType: []model.VehicleType{"Scooter"},
	})
	if err == nil || err.Error() != "Invalid allowedVehicleType. Use: Truck, Van, Bike" {
		t.Errorf("expected invalid type error, got: %v", err)
	}
}

func TestDriverCreate_Defaults(t *testing.T) {
	t.Parallel()

	store := newMockStore()
	svc := service.NewDriverService(store)

	driver, err := svc.Create(context.Background(), service.CreateDriverInput{
		Name:               "Aset",
		LicenseNumber:      "DL-1",
		LicenseExpiryDate:  time.Now().Add(24 * time.Hour),
		AllowedVehicleType: []model.VehicleType{model.VehicleTypeVan},
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if driver.Status != model.DriverStatusOffDuty {
		t.Errorf("expected default status Off Duty, got %s", driver.Status)
	}
	if driver.SafetyScore != 100 {
		t.Errorf("expected default safety score 100, got %g", driver.SafetyScore)
	}
}

func TestDriverCreate_DuplicateLicense(t *testing.T) {
	t.Parallel()

	store := newMockStore()
	svc := service.NewDriverService(store)

	input := service.CreateDriverInput{
		Name:               "Aset",
		LicenseNumber:      "DL-1",
		LicenseExpiryDate:  time.Now().Add(24 * time.Hour),
		AllowedVehicleType: []model.VehicleType{model.VehicleTypeTruck},
	}
	if _, err := svc.Create(context.Background(), input); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := svc.Create(context.Background(), input)
	if err == nil || err.Error() != "License number already in use." {
		t.Errorf("expected duplicate license error, got: %v", err)
	}
}

func TestDriverUpdate_ClampsSafetyScore(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		score float64
		want  float64
	}{
		{150, 100},
		{-5, 0},
		{87.5, 87.5},
	}

	for _, tc := range testCases {
		store := newMockStore()
		driver := seedDriver(t, store, nil)
		svc := service.NewDriverService(store)

		updated, err := svc.Update(context.Background(), driver.ID, service.UpdateDriverInput{SafetyScore: &tc.score})
		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		if updated.SafetyScore != tc.want {
			t.Errorf("score %g: expected %g, got %g", tc.score, tc.want, updated.SafetyScore)
		}
	}
}

func TestDriverListAvailable_ExcludesExpiredAndBusy(t *testing.T) {
	t.Parallel()

	store := newMockStore()
	ready := seedDriver(t, store, nil)
	seedDriver(t, store, func(d *model.Driver) {
		d.LicenseNumber = "DL-200"
		d.LicenseExpiryDate = time.Now().Add(-time.Hour)
	})
	seedDriver(t, store, func(d *model.Driver) {
		d.LicenseNumber = "DL-300"
		d.Status = model.DriverStatusOnDuty
	})
	seedDriver(t, store, func(d *model.Driver) {
		d.LicenseNumber = "DL-400"
		d.Status = model.DriverStatusSuspended
	})
	svc := service.NewDriverService(store)

	drivers, err := svc.ListAvailable(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(drivers) != 1 {
		t.Fatalf("expected 1 available driver, got %d", len(drivers))
	}
	if drivers[0].ID != ready.ID {
		t.Errorf("expected driver %s, got %s", ready.ID, drivers[0].ID)
	}
}

func TestDriverDelete_WithTripHistoryRejected(t *testing.T) {
	t.Parallel()

	store := newMockStore()
	vehicle := seedVehicle(t, store, nil)
	driver := seedDriver(t, store, nil)
	seedTrip(t, store, vehicle, driver, model.TripStatusCompleted)
	svc := service.NewDriverService(store)

	err := svc.Delete(context.Background(), driver.ID)
	if err == nil || err.Error() != "Driver has trip history and cannot be deleted." {
		t.Errorf("expected trip history error, got: %v", err)
	}
	if _, getErr := store.drivers.GetByID(context.Background(), driver.ID); getErr != nil {
		t.Errorf("expected driver to survive the delete, got: %v", getErr)
	}
}
