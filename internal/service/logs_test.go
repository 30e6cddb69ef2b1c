package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"fleetflow/internal/model"
	"fleetflow/internal/service"
)

func TestFuelLogCreate_DefaultsOdometerToVehicle(t *testing.T) {
	t.Parallel()

	store := newMockStore()
	vehicle := seedVehicle(t, store, func(v *model.Vehicle) { v.Odometer = 4200 })
	svc := service.NewFuelLogService(store)

	log, err := svc.Create(context.Background(), service.CreateFuelLogInput{
		VehicleID: vehicle.ID,
		Liters:    30,
		Cost:      150,
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if log.OdometerAtFill == nil || *log.OdometerAtFill != 4200 {
		t.Errorf("expected odometer default 4200, got %v", log.OdometerAtFill)
	}
	if log.Date.IsZero() {
		t.Error("expected date to default to now")
	}
}

func TestFuelLogCreate_UnknownVehicle(t *testing.T) {
	t.Parallel()

	store := newMockStore()
	svc := service.NewFuelLogService(store)

	_, err := svc.Create(context.Background(), service.CreateFuelLogInput{
		VehicleID: uuid.New(),
		Liters:    30,
		Cost:      150,
	})
	if err == nil || err.Error() != "Vehicle not found." {
		t.Errorf("expected vehicle not found, got: %v", err)
	}
}

func TestServiceLogCreate_MovesVehicleToShop(t *testing.T) {
	t.Parallel()

	store := newMockStore()
	vehicle := seedVehicle(t, store, nil)
	svc := service.NewServiceLogService(store)

	log, err := svc.Create(context.Background(), service.CreateServiceLogInput{
		VehicleID:   vehicle.ID,
		ServiceType: "Oil change",
		Cost:        120,
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if log.ServiceType != "Oil change" {
		t.Errorf("expected service type to persist, got %q", log.ServiceType)
	}

	got, _ := store.vehicles.GetByID(context.Background(), vehicle.ID)
	if got.Status != model.VehicleStatusInShop {
		t.Errorf("logging maintenance must move the vehicle In Shop, got %s", got.Status)
	}
}

func TestServiceLogDelete_Unknown(t *testing.T) {
	t.Parallel()

	store := newMockStore()
	svc := service.NewServiceLogService(store)

	err := svc.Delete(context.Background(), uuid.New())
	if err == nil || err.Error() != "Service log not found." {
		t.Errorf("expected not found, got: %v", err)
	}
}
