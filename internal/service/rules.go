package service

import (
	"time"

	"fleetflow/internal/model"
)

// Dispatch eligibility rules. These are pure checks with no store access;
// the trip service runs them, in order, at creation and edit time.

func VehicleAvailableForDispatch(v *model.Vehicle) bool {
	return v.Status == model.VehicleStatusAvailable
}

func DriverAvailableForDispatch(d *model.Driver, now time.Time) bool {
	return d.Status == model.DriverStatusOffDuty && d.LicenseExpiryDate.After(now)
}

func DriverEligibleForVehicle(d *model.Driver, v *model.Vehicle) bool {
	return d.CanDrive(v.VehicleType)
}

func CargoFits(weight float64, v *model.Vehicle) bool {
	return weight <= v.MaxLoadCapacity
}
