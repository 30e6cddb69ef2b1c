package service

import (
	"context"
	"strconv"

	"fleetflow/internal/export"
	"fleetflow/internal/repository"
)

type ExportService struct {
	store     repository.Store
	analytics *AnalyticsService
}

func NewExportService(store repository.Store, analytics *AnalyticsService) *ExportService {
	return &ExportService{store: store, analytics: analytics}
}

// BuildTable assembles the export table for one of the supported report
// types: vehicles, trips, or analytics.
func (s *ExportService) BuildTable(ctx context.Context, reportType string) (*export.Table, error) {
	switch reportType {
	case "vehicles":
		return s.vehiclesTable(ctx)
	case "trips":
		return s.tripsTable(ctx)
	case "analytics":
		return s.analyticsTable(ctx)
	default:
		return nil, validationf("Export type required: vehicles, trips, or analytics.")
	}
}

func (s *ExportService) vehiclesTable(ctx context.Context) (*export.Table, error) {
	vehicles, err := s.store.Vehicles().List(ctx, repository.VehicleFilter{})
	if err != nil {
		return nil, err
	}

	table := &export.Table{
		Name:    "vehicles",
		Headers: []string{"name", "model", "licensePlate", "vehicleType", "maxLoadCapacity", "odometer", "status", "region"},
	}
	for _, v := range vehicles {
		table.Rows = append(table.Rows, []string{
			v.Name,
			v.Model,
			v.LicensePlate,
			string(v.VehicleType),
			formatNumber(v.MaxLoadCapacity),
			formatNumber(v.Odometer),
			string(v.Status),
			v.Region,
		})
	}
	return table, nil
}

func (s *ExportService) tripsTable(ctx context.Context) (*export.Table, error) {
	trips, err := s.store.Trips().List(ctx, repository.TripFilter{})
	if err != nil {
		return nil, err
	}

	table := &export.Table{
		Name:    "trips",
		Headers: []string{"origin", "destination", "cargoWeight", "revenue", "status", "vehicle", "driver"},
	}
	for _, t := range trips {
		var vehicleName, driverName string
		if t.Vehicle != nil {
			vehicleName = t.Vehicle.Name
		}
		if t.Driver != nil {
			driverName = t.Driver.Name
		}
		table.Rows = append(table.Rows, []string{
			t.Origin,
			t.Destination,
			formatNumber(t.CargoWeight),
			formatNumber(t.Revenue),
			string(t.Status),
			vehicleName,
			driverName,
		})
	}
	return table, nil
}

func (s *ExportService) analyticsTable(ctx context.Context) (*export.Table, error) {
	reports, err := s.analytics.OperationalCost(ctx, nil)
	if err != nil {
		return nil, err
	}

	table := &export.Table{
		Name:    "analytics",
		Headers: []string{"vehicleName", "licensePlate", "totalFuelCost", "totalMaintenanceCost", "totalOperationalCost"},
	}
	for _, r := range reports {
		table.Rows = append(table.Rows, []string{
			r.VehicleName,
			r.LicensePlate,
			formatNumber(r.TotalFuelCost),
			formatNumber(r.TotalMaintenanceCost),
			formatNumber(r.TotalOperationalCost),
		})
	}
	return table, nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
