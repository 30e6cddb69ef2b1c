package service

import (
	"context"
	"errors"
	"math"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"fleetflow/internal/model"
	"fleetflow/internal/repository"
)

// AnalyticsService derives per-vehicle cost and efficiency metrics from the
// raw fuel and service logs. All computations are read-only and independent
// per vehicle, so they fan out concurrently.
type AnalyticsService struct {
	store repository.Store
}

func NewAnalyticsService(store repository.Store) *AnalyticsService {
	return &AnalyticsService{store: store}
}

type CostTotals struct {
	TotalFuelCost        float64 `json:"totalFuelCost"`
	TotalMaintenanceCost float64 `json:"totalMaintenanceCost"`
	TotalOperationalCost float64 `json:"totalOperationalCost"`
}

type OperationalCostReport struct {
	VehicleID    uuid.UUID `json:"vehicleId"`
	VehicleName  string    `json:"vehicleName"`
	LicensePlate string    `json:"licensePlate"`
	CostTotals
}

type FuelEfficiencyReport struct {
	VehicleID    uuid.UUID `json:"vehicleId"`
	VehicleName  string    `json:"vehicleName"`
	LicensePlate string    `json:"licensePlate"`
	TotalLiters  float64   `json:"totalLiters"`
	TotalKm      float64   `json:"totalKm"`
	KmPerLiter   *float64  `json:"kmPerLiter"`
}

type ROIReport struct {
	VehicleID            uuid.UUID `json:"vehicleId"`
	VehicleName          string    `json:"vehicleName"`
	LicensePlate         string    `json:"licensePlate"`
	Revenue              float64   `json:"revenue"`
	TotalOperationalCost float64   `json:"totalOperationalCost"`
	AcquisitionCost      float64   `json:"acquisitionCost"`
	ROI                  *float64  `json:"roi"`
}

type CostPerKmReport struct {
	VehicleID            uuid.UUID `json:"vehicleId"`
	VehicleName          string    `json:"vehicleName"`
	LicensePlate         string    `json:"licensePlate"`
	TotalDistance        float64   `json:"totalDistance"`
	TotalOperationalCost float64   `json:"totalOperationalCost"`
	CostPerKm            *float64  `json:"costPerKm"`
}

// AggregateCosts sums fuel and maintenance spend for one vehicle. Missing
// cost fields are zero-valued already, so a plain sum suffices.
func (s *AnalyticsService) AggregateCosts(ctx context.Context, vehicleID uuid.UUID) (CostTotals, error) {
	fuelLogs, err := s.store.FuelLogs().ListByVehicleAsc(ctx, vehicleID)
	if err != nil {
		return CostTotals{}, err
	}
	serviceLogs, err := s.store.ServiceLogs().ListByVehicle(ctx, vehicleID)
	if err != nil {
		return CostTotals{}, err
	}

	var totals CostTotals
	for _, l := range fuelLogs {
		totals.TotalFuelCost += l.Cost
	}
	for _, l := range serviceLogs {
		totals.TotalMaintenanceCost += l.Cost
	}
	totals.TotalOperationalCost = totals.TotalFuelCost + totals.TotalMaintenanceCost
	return totals, nil
}

func (s *AnalyticsService) OperationalCost(ctx context.Context, vehicleID *uuid.UUID) ([]OperationalCostReport, error) {
	return fanOut(ctx, s, vehicleID, func(ctx context.Context, v model.Vehicle) (OperationalCostReport, error) {
		totals, err := s.AggregateCosts(ctx, v.ID)
		if err != nil {
			return OperationalCostReport{}, err
		}
		return OperationalCostReport{
			VehicleID:    v.ID,
			VehicleName:  v.Name,
			LicensePlate: v.LicensePlate,
			CostTotals:   totals,
		}, nil
	})
}

// FuelEfficiency walks a vehicle's fills in date order. Distance is the sum
// of non-negative odometer deltas between consecutive readings; pairs with a
// missing reading are skipped and negative deltas clip to zero.
func (s *AnalyticsService) FuelEfficiency(ctx context.Context, vehicleID *uuid.UUID) ([]FuelEfficiencyReport, error) {
	return fanOut(ctx, s, vehicleID, func(ctx context.Context, v model.Vehicle) (FuelEfficiencyReport, error) {
		logs, err := s.store.FuelLogs().ListByVehicleAsc(ctx, v.ID)
		if err != nil {
			return FuelEfficiencyReport{}, err
		}

		var totalLiters, totalKm float64
		for i, log := range logs {
			totalLiters += log.Liters
			if i > 0 && log.OdometerAtFill != nil && logs[i-1].OdometerAtFill != nil {
				totalKm += math.Max(0, *log.OdometerAtFill-*logs[i-1].OdometerAtFill)
			}
		}

		report := FuelEfficiencyReport{
			VehicleID:    v.ID,
			VehicleName:  v.Name,
			LicensePlate: v.LicensePlate,
			TotalLiters:  totalLiters,
			TotalKm:      totalKm,
		}
		if totalLiters > 0 {
			report.KmPerLiter = round2(totalKm / totalLiters)
		}
		return report, nil
	})
}

func (s *AnalyticsService) VehicleROI(ctx context.Context, vehicleID *uuid.UUID) ([]ROIReport, error) {
	return fanOut(ctx, s, vehicleID, func(ctx context.Context, v model.Vehicle) (ROIReport, error) {
		revenue, _, err := s.completedTripTotals(ctx, v.ID)
		if err != nil {
			return ROIReport{}, err
		}
		totals, err := s.AggregateCosts(ctx, v.ID)
		if err != nil {
			return ROIReport{}, err
		}

		report := ROIReport{
			VehicleID:            v.ID,
			VehicleName:          v.Name,
			LicensePlate:         v.LicensePlate,
			Revenue:              revenue,
			TotalOperationalCost: totals.TotalOperationalCost,
			AcquisitionCost:      v.AcquisitionCost,
		}
		if v.AcquisitionCost > 0 {
			report.ROI = round2((revenue - totals.TotalOperationalCost) / v.AcquisitionCost)
		}
		return report, nil
	})
}

func (s *AnalyticsService) CostPerKm(ctx context.Context, vehicleID *uuid.UUID) ([]CostPerKmReport, error) {
	return fanOut(ctx, s, vehicleID, func(ctx context.Context, v model.Vehicle) (CostPerKmReport, error) {
		_, totalDistance, err := s.completedTripTotals(ctx, v.ID)
		if err != nil {
			return CostPerKmReport{}, err
		}
		totals, err := s.AggregateCosts(ctx, v.ID)
		if err != nil {
			return CostPerKmReport{}, err
		}

		report := CostPerKmReport{
			VehicleID:            v.ID,
			VehicleName:          v.Name,
			LicensePlate:         v.LicensePlate,
			TotalDistance:        totalDistance,
			TotalOperationalCost: totals.TotalOperationalCost,
		}
		if totalDistance > 0 {
			report.CostPerKm = round2(totals.TotalOperationalCost / totalDistance)
		}
		return report, nil
	})
}

func (s *AnalyticsService) completedTripTotals(ctx context.Context, vehicleID uuid.UUID) (revenue, distance float64, err error) {
	completed := model.TripStatusCompleted
	trips, err := s.store.Trips().List(ctx, repository.TripFilter{
		Status:    &completed,
		VehicleID: &vehicleID,
	})
	if err != nil {
		return 0, 0, err
	}
	for _, t := range trips {
		revenue += t.Revenue
		distance += t.Distance
	}
	return revenue, distance, nil
}

func (s *AnalyticsService) matchingVehicles(ctx context.Context, vehicleID *uuid.UUID) ([]model.Vehicle, error) {
	if vehicleID != nil {
		vehicle, err := s.store.Vehicles().GetByID(ctx, *vehicleID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, notFound("Vehicle not found.")
			}
			return nil, err
		}
		return []model.Vehicle{*vehicle}, nil
	}
	return s.store.Vehicles().List(ctx, repository.VehicleFilter{})
}

// fanOut computes one report per matching vehicle concurrently, preserving
// the vehicle ordering in the result.
func fanOut[T any](ctx context.Context, s *AnalyticsService, vehicleID *uuid.UUID, compute func(context.Context, model.Vehicle) (T, error)) ([]T, error) {
	vehicles, err := s.matchingVehicles(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	results := make([]T, len(vehicles))
	g, gctx := errgroup.WithContext(ctx)
	for i, vehicle := range vehicles {
		g.Go(func() error {
			report, err := compute(gctx, vehicle)
			if err != nil {
				return err
			}
			results[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func round2(v float64) *float64 {
	rounded := math.Round(v*100) / 100
	return &rounded
}
