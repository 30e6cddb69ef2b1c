package service

import (
	"context"
	"math"

	"fleetflow/internal/model"
	"fleetflow/internal/repository"
)

type DashboardService struct {
	store repository.Store
}

func NewDashboardService(store repository.Store) *DashboardService {
	return &DashboardService{store: store}
}

type KPIFilter struct {
	VehicleType *model.VehicleType
	Status      *model.VehicleStatus
	Region      string
}

type KPIs struct {
	ActiveFleet       int64 `json:"activeFleet"`
	MaintenanceAlerts int64 `json:"maintenanceAlerts"`
	UtilizationRate   int   `json:"utilizationRate"`
	PendingCargo      int64 `json:"pendingCargo"`
	TotalVehicles     int   `json:"totalVehicles"`
}

// KPIs summarizes the fleet matching the filter. The utilization rate is the
// share of matching vehicles currently On Trip, as a rounded percentage.
func (s *DashboardService) KPIs(ctx context.Context, filter KPIFilter) (*KPIs, error) {
	vehicles, err := s.store.Vehicles().List(ctx, repository.VehicleFilter{
		VehicleType: filter.VehicleType,
		Status:      filter.Status,
		Region:      filter.Region,
	})
	if err != nil {
		return nil, err
	}

	var onTrip, inShop int64
	for _, v := range vehicles {
		switch v.Status {
		case model.VehicleStatusOnTrip:
			onTrip++
		case model.VehicleStatusInShop:
			inShop++
		}
	}

	draftTrips, err := s.store.Trips().CountByStatus(ctx, model.TripStatusDraft)
	if err != nil {
		return nil, err
	}

	total := len(vehicles)
	utilization := 0
	if total > 0 {
		utilization = int(math.Round(float64(onTrip) / float64(total) * 100))
	}

	return &KPIs{
		ActiveFleet:       onTrip,
		MaintenanceAlerts: inShop,
		UtilizationRate:   utilization,
		PendingCargo:      draftTrips,
		TotalVehicles:     total,
	}, nil
}
