package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleetflow/internal/model"
	"fleetflow/internal/repository"
)

type TripRepository struct {
	db *gorm.DB
}

func (r *TripRepository) List(ctx context.Context, filter repository.TripFilter) ([]model.Trip, error) {
	query := r.db.WithContext(ctx).Model(&model.Trip{})
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.VehicleID != nil {
		query = query.Where("vehicle_id = ?", *filter.VehicleID)
	}
	if filter.DriverID != nil {
		query = query.Where("driver_id = ?", *filter.DriverID)
	}

	var trips []model.Trip
	err := query.
		Order("created_at DESC").
		Preload("Vehicle").
		Preload("Driver").
		Find(&trips).Error
	if err != nil {
		return nil, translate(err)
	}
	return trips, nil
}

func (r *TripRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Trip, error) {
	var trip model.Trip
	err := r.db.WithContext(ctx).
		Preload("Vehicle").
		Preload("Driver").
		First(&trip, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &trip, nil
}

func (r *TripRepository) Create(ctx context.Context, trip *model.Trip) error {
	return translate(r.db.WithContext(ctx).Omit("Vehicle", "Driver").Create(trip).Error)
}

func (r *TripRepository) Save(ctx context.Context, trip *model.Trip) error {
	return translate(r.db.WithContext(ctx).Omit("Vehicle", "Driver").Save(trip).Error)
}

func (r *TripRepository) CountByStatus(ctx context.Context, status model.TripStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Trip{}).
		Where("status = ?", status).
		Count(&count).Error
	if err != nil {
		return 0, translate(err)
	}
	return count, nil
}

func (r *TripRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Trip{}, "id = ?", id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
