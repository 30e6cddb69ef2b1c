package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleetflow/internal/model"
	"fleetflow/internal/repository"
)

type VehicleRepository struct {
	db *gorm.DB
}

func (r *VehicleRepository) List(ctx context.Context, filter repository.VehicleFilter) ([]model.Vehicle, error) {
	query := r.db.WithContext(ctx).Model(&model.Vehicle{})
	query = applyVehicleFilter(query, filter)

	var vehicles []model.Vehicle
	if err := query.Order("created_at DESC").Find(&vehicles).Error; err != nil {
		return nil, translate(err)
	}
	return vehicles, nil
}

func (r *VehicleRepository) ListAvailable(ctx context.Context) ([]model.Vehicle, error) {
	var vehicles []model.Vehicle
	err := r.db.WithContext(ctx).
		Where("status = ?", model.VehicleStatusAvailable).
		Order("name ASC").
		Find(&vehicles).Error
	if err != nil {
		return nil, translate(err)
	}
	return vehicles, nil
}

func (r *VehicleRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	if err := r.db.WithContext(ctx).First(&vehicle, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &vehicle, nil
}

func (r *VehicleRepository) GetByPlate(ctx context.Context, plate string) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	if err := r.db.WithContext(ctx).First(&vehicle, "license_plate = ?", plate).Error; err != nil {
		return nil, translate(err)
	}
	return &vehicle, nil
}

func (r *VehicleRepository) Create(ctx context.Context, vehicle *model.Vehicle) error {
	return translate(r.db.WithContext(ctx).Create(vehicle).Error)
}

func (r *VehicleRepository) Save(ctx context.Context, vehicle *model.Vehicle) error {
	return translate(r.db.WithContext(ctx).Save(vehicle).Error)
}

func (r *VehicleRepository) SetStatus(ctx context.Context, id uuid.UUID, status model.VehicleStatus) error {
	return translate(r.db.WithContext(ctx).
		Model(&model.Vehicle{}).
		Where("id = ?", id).
		Update("status", status).Error)
}

func (r *VehicleRepository) SetStatusFrom(ctx context.Context, id uuid.UUID, from, to model.VehicleStatus) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Vehicle{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return false, translate(result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *VehicleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Vehicle{}, "id = ?", id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func applyVehicleFilter(query *gorm.DB, filter repository.VehicleFilter) *gorm.DB {
	if filter.VehicleType != nil {
		query = query.Where("vehicle_type = ?", *filter.VehicleType)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Region != "" {
		query = query.Where("region ILIKE ?", "%"+filter.Region+"%")
	}
	return query
}
