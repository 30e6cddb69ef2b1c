package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleetflow/internal/model"
	"fleetflow/internal/repository"
)

type FuelLogRepository struct {
	db *gorm.DB
}

func (r *FuelLogRepository) List(ctx context.Context, vehicleID *uuid.UUID) ([]model.FuelLog, error) {
	query := r.db.WithContext(ctx).Model(&model.FuelLog{})
	if vehicleID != nil {
		query = query.Where("vehicle_id = ?", *vehicleID)
	}

	var logs []model.FuelLog
	if err := query.Order("date DESC").Preload("Vehicle").Find(&logs).Error; err != nil {
		return nil, translate(err)
	}
	return logs, nil
}

func (r *FuelLogRepository) ListByVehicleAsc(ctx context.Context, vehicleID uuid.UUID) ([]model.FuelLog, error) {
	var logs []model.FuelLog
	err := r.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("date ASC").
		Find(&logs).Error
	if err != nil {
		return nil, translate(err)
	}
	return logs, nil
}

func (r *FuelLogRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.FuelLog, error) {
	var log model.FuelLog
	if err := r.db.WithContext(ctx).Preload("Vehicle").First(&log, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &log, nil
}

func (r *FuelLogRepository) Create(ctx context.Context, log *model.FuelLog) error {
	return translate(r.db.WithContext(ctx).Omit("Vehicle").Create(log).Error)
}

func (r *FuelLogRepository) Save(ctx context.Context, log *model.FuelLog) error {
	return translate(r.db.WithContext(ctx).Omit("Vehicle").Save(log).Error)
}

func (r *FuelLogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.FuelLog{}, "id = ?", id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

type ServiceLogRepository struct {
	db *gorm.DB
}

func (r *ServiceLogRepository) List(ctx context.Context, vehicleID *uuid.UUID) ([]model.ServiceLog, error) {
	query := r.db.WithContext(ctx).Model(&model.ServiceLog{})
	if vehicleID != nil {
		query = query.Where("vehicle_id = ?", *vehicleID)
	}

	var logs []model.ServiceLog
	if err := query.Order("date DESC").Preload("Vehicle").Find(&logs).Error; err != nil {
		return nil, translate(err)
	}
	return logs, nil
}

func (r *ServiceLogRepository) ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]model.ServiceLog, error) {
	var logs []model.ServiceLog
	err := r.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("date DESC").
		Find(&logs).Error
	if err != nil {
		return nil, translate(err)
	}
	return logs, nil
}

func (r *ServiceLogRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.ServiceLog, error) {
	var log model.ServiceLog
	if err := r.db.WithContext(ctx).Preload("Vehicle").First(&log, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &log, nil
}

func (r *ServiceLogRepository) Create(ctx context.Context, log *model.ServiceLog) error {
	return translate(r.db.WithContext(ctx).Omit("Vehicle").Create(log).Error)
}

func (r *ServiceLogRepository) Save(ctx context.Context, log *model.ServiceLog) error {
	return translate(r.db.WithContext(ctx).Omit("Vehicle").Save(log).Error)
}

func (r *ServiceLogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ServiceLog{}, "id = ?", id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
