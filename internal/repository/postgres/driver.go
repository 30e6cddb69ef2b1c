package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleetflow/internal/model"
	"fleetflow/internal/repository"
)

type DriverRepository struct {
	db *gorm.DB
}

func (r *DriverRepository) List(ctx context.Context, filter repository.DriverFilter) ([]model.Driver, error) {
	query := r.db.WithContext(ctx).Model(&model.Driver{})
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	var drivers []model.Driver
	if err := query.Order("name ASC").Find(&drivers).Error; err != nil {
		return nil, translate(err)
	}
	return drivers, nil
}

func (r *DriverRepository) ListAvailable(ctx context.Context, now time.Time) ([]model.Driver, error) {
	var drivers []model.Driver
	err := r.db.WithContext(ctx).
		Where("status = ? AND license_expiry_date > ?", model.DriverStatusOffDuty, now).
		Order("name ASC").
		Find(&drivers).Error
	if err != nil {
		return nil, translate(err)
	}
	return drivers, nil
}

func (r *DriverRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Driver, error) {
	var driver model.Driver
	if err := r.db.WithContext(ctx).First(&driver, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &driver, nil
}

func (r *DriverRepository) GetByLicenseNumber(ctx context.Context, licenseNumber string) (*model.Driver, error) {
	var driver model.Driver
	if err := r.db.WithContext(ctx).First(&driver, "license_number = ?", licenseNumber).Error; err != nil {
		return nil, translate(err)
	}
	return &driver, nil
}

func (r *DriverRepository) Create(ctx context.Context, driver *model.Driver) error {
	return translate(r.db.WithContext(ctx).Create(driver).Error)
}

func (r *DriverRepository) Save(ctx context.Context, driver *model.Driver) error {
	return translate(r.db.WithContext(ctx).Save(driver).Error)
}

func (r *DriverRepository) SetStatus(ctx context.Context, id uuid.UUID, status model.DriverStatus) error {
	return translate(r.db.WithContext(ctx).
		Model(&model.Driver{}).
		Where("id = ?", id).
		Update("status", status).Error)
}

func (r *DriverRepository) SetStatusFrom(ctx context.Context, id uuid.UUID, from, to model.DriverStatus) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Driver{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return false, translate(result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *DriverRepository) IncrementTripsCompleted(ctx context.Context, id uuid.UUID) error {
	return translate(r.db.WithContext(ctx).
		Model(&model.Driver{}).
		Where("id = ?", id).
		Update("trips_completed", gorm.Expr("trips_completed + 1")).Error)
}

func (r *DriverRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Driver{}, "id = ?", id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
