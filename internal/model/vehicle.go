package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VehicleType string

const (
	VehicleTypeTruck VehicleType = "Truck"
	VehicleTypeVan   VehicleType = "Van"
	VehicleTypeBike  VehicleType = "Bike"
)

var VehicleTypes = []VehicleType{VehicleTypeTruck, VehicleTypeVan, VehicleTypeBike}

func (t VehicleType) Valid() bool {
	switch t {
	case VehicleTypeTruck, VehicleTypeVan, VehicleTypeBike:
		return true
	}
	return false
}

type VehicleStatus string

const (
	VehicleStatusAvailable    VehicleStatus = "Available"
	VehicleStatusOnTrip       VehicleStatus = "On Trip"
	VehicleStatusInShop       VehicleStatus = "In Shop"
	VehicleStatusOutOfService VehicleStatus = "Out of Service"
)

func (s VehicleStatus) Valid() bool {
	switch s {
	case VehicleStatusAvailable, VehicleStatusOnTrip, VehicleStatusInShop, VehicleStatusOutOfService:
		return true
	}
	return false
}

type Vehicle struct {
	ID              uuid.UUID     `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Name            string        `gorm:"type:varchar(255);not null" json:"name"`
	Model           string        `gorm:"type:varchar(255)" json:"model"`
	LicensePlate    string        `gorm:"type:varchar(32);not null;uniqueIndex" json:"licensePlate"`
	VehicleType     VehicleType   `gorm:"type:vehicle_type;not null" json:"vehicleType"`
	MaxLoadCapacity float64       `gorm:"not null" json:"maxLoadCapacity"`
	Odometer        float64       `gorm:"not null;default:0" json:"odometer"`
	Status          VehicleStatus `gorm:"type:vehicle_status;not null;default:'Available'" json:"status"`
	Region          string        `gorm:"type:varchar(255)" json:"region"`
	AcquisitionCost float64       `gorm:"not null;default:0" json:"acquisitionCost"`
	CreatedAt       time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}

func (v *Vehicle) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// NormalizePlate applies the canonical license plate form used for the
// uniqueness check: trimmed and upper-cased.
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}
