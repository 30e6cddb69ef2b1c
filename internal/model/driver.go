package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DriverStatus string

const (
	DriverStatusOnDuty    DriverStatus = "On Duty"
	DriverStatusOffDuty   DriverStatus = "Off Duty"
	DriverStatusSuspended DriverStatus = "Suspended"
)

func (s DriverStatus) Valid() bool {
	switch s {
	case DriverStatusOnDuty, DriverStatusOffDuty, DriverStatusSuspended:
		return true
	}
	return false
}

type Driver struct {
	ID                uuid.UUID     `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Name              string        `gorm:"type:varchar(255);not null" json:"name"`
	LicenseNumber     string        `gorm:"type:varchar(64);not null;uniqueIndex" json:"licenseNumber"`
	LicenseExpiryDate time.Time     `gorm:"not null" json:"licenseExpiryDate"`
	AllowedVehicleType []VehicleType `gorm:"type:jsonb;serializer:json;not null" json:"allowedVehicleType"`
	Status            DriverStatus  `gorm:"type:driver_status;not null;default:'Off Duty'" json:"status"`
	SafetyScore       float64       `gorm:"not null;default:100" json:"safetyScore"`
	TripsCompleted    int           `gorm:"not null;default:0" json:"tripsCompleted"`
	Email             string        `gorm:"type:varchar(255)" json:"email"`
	Phone             string        `gorm:"type:varchar(32)" json:"phone"`
	CreatedAt         time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Driver) TableName() string {
	return "drivers"
}

func (d *Driver) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// CanDrive reports whether the driver is allowed to operate the given
// vehicle type.
func (d *Driver) CanDrive(t VehicleType) bool {
	for _, allowed := range d.AllowedVehicleType {
		if allowed == t {
			return true
		}
	}
	return false
}
