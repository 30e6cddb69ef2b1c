package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FuelLog struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	VehicleID      uuid.UUID `gorm:"type:uuid;not null" json:"vehicleId"`
	Liters         float64   `gorm:"not null" json:"liters"`
	Cost           float64   `gorm:"not null" json:"cost"`
	Date           time.Time `gorm:"not null" json:"date"`
	OdometerAtFill *float64  `json:"odometerAtFill"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	Vehicle *Vehicle `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
}

func (FuelLog) TableName() string {
	return "fuel_logs"
}

func (l *FuelLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

type ServiceLog struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	VehicleID   uuid.UUID `gorm:"type:uuid;not null" json:"vehicleId"`
	ServiceType string    `gorm:"type:varchar(255);not null" json:"serviceType"`
	Cost        float64   `gorm:"not null" json:"cost"`
	Date        time.Time `gorm:"not null" json:"date"`
	Notes       string    `gorm:"type:text" json:"notes"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	Vehicle *Vehicle `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
}

func (ServiceLog) TableName() string {
	return "service_logs"
}

func (l *ServiceLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
