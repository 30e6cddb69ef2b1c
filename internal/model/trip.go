package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TripStatus string

const (
	TripStatusDraft      TripStatus = "Draft"
	TripStatusDispatched TripStatus = "Dispatched"
	TripStatusCompleted  TripStatus = "Completed"
	TripStatusCancelled  TripStatus = "Cancelled"
)

var TripStatuses = []TripStatus{TripStatusDraft, TripStatusDispatched, TripStatusCompleted, TripStatusCancelled}

func (s TripStatus) Valid() bool {
	switch s {
	case TripStatusDraft, TripStatusDispatched, TripStatusCompleted, TripStatusCancelled:
		return true
	}
	return false
}

type Trip struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	VehicleID    uuid.UUID  `gorm:"type:uuid;not null" json:"vehicleId"`
	DriverID     uuid.UUID  `gorm:"type:uuid;not null" json:"driverId"`
	CargoWeight  float64    `gorm:"not null" json:"cargoWeight"`
	Origin       string     `gorm:"type:varchar(255);not null" json:"origin"`
	Destination  string     `gorm:"type:varchar(255);not null" json:"destination"`
	Revenue      float64    `gorm:"not null;default:0" json:"revenue"`
	Distance     float64    `gorm:"not null;default:0" json:"distance"`
	Status       TripStatus `gorm:"type:trip_status;not null;default:'Draft'" json:"status"`
	DispatchedAt *time.Time `json:"dispatchedAt,omitempty"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`

	Vehicle *Vehicle `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
	Driver  *Driver  `gorm:"foreignKey:DriverID" json:"driver,omitempty"`
}

func (Trip) TableName() string {
	return "trips"
}

func (t *Trip) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
