package db_models

import "github.com/google/uuid"

type Location struct {
	BaseModel
	Name               string
	Address            string
	Latitude           float64
	Longitude          float64
	HasRamp            bool
	HasTactilePath     bool
	AccessibleWashroom bool

	// AddedBy references the volunteer account that created the record.
	AddedBy uuid.UUID `gorm:"type:uuid;index"`
}
