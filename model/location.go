package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Location represents a work location referenced by salary submissions
type Location struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	StateCode string         `gorm:"type:varchar(3);not null;uniqueIndex:idx_location_unique" json:"state_code"`
	State     string         `gorm:"type:varchar(100);not null;uniqueIndex:idx_location_unique" json:"state"`
	City      string         `gorm:"type:varchar(100);not null;uniqueIndex:idx_location_unique" json:"city"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for Location
func (Location) TableName() string {
	return "location"
}

// DisplayName formats the location as "City, ST" for autocomplete results
func (l Location) DisplayName() string {
	return fmt.Sprintf("%s, %s", l.City, l.StateCode)
}
