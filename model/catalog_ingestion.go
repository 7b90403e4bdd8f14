package model

import (
	"time"

	"gorm.io/gorm"
)

// CatalogIngestion marks one completed run of the external catalog
// scraper. The newest Version is compared against the cache marker to
// decide when cached requisite payloads must be invalidated.
type CatalogIngestion struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Version     string         `gorm:"type:varchar(100);not null;index" json:"version"`
	Term        string         `gorm:"type:varchar(50)" json:"term"`
	CompletedAt time.Time      `gorm:"not null" json:"completed_at"`
	CreatedAt   time.Time      `json:"created_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for CatalogIngestion
func (CatalogIngestion) TableName() string {
	return "catalog_ingestions"
}
