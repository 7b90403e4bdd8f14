package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Company represents an employer referenced by positions
type Company struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Positions []Position `gorm:"foreignKey:CompanyID;constraint:OnDelete:RESTRICT" json:"positions,omitempty"`
}

// TableName specifies the table name for Company
func (Company) TableName() string {
	return "company"
}

// Position represents a job title offered by a company
type Position struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CompanyID uuid.UUID      `gorm:"type:uuid;not null;index;uniqueIndex:idx_company_position" json:"company_id"`
	Name      string         `gorm:"type:varchar(255);not null;uniqueIndex:idx_company_position" json:"name"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Company Company `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
}

// TableName specifies the table name for Position
func (Position) TableName() string {
	return "position"
}
