package db_models

import "github.com/google/uuid"

type DueStatus string

const (
	DueStatusActive   DueStatus = "Active"
	DueStatusInactive DueStatus = "Inactive"
)

// Due is a one-off billable obligation. Dues are never deleted, only
// moved to Inactive.
type Due struct {
	BaseModel
	CategoryID  uuid.UUID `gorm:"index"`
	Description string
	Amount      float64
	StartDate   int64
	EndDate     int64
	Status      DueStatus `gorm:"index;default:'Active'"`

	Category     Category      `gorm:"foreignKey:CategoryID"`
	Transactions []Transaction `gorm:"foreignKey:DueID"`
}

type Category struct {
	BaseModel
	Name string `gorm:"uniqueIndex"`
}
