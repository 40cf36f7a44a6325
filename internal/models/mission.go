package models

import (
	"time"
)

// Mission statuses as stored in the missions table.
const (
	MissionActive    = "active"
	MissionCompleted = "completed"
	MissionExpired   = "expired"
)

// Mission represents a user-owned goal with a date range
type Mission struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	OwnerID     string `gorm:"not null;index" json:"owner_id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	StartDate   string `gorm:"not null" json:"start_date"` // YYYY-MM-DD
	EndDate     string `gorm:"not null" json:"end_date"`   // YYYY-MM-DD
	Status      string `gorm:"default:active" json:"status"` // active, completed, expired

	// Relationships
	Milestones []Milestone `gorm:"foreignKey:MissionID" json:"milestones"`
	Watchers   []Watcher   `gorm:"foreignKey:MissionID" json:"-"`
}
