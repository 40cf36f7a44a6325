package models

import (
	"time"
)

// Milestone statuses as stored in the milestones table.
const (
	MilestoneActive    = "active"
	MilestoneCompleted = "completed"
)

// Milestone represents a sub-goal of a mission with its own deadline
type Milestone struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	MissionID string `gorm:"not null;index" json:"mission_id"`
	Name      string `gorm:"not null" json:"name"`
	Notes     string `json:"notes"`
	Deadline  string `gorm:"not null" json:"deadline"`       // YYYY-MM-DD
	Priority  string `gorm:"default:medium" json:"priority"` // low, medium, high
	Status    string `gorm:"default:active" json:"status"`   // active, completed

	// Relationships
	Logs []Log `gorm:"foreignKey:MilestoneID" json:"logs"`
}

// Log represents an append-only progress note attached to a milestone
type Log struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	MilestoneID string `gorm:"not null;index" json:"milestone_id"`
	Content     string `gorm:"not null" json:"content"`
}
