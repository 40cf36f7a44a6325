package models

import (
	"time"
)

// Watcher grants a user read visibility into a mission.
// The composite primary key makes the (mission, watcher) pair unique.
type Watcher struct {
	MissionID string    `gorm:"primaryKey" json:"mission_id"`
	WatcherID string    `gorm:"primaryKey" json:"watcher_id"`
	CreatedAt time.Time `json:"created_at"`
}
