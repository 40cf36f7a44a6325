package store

import (
	"fmt"

	"github.com/FarahAbbdi/mission/internal/models"
)

// AddWatcher grants a user read visibility into a mission. Inserting an
// existing pair reports ErrAlreadyWatching.
func (s *Store) AddWatcher(missionID, watcherID string) error {
	watcher := models.Watcher{MissionID: missionID, WatcherID: watcherID}
	if err := s.db.Create(&watcher).Error; err != nil {
		if duplicateKey(err) {
			return ErrAlreadyWatching
		}
		return err
	}
	return nil
}

// ListWatchers returns a mission's watcher rows.
func (s *Store) ListWatchers(missionID string) ([]models.Watcher, error) {
	var watchers []models.Watcher
	err := s.db.Where("mission_id = ?", missionID).
		Order("created_at ASC").
		Find(&watchers).Error
	if err != nil {
		return nil, err
	}
	return watchers, nil
}

// IsWatching checks for one (mission, watcher) pair.
func (s *Store) IsWatching(missionID, watcherID string) (bool, error) {
	var n int64
	err := s.db.Model(&models.Watcher{}).
		Where("mission_id = ? AND watcher_id = ?", missionID, watcherID).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// RemoveWatcher deletes one (mission, watcher) pair. Used both by the
// owner's cascade and by the watcher's own "stop watching".
func (s *Store) RemoveWatcher(missionID, watcherID string) error {
	res := s.db.Where("mission_id = ? AND watcher_id = ?", missionID, watcherID).
		Delete(&models.Watcher{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("watcher: %w", ErrNotFound)
	}
	return nil
}
