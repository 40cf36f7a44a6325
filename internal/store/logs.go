package store

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/FarahAbbdi/mission/internal/models"
)

// CreateLog appends a progress note to a milestone. Logs are never edited.
func (s *Store) CreateLog(milestoneID, content string) (*models.Log, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("log content is required")
	}

	log := models.Log{
		ID:          uuid.NewString(),
		MilestoneID: milestoneID,
		Content:     content,
	}
	if err := s.db.Create(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

// ListLogsByMilestones fetches the logs of a whole milestone set in one
// query, newest first, keyed by milestone.
func (s *Store) ListLogsByMilestones(milestoneIDs []string) (map[string][]models.Log, error) {
	out := make(map[string][]models.Log)
	if len(milestoneIDs) == 0 {
		return out, nil
	}

	var logs []models.Log
	err := s.db.Where("milestone_id IN ?", milestoneIDs).
		Order("created_at DESC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	for _, l := range logs {
		out[l.MilestoneID] = append(out[l.MilestoneID], l)
	}
	return out, nil
}
