package store

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/FarahAbbdi/mission/internal/models"
)

// CreateMilestoneRequest holds the data needed to create a milestone.
type CreateMilestoneRequest struct {
	MissionID string `validate:"required"`
	Name      string `validate:"required"`
	Notes     string
	Deadline  string `validate:"required,isodate"`
	Priority  string `validate:"required,oneof=low medium high"`
}

// CreateMilestone validates the request and inserts the row.
func (s *Store) CreateMilestone(req CreateMilestoneRequest) (*models.Milestone, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid milestone: %w", err)
	}

	milestone := models.Milestone{
		ID:        uuid.NewString(),
		MissionID: req.MissionID,
		Name:      req.Name,
		Notes:     req.Notes,
		Deadline:  req.Deadline,
		Priority:  req.Priority,
		Status:    models.MilestoneActive,
	}
	if err := s.db.Create(&milestone).Error; err != nil {
		return nil, err
	}
	return &milestone, nil
}

// ListMilestones returns a mission's milestones, earliest deadline first.
func (s *Store) ListMilestones(missionID string) ([]models.Milestone, error) {
	var milestones []models.Milestone
	err := s.db.Where("mission_id = ?", missionID).
		Order("deadline ASC, created_at ASC").
		Find(&milestones).Error
	if err != nil {
		return nil, err
	}
	return milestones, nil
}

// SetMilestoneStatus updates one milestone's status. The write is scoped by
// both the milestone and its mission so colliding ids across missions can
// never cross over.
func (s *Store) SetMilestoneStatus(missionID, id, newStatus string) error {
	res := s.db.Model(&models.Milestone{}).
		Where("id = ? AND mission_id = ?", id, missionID).
		Update("status", newStatus)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("milestone %s: %w", id, ErrNotFound)
	}
	return nil
}

// DeleteMilestone removes one milestone and its logs.
func (s *Store) DeleteMilestone(missionID, id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND mission_id = ?", id, missionID).
			Delete(&models.Milestone{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("milestone %s: %w", id, ErrNotFound)
		}
		return tx.Where("milestone_id = ?", id).Delete(&models.Log{}).Error
	})
}
