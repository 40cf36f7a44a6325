package store

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/FarahAbbdi/mission/internal/models"
	"github.com/FarahAbbdi/mission/internal/status"
)

// CreateMissionRequest holds the data needed to create a mission.
// New missions always start active.
type CreateMissionRequest struct {
	OwnerID     string `validate:"required"`
	Name        string `validate:"required"`
	Description string
	StartDate   string `validate:"required,isodate"`
	EndDate     string `validate:"required,isodate"`
}

// CreateMission validates the request and inserts the row.
func (s *Store) CreateMission(req CreateMissionRequest) (*models.Mission, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid mission: %w", err)
	}
	if status.Before(req.EndDate, req.StartDate) {
		return nil, fmt.Errorf("end date %s is before start date %s", req.EndDate, req.StartDate)
	}

	mission := models.Mission{
		ID:          uuid.NewString(),
		OwnerID:     req.OwnerID,
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      models.MissionActive,
	}
	if err := s.db.Create(&mission).Error; err != nil {
		return nil, err
	}
	return &mission, nil
}

// ExpireOverdue is the lazy expiry pass: every active mission of the owner
// whose end date has passed is rewritten to expired. It runs before each
// list load and is idempotent; the caller treats failure as best-effort.
func (s *Store) ExpireOverdue(ownerID, today string) error {
	return s.db.Model(&models.Mission{}).
		Where("owner_id = ? AND status = ? AND end_date < ?", ownerID, models.MissionActive, today).
		Update("status", models.MissionExpired).Error
}

// ListMissionsByOwner returns the owner's missions, newest first.
func (s *Store) ListMissionsByOwner(ownerID string) ([]models.Mission, error) {
	var missions []models.Mission
	err := s.db.Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&missions).Error
	if err != nil {
		return nil, err
	}
	return missions, nil
}

// ListMissionsWatching returns the missions the user watches, newest first.
func (s *Store) ListMissionsWatching(userID string) ([]models.Mission, error) {
	var missions []models.Mission
	err := s.db.
		Joins("JOIN watchers ON watchers.mission_id = missions.id AND watchers.watcher_id = ?", userID).
		Order("missions.created_at DESC").
		Find(&missions).Error
	if err != nil {
		return nil, err
	}
	return missions, nil
}

// GetMission fetches one mission by id.
func (s *Store) GetMission(id string) (*models.Mission, error) {
	var mission models.Mission
	if err := s.db.First(&mission, "id = ?", id).Error; err != nil {
		if notFound(err) {
			return nil, fmt.Errorf("mission %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &mission, nil
}

// SetMissionStatus updates the status of the owner's mission. The write is
// scoped by both owner and id; a zero-row update reports not found.
func (s *Store) SetMissionStatus(ownerID, id, newStatus string) error {
	res := s.db.Model(&models.Mission{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Update("status", newStatus)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("mission %s: %w", id, ErrNotFound)
	}
	return nil
}

// DeleteMission removes the owner's mission and cascades to its watchers,
// milestones, and those milestones' logs in one transaction.
func (s *Store) DeleteMission(ownerID, id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var mission models.Mission
		if err := tx.First(&mission, "id = ? AND owner_id = ?", id, ownerID).Error; err != nil {
			if notFound(err) {
				return fmt.Errorf("mission %s: %w", id, ErrNotFound)
			}
			return err
		}

		milestoneIDs := tx.Model(&models.Milestone{}).
			Select("id").Where("mission_id = ?", id)
		if err := tx.Where("milestone_id IN (?)", milestoneIDs).Delete(&models.Log{}).Error; err != nil {
			return err
		}
		if err := tx.Where("mission_id = ?", id).Delete(&models.Milestone{}).Error; err != nil {
			return err
		}
		if err := tx.Where("mission_id = ?", id).Delete(&models.Watcher{}).Error; err != nil {
			return err
		}
		return tx.Delete(&mission).Error
	})
}

// MilestoneCounts returns done/total milestone counts for a set of
// missions, for the "n / m milestones" line on cards. Failures degrade to
// zero counts at the caller.
func (s *Store) MilestoneCounts(missionIDs []string) (map[string][2]int, error) {
	if len(missionIDs) == 0 {
		return map[string][2]int{}, nil
	}
	var rows []struct {
		MissionID string
		Status    string
		N         int
	}
	err := s.db.Model(&models.Milestone{}).
		Select("mission_id, status, count(*) as n").
		Where("mission_id IN ?", missionIDs).
		Group("mission_id").Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string][2]int)
	for _, r := range rows {
		c := counts[r.MissionID]
		c[1] += r.N
		if r.Status == models.MilestoneCompleted {
			c[0] += r.N
		}
		counts[r.MissionID] = c
	}
	return counts, nil
}

// LogExpiryFailure records a failed expiry pass. The pass is best-effort,
// so callers log and move on to the fetch.
func (s *Store) LogExpiryFailure(ownerID string, err error) {
	s.log.Warn("mission expiry pass failed",
		zap.String("owner_id", ownerID),
		zap.Error(err))
}
