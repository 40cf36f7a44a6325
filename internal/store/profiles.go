package store

import (
	"fmt"
	"strings"

	"gorm.io/gorm/clause"

	"github.com/FarahAbbdi/mission/internal/models"
)

// UpsertProfile writes the denormalized lookup row for a user. Called on
// signup; overwrites name and email if the id already exists.
func (s *Store) UpsertProfile(id, name, email string) error {
	profile := models.Profile{
		ID:    id,
		Name:  strings.TrimSpace(name),
		Email: strings.ToLower(strings.TrimSpace(email)),
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "email", "updated_at"}),
	}).Create(&profile).Error
}

// GetProfileByEmail resolves an email to a profile, for the add-watcher
// lookup. The email must belong to an existing account.
func (s *Store) GetProfileByEmail(email string) (*models.Profile, error) {
	var profile models.Profile
	err := s.db.First(&profile, "email = ?", strings.ToLower(strings.TrimSpace(email))).Error
	if err != nil {
		if notFound(err) {
			return nil, fmt.Errorf("no account with email %s: %w", email, ErrNotFound)
		}
		return nil, err
	}
	return &profile, nil
}

// GetProfiles resolves a set of user ids to profiles, keyed by id. Ids with
// no profile row are simply absent; the caller falls back to a placeholder
// name.
func (s *Store) GetProfiles(ids []string) (map[string]models.Profile, error) {
	out := make(map[string]models.Profile)
	if len(ids) == 0 {
		return out, nil
	}

	var profiles []models.Profile
	if err := s.db.Where("id IN ?", ids).Find(&profiles).Error; err != nil {
		return nil, err
	}
	for _, p := range profiles {
		out[p.ID] = p
	}
	return out, nil
}
