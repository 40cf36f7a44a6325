package models

import (
	"strings"
	"time"
)

// Account is an auth user: email plus a bcrypt password hash.
// It never leaves the auth layer; everything else works with Profile.
type Account struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
}

// Profile is the denormalized user-lookup row: resolves emails to ids
// and ids to display names. Its id equals the account id.
type Profile struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name  string `json:"name"`
	Email string `gorm:"uniqueIndex;not null" json:"email"`
}

// DisplayName returns the profile name, falling back to a placeholder
// derived from the user id so chips are never blank.
func (p Profile) DisplayName() string {
	if strings.TrimSpace(p.Name) != "" {
		return p.Name
	}
	return PlaceholderName(p.ID)
}

// PlaceholderName derives a deterministic stand-in name from a user id:
// non-alphanumeric characters stripped, first 6 characters, uppercased.
func PlaceholderName(id string) string {
	var b strings.Builder
	for _, r := range id {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
		if b.Len() == 6 {
			break
		}
	}
	if b.Len() == 0 {
		return "UNKNOWN"
	}
	return strings.ToUpper(b.String())
}
