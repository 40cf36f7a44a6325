package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/FarahAbbdi/mission/internal/models"
)

// ErrEmailTaken is the unique violation on account insert.
var ErrEmailTaken = errors.New("email already registered")

// CreateAccount inserts an auth user with an already-hashed password.
func (s *Store) CreateAccount(email, passwordHash string) (*models.Account, error) {
	account := models.Account{
		ID:           uuid.NewString(),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: passwordHash,
	}
	if err := s.db.Create(&account).Error; err != nil {
		if duplicateKey(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &account, nil
}

// GetAccountByEmail fetches an auth user for credential checks.
func (s *Store) GetAccountByEmail(email string) (*models.Account, error) {
	var account models.Account
	err := s.db.First(&account, "email = ?", strings.ToLower(strings.TrimSpace(email))).Error
	if err != nil {
		if notFound(err) {
			return nil, fmt.Errorf("account: %w", ErrNotFound)
		}
		return nil, err
	}
	return &account, nil
}
