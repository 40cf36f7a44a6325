// Package auth implements the session API surface the pages depend on:
// sign-up, sign-in, sign-out, and current-user resolution. Credentials are
// bcrypt hashes in the accounts table; the live session is a signed token
// in a file under the data dir.
package auth

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/FarahAbbdi/mission/internal/models"
	"github.com/FarahAbbdi/mission/internal/store"
)

var (
	// ErrNotLoggedIn means there is no valid session on this machine.
	ErrNotLoggedIn = errors.New("not logged in")
	// ErrBadCredentials covers both unknown email and wrong password, so
	// the two are indistinguishable to the caller.
	ErrBadCredentials = errors.New("invalid email or password")
)

// Service wires the account rows to the on-disk session.
type Service struct {
	store    *store.Store
	sessions *SessionFile
}

// NewService builds an auth service over the given store and session file.
func NewService(st *store.Store, sessions *SessionFile) *Service {
	return &Service{store: st, sessions: sessions}
}

// SignUp creates an account and its lookup profile, then starts a session.
func (s *Service) SignUp(email, password, name string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validateEmail(email); err != nil {
		return "", err
	}
	if len(password) < 6 {
		return "", fmt.Errorf("password must be at least 6 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	account, err := s.store.CreateAccount(email, string(hash))
	if err != nil {
		return "", err
	}
	if err := s.store.UpsertProfile(account.ID, name, email); err != nil {
		return "", err
	}
	if err := s.sessions.Start(account.ID); err != nil {
		return "", err
	}
	return account.ID, nil
}

// SignIn checks credentials and starts a session.
func (s *Service) SignIn(email, password string) (string, error) {
	account, err := s.store.GetAccountByEmail(email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrBadCredentials
		}
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return "", ErrBadCredentials
	}
	if err := s.sessions.Start(account.ID); err != nil {
		return "", err
	}
	return account.ID, nil
}

// SignOut drops the session. Signing out while signed out is fine.
func (s *Service) SignOut() error {
	return s.sessions.Clear()
}

// CurrentUser resolves the session to a user id.
func (s *Service) CurrentUser() (string, error) {
	return s.sessions.UserID()
}

// CurrentProfile resolves the session to the user's profile row.
func (s *Service) CurrentProfile() (*models.Profile, error) {
	id, err := s.CurrentUser()
	if err != nil {
		return nil, err
	}
	profiles, err := s.store.GetProfiles([]string{id})
	if err != nil {
		return nil, err
	}
	p, ok := profiles[id]
	if !ok {
		return &models.Profile{ID: id}, nil
	}
	return &p, nil
}

func validateEmail(email string) error {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return fmt.Errorf("invalid email address")
	}
	return nil
}
