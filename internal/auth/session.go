package auth

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionFile persists the current session between command invocations as
// an HS256-signed token. Signing keeps a copied or hand-edited session
// file from resolving to a user.
type SessionFile struct {
	path   string
	secret string
	ttl    time.Duration
}

// NewSessionFile builds a session file handle. Nothing touches disk until
// Start or UserID is called.
func NewSessionFile(path, secret string, ttl time.Duration) *SessionFile {
	return &SessionFile{path: path, secret: secret, ttl: ttl}
}

// Start writes a fresh session token for the user.
func (f *SessionFile) Start(userID string) error {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"iat":     now.Unix(),
		"exp":     now.Add(f.ttl).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(f.secret))
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return err
	}
	return os.WriteFile(f.path, []byte(token), 0600)
}

// UserID reads and verifies the session token. Any problem (missing file,
// bad signature, expired token, malformed claims) is ErrNotLoggedIn.
func (f *SessionFile) UserID() (string, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		return "", ErrNotLoggedIn
	}

	token, err := jwt.Parse(strings.TrimSpace(string(raw)), func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(f.secret), nil
	})
	if err != nil || !token.Valid {
		return "", ErrNotLoggedIn
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrNotLoggedIn
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", ErrNotLoggedIn
	}
	return userID, nil
}

// Clear removes the session file if present.
func (f *SessionFile) Clear() error {
	err := os.Remove(f.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
