// Package store is the row boundary of the app: five collections with
// scoped CRUD, typed rows in and out, and distinguished errors for the two
// cases callers branch on. It stands in for the hosted row store the app
// was designed against, so every write is scoped the same way (owner id,
// parent id) and nothing above this package touches SQL.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/glebarez/sqlite"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/FarahAbbdi/mission/internal/models"
)

var (
	// ErrNotFound means the row does not exist or is not visible to the
	// caller with the given scope.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyWatching is the unique-pair violation on watcher insert.
	ErrAlreadyWatching = errors.New("already watching")
)

// Store owns the database handle. It is constructed once at startup and
// passed down explicitly; there is no package-level connection.
type Store struct {
	db       *gorm.DB
	validate *validator.Validate
	log      *zap.Logger
}

// Open connects to the sqlite database at path, creating the directory and
// running migrations as needed.
func Open(path string, log *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.Account{},
		&models.Profile{},
		&models.Mission{},
		&models.Milestone{},
		&models.Log{},
		&models.Watcher{},
	); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("isodate", validISODate); err != nil {
		return nil, err
	}

	return &Store{db: db, validate: v, log: log}, nil
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

var isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func validISODate(fl validator.FieldLevel) bool {
	return isoDateRe.MatchString(fl.Field().String())
}

// duplicateKey recognizes a unique-constraint violation. The gorm sqlite
// driver translates most of these to ErrDuplicatedKey; the raw message is
// checked as a fallback for composite keys.
func duplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint")
}

func notFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
