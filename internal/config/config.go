package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is loaded from <data dir>/config.yaml with env overrides on top.
// Every field has a working default, so a missing file is not an error.
type Config struct {
	DataDir      string        `yaml:"data_dir"`
	DatabasePath string        `yaml:"database_path"`
	SessionTTL   time.Duration `yaml:"session_ttl"`
	// SessionSecret signs the session token. The default is fine for a
	// single-user machine; shared database setups should set their own.
	SessionSecret string `yaml:"session_secret"`
	LogPath       string `yaml:"log_path"`
}

const defaultSecret = "mission-local-session"

// Load reads the config file if present and applies env overrides.
func Load() (*Config, error) {
	dataDir, err := defaultDataDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data dir: %w", err)
	}
	if dir := os.Getenv("MISSION_DATA_DIR"); dir != "" {
		dataDir = dir
	}

	cfg := &Config{
		DataDir:       dataDir,
		SessionTTL:    30 * 24 * time.Hour,
		SessionSecret: defaultSecret,
	}

	f, err := os.Open(filepath.Join(dataDir, "config.yaml"))
	if err == nil {
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config.yaml: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to open config.yaml: %w", err)
	}

	overrideFromEnv(cfg)

	if cfg.DatabasePath == "" {
		cfg.DatabasePath = filepath.Join(cfg.DataDir, "mission.db")
	}
	if cfg.LogPath == "" {
		cfg.LogPath = filepath.Join(cfg.DataDir, "mission.log")
	}
	return cfg, nil
}

// SessionPath is where the signed session token lives between runs.
func (c *Config) SessionPath() string {
	return filepath.Join(c.DataDir, "session")
}

func defaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".mission"), nil
}

func overrideFromEnv(cfg *Config) {
	if path := os.Getenv("MISSION_DB_PATH"); path != "" {
		cfg.DatabasePath = path
	}
	if secret := os.Getenv("MISSION_SESSION_SECRET"); secret != "" {
		cfg.SessionSecret = secret
	}
	if ttl := os.Getenv("MISSION_SESSION_TTL_HOURS"); ttl != "" {
		if h, err := strconv.Atoi(ttl); err == nil && h > 0 {
			cfg.SessionTTL = time.Duration(h) * time.Hour
		}
	}
	if path := os.Getenv("MISSION_LOG_PATH"); path != "" {
		cfg.LogPath = path
	}
}
