package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"dirhop/internal/eventbus"
	"dirhop/internal/history"
	"dirhop/internal/listing"
)

// ErrNotFound is returned by LoadFromPath when the file does not exist
var ErrNotFound = errors.New("config file not found")

// Config represents the application configuration
type Config struct {
	Version    int            `toml:"version"`
	StartDir   string         `toml:"start_dir"`
	ShowHidden bool           `toml:"show_hidden"`
	MaxHistory int            `toml:"max_history"`
	Delete     DeleteSettings `toml:"delete"`
	Log        LogSettings    `toml:"log"`
	UI         UISettings     `toml:"ui"`
}

// DeleteSettings controls the escalation ladder
type DeleteSettings struct {
	Elevate      bool     `toml:"elevate"`
	StageTimeout Duration `toml:"stage_timeout"`
}

// LogSettings configures the rotating log file
type LogSettings struct {
	File       string `toml:"file"`
	Level      string `toml:"level"`
	Format     string `toml:"format"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ConfirmDelete bool   `toml:"confirm_delete"`
	DateFormat    string `toml:"date_format"`
}

// Duration is a time.Duration written as "2m" or "30s" in TOML
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = parsed
	return nil
}

// Service handles configuration management
type Service interface {
	Load() (*Config, error)
	Save(cfg *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(cfg *Config, path string) error
	Path() string
}

type service struct {
	bus      eventbus.EventBus
	filePath string
}

// NewService creates a config service for path. An empty path selects
// DefaultPath. bus may be nil.
func NewService(path string, bus eventbus.EventBus) Service {
	if path == "" {
		path = DefaultPath()
	}
	return &service{bus: bus, filePath: path}
}

// DefaultPath is dirhop/config.toml under the user config directory
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			home = "."
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "dirhop", "config.toml")
}

func (s *service) Path() string { return s.filePath }

// Load reads the service's file. A missing file yields DefaultConfig.
func (s *service) Load() (*Config, error) {
	cfg, err := s.LoadFromPath(s.filePath)
	if errors.Is(err, ErrNotFound) {
		cfg, err = DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}

	if s.bus != nil {
		s.bus.Publish(eventbus.ConfigLoadedEvent{Path: s.filePath, ShowHidden: cfg.ShowHidden})
	}
	return cfg, nil
}

func (s *service) Save(cfg *Config) error {
	if err := s.SaveToPath(cfg, s.filePath); err != nil {
		return err
	}
	if s.bus != nil {
		s.bus.Publish(eventbus.ConfigSavedEvent{Path: s.filePath})
	}
	return nil
}

// LoadFromPath reads and validates the file at path. Keys missing from the
// file keep their default values.
func (s *service) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

func (s *service) SaveToPath(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Write then rename so a crash never leaves a truncated file behind.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// normalize replaces out-of-range values with defaults
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.Version == 0 {
		c.Version = def.Version
	}
	if c.MaxHistory <= 0 {
		c.MaxHistory = def.MaxHistory
	}
	if c.Delete.StageTimeout.Duration <= 0 {
		c.Delete.StageTimeout = def.Delete.StageTimeout
	}
	if c.UI.DateFormat == "" {
		c.UI.DateFormat = def.UI.DateFormat
	}
	if c.Log.MaxSizeMB <= 0 {
		c.Log.MaxSizeMB = def.Log.MaxSizeMB
	}
	if c.Log.MaxBackups < 0 {
		c.Log.MaxBackups = def.Log.MaxBackups
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:    1,
		MaxHistory: history.DefaultMaxEntries,
		Delete: DeleteSettings{
			Elevate:      true,
			StageTimeout: Duration{2 * time.Minute},
		},
		Log: LogSettings{
			Level:      "info",
			Format:     "text",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
		UI: UISettings{
			ConfirmDelete: true,
			DateFormat:    listing.DefaultTimeLayout,
		},
	}
}
