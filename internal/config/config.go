package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"

	"dictionarium/internal/domain"
)

// ErrConfig is returned for unreadable or invalid configuration
var ErrConfig = errors.New("config")

// FileName is the name of the config file inside the config directory
const FileName = "config.toml"

// Config represents the application configuration
type Config struct {
	Version       int          `toml:"version"`
	DictionaryDir string       `toml:"dictionary_dir,omitempty"` // overrides the bundled word lists
	Language      string       `toml:"language"`                 // language selected at start
	Scan          ScanSettings `toml:"scan"`
	Keys          KeyBindings  `toml:"keys"`
	Log           LogSettings  `toml:"log"`
}

// ScanSettings tunes the scan engine
type ScanSettings struct {
	Workers int `toml:"workers"` // 0 uses GOMAXPROCS
}

// KeyBindings lists the keys bound to each control, in Bubble Tea key notation
type KeyBindings struct {
	Quit    []string `toml:"quit"`
	Redraw  []string `toml:"redraw"`
	Preview []string `toml:"preview"`
	Advance []string `toml:"advance"`
	Help    []string `toml:"help"`
}

// LogSettings configures the log file
type LogSettings struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service for the user's config directory
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return &configService{
		filePath: filepath.Join(configDir, "dictionarium", FileName),
	}
}

// NewConfigServiceAt creates a config service for an explicit file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// Path returns the file the service loads from
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, returning defaults if the file doesn't exist
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		log.Debug("no config file, using defaults", "path", cs.filePath)
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// LoadFromPath loads configuration from a specific path. Fields missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read config file: %w", ErrConfig, err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %w", ErrConfig, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: failed to create config directory: %w", ErrConfig, err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal config: %w", ErrConfig, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: failed to write config file: %w", ErrConfig, err)
	}
	return nil
}

// Validate checks values that cannot be defaulted silently
func (c *Config) Validate() error {
	if _, ok := domain.ParseLanguage(c.Language); !ok {
		return fmt.Errorf("%w: unknown language %q", ErrConfig, c.Language)
	}
	if c.Scan.Workers < 0 {
		return fmt.Errorf("%w: scan.workers must not be negative", ErrConfig)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrConfig, err)
	}
	return nil
}

// StartLanguage returns the configured start language
func (c *Config) StartLanguage() domain.Language {
	lang, _ := domain.ParseLanguage(c.Language)
	return lang
}

// LogLevel returns the configured log level, Info if unparsable
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:  1,
		Language: domain.English.String(),
		Scan: ScanSettings{
			Workers: 0,
		},
		Keys: KeyBindings{
			Quit:    []string{"ctrl+x"},
			Redraw:  []string{"ctrl+s"},
			Preview: []string{"ctrl+n"},
			Advance: []string{"tab"},
			Help:    []string{"f1"},
		},
		Log: LogSettings{
			File:  "dictionarium.log",
			Level: "info",
		},
	}
}
