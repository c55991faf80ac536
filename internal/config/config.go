// Package config resolves termfolio settings from, in increasing priority:
// built-in defaults, config.toml, a .env file, environment variables and
// command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/xdestyn/termfolio/internal/logging"
	"github.com/xdestyn/termfolio/internal/messages"
	"github.com/xdestyn/termfolio/internal/ui"
)

const (
	// FileName is the config file inside Dir()
	FileName = "config.toml"
	// DotEnvFile is read from the working directory when present
	DotEnvFile = ".env"

	EnvConfigDir = "TERMFOLIO_CONFIG_DIR"
	EnvTheme     = "TERMFOLIO_THEME"
	EnvContent   = "TERMFOLIO_CONTENT"
	EnvWatch     = "TERMFOLIO_WATCH"
	EnvLogFile   = "TERMFOLIO_LOG_FILE"
	EnvLogLevel  = "TERMFOLIO_LOG_LEVEL"
)

// Config is the resolved configuration
type Config struct {
	Theme   string        `toml:"theme"`
	Content ContentConfig `toml:"content"`
	Log     LogConfig     `toml:"log"`
}

// ContentConfig selects where portfolio content comes from
type ContentConfig struct {
	// Path is a directory holding content.yaml; empty uses built-in content
	Path string `toml:"path"`
	// Watch reloads content when files under Path change
	Watch bool `toml:"watch"`
}

type LogConfig struct {
	File       string `toml:"file"`
	Level      string `toml:"level"`
	Format     string `toml:"format"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
}

// Default returns the configuration used when nothing else is set
func Default() *Config {
	return &Config{
		Theme: ui.DefaultTheme,
		Log: LogConfig{
			Level:      "info",
			Format:     string(logging.FormatText),
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// Dir returns the config directory.
// Resolution order: $TERMFOLIO_CONFIG_DIR > $XDG_CONFIG_HOME/termfolio > ~/.config/termfolio
func Dir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "termfolio")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "termfolio-config")
	}
	return filepath.Join(home, ".config", "termfolio")
}

// Path returns the default config file path
func Path() string {
	return filepath.Join(Dir(), FileName)
}

// Load builds the configuration from defaults, the TOML file at path (or
// Path() when empty), .env and the environment. A missing file is not an
// error. Flags are applied afterwards by the caller.
func Load(path string) (*Config, error) {
	if err := loadDotEnv(DotEnvFile); err != nil {
		return nil, err
	}

	cfg := Default()
	if path == "" {
		path = Path()
	}
	if err := cfg.loadTOML(path); err != nil {
		return nil, err
	}

	cfg.ApplyEnvOverrides()
	return cfg, nil
}

func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load %s: %w", path, err)
}

func (c *Config) loadTOML(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return messages.WrapError(err, "failed to decode %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// ApplyEnvOverrides applies TERMFOLIO_* environment variables
func (c *Config) ApplyEnvOverrides() {
	if theme := os.Getenv(EnvTheme); theme != "" {
		c.Theme = theme
	}
	if dir := os.Getenv(EnvContent); dir != "" {
		c.Content.Path = dir
	}
	if watch := os.Getenv(EnvWatch); watch != "" {
		if v, err := strconv.ParseBool(watch); err == nil {
			c.Content.Watch = v
		}
	}
	if file := os.Getenv(EnvLogFile); file != "" {
		c.Log.File = file
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Log.Level = level
	}
}

// ValidationError is a single invalid field
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors collects every invalid field
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the final configuration
func (c *Config) Validate() error {
	var errs ValidateErrors

	if !ui.IsTheme(c.Theme) {
		errs = append(errs, ValidationError{
			Field:   "theme",
			Message: fmt.Sprintf("unknown theme %q, must be one of: %s", c.Theme, strings.Join(ui.AvailableThemes(), ", ")),
		})
	}
	if _, ok := logging.ParseLevel(c.Log.Level); !ok {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("unknown level %q, must be one of: debug, info, warn, error", c.Log.Level),
		})
	}
	if _, ok := logging.ParseFormat(c.Log.Format); !ok {
		errs = append(errs, ValidationError{
			Field:   "log.format",
			Message: fmt.Sprintf("unknown format %q, must be one of: text, json", c.Log.Format),
		})
	}
	if c.Log.MaxSizeMB < 0 {
		errs = append(errs, ValidationError{Field: "log.max_size_mb", Message: "must not be negative"})
	}
	if c.Log.MaxBackups < 0 {
		errs = append(errs, ValidationError{Field: "log.max_backups", Message: "must not be negative"})
	}
	if c.Content.Watch && c.Content.Path == "" {
		errs = append(errs, ValidationError{Field: "content.watch", Message: "requires content.path"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Logging converts the log section for logging.Init. Call after Validate.
func (c *Config) Logging() logging.Config {
	level, _ := logging.ParseLevel(c.Log.Level)
	format, _ := logging.ParseFormat(c.Log.Format)
	return logging.Config{
		FilePath:   c.Log.File,
		Level:      level,
		Format:     format,
		MaxSizeMB:  c.Log.MaxSizeMB,
		MaxBackups: c.Log.MaxBackups,
	}
}
