// Package settings manages persistent user settings for the iosgen tools.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// EnvPath names an environment variable that overrides the settings file
// location.
const EnvPath = "IOSGEN_SETTINGS"

// Settings holds persistent user preferences
type Settings struct {
	// DefaultProfile is the profile to load when --profile is not given
	DefaultProfile string `json:"default_profile,omitempty"`

	// LogLevel is used when --verbose is not given (default "warn")
	LogLevel string `json:"log_level,omitempty"`
}

// DefaultSettingsPath returns the default path for the settings file
func DefaultSettingsPath() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "iosgen_settings.json"
	}
	return filepath.Join(home, ".iosgen", "settings.json")
}

// Load reads settings from the default location
func Load() (*Settings, error) {
	return LoadFrom(DefaultSettingsPath())
}

// LoadFrom reads settings from a specific path
func LoadFrom(path string) (*Settings, error) {
	s := &Settings{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return empty settings if file doesn't exist
			return s, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return s, nil
}

// Save writes settings to the default location
func (s *Settings) Save() error {
	return s.SaveTo(DefaultSettingsPath())
}

// SaveTo writes settings to a specific path
func (s *Settings) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// GetLogLevel returns the log level (with fallback)
func (s *Settings) GetLogLevel() string {
	if s.LogLevel != "" {
		return s.LogLevel
	}
	return "warn"
}

// Set assigns a setting by name. Profile paths are stored absolute so the
// setting works from any directory. Log levels must be ones logrus accepts;
// an empty value resets either setting.
func (s *Settings) Set(name, value string) error {
	switch name {
	case "profile", "default_profile":
		if value != "" {
			abs, err := filepath.Abs(value)
			if err != nil {
				return err
			}
			value = abs
		}
		s.DefaultProfile = value
	case "log_level", "log-level":
		if value != "" {
			if _, err := logrus.ParseLevel(value); err != nil {
				return fmt.Errorf("invalid log_level %q: %w", value, err)
			}
		}
		s.LogLevel = value
	default:
		return fmt.Errorf("unknown setting: %s (valid: profile, log_level)", name)
	}
	return nil
}

// Clear resets all settings to defaults
func (s *Settings) Clear() {
	*s = Settings{}
}
