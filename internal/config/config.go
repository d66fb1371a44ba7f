// Package config loads and describes the sunwatch TOML configuration.
// A configuration is always replaced wholesale: Load decodes the full
// file over the defaults every time, never merging field-by-field into a
// previous snapshot.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"

	"github.com/sunwatch/sunwatch/common"
	"github.com/sunwatch/sunwatch/internal/solar"
)

// Configuration is the full daemon configuration. Exactly one of Manual
// and Automatic is meaningful for scheduling; the scheduler constructor
// rejects a configuration carrying neither.
type Configuration struct {
	Enabled   bool             `toml:"enabled"`
	HotReload bool             `toml:"hot_reload"`
	Manual    *ManualConfig    `toml:"manual,omitempty"`
	Automatic *AutomaticConfig `toml:"automatic,omitempty"`
	Actions   Actions          `toml:"actions"`
}

// ManualConfig schedules triggers at fixed daily times.
type ManualConfig struct {
	TimeStamps []ManualTimeStamp `toml:"time_stamps"`
}

// ManualTimeStamp pairs a wall-clock time of day with the trigger kind
// it stands for.
type ManualTimeStamp struct {
	TriggerTime TimeOfDay         `toml:"trigger_time"`
	Action      solar.TriggerKind `toml:"action"`
}

// AutomaticConfig schedules triggers from solar events at a location.
type AutomaticConfig struct {
	Latitude  float64 `toml:"latitude"`
	Longitude float64 `toml:"longitude"`
}

// Actions maps each trigger kind to an optional shell command. An empty
// command means no action is configured for that kind.
type Actions struct {
	OnSunrise string `toml:"on_sunrise"`
	OnSunset  string `toml:"on_sunset"`
	OnDawn    string `toml:"on_dawn"`
	OnDusk    string `toml:"on_dusk"`
}

// Get resolves the command configured for a trigger kind.
func (a Actions) Get(kind solar.TriggerKind) string {
	switch kind {
	case solar.Sunrise:
		return a.OnSunrise
	case solar.Sunset:
		return a.OnSunset
	case solar.Dawn:
		return a.OnDawn
	case solar.Dusk:
		return a.OnDusk
	}
	return ""
}

// Default returns the configuration used when fields are absent from the
// file: enabled, no hot reload, an empty manual schedule and no actions.
func Default() Configuration {
	return Configuration{
		Enabled:   true,
		HotReload: false,
		Manual:    &ManualConfig{},
	}
}

// DefaultPath returns the default configuration file location,
// overridable through the SUNWATCH_CONFIG environment variable.
func DefaultPath() string {
	if path := os.Getenv(common.ConfigPathEnv); path != "" {
		return path
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "sunwatch", "config.toml")
}

// Load reads the file at path from fs and decodes it over the defaults.
// A missing file yields the pure defaults, so a partial or absent file is
// a valid configuration.
func Load(fs afero.Fs, path string) (Configuration, error) {
	cfg := Default()
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Configuration{}, fmt.Errorf("config read failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Configuration{}, fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return cfg, nil
}

// TOML renders the configuration as a TOML document, used by the status
// and default-config commands.
func (c Configuration) TOML() (string, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("config encode failed: %w", err)
	}
	return string(data), nil
}
