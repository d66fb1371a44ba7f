package config

import (
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/sunwatch/sunwatch/internal/solar"
)

func writeConfig(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	if err := afero.WriteFile(fs, path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(afero.NewMemMapFs(), "/etc/sunwatch/config.toml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Enabled {
		t.Error("default enabled = false, want true")
	}
	if cfg.HotReload {
		t.Error("default hot_reload = true, want false")
	}
	if cfg.Manual == nil || len(cfg.Manual.TimeStamps) != 0 {
		t.Errorf("default manual = %+v, want present and empty", cfg.Manual)
	}
	if cfg.Automatic != nil {
		t.Errorf("default automatic = %+v, want absent", cfg.Automatic)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeConfig(t, fs, "/config.toml", "hot_reload = true\n")

	cfg, err := Load(fs, "/config.toml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.HotReload {
		t.Error("hot_reload not applied")
	}
	if !cfg.Enabled {
		t.Error("enabled default lost on partial file")
	}
}

func TestLoad_FullFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeConfig(t, fs, "/config.toml", `
enabled = false
hot_reload = true

[automatic]
latitude = 49.598121
longitude = 11.003653

[actions]
on_sunrise = "notify-send sunrise"
on_dusk = "night-mode on"
`)

	cfg, err := Load(fs, "/config.toml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Enabled {
		t.Error("enabled = true, want false")
	}
	if cfg.Automatic == nil || cfg.Automatic.Latitude != 49.598121 || cfg.Automatic.Longitude != 11.003653 {
		t.Errorf("automatic = %+v", cfg.Automatic)
	}
	if got := cfg.Actions.Get(solar.Sunrise); got != "notify-send sunrise" {
		t.Errorf("sunrise action = %q", got)
	}
	if got := cfg.Actions.Get(solar.Dusk); got != "night-mode on" {
		t.Errorf("dusk action = %q", got)
	}
	if got := cfg.Actions.Get(solar.Sunset); got != "" {
		t.Errorf("unset sunset action = %q, want empty", got)
	}
}

func TestLoad_ManualTimeStamps(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeConfig(t, fs, "/config.toml", `
[manual]
[[manual.time_stamps]]
trigger_time = "07:30:00"
action = "sunrise"

[[manual.time_stamps]]
trigger_time = "21:15"
action = "dusk"
`)

	cfg, err := Load(fs, "/config.toml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	stamps := cfg.Manual.TimeStamps
	if len(stamps) != 2 {
		t.Fatalf("got %d stamps, want 2", len(stamps))
	}
	if stamps[0].Action != solar.Sunrise || stamps[0].TriggerTime.String() != "07:30:00" {
		t.Errorf("stamp[0] = %+v", stamps[0])
	}
	if stamps[1].Action != solar.Dusk || stamps[1].TriggerTime.String() != "21:15:00" {
		t.Errorf("stamp[1] = %+v", stamps[1])
	}
}

func TestLoad_MalformedFileFails(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeConfig(t, fs, "/config.toml", "enabled = [not toml")

	if _, err := Load(fs, "/config.toml"); err == nil {
		t.Fatal("Load accepted malformed TOML")
	}
}

func TestLoad_BadTimeOfDayFails(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeConfig(t, fs, "/config.toml", `
[manual]
[[manual.time_stamps]]
trigger_time = "25:99"
action = "sunrise"
`)
	if _, err := Load(fs, "/config.toml"); err == nil {
		t.Fatal("Load accepted an invalid time of day")
	}
}

func TestTimeOfDay_Codec(t *testing.T) {
	var tod TimeOfDay
	if err := tod.UnmarshalText([]byte("07:30:15")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if tod.Hour != 7 || tod.Minute != 30 || tod.Second != 15 {
		t.Errorf("parsed %+v", tod)
	}
	text, err := tod.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	if string(text) != "07:30:15" {
		t.Errorf("rendered %q", text)
	}
}

func TestConfiguration_TOMLRendersDefaults(t *testing.T) {
	rendered, err := Default().TOML()
	if err != nil {
		t.Fatalf("TOML: %v", err)
	}
	if !strings.Contains(rendered, "enabled = true") {
		t.Errorf("rendered config missing enabled flag:\n%s", rendered)
	}
}
