package menuet

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/purplejo/menuet/pkg/menuet/constants"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "menuet.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
title = "lab"
width = 640
height = 480
color = "#336699"
flags = ["FULLSCREEN", "DOUBLEBUF"]
repeat_delay = "100ms"
poll_rate = 60
joysticks = 1

[power_button]
device = "/dev/input/event3"
code = 116
`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if config.Title != "lab" || config.Width != 640 || config.Height != 480 {
		t.Fatalf("window settings not applied: %+v", config)
	}
	if config.RepeatDelay.Duration != 100*time.Millisecond {
		t.Fatalf("repeat_delay not parsed, got %v", config.RepeatDelay.Duration)
	}
	if config.PollRate != 60 || config.Joysticks != 1 {
		t.Fatalf("pacing settings not applied: %+v", config)
	}
	if config.PowerButton.Device != "/dev/input/event3" || config.PowerButton.Code != 116 {
		t.Fatalf("power button settings not applied: %+v", config.PowerButton)
	}

	screen, err := config.screenConfig()
	if err != nil {
		t.Fatalf("screenConfig: %v", err)
	}
	if screen.Color != (sdl.Color{R: 0x33, G: 0x66, B: 0x99, A: 255}) {
		t.Fatalf("hex color not lowered, got %+v", screen.Color)
	}
	if len(screen.Flags) != 2 {
		t.Fatalf("flags not lowered, got %v", screen.Flags)
	}
}

func TestLoadConfigKeepsDefaultsForOmittedKeys(t *testing.T) {
	path := writeConfig(t, `title = "partial"`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if config.Title != "partial" {
		t.Fatalf("title not applied, got %q", config.Title)
	}
	if config.Width != 800 || config.Height != 600 {
		t.Fatalf("omitted sizes must keep defaults, got %dx%d", config.Width, config.Height)
	}
	if config.RepeatDelay.Duration != constants.DefaultRepeatDelay {
		t.Fatalf("omitted repeat delay must keep default, got %v", config.RepeatDelay.Duration)
	}
	if config.PollRate != constants.DefaultMenuPollRate {
		t.Fatalf("omitted poll rate must keep default, got %d", config.PollRate)
	}
}

func TestLoadConfigRejectsBadDuration(t *testing.T) {
	path := writeConfig(t, `repeat_delay = "fast"`)

	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("malformed duration must fail")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatalf("missing file must fail")
	}
}

func TestBadHexColorSurfacesInScreenConfig(t *testing.T) {
	config := DefaultConfig()
	config.Color = "mauve"

	if _, err := config.screenConfig(); err == nil {
		t.Fatalf("unparseable color must fail")
	}
}
