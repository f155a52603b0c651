package menuet

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/purplejo/menuet/pkg/menuet/constants"
	"github.com/purplejo/menuet/pkg/menuet/internal"
)

// Config is the TOML-loadable toolkit configuration.
type Config struct {
	Title  string   `toml:"title"`
	Width  int32    `toml:"width"`
	Height int32    `toml:"height"`
	Color  string   `toml:"color"`
	Flags  []string `toml:"flags"`

	BackgroundImage string `toml:"background_image"`

	FontPath string `toml:"font_path"`
	FontSize int    `toml:"font_size"`

	RepeatDelay duration `toml:"repeat_delay"`
	PollRate    int      `toml:"poll_rate"`

	Joysticks int `toml:"joysticks"`

	LogFilename string `toml:"log_filename"`
	LogLevel    string `toml:"log_level"`

	PowerButton PowerButtonSettings `toml:"power_button"`
}

// PowerButtonSettings names an evdev device whose button acts as a hardware
// quit switch: pressing it clears the screen running flag.
type PowerButtonSettings struct {
	Device string `toml:"device"`
	Code   uint16 `toml:"code"`
}

// duration lets TOML carry values like "233ms".
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = parsed
	return nil
}

// DefaultConfig mirrors the defaults the toolkit was born with: an 800x600
// white window, 84pt text, 233ms menu repeat at 30Hz.
func DefaultConfig() Config {
	return Config{
		Title:       "menuet",
		Width:       800,
		Height:      600,
		Color:       "#FFFFFF",
		FontSize:    84,
		RepeatDelay: duration{constants.DefaultRepeatDelay},
		PollRate:    constants.DefaultMenuPollRate,
	}
}

// LoadConfig reads a TOML file over the defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	meta, err := toml.DecodeFile(path, &config)
	if err != nil {
		return config, fmt.Errorf("load config %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		internal.GetInternalLogger().Warn("Unknown config keys ignored",
			"path", path, "keys", fmt.Sprint(undecoded))
	}

	return config, nil
}

// screenConfig lowers the loaded config into a ScreenConfig.
func (c Config) screenConfig() (ScreenConfig, error) {
	color, err := internal.ParseHexColor(c.Color)
	if err != nil {
		return ScreenConfig{}, err
	}
	return ScreenConfig{
		Width:           c.Width,
		Height:          c.Height,
		Color:           color,
		Title:           c.Title,
		Flags:           c.Flags,
		BackgroundImage: c.BackgroundImage,
	}, nil
}
