// Package menuet is a small real-time input and menu toolkit on SDL2. It
// provides per-device edge/repeat state tracking (keyboard, mouse,
// joystick), a sprite/text rendering base with cached rasterization, and a
// doubly-linked option/menu navigation model with focus tracking and a
// blocking per-menu interaction loop.
//
// Everything is single-threaded and cooperatively polled: the caller builds
// one Context at startup, passes it by shared reference, and drives menus
// through their blocking Loop. The two running flags (screen-level and
// per-menu) are the only cancellation points and are observed at the top of
// each loop iteration.
package menuet

import (
	"fmt"
	"log/slog"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/purplejo/menuet/pkg/menuet/internal"
)

// Context bundles the one logical instance of every device. It replaces
// hidden process-wide lookups: create it once at startup and pass it into
// menu operations.
type Context struct {
	Screen    *Screen
	Keyboard  *Keyboard
	Mouse     *Mouse
	Joysticks []*Joystick
	Clock     *Clock
}

// New initializes SDL and builds the device context from config. Backend
// failures propagate; there is no retry.
func New(config Config) (*Context, error) {
	if config.LogFilename != "" {
		internal.SetLogFilename(config.LogFilename)
	}
	if config.LogLevel != "" {
		internal.SetRawLogLevel(config.LogLevel)
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_JOYSTICK); err != nil {
		return nil, fmt.Errorf("init sdl: %w", err)
	}

	screenConfig, err := config.screenConfig()
	if err != nil {
		sdl.Quit()
		return nil, err
	}

	screen, err := NewScreen(screenConfig)
	if err != nil {
		sdl.Quit()
		return nil, err
	}

	ctx := &Context{
		Screen:   screen,
		Keyboard: NewKeyboard(),
		Mouse:    NewMouse(),
		Clock:    NewClock(),
	}

	for i := 0; i < config.Joysticks && i < sdl.NumJoysticks(); i++ {
		joystick, err := OpenJoystick(i)
		if err != nil {
			internal.GetInternalLogger().Error("Failed to open joystick",
				"index", i, "error", err)
			continue
		}
		ctx.Joysticks = append(ctx.Joysticks, joystick)
	}

	if config.PowerButton.Device != "" {
		go internal.WatchPowerButton(internal.PowerButtonConfig{
			DevicePath: config.PowerButton.Device,
			ButtonCode: config.PowerButton.Code,
			OnPress:    screen.Stop,
		})
	}

	internal.GetInternalLogger().Debug("Context ready",
		"joysticks", len(ctx.Joysticks),
		"title", config.Title,
	)

	return ctx, nil
}

// Poll drains the backend event queue into one ordered batch. Call once per
// frame and hand the batch to Update.
func (c *Context) Poll() []sdl.Event {
	var events []sdl.Event
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		events = append(events, event)
	}
	return events
}

// Update fans one event batch out to the screen and every device tracker.
func (c *Context) Update(events []sdl.Event) {
	c.Screen.Update(events)
	c.Keyboard.Update(events)
	c.Mouse.Update(events)
	for _, joystick := range c.Joysticks {
		joystick.Update(events)
	}
}

// Joystick returns the opened joystick at index, nil when out of range.
func (c *Context) Joystick(index int) *Joystick {
	if index < 0 || index >= len(c.Joysticks) {
		return nil
	}
	return c.Joysticks[index]
}

// Close tears the context down: joysticks, fonts, window and SDL itself.
func (c *Context) Close() {
	for _, joystick := range c.Joysticks {
		joystick.Close()
	}
	if c.Screen != nil {
		c.Screen.Destroy()
	}
	internal.CloseFonts()
	sdl.Quit()
	internal.CloseLogger()
}

// Logger returns the application logger.
func Logger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel adjusts the application logger level.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// Theme is the set of default colors handed to new options and screens.
type Theme = internal.Theme

// SetTheme replaces the default colors handed to new options and screens.
func SetTheme(theme Theme) {
	internal.SetTheme(theme)
}

// GetTheme returns the active default colors.
func GetTheme() Theme {
	return internal.GetTheme()
}
