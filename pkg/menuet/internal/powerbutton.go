package internal

import (
	"time"

	"github.com/holoplot/go-evdev"
)

// PowerButtonConfig describes a hardware quit button read from an evdev
// device node. Handheld targets report their power button there rather than
// through SDL.
type PowerButtonConfig struct {
	DevicePath string
	ButtonCode uint16
	CoolDown   time.Duration

	// OnPress is invoked for each debounced press. It must only touch
	// thread-safe state; the menu stack is single-threaded.
	OnPress func()
}

// WatchPowerButton reads key events from the configured device until the
// device errors out, invoking OnPress for each press of ButtonCode. It is
// meant to run on its own goroutine.
func WatchPowerButton(config PowerButtonConfig) {
	logger := GetInternalLogger()

	device, err := evdev.Open(config.DevicePath)
	if err != nil {
		logger.Error("Failed to open power button device", "path", config.DevicePath, "error", err)
		return
	}
	defer device.Close()

	coolDown := config.CoolDown
	if coolDown == 0 {
		coolDown = time.Second
	}

	var lastPress time.Time

	for {
		event, err := device.ReadOne()
		if err != nil {
			logger.Error("Power button device read failed", "path", config.DevicePath, "error", err)
			return
		}

		if event.Type != evdev.EV_KEY || uint16(event.Code) != config.ButtonCode {
			continue
		}

		// Value 1 is press; 0 release, 2 autorepeat.
		if event.Value != 1 {
			continue
		}

		now := time.Now()
		if now.Sub(lastPress) < coolDown {
			continue
		}
		lastPress = now

		logger.Debug("Power button pressed", "code", config.ButtonCode)

		if config.OnPress != nil {
			config.OnPress()
		}
	}
}
