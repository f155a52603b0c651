// Package constants defines shared constants and configuration values
// used throughout the menuet toolkit.
package constants

import (
	"math"
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// DebugEnvVar enables debug logging for the internal logger when set.
const DebugEnvVar = "MENUET_DEBUG"

// FontPathEnvVar overrides the font used when no font path is configured.
const FontPathEnvVar = "MENUET_FONT"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// NoRepeat is the delay sentinel that suppresses typematic repeat entirely:
// a press fires once and never again until release and re-press.
const NoRepeat = time.Duration(math.MaxInt64)

// Default timing constants.
const (
	// DefaultRepeatDelay is the typematic repeat interval for menu
	// navigation keys while held.
	DefaultRepeatDelay = 233 * time.Millisecond

	// DefaultMenuPollRate is the menu interaction loop rate in frames per
	// second. Deliberately slower than a render loop; menu navigation does
	// not need more.
	DefaultMenuPollRate = 30

	// DefaultFrameRate is the rate used by the example render loop.
	DefaultFrameRate = 120
)

// AxisDeadZone is the neutral band around zero for joystick axis repeat
// queries, in normalized axis units.
const AxisDeadZone = 0.1
