package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Theme holds the default colors handed to options and screens that do not
// configure their own.
type Theme struct {
	FocusTextColor      sdl.Color
	BlurTextColor       sdl.Color
	FocusBackground     *sdl.Color
	BlurBackground      *sdl.Color
	ScreenColor         sdl.Color
	BackgroundImagePath string
}

var currentTheme = Theme{
	FocusTextColor: sdl.Color{R: 255, G: 0, B: 0, A: 255},
	BlurTextColor:  sdl.Color{R: 0, G: 0, B: 0, A: 255},
	ScreenColor:    sdl.Color{R: 255, G: 255, B: 255, A: 255},
}

func SetTheme(theme Theme) {
	currentTheme = theme
}

func GetTheme() Theme {
	return currentTheme
}
