package internal

import (
	"fmt"
	"os"
	"sync"

	"github.com/veandco/go-sdl2/ttf"

	"github.com/purplejo/menuet/pkg/menuet/constants"
)

// defaultFontPaths is probed in order when neither the caller nor the
// MENUET_FONT environment variable names a font.
var defaultFontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
}

type fontKey struct {
	path string
	size int
}

var (
	ttfOnce  sync.Once
	ttfErr   error
	fontsMu  sync.Mutex
	fontPool = map[fontKey]*ttf.Font{}
)

// Font returns an open font for path at size, reusing a previously opened
// handle for the same pair. An empty path resolves to MENUET_FONT or a
// well-known system font.
func Font(path string, size int) (*ttf.Font, error) {
	ttfOnce.Do(func() {
		ttfErr = ttf.Init()
	})
	if ttfErr != nil {
		return nil, fmt.Errorf("init ttf: %w", ttfErr)
	}

	if path == "" {
		path = resolveDefaultFont()
	}
	if path == "" {
		return nil, fmt.Errorf("no font configured and no system font found (set %s)", constants.FontPathEnvVar)
	}

	key := fontKey{path: path, size: size}

	fontsMu.Lock()
	defer fontsMu.Unlock()

	if font, ok := fontPool[key]; ok {
		return font, nil
	}

	font, err := ttf.OpenFont(path, size)
	if err != nil {
		return nil, fmt.Errorf("open font %s: %w", path, err)
	}
	fontPool[key] = font

	return font, nil
}

func resolveDefaultFont() string {
	if env := os.Getenv(constants.FontPathEnvVar); env != "" {
		return env
	}
	for _, candidate := range defaultFontPaths {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// CloseFonts releases every cached font. Called from Context.Close.
func CloseFonts() {
	fontsMu.Lock()
	defer fontsMu.Unlock()

	for key, font := range fontPool {
		font.Close()
		delete(fontPool, key)
	}

	if ttfErr == nil && ttf.WasInit() {
		ttf.Quit()
	}
}
