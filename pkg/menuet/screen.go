package menuet

import (
	"fmt"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"

	"github.com/purplejo/menuet/pkg/menuet/internal"
)

// Screen mode flags. Each flag toggles independently; flipping one rebuilds
// the window and renderer with the recomputed masks.
const (
	FlagFullscreen = "FULLSCREEN"
	FlagDoubleBuf  = "DOUBLEBUF"
	FlagHWSurface  = "HWSURFACE"
	FlagOpenGL     = "OPENGL"
	FlagResizable  = "RESIZABLE"
	FlagNoFrame    = "NOFRAME"
)

// ScreenConfig is the construction-time window description.
type ScreenConfig struct {
	Width  int32
	Height int32
	Color  sdl.Color
	Title  string
	Flags  []string

	// BackgroundImage optionally names a PNG drawn over the clear color.
	BackgroundImage string
}

// Screen wraps the backend window and renderer, owns the process-level
// running flag, and consumes window-level events (quit, resize, expose).
type Screen struct {
	window   *sdl.Window
	renderer *sdl.Renderer

	windowedSize   sdl.Point
	fullscreenSize sdl.Point
	color          sdl.Color
	title          string

	fullscreen bool
	doublebuf  bool
	hwsurface  bool
	opengl     bool
	resizable  bool
	noframe    bool

	backgroundPath string
	background     *sdl.Texture

	running *atomic.Bool
}

// NewScreen creates the window and renderer. Backend failures are fatal and
// propagate; the toolkit assumes a correctly configured display environment.
func NewScreen(config ScreenConfig) (*Screen, error) {
	if config.Width <= 0 {
		config.Width = 800
	}
	if config.Height <= 0 {
		config.Height = 600
	}
	if config.Title == "" {
		config.Title = "menuet"
	}
	if config.Color == (sdl.Color{}) {
		config.Color = internal.GetTheme().ScreenColor
	}

	s := &Screen{
		windowedSize:   sdl.Point{X: config.Width, Y: config.Height},
		color:          config.Color,
		title:          config.Title,
		backgroundPath: config.BackgroundImage,
		running:        atomic.NewBool(true),
	}

	mode, err := sdl.GetCurrentDisplayMode(0)
	if err != nil {
		return nil, fmt.Errorf("query display mode: %w", err)
	}
	s.fullscreenSize = sdl.Point{X: mode.W, Y: mode.H}

	for _, flag := range config.Flags {
		switch flag {
		case FlagFullscreen:
			s.fullscreen = true
		case FlagDoubleBuf:
			s.doublebuf = true
		case FlagHWSurface:
			s.hwsurface = true
		case FlagOpenGL:
			s.opengl = true
		case FlagResizable:
			s.resizable = true
		case FlagNoFrame:
			s.noframe = true
		default:
			return nil, fmt.Errorf("unknown screen flag %q", flag)
		}
	}

	if err := s.reset(); err != nil {
		return nil, err
	}

	return s, nil
}

// reset rebuilds the window and renderer from the current size, flags,
// color and title. Called at construction and after any flag or size
// change, mirroring a display set_mode.
func (s *Screen) reset() error {
	s.destroyBackend()

	size := s.Size()

	window, err := sdl.CreateWindow(s.title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		size.X, size.Y, s.windowFlags())
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, s.rendererFlags())
	if err != nil {
		window.Destroy()
		return fmt.Errorf("create renderer: %w", err)
	}

	s.window = window
	s.renderer = renderer

	internal.GetInternalLogger().Debug("Screen reset",
		"width", size.X,
		"height", size.Y,
		"fullscreen", s.fullscreen,
		"title", s.title,
	)

	s.loadBackground()

	return nil
}

// windowFlags computes the window half of the mode bitmask.
func (s *Screen) windowFlags() uint32 {
	flags := uint32(sdl.WINDOW_SHOWN)
	if s.fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}
	if s.opengl {
		flags |= sdl.WINDOW_OPENGL
	}
	if s.resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	if s.noframe {
		flags |= sdl.WINDOW_BORDERLESS
	}
	return flags
}

// rendererFlags computes the renderer half of the mode bitmask. HWSURFACE
// selects the accelerated renderer, DOUBLEBUF vsync'd presentation.
func (s *Screen) rendererFlags() uint32 {
	var flags uint32
	if s.hwsurface {
		flags |= sdl.RENDERER_ACCELERATED
	} else {
		flags |= sdl.RENDERER_SOFTWARE
	}
	if s.doublebuf {
		flags |= sdl.RENDERER_PRESENTVSYNC
	}
	return flags
}

func (s *Screen) loadBackground() {
	if s.background != nil {
		s.background.Destroy()
		s.background = nil
	}
	if s.backgroundPath == "" {
		return
	}

	img.Init(img.INIT_PNG)

	texture, err := img.LoadTexture(s.renderer, s.backgroundPath)
	if err != nil {
		internal.GetInternalLogger().Debug("Failed to load background image",
			"path", s.backgroundPath, "error", err)
		return
	}
	s.background = texture
}

func (s *Screen) destroyBackend() {
	if s.background != nil {
		s.background.Destroy()
		s.background = nil
	}
	if s.renderer != nil {
		s.renderer.Destroy()
		s.renderer = nil
	}
	if s.window != nil {
		s.window.Destroy()
		s.window = nil
	}
}

// Update consumes one batch of backend events: quit requests flip the
// running flag, resizes adopt the new windowed size, exposures re-present.
func (s *Screen) Update(events []sdl.Event) {
	for _, event := range events {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			s.running.Store(false)
		case *sdl.WindowEvent:
			switch e.Event {
			case sdl.WINDOWEVENT_RESIZED, sdl.WINDOWEVENT_SIZE_CHANGED:
				if !s.fullscreen {
					s.windowedSize = sdl.Point{X: e.Data1, Y: e.Data2}
				}
			case sdl.WINDOWEVENT_EXPOSED:
				s.Present()
			}
		}
	}
}

// Running reports the cooperative process-level flag. Menu loops observe it
// at the top of every iteration.
func (s *Screen) Running() bool {
	return s.running.Load()
}

// Stop clears the running flag. Safe from any goroutine.
func (s *Screen) Stop() {
	s.running.Store(false)
}

// RunningFlag exposes the flag itself so callers can hand it to watchers.
func (s *Screen) RunningFlag() *atomic.Bool {
	return s.running
}

// Size returns the active size: the display size in fullscreen mode, the
// windowed size otherwise.
func (s *Screen) Size() sdl.Point {
	if s.fullscreen {
		return s.fullscreenSize
	}
	return s.windowedSize
}

// Width returns the active width.
func (s *Screen) Width() int32 {
	return s.Size().X
}

// Height returns the active height.
func (s *Screen) Height() int32 {
	return s.Size().Y
}

// Area returns the active size as a rect at the origin.
func (s *Screen) Area() sdl.Rect {
	size := s.Size()
	return sdl.Rect{W: size.X, H: size.Y}
}

// SetSize changes the windowed size and rebuilds the backend.
func (s *Screen) SetSize(width, height int32) error {
	s.windowedSize = sdl.Point{X: width, Y: height}
	return s.reset()
}

// Color returns the clear color.
func (s *Screen) Color() sdl.Color {
	return s.color
}

// SetColor changes the clear color. Takes effect on the next Clear.
func (s *Screen) SetColor(color sdl.Color) {
	s.color = color
}

// Title returns the window title.
func (s *Screen) Title() string {
	return s.title
}

// SetTitle changes the window title in place.
func (s *Screen) SetTitle(title string) {
	s.title = title
	if s.window != nil {
		s.window.SetTitle(title)
	}
}

// Fullscreen reports the FULLSCREEN flag.
func (s *Screen) Fullscreen() bool { return s.fullscreen }

// SetFullscreen toggles the FULLSCREEN flag and rebuilds the backend.
func (s *Screen) SetFullscreen(on bool) error {
	s.fullscreen = on
	return s.reset()
}

// DoubleBuf reports the DOUBLEBUF flag.
func (s *Screen) DoubleBuf() bool { return s.doublebuf }

// SetDoubleBuf toggles the DOUBLEBUF flag and rebuilds the backend.
func (s *Screen) SetDoubleBuf(on bool) error {
	s.doublebuf = on
	return s.reset()
}

// HWSurface reports the HWSURFACE flag.
func (s *Screen) HWSurface() bool { return s.hwsurface }

// SetHWSurface toggles the HWSURFACE flag and rebuilds the backend.
func (s *Screen) SetHWSurface(on bool) error {
	s.hwsurface = on
	return s.reset()
}

// OpenGL reports the OPENGL flag.
func (s *Screen) OpenGL() bool { return s.opengl }

// SetOpenGL toggles the OPENGL flag and rebuilds the backend.
func (s *Screen) SetOpenGL(on bool) error {
	s.opengl = on
	return s.reset()
}

// Resizable reports the RESIZABLE flag.
func (s *Screen) Resizable() bool { return s.resizable }

// SetResizable toggles the RESIZABLE flag and rebuilds the backend.
func (s *Screen) SetResizable(on bool) error {
	s.resizable = on
	return s.reset()
}

// NoFrame reports the NOFRAME flag.
func (s *Screen) NoFrame() bool { return s.noframe }

// SetNoFrame toggles the NOFRAME flag and rebuilds the backend.
func (s *Screen) SetNoFrame(on bool) error {
	s.noframe = on
	return s.reset()
}

// Renderer exposes the backend renderer for sprites to draw on.
func (s *Screen) Renderer() *sdl.Renderer {
	return s.renderer
}

// Clear fills the frame with the clear color and the background image if
// one is configured.
func (s *Screen) Clear() error {
	if err := s.renderer.SetDrawColor(s.color.R, s.color.G, s.color.B, s.color.A); err != nil {
		return fmt.Errorf("set clear color: %w", err)
	}
	if err := s.renderer.Clear(); err != nil {
		return fmt.Errorf("clear frame: %w", err)
	}
	if s.background != nil {
		area := s.Area()
		if err := s.renderer.Copy(s.background, nil, &area); err != nil {
			return fmt.Errorf("draw background image: %w", err)
		}
	}
	return nil
}

// Present flips the frame to the display.
func (s *Screen) Present() {
	if s.renderer != nil {
		s.renderer.Present()
	}
}

// Destroy releases the window and renderer.
func (s *Screen) Destroy() {
	s.destroyBackend()
}
