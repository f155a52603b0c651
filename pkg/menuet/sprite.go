package menuet

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/purplejo/menuet/pkg/menuet/internal"
)

// Sprite is anything that occupies a rectangle and can draw itself.
type Sprite interface {
	Draw(renderer *sdl.Renderer) error
	Area() sdl.Rect
	SetPos(x, y int32)
}

// Surface is a solid-color rectangle sprite.
type Surface struct {
	pos   sdl.Point
	size  sdl.Point
	color sdl.Color
}

// NewSurface returns a solid-color box at pos with the given size.
func NewSurface(pos sdl.Point, size sdl.Point, color sdl.Color) *Surface {
	return &Surface{pos: pos, size: size, color: color}
}

func (s *Surface) Draw(renderer *sdl.Renderer) error {
	if err := renderer.SetDrawColor(s.color.R, s.color.G, s.color.B, s.color.A); err != nil {
		return fmt.Errorf("set surface color: %w", err)
	}
	area := s.Area()
	if err := renderer.FillRect(&area); err != nil {
		return fmt.Errorf("fill surface: %w", err)
	}
	return nil
}

func (s *Surface) Area() sdl.Rect {
	return sdl.Rect{X: s.pos.X, Y: s.pos.Y, W: s.size.X, H: s.size.Y}
}

func (s *Surface) SetPos(x, y int32) {
	s.pos = sdl.Point{X: x, Y: y}
}

// SetSize changes the box size.
func (s *Surface) SetSize(w, h int32) {
	s.size = sdl.Point{X: w, Y: h}
}

// Color returns the fill color.
func (s *Surface) Color() sdl.Color {
	return s.color
}

// SetColor changes the fill color.
func (s *Surface) SetColor(color sdl.Color) {
	s.color = color
}

// TextOptions describes a text sprite. Zero values fall back to the theme
// and toolkit defaults.
type TextOptions struct {
	Pos        sdl.Point
	FontPath   string
	FontSize   int
	Message    string
	Color      sdl.Color
	Background *sdl.Color
}

// DefaultTextOptions returns the defaults the original toolkit shipped: 84pt
// text, theme blur color, no background.
func DefaultTextOptions() TextOptions {
	return TextOptions{
		FontSize: 84,
		Message:  "MENUET",
		Color:    internal.GetTheme().BlurTextColor,
	}
}

// Text is a sprite rendering a single message through the font cache. The
// rasterized texture is cached; any mutation of message, font, color or
// background invalidates it, and it is rebuilt together with its bounding
// area before the next draw.
type Text struct {
	pos        sdl.Point
	fontPath   string
	fontSize   int
	message    string
	color      sdl.Color
	background *sdl.Color

	texture *sdl.Texture
	size    sdl.Point
}

// NewText returns a text sprite. Nothing is rasterized until the first Draw.
func NewText(options TextOptions) *Text {
	if options.FontSize <= 0 {
		options.FontSize = 84
	}
	return &Text{
		pos:        options.Pos,
		fontPath:   options.FontPath,
		fontSize:   options.FontSize,
		message:    options.Message,
		color:      options.Color,
		background: options.Background,
	}
}

// invalidate drops the cached texture so the next draw re-rasterizes.
func (t *Text) invalidate() {
	if t.texture != nil {
		t.texture.Destroy()
		t.texture = nil
	}
}

// ensureSize measures the message through the font metrics when no size is
// known yet, so layout can run before the first rasterization. An explicit
// SetSize wins.
func (t *Text) ensureSize() error {
	if t.size.X > 0 || t.size.Y > 0 {
		return nil
	}

	font, err := internal.Font(t.fontPath, t.fontSize)
	if err != nil {
		return err
	}

	w, h, err := font.SizeUTF8(t.message)
	if err != nil {
		return fmt.Errorf("measure text %q: %w", t.message, err)
	}
	t.size = sdl.Point{X: int32(w), Y: int32(h)}
	return nil
}

// ensureTexture rasterizes the message if the cache is stale.
func (t *Text) ensureTexture(renderer *sdl.Renderer) error {
	if t.texture != nil {
		return nil
	}

	font, err := internal.Font(t.fontPath, t.fontSize)
	if err != nil {
		return err
	}

	var surface *sdl.Surface
	if t.background != nil {
		surface, err = font.RenderUTF8Shaded(t.message, t.color, *t.background)
	} else {
		surface, err = font.RenderUTF8Blended(t.message, t.color)
	}
	if err != nil {
		return fmt.Errorf("render text %q: %w", t.message, err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return fmt.Errorf("texture for text %q: %w", t.message, err)
	}

	t.texture = texture
	t.size = sdl.Point{X: surface.W, Y: surface.H}
	return nil
}

func (t *Text) Draw(renderer *sdl.Renderer) error {
	if err := t.ensureTexture(renderer); err != nil {
		return err
	}
	area := t.Area()
	if err := renderer.Copy(t.texture, nil, &area); err != nil {
		return fmt.Errorf("draw text %q: %w", t.message, err)
	}
	return nil
}

// Area returns the bounding rect at the current position. Before the first
// draw the size is whatever was set explicitly, zero by default.
func (t *Text) Area() sdl.Rect {
	return sdl.Rect{X: t.pos.X, Y: t.pos.Y, W: t.size.X, H: t.size.Y}
}

func (t *Text) SetPos(x, y int32) {
	t.pos = sdl.Point{X: x, Y: y}
}

// Pos returns the top-left position.
func (t *Text) Pos() sdl.Point {
	return t.pos
}

// SetSize fixes the bounding size without rasterizing, for layout ahead of
// the first draw.
func (t *Text) SetSize(w, h int32) {
	t.size = sdl.Point{X: w, Y: h}
}

// Message returns the current message text.
func (t *Text) Message() string {
	return t.message
}

// SetMessage replaces the message and invalidates the cached image.
func (t *Text) SetMessage(message string) {
	if t.message == message {
		return
	}
	t.message = message
	t.invalidate()
}

// FontSize returns the current font size.
func (t *Text) FontSize() int {
	return t.fontSize
}

// SetFontSize changes the font size and invalidates the cached image.
func (t *Text) SetFontSize(size int) {
	if t.fontSize == size {
		return
	}
	t.fontSize = size
	t.invalidate()
}

// SetFontPath changes the font file and invalidates the cached image.
func (t *Text) SetFontPath(path string) {
	if t.fontPath == path {
		return
	}
	t.fontPath = path
	t.invalidate()
}

// Color returns the current text color.
func (t *Text) Color() sdl.Color {
	return t.color
}

// SetColor changes the text color and invalidates the cached image.
func (t *Text) SetColor(color sdl.Color) {
	if t.color == color {
		return
	}
	t.color = color
	t.invalidate()
}

// Background returns the current background color, nil for transparent.
func (t *Text) Background() *sdl.Color {
	return t.background
}

// SetBackground changes the background color and invalidates the cached
// image. nil renders the text with no background.
func (t *Text) SetBackground(color *sdl.Color) {
	t.background = color
	t.invalidate()
}

// Destroy releases the cached texture.
func (t *Text) Destroy() {
	t.invalidate()
}
