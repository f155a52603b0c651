package menuet

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"
)

// Mouse tracks cursor position, per-frame relative motion and per-button
// edge state with typematic repeat.
type Mouse struct {
	buttons *edgeTracker[uint8]
	pos     sdl.Point
	rel     sdl.Point
}

// NewMouse returns a mouse tracker at position (0,0) with no observed
// buttons.
func NewMouse() *Mouse {
	return &Mouse{buttons: newEdgeTracker[uint8]()}
}

// Update consumes one batch of backend events. Relative motion is reset at
// the start of every batch, so Move reports motion for the current frame
// only.
func (m *Mouse) Update(events []sdl.Event) {
	m.rel = sdl.Point{}
	for _, event := range events {
		switch e := event.(type) {
		case *sdl.MouseButtonEvent:
			switch e.Type {
			case sdl.MOUSEBUTTONDOWN:
				m.buttons.press(e.Button)
			case sdl.MOUSEBUTTONUP:
				m.buttons.release(e.Button)
			}
		case *sdl.MouseMotionEvent:
			m.pos = sdl.Point{X: e.X, Y: e.Y}
			m.rel = sdl.Point{X: m.rel.X + e.XRel, Y: m.rel.Y + e.YRel}
		}
	}
}

// Push reports whether button fires on this query, repeating every delay
// while held. A button never observed yields PushUnknown.
func (m *Mouse) Push(button uint8, delay time.Duration) Push {
	return m.buttons.push(button, delay)
}

// Pos returns the current cursor position.
func (m *Mouse) Pos() sdl.Point {
	return m.pos
}

// Rel returns the relative motion accumulated over the last event batch.
func (m *Mouse) Rel() sdl.Point {
	return m.rel
}

// Move reports whether the cursor moved during the last event batch.
func (m *Mouse) Move() bool {
	return m.rel.X != 0 || m.rel.Y != 0
}

// Inside reports whether the cursor is inside area, bounds inclusive on all
// four sides.
func (m *Mouse) Inside(area sdl.Rect) bool {
	return area.X <= m.pos.X && m.pos.X <= area.X+area.W &&
		area.Y <= m.pos.Y && m.pos.Y <= area.Y+area.H
}

// SetVisible toggles cursor visibility.
func (m *Mouse) SetVisible(visible bool) {
	state := sdl.DISABLE
	if visible {
		state = sdl.ENABLE
	}
	sdl.ShowCursor(state)
}

// Warp moves the cursor to a position inside the screen's window. The next
// motion event re-synchronizes the tracked position.
func (m *Mouse) Warp(screen *Screen, x, y int32) {
	if screen != nil && screen.window != nil {
		screen.window.WarpMouseInWindow(x, y)
	}
	m.pos = sdl.Point{X: x, Y: y}
}
