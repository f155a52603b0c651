package menuet

import (
	"testing"
	"time"

	"github.com/veandco/go-sdl2/sdl"
)

func motion(x, y, xrel, yrel int32) sdl.Event {
	return &sdl.MouseMotionEvent{X: x, Y: y, XRel: xrel, YRel: yrel}
}

func buttonDown(button uint8) sdl.Event {
	return &sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: button}
}

func buttonUp(button uint8) sdl.Event {
	return &sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONUP, Button: button}
}

func TestMouseMotionTracking(t *testing.T) {
	m := NewMouse()

	if m.Move() {
		t.Fatalf("fresh mouse should not report motion")
	}

	m.Update([]sdl.Event{motion(100, 50, 10, -5)})
	if !m.Move() {
		t.Fatalf("expected motion after a motion event")
	}
	if pos := m.Pos(); pos.X != 100 || pos.Y != 50 {
		t.Fatalf("expected pos (100,50), got (%d,%d)", pos.X, pos.Y)
	}
	if rel := m.Rel(); rel.X != 10 || rel.Y != -5 {
		t.Fatalf("expected rel (10,-5), got (%d,%d)", rel.X, rel.Y)
	}

	// Relative motion resets each batch; position persists.
	m.Update(nil)
	if m.Move() {
		t.Fatalf("motion should reset on a batch without motion events")
	}
	if pos := m.Pos(); pos.X != 100 || pos.Y != 50 {
		t.Fatalf("position should persist, got (%d,%d)", pos.X, pos.Y)
	}
}

func TestMouseMotionAccumulatesWithinBatch(t *testing.T) {
	m := NewMouse()

	m.Update([]sdl.Event{motion(10, 10, 5, 5), motion(12, 8, 2, -2)})
	if rel := m.Rel(); rel.X != 7 || rel.Y != 3 {
		t.Fatalf("expected accumulated rel (7,3), got (%d,%d)", rel.X, rel.Y)
	}
	if pos := m.Pos(); pos.X != 12 || pos.Y != 8 {
		t.Fatalf("expected final pos (12,8), got (%d,%d)", pos.X, pos.Y)
	}
}

func TestMouseInsideInclusiveBounds(t *testing.T) {
	m := NewMouse()
	area := sdl.Rect{X: 10, Y: 20, W: 30, H: 40}

	corners := []sdl.Point{
		{X: 10, Y: 20},
		{X: 40, Y: 20},
		{X: 10, Y: 60},
		{X: 40, Y: 60},
	}
	for _, corner := range corners {
		m.Update([]sdl.Event{motion(corner.X, corner.Y, 1, 1)})
		if !m.Inside(area) {
			t.Fatalf("corner (%d,%d) should be inside (inclusive bounds)", corner.X, corner.Y)
		}
	}

	outside := []sdl.Point{
		{X: 9, Y: 20},
		{X: 41, Y: 20},
		{X: 10, Y: 19},
		{X: 10, Y: 61},
	}
	for _, p := range outside {
		m.Update([]sdl.Event{motion(p.X, p.Y, 1, 1)})
		if m.Inside(area) {
			t.Fatalf("point (%d,%d) one unit outside should not be inside", p.X, p.Y)
		}
	}
}

func TestMouseButtonPush(t *testing.T) {
	clock := newFakeClock()
	m := NewMouse()
	m.buttons.now = clock.now

	if got := m.Push(sdl.BUTTON_LEFT, 0); got != PushUnknown {
		t.Fatalf("expected PushUnknown for unseen button, got %v", got)
	}

	m.Update([]sdl.Event{buttonDown(sdl.BUTTON_LEFT)})
	if got := m.Push(sdl.BUTTON_LEFT, time.Second); got != PushYes {
		t.Fatalf("expected PushYes on click, got %v", got)
	}
	if got := m.Push(sdl.BUTTON_LEFT, time.Second); got != PushNo {
		t.Fatalf("expected PushNo while held before delay, got %v", got)
	}

	m.Update([]sdl.Event{buttonUp(sdl.BUTTON_LEFT)})
	if got := m.Push(sdl.BUTTON_LEFT, time.Second); got != PushNo {
		t.Fatalf("expected PushNo after release, got %v", got)
	}
}
