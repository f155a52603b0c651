package menuet

import (
	"testing"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/purplejo/menuet/pkg/menuet/constants"
)

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Unix(1000, 0)}
}

func (f *fakeClock) now() time.Time {
	return f.t
}

func (f *fakeClock) advance(d time.Duration) {
	f.t = f.t.Add(d)
}

func keyDown(key sdl.Keycode) sdl.Event {
	return &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: key}}
}

func keyUp(key sdl.Keycode) sdl.Event {
	return &sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Sym: key}}
}

func keyRepeat(key sdl.Keycode) sdl.Event {
	return &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Repeat: 1, Keysym: sdl.Keysym{Sym: key}}
}

func TestPushIgnoresOSAutoRepeat(t *testing.T) {
	k := NewKeyboard()

	k.Update([]sdl.Event{keyDown(sdl.K_RETURN)})
	if got := k.Push(sdl.K_RETURN, constants.NoRepeat); got != PushYes {
		t.Fatalf("physical press must fire, got %v", got)
	}

	// The OS delivers auto-repeat key-down events while the key is held.
	// They must not re-arm the press: NoRepeat means once per physical
	// press, and held navigation repeats only at the tracker's own delay.
	for i := 0; i < 5; i++ {
		k.Update([]sdl.Event{keyRepeat(sdl.K_RETURN)})
		if got := k.Push(sdl.K_RETURN, constants.NoRepeat); got != PushNo {
			t.Fatalf("auto-repeat event %d must not fire, got %v", i, got)
		}
	}
	if !k.Down(sdl.K_RETURN) {
		t.Fatalf("key must still read as held through auto-repeat")
	}

	k.Update([]sdl.Event{keyUp(sdl.K_RETURN), keyDown(sdl.K_RETURN)})
	if got := k.Push(sdl.K_RETURN, constants.NoRepeat); got != PushYes {
		t.Fatalf("release and re-press must fire again, got %v", got)
	}
}

func TestPushUnknownForUnseenIdentifier(t *testing.T) {
	k := NewKeyboard()

	if got := k.Push(sdl.K_ESCAPE, 0); got != PushUnknown {
		t.Fatalf("expected PushUnknown for unseen key, got %v", got)
	}

	k.Update([]sdl.Event{keyDown(sdl.K_UP)})
	if got := k.Push(sdl.K_DOWN, 0); got != PushUnknown {
		t.Fatalf("expected PushUnknown for other key, got %v", got)
	}
}

func TestPushFiresOncePerPress(t *testing.T) {
	clock := newFakeClock()
	k := NewKeyboard()
	k.keys.now = clock.now

	k.Update([]sdl.Event{keyDown(sdl.K_UP)})

	delay := 100 * time.Millisecond
	if got := k.Push(sdl.K_UP, delay); got != PushYes {
		t.Fatalf("first query after press: expected PushYes, got %v", got)
	}
	if got := k.Push(sdl.K_UP, delay); got != PushNo {
		t.Fatalf("second query same instant: expected PushNo, got %v", got)
	}
}

func TestPushFirstPressIgnoresDelay(t *testing.T) {
	clock := newFakeClock()
	k := NewKeyboard()
	k.keys.now = clock.now

	k.Update([]sdl.Event{keyDown(sdl.K_UP)})

	if got := k.Push(sdl.K_UP, constants.NoRepeat); got != PushYes {
		t.Fatalf("first press with NoRepeat delay: expected PushYes, got %v", got)
	}
	clock.advance(time.Hour)
	if got := k.Push(sdl.K_UP, constants.NoRepeat); got != PushNo {
		t.Fatalf("held with NoRepeat delay: expected PushNo, got %v", got)
	}
}

func TestPushRepeatCadence(t *testing.T) {
	clock := newFakeClock()
	k := NewKeyboard()
	k.keys.now = clock.now

	d := 200 * time.Millisecond
	k.Update([]sdl.Event{keyDown(sdl.K_DOWN)})

	// t=0: first press fires.
	if got := k.Push(sdl.K_DOWN, d); got != PushYes {
		t.Fatalf("t=0: expected PushYes, got %v", got)
	}
	// t=d/2: not yet due.
	clock.advance(d / 2)
	if got := k.Push(sdl.K_DOWN, d); got != PushNo {
		t.Fatalf("t=d/2: expected PushNo, got %v", got)
	}
	// t=d: due again.
	clock.advance(d / 2)
	if got := k.Push(sdl.K_DOWN, d); got != PushYes {
		t.Fatalf("t=d: expected PushYes, got %v", got)
	}
	// t=2d: due again.
	clock.advance(d)
	if got := k.Push(sdl.K_DOWN, d); got != PushYes {
		t.Fatalf("t=2d: expected PushYes, got %v", got)
	}
}

func TestPushZeroDelayFiresEveryPoll(t *testing.T) {
	clock := newFakeClock()
	k := NewKeyboard()
	k.keys.now = clock.now

	k.Update([]sdl.Event{keyDown(sdl.K_SPACE)})

	for i := 0; i < 3; i++ {
		if got := k.Push(sdl.K_SPACE, 0); got != PushYes {
			t.Fatalf("poll %d with zero delay: expected PushYes, got %v", i, got)
		}
	}
}

func TestPushFalseAfterRelease(t *testing.T) {
	k := NewKeyboard()

	k.Update([]sdl.Event{keyDown(sdl.K_UP)})
	if got := k.Push(sdl.K_UP, 0); got != PushYes {
		t.Fatalf("expected PushYes on press, got %v", got)
	}

	k.Update([]sdl.Event{keyUp(sdl.K_UP)})
	if got := k.Push(sdl.K_UP, 0); got != PushNo {
		t.Fatalf("expected PushNo after release, got %v", got)
	}

	// Re-press fires again.
	k.Update([]sdl.Event{keyDown(sdl.K_UP)})
	if got := k.Push(sdl.K_UP, constants.NoRepeat); got != PushYes {
		t.Fatalf("expected PushYes after re-press, got %v", got)
	}
}

func TestPushReleaseOnlyIdentifierIsKnown(t *testing.T) {
	k := NewKeyboard()

	// A key observed only through its release is known but never fires.
	k.Update([]sdl.Event{keyUp(sdl.K_TAB)})
	if got := k.Push(sdl.K_TAB, 0); got != PushNo {
		t.Fatalf("expected PushNo for release-only key, got %v", got)
	}
}

func TestPushBatchCollapsesRapidRepress(t *testing.T) {
	k := NewKeyboard()

	// Press, release and press again inside one batch: the final state is
	// a single fresh press.
	k.Update([]sdl.Event{keyDown(sdl.K_UP), keyUp(sdl.K_UP), keyDown(sdl.K_UP)})
	if got := k.Push(sdl.K_UP, constants.NoRepeat); got != PushYes {
		t.Fatalf("expected one PushYes for collapsed batch, got %v", got)
	}
	if got := k.Push(sdl.K_UP, constants.NoRepeat); got != PushNo {
		t.Fatalf("expected PushNo after the collapsed press fired, got %v", got)
	}
}

func TestPushStringer(t *testing.T) {
	if PushUnknown.String() != "unknown" || PushNo.String() != "no" || PushYes.String() != "yes" {
		t.Fatalf("unexpected Push string values: %v %v %v", PushUnknown, PushNo, PushYes)
	}
	if !PushYes.Yes() || PushNo.Yes() || PushUnknown.Yes() {
		t.Fatalf("Push.Yes misreports")
	}
}
