package menuet

import (
	"time"
	"unicode"

	"github.com/veandco/go-sdl2/sdl"
)

// Keyboard tracks per-key press/release edge state with typematic repeat.
// Keys are identified canonically by sdl.Keycode; PushName and PushChar are
// resolver conveniences over the same state, so the one physical press is
// queryable under all three spellings without triple bookkeeping.
type Keyboard struct {
	keys *edgeTracker[sdl.Keycode]
}

// NewKeyboard returns a keyboard tracker with no observed keys.
func NewKeyboard() *Keyboard {
	return &Keyboard{keys: newEdgeTracker[sdl.Keycode]()}
}

// Update consumes one batch of backend events. Non-keyboard events are
// ignored, as are OS auto-repeat key-down events: the repeat machine is the
// only source of typematic repeat, so only physical presses re-arm it. A
// press, release and re-press inside the same batch collapses to a single
// observed press; batch granularity is a known limitation.
func (k *Keyboard) Update(events []sdl.Event) {
	for _, event := range events {
		e, ok := event.(*sdl.KeyboardEvent)
		if !ok {
			continue
		}
		switch e.Type {
		case sdl.KEYDOWN:
			if e.Repeat != 0 {
				continue
			}
			k.keys.press(e.Keysym.Sym)
		case sdl.KEYUP:
			k.keys.release(e.Keysym.Sym)
		}
	}
}

// Push reports whether key fires on this query, repeating every delay while
// held. The first query after a press fires immediately regardless of delay.
// A key never observed yields PushUnknown.
func (k *Keyboard) Push(key sdl.Keycode, delay time.Duration) Push {
	return k.keys.push(key, delay)
}

// PushName is Push with the key resolved from its SDL key name, e.g.
// "Escape" or "Up".
func (k *Keyboard) PushName(name string, delay time.Duration) Push {
	key := sdl.GetKeyFromName(name)
	if key == sdl.K_UNKNOWN {
		return PushUnknown
	}
	return k.keys.push(key, delay)
}

// PushChar is Push with the key resolved from the character it produces on
// an unmodified layout. Characters that need a modifier (for example '+' on
// a US layout, delivered as Shift plus the '=' key) resolve to a keycode the
// keyboard never reports and yield PushUnknown; read such input through SDL
// text input events instead.
func (k *Keyboard) PushChar(ch rune, delay time.Duration) Push {
	key := sdl.GetKeyFromName(string(unicode.ToLower(ch)))
	if key == sdl.K_UNKNOWN {
		return PushUnknown
	}
	return k.keys.push(key, delay)
}

// Down reports whether key is currently held, without consuming edge state.
func (k *Keyboard) Down(key sdl.Keycode) bool {
	s, ok := k.keys.states[key]
	return ok && s.down
}
