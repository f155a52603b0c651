package menuet

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/purplejo/menuet/pkg/menuet/constants"
	"github.com/purplejo/menuet/pkg/menuet/internal"
)

// HatValue is a discrete 2-D hat direction. Right and up are positive;
// (0,0) is the neutral position.
type HatValue struct {
	X int8
	Y int8
}

// Neutral reports whether the hat is centered.
func (h HatValue) Neutral() bool {
	return h.X == 0 && h.Y == 0
}

type axisState struct {
	value float32
	first bool
	last  time.Time
}

type hatState struct {
	value HatValue
	first bool
	last  time.Time
}

// Joystick tracks button edge state, continuous axis values, hat directions
// and trackball motion for a single joystick instance.
type Joystick struct {
	id      sdl.JoystickID
	name    string
	handle  *sdl.Joystick
	buttons *edgeTracker[uint8]
	axes    map[uint8]*axisState
	hats    map[uint8]*hatState
	balls   map[uint8]sdl.Point
	now     func() time.Time
}

func newJoystick(id sdl.JoystickID) *Joystick {
	return &Joystick{
		id:      id,
		name:    "joystick not detected",
		buttons: newEdgeTracker[uint8](),
		axes:    make(map[uint8]*axisState),
		hats:    make(map[uint8]*hatState),
		balls:   make(map[uint8]sdl.Point),
		now:     time.Now,
	}
}

// OpenJoystick opens the joystick at the given device index and returns its
// tracker. The joystick subsystem must be initialized (New does this).
func OpenJoystick(index int) (*Joystick, error) {
	handle := sdl.JoystickOpen(index)
	if handle == nil {
		return nil, sdl.GetError()
	}

	j := newJoystick(handle.InstanceID())
	j.handle = handle
	j.name = handle.Name()

	internal.GetInternalLogger().Debug("Opened joystick",
		"index", index,
		"instance_id", j.id,
		"name", j.name,
	)

	return j, nil
}

// ID returns the joystick instance id events are filtered by.
func (j *Joystick) ID() sdl.JoystickID {
	return j.id
}

// Name returns the backend-reported device name.
func (j *Joystick) Name() string {
	return j.name
}

// Close releases the underlying device handle.
func (j *Joystick) Close() {
	if j.handle != nil {
		j.handle.Close()
		j.handle = nil
	}
}

// Update consumes one batch of backend events, ignoring events for other
// joystick instances.
func (j *Joystick) Update(events []sdl.Event) {
	for _, event := range events {
		switch e := event.(type) {
		case *sdl.JoyButtonEvent:
			if e.Which != j.id {
				continue
			}
			switch e.Type {
			case sdl.JOYBUTTONDOWN:
				j.buttons.press(e.Button)
			case sdl.JOYBUTTONUP:
				j.buttons.release(e.Button)
			}
		case *sdl.JoyAxisEvent:
			if e.Which != j.id {
				continue
			}
			s, ok := j.axes[e.Axis]
			if !ok {
				s = &axisState{}
				j.axes[e.Axis] = s
			}
			s.value = normalizeAxis(e.Value)
			s.first = true
		case *sdl.JoyHatEvent:
			if e.Which != j.id {
				continue
			}
			s, ok := j.hats[e.Hat]
			if !ok {
				s = &hatState{}
				j.hats[e.Hat] = s
			}
			s.value = hatValueFromMask(e.Value)
			s.first = true
		case *sdl.JoyBallEvent:
			if e.Which != j.id {
				continue
			}
			j.balls[e.Ball] = sdl.Point{X: int32(e.XRel), Y: int32(e.YRel)}
		}
	}
}

// PushButton reports whether button fires on this query, repeating every
// delay while held. A button never observed yields PushUnknown.
func (j *Joystick) PushButton(button uint8, delay time.Duration) Push {
	return j.buttons.push(button, delay)
}

// PushAxis reports whether axis fires on this query. A deflection past the
// dead zone behaves like a held button: the first motion fires immediately,
// then repeats every delay until the axis returns inside the dead zone.
func (j *Joystick) PushAxis(axis uint8, delay time.Duration) Push {
	s, ok := j.axes[axis]
	if !ok {
		return PushUnknown
	}

	if s.first {
		s.first = false
		s.last = j.now()
		return PushYes
	}
	if s.value >= -constants.AxisDeadZone && s.value <= constants.AxisDeadZone {
		return PushNo
	}
	if j.now().Sub(s.last) >= delay {
		s.last = j.now()
		return PushYes
	}
	return PushNo
}

// Axis returns the current normalized axis value in [-1,1]. The second
// return is false for an axis never observed.
func (j *Joystick) Axis(axis uint8) (float32, bool) {
	s, ok := j.axes[axis]
	if !ok {
		return 0, false
	}
	return s.value, true
}

// PushHat reports whether hat fires on this query. A direction behaves like
// a held button; (0,0) is the released state.
func (j *Joystick) PushHat(hat uint8, delay time.Duration) Push {
	s, ok := j.hats[hat]
	if !ok {
		return PushUnknown
	}

	if s.first {
		s.first = false
		s.last = j.now()
		return PushYes
	}
	if s.value.Neutral() {
		return PushNo
	}
	if j.now().Sub(s.last) >= delay {
		s.last = j.now()
		return PushYes
	}
	return PushNo
}

// Hat returns the current hat direction. The second return is false for a
// hat never observed.
func (j *Joystick) Hat(hat uint8) (HatValue, bool) {
	s, ok := j.hats[hat]
	if !ok {
		return HatValue{}, false
	}
	return s.value, true
}

// Ball returns the relative motion last reported for a trackball. The
// second return is false for a ball never observed.
func (j *Joystick) Ball(ball uint8) (sdl.Point, bool) {
	rel, ok := j.balls[ball]
	return rel, ok
}

func normalizeAxis(value int16) float32 {
	if value >= 0 {
		return float32(value) / 32767
	}
	return float32(value) / 32768
}

func hatValueFromMask(mask uint8) HatValue {
	var v HatValue
	if mask&sdl.HAT_UP != 0 {
		v.Y = 1
	}
	if mask&sdl.HAT_DOWN != 0 {
		v.Y = -1
	}
	if mask&sdl.HAT_LEFT != 0 {
		v.X = -1
	}
	if mask&sdl.HAT_RIGHT != 0 {
		v.X = 1
	}
	return v
}
