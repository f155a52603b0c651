package menuet

import (
	"testing"
	"time"
)

// stepClock drives a Clock deterministically: sleep advances the fake time
// instead of suspending.
type stepClock struct {
	fake  *fakeClock
	slept []time.Duration
}

func newStepClock() (*Clock, *stepClock) {
	s := &stepClock{fake: newFakeClock()}
	c := NewClock()
	c.now = s.fake.now
	c.sleep = func(d time.Duration) {
		s.slept = append(s.slept, d)
		s.fake.advance(d)
	}
	return c, s
}

func TestClockFirstTickReturnsImmediately(t *testing.T) {
	c, s := newStepClock()

	if got := c.Tick(60); got != 0 {
		t.Fatalf("first tick must return 0, got %v", got)
	}
	if len(s.slept) != 0 {
		t.Fatalf("first tick must not sleep, slept %v", s.slept)
	}
	if c.Delta() != 0 || c.FPS() != 0 {
		t.Fatalf("no rate before the second tick")
	}
}

func TestClockSleepsFrameRemainder(t *testing.T) {
	c, s := newStepClock()
	c.Tick(50)

	// 8ms of work in a 20ms frame leaves 12ms to sleep away.
	s.fake.advance(8 * time.Millisecond)
	delta := c.Tick(50)

	if len(s.slept) != 1 || s.slept[0] != 12*time.Millisecond {
		t.Fatalf("expected a 12ms sleep, got %v", s.slept)
	}
	if delta != 20*time.Millisecond {
		t.Fatalf("expected a 20ms frame, got %v", delta)
	}
	if c.FPS() != 50 {
		t.Fatalf("expected 50 fps, got %v", c.FPS())
	}
}

func TestClockSlowFrameDoesNotSleep(t *testing.T) {
	c, s := newStepClock()
	c.Tick(50)

	s.fake.advance(30 * time.Millisecond)
	delta := c.Tick(50)

	if len(s.slept) != 0 {
		t.Fatalf("overlong frame must not sleep, slept %v", s.slept)
	}
	if delta != 30*time.Millisecond {
		t.Fatalf("expected the raw 30ms delta, got %v", delta)
	}
}

func TestClockZeroRateDisablesThrottle(t *testing.T) {
	c, s := newStepClock()
	c.Tick(0)

	s.fake.advance(time.Millisecond)
	delta := c.Tick(0)

	if len(s.slept) != 0 {
		t.Fatalf("fps<=0 must never sleep, slept %v", s.slept)
	}
	if delta != time.Millisecond {
		t.Fatalf("expected 1ms delta, got %v", delta)
	}
}
