package menuet

import (
	"time"
)

// Clock throttles a loop to a target frame rate. Tick sleeps away whatever
// is left of the current frame, so a loop calling Tick(60) runs at most 60
// iterations per second.
type Clock struct {
	last  time.Time
	delta time.Duration
	now   func() time.Time
	sleep func(time.Duration)
}

// NewClock returns a clock whose first Tick returns immediately.
func NewClock() *Clock {
	return &Clock{
		now:   time.Now,
		sleep: time.Sleep,
	}
}

// Tick waits until at least 1/fps has passed since the previous Tick and
// returns the elapsed time between the two calls. fps <= 0 disables the
// throttle. The sleep is short and bounded; it is re-evaluated every
// iteration and is the only place the toolkit suspends.
func (c *Clock) Tick(fps int) time.Duration {
	now := c.now()

	if c.last.IsZero() {
		c.last = now
		c.delta = 0
		return 0
	}

	if fps > 0 {
		frame := time.Second / time.Duration(fps)
		if elapsed := now.Sub(c.last); elapsed < frame {
			c.sleep(frame - elapsed)
			now = c.now()
		}
	}

	c.delta = now.Sub(c.last)
	c.last = now
	return c.delta
}

// Delta returns the duration measured by the previous Tick.
func (c *Clock) Delta() time.Duration {
	return c.delta
}

// FPS returns the rate implied by the previous Tick, or 0 before the second
// Tick.
func (c *Clock) FPS() float64 {
	if c.delta <= 0 {
		return 0
	}
	return float64(time.Second) / float64(c.delta)
}
