package menuet

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"

	"github.com/purplejo/menuet/pkg/menuet/constants"
)

// MenuOptions configures a menu's area, wiring, input bindings and pacing.
type MenuOptions struct {
	// Area is the region options are stacked in. Zero means the screen
	// area at loop time.
	Area sdl.Rect

	// Spacing is the vertical gap between stacked options.
	Spacing int32

	// Wrap closes the navigation chain into a ring when the menu wires
	// the sibling links itself.
	Wrap bool

	// Background optionally fills the menu area before options draw.
	Background *sdl.Color

	// RepeatDelay is the typematic interval for held navigation input.
	RepeatDelay time.Duration

	// PollRate is the interaction loop rate in frames per second,
	// deliberately slower than a render loop.
	PollRate int

	PreviousKeys []sdl.Keycode
	NextKeys     []sdl.Keycode

	// ConfirmKeys activate the focused option. Confirmation never
	// repeats while held.
	ConfirmKeys []sdl.Keycode

	// ClickButton is the mouse button that activates the focused option
	// when clicked inside its area.
	ClickButton uint8

	// Joystick, when non-nil, contributes hat and vertical-axis
	// navigation and button 0 confirmation.
	Joystick *Joystick

	// Handlers maps option index to a handler resolved before the
	// option's own action; a menu configuration can branch on option
	// identity without specializing the loop.
	Handlers map[int]Action
}

// DefaultMenuOptions returns the standard bindings: arrow-key navigation
// with a 233ms repeat, Return/Enter/Space confirmation, left-click
// activation, 30Hz polling.
func DefaultMenuOptions() MenuOptions {
	return MenuOptions{
		Spacing:      10,
		RepeatDelay:  constants.DefaultRepeatDelay,
		PollRate:     constants.DefaultMenuPollRate,
		PreviousKeys: []sdl.Keycode{sdl.K_UP},
		NextKeys:     []sdl.Keycode{sdl.K_DOWN},
		ConfirmKeys:  []sdl.Keycode{sdl.K_RETURN, sdl.K_KP_ENTER, sdl.K_SPACE},
		ClickButton:  sdl.BUTTON_LEFT,
	}
}

// Menu owns an ordered list of options, tracks the single focused one, and
// runs the blocking interaction loop.
type Menu struct {
	opts       MenuOptions
	options    []*Option
	focused    *Option
	background *Surface
	running    *atomic.Bool
	clock      *Clock
}

// NewMenu builds a menu over options. Adjacent options that are not already
// wired are linked into a chain, a ring when Wrap is set; explicit wiring
// done at option construction is preserved. The first option takes focus
// immediately and the menu starts in the active state.
func NewMenu(options []*Option, opts MenuOptions) *Menu {
	if opts.RepeatDelay <= 0 {
		opts.RepeatDelay = constants.DefaultRepeatDelay
	}
	if opts.PollRate <= 0 {
		opts.PollRate = constants.DefaultMenuPollRate
	}
	if opts.ClickButton == 0 {
		opts.ClickButton = sdl.BUTTON_LEFT
	}

	m := &Menu{
		opts:    opts,
		options: options,
		running: atomic.NewBool(true),
		clock:   NewClock(),
	}

	m.wire()

	if len(m.options) > 0 {
		m.focused = m.options[0]
		m.focused.OnFocus()
	}

	return m
}

// wire links adjacent unlinked options, closing the ring when Wrap is set.
func (m *Menu) wire() {
	for i := 0; i < len(m.options)-1; i++ {
		a, b := m.options[i], m.options[i+1]
		if a.Next() == nil && b.Previous() == nil {
			Link(a, b)
		}
	}
	if m.opts.Wrap && len(m.options) > 1 {
		last, first := m.options[len(m.options)-1], m.options[0]
		if last.Next() == nil && first.Previous() == nil {
			Link(last, first)
		}
	}
}

// Options returns the owned option list in order.
func (m *Menu) Options() []*Option {
	return m.options
}

// Focused returns the currently focused option, nil for an empty menu.
func (m *Menu) Focused() *Option {
	return m.focused
}

// Focus moves focus to option. A nil or already-focused option is a no-op;
// otherwise the old option receives exactly one OnBlur and the new one
// exactly one OnFocus.
func (m *Menu) Focus(option *Option) {
	if option == nil || option == m.focused {
		return
	}
	if m.focused != nil {
		m.focused.OnBlur()
	}
	m.focused = option
	m.focused.OnFocus()
}

// Closed reports whether the menu has left its interaction loop state.
func (m *Menu) Closed() bool {
	return !m.running.Load()
}

// Close requests the loop to exit. Takes effect at the top of the next
// iteration; safe to call from an option action.
func (m *Menu) Close() {
	m.running.Store(false)
}

// Reopen re-arms a closed menu so Loop can be invoked again. A menu is
// never reopened implicitly.
func (m *Menu) Reopen() {
	m.running.Store(true)
}

// RunningFlag exposes the menu's cooperative running flag.
func (m *Menu) RunningFlag() *atomic.Bool {
	return m.running
}

// Layout stacks the options top to bottom inside area, centered as a block
// vertically and each option centered horizontally. Recomputed whenever the
// list or the rasterized sizes change; the loop re-evaluates it every
// iteration.
func (m *Menu) Layout(area sdl.Rect) {
	if m.opts.Area.W > 0 && m.opts.Area.H > 0 {
		area = m.opts.Area
	}
	if len(m.options) == 0 {
		return
	}

	var total int32
	for _, o := range m.options {
		total += o.Area().H
	}
	total += m.opts.Spacing * int32(len(m.options)-1)

	y := area.Y + (area.H-total)/2
	for _, o := range m.options {
		oa := o.Area()
		x := area.X + (area.W-oa.W)/2
		o.SetPos(x, y)
		y += oa.H + m.opts.Spacing
	}
}

// Loop blocks the caller until the screen's running flag or this menu's
// running flag goes false. Opening a sub-menu from an option action nests
// another blocking loop on top of this one. Backend draw failures are fatal
// and propagate.
func (m *Menu) Loop(ctx *Context) error {
	for ctx.Screen.Running() && m.running.Load() {
		events := ctx.Poll()
		ctx.Update(events)

		m.navigate(ctx)

		if err := m.render(ctx); err != nil {
			return err
		}

		ctx.Screen.Present()
		m.clock.Tick(m.opts.PollRate)

		if m.activated(ctx) {
			m.apply()
		}
	}
	return nil
}

// navigate moves focus from keyboard/joystick edges and pointer motion.
func (m *Menu) navigate(ctx *Context) {
	if m.focused == nil {
		return
	}

	if m.previousPushed(ctx) && m.focused.Previous() != nil {
		m.Focus(m.focused.Previous())
	}
	if m.nextPushed(ctx) && m.focused.Next() != nil {
		m.Focus(m.focused.Next())
	}

	if ctx.Mouse.Move() && !ctx.Mouse.Inside(m.focused.Area()) {
		for _, o := range m.options {
			if ctx.Mouse.Inside(o.Area()) {
				m.Focus(o)
				break
			}
		}
	}
}

func (m *Menu) previousPushed(ctx *Context) bool {
	for _, key := range m.opts.PreviousKeys {
		if ctx.Keyboard.Push(key, m.opts.RepeatDelay).Yes() {
			return true
		}
	}
	if j := m.opts.Joystick; j != nil {
		if hat, ok := j.Hat(0); ok && hat.Y > 0 && j.PushHat(0, m.opts.RepeatDelay).Yes() {
			return true
		}
		if value, ok := j.Axis(1); ok && value < -constants.AxisDeadZone && j.PushAxis(1, m.opts.RepeatDelay).Yes() {
			return true
		}
	}
	return false
}

func (m *Menu) nextPushed(ctx *Context) bool {
	for _, key := range m.opts.NextKeys {
		if ctx.Keyboard.Push(key, m.opts.RepeatDelay).Yes() {
			return true
		}
	}
	if j := m.opts.Joystick; j != nil {
		if hat, ok := j.Hat(0); ok && hat.Y < 0 && j.PushHat(0, m.opts.RepeatDelay).Yes() {
			return true
		}
		if value, ok := j.Axis(1); ok && value > constants.AxisDeadZone && j.PushAxis(1, m.opts.RepeatDelay).Yes() {
			return true
		}
	}
	return false
}

// activated reports a confirm edge: any confirm key, joystick button 0, or
// a click inside the focused option. None of these repeat while held.
func (m *Menu) activated(ctx *Context) bool {
	if m.focused == nil {
		return false
	}

	for _, key := range m.opts.ConfirmKeys {
		if ctx.Keyboard.Push(key, constants.NoRepeat).Yes() {
			return true
		}
	}
	if j := m.opts.Joystick; j != nil && j.PushButton(0, constants.NoRepeat).Yes() {
		return true
	}
	if ctx.Mouse.Push(m.opts.ClickButton, constants.NoRepeat).Yes() &&
		ctx.Mouse.Inside(m.focused.Area()) {
		return true
	}
	return false
}

// apply dispatches activation: the handler table wins over the option's own
// action.
func (m *Menu) apply() {
	if m.focused == nil {
		return
	}
	for i, o := range m.options {
		if o != m.focused {
			continue
		}
		if handler, ok := m.opts.Handlers[i]; ok && handler != nil {
			handler()
			return
		}
		break
	}
	m.focused.Apply()
}

// backgroundSurface returns the reused background sprite, re-fitted to area.
func (m *Menu) backgroundSurface(area sdl.Rect) *Surface {
	if m.background == nil {
		m.background = NewSurface(sdl.Point{}, sdl.Point{}, *m.opts.Background)
	}
	m.background.SetPos(area.X, area.Y)
	m.background.SetSize(area.W, area.H)
	m.background.SetColor(*m.opts.Background)
	return m.background
}

// render draws the menu background then every option in list order; later
// options overlap earlier ones.
func (m *Menu) render(ctx *Context) error {
	if err := ctx.Screen.Clear(); err != nil {
		return err
	}

	for _, o := range m.options {
		if err := o.ensureSize(); err != nil {
			return err
		}
	}
	m.Layout(ctx.Screen.Area())

	renderer := ctx.Screen.Renderer()
	if m.opts.Background != nil {
		area := m.opts.Area
		if area.W == 0 || area.H == 0 {
			area = ctx.Screen.Area()
		}
		if err := m.backgroundSurface(area).Draw(renderer); err != nil {
			return err
		}
	}

	for _, o := range m.options {
		if err := o.Draw(renderer); err != nil {
			return err
		}
	}

	return nil
}
