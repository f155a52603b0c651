package menuet

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/purplejo/menuet/pkg/menuet/i18n"
	"github.com/purplejo/menuet/pkg/menuet/internal"
)

// Action is the invocable attached to an option: zero arguments, no return.
// A nil Action is the "no action" variant; Apply falls back to reporting the
// option message instead of attempting a call.
type Action func()

// OptionOptions describes a menu option. Color pairs switch when the option
// gains or loses focus. Previous/Next wire sibling links symmetrically at
// construction time.
type OptionOptions struct {
	Pos      sdl.Point
	FontPath string
	FontSize int
	Message  string

	MessageColorOnBlur  sdl.Color
	MessageColorOnFocus sdl.Color

	BackgroundOnBlur  *sdl.Color
	BackgroundOnFocus *sdl.Color

	Previous *Option
	Next     *Option

	Action Action
}

// DefaultOptionOptions returns the toolkit defaults: 84pt text, theme blur
// and focus colors, no background, no action.
func DefaultOptionOptions(message string) OptionOptions {
	theme := internal.GetTheme()
	return OptionOptions{
		FontSize:            84,
		Message:             message,
		MessageColorOnBlur:  theme.BlurTextColor,
		MessageColorOnFocus: theme.FocusTextColor,
		BackgroundOnBlur:    theme.BlurBackground,
		BackgroundOnFocus:   theme.FocusBackground,
	}
}

// Option is a navigable, renderable, actionable menu entry. It does not own
// its siblings; the owning menu holds the canonical list.
type Option struct {
	*Text

	blurColor  sdl.Color
	focusColor sdl.Color

	blurBackground   *sdl.Color
	focusBackground  *sdl.Color
	activeBackground *sdl.Color

	previous *Option
	next     *Option

	action  Action
	focused bool
}

// NewOption builds an option in the blurred state. Previous/Next links are
// wired through Link so the symmetry invariant holds in both directions.
func NewOption(options OptionOptions) *Option {
	if options.Message == "" {
		options.Message = i18n.Localize(&i18n.Message{
			ID:    "menuet.option.default_message",
			Other: "OPTION",
		}, nil)
	}

	o := &Option{
		Text: NewText(TextOptions{
			Pos:      options.Pos,
			FontPath: options.FontPath,
			FontSize: options.FontSize,
			Message:  options.Message,
			Color:    options.MessageColorOnBlur,
		}),
		blurColor:        options.MessageColorOnBlur,
		focusColor:       options.MessageColorOnFocus,
		blurBackground:   options.BackgroundOnBlur,
		focusBackground:  options.BackgroundOnFocus,
		activeBackground: options.BackgroundOnBlur,
		action:           options.Action,
	}

	if options.Previous != nil {
		Link(options.Previous, o)
	}
	if options.Next != nil {
		Link(o, options.Next)
	}

	return o
}

// Link wires a.next = b and b.previous = a in one step. Inconsistent
// one-sided links are not representable through this helper.
func Link(a, b *Option) {
	if a == nil || b == nil {
		return
	}
	a.next = b
	b.previous = a
}

// Previous returns the backward sibling link, nil at a chain end.
func (o *Option) Previous() *Option {
	return o.previous
}

// Next returns the forward sibling link, nil at a chain end.
func (o *Option) Next() *Option {
	return o.next
}

// Focused reports whether the option currently holds focus.
func (o *Option) Focused() bool {
	return o.focused
}

// OnFocus switches to the focused color pair and invalidates the cached
// image. Side effect only.
func (o *Option) OnFocus() {
	o.focused = true
	o.activeBackground = o.focusBackground
	o.SetColor(o.focusColor)
}

// OnBlur switches to the blurred color pair and invalidates the cached
// image. Side effect only.
func (o *Option) OnBlur() {
	o.focused = false
	o.activeBackground = o.blurBackground
	o.SetColor(o.blurColor)
}

// Apply invokes the attached action. Without one it reports the option
// message instead; the absence is absorbed here and never surfaced.
func (o *Option) Apply() {
	if o.action != nil {
		o.action()
		return
	}
	internal.GetLogger().Info(i18n.Localize(&i18n.Message{
		ID:    "menuet.option.no_action",
		Other: "option has no action",
	}, nil), "message", o.Message())
}

// SetAction replaces the attached action. nil detaches it.
func (o *Option) SetAction(action Action) {
	o.action = action
}

// Draw renders the option: a rounded background pill when a background
// color is active, then the cached text image.
func (o *Option) Draw(renderer *sdl.Renderer) error {
	if o.activeBackground != nil {
		area := o.Area()
		if area.W > 0 && area.H > 0 {
			internal.DrawRoundedRect(renderer, &area, area.H/8, *o.activeBackground)
		}
	}
	return o.Text.Draw(renderer)
}
