// Package footer implements the interaction contract of the compose
// approval footer: the bar that presents a proceed affordance, an optional
// message field, and a recipient-name summary for a pending outgoing action.
//
// The package is deliberately free of presentation dependencies. A
// Controller computes what the footer should show as a pure function of the
// host-reported mode; the bubbletea layer in internal/tui/components turns
// that into cells on screen.
package footer

import (
	"github.com/mattn/go-runewidth"
)

// Mode governs what proceeding means for the pending action.
type Mode int

const (
	// ModeSend is the terminal step: proceeding sends the message.
	ModeSend Mode = iota
	// ModeNext is an intermediate step: proceeding advances the flow.
	ModeNext
	// ModeLoading blocks proceeding until the host leaves it.
	ModeLoading
)

// String returns the mode name for logs.
func (m Mode) String() string {
	switch m {
	case ModeSend:
		return "send"
	case ModeNext:
		return "next"
	case ModeLoading:
		return "loading"
	}
	return "unknown"
}

// Host is the screen that owns the pending action. The controller reads the
// current mode and text-input flags from it and reports the user's intents
// back. All methods are invoked synchronously on the UI goroutine.
type Host interface {
	// ApprovalMode reports what proceeding currently means.
	ApprovalMode() Mode
	// HasTextInput reports whether the footer should show a message field.
	HasTextInput() bool
	// TextInputDefaultText is the placeholder for the message field.
	// Empty means no placeholder.
	TextInputDefaultText() string
	// ProceedRequested is called once per accepted proceed intent.
	ProceedRequested()
	// BeganEditingText is called when the user starts editing the field.
	BeganEditingText()
}

// RenderSpec is the footer's complete intended visual state. Two specs
// computed from the same inputs compare equal, so the presentation layer may
// diff them to skip redraws.
type RenderSpec struct {
	ButtonIcon           string
	ButtonLabel          string
	ShowLoadingIndicator bool
	ProceedEnabled       bool
	TextFieldVisible     bool
	TextFieldPlaceholder string

	// Names is the recipient summary line. NameRevealOffset is the leading
	// display-cell offset the presentation layer should scroll the line by
	// so its trailing edge stays visible; NamesAnimate carries through
	// whether the last update asked for an animated reveal.
	Names            string
	NameRevealOffset int
	NamesAnimate     bool
}

// buttonFace holds the per-mode presentation metadata. Kept out of the Mode
// type so the state machine stays decoupled from icon identifiers.
type buttonFace struct {
	icon  string
	label string
}

var buttonFaces = map[Mode]buttonFace{
	ModeSend: {icon: "➤", label: "Send"},
	ModeNext: {icon: "→", label: "Next"},
}

// Controller owns the footer's transient state: the text buffer, the name
// summary, and the bound host. It holds no identity beyond the current
// render and never persists anything.
//
// Not safe for concurrent use; invoke from the UI goroutine only.
type Controller struct {
	host Host

	text          string
	names         string
	namesAnimate  bool
	nameViewWidth int
}

// NewController returns a controller with no host bound. Until SetHost is
// called it renders the safe defaults: Send mode, no text field.
func NewController() *Controller {
	return &Controller{}
}

// SetHost binds the host the controller reads state from and reports
// intents to. A nil host unbinds and restores the defaults.
func (c *Controller) SetHost(h Host) {
	c.host = h
}

// mode resolves the effective mode, defaulting to ModeSend when no host is
// bound so the component stays usable standalone.
func (c *Controller) mode() Mode {
	if c.host == nil {
		return ModeSend
	}
	return c.host.ApprovalMode()
}

// Render computes the footer's intended visual state. It is pure with
// respect to the controller's fields and the host's reported flags: calling
// it any number of times with unchanged inputs yields identical specs.
func (c *Controller) Render() RenderSpec {
	mode := c.mode()

	spec := RenderSpec{
		ShowLoadingIndicator: mode == ModeLoading,
		ProceedEnabled:       mode != ModeLoading,
		Names:                c.names,
		NameRevealOffset:     c.nameRevealOffset(),
		NamesAnimate:         c.namesAnimate,
	}

	if face, ok := buttonFaces[mode]; ok {
		spec.ButtonIcon = face.icon
		spec.ButtonLabel = face.label
	}

	if c.host != nil && c.host.HasTextInput() {
		spec.TextFieldVisible = true
		spec.TextFieldPlaceholder = c.host.TextInputDefaultText()
	}

	return spec
}

// UserRequestsProceed forwards a proceed intent to the host. While the mode
// is ModeLoading the intent is dropped, matching the disabled affordance;
// otherwise the host is notified exactly once.
func (c *Controller) UserRequestsProceed() {
	if c.mode() == ModeLoading {
		return
	}
	if c.host != nil {
		c.host.ProceedRequested()
	}
}

// UserBeganEditing forwards a began-editing intent to the host, exactly
// once per call.
func (c *Controller) UserBeganEditing() {
	if c.host != nil {
		c.host.BeganEditingText()
	}
}

// CurrentText returns the buffered message text, empty until the user has
// entered something.
func (c *Controller) CurrentText() string {
	return c.text
}

// SetCurrentText replaces the text buffer. The presentation layer calls
// this as the user types; hosts may call it to prefill a draft.
func (c *Controller) SetCurrentText(text string) {
	c.text = text
}

// SetDisplayedNames updates the recipient summary line. The reveal offset
// is recomputed so the trailing edge of the new content is visible;
// animated only affects presentation timing and is passed through
// untouched.
func (c *Controller) SetDisplayedNames(text string, animated bool) {
	c.names = text
	c.namesAnimate = animated
}

// SetNameViewWidth sets the display width available to the name summary,
// in terminal cells. Zero or negative disables the reveal offset.
func (c *Controller) SetNameViewWidth(width int) {
	c.nameViewWidth = width
}

// nameRevealOffset is the number of leading display cells to scroll the
// name line by so its trailing edge fits the view.
func (c *Controller) nameRevealOffset() int {
	if c.nameViewWidth <= 0 {
		return 0
	}
	overflow := runewidth.StringWidth(c.names) - c.nameViewWidth
	if overflow < 0 {
		return 0
	}
	return overflow
}
