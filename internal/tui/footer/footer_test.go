package footer

import (
	"testing"
)

// fakeHost implements Host with settable flags and intent counters.
type fakeHost struct {
	mode        Mode
	textInput   bool
	defaultText string

	proceedCalls int
	editCalls    int
}

func (h *fakeHost) ApprovalMode() Mode           { return h.mode }
func (h *fakeHost) HasTextInput() bool           { return h.textInput }
func (h *fakeHost) TextInputDefaultText() string { return h.defaultText }
func (h *fakeHost) ProceedRequested()            { h.proceedCalls++ }
func (h *fakeHost) BeganEditingText()            { h.editCalls++ }

func TestRender_ProceedEnabledPerMode(t *testing.T) {
	for _, tc := range []struct {
		mode    Mode
		enabled bool
	}{
		{ModeSend, true},
		{ModeNext, true},
		{ModeLoading, false},
	} {
		c := NewController()
		c.SetHost(&fakeHost{mode: tc.mode})
		spec := c.Render()
		if spec.ProceedEnabled != tc.enabled {
			t.Errorf("mode %s: ProceedEnabled = %v, want %v", tc.mode, spec.ProceedEnabled, tc.enabled)
		}
		if spec.ShowLoadingIndicator != (tc.mode == ModeLoading) {
			t.Errorf("mode %s: ShowLoadingIndicator = %v", tc.mode, spec.ShowLoadingIndicator)
		}
	}
}

func TestRender_ButtonFaces(t *testing.T) {
	for _, tc := range []struct {
		mode  Mode
		icon  string
		label string
	}{
		{ModeSend, "➤", "Send"},
		{ModeNext, "→", "Next"},
		{ModeLoading, "", ""},
	} {
		c := NewController()
		c.SetHost(&fakeHost{mode: tc.mode})
		spec := c.Render()
		if spec.ButtonIcon != tc.icon || spec.ButtonLabel != tc.label {
			t.Errorf("mode %s: got (%q, %q), want (%q, %q)",
				tc.mode, spec.ButtonIcon, spec.ButtonLabel, tc.icon, tc.label)
		}
	}
}

func TestProceed_SuppressedWhileLoading(t *testing.T) {
	h := &fakeHost{mode: ModeLoading}
	c := NewController()
	c.SetHost(h)

	for i := 0; i < 5; i++ {
		c.UserRequestsProceed()
	}
	if h.proceedCalls != 0 {
		t.Fatalf("proceed while loading notified host %d times, want 0", h.proceedCalls)
	}
}

func TestProceed_ExactlyOncePerCall(t *testing.T) {
	for _, mode := range []Mode{ModeSend, ModeNext} {
		h := &fakeHost{mode: mode}
		c := NewController()
		c.SetHost(h)

		c.UserRequestsProceed()
		if h.proceedCalls != 1 {
			t.Errorf("mode %s: first proceed notified %d times, want 1", mode, h.proceedCalls)
		}
		c.UserRequestsProceed()
		c.UserRequestsProceed()
		if h.proceedCalls != 3 {
			t.Errorf("mode %s: three proceeds notified %d times, want 3", mode, h.proceedCalls)
		}
	}
}

func TestBeganEditing_NotifiesOncePerCall(t *testing.T) {
	h := &fakeHost{mode: ModeSend, textInput: true}
	c := NewController()
	c.SetHost(h)

	c.UserBeganEditing()
	c.UserBeganEditing()
	if h.editCalls != 2 {
		t.Fatalf("editCalls = %d, want 2", h.editCalls)
	}
}

func TestRender_Idempotent(t *testing.T) {
	c := NewController()
	c.SetHost(&fakeHost{mode: ModeNext, textInput: true, defaultText: "Message"})
	c.SetDisplayedNames("Alice, Bob", false)
	c.SetNameViewWidth(40)

	first := c.Render()
	second := c.Render()
	if first != second {
		t.Fatalf("renders differ:\n first: %+v\nsecond: %+v", first, second)
	}
}

func TestRender_NoHostDefaults(t *testing.T) {
	c := NewController()
	spec := c.Render()

	if !spec.ProceedEnabled {
		t.Error("unbound controller should allow proceeding")
	}
	if spec.ButtonLabel != "Send" {
		t.Errorf("unbound controller label = %q, want Send", spec.ButtonLabel)
	}
	if spec.TextFieldVisible {
		t.Error("unbound controller should not show a text field")
	}

	// Intents with no host are dropped, not a panic.
	c.UserRequestsProceed()
	c.UserBeganEditing()
}

func TestRender_SendWithoutTextInput(t *testing.T) {
	c := NewController()
	c.SetHost(&fakeHost{mode: ModeSend})
	spec := c.Render()

	if spec.ButtonIcon != "➤" {
		t.Errorf("icon = %q, want send icon", spec.ButtonIcon)
	}
	if spec.TextFieldVisible {
		t.Error("text field visible without host opting in")
	}
	if spec.ShowLoadingIndicator {
		t.Error("loading indicator visible in Send mode")
	}
}

func TestLoadingScenario(t *testing.T) {
	h := &fakeHost{mode: ModeLoading}
	c := NewController()
	c.SetHost(h)

	if spec := c.Render(); !spec.ShowLoadingIndicator {
		t.Error("loading indicator hidden in Loading mode")
	}
	c.UserRequestsProceed()
	if h.proceedCalls != 0 {
		t.Fatalf("proceed during loading produced %d notifications", h.proceedCalls)
	}

	// Host finishes its work and leaves Loading; proceeding works again.
	h.mode = ModeSend
	c.UserRequestsProceed()
	if h.proceedCalls != 1 {
		t.Fatalf("proceed after loading produced %d notifications, want 1", h.proceedCalls)
	}
}

func TestSetDisplayedNames_IndependentOfTextInput(t *testing.T) {
	c := NewController()
	c.SetHost(&fakeHost{mode: ModeSend})

	c.SetDisplayedNames("Alice, Bob, Carol", false)
	spec := c.Render()
	if spec.TextFieldVisible {
		t.Error("setting names must not affect text field visibility")
	}
	if spec.Names != "Alice, Bob, Carol" {
		t.Errorf("Names = %q", spec.Names)
	}
}

func TestNameRevealOffset(t *testing.T) {
	c := NewController()
	c.SetNameViewWidth(10)

	c.SetDisplayedNames("Alice", false)
	if off := c.Render().NameRevealOffset; off != 0 {
		t.Errorf("short name offset = %d, want 0", off)
	}

	c.SetDisplayedNames("Alice, Bob, Carol", true)
	spec := c.Render()
	// 17 cells of content in a 10-cell view: scroll 7 to reveal the tail.
	if spec.NameRevealOffset != 7 {
		t.Errorf("offset = %d, want 7", spec.NameRevealOffset)
	}
	if !spec.NamesAnimate {
		t.Error("animated flag not carried through")
	}

	// No configured width means no scrolling.
	c.SetNameViewWidth(0)
	if off := c.Render().NameRevealOffset; off != 0 {
		t.Errorf("offset with zero width = %d, want 0", off)
	}
}

func TestTextBuffer(t *testing.T) {
	c := NewController()
	if c.CurrentText() != "" {
		t.Fatalf("fresh controller text = %q, want empty", c.CurrentText())
	}
	c.SetCurrentText("on my way")
	if c.CurrentText() != "on my way" {
		t.Fatalf("text = %q", c.CurrentText())
	}
}

func TestRender_PlaceholderFromHost(t *testing.T) {
	c := NewController()
	c.SetHost(&fakeHost{mode: ModeSend, textInput: true, defaultText: "Message"})
	spec := c.Render()
	if !spec.TextFieldVisible {
		t.Fatal("text field hidden with host opting in")
	}
	if spec.TextFieldPlaceholder != "Message" {
		t.Errorf("placeholder = %q, want Message", spec.TextFieldPlaceholder)
	}

	// Absent default text degrades to an empty placeholder.
	c.SetHost(&fakeHost{mode: ModeSend, textInput: true})
	if p := c.Render().TextFieldPlaceholder; p != "" {
		t.Errorf("placeholder = %q, want empty", p)
	}
}
