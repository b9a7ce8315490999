package components

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/parleychat/parley/internal/tui/footer"
)

// FooterBar is the approval footer's presentation: a recipient-name summary
// line, an optional message field, and a proceed button that becomes a
// spinner while the host is busy. All interaction logic lives in the
// footer.Controller; this component only draws the controller's RenderSpec
// and translates key events into controller intents.
type FooterBar struct {
	ctrl    *footer.Controller
	input   textinput.Model
	spinner spinner.Model

	// editingReported tracks whether the began-editing intent has been
	// forwarded for the current focus session.
	editingReported bool

	// Styles
	BorderStyle    lipgloss.Style
	ButtonStyle    lipgloss.Style
	ButtonDisabled lipgloss.Style
	NamesStyle     lipgloss.Style
	DimStyle       lipgloss.Style
	kbd            KbdHint
}

// NewFooterBar creates a footer bar driven by ctrl.
func NewFooterBar(ctrl *footer.Controller, accentColor lipgloss.Color, borderStyle, buttonStyle, buttonDisabled, namesStyle, dimStyle, kbdKeyStyle, kbdDescStyle lipgloss.Style) FooterBar {
	ti := textinput.New()
	ti.CharLimit = 2000
	ti.Focus()
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(accentColor)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(accentColor)

	kbd := NewKbdHint(kbdKeyStyle, kbdDescStyle)
	kbd.Bindings = ComposeHints()

	return FooterBar{
		ctrl:           ctrl,
		input:          ti,
		spinner:        sp,
		BorderStyle:    borderStyle,
		ButtonStyle:    buttonStyle,
		ButtonDisabled: buttonDisabled,
		NamesStyle:     namesStyle,
		DimStyle:       dimStyle,
		kbd:            kbd,
	}
}

// Init starts the cursor blink and the spinner tick.
func (f FooterBar) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, f.spinner.Tick)
}

// Update handles messages.
func (f FooterBar) Update(msg tea.Msg) (FooterBar, tea.Cmd) {
	spec := f.ctrl.Render()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		nameWidth := msg.Width - 6
		if nameWidth < 10 {
			nameWidth = 10
		}
		f.ctrl.SetNameViewWidth(nameWidth)
		return f, nil

	case spinner.TickMsg:
		// Keep the tick chain alive even while hidden so the spinner is
		// ready whenever the host enters loading.
		var cmd tea.Cmd
		f.spinner, cmd = f.spinner.Update(msg)
		return f, cmd

	case tea.KeyMsg:
		if msg.String() == "enter" {
			// The controller drops the intent while loading.
			f.ctrl.UserRequestsProceed()
			return f, nil
		}
		if !spec.TextFieldVisible {
			return f, nil
		}
		before := f.input.Value()
		var cmd tea.Cmd
		f.input, cmd = f.input.Update(msg)
		f.ctrl.SetCurrentText(f.input.Value())
		if !f.editingReported && f.input.Value() != before {
			f.editingReported = true
			f.ctrl.UserBeganEditing()
		}
		return f, cmd
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

// SetText replaces the field content, e.g. when restoring a draft.
func (f *FooterBar) SetText(text string) {
	f.input.SetValue(text)
	f.ctrl.SetCurrentText(text)
}

// ResetEditingSession re-arms the began-editing notification, used when the
// field regains focus after a step change.
func (f *FooterBar) ResetEditingSession() {
	f.editingReported = false
}

// View renders the footer bar.
func (f FooterBar) View(width int) string {
	spec := f.ctrl.Render()
	var out string

	if spec.Names != "" {
		out += "  " + f.NamesStyle.Render(revealWindow(spec.Names, spec.NameRevealOffset)) + "\n"
	}

	if spec.TextFieldVisible {
		f.input.Placeholder = spec.TextFieldPlaceholder
		inputWidth := width - 16
		if inputWidth < 20 {
			inputWidth = 20
		}
		f.input.Width = inputWidth
		out += "  " + f.BorderStyle.Width(inputWidth).Render(f.input.View())
	}

	out += "  " + f.renderButton(spec) + "\n"
	out += "\n" + f.kbd.View()
	return out
}

func (f FooterBar) renderButton(spec footer.RenderSpec) string {
	if spec.ShowLoadingIndicator {
		return f.spinner.View() + " " + f.DimStyle.Render("sending")
	}
	label := spec.ButtonIcon + " " + spec.ButtonLabel
	if !spec.ProceedEnabled {
		return f.ButtonDisabled.Render(label)
	}
	return f.ButtonStyle.Render(label)
}

// revealWindow drops leading display cells so the trailing edge of s stays
// visible within the configured width.
func revealWindow(s string, offset int) string {
	if offset <= 0 {
		return s
	}
	skipped := 0
	for i, r := range s {
		if skipped >= offset {
			return s[i:]
		}
		skipped += runewidth.RuneWidth(r)
	}
	return ""
}
