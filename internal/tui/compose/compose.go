// Package compose implements the compose flow: pick recipients, write the
// message, approve the send. The flow is the approval footer's host: it
// reports the current mode (Next while picking, Send while writing, Loading
// while the enqueue runs) and reacts to the footer's proceed intent.
package compose

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/parleychat/parley/internal/logging"
	"github.com/parleychat/parley/internal/thread"
	"github.com/parleychat/parley/internal/tui"
	"github.com/parleychat/parley/internal/tui/components"
	"github.com/parleychat/parley/internal/tui/footer"
)

// Outbox durably enqueues a draft for a recipient set.
type Outbox interface {
	EnqueueForContacts(ctx context.Context, contactIDs []string, draft thread.Draft) (*thread.Receipt, error)
}

type phase int

const (
	phaseRecipients phase = iota
	phaseMessage
)

// Model is the top-level bubbletea model for the compose flow.
type Model struct {
	styles *tui.StyleSet
	log    logging.Logger
	outbox Outbox

	ctrl       *footer.Controller
	bar        components.FooterBar
	recipients components.RecipientList

	phase       phase
	loading     bool
	done        bool
	err         error
	sendErr     error
	placeholder string

	proceedRequests int

	width  int
	height int

	result *tui.EnqueueResultMsg
}

// NewModel builds the compose flow over the given contacts.
func NewModel(styles *tui.StyleSet, log logging.Logger, outbox Outbox, contacts []components.RecipientItem, placeholder string) *Model {
	if log == nil {
		log = logging.Nop{}
	}
	if placeholder == "" {
		placeholder = "Message"
	}

	m := &Model{
		styles:      styles,
		log:         log,
		outbox:      outbox,
		placeholder: placeholder,
		width:       80,
		height:      24,
	}

	m.ctrl = footer.NewController()
	m.ctrl.SetHost(m)

	m.bar = components.NewFooterBar(
		m.ctrl,
		styles.Theme.Accent,
		styles.InactiveBorder,
		styles.ProceedButton,
		styles.ProceedButtonDisabled,
		styles.NamesLabel,
		styles.DimTxt,
		styles.KbdKey,
		styles.KbdDesc,
	)

	m.recipients = components.NewRecipientList(
		contacts,
		styles.Theme.Accent,
		styles.Theme.Primary,
		styles.Theme.Secondary,
		styles.Theme.Dim,
		styles.ActiveBorder,
		styles.InactiveBorder,
		styles.KbdKey,
		styles.KbdDesc,
	)

	return m
}

// Host contract.

// ApprovalMode reports what proceeding currently means for the footer.
func (m *Model) ApprovalMode() footer.Mode {
	if m.loading {
		return footer.ModeLoading
	}
	if m.phase == phaseMessage {
		return footer.ModeSend
	}
	return footer.ModeNext
}

// HasTextInput reports whether the message field should be visible.
func (m *Model) HasTextInput() bool {
	return m.phase == phaseMessage
}

// TextInputDefaultText is the message field placeholder.
func (m *Model) TextInputDefaultText() string {
	return m.placeholder
}

// ProceedRequested records the footer's proceed intent; the update loop
// turns it into a step advance or an enqueue command.
func (m *Model) ProceedRequested() {
	m.proceedRequests++
}

// BeganEditingText is invoked when the user starts typing the message.
func (m *Model) BeganEditingText() {
	m.log.Debug("began editing message", nil)
}

// tea.Model contract.

// Init starts the footer's blink and spinner.
func (m *Model) Init() tea.Cmd {
	return m.bar.Init()
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		var cmd tea.Cmd
		m.bar, cmd = m.bar.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.err = fmt.Errorf("compose cancelled")
			return m, tea.Quit
		case "backspace":
			if m.phase == phaseMessage && m.ctrl.CurrentText() == "" {
				// Back to the recipient picker; the draft is empty so
				// nothing is lost.
				m.phase = phaseRecipients
				return m, nil
			}
		}
		return m.updateKey(msg)

	case tui.EnqueueResultMsg:
		m.loading = false
		m.result = &msg
		if msg.Err != nil {
			m.sendErr = msg.Err
			m.log.Error("enqueue failed", map[string]any{"error": msg.Err.Error()})
			return m, nil
		}
		m.log.Info("message enqueued", map[string]any{
			"message_id":  msg.MessageID,
			"allowlisted": msg.Allowlisted,
		})
		m.done = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.bar, cmd = m.bar.Update(msg)
	return m, cmd
}

func (m *Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.phase {
	case phaseRecipients:
		if msg.String() == "enter" {
			m.ctrl.UserRequestsProceed()
		} else {
			m.recipients, cmd = m.recipients.Update(msg)
		}
	case phaseMessage:
		m.bar, cmd = m.bar.Update(msg)
	}

	if m.proceedRequests > 0 {
		m.proceedRequests = 0
		if proceedCmd := m.proceed(); proceedCmd != nil {
			return m, tea.Batch(cmd, proceedCmd)
		}
	}
	return m, cmd
}

// proceed handles one accepted proceed intent.
func (m *Model) proceed() tea.Cmd {
	switch m.phase {
	case phaseRecipients:
		selected := m.recipients.Selected()
		if len(selected) == 0 {
			return nil
		}
		names := make([]string, len(selected))
		for i, r := range selected {
			names[i] = r.Name
		}
		m.ctrl.SetDisplayedNames(strings.Join(names, ", "), true)
		m.bar.ResetEditingSession()
		m.phase = phaseMessage
		return nil

	case phaseMessage:
		body := strings.TrimSpace(m.ctrl.CurrentText())
		if body == "" {
			return nil
		}
		m.sendErr = nil
		m.loading = true
		return m.enqueueCmd(body)
	}
	return nil
}

func (m *Model) enqueueCmd(body string) tea.Cmd {
	selected := m.recipients.Selected()
	ids := make([]string, len(selected))
	for i, r := range selected {
		ids[i] = r.ID
	}
	return func() tea.Msg {
		receipt, err := m.outbox.EnqueueForContacts(context.Background(), ids, thread.Draft{Body: body})
		if err != nil {
			return tui.EnqueueResultMsg{Err: err}
		}
		return tui.EnqueueResultMsg{
			MessageID:   receipt.Message.ID,
			Allowlisted: receipt.Allowlisted,
		}
	}
}

// View renders the compose flow.
func (m *Model) View() string {
	var out string

	out += "\n  " + m.styles.Title.Render("New message") + "\n\n"

	if m.phase == phaseRecipients {
		out += "  " + m.styles.SecondaryTxt.Render("To:") + "\n"
		out += m.recipients.View(m.width) + "\n"
	}

	// The footer bar is always visible; its mode tracks the phase.
	out += m.bar.View(m.width)

	if m.sendErr != nil {
		out += "\n  " + m.styles.ErrorTxt.Render("✗ "+m.sendErr.Error()) + "\n"
	}
	out += "\n"
	return out
}

// Done reports whether the flow completed with an enqueued message.
func (m *Model) Done() bool {
	return m.done
}

// Err returns the cancellation error, if the user aborted.
func (m *Model) Err() error {
	return m.err
}

// Result returns the enqueue result once one arrived.
func (m *Model) Result() *tui.EnqueueResultMsg {
	return m.result
}
