package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RecipientItem is a selectable contact in the recipient picker.
type RecipientItem struct {
	Name    string
	Address string
	ID      string
	Checked bool
}

// RecipientList is a navigable checkbox list of contacts.
type RecipientList struct {
	Items  []RecipientItem
	cursor int
	done   bool

	// Styles
	AccentColor    lipgloss.Color
	PrimaryColor   lipgloss.Color
	SecondaryColor lipgloss.Color
	DimColor       lipgloss.Color
	ActiveBorder   lipgloss.Style
	InactiveBorder lipgloss.Style
	kbd            KbdHint
}

// NewRecipientList creates a recipient picker over the given contacts.
func NewRecipientList(items []RecipientItem, accentColor, primaryColor, secondaryColor, dimColor lipgloss.Color, activeBorder, inactiveBorder, kbdKeyStyle, kbdDescStyle lipgloss.Style) RecipientList {
	kbd := NewKbdHint(kbdKeyStyle, kbdDescStyle)
	kbd.Bindings = RecipientHints()

	return RecipientList{
		Items:          items,
		AccentColor:    accentColor,
		PrimaryColor:   primaryColor,
		SecondaryColor: secondaryColor,
		DimColor:       dimColor,
		ActiveBorder:   activeBorder,
		InactiveBorder: inactiveBorder,
		kbd:            kbd,
	}
}

// Init resets done state so the component can be re-used after back-navigation.
func (r *RecipientList) Init() tea.Cmd {
	r.done = false
	return nil
}

// Update handles keyboard input. Confirming with nothing checked is
// ignored; a message needs at least one recipient.
func (r RecipientList) Update(msg tea.Msg) (RecipientList, tea.Cmd) {
	if r.done {
		return r, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			if r.cursor > 0 {
				r.cursor--
			}
		case "down", "j":
			if r.cursor < len(r.Items)-1 {
				r.cursor++
			}
		case " ":
			r.Items[r.cursor].Checked = !r.Items[r.cursor].Checked
		case "enter":
			if len(r.Selected()) > 0 {
				r.done = true
			}
		}
	}

	return r, nil
}

// View renders the recipient list.
func (r RecipientList) View(width int) string {
	var out string

	itemWidth := width - 6
	if itemWidth < 30 {
		itemWidth = 30
	}

	for i, item := range r.Items {
		isCursor := i == r.cursor
		var checkbox, label string

		if item.Checked {
			checkbox = lipgloss.NewStyle().Foreground(r.AccentColor).Render("☑")
		} else {
			checkbox = lipgloss.NewStyle().Foreground(r.DimColor).Render("☐")
		}

		if isCursor {
			label = lipgloss.NewStyle().Foreground(r.PrimaryColor).Bold(true).Render(item.Name)
		} else {
			label = lipgloss.NewStyle().Foreground(r.SecondaryColor).Render(item.Name)
		}
		addr := lipgloss.NewStyle().Foreground(r.DimColor).Render(item.Address)

		firstLine := fmt.Sprintf("  %s  %s", label, addr)
		firstLineWidth := lipgloss.Width(firstLine)
		padding := itemWidth - firstLineWidth - 4
		if padding < 1 {
			padding = 1
		}
		content := firstLine + strings.Repeat(" ", padding) + checkbox

		var border lipgloss.Style
		if isCursor {
			border = r.ActiveBorder.Width(itemWidth)
		} else {
			border = r.InactiveBorder.Width(itemWidth)
		}

		out += "  " + border.Render(content) + "\n"
	}

	out += "\n" + r.kbd.View()
	return out
}

// Done returns true when the selection is confirmed.
func (r RecipientList) Done() bool {
	return r.done
}

// Selected returns all checked items.
func (r RecipientList) Selected() []RecipientItem {
	var sel []RecipientItem
	for _, item := range r.Items {
		if item.Checked {
			sel = append(sel, item)
		}
	}
	return sel
}
