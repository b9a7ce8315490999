package cmd

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/parleychat/parley/internal/thread"
	"github.com/parleychat/parley/internal/tui"
	"github.com/parleychat/parley/internal/tui/components"
	"github.com/parleychat/parley/internal/tui/compose"
)

var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Compose and queue a new message",
	Long:  "Open the interactive compose flow: pick recipients, write a message, and approve the send.",
	RunE:  runCompose,
}

func runCompose(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("compose requires an interactive terminal")
	}

	ctx := context.Background()
	cfg, st, err := openStore(ctx)
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	contacts, err := st.ListContacts(ctx)
	if err != nil {
		return err
	}
	if len(contacts) == 0 {
		return fmt.Errorf("no contacts yet — add one with 'parley contacts add <name> <address>'")
	}

	items := make([]components.RecipientItem, len(contacts))
	for i, c := range contacts {
		items[i] = components.RecipientItem{ID: c.ID, Name: c.Name, Address: c.Address}
	}

	styles := tui.NewStyleSet(tui.DetectTheme(themeChoice(cfg)))
	outbox := &thread.Service{Store: st, DefaultTimerSeconds: cfg.DefaultTimerSeconds}
	model := compose.NewModel(styles, log, outbox, items, cfg.MessagePlaceholder)

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("running compose flow: %w", err)
	}

	m, ok := final.(*compose.Model)
	if !ok || !m.Done() {
		fmt.Println(styles.DimTxt.Render("Compose cancelled."))
		return nil
	}

	result := m.Result()
	fmt.Println(styles.SuccessTxt.Render("✓ Message queued"))
	if result != nil && result.Allowlisted {
		fmt.Println(styles.DimTxt.Render("  profile shared with this thread"))
	}
	return nil
}
