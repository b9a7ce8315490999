package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/parleychat/parley/internal/tui"
)

var outboxCmd = &cobra.Command{
	Use:   "outbox",
	Short: "List messages waiting to be sent",
	RunE:  runOutbox,
}

func runOutbox(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg, st, err := openStore(ctx)
	if err != nil {
		return err
	}
	styles := tui.NewStyleSet(tui.DetectTheme(themeChoice(cfg)))

	msgs, err := st.QueuedMessages(ctx)
	if err != nil {
		return err
	}
	if len(msgs) == 0 {
		fmt.Println(styles.DimTxt.Render("Outbox is empty."))
		return nil
	}

	for _, m := range msgs {
		when := m.QueuedAt.Local().Format("Jan 2 15:04")
		fmt.Printf("  %s  %s\n", styles.SecondaryTxt.Render(when), styles.PrimaryTxt.Render(m.Body))
		if m.QuotedMessageID != "" {
			fmt.Printf("      %s\n", styles.DimTxt.Render("↩ reply to "+m.QuotedMessageID))
		}
	}
	fmt.Printf("\n  %s\n", styles.DimTxt.Render(fmt.Sprintf("%d queued", len(msgs))))
	return nil
}
