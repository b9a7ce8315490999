package cmd

import (
	"context"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/parleychat/parley/internal/thread"
)

var purgeYes bool

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete all threads, messages, and contacts",
	RunE:  runPurge,
}

func init() {
	purgeCmd.Flags().BoolVarP(&purgeYes, "yes", "y", false, "skip the confirmation prompt")
}

func runPurge(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg, st, err := openStore(ctx)
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	if !purgeYes {
		p := promptui.Prompt{
			Label:     "Delete ALL local content",
			IsConfirm: true,
		}
		if _, err := p.Run(); err != nil {
			// promptui reports "No" as an error; treat it as a decline.
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := thread.DeleteAllContent(ctx, st); err != nil {
		return err
	}
	log.Warn("all content deleted", map[string]any{"profile": cfg.ProfileName})
	fmt.Println("All content deleted.")
	return nil
}
