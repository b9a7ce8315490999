package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/parleychat/parley/internal/tui"
)

var contactsCmd = &cobra.Command{
	Use:   "contacts",
	Short: "Manage contacts",
}

var contactsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List known contacts",
	RunE:  runContactsList,
}

var contactsAddCmd = &cobra.Command{
	Use:   "add <name> <address>",
	Short: "Add a contact",
	Args:  cobra.ExactArgs(2),
	RunE:  runContactsAdd,
}

func init() {
	contactsCmd.AddCommand(contactsListCmd)
	contactsCmd.AddCommand(contactsAddCmd)
}

func runContactsList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg, st, err := openStore(ctx)
	if err != nil {
		return err
	}
	styles := tui.NewStyleSet(tui.DetectTheme(themeChoice(cfg)))

	contacts, err := st.ListContacts(ctx)
	if err != nil {
		return err
	}
	if len(contacts) == 0 {
		fmt.Println(styles.DimTxt.Render("No contacts yet."))
		return nil
	}
	for _, c := range contacts {
		fmt.Printf("  %s  %s\n", styles.PrimaryTxt.Render(c.Name), styles.DimTxt.Render(c.Address))
	}
	return nil
}

func runContactsAdd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg, st, err := openStore(ctx)
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	c, err := st.AddContact(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	log.Info("contact added", map[string]any{"contact_id": c.ID})
	fmt.Printf("Added %s (%s)\n", c.Name, c.Address)
	return nil
}
