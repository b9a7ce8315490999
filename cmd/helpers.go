package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/parleychat/parley/config"
	"github.com/parleychat/parley/internal/logging"
	"github.com/parleychat/parley/internal/store"
)

// openStore loads the config, opens the database, and seeds configured
// contacts. Shared by every subcommand.
func openStore(ctx context.Context) (*config.Config, *store.Store, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, err
	}
	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	for _, seed := range cfg.Contacts {
		if _, err := st.AddContact(ctx, seed.Name, seed.Address); err != nil {
			return nil, nil, fmt.Errorf("seeding contact %s: %w", seed.Address, err)
		}
	}
	return cfg, st, nil
}

// newLogger writes structured JSON logs next to the database so they never
// interleave with the TUI.
func newLogger(cfg *config.Config) logging.Logger {
	path := filepath.Join(filepath.Dir(cfg.DBPath), "parley.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return logging.NewJSONLogger(io.Discard, verbose)
	}
	return logging.NewJSONLogger(f, verbose)
}

// themeChoice resolves the theme: flag wins over config.
func themeChoice(cfg *config.Config) string {
	if themeOverride != "" {
		return themeOverride
	}
	return cfg.Theme
}
