package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open opens (creating if needed) the sqlite database at path and runs
// migrations. The special DSN ":memory:" opens an in-memory database, used
// by tests.
func Open(path string) (*Store, error) {
	dsn := strings.TrimSpace(path)
	if dsn == "" {
		return nil, fmt.Errorf("store: empty db path")
	}
	if dsn != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
			return nil, fmt.Errorf("store: creating db directory: %w", err)
		}
	}

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("store: opening %s: %w", dsn, err)
	}

	if err := applyPragmas(gdb); err != nil {
		return nil, fmt.Errorf("store: applying pragmas: %w", err)
	}

	if err := gdb.AutoMigrate(&Thread{}, &Message{}, &Contact{}); err != nil {
		return nil, fmt.Errorf("store: migrating: %w", err)
	}

	return &Store{db: gdb}, nil
}

func applyPragmas(gdb *gorm.DB) error {
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA foreign_keys=ON;",
	} {
		if err := gdb.Exec(pragma).Error; err != nil {
			return err
		}
	}
	return nil
}
