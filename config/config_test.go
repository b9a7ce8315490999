package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse_FullConfig(t *testing.T) {
	data := []byte(`
profile_name: nora
db_path: /tmp/parley-test.db
theme: light
default_timer_seconds: 3600
message_placeholder: "Say something"
contacts:
  - name: Alice
    address: "+15550001111"
  - name: Bob
    address: "+15550002222"
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("parsing config: %v", err)
	}
	if cfg.ProfileName != "nora" {
		t.Errorf("profile_name = %q", cfg.ProfileName)
	}
	if cfg.Theme != "light" {
		t.Errorf("theme = %q", cfg.Theme)
	}
	if cfg.DefaultTimerSeconds != 3600 {
		t.Errorf("default_timer_seconds = %d", cfg.DefaultTimerSeconds)
	}
	if len(cfg.Contacts) != 2 || cfg.Contacts[1].Name != "Bob" {
		t.Errorf("contacts = %+v", cfg.Contacts)
	}
}

func TestParse_MissingProfileName(t *testing.T) {
	_, err := Parse([]byte("db_path: /tmp/x.db\n"))
	if err == nil {
		t.Fatal("expected error for missing profile_name")
	}
	if !strings.Contains(err.Error(), "profile_name") {
		t.Errorf("error %q does not name the missing field", err)
	}
}

func TestParse_RejectsUnknownTheme(t *testing.T) {
	_, err := Parse([]byte("profile_name: nora\ntheme: sepia\n"))
	if err == nil {
		t.Fatal("expected error for unknown theme")
	}
}

func TestParse_RejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("profile_name: nora\ntransport: smtp\n"))
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestParse_ContactMissingAddress(t *testing.T) {
	data := []byte(`
profile_name: nora
contacts:
  - name: Alice
`)
	if _, err := Parse(data); err == nil {
		t.Fatal("expected error for contact without address")
	}
}

func TestParse_AppliesDBPathDefault(t *testing.T) {
	cfg, err := Parse([]byte("profile_name: nora\n"))
	if err != nil {
		t.Fatalf("parsing config: %v", err)
	}
	if cfg.DBPath == "" {
		t.Error("db_path default not applied")
	}
}

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("loading absent config: %v", err)
	}
	if cfg.ProfileName != "parley" {
		t.Errorf("profile_name = %q, want default", cfg.ProfileName)
	}
	if cfg.DBPath == "" {
		t.Error("db_path default not applied")
	}
}

func TestLoad_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parley.yaml")
	if err := os.WriteFile(path, []byte("profile_name: nora\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}
	if cfg.ProfileName != "nora" {
		t.Errorf("profile_name = %q", cfg.ProfileName)
	}
}
