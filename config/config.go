// Package config loads and validates the parley.yaml configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// Config is the top-level parley.yaml configuration.
type Config struct {
	ProfileName string `yaml:"profile_name"`
	DBPath      string `yaml:"db_path,omitempty"`
	Theme       string `yaml:"theme,omitempty"` // dark, light, or empty for auto

	// DefaultTimerSeconds is the disappearing-message timer applied when a
	// thread is first allowlisted. Zero disables it.
	DefaultTimerSeconds int `yaml:"default_timer_seconds,omitempty"`

	// MessagePlaceholder overrides the compose field placeholder.
	MessagePlaceholder string `yaml:"message_placeholder,omitempty"`

	Contacts []ContactSeed `yaml:"contacts,omitempty"`
}

// ContactSeed is a contact loaded into the store at startup.
type ContactSeed struct {
	Name    string `yaml:"name"`
	Address string `yaml:"address"`
}

const configSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["profile_name"],
  "properties": {
    "profile_name": {"type": "string", "minLength": 1},
    "db_path": {"type": "string"},
    "theme": {"enum": ["", "dark", "light"]},
    "default_timer_seconds": {"type": "integer", "minimum": 0},
    "message_placeholder": {"type": "string"},
    "contacts": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "address"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "address": {"type": "string", "minLength": 1}
        }
      }
    }
  },
  "additionalProperties": false
}`

var (
	compiledSchema *gojsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
)

func getSchema() (*gojsonschema.Schema, error) {
	compileOnce.Do(func() {
		loader := gojsonschema.NewStringLoader(configSchema)
		compiledSchema, compileErr = gojsonschema.NewSchema(loader)
	})
	return compiledSchema, compileErr
}

// Parse parses raw YAML bytes into a Config, validating against the config
// schema first.
func Parse(data []byte) (*Config, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing parley config: %w", err)
	}

	jsonData, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("converting parley config: %w", err)
	}

	schema, err := getSchema()
	if err != nil {
		return nil, fmt.Errorf("compiling config schema: %w", err)
	}
	result, err := schema.Validate(gojsonschema.NewBytesLoader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("validating parley config: %w", err)
	}
	if !result.Valid() {
		errs := result.Errors()
		if len(errs) > 0 {
			return nil, fmt.Errorf("parley config: %s", errs[0].String())
		}
		return nil, fmt.Errorf("parley config: invalid")
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing parley config: %w", err)
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

// Load reads and parses a parley.yaml from the given path. A missing file
// is not an error: defaults are returned so parley works out of the box.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg := &Config{ProfileName: "parley"}
		applyDefaults(cfg)
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading parley config %s: %w", path, err)
	}
	return Parse(data)
}

func applyDefaults(cfg *Config) {
	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			cfg.DBPath = "parley.db"
			return
		}
		cfg.DBPath = filepath.Join(home, ".parley", "parley.db")
	}
}
