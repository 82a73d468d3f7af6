package engine

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Config is the host-level configuration file: arena dimensions, the
// starting mode, and the control bundle. It is decoded from JSON after
// validating against the committed schema.
type Config struct {
	WorldWidth  float64 `json:"worldWidth"`
	WorldHeight float64 `json:"worldHeight"`
	Seed        int64   `json:"seed"`

	Controls Controls `json:"controls"`
}

// DefaultConfig returns the baseline used when no config file is given.
func DefaultConfig() *Config {
	return &Config{
		WorldWidth:  1000,
		WorldHeight: 800,
		Seed:        1,
		Controls:    DefaultControls(ModeBattle),
	}
}

// LoadConfig loads configuration from a JSON file and validates it against
// the schema before unmarshalling.
func LoadConfig(configFile string, schemaFile string) (*Config, error) {
	sch, err := jsonschema.Compile(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Controls = cfg.Controls.Clamped()
	return cfg, nil
}
