package engine

import (
	"os"
	"path/filepath"
	"testing"
)

const schemaPath = "../../config.schema.json"

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write config fixture: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.WorldWidth <= 0 || cfg.WorldHeight <= 0 {
		t.Errorf("default arena must be positive, got %gx%g", cfg.WorldWidth, cfg.WorldHeight)
	}
	if cfg.Controls != cfg.Controls.Clamped() {
		t.Error("default controls must already be within valid ranges")
	}
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeConfig(t, `{
		"worldWidth": 640,
		"worldHeight": 480,
		"seed": 7,
		"controls": {
			"mode": "repulsion",
			"numDots": 250,
			"maxSpeed": 5.0
		}
	}`)

	cfg, err := LoadConfig(path, schemaPath)
	if err != nil {
		t.Fatalf("expected valid config to load, got %v", err)
	}
	if cfg.WorldWidth != 640 || cfg.WorldHeight != 480 {
		t.Errorf("unexpected arena %gx%g", cfg.WorldWidth, cfg.WorldHeight)
	}
	if cfg.Controls.Mode != ModeRepulsion || cfg.Controls.NumDots != 250 {
		t.Errorf("unexpected controls %+v", cfg.Controls)
	}
	// Fields absent from the file keep their defaults.
	if cfg.Controls.Damping != DefaultControls(ModeBattle).Damping {
		t.Errorf("expected default damping, got %f", cfg.Controls.Damping)
	}
}

func TestLoadConfig_SchemaRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"negative width": `{"worldWidth": -10, "worldHeight": 480}`,
		"missing height": `{"worldWidth": 640}`,
		"unknown mode":   `{"worldWidth": 640, "worldHeight": 480, "controls": {"mode": "chaos"}}`,
		"unknown field":  `{"worldWidth": 640, "worldHeight": 480, "warpSpeed": true}`,
	}
	for name, body := range cases {
		if _, err := LoadConfig(writeConfig(t, body), schemaPath); err == nil {
			t.Errorf("%s: expected a validation error", name)
		}
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig("does-not-exist.json", schemaPath); err == nil {
		t.Error("expected an error for a missing config file")
	}
}
