package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Window defaults
	if cfg.Window.Title != "Strider" {
		t.Errorf("expected title Strider, got %s", cfg.Window.Title)
	}
	if cfg.Window.Width != 800 {
		t.Errorf("expected width 800, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 700 {
		t.Errorf("expected height 700, got %d", cfg.Window.Height)
	}
	if !cfg.Window.VSync {
		t.Error("expected vsync to be true by default")
	}

	// Player defaults
	if cfg.Player.CapsuleHeight != 8 {
		t.Errorf("expected capsule height 8, got %v", cfg.Player.CapsuleHeight)
	}
	if cfg.Player.CapsuleRadius != 1 {
		t.Errorf("expected capsule radius 1, got %v", cfg.Player.CapsuleRadius)
	}
	if cfg.Player.MovementForce != 1000 {
		t.Errorf("expected movement force 1000, got %v", cfg.Player.MovementForce)
	}
	if cfg.Player.JumpForce != 10000 {
		t.Errorf("expected jump force 10000, got %v", cfg.Player.JumpForce)
	}
	if cfg.Player.MaxSpeed != 5 {
		t.Errorf("expected max speed 5, got %v", cfg.Player.MaxSpeed)
	}

	// Logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "config.yaml")

	content := `
window:
  title: "test window"
  width: 1024
player:
  capsule_height: 4
  capsule_radius: 0.5
  movement_force: 500
  jump_force: 2000
  max_speed: 3
logging:
  level: "debug"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Title != "test window" {
		t.Errorf("expected title 'test window', got %s", cfg.Window.Title)
	}
	if cfg.Window.Width != 1024 {
		t.Errorf("expected width 1024, got %d", cfg.Window.Width)
	}
	// Merging keeps defaults for unset fields
	if cfg.Window.Height != 700 {
		t.Errorf("expected default height 700, got %d", cfg.Window.Height)
	}
	if cfg.Player.CapsuleHeight != 4 {
		t.Errorf("expected capsule height 4, got %v", cfg.Player.CapsuleHeight)
	}
	if cfg.Player.MaxSpeed != 3 {
		t.Errorf("expected max speed 3, got %v", cfg.Player.MaxSpeed)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Logging.Level)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "config.yaml")

	if err := os.WriteFile(path, []byte("window:\n  title: \"unterminated\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	err := loadFromFile(cfg, path)
	if err == nil {
		t.Fatal("expected a parse error for malformed YAML")
	}
	if !strings.Contains(err.Error(), "yaml") {
		t.Errorf("expected a descriptive yaml error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero movement force", func(c *Config) { c.Player.MovementForce = 0 }},
		{"negative jump force", func(c *Config) { c.Player.JumpForce = -1 }},
		{"zero max speed", func(c *Config) { c.Player.MaxSpeed = 0 }},
		{"capsule shorter than caps", func(c *Config) { c.Player.CapsuleHeight = 1 }},
		{"zero window width", func(c *Config) { c.Window.Width = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "nested", "config.yaml")

	cfg := Default()
	cfg.Player.MaxSpeed = 7
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	if loaded.Player.MaxSpeed != 7 {
		t.Errorf("expected max speed 7 after round trip, got %v", loaded.Player.MaxSpeed)
	}
}
