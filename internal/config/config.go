// Package config handles runtime configuration loading and management.
package config

import "fmt"

// Config holds all runtime settings. It is loaded once at startup and
// not edited by the player afterwards.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Player  PlayerConfig  `yaml:"player"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// PlayerConfig holds the tunables for the player body and its locomotion.
type PlayerConfig struct {
	// Total height of the physics capsule, including both hemisphere caps.
	CapsuleHeight float32 `yaml:"capsule_height"`
	CapsuleRadius float32 `yaml:"capsule_radius"`
	// Horizontal force applied while a movement input is held.
	MovementForce float32 `yaml:"movement_force"`
	// Vertical force applied on a jump press.
	JumpForce float32 `yaml:"jump_force"`
	// Horizontal speed above which movement input stops adding force.
	MaxSpeed float32 `yaml:"max_speed"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "Strider",
			Width:      800,
			Height:     700,
			Fullscreen: false,
			VSync:      true,
		},
		Player: PlayerConfig{
			CapsuleHeight: 8,
			CapsuleRadius: 1,
			MovementForce: 1000,
			JumpForce:     10000,
			MaxSpeed:      5,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks that loaded values are usable. Player tunables must all
// be positive; a zero or negative value is a document error, not a mode.
func (c *Config) Validate() error {
	p := c.Player
	checks := []struct {
		name  string
		value float32
	}{
		{"capsule_height", p.CapsuleHeight},
		{"capsule_radius", p.CapsuleRadius},
		{"movement_force", p.MovementForce},
		{"jump_force", p.JumpForce},
		{"max_speed", p.MaxSpeed},
	}
	for _, ch := range checks {
		if ch.value <= 0 {
			return fmt.Errorf("player.%s must be positive, got %v", ch.name, ch.value)
		}
	}
	if p.CapsuleHeight < 2*p.CapsuleRadius {
		return fmt.Errorf("player.capsule_height %v is smaller than two capsule radii (%v)",
			p.CapsuleHeight, 2*p.CapsuleRadius)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	return nil
}
