// Package settings holds the player-editable settings, persisted as a
// small key=value text document.
package settings

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Sensitivity values are scalars relative to this baseline: a sensitivity
// of 5 applies look input unscaled, 10 doubles it.
const Baseline = 5

const (
	keyHorizontal = "horizontal_sensitivity"
	keyVertical   = "vertical_sensitivity"
)

// Settings holds the runtime-editable player settings. Unlike the startup
// config these may change during a session and are saved back to disk.
type Settings struct {
	horizontal uint8
	vertical   uint8
}

// Default returns settings at the baseline sensitivity.
func Default() *Settings {
	return &Settings{
		horizontal: Baseline,
		vertical:   Baseline,
	}
}

// HorizontalSensitivity returns the horizontal look sensitivity.
func (s *Settings) HorizontalSensitivity() uint8 {
	return s.horizontal
}

// VerticalSensitivity returns the vertical look sensitivity.
func (s *Settings) VerticalSensitivity() uint8 {
	return s.vertical
}

// SetHorizontalSensitivity sets the horizontal look sensitivity.
func (s *Settings) SetHorizontalSensitivity(sensitivity uint8) {
	s.horizontal = sensitivity
}

// SetVerticalSensitivity sets the vertical look sensitivity.
func (s *Settings) SetVerticalSensitivity(sensitivity uint8) {
	s.vertical = sensitivity
}

// Load reads settings from a key=value document. Missing keys keep their
// defaults; malformed lines or unknown keys return a descriptive error so
// the caller can decide between falling back to defaults and aborting.
func Load(path string) (*Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s := Default()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			return nil, fmt.Errorf("%s:%d: expected key=value, got %q", path, lineNo, line)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		n, err := strconv.ParseUint(value, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: invalid value for %s: %q", path, lineNo, key, value)
		}

		switch key {
		case keyHorizontal:
			s.horizontal = uint8(n)
		case keyVertical:
			s.vertical = uint8(n)
		default:
			return nil, fmt.Errorf("%s:%d: unknown setting %q", path, lineNo, key)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return s, nil
}

// Save writes the settings as a key=value document.
func (s *Settings) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s=%d\n", keyHorizontal, s.horizontal)
	fmt.Fprintf(&b, "%s=%d\n", keyVertical, s.vertical)

	return os.WriteFile(path, []byte(b.String()), 0644)
}
