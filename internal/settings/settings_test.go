package settings

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	s := Default()
	if s.HorizontalSensitivity() != 5 {
		t.Errorf("expected horizontal sensitivity 5, got %d", s.HorizontalSensitivity())
	}
	if s.VerticalSensitivity() != 5 {
		t.Errorf("expected vertical sensitivity 5, got %d", s.VerticalSensitivity())
	}
}

func TestSetters(t *testing.T) {
	s := Default()
	s.SetHorizontalSensitivity(7)
	if s.HorizontalSensitivity() != 7 {
		t.Errorf("expected 7, got %d", s.HorizontalSensitivity())
	}
	s.SetVerticalSensitivity(2)
	if s.VerticalSensitivity() != 2 {
		t.Errorf("expected 2, got %d", s.VerticalSensitivity())
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.txt")

	s := Default()
	s.SetHorizontalSensitivity(9)
	s.SetVerticalSensitivity(3)
	if err := s.Save(path); err != nil {
		t.Fatalf("failed to save settings: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load settings: %v", err)
	}
	if loaded.HorizontalSensitivity() != 9 {
		t.Errorf("expected horizontal 9, got %d", loaded.HorizontalSensitivity())
	}
	if loaded.VerticalSensitivity() != 3 {
		t.Errorf("expected vertical 3, got %d", loaded.VerticalSensitivity())
	}
}

func TestLoadPartialDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.txt")
	content := "# look settings\nvertical_sensitivity = 8\n\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load settings: %v", err)
	}
	if s.VerticalSensitivity() != 8 {
		t.Errorf("expected vertical 8, got %d", s.VerticalSensitivity())
	}
	// Missing key keeps default
	if s.HorizontalSensitivity() != 5 {
		t.Errorf("expected default horizontal 5, got %d", s.HorizontalSensitivity())
	}
}

func TestLoadMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errPart string
	}{
		{"no separator", "horizontal_sensitivity 5\n", "key=value"},
		{"bad number", "horizontal_sensitivity=high\n", "invalid value"},
		{"out of range", "horizontal_sensitivity=300\n", "invalid value"},
		{"unknown key", "mouse_speed=5\n", "unknown setting"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "settings.txt")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			_, err := Load(path)
			if err == nil {
				t.Fatal("expected a parse error")
			}
			if !strings.Contains(err.Error(), tt.errPart) {
				t.Errorf("expected error containing %q, got %v", tt.errPart, err)
			}
			if !strings.Contains(err.Error(), ":1:") {
				t.Errorf("expected error to carry a line number, got %v", err)
			}
		})
	}
}
