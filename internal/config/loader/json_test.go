package loader

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestJSONLoadFrom(t *testing.T) {
	path := writeFile(t, "cfg.json", `{"logging": {"level": "debug"}, "pagination": {"words_per_page": 500}}`)

	m, err := NewJSONLoader(path).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	logging, ok := m["logging"].(map[string]any)
	if !ok {
		t.Fatalf("expected logging section, got %T", m["logging"])
	}
	if logging["level"] != "debug" {
		t.Errorf("expected debug, got %v", logging["level"])
	}

	// gjson surfaces all JSON numbers as float64.
	pagination := m["pagination"].(map[string]any)
	if n, ok := pagination["words_per_page"].(float64); !ok || n != 500 {
		t.Errorf("expected 500 (float64), got %v (%T)", pagination["words_per_page"], pagination["words_per_page"])
	}
}

func TestJSONLoadMissingFile(t *testing.T) {
	m, err := NewJSONLoader(filepath.Join(t.TempDir(), "absent.json")).Load()
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if m != nil {
		t.Errorf("expected nil map, got %v", m)
	}
}

func TestJSONInvalid(t *testing.T) {
	path := writeFile(t, "bad.json", `{"unterminated": `)

	if _, err := NewJSONLoader(path).Load(); err == nil {
		t.Error("invalid JSON should be an error")
	}
}

func TestJSONTopLevelNotObject(t *testing.T) {
	if _, err := NewJSONLoader("").LoadFromReader(strings.NewReader(`[1, 2, 3]`)); err == nil {
		t.Error("top-level array should be an error")
	}
}
