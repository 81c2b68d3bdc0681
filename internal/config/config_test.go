package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedMatchesDefaults(t *testing.T) {
	if got := embeddedSettings(); got != DefaultSettings() {
		t.Errorf("embedded settings = %+v, expected %+v", got, DefaultSettings())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("level: hard\nsound: false\n"), 0644); err != nil {
		t.Fatal(err)
	}

	store, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	s := store.Settings()
	if s.Level != "hard" || s.Sound {
		t.Errorf("unexpected settings %+v", s)
	}
	// Keys missing from the file keep their defaults.
	if !s.ShowTimer || !s.ShowHints {
		t.Errorf("missing keys should default to true, got %+v", s)
	}
	if store.Path() != path {
		t.Errorf("Path() = %s, expected %s", store.Path(), path)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom path should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("level: [unclosed"), 0644)
	if _, err := Load(bad); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	store, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if store.Settings() != DefaultSettings() {
		t.Errorf("settings = %+v, expected defaults", store.Settings())
	}
	expected := filepath.Join(home, ".ballsort", "config.yaml")
	if store.Path() != expected {
		t.Errorf("Path() = %s, expected %s", store.Path(), expected)
	}
}

func TestStoreSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	store := NewStore(DefaultSettings(), path)

	store.SetLevel("expert")
	store.SetSoundEnabled(false)
	store.SetShowTimer(false)
	store.SetShowHints(false)

	if err := store.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded.Level() != "expert" || loaded.SoundEnabled() || loaded.ShowTimer() || loaded.ShowHints() {
		t.Errorf("settings not persisted: %+v", loaded.Settings())
	}
}

func TestStoreSaveWithoutPath(t *testing.T) {
	store := NewStore(DefaultSettings(), "")
	if err := store.Save(); err != nil {
		t.Errorf("Save() without path should be a no-op, got %v", err)
	}
}
