package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/SanjoDeundiak/inspector-desktop/pkg/lib"
)

var base = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func TestUpsert_EvictsStalest(t *testing.T) {
	cfg := Default()
	for i := 0; i < 11; i++ {
		cfg.Upsert(NewProfile(fmt.Sprintf("p%d", i), "node server.js", "/tmp", nil, base.Add(time.Duration(i)*time.Minute)))
	}

	if len(cfg.RecentProfiles) != MaxProfiles {
		t.Fatalf("expected %d profiles, got %d", MaxProfiles, len(cfg.RecentProfiles))
	}
	if cfg.RecentProfiles[0].Name != "p10" {
		t.Fatalf("expected most recent first, got %s", cfg.RecentProfiles[0].Name)
	}
	for _, p := range cfg.RecentProfiles {
		if p.Name == "p0" {
			t.Fatalf("stalest profile p0 should have been evicted")
		}
	}
	for i := 1; i < len(cfg.RecentProfiles); i++ {
		if cfg.RecentProfiles[i-1].LastUsedAt.Before(cfg.RecentProfiles[i].LastUsedAt) {
			t.Fatalf("profiles not ordered by last_used_at descending")
		}
	}
}

func TestUpsert_ReplacesByName(t *testing.T) {
	cfg := Default()
	cfg.Upsert(NewProfile("a", "cmd-a", "/a", nil, base))
	cfg.Upsert(NewProfile("b", "cmd-b", "/b", nil, base.Add(time.Minute)))

	cfg.Upsert(NewProfile("a", "cmd-a2", "/a2", map[string]string{"K": "V"}, base.Add(2*time.Minute)))

	if len(cfg.RecentProfiles) != 2 {
		t.Fatalf("expected 2 profiles after replace, got %d", len(cfg.RecentProfiles))
	}
	first := cfg.RecentProfiles[0]
	if first.Name != "a" || first.Command != "cmd-a2" || first.EnvVars["K"] != "V" {
		t.Fatalf("profile a not replaced: %+v", first)
	}
}

func TestDelete(t *testing.T) {
	cfg := Default()
	p := NewProfile("a", "", "/a", nil, base)
	cfg.Upsert(p)
	cfg.Upsert(NewProfile("b", "", "/b", nil, base))

	cfg.Delete("missing")
	if len(cfg.RecentProfiles) != 2 {
		t.Fatalf("delete of unknown id changed the list")
	}

	cfg.Delete(p.ID)
	if len(cfg.RecentProfiles) != 1 || cfg.RecentProfiles[0].Name != "b" {
		t.Fatalf("unexpected profiles after delete: %+v", cfg.RecentProfiles)
	}
	if _, ok := cfg.Find(p.ID); ok {
		t.Fatalf("deleted profile still found")
	}
}

func TestTouch_Reorders(t *testing.T) {
	cfg := Default()
	a := NewProfile("a", "", "/a", nil, base)
	cfg.Upsert(a)
	cfg.Upsert(NewProfile("b", "", "/b", nil, base.Add(time.Minute)))

	if !cfg.Touch(a.ID, base.Add(time.Hour)) {
		t.Fatalf("Touch returned false for existing profile")
	}
	if cfg.RecentProfiles[0].ID != a.ID {
		t.Fatalf("touched profile should be first")
	}
	if cfg.Touch("missing", base) {
		t.Fatalf("Touch returned true for unknown profile")
	}
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := Default()
	cfg.DefaultEnvVars["NODE_ENV"] = "development"
	cfg.Settings.AutoStart = true
	cfg.Upsert(NewProfile("weather", "node weather.js", "/srv/weather", map[string]string{"API_KEY": "x"}, base))

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temporary file left behind: %v", err)
	}

	loaded := Load(path)
	if loaded.Version != Version || !loaded.Settings.AutoStart || loaded.DefaultEnvVars["NODE_ENV"] != "development" {
		t.Fatalf("unexpected loaded config: %+v", loaded)
	}
	if len(loaded.RecentProfiles) != 1 {
		t.Fatalf("expected 1 profile, got %d", len(loaded.RecentProfiles))
	}
	p := loaded.RecentProfiles[0]
	if p.Name != "weather" || p.EnvVars["API_KEY"] != "x" || !p.LastUsedAt.Equal(base) {
		t.Fatalf("profile mismatch: %+v", p)
	}
}

func TestSave_DocumentSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := Default()
	cfg.Upsert(NewProfile("a", "cmd", "/a", nil, base))
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("saved document is not JSON: %v", err)
	}
	for _, key := range []string{"version", "recent_profiles", "default_env_vars", "settings"} {
		if _, ok := raw[key]; !ok {
			t.Fatalf("missing key %q in %s", key, data)
		}
	}
	settings := raw["settings"].(map[string]any)
	if settings["theme"] != "system" || settings["auto_start"] != false {
		t.Fatalf("unexpected settings: %v", settings)
	}
	profile := raw["recent_profiles"].([]any)[0].(map[string]any)
	for _, key := range []string{"id", "name", "command", "working_directory", "env_vars", "created_at", "last_used_at"} {
		if _, ok := profile[key]; !ok {
			t.Fatalf("missing profile key %q", key)
		}
	}
}

func TestLoad_MissingFileYieldsDefault(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "absent.json"))
	assertDefault(t, cfg)
}

func TestLoad_CorruptedFileYieldsDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"version": "1.0.0", "recent_profiles": [`), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	assertDefault(t, Load(path))
}

func TestSave_FailureIsPersistenceError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg := Default()
	err := cfg.Save(filepath.Join(blocker, "config.json"))
	var pe *lib.PersistenceError
	if !errors.As(err, &pe) {
		t.Fatalf("expected PersistenceError, got %v", err)
	}
}

func TestClone_IsDeep(t *testing.T) {
	cfg := Default()
	cfg.Upsert(NewProfile("a", "", "/a", map[string]string{"K": "V"}, base))

	c := cfg.Clone()
	c.RecentProfiles[0].EnvVars["K"] = "changed"
	c.DefaultEnvVars["X"] = "Y"

	if cfg.RecentProfiles[0].EnvVars["K"] != "V" || len(cfg.DefaultEnvVars) != 0 {
		t.Fatalf("clone shares state with original")
	}
}

func assertDefault(t *testing.T, cfg AppConfig) {
	t.Helper()
	if cfg.Version != Version || len(cfg.RecentProfiles) != 0 || len(cfg.DefaultEnvVars) != 0 {
		t.Fatalf("expected default config, got %+v", cfg)
	}
	if cfg.Settings != DefaultSettings() {
		t.Fatalf("expected default settings, got %+v", cfg.Settings)
	}
}
