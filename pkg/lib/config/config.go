// Package config persists the user's launch profiles and settings as a single
// JSON document.
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/SanjoDeundiak/inspector-desktop/pkg/lib"
)

const (
	// Version is written into every saved document.
	Version = "1.0.0"
	// MaxProfiles bounds the recent profile list.
	MaxProfiles = 10

	appDirName = "mcp-inspector-desktop"
	fileName   = "config.json"
)

var logger = log.New(io.Discard, "config: ", log.LstdFlags)

// SetLogOutput redirects the package logger.
func SetLogOutput(w io.Writer) { logger.SetOutput(w) }

// Profile is a saved, named launch configuration.
type Profile struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Command          string            `json:"command"`
	WorkingDirectory string            `json:"working_directory"`
	EnvVars          map[string]string `json:"env_vars"`
	CreatedAt        time.Time         `json:"created_at"`
	LastUsedAt       time.Time         `json:"last_used_at"`
}

// LaunchSpec converts the profile into a spec for the supervisor.
func (p Profile) LaunchSpec() lib.LaunchSpec {
	return lib.LaunchSpec{
		Command:          p.Command,
		WorkingDirectory: p.WorkingDirectory,
		Env:              p.EnvVars,
	}.Clone()
}

// Clone returns a copy that shares no map with p.
func (p Profile) Clone() Profile {
	p.EnvVars = copyEnv(p.EnvVars)
	return p
}

// Settings are the user's application preferences.
type Settings struct {
	Theme     string `json:"theme"`
	AutoStart bool   `json:"auto_start"`
}

// AppConfig is the persisted document.
type AppConfig struct {
	Version        string            `json:"version"`
	RecentProfiles []Profile         `json:"recent_profiles"`
	DefaultEnvVars map[string]string `json:"default_env_vars"`
	Settings       Settings          `json:"settings"`
}

// Default returns the configuration used when nothing valid is on disk.
func Default() AppConfig {
	return AppConfig{
		Version:        Version,
		RecentProfiles: []Profile{},
		DefaultEnvVars: map[string]string{},
		Settings:       DefaultSettings(),
	}
}

// DefaultSettings returns the settings of a fresh installation.
func DefaultSettings() Settings {
	return Settings{Theme: "system", AutoStart: false}
}

// Dir returns the per-user directory holding application state.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate user config dir: %w", err)
	}
	return filepath.Join(base, appDirName), nil
}

// DefaultPath returns the location of the JSON document.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// Load reads the document at path. A missing or unparseable file yields
// Default; Load never fails.
func Load(path string) AppConfig {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Printf("Reading %s failed, using defaults: %v", path, err)
		}
		return Default()
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		logger.Printf("Parsing %s failed, using defaults: %v", path, err)
		return Default()
	}
	cfg.normalize()
	return cfg
}

// Save writes the document atomically: a temporary file next to path is
// written first and then renamed over it.
func (c *AppConfig) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return &lib.PersistenceError{Path: path, Err: err}
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return &lib.PersistenceError{Path: path, Err: err}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return &lib.PersistenceError{Path: path, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return &lib.PersistenceError{Path: path, Err: err}
	}
	logger.Printf("Saved %d profiles to %s", len(c.RecentProfiles), path)
	return nil
}

// Upsert replaces the profile with the same name, or appends p, then keeps
// the MaxProfiles most recently used.
func (c *AppConfig) Upsert(p Profile) {
	replaced := false
	for i := range c.RecentProfiles {
		if c.RecentProfiles[i].Name == p.Name {
			c.RecentProfiles[i] = p
			replaced = true
			break
		}
	}
	if !replaced {
		c.RecentProfiles = append(c.RecentProfiles, p)
	}
	c.sortAndTrim()
}

// Delete removes the profile with id. Unknown ids are ignored.
func (c *AppConfig) Delete(id string) {
	kept := c.RecentProfiles[:0]
	for _, p := range c.RecentProfiles {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	c.RecentProfiles = kept
}

// Find returns the profile with id.
func (c *AppConfig) Find(id string) (Profile, bool) {
	for _, p := range c.RecentProfiles {
		if p.ID == id {
			return p, true
		}
	}
	return Profile{}, false
}

// Touch marks the profile with id as used at now and reorders the list.
func (c *AppConfig) Touch(id string, now time.Time) bool {
	for i := range c.RecentProfiles {
		if c.RecentProfiles[i].ID == id {
			c.RecentProfiles[i].LastUsedAt = now
			c.sortAndTrim()
			return true
		}
	}
	return false
}

// Clone returns a deep copy safe to hand out of a lock.
func (c *AppConfig) Clone() AppConfig {
	out := AppConfig{
		Version:        c.Version,
		RecentProfiles: make([]Profile, len(c.RecentProfiles)),
		DefaultEnvVars: copyEnv(c.DefaultEnvVars),
		Settings:       c.Settings,
	}
	for i, p := range c.RecentProfiles {
		p.EnvVars = copyEnv(p.EnvVars)
		out.RecentProfiles[i] = p
	}
	return out
}

func (c *AppConfig) sortAndTrim() {
	sort.SliceStable(c.RecentProfiles, func(i, j int) bool {
		return c.RecentProfiles[i].LastUsedAt.After(c.RecentProfiles[j].LastUsedAt)
	})
	if len(c.RecentProfiles) > MaxProfiles {
		c.RecentProfiles = c.RecentProfiles[:MaxProfiles]
	}
}

// normalize repairs documents written by older or hand-edited versions.
func (c *AppConfig) normalize() {
	if c.Version == "" {
		c.Version = Version
	}
	if c.RecentProfiles == nil {
		c.RecentProfiles = []Profile{}
	}
	if c.DefaultEnvVars == nil {
		c.DefaultEnvVars = map[string]string{}
	}
	if c.Settings.Theme == "" {
		c.Settings.Theme = DefaultSettings().Theme
	}
	c.sortAndTrim()
}

// NewProfile builds a profile with a fresh id, created and used at now.
func NewProfile(name, command, workingDirectory string, env map[string]string, now time.Time) Profile {
	return Profile{
		ID:               lib.NewID(),
		Name:             name,
		Command:          command,
		WorkingDirectory: workingDirectory,
		EnvVars:          copyEnv(env),
		CreatedAt:        now,
		LastUsedAt:       now,
	}
}

func copyEnv(env map[string]string) map[string]string {
	out := make(map[string]string, len(env))
	for k, v := range env {
		out[k] = v
	}
	return out
}
