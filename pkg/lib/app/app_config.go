package app

import (
	"github.com/SanjoDeundiak/inspector-desktop/pkg/lib/config"
)

// updateConfig applies fn to a copy of the configuration and persists it.
// The in-memory value only changes once the save succeeded. fn returns false
// when there is nothing to save.
func (a *App) updateConfig(fn func(cfg *config.AppConfig) bool) error {
	a.cfgMu.Lock()
	defer a.cfgMu.Unlock()

	next := a.cfg.Clone()
	if !fn(&next) {
		return nil
	}
	if a.cfgPath != "" {
		if err := next.Save(a.cfgPath); err != nil {
			return err
		}
	}
	a.cfg = next
	return nil
}

// Config returns a copy of the whole configuration.
func (a *App) Config() config.AppConfig {
	a.cfgMu.Lock()
	defer a.cfgMu.Unlock()
	return a.cfg.Clone()
}

// Profiles returns the saved profiles, most recently used first.
func (a *App) Profiles() []config.Profile {
	return a.Config().RecentProfiles
}

func (a *App) Profile(id string) (config.Profile, bool) {
	a.cfgMu.Lock()
	defer a.cfgMu.Unlock()
	p, ok := a.cfg.Find(id)
	if ok {
		p = p.Clone()
	}
	return p, ok
}

// SaveProfile stores a profile under name. Saving an existing name replaces
// that profile while keeping its id and creation time.
func (a *App) SaveProfile(name, command, workingDirectory string, env map[string]string) (config.Profile, error) {
	now := a.now()
	p := config.NewProfile(name, command, workingDirectory, env, now)

	err := a.updateConfig(func(cfg *config.AppConfig) bool {
		for _, existing := range cfg.RecentProfiles {
			if existing.Name == name {
				p.ID = existing.ID
				p.CreatedAt = existing.CreatedAt
				break
			}
		}
		cfg.Upsert(p)
		return true
	})
	if err != nil {
		return config.Profile{}, err
	}
	logger.Printf("Saved profile %q (%s)", name, p.ID)
	return p, nil
}

// DeleteProfile removes the profile with id. Unknown ids are ignored.
func (a *App) DeleteProfile(id string) error {
	return a.updateConfig(func(cfg *config.AppConfig) bool {
		if _, ok := cfg.Find(id); !ok {
			return false
		}
		cfg.Delete(id)
		return true
	})
}

func (a *App) Settings() config.Settings {
	a.cfgMu.Lock()
	defer a.cfgMu.Unlock()
	return a.cfg.Settings
}

func (a *App) UpdateSettings(s config.Settings) error {
	return a.updateConfig(func(cfg *config.AppConfig) bool {
		cfg.Settings = s
		return true
	})
}

// DefaultEnv returns the variables applied to every launch underneath the
// launch's own overrides.
func (a *App) DefaultEnv() map[string]string {
	a.cfgMu.Lock()
	defer a.cfgMu.Unlock()
	out := make(map[string]string, len(a.cfg.DefaultEnvVars))
	for k, v := range a.cfg.DefaultEnvVars {
		out[k] = v
	}
	return out
}

func (a *App) SetDefaultEnv(env map[string]string) error {
	return a.updateConfig(func(cfg *config.AppConfig) bool {
		cfg.DefaultEnvVars = make(map[string]string, len(env))
		for k, v := range env {
			cfg.DefaultEnvVars[k] = v
		}
		return true
	})
}
