// Package daemonconfig loads the daemon's TOML options file.
package daemonconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/SanjoDeundiak/inspector-desktop/pkg/lib/config"
	"github.com/SanjoDeundiak/inspector-desktop/pkg/lib/ports"
	"github.com/SanjoDeundiak/inspector-desktop/pkg/lib/supervisor"
)

const (
	fileName = "daemon.toml"

	DefaultAddress     = "127.0.0.1:50057"
	DefaultHistoryKeep = 200

	EnvAddress = "INSPECTOR_ADDRESS"
	EnvTool    = "INSPECTOR_TOOL"
)

type Config struct {
	Tool    ToolConfig    `toml:"tool"`
	Ports   PortsConfig   `toml:"ports"`
	Server  ServerConfig  `toml:"server"`
	History HistoryConfig `toml:"history"`
	Log     LogConfig     `toml:"log"`
}

type ToolConfig struct {
	Executable string   `toml:"executable"`
	Args       []string `toml:"args"`
}

type PortsConfig struct {
	ClientMin   uint16 `toml:"client_min"`
	ClientMax   uint16 `toml:"client_max"`
	ServerMin   uint16 `toml:"server_min"`
	ServerMax   uint16 `toml:"server_max"`
	MaxAttempts int    `toml:"max_attempts"`
}

type ServerConfig struct {
	Address string `toml:"address"`
}

type HistoryConfig struct {
	DBPath string `toml:"db_path"`
	Keep   int    `toml:"keep"`
}

type LogConfig struct {
	Verbose bool `toml:"verbose"`
}

// LoadResult carries the effective options and any non-fatal problems found
// in the file.
type LoadResult struct {
	Config   Config
	Warnings []string
}

// Default returns the options used when no file exists.
func Default() Config {
	return Config{
		Tool:    ToolConfig{Executable: supervisor.DefaultTool().Executable},
		Ports:   PortsConfig{MaxAttempts: ports.DefaultMaxAttempts},
		Server:  ServerConfig{Address: DefaultAddress},
		History: HistoryConfig{Keep: DefaultHistoryKeep},
	}
}

// DefaultPath returns daemon.toml inside the application directory.
func DefaultPath() (string, error) {
	dir, err := config.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// Load reads the default file.
func Load() (*LoadResult, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads path over the defaults, then applies environment overrides.
// A missing file is not an error.
func LoadFrom(path string) (*LoadResult, error) {
	result := &LoadResult{Config: Default()}

	md, err := toml.DecodeFile(path, &result.Config)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("parsing config file: %w", err)
	default:
		for _, key := range md.Undecoded() {
			result.Warnings = append(result.Warnings, fmt.Sprintf("unknown config key: %q", key.String()))
		}
	}

	applyEnv(&result.Config)

	if err := validate(&result.Config); err != nil {
		return nil, err
	}
	return result, nil
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvAddress)); v != "" {
		cfg.Server.Address = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvTool)); v != "" {
		fields := strings.Fields(v)
		cfg.Tool.Executable = fields[0]
		cfg.Tool.Args = fields[1:]
	}
}

func validate(cfg *Config) error {
	if cfg.Tool.Executable == "" {
		return errors.New("tool.executable must not be empty")
	}
	if cfg.Server.Address == "" {
		return errors.New("server.address must not be empty")
	}
	if err := validateRange("client", cfg.Ports.ClientMin, cfg.Ports.ClientMax); err != nil {
		return err
	}
	if err := validateRange("server", cfg.Ports.ServerMin, cfg.Ports.ServerMax); err != nil {
		return err
	}
	if cfg.Ports.MaxAttempts < 0 {
		return fmt.Errorf("ports.max_attempts must be >= 0, got %d", cfg.Ports.MaxAttempts)
	}
	if cfg.History.Keep < 0 {
		return fmt.Errorf("history.keep must be >= 0, got %d", cfg.History.Keep)
	}
	return nil
}

func validateRange(name string, min, max uint16) error {
	if min == 0 && max == 0 {
		return nil
	}
	if min == 0 || max == 0 {
		return fmt.Errorf("ports.%s_min and ports.%s_max must both be set", name, name)
	}
	if min > max {
		return fmt.Errorf("ports.%s_min (%d) exceeds ports.%s_max (%d)", name, min, name, max)
	}
	return nil
}

// SupervisorTool converts the [tool] section.
func (c Config) SupervisorTool() supervisor.Tool {
	return supervisor.Tool{
		Executable: c.Tool.Executable,
		Args:       append([]string(nil), c.Tool.Args...),
	}
}

// PortRanges converts the [ports] section.
func (c Config) PortRanges() ports.Ranges {
	return ports.Ranges{
		Client: ports.Range{Min: c.Ports.ClientMin, Max: c.Ports.ClientMax},
		Server: ports.Range{Min: c.Ports.ServerMin, Max: c.Ports.ServerMax},
	}
}

// Allocator builds a loopback allocator honouring max_attempts.
func (c Config) Allocator() *ports.Allocator {
	a := ports.NewAllocator()
	if c.Ports.MaxAttempts > 0 {
		a.MaxAttempts = c.Ports.MaxAttempts
	}
	return a
}

// HistoryPath returns db_path, or history.db inside the application
// directory when unset.
func (c Config) HistoryPath() (string, error) {
	if c.History.DBPath != "" {
		return c.History.DBPath, nil
	}
	dir, err := config.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history.db"), nil
}
