package daemonconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SanjoDeundiak/inspector-desktop/pkg/lib/ports"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "daemon.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFrom_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv(EnvAddress, "")
	t.Setenv(EnvTool, "")

	res, err := LoadFrom(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if len(res.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", res.Warnings)
	}
	def := Default()
	if res.Config.Server.Address != def.Server.Address || res.Config.Tool.Executable != def.Tool.Executable {
		t.Fatalf("expected defaults, got %+v", res.Config)
	}
	if res.Config.Ports.MaxAttempts != ports.DefaultMaxAttempts {
		t.Fatalf("expected default max attempts, got %d", res.Config.Ports.MaxAttempts)
	}
	if !res.Config.PortRanges().Client.IsZero() || !res.Config.PortRanges().Server.IsZero() {
		t.Fatalf("expected unconstrained ranges")
	}
}

func TestLoadFrom_FileOverridesDefaults(t *testing.T) {
	t.Setenv(EnvAddress, "")
	t.Setenv(EnvTool, "")

	path := writeConfig(t, `
[tool]
executable = "npx"
args = ["@modelcontextprotocol/inspector"]

[ports]
client_min = 6000
client_max = 6100
server_min = 7000
server_max = 7100
max_attempts = 64

[server]
address = "127.0.0.1:6000"

[history]
db_path = "/tmp/h.db"
keep = 5

[log]
verbose = true
`)
	res, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	cfg := res.Config

	tool := cfg.SupervisorTool()
	if tool.Executable != "npx" || len(tool.Args) != 1 || tool.Args[0] != "@modelcontextprotocol/inspector" {
		t.Fatalf("unexpected tool: %+v", tool)
	}
	r := cfg.PortRanges()
	if r.Client != (ports.Range{Min: 6000, Max: 6100}) || r.Server != (ports.Range{Min: 7000, Max: 7100}) {
		t.Fatalf("unexpected ranges: %+v", r)
	}
	if cfg.Allocator().MaxAttempts != 64 {
		t.Fatalf("max_attempts not applied")
	}
	if cfg.Server.Address != "127.0.0.1:6000" || !cfg.Log.Verbose || cfg.History.Keep != 5 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if p, err := cfg.HistoryPath(); err != nil || p != "/tmp/h.db" {
		t.Fatalf("unexpected history path %q err=%v", p, err)
	}
}

func TestLoadFrom_UnknownKeysWarn(t *testing.T) {
	t.Setenv(EnvAddress, "")
	t.Setenv(EnvTool, "")

	path := writeConfig(t, `
colour = "blue"

[ports]
client_min = 6000
client_max = 6001
bogus = 1
`)
	res, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	joined := strings.Join(res.Warnings, "\n")
	if !strings.Contains(joined, `"colour"`) || !strings.Contains(joined, `"ports.bogus"`) {
		t.Fatalf("expected warnings for unknown keys, got %v", res.Warnings)
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	t.Setenv(EnvAddress, "127.0.0.1:9999")
	t.Setenv(EnvTool, "node /opt/inspector/cli.js")

	path := writeConfig(t, `
[server]
address = "127.0.0.1:6000"
`)
	res, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if res.Config.Server.Address != "127.0.0.1:9999" {
		t.Fatalf("address override not applied: %q", res.Config.Server.Address)
	}
	tool := res.Config.SupervisorTool()
	if tool.Executable != "node" || len(tool.Args) != 1 || tool.Args[0] != "/opt/inspector/cli.js" {
		t.Fatalf("tool override not applied: %+v", tool)
	}
}

func TestLoadFrom_Invalid(t *testing.T) {
	t.Setenv(EnvAddress, "")
	t.Setenv(EnvTool, "")

	cases := map[string]string{
		"reversed range": "[ports]\nclient_min = 7000\nclient_max = 6000\n",
		"half range":     "[ports]\nserver_min = 7000\n",
		"port overflow":  "[ports]\nclient_min = 70000\nclient_max = 70001\n",
		"negative keep":  "[history]\nkeep = -1\n",
		"empty tool":     "[tool]\nexecutable = \"\"\n",
		"syntax":         "[ports\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadFrom(writeConfig(t, content)); err == nil {
				t.Fatalf("expected error for %s", name)
			}
		})
	}
}
