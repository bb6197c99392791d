// Package supervisor spawns the inspector, owns its process handle and tears it down.
package supervisor

import (
	"io"
	"log"
	"os/exec"
	"sync"
	"time"

	"github.com/SanjoDeundiak/inspector-desktop/pkg/lib"
	"github.com/SanjoDeundiak/inspector-desktop/pkg/lib/ports"
	"github.com/SanjoDeundiak/inspector-desktop/pkg/lib/relay"
)

var logger = log.New(io.Discard, "supervisor: ", log.LstdFlags)

// SetLogOutput redirects the package logger.
func SetLogOutput(w io.Writer) { logger.SetOutput(w) }

const (
	envClientPort  = "CLIENT_PORT"
	envServerPort  = "SERVER_PORT"
	envAutoOpen    = "MCP_AUTO_OPEN_ENABLED"
	autoOpenOff    = "false"
	stopWaitPeriod = 1 * time.Second
)

// Tool describes how to invoke the inspector. Args are placed before the
// optional upstream command, e.g. {"node", ["cli.js"]} or {"npx", ["@modelcontextprotocol/inspector"]}.
type Tool struct {
	Executable string
	Args       []string
}

// DefaultTool is the globally installed inspector CLI.
func DefaultTool() Tool {
	return Tool{Executable: defaultExecutable}
}

// Options configures Spawn. The zero value spawns DefaultTool on
// unconstrained ports and discards events.
type Options struct {
	Tool       Tool
	Allocator  *ports.Allocator
	Ranges     ports.Ranges
	Sink       lib.Sink
	Matcher    relay.Matcher
	DefaultEnv map[string]string
}

// Handle is the exclusive owner of one running inspector process.
//
// Callers should Close (or Kill) a handle they no longer need. A handle that
// becomes unreachable without that still terminates its process when the
// garbage collector reclaims it.
type Handle struct {
	p *process
}

// process holds everything the background goroutines touch. It never
// references its Handle, so dropping the Handle makes it collectable.
type process struct {
	cmd       *exec.Cmd
	sessionID string
	ports     lib.PortPair
	spec      lib.LaunchSpec
	startedAt time.Time
	relay     *relay.Relay

	waitDone chan struct{}

	mu       sync.RWMutex
	exitCode *int
	waitErr  error
}
