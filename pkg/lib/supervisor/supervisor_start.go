package supervisor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"sort"
	"strconv"
	"time"

	"github.com/SanjoDeundiak/inspector-desktop/pkg/lib"
	"github.com/SanjoDeundiak/inspector-desktop/pkg/lib/ports"
	"github.com/SanjoDeundiak/inspector-desktop/pkg/lib/relay"
)

// Spawn starts the inspector for spec and returns once the process exists.
// It never waits for the inspector to print anything; readiness is reported
// asynchronously through opts.Sink.
func Spawn(spec lib.LaunchSpec, opts Options) (*Handle, error) {
	spec = spec.Clone()
	sink := opts.Sink
	if sink == nil {
		sink = lib.DiscardSink
	}
	tool := opts.Tool
	if tool.Executable == "" {
		tool = DefaultTool()
	}

	executable, err := exec.LookPath(tool.Executable)
	if err != nil {
		sink.Emit(lib.Event{
			Kind:   lib.EventLog,
			Stream: lib.StreamStderr,
			Text:   fmt.Sprintf("%s was not found. Install it with: npm install -g @modelcontextprotocol/inspector", tool.Executable),
			Time:   time.Now(),
		})
		return nil, fmt.Errorf("%w: %s: %v", lib.ErrToolNotFound, tool.Executable, err)
	}

	sink.Emit(lib.SystemEvent("", "Allocating ports..."))
	allocator := opts.Allocator
	if allocator == nil {
		allocator = ports.NewAllocator()
	}
	pair, err := allocator.AllocatePair(opts.Ranges)
	if err != nil {
		return nil, err
	}
	sink.Emit(lib.SystemEvent("", "Allocated ports: client=%d, server=%d", pair.ClientPort, pair.ServerPort))

	args := append([]string(nil), tool.Args...)
	if spec.Command != "" {
		args = append(args, spec.Command)
	}
	cmd := exec.Command(executable, args...)
	cmd.Dir = spec.WorkingDirectory
	cmd.Env = buildEnv(pair, opts.DefaultEnv, spec.Env)
	cmd.SysProcAttr = sysProcAttr()
	// cmd.Stdin is left nil, so it will use the null device

	// Pipes are created here rather than with StdoutPipe so that reaping the
	// child never closes the read ends before the relay drained them.
	stdoutR, stdoutW, err := os.Pipe()
	if err != nil {
		return nil, &lib.SpawnError{Op: "capture stdout", Err: err}
	}
	stderrR, stderrW, err := os.Pipe()
	if err != nil {
		closeAll(stdoutR, stdoutW)
		return nil, &lib.SpawnError{Op: "capture stderr", Err: err}
	}
	cmd.Stdout = stdoutW
	cmd.Stderr = stderrW

	sink.Emit(lib.SystemEvent("", "Starting %s...", tool.Executable))
	logger.Printf("Starting %s %v in %q", executable, args, spec.WorkingDirectory)
	if err := cmd.Start(); err != nil {
		closeAll(stdoutR, stdoutW, stderrR, stderrW)
		logger.Printf("Failed to start %s: %v", executable, err)
		return nil, &lib.SpawnError{Op: "start " + tool.Executable, Err: err}
	}
	// The child holds its own copies now.
	closeAll(stdoutW, stderrW)

	p := &process{
		cmd:       cmd,
		sessionID: lib.NewID(),
		ports:     pair,
		spec:      spec,
		startedAt: time.Now(),
		waitDone:  make(chan struct{}),
	}

	go p.wait()

	p.relay = relay.Start(relay.Config{
		SessionID: p.sessionID,
		Ports:     pair,
		Sink:      prematureNotice(sink),
		Matcher:   opts.Matcher,
		Wait:      p.waitExitCode,
	}, stdoutR, stderrR)

	logger.Printf("Session %s: pid %d, client=%d server=%d", p.sessionID, cmd.Process.Pid, pair.ClientPort, pair.ServerPort)

	h := &Handle{p: p}
	runtime.AddCleanup(h, func(p *process) {
		select {
		case <-p.relay.Done():
		default:
			logger.Printf("Session %s: handle dropped while running, terminating", p.sessionID)
			_ = p.kill()
		}
	}, p)

	return h, nil
}

// prematureNotice reports a child that died before publishing its session
// token as a system line ahead of the exited event.
func prematureNotice(sink lib.Sink) lib.Sink {
	return lib.SinkFunc(func(e lib.Event) {
		if e.Kind == lib.EventExited && e.Premature {
			sink.Emit(lib.SystemEvent(e.SessionID, "%v", &lib.PrematureExitError{Code: e.ExitCode}))
		}
		sink.Emit(e)
	})
}

func (p *process) wait() {
	err := p.cmd.Wait()

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code := exitErr.ExitCode()
			p.exitCode = &code
		} else {
			p.waitErr = err
		}
		logger.Printf("Session %s finished with err: %v", p.sessionID, err)
	} else {
		code := 0
		p.exitCode = &code
		logger.Printf("Session %s finished without error", p.sessionID)
	}
	close(p.waitDone)
}

func (p *process) waitExitCode() *int {
	<-p.waitDone
	return p.lockAndGetExitCode()
}

// buildEnv layers the parent environment, the port assignment, default
// variables and caller overrides. exec keeps the last value of a duplicate key.
func buildEnv(pair lib.PortPair, defaults, overrides map[string]string) []string {
	env := os.Environ()
	env = append(env,
		envClientPort+"="+strconv.Itoa(int(pair.ClientPort)),
		envServerPort+"="+strconv.Itoa(int(pair.ServerPort)),
		envAutoOpen+"="+autoOpenOff,
	)
	env = appendSorted(env, defaults)
	env = appendSorted(env, overrides)
	return env
}

func appendSorted(env []string, vars map[string]string) []string {
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		env = append(env, k+"="+vars[k])
	}
	return env
}

func closeAll(files ...*os.File) {
	for _, f := range files {
		_ = f.Close()
	}
}
