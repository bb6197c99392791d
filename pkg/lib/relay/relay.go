// Package relay drains the inspector's output streams and turns them into events.
package relay

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/SanjoDeundiak/inspector-desktop/pkg/lib"
)

// Marker precedes the session token in the inspector's stdout.
const Marker = "Session token:"

var logger = log.New(io.Discard, "relay: ", log.LstdFlags)

// SetLogOutput redirects the package logger.
func SetLogOutput(w io.Writer) { logger.SetOutput(w) }

// Matcher extracts the session token from a stdout line.
type Matcher func(line string) (token string, ok bool)

// MatchSessionToken is the default Matcher. It is coupled to the inspector's
// human-readable log format and is the only place that knows it.
func MatchSessionToken(line string) (string, bool) {
	_, after, found := strings.Cut(line, Marker)
	if !found {
		return "", false
	}
	return strings.TrimSpace(after), true
}

// ComposeURL builds the access URL for a running inspector.
func ComposeURL(ports lib.PortPair, token string) string {
	return fmt.Sprintf("http://localhost:%d?MCP_PROXY_PORT=%d&MCP_PROXY_AUTH_TOKEN=%s",
		ports.ClientPort, ports.ServerPort, token)
}

// Config binds a relay to one session.
type Config struct {
	SessionID string
	Ports     lib.PortPair
	Sink      lib.Sink
	// Matcher defaults to MatchSessionToken.
	Matcher Matcher
	// Wait, when set, is called once both streams reached end-of-stream.
	// It blocks until the process is reaped and returns its exit code.
	Wait func() *int
}

// Relay owns the two drain goroutines of a session.
type Relay struct {
	cfg Config

	readyOnce sync.Once
	mu        sync.RWMutex
	url       string
	ready     bool

	done chan struct{}
}

// Start begins draining stdout and stderr in the background and returns
// immediately. Both readers are closed once drained.
func Start(cfg Config, stdout, stderr io.ReadCloser) *Relay {
	if cfg.Sink == nil {
		cfg.Sink = lib.DiscardSink
	}
	if cfg.Matcher == nil {
		cfg.Matcher = MatchSessionToken
	}

	r := &Relay{cfg: cfg, done: make(chan struct{})}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		r.drain(lib.StreamStdout, stdout)
	}()
	go func() {
		defer wg.Done()
		r.drain(lib.StreamStderr, stderr)
	}()

	go func() {
		wg.Wait()
		logger.Printf("Session %s: both streams drained", cfg.SessionID)

		var code *int
		if cfg.Wait != nil {
			code = cfg.Wait()
		}

		r.cfg.Sink.Emit(lib.Event{
			Kind:      lib.EventExited,
			SessionID: cfg.SessionID,
			ExitCode:  code,
			Premature: !r.Ready(),
			Time:      time.Now(),
		})
		close(r.done)
	}()

	return r
}

// Done is closed after the exited event has been emitted.
func (r *Relay) Done() <-chan struct{} { return r.done }

// URL returns the access URL, or "" until the session token was seen.
func (r *Relay) URL() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.url
}

// Ready reports whether the session token has been observed.
func (r *Relay) Ready() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ready
}

func (r *Relay) drain(kind lib.StreamKind, rc io.ReadCloser) {
	defer rc.Close()

	reader := bufio.NewReader(rc)
	for {
		line, err := reader.ReadBytes('\n')
		if len(line) > 0 {
			r.handleLine(kind, bytes.TrimRight(line, "\r\n"))
		}
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, os.ErrClosed) {
				logger.Printf("Session %s: %s read error: %v", r.cfg.SessionID, kind, err)
			}
			return
		}
	}
}

func (r *Relay) handleLine(kind lib.StreamKind, line []byte) {
	if !utf8.Valid(line) {
		return
	}
	text := string(line)

	r.cfg.Sink.Emit(lib.Event{
		Kind:      lib.EventLog,
		Stream:    kind,
		Text:      text,
		SessionID: r.cfg.SessionID,
		Time:      time.Now(),
	})

	if kind != lib.StreamStdout {
		return
	}
	token, ok := r.cfg.Matcher(text)
	if !ok {
		return
	}
	r.readyOnce.Do(func() {
		url := ComposeURL(r.cfg.Ports, token)

		r.mu.Lock()
		r.url = url
		r.ready = true
		r.mu.Unlock()

		r.cfg.Sink.Emit(lib.SystemEvent(r.cfg.SessionID, "Captured access URL: %s", url))
		r.cfg.Sink.Emit(lib.Event{
			Kind:      lib.EventReady,
			SessionID: r.cfg.SessionID,
			URL:       url,
			Time:      time.Now(),
		})
	})
}
