// Package ports picks unused local TCP ports for the inspector.
//
// Ports are probed by binding them and are released immediately afterwards,
// so another process may still grab a port before the inspector binds it.
package ports

import (
	"io"
	"log"
	"math/rand/v2"
	"net"
	"strconv"

	"github.com/SanjoDeundiak/inspector-desktop/pkg/lib"
)

const (
	// DefaultMaxAttempts bounds the sampling loop of range-constrained allocation.
	DefaultMaxAttempts = 512

	randomLow   = 15000
	randomHigh  = 25000
	randomTries = 10
)

var logger = log.New(io.Discard, "ports: ", log.LstdFlags)

// SetLogOutput redirects the package logger.
func SetLogOutput(w io.Writer) { logger.SetOutput(w) }

// Source yields candidate unused ports. It returns an error once it has no
// more candidates to offer.
type Source func() (uint16, error)

// Range is an inclusive port range. The zero Range means unconstrained.
type Range struct {
	Min uint16
	Max uint16
}

func (r Range) IsZero() bool { return r.Min == 0 && r.Max == 0 }

func (r Range) Contains(p uint16) bool { return p >= r.Min && p <= r.Max }

// Ranges constrains the client and server ports independently.
type Ranges struct {
	Client Range
	Server Range
}

// Allocator hands out unused ports on Host.
type Allocator struct {
	// Host is the address probed when checking a port; defaults to 127.0.0.1.
	Host string
	// Source overrides candidate generation. When nil, candidates are
	// sampled randomly and verified by binding them.
	Source Source
	// MaxAttempts caps AllocateInRange sampling; defaults to DefaultMaxAttempts.
	MaxAttempts int
}

// NewAllocator returns an allocator probing the loopback interface.
func NewAllocator() *Allocator {
	return &Allocator{Host: "127.0.0.1", MaxAttempts: DefaultMaxAttempts}
}

func (a *Allocator) host() string {
	if a.Host == "" {
		return "127.0.0.1"
	}
	return a.Host
}

func (a *Allocator) maxAttempts() int {
	if a.MaxAttempts <= 0 {
		return DefaultMaxAttempts
	}
	return a.MaxAttempts
}

// Allocate picks two distinct unused ports.
func (a *Allocator) Allocate() (lib.PortPair, error) {
	if a.Source != nil {
		client, err := a.Source()
		if err != nil {
			return lib.PortPair{}, &lib.NoAvailablePortError{Min: 1, Max: 65535}
		}
		for i := 0; i < a.maxAttempts(); i++ {
			server, err := a.Source()
			if err != nil {
				break
			}
			if server != client {
				return lib.PortPair{ClientPort: client, ServerPort: server}, nil
			}
		}
		return lib.PortPair{}, &lib.NoAvailablePortError{Min: 1, Max: 65535}
	}

	// Hold the first port while probing the second so the pair never collides.
	first, client, err := a.listenUnused()
	if err != nil {
		return lib.PortPair{}, &lib.NoAvailablePortError{Min: 1, Max: 65535}
	}
	defer first.Close()

	server, err := a.pickUnused(client)
	if err != nil {
		return lib.PortPair{}, &lib.NoAvailablePortError{Min: 1, Max: 65535}
	}

	logger.Printf("Allocated client=%d server=%d", client, server)
	return lib.PortPair{ClientPort: client, ServerPort: server}, nil
}

// AllocateInRange samples candidate ports, discarding those outside
// [min, max], until one matches. It fails with *lib.NoAvailablePortError when
// the source is exhausted or the attempt cap is reached.
func (a *Allocator) AllocateInRange(min, max uint16) (uint16, error) {
	return a.allocateInRange(Range{Min: min, Max: max}, 0)
}

func (a *Allocator) allocateInRange(r Range, exclude uint16) (uint16, error) {
	if r.Min == 0 || r.Min > r.Max {
		return 0, &lib.NoAvailablePortError{Min: r.Min, Max: r.Max}
	}

	source := a.Source
	if source == nil {
		source = a.rangeSource(r)
	}

	for i := 0; i < a.maxAttempts(); i++ {
		p, err := source()
		if err != nil {
			break
		}
		if !r.Contains(p) || p == exclude {
			continue
		}
		return p, nil
	}

	logger.Printf("No port found in %d-%d after %d attempts", r.Min, r.Max, a.maxAttempts())
	return 0, &lib.NoAvailablePortError{Min: r.Min, Max: r.Max}
}

// AllocatePair allocates a pair honouring any non-zero range in r.
func (a *Allocator) AllocatePair(r Ranges) (lib.PortPair, error) {
	if r.Client.IsZero() && r.Server.IsZero() {
		return a.Allocate()
	}

	var pair lib.PortPair
	var err error

	if r.Client.IsZero() {
		pair.ClientPort, err = a.pickUnused(0)
		if err != nil {
			return lib.PortPair{}, &lib.NoAvailablePortError{Min: 1, Max: 65535}
		}
	} else if pair.ClientPort, err = a.allocateInRange(r.Client, 0); err != nil {
		return lib.PortPair{}, err
	}

	if r.Server.IsZero() {
		pair.ServerPort, err = a.pickUnused(pair.ClientPort)
		if err != nil {
			return lib.PortPair{}, &lib.NoAvailablePortError{Min: 1, Max: 65535}
		}
	} else if pair.ServerPort, err = a.allocateInRange(r.Server, pair.ClientPort); err != nil {
		return lib.PortPair{}, err
	}

	logger.Printf("Allocated client=%d server=%d (constrained)", pair.ClientPort, pair.ServerPort)
	return pair, nil
}

// rangeSource samples random ports inside r and yields only the bindable ones.
func (a *Allocator) rangeSource(r Range) Source {
	return func() (uint16, error) {
		span := int(r.Max) - int(r.Min) + 1
		p := uint16(int(r.Min) + rand.IntN(span))
		if !a.IsFree(p) {
			// Port 0 is never in range; the caller samples again.
			return 0, nil
		}
		return p, nil
	}
}

// pickUnused tries a few random ports in the 15000-25000 band and falls back
// to letting the OS assign one.
func (a *Allocator) pickUnused(exclude uint16) (uint16, error) {
	for i := 0; i < randomTries; i++ {
		p := uint16(randomLow + rand.IntN(randomHigh-randomLow))
		if p != exclude && a.IsFree(p) {
			return p, nil
		}
	}
	for i := 0; i < randomTries; i++ {
		l, p, err := a.listenUnused()
		if err != nil {
			return 0, err
		}
		_ = l.Close()
		if p != exclude {
			return p, nil
		}
	}
	return 0, &lib.NoAvailablePortError{Min: 1, Max: 65535}
}

// listenUnused binds an OS-assigned port and keeps it open.
func (a *Allocator) listenUnused() (net.Listener, uint16, error) {
	l, err := net.Listen("tcp", net.JoinHostPort(a.host(), "0"))
	if err != nil {
		return nil, 0, err
	}
	return l, uint16(l.Addr().(*net.TCPAddr).Port), nil
}

// IsFree reports whether port can currently be bound on the allocator host.
func (a *Allocator) IsFree(port uint16) bool {
	if port == 0 {
		return false
	}
	l, err := net.Listen("tcp", net.JoinHostPort(a.host(), strconv.Itoa(int(port))))
	if err != nil {
		return false
	}
	_ = l.Close()
	return true
}
