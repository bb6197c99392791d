// Package eventlog keeps a bounded, replayable history of supervisor events
// and streams it to any number of subscribers.
package eventlog

import (
	"io"
	"log"
	"sync"
	"sync/atomic"

	"github.com/SanjoDeundiak/inspector-desktop/pkg/lib"
)

// DefaultRetention is the number of events kept for replay.
const DefaultRetention = 2000

var logger = log.New(io.Discard, "eventlog: ", log.LstdFlags)

// SetLogOutput redirects the package logger.
func SetLogOutput(w io.Writer) { logger.SetOutput(w) }

// node is an element of the singly linked list. next is published
// atomically so readers walk the list without taking the write lock.
type node struct {
	event lib.Event
	next  atomic.Pointer[node]
}

// EventLog is an append-only list of events. Appends are serialised;
// iteration and subscriptions are lock-free. Once more than retention events
// were appended, the oldest fall off the front; subscribers already past them
// are unaffected.
type EventLog struct {
	mu        sync.Mutex
	head      atomic.Pointer[node] // sentinel preceding the oldest retained event
	tail      *node
	size      int
	retention int

	broadcaster *Broadcaster[struct{}]
}

// New creates an empty log retaining up to retention events
// (DefaultRetention when retention <= 0).
func New(retention int) *EventLog {
	if retention <= 0 {
		retention = DefaultRetention
	}
	sentinel := &node{}
	l := &EventLog{
		tail:        sentinel,
		retention:   retention,
		broadcaster: RunNewBroadcaster[struct{}](),
	}
	l.head.Store(sentinel)
	return l
}

// Emit appends e and wakes subscribers. It implements lib.Sink.
func (l *EventLog) Emit(e lib.Event) {
	if l == nil {
		return
	}

	n := &node{event: e}

	l.mu.Lock()
	l.tail.next.Store(n)
	l.tail = n
	l.size++
	if l.size > l.retention {
		// The first real node becomes the new sentinel.
		l.head.Store(l.head.Load().next.Load())
		l.size--
	}
	l.mu.Unlock()

	l.broadcaster.Publish(struct{}{})
}

// Close ends every subscription once it has delivered what was appended.
func (l *EventLog) Close() {
	if l == nil {
		return
	}
	l.broadcaster.Stop()
}

// Len returns the number of retained events.
func (l *EventLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.size
}

// ForEach iterates over retained events oldest first; returning false stops early.
func (l *EventLog) ForEach(iter func(lib.Event) bool) {
	if l == nil || iter == nil {
		return
	}
	cur := l.head.Load().next.Load()
	for cur != nil {
		if !iter(cur.event) {
			return
		}
		cur = cur.next.Load()
	}
}

// Events returns a snapshot of the retained events.
func (l *EventLog) Events() []lib.Event {
	var out []lib.Event
	l.ForEach(func(e lib.Event) bool {
		out = append(out, e)
		return true
	})
	return out
}

// Subscribe replays the retained events and then follows new ones. The
// channel closes after Close, or when done is closed; pass nil to follow
// until Close.
func (l *EventLog) Subscribe(capacity int, done <-chan struct{}) <-chan lib.Event {
	ch := make(chan lib.Event, capacity)
	start := l.head.Load()
	notifier, err := l.broadcaster.Subscribe()
	if err != nil {
		go func() {
			defer close(ch)
			l.replay(start, ch, done)
		}()
	} else {
		go l.follow(start, notifier, ch, done)
	}
	return ch
}

func (l *EventLog) follow(prev *node, notifier chan struct{}, ch chan lib.Event, done <-chan struct{}) {
	defer close(ch)
	defer l.broadcaster.Unsubscribe(notifier)

	for {
		current := prev.next.Load()
		if current == nil {
			select {
			case _, ok := <-notifier:
				if !ok {
					// Drain whatever was appended before the log closed.
					l.replay(prev, ch, done)
					return
				}
			case <-done:
				return
			}
			continue
		}
		prev = current

		select {
		case ch <- current.event:
		case <-done:
			return
		}
	}
}

func (l *EventLog) replay(prev *node, ch chan lib.Event, done <-chan struct{}) {
	for {
		current := prev.next.Load()
		if current == nil {
			return
		}
		prev = current
		select {
		case ch <- current.event:
		case <-done:
			return
		}
	}
}
