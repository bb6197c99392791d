package eventlog

import (
	"errors"
	"sync"
)

// ErrStopped is returned when subscribing to a stopped broadcaster.
var ErrStopped = errors.New("broadcaster is stopped")

// Broadcaster fans values out to subscribers. Every subscriber channel has a
// buffer of one and keeps only the most recent value, so a slow subscriber
// never blocks publishers. It suits wake-up notifications, not data.
type Broadcaster[T any] struct {
	messageReceiver chan T
	stopOnce        sync.Once
	done            chan struct{}

	mu          sync.Mutex
	subscribers map[chan T]struct{}
	stopped     bool
}

// RunNewBroadcaster creates a broadcaster and starts its delivery goroutine.
func RunNewBroadcaster[T any]() *Broadcaster[T] {
	b := &Broadcaster[T]{
		messageReceiver: make(chan T, 1),
		done:            make(chan struct{}),
		subscribers:     make(map[chan T]struct{}),
	}

	go b.run()

	return b
}

func (b *Broadcaster[T]) run() {
	for {
		select {
		case msg := <-b.messageReceiver:
			// offerLatest never blocks, so delivering under the lock is fine and
			// keeps Unsubscribe from closing a channel mid-send.
			b.mu.Lock()
			for s := range b.subscribers {
				offerLatest(s, msg)
			}
			b.mu.Unlock()
		case <-b.done:
			b.mu.Lock()
			for s := range b.subscribers {
				close(s)
			}
			b.subscribers = nil
			b.stopped = true
			b.mu.Unlock()
			logger.Println("Broadcaster stopped")
			return
		}
	}
}

// offerLatest sends msg without blocking, replacing a pending value if the
// buffer is full.
func offerLatest[T any](ch chan T, msg T) {
	for {
		select {
		case ch <- msg:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

// Stop closes every subscriber channel. It is safe to call more than once.
func (b *Broadcaster[T]) Stop() {
	b.stopOnce.Do(func() { close(b.done) })
}

// Subscribe registers a new subscriber channel.
func (b *Broadcaster[T]) Subscribe() (chan T, error) {
	ch := make(chan T, 1)
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.stopped {
		return nil, ErrStopped
	}
	b.subscribers[ch] = struct{}{}
	return ch, nil
}

// Unsubscribe removes ch and closes it unless the broadcaster already did.
func (b *Broadcaster[T]) Unsubscribe(ch chan T) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.stopped {
		return
	}
	if _, ok := b.subscribers[ch]; ok {
		delete(b.subscribers, ch)
		close(ch)
	}
}

// Publish hands msg to the delivery goroutine without blocking. Publishing
// after Stop is a no-op.
func (b *Broadcaster[T]) Publish(msg T) {
	select {
	case <-b.done:
		return
	default:
	}
	for {
		select {
		case b.messageReceiver <- msg:
			return
		case <-b.done:
			return
		default:
		}
		select {
		case <-b.messageReceiver:
		default:
		}
	}
}
