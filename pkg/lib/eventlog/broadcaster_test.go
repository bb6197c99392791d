package eventlog

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func receive[T any](ch <-chan T, d time.Duration) (v T, ok bool, timedOut bool) {
	select {
	case v, ok = <-ch:
		return v, ok, false
	case <-time.After(d):
		return v, false, true
	}
}

func waitChannelClosed[T any](t *testing.T, ch <-chan T) {
	t.Helper()
	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatalf("channel not closed")
		}
	}
}

func TestBroadcaster_WakesEverySubscriber(t *testing.T) {
	b := RunNewBroadcaster[struct{}]()
	defer b.Stop()

	var subs []chan struct{}
	for i := 0; i < 5; i++ {
		ch, err := b.Subscribe()
		if err != nil {
			t.Fatalf("Subscribe failed: %v", err)
		}
		subs = append(subs, ch)
	}

	b.Publish(struct{}{})

	for i, ch := range subs {
		if _, ok, timedOut := receive(ch, time.Second); timedOut || !ok {
			t.Fatalf("subscriber %d was not woken", i)
		}
	}
}

func TestBroadcaster_CoalescesBurstToLatest(t *testing.T) {
	b := RunNewBroadcaster[int]()
	defer b.Stop()

	ch, err := b.Subscribe()
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}

	// Nobody reads while the burst is published.
	for i := 1; i <= 100; i++ {
		b.Publish(i)
	}

	var got []int
	for {
		v, ok, timedOut := receive(ch, time.Second)
		if timedOut || !ok {
			t.Fatalf("latest value never arrived; got %v", got)
		}
		got = append(got, v)
		if v == 100 {
			break
		}
	}
	// A pending value, one in flight and the latest at most.
	if len(got) > 3 {
		t.Fatalf("burst was not coalesced: %v", got)
	}
	if _, _, timedOut := receive(ch, 50*time.Millisecond); !timedOut {
		t.Fatalf("unexpected wake-up after the latest value")
	}
}

func TestBroadcaster_UnsubscribeClosesChannel(t *testing.T) {
	b := RunNewBroadcaster[struct{}]()

	gone, err := b.Subscribe()
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	stay, err := b.Subscribe()
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}

	b.Unsubscribe(gone)
	b.Unsubscribe(gone)
	waitChannelClosed(t, gone)

	b.Publish(struct{}{})
	if _, ok, timedOut := receive(stay, time.Second); timedOut || !ok {
		t.Fatalf("remaining subscriber was not woken")
	}

	b.Stop()
	waitChannelClosed(t, stay)
	// Unsubscribing after Stop must not close the channel a second time.
	b.Unsubscribe(stay)
}

func TestBroadcaster_StopRacesPublish(t *testing.T) {
	b := RunNewBroadcaster[struct{}]()
	ch, err := b.Subscribe()
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				b.Publish(struct{}{})
			}
		}()
	}
	b.Stop()
	b.Stop()

	published := make(chan struct{})
	go func() {
		wg.Wait()
		close(published)
	}()
	select {
	case <-published:
	case <-time.After(2 * time.Second):
		t.Fatalf("Publish blocked after Stop")
	}
	waitChannelClosed(t, ch)

	// A late subscriber is either refused or closed straight away.
	late, err := b.Subscribe()
	switch {
	case errors.Is(err, ErrStopped):
	case err == nil:
		waitChannelClosed(t, late)
	default:
		t.Fatalf("unexpected Subscribe error: %v", err)
	}
}
