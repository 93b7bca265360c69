package multiplayer

import "testing"

type testEvent struct {
	n int
}

func (testEvent) sessionEvent() {}

func TestChannelSessionDelivery(t *testing.T) {
	s := NewChannelSession("s1", 4)
	defer s.Close()

	s.Send(testEvent{n: 7})

	select {
	case evt := <-s.Events():
		te, ok := evt.(testEvent)
		if !ok {
			t.Fatalf("Expected testEvent, got %T", evt)
		}
		if te.n != 7 {
			t.Errorf("Event payload = %d, want 7", te.n)
		}
	default:
		t.Fatal("Expected a buffered event, channel was empty")
	}
}

func TestChannelSessionDropsOldestWhenFull(t *testing.T) {
	s := NewChannelSession("s1", 2)
	defer s.Close()

	s.Send(testEvent{n: 1})
	s.Send(testEvent{n: 2})
	// Buffer is full; this send must evict event 1
	s.Send(testEvent{n: 3})

	first := (<-s.Events()).(testEvent)
	second := (<-s.Events()).(testEvent)

	if first.n != 2 || second.n != 3 {
		t.Errorf("Got events %d, %d after overflow, want 2, 3", first.n, second.n)
	}
}

func TestChannelSessionSendAfterClose(t *testing.T) {
	s := NewChannelSession("s1", 4)
	s.Close()
	s.Send(testEvent{n: 1})

	select {
	case evt := <-s.Events():
		t.Errorf("Expected no events after close, got %v", evt)
	default:
	}
}

func TestChannelSessionCloseIdempotent(t *testing.T) {
	s := NewChannelSession("s1", 4)
	s.Close()
	s.Close() // Must not panic

	select {
	case <-s.Done():
	default:
		t.Error("Done channel should be closed")
	}
}

func TestChannelSessionDefaultBufferSize(t *testing.T) {
	s := NewChannelSession("s1", 0)
	defer s.Close()

	if cap(s.events) != 64 {
		t.Errorf("Default buffer size = %d, want 64", cap(s.events))
	}
}

func TestSessionRegistry(t *testing.T) {
	r := NewSessionRegistry()

	s1 := NewChannelSession("alpha", 4)
	s2 := NewChannelSession("beta", 4)
	defer s1.Close()
	defer s2.Close()

	r.Register(s1)
	r.Register(s2)

	if r.Count() != 2 {
		t.Errorf("Count() = %d, want 2", r.Count())
	}

	got, ok := r.Get("alpha")
	if !ok {
		t.Fatal("Get(alpha) not found")
	}
	if got.ID() != "alpha" {
		t.Errorf("Get(alpha).ID() = %q", got.ID())
	}

	r.Unregister("alpha")
	if _, ok := r.Get("alpha"); ok {
		t.Error("Session still present after Unregister")
	}
	if r.Count() != 1 {
		t.Errorf("Count() after unregister = %d, want 1", r.Count())
	}
}
