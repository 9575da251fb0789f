package audio

import (
	"context"
	"runtime"
	"testing"
)

func TestEventBufferOrder(t *testing.T) {
	buf := newEventBuffer(8)
	buf.push(EventPause)
	buf.push(EventReset)
	buf.push(EventResume)

	var events []Event
	buf.drain(func(ev Event) {
		events = append(events, ev)
	})
	want := []Event{EventPause, EventReset, EventResume}
	if len(events) != len(want) {
		t.Fatalf("want %v, got %v", want, events)
	}
	for i := range want {
		if want[i] != events[i] {
			t.Errorf("event %d: want %v, got %v", i, want[i], events[i])
		}
	}

	buf.drain(func(ev Event) {
		t.Errorf("unexpected event after drain: %v", ev)
	})
}

func TestEventBuffer(t *testing.T) {
	buf := newEventBuffer(8)

	done := make(chan struct{})
	ctx, cancel := context.WithCancel(context.Background())

	var events []Event
	go func() {
		for {
			select {
			case <-ctx.Done():
				buf.drain(func(ev Event) {
					events = append(events, ev)
				})
				done <- struct{}{}
				return
			default:
				buf.drain(func(ev Event) {
					events = append(events, ev)
				})
			}
		}
	}()

	const numEvents = 1_000_000
	for n := 0; n < numEvents; n++ {
		for !buf.push(Event(n)) {
			runtime.Gosched()
		}
	}

	cancel()
	<-done

	if len(events) != numEvents {
		t.Errorf("wrong number of events: want %v, got %v", numEvents, len(events))
	}

	prev := -1
	for _, ev := range events {
		if want, got := prev+1, int(ev); want != got {
			t.Errorf("discontinuous events: want: %v, got %v", want, got)
		}
		prev++
	}
}

func TestEventBufferFull(t *testing.T) {
	buf := newEventBuffer(4)
	for n := 0; n < 4; n++ {
		if !buf.push(EventReset) {
			t.Fatalf("push %d rejected", n)
		}
	}
	if buf.push(EventPause) {
		t.Fatal("push into a full buffer succeeded")
	}
	var n int
	buf.drain(func(Event) { n++ })
	if n != 4 {
		t.Errorf("want 4 events, got %d", n)
	}
	if !buf.push(EventPause) {
		t.Error("push rejected after drain")
	}
}

func TestEventBufferSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for a size that is not a power of 2")
		}
	}()
	newEventBuffer(6)
}
