package audio

import "sync/atomic"

// Event is a transport command sent from the control thread to the audio
// callback.
type Event int

const (
	EventReset Event = iota + 1
	EventPause
	EventResume
)

func (e Event) String() string {
	switch e {
	case EventReset:
		return "reset"
	case EventPause:
		return "pause"
	case EventResume:
		return "resume"
	}
	return "unknown"
}

// eventBuffer is a lock-free spsc queue.
type eventBuffer struct {
	events      []Event
	read, write *uint32
}

func newEventBuffer(size int) *eventBuffer {
	if size <= 0 || size&(size-1) != 0 {
		panic("event buffer size must be a power of 2")
	}
	return &eventBuffer{
		events: make([]Event, size),
		read:   new(uint32),
		write:  new(uint32),
	}
}

// push reports false if the buffer is full. Nothing drains the buffer while
// the stream is stopped, so callers must not wait for room.
func (b *eventBuffer) push(ev Event) bool {
	write := atomic.LoadUint32(b.write)
	if write-atomic.LoadUint32(b.read) == uint32(len(b.events)) {
		return false
	}
	b.events[write%uint32(len(b.events))] = ev
	atomic.StoreUint32(b.write, write+1)
	return true
}

// drain calls f for every queued event, oldest first.
func (b *eventBuffer) drain(f func(Event)) {
	read := atomic.LoadUint32(b.read)
	write := atomic.LoadUint32(b.write)
	for read != write {
		f(b.events[read%uint32(len(b.events))])
		read++
	}
	atomic.StoreUint32(b.read, read)
}
