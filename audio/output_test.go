package audio

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func stereo(frames int) [][]float32 {
	return [][]float32{make([]float32, frames), make([]float32, frames)}
}

func mustOutput(t *testing.T, e *Engine, props *Props, bufferSize int) *output {
	t.Helper()
	o, err := newOutput(e, props, bufferSize)
	if err != nil {
		t.Fatal(err)
	}
	return o
}

func TestOutputProcess(t *testing.T) {
	e := mustNew(t, smallConfig())
	// the callback buffer is larger than the internal one to exercise chunking
	o := mustOutput(t, e, NewProps(), 64)
	samples := stereo(150)
	o.process(samples)

	ref := make([]float64, 150)
	mustNew(t, smallConfig()).Render(ref)
	want := make([]float32, len(ref))
	for i, v := range ref {
		want[i] = float32(clamp(v, -1, 1))
	}
	for c := range samples {
		if diff := cmp.Diff(want, samples[c]); diff != "" {
			t.Errorf("channel %d (-want +got):\n%s", c, diff)
		}
	}
	if want, got := uint64(150), o.Status().Elapsed; want != got {
		t.Errorf("status not updated: want elapsed %d, got %d", want, got)
	}
}

func TestOutputMuteAndLevel(t *testing.T) {
	e := mustNew(t, smallConfig())
	props := NewProps()
	o := mustOutput(t, e, props, 128)

	if err := props.Set(PropMute, "on"); err != nil {
		t.Fatal(err)
	}
	samples := stereo(128)
	o.process(samples)
	for i, v := range samples[0] {
		if v != 0 {
			t.Fatalf("sample %d not muted: %v", i, v)
		}
	}
	if err := props.Set(PropMute, false); err != nil {
		t.Fatal(err)
	}

	if err := props.Set(PropLevel, -6.); err != nil {
		t.Fatal(err)
	}
	o.process(samples)

	ref := mustNew(t, smallConfig())
	skip := make([]float64, 128)
	ref.Render(skip)
	gain := math.Pow(10, -6/20.0)
	for i := range samples[0] {
		want := float32(clamp(ref.Tick()*gain, -1, 1))
		if got := samples[0][i]; want != got {
			t.Fatalf("sample %d: want %v, got %v", i, want, got)
		}
	}
}

func TestOutputLimits(t *testing.T) {
	e := mustNew(t, smallConfig())
	props := NewProps()
	o := mustOutput(t, e, props, 512)
	if err := props.Set(PropLevel, 10); err != nil {
		t.Fatal(err)
	}
	samples := stereo(4096)
	o.process(samples)
	for i, v := range samples[1] {
		if v > 1 || v < -1 {
			t.Fatalf("sample %d not limited: %v", i, v)
		}
	}
}

func TestOutputEvents(t *testing.T) {
	e := mustNew(t, smallConfig())
	o := mustOutput(t, e, NewProps(), 64)
	samples := stereo(64)

	o.process(samples)
	first := append([]float32(nil), samples[0]...)

	if err := o.Control(EventPause); err != nil {
		t.Fatal(err)
	}
	o.process(samples)
	for i, v := range samples[0] {
		if v != 0 {
			t.Fatalf("sample %d not silent while paused: %v", i, v)
		}
	}
	if want, got := uint64(64), e.Elapsed(); want != got {
		t.Errorf("engine ran while paused: elapsed %d", got)
	}

	for _, ev := range []Event{EventResume, EventReset} {
		if err := o.Control(ev); err != nil {
			t.Fatal(err)
		}
	}
	o.process(samples)
	if diff := cmp.Diff(first, samples[0]); diff != "" {
		t.Errorf("output after reset differs from the start (-want +got):\n%s", diff)
	}
}

func TestOutputBufferSize(t *testing.T) {
	e := mustNew(t, smallConfig())
	for _, size := range []int{0, -512} {
		if _, err := newOutput(e, NewProps(), size); err == nil {
			t.Errorf("expected error for buffer size %d", size)
		}
	}
}

func TestOutputControlWhileStopped(t *testing.T) {
	e := mustNew(t, smallConfig())
	o := mustOutput(t, e, NewProps(), 64)

	// no callback runs, so the queue fills up and further events are refused
	var sent int
	for ; sent < 100; sent++ {
		if err := o.Control(EventReset); err != nil {
			if !errors.Is(err, ErrQueueFull) {
				t.Fatalf("unexpected error: %v", err)
			}
			break
		}
	}
	if want, got := 16, sent; want != got {
		t.Fatalf("want %d queued events, got %d", want, got)
	}

	o.process(stereo(64))
	if err := o.Control(EventPause); err != nil {
		t.Errorf("queue still full after the callback ran: %v", err)
	}
}

func TestRunState(t *testing.T) {
	var r runState
	var starts, stops int
	start := func() error { starts++; return nil }
	stop := func() error { stops++; return nil }

	if err := r.stop(stop); err != nil || stops != 0 {
		t.Fatalf("stop before start: err %v, stops %d", err, stops)
	}
	for i := 0; i < 2; i++ {
		if err := r.start(start); err != nil {
			t.Fatal(err)
		}
	}
	if starts != 1 {
		t.Errorf("stream started %d times", starts)
	}
	for i := 0; i < 2; i++ {
		if err := r.stop(stop); err != nil {
			t.Fatal(err)
		}
	}
	if stops != 1 {
		t.Errorf("stream stopped %d times", stops)
	}

	failed := errors.New("device busy")
	if err := r.start(func() error { return failed }); err != failed {
		t.Fatalf("want %v, got %v", failed, err)
	}
	if err := r.start(start); err != nil || starts != 2 {
		t.Errorf("start after a failed start: err %v, starts %d", err, starts)
	}
}
