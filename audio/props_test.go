package audio

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestProps(t *testing.T) {
	props := NewProps()
	props.MustRegister(PropLevel, setLevel, 0.)
	props.MustRegister(PropMute, setBool, false)

	if diff := cmp.Diff([]string{PropLevel, PropMute}, props.Keys()); diff != "" {
		t.Errorf("wrong keys (-want +got):\n%s", diff)
	}

	type test struct {
		key   string
		value interface{}
		want  interface{}
		err   bool
	}
	tests := []test{
		{key: PropLevel, value: -6., want: -6.},
		{key: PropLevel, value: 3, want: 3.},
		{key: PropLevel, value: 11., err: true},
		{key: PropLevel, value: "loud", err: true},
		{key: PropMute, value: true, want: true},
		{key: PropMute, value: "off", want: false},
		{key: PropMute, value: 1, want: true},
		{key: PropMute, value: 0., want: false},
		{key: PropMute, value: "maybe", err: true},
		{key: "cutoff", value: 1., err: true},
	}
	for _, test := range tests {
		err := props.Set(test.key, test.value)
		if test.err {
			if err == nil {
				t.Errorf("set %s=%v: expected error", test.key, test.value)
			}
			continue
		}
		if err != nil {
			t.Errorf("set %s=%v: %v", test.key, test.value, err)
			continue
		}
		got, err := props.Get(test.key)
		if err != nil {
			t.Fatal(err)
		}
		if got != test.want {
			t.Errorf("get %s: want %v, got %v", test.key, test.want, got)
		}
	}
	if _, err := props.Get("cutoff"); err == nil {
		t.Error("expected error for unknown property")
	}
}

func TestPropsRegisterTwice(t *testing.T) {
	props := NewProps()
	props.MustRegister(PropLevel, setLevel, 0.)
	if _, err := props.Register(PropLevel, setLevel, 0.); err == nil {
		t.Error("expected error registering a property twice")
	}
	if _, err := props.Register("gain", setLevel, 100.); err == nil {
		t.Error("expected error for an out of range initial value")
	}
}
