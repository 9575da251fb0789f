package audio

import (
	"fmt"
	"sort"
	"strings"
	"sync/atomic"
)

// Props stores host settings that can be updated from the control thread and
// read from the audio thread without locks. All properties should be
// registered before any reads take place.
type Props struct {
	properties map[string]*atomic.Value
	setters    map[string]setter
}

func NewProps() *Props {
	return &Props{
		properties: make(map[string]*atomic.Value),
		setters:    make(map[string]setter),
	}
}

// Set updates the property with value. The key has to be registered first using Register.
func (p *Props) Set(key string, value interface{}) error {
	prop, ok := p.properties[key]
	if !ok {
		return fmt.Errorf("unknown property %s", key)
	}
	if err := p.setters[key](value, prop); err != nil {
		return fmt.Errorf("set property %s: %w", key, err)
	}
	return nil
}

func (p *Props) Get(key string) (interface{}, error) {
	prop, ok := p.properties[key]
	if !ok {
		return nil, fmt.Errorf("unknown property %s", key)
	}
	return prop.Load(), nil
}

// Keys returns the registered property names in sorted order.
func (p *Props) Keys() []string {
	keys := make([]string, 0, len(p.properties))
	for k := range p.properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Register adds a new property.
func (p *Props) Register(key string, set setter, init interface{}) (*atomic.Value, error) {
	if _, ok := p.properties[key]; ok {
		return nil, fmt.Errorf("property %s already registered", key)
	}
	var prop atomic.Value
	if err := set(init, &prop); err != nil {
		return nil, err
	}
	p.properties[key] = &prop
	p.setters[key] = set
	return &prop, nil
}

func (p *Props) MustRegister(key string, set setter, init interface{}) *atomic.Value {
	prop, err := p.Register(key, set, init)
	if err != nil {
		panic(err)
	}
	return prop
}

type setter func(val interface{}, dest *atomic.Value) error

var setLevel = setFloat64(-40, 10)

func setFloat64(min, max float64) setter {
	return func(v interface{}, dest *atomic.Value) error {
		var f float64
		switch n := v.(type) {
		case float64:
			f = n
		case int:
			f = float64(n)
		default:
			return fmt.Errorf("value is not a number: %v", v)
		}
		if f < min || f > max {
			return fmt.Errorf("property value is not in valid range %v - %v: %v", min, max, f)
		}
		dest.Store(f)
		return nil
	}
}

func setBool(v interface{}, dest *atomic.Value) error {
	switch b := v.(type) {
	case bool:
		dest.Store(b)
	case int:
		dest.Store(b != 0)
	case float64:
		dest.Store(b != 0)
	case string:
		switch strings.ToLower(b) {
		case "on", "true", "yes":
			dest.Store(true)
		case "off", "false", "no":
			dest.Store(false)
		default:
			return fmt.Errorf("value is not a boolean: %v", v)
		}
	default:
		return fmt.Errorf("value is not a boolean: %v", v)
	}
	return nil
}
