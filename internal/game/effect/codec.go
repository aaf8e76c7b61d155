package effect

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// wireEffect is the stable on-disk shape: type by name, duration and
// intensity verbatim.
type wireEffect struct {
	Type      string `yaml:"type"`
	Duration  int    `yaml:"duration"`
	Intensity int    `yaml:"intensity"`
}

// typeNames maps wire names back to Types. Names match Type.String().
var typeNames = func() map[string]Type {
	m := make(map[string]Type)
	for t := Burning; t <= Rooted; t++ {
		m[t.String()] = t
	}
	return m
}()

// Marshal serializes effects to YAML for the external save/load layer.
//
// Postcondition: Unmarshal(Marshal(effects)) reproduces type, duration, and
// intensity of every effect in order.
func Marshal(effects []Effect) ([]byte, error) {
	wire := make([]wireEffect, len(effects))
	for i, e := range effects {
		wire[i] = wireEffect{Type: e.Type.String(), Duration: e.Duration, Intensity: e.Intensity}
	}
	data, err := yaml.Marshal(wire)
	if err != nil {
		return nil, fmt.Errorf("marshalling effects: %w", err)
	}
	return data, nil
}

// Unmarshal parses effects previously written by Marshal. Values are passed
// through WithIntensity, so malformed durations/intensities are clamped
// rather than rejected; an unknown type name is an error.
//
// Postcondition: Returns effects in serialized order, or a non-nil error.
func Unmarshal(data []byte) ([]Effect, error) {
	var wire []wireEffect
	if err := yaml.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("unmarshalling effects: %w", err)
	}
	effects := make([]Effect, len(wire))
	for i, w := range wire {
		t, ok := typeNames[w.Type]
		if !ok {
			return nil, fmt.Errorf("unknown effect type %q", w.Type)
		}
		effects[i] = WithIntensity(t, w.Duration, w.Intensity)
	}
	return effects, nil
}
