package monitor

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/axial/console"
	"github.com/jetsetilly/axial/resources"
	"gopkg.in/yaml.v3"
)

type tweenPreset struct {
	Acceleration float64 `yaml:"acceleration"`
	Gravity      float64 `yaml:"gravity"`
}

var presetAxes = []console.Axis{console.Horz, console.Vert}

// parsePreset reads a YAML document mapping axis names to tween values:
//
//	horz:
//	  acceleration: 6
//	  gravity: 4
//
// missing values are returned as zero
func parsePreset(data []byte) (map[console.Axis]console.Tween, error) {
	var p map[string]tweenPreset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("preset: %w", err)
	}

	tweens := make(map[console.Axis]console.Tween)
	for name, tw := range p {
		var found bool
		for _, a := range presetAxes {
			if strings.EqualFold(name, a.String()) {
				tweens[a] = console.Tween{
					Acceleration: tw.Acceleration,
					Gravity:      tw.Gravity,
				}
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("preset: unknown axis %q", name)
		}
	}

	return tweens, nil
}

// loadPreset reads the named file from the resources directory. a missing
// file is not an error
func loadPreset(filename string) (map[console.Axis]console.Tween, error) {
	s, err := resources.Read(filename)
	if err != nil {
		return nil, fmt.Errorf("preset: %w", err)
	}
	if s == "" {
		return nil, nil
	}
	return parsePreset([]byte(s))
}

// applyOverrides sets the acceleration and gravity of every axis if the value
// is greater than zero
func applyOverrides(tweens map[console.Axis]console.Tween, acceleration float64, gravity float64) map[console.Axis]console.Tween {
	if acceleration <= 0 && gravity <= 0 {
		return tweens
	}
	if tweens == nil {
		tweens = make(map[console.Axis]console.Tween)
	}
	for _, a := range presetAxes {
		tw := tweens[a]
		if acceleration > 0 {
			tw.Acceleration = acceleration
		}
		if gravity > 0 {
			tw.Gravity = gravity
		}
		tweens[a] = tw
	}
	return tweens
}
