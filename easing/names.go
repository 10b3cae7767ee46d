package easing

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

var curveNames = [numCurves]string{
	Linear:           "Linear",
	QuadraticIn:      "QuadraticIn",
	QuadraticOut:     "QuadraticOut",
	QuadraticInOut:   "QuadraticInOut",
	CubicIn:          "CubicIn",
	CubicOut:         "CubicOut",
	CubicInOut:       "CubicInOut",
	QuarticIn:        "QuarticIn",
	QuarticOut:       "QuarticOut",
	QuarticInOut:     "QuarticInOut",
	QuinticIn:        "QuinticIn",
	QuinticOut:       "QuinticOut",
	QuinticInOut:     "QuinticInOut",
	SineIn:           "SineIn",
	SineOut:          "SineOut",
	SineInOut:        "SineInOut",
	CircularIn:       "CircularIn",
	CircularOut:      "CircularOut",
	CircularInOut:    "CircularInOut",
	ExponentialIn:    "ExponentialIn",
	ExponentialOut:   "ExponentialOut",
	ExponentialInOut: "ExponentialInOut",
	ElasticIn:        "ElasticIn",
	ElasticOut:       "ElasticOut",
	ElasticInOut:     "ElasticInOut",
	BackIn:           "BackIn",
	BackOut:          "BackOut",
	BackInOut:        "BackInOut",
	BounceIn:         "BounceIn",
	BounceOut:        "BounceOut",
	BounceInOut:      "BounceInOut",
}

const averageSuffix = "Average"

// byKey maps folded names to base curves.
var byKey = func() map[string]Curve {
	m := make(map[string]Curve, numCurves+1)
	for i, name := range curveNames {
		m[nameKey(name)] = Curve(i)
	}
	m["linearinterpolation"] = Linear
	return m
}()

// nameKey folds case and drops separators and the word "ease", so that
// "QuadraticEaseIn", "quadratic-in" and "QUADRATIC_IN" share a key.
func nameKey(s string) string {
	s = cases.Fold().String(s)
	s = strings.NewReplacer("-", "", "_", "", " ", "", "ease", "").Replace(s)
	return s
}

func (c Curve) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Curve(%d)", uint8(c))
	}
	name := curveNames[c.Base()]
	if c.IsAverage() {
		name += averageSuffix
	}
	return name
}

// Parse looks up a curve by name. A trailing "Average" selects the average
// variant.
func Parse(name string) (Curve, error) {
	key := nameKey(name)
	avg := false
	for _, suffix := range []string{"average", "avg"} {
		if trimmed, ok := strings.CutSuffix(key, suffix); ok && trimmed != "" {
			key = trimmed
			avg = true
			break
		}
	}
	c, ok := byKey[key]
	if !ok {
		return 0, fmt.Errorf("unknown easing curve %q", name)
	}
	if avg {
		c = c.Average()
	}
	return c, nil
}

// MarshalText implements encoding.TextMarshaler.
func (c Curve) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid easing curve %d", uint8(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Curve) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
