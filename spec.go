// Package shade samples colour gradients through easing curves and paints
// them into images.
package shade

import (
	"image/color"
	"math"
)

// Stop is a colour anchored at a location on the gradient axis.
type Stop struct {
	Color    RGBA
	Location float64
}

// Spec is a validated, immutable list of colour stops. Locations are
// non-decreasing and lie in [0, 1].
//
// A Spec may be shared between goroutines.
type Spec struct {
	stops []Stop
}

// NewSpec validates colours and locations and returns the resulting Spec.
//
// If locations is nil the stops are spread uniformly over [0, 1]. Otherwise
// there must be one location per colour.
func NewSpec(colors []color.Color, locations []float64) (*Spec, error) {
	if len(colors) < 2 {
		return nil, newConfigError("colors", "need at least 2 colours, got %d", len(colors))
	}
	if locations != nil && len(locations) != len(colors) {
		return nil, newConfigError("locations", "have %d locations for %d colours",
			len(locations), len(colors))
	}

	stops := make([]Stop, len(colors))
	for i, c := range colors {
		if c == nil {
			return nil, newConfigError("colors", "colour %d is missing", i)
		}
		stops[i].Color = FromColor(c)
		if !stops[i].Color.valid() {
			return nil, newConfigError("colors", "colour %d out of range: %s", i, stops[i].Color)
		}
		if locations == nil {
			stops[i].Location = float64(i) / float64(len(colors)-1)
		} else {
			stops[i].Location = locations[i]
		}
	}
	return newSpec(stops)
}

// NewSpecFromStops validates a list of stops and returns the resulting Spec.
func NewSpecFromStops(stops []Stop) (*Spec, error) {
	if len(stops) < 2 {
		return nil, newConfigError("colors", "need at least 2 colours, got %d", len(stops))
	}
	for i, s := range stops {
		if !s.Color.valid() {
			return nil, newConfigError("colors", "colour %d out of range: %s", i, s.Color)
		}
	}
	return newSpec(append([]Stop(nil), stops...))
}

// newSpec checks the locations and takes ownership of stops.
func newSpec(stops []Stop) (*Spec, error) {
	for i, s := range stops {
		loc := s.Location
		if math.IsNaN(loc) || loc < 0 || loc > 1 {
			return nil, newConfigError("locations", "location %d = %g outside [0, 1]", i, loc)
		}
		if i > 0 && loc < stops[i-1].Location {
			return nil, newConfigError("locations",
				"must be non-decreasing: location %d = %g < location %d = %g",
				i, loc, i-1, stops[i-1].Location)
		}
	}
	return &Spec{stops: stops}, nil
}

// Len returns the number of stops.
func (s *Spec) Len() int { return len(s.stops) }

// Stop returns stop i.
func (s *Spec) Stop(i int) Stop { return s.stops[i] }

// Stops returns a copy of the stops.
func (s *Spec) Stops() []Stop { return append([]Stop(nil), s.stops...) }

// Start is the colour of the first stop.
func (s *Spec) Start() RGBA { return s.stops[0].Color }

// End is the colour of the last stop.
func (s *Spec) End() RGBA { return s.stops[len(s.stops)-1].Color }

// Colors returns the stop colours.
func (s *Spec) Colors() []RGBA {
	res := make([]RGBA, len(s.stops))
	for i, st := range s.stops {
		res[i] = st.Color
	}
	return res
}

// Locations returns the stop locations.
func (s *Spec) Locations() []float64 {
	res := make([]float64, len(s.stops))
	for i, st := range s.stops {
		res[i] = st.Location
	}
	return res
}

// uniform reports whether the stops are evenly spread.
func (s *Spec) uniform() bool {
	n := len(s.stops) - 1
	for i, st := range s.stops {
		if st.Location != float64(i)/float64(n) {
			return false
		}
	}
	return true
}
