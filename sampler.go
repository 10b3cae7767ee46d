package shade

import (
	"math"
	"sort"

	"github.com/voidshard/shade/easing"
)

// DrawOptions control sampling outside [0, 1]. They mirror the native
// "draws before start" and "draws after end" drawing options.
type DrawOptions uint8

const (
	// ExtendBefore lets p < 0 flow into the easing curve unclamped.
	ExtendBefore DrawOptions = 1 << iota
	// ExtendAfter lets p > 1 flow into the easing curve unclamped.
	ExtendAfter
)

// ExtendsBefore reports whether ExtendBefore is set.
func (o DrawOptions) ExtendsBefore() bool { return o&ExtendBefore != 0 }

// ExtendsAfter reports whether ExtendAfter is set.
func (o DrawOptions) ExtendsAfter() bool { return o&ExtendAfter != 0 }

// Options builds DrawOptions from the two flags.
func Options(extendBefore, extendAfter bool) DrawOptions {
	var o DrawOptions
	if extendBefore {
		o |= ExtendBefore
	}
	if extendAfter {
		o |= ExtendAfter
	}
	return o
}

// SampleGradient returns the colour at p, eased through curve.
//
// The spec must come from NewSpec. See Sampler for the clamping rules.
func SampleGradient(p float64, spec *Spec, curve easing.Curve, extendBefore, extendAfter bool) RGBA {
	opts := Options(extendBefore, extendAfter)
	return sample(spec, opts.clamp(p), curve.Ease, nil)
}

// Sampler answers repeated colour queries for one gradient.
//
// The sampler remembers the last pair of stops it used, so queries with
// increasing p (a scanline) usually skip the search. A Sampler must not be
// used by more than one goroutine at a time. Create one per goroutine over
// a shared Spec.
type Sampler struct {
	spec *Spec
	ease easing.Func
	opts DrawOptions
	hint int
}

// NewSampler returns a sampler for spec. A nil ease means linear.
func NewSampler(spec *Spec, ease easing.Func, opts DrawOptions) (*Sampler, error) {
	if spec == nil || len(spec.stops) < 2 {
		return nil, newConfigError("colors", "need at least 2 colours")
	}
	if ease == nil {
		ease = easing.LinearInterpolation
	}
	return &Sampler{spec: spec, ease: ease, opts: opts}, nil
}

// At returns the colour at p.
//
// Without ExtendBefore, p < 0 is treated as 0. Without ExtendAfter, p > 1 is
// treated as 1. Eased values outside the stop locations give the colour of the
// first or last stop. Colours are never extrapolated. A NaN eased value gives
// the stop nearest to p.
func (s *Sampler) At(p float64) RGBA {
	return sample(s.spec, s.opts.clamp(p), s.ease, &s.hint)
}

// Spec returns the stops the sampler was built with.
func (s *Sampler) Spec() *Spec { return s.spec }

func (o DrawOptions) clamp(p float64) float64 {
	if p < 0 && !o.ExtendsBefore() {
		return 0
	}
	if p > 1 && !o.ExtendsAfter() {
		return 1
	}
	return p
}

// sample eases p and blends the bracketing stops. If hint is not nil it is
// used as the starting guess for the bracket and updated afterwards.
func sample(spec *Spec, p float64, ease easing.Func, hint *int) RGBA {
	stops := spec.stops
	last := len(stops) - 1

	e := ease(p)
	switch {
	case math.IsNaN(e):
		return stops[nearest(stops, clamp01(p))].Color
	case e <= stops[0].Location:
		return stops[0].Color
	case e >= stops[last].Location:
		return stops[last].Color
	}

	i := bracket(stops, e, hint)
	lo, hi := stops[i], stops[i+1]
	t := (e - lo.Location) / (hi.Location - lo.Location)
	return lo.Color.Lerp(hi.Color, t)
}

// bracket returns i with stops[i].Location <= e < stops[i+1].Location.
// The caller guarantees stops[0].Location < e < stops[last].Location.
func bracket(stops []Stop, e float64, hint *int) int {
	contains := func(i int) bool {
		return i >= 0 && i < len(stops)-1 &&
			stops[i].Location <= e && e < stops[i+1].Location
	}

	if hint != nil {
		if contains(*hint) {
			return *hint
		}
		if contains(*hint + 1) {
			*hint++
			return *hint
		}
	}

	// first stop strictly after e; never 0 and never past the last stop
	i := sort.Search(len(stops), func(k int) bool {
		return stops[k].Location > e
	}) - 1

	if hint != nil {
		*hint = i
	}
	return i
}

// nearest returns the index of the stop closest to p.
func nearest(stops []Stop, p float64) int {
	best, dist := 0, math.Inf(1)
	for i, s := range stops {
		if d := math.Abs(s.Location - p); d < dist {
			best, dist = i, d
		}
	}
	return best
}
