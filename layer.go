package shade

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/fogleman/gg"
	"seehuhn.de/go/geom/matrix"

	"github.com/voidshard/shade/easing"
)

var _ gg.Pattern = (*Layer)(nil)

// Layer is an immutable snapshot of a gradient layer: the colour stops, the
// axis, the easing curve used as the colour interpolation profile and the
// drawing options.
//
// Changing any property means building a new Layer (see Builder). A Layer is
// safe for concurrent use.
type Layer struct {
	spec  *Spec
	axis  Axis
	curve easing.Curve
	opts  DrawOptions

	transform matrix.Matrix // layer space to device space
	inverse   matrix.Matrix
}

// NewLayer returns a layer with the identity transform.
func NewLayer(spec *Spec, axis Axis, curve easing.Curve, opts DrawOptions) (*Layer, error) {
	if spec == nil {
		return nil, newConfigError("colors", "missing stops")
	}
	if !curve.Valid() {
		return nil, newConfigError("curve", "unknown easing curve %d", uint8(curve))
	}
	if axis.Kind != Axial && axis.Kind != Radial {
		return nil, newConfigError("kind", "unknown gradient kind %d", uint8(axis.Kind))
	}
	if axis.Kind == Radial && (axis.StartRadius < 0 || axis.EndRadius < 0) {
		return nil, newConfigError("radius", "negative radius (%g, %g)",
			axis.StartRadius, axis.EndRadius)
	}
	return &Layer{
		spec:      spec,
		axis:      axis,
		curve:     curve,
		opts:      opts,
		transform: matrix.Identity,
		inverse:   matrix.Identity,
	}, nil
}

// WithTransform returns a copy of l which maps layer space to device space
// through m.
func (l *Layer) WithTransform(m matrix.Matrix) (*Layer, error) {
	if m == (matrix.Matrix{}) {
		m = matrix.Identity
	}
	det := m[0]*m[3] - m[1]*m[2]
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return nil, newConfigError("transform", "matrix %v is not invertible", m)
	}
	res := *l
	res.transform = m
	res.inverse = m.Inv()
	return &res, nil
}

// Spec returns the colour stops.
func (l *Layer) Spec() *Spec { return l.spec }

// Axis returns the gradient geometry, in layer space.
func (l *Layer) Axis() Axis { return l.axis }

// Curve returns the easing curve.
func (l *Layer) Curve() easing.Curve { return l.curve }

// Options returns the drawing options.
func (l *Layer) Options() DrawOptions { return l.opts }

// Transform returns the layer to device transform.
func (l *Layer) Transform() matrix.Matrix { return l.transform }

// ExtendsPastStart reports whether the gradient is sampled before p = 0.
func (l *Layer) ExtendsPastStart() bool { return l.opts.ExtendsBefore() }

// ExtendsPastEnd reports whether the gradient is sampled after p = 1.
func (l *Layer) ExtendsPastEnd() bool { return l.opts.ExtendsAfter() }

// Sampler returns a new sampler for the layer. Each goroutine needs its own.
func (l *Layer) Sampler() *Sampler {
	return &Sampler{spec: l.spec, ease: l.curve.Ease, opts: l.opts}
}

// ColorAt returns the colour at the centre of device pixel (x, y).
// It implements gg.Pattern.
func (l *Layer) ColorAt(x, y int) color.Color {
	p, ok := l.param(float64(x)+0.5, float64(y)+0.5)
	if !ok {
		return Transparent
	}
	return sample(l.spec, l.opts.clamp(p), l.curve.Ease, nil)
}

// colorAt is ColorAt for a device point, going through s.
func (l *Layer) colorAt(x, y float64, s *Sampler) RGBA {
	p, ok := l.param(x, y)
	if !ok {
		return Transparent
	}
	return s.At(p)
}

func (l *Layer) param(x, y float64) (float64, bool) {
	x, y = l.inverse.Apply(x, y)
	return l.axis.ParamWithin(x, y, l.opts)
}

// Interpolate returns the layer a fraction t of the way from l to to. Colours,
// locations and geometry are blended. The curve, options and transform of l
// are kept. Both layers need the same number of stops.
//
// Values of t outside [0, 1] extrapolate the geometry. Colours are clamped to
// [0, 1] and radii to non-negative values. Locations use t clamped to [0, 1],
// so they stay in order.
func (l *Layer) Interpolate(to *Layer, t float64) (*Layer, error) {
	if to == nil {
		return nil, newConfigError("layer", "missing layer to interpolate to")
	}
	if l.spec.Len() != to.spec.Len() {
		return nil, newConfigError("colors", "cannot interpolate %d stops to %d stops",
			l.spec.Len(), to.spec.Len())
	}
	stops := make([]Stop, l.spec.Len())
	for i := range stops {
		a, b := l.spec.stops[i], to.spec.stops[i]
		c := a.Color.Lerp(b.Color, t)
		stops[i] = Stop{
			Color: RGBA{
				R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B), A: clamp01(c.A),
			},
			Location: clamp01(lerp(a.Location, b.Location, clamp01(t))),
		}
		if i > 0 {
			stops[i].Location = math.Max(stops[i].Location, stops[i-1].Location)
		}
	}
	spec, err := newSpec(stops)
	if err != nil {
		return nil, err
	}

	axis := l.axis.Lerp(to.axis, t)
	axis.StartRadius = math.Max(axis.StartRadius, 0)
	axis.EndRadius = math.Max(axis.EndRadius, 0)

	res := *l
	res.spec = spec
	res.axis = axis
	return &res, nil
}

// Keyframes returns n snapshots from from to to, inclusive of both ends. The
// fraction at frame i is timing eased at i/(n-1). n below 2 is taken as 2.
func Keyframes(from, to *Layer, timing easing.Curve, n int) ([]*Layer, error) {
	if from == nil || to == nil {
		return nil, newConfigError("layer", "missing keyframe layer")
	}
	if n < 2 {
		n = 2
	}
	out := make([]*Layer, n)
	for i := 0; i < n; i++ {
		t := timing.Ease(float64(i) / float64(n-1))
		if math.IsNaN(t) {
			return nil, newConfigError("curve", "timing curve %s gave NaN", timing)
		}
		l, err := from.Interpolate(to, t)
		if err != nil {
			return nil, err
		}
		out[i] = l
	}
	return out, nil
}

func (l *Layer) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s gradient, curve %s", l.axis.Kind, l.curve)
	b.WriteString(", colors [")
	for i, c := range l.spec.Colors() {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(c.Hex())
	}
	b.WriteString("]")
	if !l.spec.uniform() {
		fmt.Fprintf(&b, ", locations %v", l.spec.Locations())
	}
	fmt.Fprintf(&b, ", %s", l.axis)
	if l.ExtendsPastEnd() {
		b.WriteString(", draws after end location")
	}
	if l.ExtendsPastStart() {
		b.WriteString(", draws before start location")
	}
	return b.String()
}
