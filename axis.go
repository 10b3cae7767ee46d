package shade

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"
)

// Kind is the shape of a gradient.
type Kind uint8

// Gradient shapes.
const (
	// Axial gradients vary along the segment from Start to End.
	Axial Kind = iota
	// Radial gradients vary between the circle (Start, StartRadius) and the
	// circle (End, EndRadius).
	Radial
)

func (k Kind) String() string {
	switch k {
	case Axial:
		return "axial"
	case Radial:
		return "radial"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if k > Radial {
		return nil, fmt.Errorf("invalid gradient kind %d", uint8(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "axial", "linear":
		*k = Axial
	case "radial":
		*k = Radial
	default:
		return fmt.Errorf("unknown gradient kind %q", text)
	}
	return nil
}

// Axis is the geometry of a gradient. p = 0 at the start geometry and p = 1 at
// the end geometry.
type Axis struct {
	Kind        Kind
	Start, End  vec.Vec2
	StartRadius float64
	EndRadius   float64
}

// AxialAxis returns the axis along the segment start → end.
func AxialAxis(start, end vec.Vec2) Axis {
	return Axis{Kind: Axial, Start: start, End: end}
}

// RadialAxis returns the axis between two circles.
func RadialAxis(start vec.Vec2, startRadius float64, end vec.Vec2, endRadius float64) Axis {
	return Axis{
		Kind:        Radial,
		Start:       start,
		End:         end,
		StartRadius: startRadius,
		EndRadius:   endRadius,
	}
}

// Param returns the gradient position of the point (x, y). ok is false if no
// position covers the point, for example on a degenerate axis. Radial axes
// give the largest position whose circle passes through the point.
func (a Axis) Param(x, y float64) (p float64, ok bool) {
	return a.ParamWithin(x, y, ExtendBefore|ExtendAfter)
}

// ParamWithin is Param for a gradient drawn with opts. A radial axis prefers
// the largest position inside the drawn domain: positions after 1 count only
// with ExtendAfter and positions before 0 only with ExtendBefore. If no
// position lies inside, the largest one is returned.
func (a Axis) ParamWithin(x, y float64, opts DrawOptions) (p float64, ok bool) {
	pt := vec.Vec2{X: x, Y: y}
	switch a.Kind {
	case Axial:
		return a.axial(pt)
	case Radial:
		return a.radial(pt, opts)
	}
	return 0, false
}

func (a Axis) axial(pt vec.Vec2) (float64, bool) {
	d := a.End.Sub(a.Start)
	l2 := d.Dot(d)
	if l2 == 0 {
		return 0, false
	}
	return pt.Sub(a.Start).Dot(d) / l2, true
}

// radial solves |pt - C(t)| = r(t) for t with r(t) >= 0, where C(t) and r(t)
// move linearly from the start circle to the end circle. See ParamWithin for
// which root wins.
func (a Axis) radial(pt vec.Vec2, opts DrawOptions) (float64, bool) {
	cd := a.End.Sub(a.Start)
	pd := pt.Sub(a.Start)
	r0 := a.StartRadius
	dr := a.EndRadius - r0

	// a t^2 - 2 b t + c = 0
	qa := cd.Dot(cd) - dr*dr
	qb := pd.Dot(cd) + r0*dr
	qc := pd.Dot(pd) - r0*r0

	valid := func(t float64) bool { return r0+t*dr >= 0 }

	if math.Abs(qa) < 1e-12 {
		if qb == 0 {
			return 0, false
		}
		t := qc / (2 * qb)
		return t, valid(t)
	}

	disc := qb*qb - qa*qc
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t1, t2 := (qb+sq)/qa, (qb-sq)/qa
	if t1 < t2 {
		t1, t2 = t2, t1
	}
	inside := func(t float64) bool {
		return (t >= 0 || opts.ExtendsBefore()) && (t <= 1 || opts.ExtendsAfter())
	}
	for _, t := range []float64{t1, t2} {
		if valid(t) && inside(t) {
			return t, true
		}
	}
	if valid(t1) {
		return t1, true
	}
	if valid(t2) {
		return t2, true
	}
	return 0, false
}

// Lerp moves a towards b by t. The kind of a is kept.
func (a Axis) Lerp(b Axis, t float64) Axis {
	return Axis{
		Kind:        a.Kind,
		Start:       a.Start.Add(b.Start.Sub(a.Start).Mul(t)),
		End:         a.End.Add(b.End.Sub(a.End).Mul(t)),
		StartRadius: lerp(a.StartRadius, b.StartRadius, t),
		EndRadius:   lerp(a.EndRadius, b.EndRadius, t),
	}
}

func (a Axis) String() string {
	if a.Kind == Radial {
		return fmt.Sprintf("radial from (%g, %g) r=%g to (%g, %g) r=%g",
			a.Start.X, a.Start.Y, a.StartRadius, a.End.X, a.End.Y, a.EndRadius)
	}
	return fmt.Sprintf("axial from (%g, %g) to (%g, %g)",
		a.Start.X, a.Start.Y, a.End.X, a.End.Y)
}
