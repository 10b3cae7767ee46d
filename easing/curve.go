package easing

import "math"

// Curve identifies an entry in the easing catalog.
//
// The low bits select the base curve. The average bit blends the base curve
// with linear progress (see Average).
type Curve uint8

// Base curves, in catalog order.
const (
	Linear Curve = iota
	QuadraticIn
	QuadraticOut
	QuadraticInOut
	CubicIn
	CubicOut
	CubicInOut
	QuarticIn
	QuarticOut
	QuarticInOut
	QuinticIn
	QuinticOut
	QuinticInOut
	SineIn
	SineOut
	SineInOut
	CircularIn
	CircularOut
	CircularInOut
	ExponentialIn
	ExponentialOut
	ExponentialInOut
	ElasticIn
	ElasticOut
	ElasticInOut
	BackIn
	BackOut
	BackInOut
	BounceIn
	BounceOut
	BounceInOut

	numCurves
)

const averageBit Curve = 0x80

// Curves returns every base curve in catalog order.
func Curves() []Curve {
	res := make([]Curve, numCurves)
	for i := range res {
		res[i] = Curve(i)
	}
	return res
}

// Average returns the average variant of c.
func (c Curve) Average() Curve { return c | averageBit }

// IsAverage reports whether c is an average variant.
func (c Curve) IsAverage() bool { return c&averageBit != 0 }

// Base strips the average bit.
func (c Curve) Base() Curve { return c &^ averageBit }

// Valid reports whether c names a curve in the catalog.
func (c Curve) Valid() bool { return c.Base() < numCurves }

// Func returns c as a plain function.
func (c Curve) Func() Func { return c.Ease }

// Evaluate returns c eased at p.
func Evaluate(c Curve, p float64) float64 {
	return c.Ease(p)
}

// Ease returns the eased value at p. Invalid curves give NaN.
func (c Curve) Ease(p float64) float64 {
	y := c.Base().eval(p)
	if c.IsAverage() {
		return (y + p) / 2
	}
	return y
}

func (c Curve) eval(p float64) float64 {
	switch c {
	case Linear:
		return LinearInterpolation(p)
	case QuadraticIn:
		return QuadraticEaseIn(p)
	case QuadraticOut:
		return QuadraticEaseOut(p)
	case QuadraticInOut:
		return QuadraticEaseInOut(p)
	case CubicIn:
		return CubicEaseIn(p)
	case CubicOut:
		return CubicEaseOut(p)
	case CubicInOut:
		return CubicEaseInOut(p)
	case QuarticIn:
		return QuarticEaseIn(p)
	case QuarticOut:
		return QuarticEaseOut(p)
	case QuarticInOut:
		return QuarticEaseInOut(p)
	case QuinticIn:
		return QuinticEaseIn(p)
	case QuinticOut:
		return QuinticEaseOut(p)
	case QuinticInOut:
		return QuinticEaseInOut(p)
	case SineIn:
		return SineEaseIn(p)
	case SineOut:
		return SineEaseOut(p)
	case SineInOut:
		return SineEaseInOut(p)
	case CircularIn:
		return CircularEaseIn(p)
	case CircularOut:
		return CircularEaseOut(p)
	case CircularInOut:
		return CircularEaseInOut(p)
	case ExponentialIn:
		return ExponentialEaseIn(p)
	case ExponentialOut:
		return ExponentialEaseOut(p)
	case ExponentialInOut:
		return ExponentialEaseInOut(p)
	case ElasticIn:
		return ElasticEaseIn(p)
	case ElasticOut:
		return ElasticEaseOut(p)
	case ElasticInOut:
		return ElasticEaseInOut(p)
	case BackIn:
		return BackEaseIn(p)
	case BackOut:
		return BackEaseOut(p)
	case BackInOut:
		return BackEaseInOut(p)
	case BounceIn:
		return BounceEaseIn(p)
	case BounceOut:
		return BounceEaseOut(p)
	case BounceInOut:
		return BounceEaseInOut(p)
	}
	return math.NaN()
}
