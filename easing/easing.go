// Package easing is a catalog of the standard closed-form easing curves.
//
// Every curve maps normalised progress p in [0, 1] to an eased value. Most
// curves stay within [0, 1] but the Elastic, Back and Bounce families
// overshoot between the endpoints. Input outside [0, 1] is not clamped: the
// formula is evaluated as written, which may give NaN or Inf for the
// circular and exponential families.
package easing

import "math"

// Func maps normalised progress to an eased value.
type Func func(p float64) float64

// Average returns a curve that blends f with linear progress.
func Average(f Func) Func {
	return func(p float64) float64 {
		return (f(p) + p) / 2
	}
}

const halfPi = math.Pi / 2

// LinearInterpolation is y = x.
func LinearInterpolation(p float64) float64 {
	return p
}

// QuadraticEaseIn is modeled after the parabola y = x^2.
func QuadraticEaseIn(p float64) float64 {
	return p * p
}

// QuadraticEaseOut is modeled after the parabola y = -x^2 + 2x.
func QuadraticEaseOut(p float64) float64 {
	return -(p * (p - 2))
}

// QuadraticEaseInOut is the piecewise quadratic
// y = (1/2)((2x)^2) on [0, 0.5) and y = -(1/2)((2x-1)*(2x-3) - 1) on [0.5, 1].
func QuadraticEaseInOut(p float64) float64 {
	if p < 0.5 {
		return 2 * p * p
	}
	return -2*p*p + 4*p - 1
}

// CubicEaseIn is y = x^3.
func CubicEaseIn(p float64) float64 {
	return p * p * p
}

// CubicEaseOut is y = (x - 1)^3 + 1.
func CubicEaseOut(p float64) float64 {
	f := p - 1
	return f*f*f + 1
}

// CubicEaseInOut is the piecewise cubic
// y = (1/2)((2x)^3) on [0, 0.5) and y = (1/2)((2x-2)^3 + 2) on [0.5, 1].
func CubicEaseInOut(p float64) float64 {
	if p < 0.5 {
		return 4 * p * p * p
	}
	f := 2*p - 2
	return 0.5*f*f*f + 1
}

// QuarticEaseIn is y = x^4.
func QuarticEaseIn(p float64) float64 {
	return p * p * p * p
}

// QuarticEaseOut is y = 1 - (x - 1)^4.
func QuarticEaseOut(p float64) float64 {
	f := p - 1
	return f*f*f*(1-p) + 1
}

// QuarticEaseInOut is the piecewise quartic
// y = (1/2)((2x)^4) on [0, 0.5) and y = -(1/2)((2x-2)^4 - 2) on [0.5, 1].
func QuarticEaseInOut(p float64) float64 {
	if p < 0.5 {
		return 8 * p * p * p * p
	}
	f := p - 1
	return -8*f*f*f*f + 1
}

// QuinticEaseIn is y = x^5.
func QuinticEaseIn(p float64) float64 {
	return p * p * p * p * p
}

// QuinticEaseOut is y = (x - 1)^5 + 1.
func QuinticEaseOut(p float64) float64 {
	f := p - 1
	return f*f*f*f*f + 1
}

// QuinticEaseInOut is the piecewise quintic
// y = (1/2)((2x)^5) on [0, 0.5) and y = (1/2)((2x-2)^5 + 2) on [0.5, 1].
func QuinticEaseInOut(p float64) float64 {
	if p < 0.5 {
		return 16 * p * p * p * p * p
	}
	f := 2*p - 2
	return 0.5*f*f*f*f*f + 1
}

// SineEaseIn is a quarter cycle of a sine wave.
func SineEaseIn(p float64) float64 {
	return math.Sin((p-1)*halfPi) + 1
}

// SineEaseOut is a quarter cycle of a sine wave, phase shifted.
func SineEaseOut(p float64) float64 {
	return math.Sin(p * halfPi)
}

// SineEaseInOut is a half sine wave.
func SineEaseInOut(p float64) float64 {
	return 0.5 * (1 - math.Cos(p*math.Pi))
}

// CircularEaseIn is the shifted quadrant IV of the unit circle.
func CircularEaseIn(p float64) float64 {
	return 1 - math.Sqrt(1-p*p)
}

// CircularEaseOut is the shifted quadrant II of the unit circle.
func CircularEaseOut(p float64) float64 {
	return math.Sqrt((2 - p) * p)
}

// CircularEaseInOut is the piecewise circular function
// y = (1/2)(1 - sqrt(1 - 4x^2)) on [0, 0.5) and
// y = (1/2)(sqrt(-(2x - 3)(2x - 1)) + 1) on [0.5, 1].
func CircularEaseInOut(p float64) float64 {
	if p < 0.5 {
		return 0.5 * (1 - math.Sqrt(1-4*p*p))
	}
	return 0.5 * (math.Sqrt(-(2*p-3)*(2*p-1)) + 1)
}

// ExponentialEaseIn is y = 2^(10(x - 1)), pinned to 0 at x = 0.
func ExponentialEaseIn(p float64) float64 {
	if p == 0 {
		return p
	}
	return math.Pow(2, 10*(p-1))
}

// ExponentialEaseOut is y = 1 - 2^(-10x), pinned to 1 at x = 1.
func ExponentialEaseOut(p float64) float64 {
	if p == 1 {
		return p
	}
	return 1 - math.Pow(2, -10*p)
}

// ExponentialEaseInOut is the piecewise exponential
// y = (1/2)2^(10(2x - 1)) on [0, 0.5) and y = -(1/2)2^(-10(2x - 1)) + 1 on
// [0.5, 1], pinned at both endpoints.
func ExponentialEaseInOut(p float64) float64 {
	if p == 0 || p == 1 {
		return p
	}
	if p < 0.5 {
		return 0.5 * math.Pow(2, 20*p-10)
	}
	return -0.5*math.Pow(2, -20*p+10) + 1
}

// ElasticEaseIn is the damped sine wave y = sin(13π/2 x) 2^(10(x - 1)).
func ElasticEaseIn(p float64) float64 {
	return math.Sin(13*halfPi*p) * math.Pow(2, 10*(p-1))
}

// ElasticEaseOut is the damped sine wave y = sin(-13π/2 (x + 1)) 2^(-10x) + 1.
func ElasticEaseOut(p float64) float64 {
	return math.Sin(-13*halfPi*(p+1))*math.Pow(2, -10*p) + 1
}

// ElasticEaseInOut is the piecewise damped sine wave.
//
// The two halves do not meet at x = 0.5: the left half ends at 0.5 and the
// right half starts at 1.
func ElasticEaseInOut(p float64) float64 {
	if p < 0.5 {
		return 0.5 * math.Sin(13*halfPi*(2*p)) * math.Pow(2, 10*(2*p-1))
	}
	return 0.5 * (math.Sin(-13*halfPi*((2*p-1)+1))*math.Pow(2, -10*(2*p-1)) + 2)
}

// BackEaseIn is the overshooting cubic y = x^3 - x sin(πx).
func BackEaseIn(p float64) float64 {
	return p*p*p - p*math.Sin(p*math.Pi)
}

// BackEaseOut is y = 1 - ((1-x)^3 - (1-x) sin(π(1-x))).
func BackEaseOut(p float64) float64 {
	f := 1 - p
	return 1 - (f*f*f - f*math.Sin(f*math.Pi))
}

// BackEaseInOut is the piecewise overshooting cubic.
func BackEaseInOut(p float64) float64 {
	if p < 0.5 {
		f := 2 * p
		return 0.5 * (f*f*f - f*math.Sin(f*math.Pi))
	}
	f := 1 - (2*p - 1)
	return 0.5*(1-(f*f*f-f*math.Sin(f*math.Pi))) + 0.5
}

// BounceEaseIn mirrors BounceEaseOut.
func BounceEaseIn(p float64) float64 {
	return 1 - BounceEaseOut(1-p)
}

// BounceEaseOut is a sequence of four parabolic arcs.
func BounceEaseOut(p float64) float64 {
	switch {
	case p < 4/11.0:
		return (121 * p * p) / 16.0
	case p < 8/11.0:
		return (363/40.0*p*p - 99/10.0*p) + 17/5.0
	case p < 9/10.0:
		return (4356/361.0*p*p - 35442/1805.0*p) + 16061/1805.0
	default:
		return (54/5.0*p*p - 513/25.0*p) + 268/25.0
	}
}

// BounceEaseInOut is BounceEaseIn on the first half and BounceEaseOut on the
// second.
func BounceEaseInOut(p float64) float64 {
	if p < 0.5 {
		return 0.5 * BounceEaseIn(p*2)
	}
	return 0.5*BounceEaseOut(p*2-1) + 0.5
}
