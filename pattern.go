package shade

import (
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"github.com/voidshard/shade/easing"
)

// Builder collects layer properties, in the manner of gg's linear and radial
// gradients (AddColorStop), and produces an immutable Layer. The zero value
// is not useful, start from NewAxialBuilder or NewRadialBuilder.
type Builder struct {
	axis      Axis
	curve     easing.Curve
	opts      DrawOptions
	transform matrix.Matrix

	colors    []color.Color
	locations []float64
	located   int
}

// NewAxialBuilder starts an axial gradient from (x0, y0) to (x1, y1).
func NewAxialBuilder(x0, y0, x1, y1 float64) *Builder {
	return &Builder{
		axis:      AxialAxis(vec.Vec2{X: x0, Y: y0}, vec.Vec2{X: x1, Y: y1}),
		transform: matrix.Identity,
	}
}

// NewRadialBuilder starts a radial gradient from the circle at (x0, y0) with
// radius r0 to the circle at (x1, y1) with radius r1.
func NewRadialBuilder(x0, y0, r0, x1, y1, r1 float64) *Builder {
	return &Builder{
		axis:      RadialAxis(vec.Vec2{X: x0, Y: y0}, r0, vec.Vec2{X: x1, Y: y1}, r1),
		transform: matrix.Identity,
	}
}

// AddColorStop appends a colour at the given location. Stops must be added
// in order.
func (b *Builder) AddColorStop(offset float64, c color.Color) {
	b.colors = append(b.colors, c)
	b.locations = append(b.locations, offset)
	b.located++
}

// AddColor appends a colour without a location. Colours added this way are
// spread uniformly. Mixing AddColor and AddColorStop makes Build fail.
func (b *Builder) AddColor(c color.Color) {
	b.colors = append(b.colors, c)
	b.locations = append(b.locations, 0)
}

// SetCurve sets the easing curve used as interpolation profile.
func (b *Builder) SetCurve(c easing.Curve) { b.curve = c }

// SetOptions sets the extension options.
func (b *Builder) SetOptions(o DrawOptions) { b.opts = o }

// SetExtendsPastStart sets or clears ExtendBefore.
func (b *Builder) SetExtendsPastStart(on bool) {
	if on {
		b.opts |= ExtendBefore
	} else {
		b.opts &^= ExtendBefore
	}
}

// SetExtendsPastEnd sets or clears ExtendAfter.
func (b *Builder) SetExtendsPastEnd(on bool) {
	if on {
		b.opts |= ExtendAfter
	} else {
		b.opts &^= ExtendAfter
	}
}

// SetTransform sets the layer to device transform.
func (b *Builder) SetTransform(m matrix.Matrix) { b.transform = m }

// Build validates the collected properties.
func (b *Builder) Build() (*Layer, error) {
	var locations []float64
	switch b.located {
	case 0:
		// spread uniformly
	case len(b.colors):
		locations = b.locations
	default:
		return nil, newConfigError("locations", "%d of %d colours have a location",
			b.located, len(b.colors))
	}

	spec, err := NewSpec(b.colors, locations)
	if err != nil {
		return nil, err
	}
	l, err := NewLayer(spec, b.axis, b.curve, b.opts)
	if err != nil {
		return nil, err
	}
	return l.WithTransform(b.transform)
}
