package shade

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// RGBA is a non-premultiplied colour with components in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Some common colours.
var (
	Transparent = RGBA{}
	Black       = RGBA{0, 0, 0, 1}
	White       = RGBA{1, 1, 1, 1}
)

// RGBA implements color.Color. Components are clamped to [0, 1].
func (c RGBA) RGBA() (r, g, b, a uint32) {
	alpha := clip(c.A, 0, 1)
	a = uint32(alpha*0xffff + 0.5)
	r = uint32(clip(c.R, 0, 1)*alpha*0xffff + 0.5)
	g = uint32(clip(c.G, 0, 1)*alpha*0xffff + 0.5)
	b = uint32(clip(c.B, 0, 1)*alpha*0xffff + 0.5)
	return
}

// Lerp blends each channel of c towards to by t.
func (c RGBA) Lerp(to RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (to.R-c.R)*t,
		G: c.G + (to.G-c.G)*t,
		B: c.B + (to.B-c.B)*t,
		A: c.A + (to.A-c.A)*t,
	}
}

// Hex formats c as #rrggbb, or #rrggbbaa when c is not opaque.
func (c RGBA) Hex() string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%.3g, %.3g, %.3g, %.3g)", c.R, c.G, c.B, c.A)
}

func (c RGBA) valid() bool {
	for _, x := range []float64{c.R, c.G, c.B, c.A} {
		if math.IsNaN(x) || x < 0 || x > 1 {
			return false
		}
	}
	return true
}

// FromColor converts any colour to RGBA.
func FromColor(c color.Color) RGBA {
	if c, ok := c.(RGBA); ok {
		return c
	}
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return RGBA{
		R: float64(n.R) / 0xffff,
		G: float64(n.G) / 0xffff,
		B: float64(n.B) / 0xffff,
		A: float64(n.A) / 0xffff,
	}
}

// MarshalText writes c as Hex when that is exact, and as
// "rgba(r, g, b, a)" with full precision otherwise.
func (c RGBA) MarshalText() ([]byte, error) {
	if !c.valid() {
		return nil, fmt.Errorf("colour out of range: %s", c)
	}
	hex := c.Hex()
	if back, err := ParseColor(hex); err == nil && back == c {
		return []byte(hex), nil
	}
	f := func(x float64) string { return strconv.FormatFloat(x, 'g', -1, 64) }
	return []byte("rgba(" + f(c.R) + ", " + f(c.G) + ", " + f(c.B) + ", " + f(c.A) + ")"), nil
}

// UnmarshalText reads any form ParseColor accepts.
func (c *RGBA) UnmarshalText(text []byte) error {
	v, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// ParseColor reads "#rgb", "#rrggbb", "#rrggbbaa", "rgba(r, g, b, a)" with
// components in [0, 1], or an SVG colour name such as "steelblue".
func ParseColor(s string) (RGBA, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "rgba(") {
		var c RGBA
		_, err := fmt.Sscanf(s, "rgba(%g, %g, %g, %g)", &c.R, &c.G, &c.B, &c.A)
		if err != nil {
			return RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
		}
		if !c.valid() {
			return RGBA{}, fmt.Errorf("colour %q out of range", s)
		}
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		c, ok := colornames.Map[strings.ToLower(s)]
		if !ok {
			return RGBA{}, fmt.Errorf("unknown colour %q", s)
		}
		return FromColor(c), nil
	}

	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	var r, g, b, a uint8
	a = 0xff
	var err error
	switch len(hex) {
	case 6:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	case 8:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a)
	default:
		err = fmt.Errorf("bad length %d", len(hex))
	}
	if err != nil {
		return RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return FromColor(color.NRGBA{R: r, G: g, B: b, A: a}), nil
}
