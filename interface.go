package shade

import (
	"fmt"
	"image"
	"strings"
)

// Backend paints gradient chunks. Each call covers one chunk, and a Renderer
// may call Paint from several goroutines at once, each with its own tile and
// sampler.
type Backend interface {
	// Paint fills tile with l. Tile pixel (x, y) shows the device point
	// v.device(x, y). s belongs to the calling goroutine.
	Paint(tile *image.RGBA, l *Layer, s *Sampler, v view) error

	String() string
}

// Available backends.
var (
	// Direct evaluates every pixel centre. It is the reference backend.
	Direct Backend = directBackend{}
	// GG fills each chunk through a github.com/fogleman/gg pattern.
	GG Backend = ggBackend{}
	// Rasterx fills each chunk through a github.com/srwiley/rasterx colour
	// function.
	Rasterx Backend = rasterxBackend{}
)

// ParseBackend looks up a backend by name.
func ParseBackend(name string) (Backend, error) {
	for _, b := range []Backend{Direct, GG, Rasterx} {
		if strings.EqualFold(b.String(), name) {
			return b, nil
		}
	}
	return nil, fmt.Errorf("unknown backend %q", name)
}

// view maps output pixels to device points.
type view struct {
	origin image.Point // device pixel shown at output (0, 0)
	scale  float64     // output pixels per device pixel
}

// device returns the device point at the centre of output pixel (x, y).
func (v view) device(x, y int) (float64, float64) {
	return float64(v.origin.X) + (float64(x)+0.5)/v.scale,
		float64(v.origin.Y) + (float64(y)+0.5)/v.scale
}
