package shade

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
)

const (
	defaultChunkSize = 128 // output pixels (square)
	defaultRoutines  = 4
	maxSupersample   = 8
)

// Renderer paints layers into images, standing in for a native shading
// primitive. The output is split into square chunks which are painted
// concurrently.
//
// A Renderer holds no per-render state and may be shared.
type Renderer struct {
	chunkSize   int
	routines    int
	backend     Backend
	supersample int
	label       string
	labelSize   float64
	log         *slog.Logger
}

// NewRenderer creates a renderer.
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		chunkSize:   defaultChunkSize,
		routines:    defaultRoutines,
		backend:     Direct,
		supersample: 1,
		log:         slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		err := opt(r)
		if err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Render paints the device rectangle bounds of l. The result has its origin
// at (0, 0): pixel (x, y) shows device pixel bounds.Min + (x, y).
func (r *Renderer) Render(l *Layer, bounds image.Rectangle) (*image.RGBA, error) {
	if l == nil {
		return nil, fmt.Errorf("render: missing layer")
	}
	if bounds.Empty() {
		return nil, fmt.Errorf("render: empty bounds %v", bounds)
	}
	start := time.Now()

	n := r.supersample
	size := bounds.Size()
	canvas := image.NewRGBA(image.Rect(0, 0, size.X*n, size.Y*n))
	v := view{origin: bounds.Min, scale: float64(n)}

	err := r.paint(canvas, l, v)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", r.backend, err)
	}

	out := canvas
	if n > 1 {
		out = image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
		draw.CatmullRom.Scale(out, out.Bounds(), canvas, canvas.Bounds(), draw.Src, nil)
	}

	if r.label != "" {
		err = drawLabel(out, r.label, r.labelSize)
		if err != nil {
			return nil, fmt.Errorf("render label: %w", err)
		}
	}

	r.log.Debug("rendered layer",
		"kind", l.axis.Kind,
		"curve", l.curve,
		"backend", r.backend,
		"bounds", bounds,
		"supersample", n,
		"elapsed", time.Since(start))
	return out, nil
}

// paint fans the chunks of canvas out to the worker routines.
func (r *Renderer) paint(canvas *image.RGBA, l *Layer, v view) error {
	work := r.chunksWithin(canvas.Bounds())

	// standard fan out -> fan in to paint all chunks
	errs := make(chan error)
	wg := &sync.WaitGroup{}

	for i := 0; i < r.routines; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			s := l.Sampler() // one per routine, it keeps scanline state
			for chunk := range work {
				tile := canvas.SubImage(chunk).(*image.RGBA)
				err := r.backend.Paint(tile, l, s, v)
				if err != nil {
					errs <- fmt.Errorf("chunk %v: %w", chunk, err)
					continue
				}
				r.log.Debug("painted chunk", "chunk", chunk)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(errs)
	}()

	return checkErrors(errs)
}

// chunksWithin returns the chunks covering b, row by row.
func (r *Renderer) chunksWithin(b image.Rectangle) <-chan image.Rectangle {
	out := make(chan image.Rectangle)

	go func() {
		for y := b.Min.Y; y < b.Max.Y; y += r.chunkSize {
			for x := b.Min.X; x < b.Max.X; x += r.chunkSize {
				out <- image.Rect(x, y, x+r.chunkSize, y+r.chunkSize).Intersect(b)
			}
		}
		close(out)
	}()

	return out
}

// SavePNG writes img to a PNG file.
func SavePNG(path string, img *image.RGBA) error {
	return gg.SavePNG(path, img)
}

// EncodePNG writes img to w in PNG format.
func EncodePNG(w io.Writer, img *image.RGBA) error {
	return gg.NewContextForRGBA(img).EncodePNG(w)
}
