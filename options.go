package shade

import (
	"fmt"
	"log/slog"
)

// Option is something that can be configured on a Renderer.
type Option func(*Renderer) error

// ChunkSize sets non-default chunksize (in output pixels, square).
func ChunkSize(i int) Option {
	return func(r *Renderer) error {
		if i <= 0 {
			return fmt.Errorf("chunksize must be greater than zero, given %d", i)
		}
		r.chunkSize = i
		return nil
	}
}

// Routines sets how many goroutines paint chunks during Render.
// Values below one mean one.
func Routines(i int) Option {
	return func(r *Renderer) error {
		if i <= 0 {
			i = 1
		}
		r.routines = i
		return nil
	}
}

// WithBackend selects how chunks are painted. The default is Direct.
func WithBackend(b Backend) Option {
	return func(r *Renderer) error {
		if b == nil {
			return fmt.Errorf("backend must not be nil")
		}
		r.backend = b
		return nil
	}
}

// Supersample renders n×n samples per pixel and filters them down.
func Supersample(n int) Option {
	return func(r *Renderer) error {
		if n < 1 || n > maxSupersample {
			return fmt.Errorf("supersample must be between 1 and %d, given %d", maxSupersample, n)
		}
		r.supersample = n
		return nil
	}
}

// Label draws text in the bottom left corner of every rendered image.
// A size of zero or less uses the default size.
func Label(text string, size float64) Option {
	return func(r *Renderer) error {
		if size <= 0 {
			size = defaultLabelSize
		}
		r.label = text
		r.labelSize = size
		return nil
	}
}

// Logger sets where the renderer reports progress. By default nothing is
// logged.
func Logger(l *slog.Logger) Option {
	return func(r *Renderer) error {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}
		r.log = l
		return nil
	}
}
