package shade

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
)

type directBackend struct{}

func (directBackend) String() string { return "direct" }

func (directBackend) Paint(tile *image.RGBA, l *Layer, s *Sampler, v view) error {
	b := tile.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dx, dy := v.device(x, y)
			tile.Set(x, y, l.colorAt(dx, dy, s))
		}
	}
	return nil
}

// tilePattern shows a layer through a tile-local coordinate system.
type tilePattern struct {
	l   *Layer
	s   *Sampler
	v   view
	off image.Point
}

func (p *tilePattern) ColorAt(x, y int) color.Color {
	dx, dy := p.v.device(x+p.off.X, y+p.off.Y)
	return p.l.colorAt(dx, dy, p.s)
}

type ggBackend struct{}

func (ggBackend) String() string { return "gg" }

func (ggBackend) Paint(tile *image.RGBA, l *Layer, s *Sampler, v view) error {
	b := tile.Bounds()
	dc := gg.NewContext(b.Dx(), b.Dy())
	dc.SetFillStyle(&tilePattern{l: l, s: s, v: v, off: b.Min})
	dc.DrawRectangle(0, 0, float64(b.Dx()), float64(b.Dy()))
	dc.Fill()
	draw.Draw(tile, b, dc.Image(), image.Point{}, draw.Src)
	return nil
}

type rasterxBackend struct{}

func (rasterxBackend) String() string { return "rasterx" }

func (rasterxBackend) Paint(tile *image.RGBA, l *Layer, s *Sampler, v view) error {
	b := tile.Bounds()
	w, h := b.Dx(), b.Dy()
	scratch := image.NewRGBA(image.Rect(0, 0, w, h))

	scanner := rasterx.NewScannerGV(w, h, scratch, scratch.Bounds())
	filler := rasterx.NewFiller(w, h, scanner)
	pat := &tilePattern{l: l, s: s, v: v, off: b.Min}
	filler.SetColor(rasterx.ColorFunc(pat.ColorAt))
	rasterx.AddRect(0, 0, float64(w), float64(h), 0, filler)
	filler.Draw()

	draw.Draw(tile, b, scratch, image.Point{}, draw.Src)
	return nil
}
