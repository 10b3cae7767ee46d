package shade

import (
	"fmt"
	"image"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	defaultLabelSize = 12 // points
	labelMargin      = 6  // pixels
)

var (
	labelFont     *truetype.Font
	labelFontErr  error
	labelFontOnce sync.Once
)

func loadLabelFont() (*truetype.Font, error) {
	labelFontOnce.Do(func() {
		labelFont, labelFontErr = truetype.Parse(goregular.TTF)
	})
	return labelFont, labelFontErr
}

// drawLabel writes text into the bottom left corner of img, in black or white
// depending on what is underneath.
func drawLabel(img *image.RGBA, text string, size float64) error {
	f, err := loadLabelFont()
	if err != nil {
		return fmt.Errorf("failed to parse label font: %w", err)
	}

	b := img.Bounds()
	x, y := float64(labelMargin), float64(b.Dy()-labelMargin)

	dc := gg.NewContextForRGBA(img)
	dc.SetFontFace(truetype.NewFace(f, &truetype.Options{Size: size}))
	if luminance(img, b.Min.X+labelMargin, b.Max.Y-1-labelMargin) > 0.5 {
		dc.SetColor(Black)
	} else {
		dc.SetColor(White)
	}
	dc.DrawStringAnchored(text, x, y, 0, 0)
	return nil
}

// luminance of the pixel at (x, y), composited over black.
func luminance(img *image.RGBA, x, y int) float64 {
	p := image.Pt(x, y)
	if !p.In(img.Bounds()) {
		return 0
	}
	r, g, b, _ := img.At(x, y).RGBA()
	return (0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)) / 0xffff
}
