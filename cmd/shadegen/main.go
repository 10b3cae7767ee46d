package main

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"golang.org/x/term"

	"github.com/voidshard/shade"
	"github.com/voidshard/shade/easing"
)

type args struct {
	Config string `arg:"-c, --config" help:"JSON layer document to render, flags below are ignored when set"`

	Kind        shade.Kind   `arg:"--kind" default:"axial" help:"axial or radial"`
	Colors      []string     `arg:"--colors" help:"colour stops as #rrggbb[aa] or SVG names, at least two"`
	Locations   []float64    `arg:"--locations" help:"stop locations in [0, 1], one per colour (default: uniform)"`
	Curve       easing.Curve `arg:"--curve" default:"Linear" help:"easing curve shaping the colour interpolation, see --list-curves"`
	X0          float64      `arg:"--x0" help:"start point x"`
	Y0          float64      `arg:"--y0" help:"start point y"`
	X1          float64      `arg:"--x1" default:"256" help:"end point x"`
	Y1          float64      `arg:"--y1" help:"end point y"`
	R0          float64      `arg:"--r0" help:"start radius (radial only)"`
	R1          float64      `arg:"--r1" default:"128" help:"end radius (radial only)"`
	ExtendStart bool         `arg:"--extend-start" help:"draw before the start location"`
	ExtendEnd   bool         `arg:"--extend-end" help:"draw after the end location"`

	To     string       `arg:"--to" help:"second JSON layer document, renders keyframes from the first layer to this one"`
	Frames int          `arg:"--frames" default:"10" help:"number of keyframes when --to is set"`
	Timing easing.Curve `arg:"--timing" default:"Linear" help:"easing curve for keyframe timing"`

	Width       int     `arg:"-W, --width" default:"256" help:"output width in pixels"`
	Height      int     `arg:"-H, --height" default:"256" help:"output height in pixels"`
	Backend     string  `arg:"--backend,env:SHADE_BACKEND" default:"direct" help:"direct, gg or rasterx"`
	Routines    int     `arg:"--routines,env:SHADE_ROUTINES" default:"4" help:"goroutines painting chunks"`
	ChunkSize   int     `arg:"--chunk-size" default:"128" help:"chunk edge in pixels"`
	Supersample int     `arg:"--supersample" default:"1" help:"samples per pixel edge"`
	Label       string  `arg:"--label" help:"caption drawn in the bottom left corner"`
	LabelSize   float64 `arg:"--label-size" default:"12" help:"caption size in points"`

	Output     string `arg:"-o, --output" default:"-" help:"PNG file to write, - for stdout. With --to, a pattern such as frame-%03d.png"`
	Describe   bool   `arg:"--describe" help:"print the layer as JSON instead of rendering"`
	ListCurves bool   `arg:"--list-curves" help:"print the easing curves and exit"`
	Verbose    bool   `arg:"-v, --verbose" help:"log debug output to stderr"`
}

func (args) Description() string {
	return "shadegen renders an eased colour gradient to PNG"
}

func main() {
	var a args
	arg.MustParse(&a)

	level := slog.LevelInfo
	if a.Verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	err := run(&a, os.Stdout, log)
	if err != nil {
		log.Error("shadegen failed", "err", err)
		os.Exit(1)
	}
}

func run(a *args, stdout io.Writer, log *slog.Logger) error {
	if a.ListCurves {
		return listCurves(stdout)
	}

	l, err := layer(a)
	if err != nil {
		return err
	}
	log.Debug("loaded layer", "layer", l)

	if a.Describe {
		return shade.EncodeJSON(stdout, l)
	}

	backend, err := shade.ParseBackend(a.Backend)
	if err != nil {
		return err
	}
	r, err := shade.NewRenderer(
		shade.ChunkSize(a.ChunkSize),
		shade.Routines(a.Routines),
		shade.WithBackend(backend),
		shade.Supersample(a.Supersample),
		shade.Label(a.Label, a.LabelSize),
		shade.Logger(log),
	)
	if err != nil {
		return err
	}
	bounds := image.Rect(0, 0, a.Width, a.Height)

	if a.To == "" {
		img, err := r.Render(l, bounds)
		if err != nil {
			return err
		}
		return write(a.Output, stdout, img)
	}

	if a.Output == "-" || !strings.Contains(a.Output, "%") {
		return fmt.Errorf("--to needs an output pattern such as frame-%%03d.png, given %q", a.Output)
	}
	to, err := readLayer(a.To)
	if err != nil {
		return err
	}
	frames, err := shade.Keyframes(l, to, a.Timing, a.Frames)
	if err != nil {
		return err
	}
	for i, f := range frames {
		img, err := r.Render(f, bounds)
		if err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		path := fmt.Sprintf(a.Output, i)
		err = shade.SavePNG(path, img)
		if err != nil {
			return err
		}
		log.Info("wrote frame", "frame", i, "path", path)
	}
	return nil
}

// layer builds the layer described by the config file or the flags.
func layer(a *args) (*shade.Layer, error) {
	if a.Config != "" {
		return readLayer(a.Config)
	}

	var b *shade.Builder
	switch a.Kind {
	case shade.Radial:
		b = shade.NewRadialBuilder(a.X0, a.Y0, a.R0, a.X1, a.Y1, a.R1)
	default:
		b = shade.NewAxialBuilder(a.X0, a.Y0, a.X1, a.Y1)
	}
	if a.Locations != nil && len(a.Locations) != len(a.Colors) {
		return nil, fmt.Errorf("have %d locations for %d colours", len(a.Locations), len(a.Colors))
	}
	for i, s := range a.Colors {
		c, err := shade.ParseColor(s)
		if err != nil {
			return nil, err
		}
		if a.Locations == nil {
			b.AddColor(c)
		} else {
			b.AddColorStop(a.Locations[i], c)
		}
	}
	b.SetCurve(a.Curve)
	b.SetExtendsPastStart(a.ExtendStart)
	b.SetExtendsPastEnd(a.ExtendEnd)
	return b.Build()
}

func readLayer(path string) (*shade.Layer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	l, err := shade.DecodeJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

func write(path string, stdout io.Writer, img *image.RGBA) error {
	if path != "-" {
		return shade.SavePNG(path, img)
	}
	if f, ok := stdout.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return fmt.Errorf("refusing to write PNG data to a terminal, use --output")
	}
	return shade.EncodePNG(stdout, img)
}

func listCurves(w io.Writer) error {
	for _, c := range easing.Curves() {
		_, err := fmt.Fprintf(w, "%-18s %s\n", c, c.Average())
		if err != nil {
			return err
		}
	}
	return nil
}
