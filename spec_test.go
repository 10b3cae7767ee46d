package shade

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var (
	red   = RGBA{1, 0, 0, 1}
	green = RGBA{0, 1, 0, 1}
	blue  = RGBA{0, 0, 1, 1}
)

func mustSpec(t *testing.T, colors []color.Color, locations []float64) *Spec {
	t.Helper()
	s, err := NewSpec(colors, locations)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestNewSpecUniform(t *testing.T) {
	s := mustSpec(t, []color.Color{red, green, blue, White, Black}, nil)

	want := []float64{0, 0.25, 0.5, 0.75, 1}
	if d := cmp.Diff(want, s.Locations()); d != "" {
		t.Errorf("locations (-want +got):\n%s", d)
	}
	if !s.uniform() {
		t.Error("uniform spread not detected")
	}
	if s.Start() != red || s.End() != Black {
		t.Errorf("start %s, end %s", s.Start(), s.End())
	}
}

func TestNewSpecConverts(t *testing.T) {
	s := mustSpec(t, []color.Color{color.NRGBA{0xff, 0, 0, 0xff}, color.Gray{0}}, []float64{0.2, 0.8})
	want := []Stop{
		{Color: red, Location: 0.2},
		{Color: Black, Location: 0.8},
	}
	if d := cmp.Diff(want, s.Stops()); d != "" {
		t.Errorf("stops (-want +got):\n%s", d)
	}
}

func TestNewSpecInvalid(t *testing.T) {
	cases := []struct {
		name      string
		colors    []color.Color
		locations []float64
		field     string
	}{
		{"no colours", nil, nil, "colors"},
		{"one colour", []color.Color{red}, nil, "colors"},
		{"missing colour", []color.Color{red, nil}, nil, "colors"},
		{"colour out of range", []color.Color{red, RGBA{2, 0, 0, 1}}, nil, "colors"},
		{"location count", []color.Color{red, blue}, []float64{0}, "locations"},
		{"non-monotonic", []color.Color{red, green, blue}, []float64{0, 0.5, 0.2}, "locations"},
		{"below zero", []color.Color{red, blue}, []float64{-0.1, 1}, "locations"},
		{"above one", []color.Color{red, blue}, []float64{0, 1.1}, "locations"},
		{"NaN", []color.Color{red, blue}, []float64{0, math.NaN()}, "locations"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewSpec(c.colors, c.locations)
			var cerr *ConfigError
			if !errors.As(err, &cerr) {
				t.Fatalf("got %v, want a ConfigError", err)
			}
			if cerr.Field != c.field {
				t.Errorf("field %q, want %q", cerr.Field, c.field)
			}
			if !errors.Is(err, &ConfigError{}) {
				t.Error("errors.Is does not match ConfigError")
			}
		})
	}
}

func TestNewSpecCoincident(t *testing.T) {
	_, err := NewSpec([]color.Color{red, green, blue}, []float64{0, 0.5, 0.5})
	if err != nil {
		t.Errorf("equal locations rejected: %v", err)
	}
}

func TestNewSpecFromStops(t *testing.T) {
	stops := []Stop{{red, 0}, {blue, 1}}
	s, err := NewSpecFromStops(stops)
	if err != nil {
		t.Fatal(err)
	}
	stops[0].Color = green
	if s.Start() != red {
		t.Error("spec shares the caller's slice")
	}

	_, err = NewSpecFromStops([]Stop{{blue, 1}, {red, 0}})
	if !errors.Is(err, &ConfigError{}) {
		t.Errorf("decreasing stops: got %v", err)
	}
}
