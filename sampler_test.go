package shade

import (
	"image/color"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/voidshard/shade/easing"
)

func TestSampleTwoStops(t *testing.T) {
	s := mustSpec(t, []color.Color{red, blue}, nil)

	cases := []struct {
		p    float64
		want RGBA
	}{
		{0, red},
		{1, blue},
		{0.5, RGBA{0.5, 0, 0.5, 1}},
		{0.25, RGBA{0.75, 0, 0.25, 1}},
	}
	for _, c := range cases {
		got := SampleGradient(c.p, s, easing.Linear, false, false)
		if got != c.want {
			t.Errorf("p=%g: got %s, want %s", c.p, got, c.want)
		}
	}
}

func TestSampleClamps(t *testing.T) {
	s := mustSpec(t, []color.Color{red, blue}, nil)

	if got := SampleGradient(-0.5, s, easing.Linear, false, false); got != red {
		t.Errorf("p=-0.5: got %s", got)
	}
	if got := SampleGradient(1.5, s, easing.Linear, false, false); got != blue {
		t.Errorf("p=1.5: got %s", got)
	}
}

func TestSampleExtends(t *testing.T) {
	s := mustSpec(t, []color.Color{red, blue}, []float64{0.25, 0.75})

	// the average curve maps -0.5 to -0.5, before the first stop
	got := SampleGradient(-0.5, s, easing.Linear.Average(), true, false)
	if got != red {
		t.Errorf("extend before: got %s", got)
	}

	// the average curve maps 1.5 to 1.5, past the last stop
	got = SampleGradient(1.5, s, easing.Linear.Average(), false, true)
	if got != blue {
		t.Errorf("extend after: got %s", got)
	}

	// unclamped p reaches the curve
	flip := func(p float64) float64 { return -p }
	smp, err := NewSampler(s, flip, Options(true, false))
	if err != nil {
		t.Fatal(err)
	}
	if got := smp.At(-0.5); got != (RGBA{0.5, 0, 0.5, 1}) {
		t.Errorf("extended p=-0.5: got %s", got)
	}
	smp, _ = NewSampler(s, flip, 0)
	if got := smp.At(-0.5); got != red {
		t.Errorf("clamped p=-0.5: got %s", got)
	}
}

func TestSampleExactStop(t *testing.T) {
	a, b, c := RGBA{0.1, 0.2, 0.3, 1}, RGBA{0.7, 0.11, 0.5, 0.9}, RGBA{0.3, 0.9, 0.2, 1}
	s := mustSpec(t, []color.Color{a, b, c}, []float64{0, 0.3, 1})

	if got := SampleGradient(0.3, s, easing.Linear, false, false); got != b {
		t.Errorf("got %s, want %s", got, b)
	}
}

func TestSampleHardEdge(t *testing.T) {
	s := mustSpec(t, []color.Color{red, green, blue, White}, []float64{0, 0.5, 0.5, 1})

	if got := SampleGradient(0.5, s, easing.Linear, false, false); got != blue {
		t.Errorf("at the edge: got %s, want the right-hand colour", got)
	}
	got := SampleGradient(0.25, s, easing.Linear, false, false)
	if want := red.Lerp(green, 0.5); got != want {
		t.Errorf("left of the edge: got %s, want %s", got, want)
	}
}

func TestSampleOvershoot(t *testing.T) {
	s := mustSpec(t, []color.Color{red, blue}, nil)

	for _, c := range []easing.Curve{easing.BackIn, easing.BackOut, easing.ElasticIn, easing.ElasticOut} {
		for i := 0; i <= 100; i++ {
			p := float64(i) / 100
			got := SampleGradient(p, s, c, false, false)
			if got.R < 0 || got.R > 1 || got.B < 0 || got.B > 1 || got.G != 0 || got.A != 1 {
				t.Fatalf("%s(%g) gave %s", c, p, got)
			}
		}
	}

	// BackIn dips below zero early on
	if got := SampleGradient(0.2, s, easing.BackIn, false, false); got != red {
		t.Errorf("undershoot: got %s", got)
	}
}

func TestSampleNonFinite(t *testing.T) {
	s := mustSpec(t, []color.Color{red, green, blue}, []float64{0, 0.1, 1})

	cases := []struct {
		name string
		ease easing.Func
		p    float64
		want RGBA
	}{
		{"+Inf", func(float64) float64 { return math.Inf(1) }, 0.5, blue},
		{"-Inf", func(float64) float64 { return math.Inf(-1) }, 0.5, red},
		{"NaN near start", func(float64) float64 { return math.NaN() }, 0.02, red},
		{"NaN near middle", func(float64) float64 { return math.NaN() }, 0.2, green},
		{"NaN near end", func(float64) float64 { return math.NaN() }, 0.9, blue},
	}
	for _, c := range cases {
		smp, err := NewSampler(s, c.ease, 0)
		if err != nil {
			t.Fatal(err)
		}
		if got := smp.At(c.p); got != c.want {
			t.Errorf("%s: got %s, want %s", c.name, got, c.want)
		}
	}
}

func TestSampleInvalidCurve(t *testing.T) {
	s := mustSpec(t, []color.Color{red, blue}, nil)

	got := SampleGradient(0.9, s, easing.Curve(200), false, false)
	if got != blue {
		t.Errorf("got %s", got)
	}
}

func TestSamplerMatchesStateless(t *testing.T) {
	s := mustSpec(t, []color.Color{red, green, blue, White, Black, green},
		[]float64{0, 0.1, 0.1, 0.4, 0.8, 1})
	curves := []easing.Curve{easing.Linear, easing.SineInOut, easing.BounceOut, easing.ElasticInOut.Average()}

	const n = 500
	asc := make([]float64, n)
	for i := range asc {
		asc[i] = -0.2 + 1.4*float64(i)/float64(n-1)
	}
	desc := make([]float64, n)
	for i := range desc {
		desc[i] = asc[n-1-i]
	}
	rnd := rand.New(rand.NewSource(1))
	random := make([]float64, n)
	for i := range random {
		random[i] = rnd.Float64()*1.4 - 0.2
	}
	scans := map[string][]float64{"ascending": asc, "descending": desc, "random": random}

	for _, c := range curves {
		for _, opts := range []DrawOptions{0, ExtendBefore | ExtendAfter} {
			for name, ps := range scans {
				smp, err := NewSampler(s, c.Ease, opts)
				if err != nil {
					t.Fatal(err)
				}
				var got, want []RGBA
				for _, p := range ps {
					got = append(got, smp.At(p))
					want = append(want, SampleGradient(p, s, c, opts.ExtendsBefore(), opts.ExtendsAfter()))
				}
				if d := cmp.Diff(want, got); d != "" {
					t.Errorf("%s %s opts=%d (-want +got):\n%s", c, name, opts, d)
				}
			}
		}
	}
}

func TestNewSampler(t *testing.T) {
	if _, err := NewSampler(nil, nil, 0); err == nil {
		t.Error("nil spec accepted")
	}

	s := mustSpec(t, []color.Color{red, blue}, nil)
	smp, err := NewSampler(s, nil, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := smp.At(0.5); got != (RGBA{0.5, 0, 0.5, 1}) {
		t.Errorf("nil ease: got %s", got)
	}
	if smp.Spec() != s {
		t.Error("Spec returned a different spec")
	}
}
