package shade

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want RGBA
	}{
		{"#ff0000", red},
		{"#00F", blue},
		{"  #ffffff ", White},
		{"#00000000", Transparent},
		{"#ff000080", RGBA{1, 0, 0, float64(0x80) / 0xff}},
		{"black", Black},
		{"Lime", green},
	}
	for _, c := range cases {
		got, err := ParseColor(c.in)
		if err != nil {
			t.Errorf("%q: %v", c.in, err)
			continue
		}
		if d := cmp.Diff(c.want, got, cmpopts.EquateApprox(0, 1e-9)); d != "" {
			t.Errorf("%q (-want +got):\n%s", c.in, d)
		}
	}

	for _, bad := range []string{"", "#", "#12345", "#gggggg", "notacolour"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("%q accepted", bad)
		}
	}
}

func TestHex(t *testing.T) {
	cases := []struct {
		c    RGBA
		want string
	}{
		{red, "#ff0000"},
		{White, "#ffffff"},
		{RGBA{0, 0, 1, 0.5}, "#0000ff80"},
		{Transparent, "#00000000"},
	}
	for _, c := range cases {
		if got := c.c.Hex(); got != c.want {
			t.Errorf("%s: got %s, want %s", c.c, got, c.want)
		}
	}

	// Hex and ParseColor agree on 8 bit colours
	for _, s := range []string{"#12345678", "#abcdef", "#fedcba01"} {
		c, err := ParseColor(s)
		if err != nil {
			t.Fatal(err)
		}
		if got := c.Hex(); got != s {
			t.Errorf("%s came back as %s", s, got)
		}
	}
}

func TestRGBAColor(t *testing.T) {
	// premultiplied and clamped
	r, g, b, a := RGBA{1, 0.5, 2, 0.5}.RGBA()
	want := []uint32{0x8000, 0x4000, 0x8000, 0x8000}
	if d := cmp.Diff(want, []uint32{r, g, b, a}); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}

	got := FromColor(color.RGBA64{0x8000, 0, 0, 0x8000})
	if d := cmp.Diff(RGBA{1, 0, 0, float64(0x8000) / 0xffff}, got, cmpopts.EquateApprox(0, 1e-4)); d != "" {
		t.Errorf("FromColor (-want +got):\n%s", d)
	}
}

func TestColorText(t *testing.T) {
	cases := []struct {
		c    RGBA
		want string
	}{
		{red, "#ff0000"},
		{RGBA{0, 0, 1, 0.5}, "rgba(0, 0, 1, 0.5)"},
		{RGBA{0.1, 0.2, 0.3, 1}, "rgba(0.1, 0.2, 0.3, 1)"},
	}
	for _, c := range cases {
		text, err := c.c.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		if string(text) != c.want {
			t.Errorf("%s: got %s, want %s", c.c, text, c.want)
		}
		var back RGBA
		err = back.UnmarshalText(text)
		if err != nil {
			t.Fatal(err)
		}
		if back != c.c {
			t.Errorf("%s came back as %s", c.c, back)
		}
	}

	if _, err := (RGBA{1.5, 0, 0, 1}).MarshalText(); err == nil {
		t.Error("out of range colour marshalled")
	}
	if _, err := ParseColor("rgba(2, 0, 0, 1)"); err == nil {
		t.Error("out of range rgba accepted")
	}
}
