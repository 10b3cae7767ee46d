package shade

import (
	"encoding/json"
	"image/color"
	"io"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"github.com/voidshard/shade/easing"
)

// metadata is the stored form of a Layer, so a layer description can be
// written to disk and loaded again.
type metadata struct {
	Kind      Kind         `json:"kind"`
	Colors    []RGBA       `json:"colors"`
	Locations []float64    `json:"locations,omitempty"`
	Curve     easing.Curve `json:"curve"`

	Start       [2]float64 `json:"start"`
	End         [2]float64 `json:"end"`
	StartRadius float64    `json:"startRadius,omitempty"`
	EndRadius   float64    `json:"endRadius,omitempty"`

	ExtendBefore bool `json:"extendBefore,omitempty"`
	ExtendAfter  bool `json:"extendAfter,omitempty"`

	Transform *[6]float64 `json:"transform,omitempty"`
}

// EncodeJSON writes the JSON representation of l.
func EncodeJSON(w io.Writer, l *Layer) error {
	m := &metadata{
		Kind:         l.axis.Kind,
		Curve:        l.curve,
		Start:        [2]float64{l.axis.Start.X, l.axis.Start.Y},
		End:          [2]float64{l.axis.End.X, l.axis.End.Y},
		StartRadius:  l.axis.StartRadius,
		EndRadius:    l.axis.EndRadius,
		ExtendBefore: l.ExtendsPastStart(),
		ExtendAfter:  l.ExtendsPastEnd(),
	}
	m.Colors = l.spec.Colors()
	if !l.spec.uniform() {
		m.Locations = l.spec.Locations()
	}
	if l.transform != matrix.Identity {
		t := [6]float64(l.transform)
		m.Transform = &t
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}

// DecodeJSON reads a layer written by EncodeJSON. Colours may also be given by
// SVG name, and locations may be left out to spread the colours uniformly.
func DecodeJSON(r io.Reader) (*Layer, error) {
	m := &metadata{}
	err := json.NewDecoder(r).Decode(m)
	if err != nil {
		return nil, newConfigError("json", "%v", err)
	}
	return m.layer()
}

func (m *metadata) layer() (*Layer, error) {
	colors := make([]color.Color, len(m.Colors))
	for i, c := range m.Colors {
		colors[i] = c
	}

	spec, err := NewSpec(colors, m.Locations)
	if err != nil {
		return nil, err
	}

	axis := Axis{
		Kind:        m.Kind,
		Start:       vec.Vec2{X: m.Start[0], Y: m.Start[1]},
		End:         vec.Vec2{X: m.End[0], Y: m.End[1]},
		StartRadius: m.StartRadius,
		EndRadius:   m.EndRadius,
	}
	l, err := NewLayer(spec, axis, m.Curve, Options(m.ExtendBefore, m.ExtendAfter))
	if err != nil {
		return nil, err
	}
	if m.Transform == nil {
		return l, nil
	}
	return l.WithTransform(matrix.Matrix(*m.Transform))
}
