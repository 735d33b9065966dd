package crs

import (
	"github.com/cockroachdb/errors"

	"github.com/pspoerri/geocrs/internal/catalog"
	"github.com/pspoerri/geocrs/internal/grammar"
)

// Axes holds the directions of a CRS's first and second coordinate axis.
type Axes [2]catalog.Direction

// DefaultAxes is used when no axes are given: easting, then northing.
var DefaultAxes = Axes{catalog.East, catalog.North}

// AxisOption overrides DefaultAxes.
type AxisOption func(*Axes)

// WithAxes sets both axis directions.
func WithAxes(first, second catalog.Direction) AxisOption {
	return func(a *Axes) { *a = Axes{first, second} }
}

func resolveAxes(opts []AxisOption) (Axes, error) {
	axes := DefaultAxes
	for _, opt := range opts {
		opt(&axes)
	}
	for i, d := range axes {
		if !d.Valid() {
			return Axes{}, errors.Wrapf(ErrInvalidAxis, "axis %d: %d", i, d)
		}
	}
	return axes, nil
}

func axisNode(label string, d catalog.Direction, g grammar.Grammar) string {
	return grammar.Node("AXIS", grammar.Quote(label), d.For(g))
}
