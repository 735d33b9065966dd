package crs

import (
	"math"

	"github.com/cockroachdb/errors"

	"github.com/pspoerri/geocrs/internal/catalog"
	"github.com/pspoerri/geocrs/internal/grammar"
)

// Ellipsoid is the earth-shape model of a datum. Both axis values are always
// set once constructed.
type Ellipsoid struct {
	name          catalog.Ellipsoid
	semiMajorAxis float64
	invFlattening float64
}

// EllipsoidOption overrides one of the catalog's default axis values.
type EllipsoidOption func(*ellipsoidValues)

type ellipsoidValues struct {
	semiMajorAxis *float64
	invFlattening *float64
}

// WithSemiMajorAxis sets the semi-major axis in metres.
func WithSemiMajorAxis(a float64) EllipsoidOption {
	return func(v *ellipsoidValues) { v.semiMajorAxis = &a }
}

// WithInvFlattening sets the inverse flattening. Zero describes a sphere.
func WithInvFlattening(rf float64) EllipsoidOption {
	return func(v *ellipsoidValues) { v.invFlattening = &rf }
}

// NewEllipsoid builds an ellipsoid for a catalog entry. Values not given as
// options come from the entry; the Unknown entry has none, so both options
// are required for it.
func NewEllipsoid(name catalog.Ellipsoid, opts ...EllipsoidOption) (Ellipsoid, error) {
	var v ellipsoidValues
	for _, opt := range opts {
		opt(&v)
	}

	e := Ellipsoid{name: name}
	switch name.Kind() {
	case catalog.KindUnknown:
		if v.semiMajorAxis == nil || v.invFlattening == nil {
			return Ellipsoid{}, errors.Wrapf(ErrUnknownEllipsoid, "%s", name.Name)
		}
	case catalog.KindNamed:
		e.semiMajorAxis = name.SemiMajorAxis
		e.invFlattening = name.InvFlattening
	}
	if v.semiMajorAxis != nil {
		e.semiMajorAxis = *v.semiMajorAxis
	}
	if v.invFlattening != nil {
		e.invFlattening = *v.invFlattening
	}

	if !(e.semiMajorAxis > 0) || math.IsInf(e.semiMajorAxis, 0) {
		return Ellipsoid{}, errors.Wrapf(ErrInvalidEllipsoid, "semi-major axis %v", e.semiMajorAxis)
	}
	if !(e.invFlattening >= 0) || math.IsInf(e.invFlattening, 0) {
		return Ellipsoid{}, errors.Wrapf(ErrInvalidEllipsoid, "inverse flattening %v", e.invFlattening)
	}
	return e, nil
}

// Name returns the catalog entry.
func (e Ellipsoid) Name() catalog.Ellipsoid { return e.name }

// SemiMajorAxis returns the semi-major axis in metres.
func (e Ellipsoid) SemiMajorAxis() float64 { return e.semiMajorAxis }

// InvFlattening returns the inverse flattening.
func (e Ellipsoid) InvFlattening() float64 { return e.invFlattening }

// IsZero reports whether e was never constructed.
func (e Ellipsoid) IsZero() bool { return e == Ellipsoid{} }

// Render spells the ellipsoid in g.
func (e Ellipsoid) Render(g grammar.Grammar) string {
	if g == grammar.Proj4 {
		return e.proj4()
	}
	return e.wkt(g)
}

// The numeric values are written even when +ellps names the ellipsoid.
func (e Ellipsoid) proj4() string {
	a := grammar.ProjToken("a", grammar.FormatFloat(e.semiMajorAxis))
	f := grammar.ProjToken("f", grammar.FormatFloat(e.invFlattening))
	switch {
	case e.name.Kind() == catalog.KindUnknown:
		return grammar.JoinProj(a, f)
	case !e.name.HasProj4():
		return grammar.JoinProj(a, f)
	default:
		return grammar.JoinProj(grammar.ProjToken("ellps", e.name.Proj4), a, f)
	}
}

func (e Ellipsoid) wkt(g grammar.Grammar) string {
	return grammar.Node("SPHEROID",
		grammar.Quote(e.name.For(g)),
		grammar.FormatFloat(e.semiMajorAxis),
		grammar.FormatFloat(e.invFlattening),
	)
}
