package crs

import (
	"github.com/pspoerri/geocrs/internal/catalog"
	"github.com/pspoerri/geocrs/internal/grammar"
)

// Datum anchors an ellipsoid to the earth, optionally with a shift to WGS 84.
type Datum struct {
	name      catalog.Datum
	ellipsoid Ellipsoid
	shift     Renderer
}

// DatumOption configures optional parts of a datum.
type DatumOption func(*datumConfig)

type datumConfig struct {
	shift    Renderer
	shiftSet bool
}

// WithShift attaches datum shift parameters.
func WithShift(shift Renderer) DatumOption {
	return func(c *datumConfig) {
		c.shift = shift
		c.shiftSet = true
	}
}

// NewDatum builds a datum owning ellps.
func NewDatum(name catalog.Datum, ellps Ellipsoid, opts ...DatumOption) (Datum, error) {
	if ellps.IsZero() {
		return Datum{}, missing("datum ellipsoid")
	}
	var c datumConfig
	for _, opt := range opts {
		opt(&c)
	}
	if c.shiftSet && absent(c.shift) {
		return Datum{}, missing("datum shift")
	}
	return Datum{name: name, ellipsoid: ellps, shift: c.shift}, nil
}

// Name returns the catalog entry.
func (d Datum) Name() catalog.Datum { return d.name }

// Ellipsoid returns the datum's ellipsoid.
func (d Datum) Ellipsoid() Ellipsoid { return d.ellipsoid }

// Shift returns the datum shift, if the datum has one.
func (d Datum) Shift() (Renderer, bool) {
	return d.shift, d.shift != nil
}

// IsZero reports whether d was never constructed.
func (d Datum) IsZero() bool { return d.ellipsoid.IsZero() }

// Render spells the datum in g.
func (d Datum) Render(g grammar.Grammar) string {
	if g == grammar.Proj4 {
		return d.proj4()
	}
	return d.wkt(g)
}

// A +datum alias stands for an ellipsoid plus a shift. It is only written
// when the datum has a PROJ name and no explicit shift overrides it;
// otherwise the ellipsoid is spelled out.
func (d Datum) proj4() string {
	ellps := d.ellipsoid.proj4()
	if shift, ok := d.Shift(); ok {
		return grammar.JoinProj(ellps, shift.Render(grammar.Proj4))
	}
	switch {
	case d.name.Kind() == catalog.KindUnknown:
		return ellps
	case !d.name.HasProj4():
		return ellps
	default:
		return grammar.JoinProj(grammar.ProjToken("datum", d.name.Proj4), ellps)
	}
}

func (d Datum) wkt(g grammar.Grammar) string {
	args := []string{grammar.Quote(d.name.For(g)), d.ellipsoid.wkt(g)}
	if shift, ok := d.Shift(); ok {
		args = append(args, shift.Render(g))
	}
	return grammar.Node("DATUM", args...)
}
