package crs

import "github.com/pspoerri/geocrs/internal/grammar"

// GeogCS is a geographic (longitude/latitude) coordinate system.
type GeogCS struct {
	name          string
	datum         Datum
	primeMeridian Renderer
	angularUnit   Renderer
	axes          Axes
}

// NewGeogCS builds a geographic CRS. The name is for humans only.
func NewGeogCS(name string, datum Datum, primeMeridian, angularUnit Renderer, opts ...AxisOption) (GeogCS, error) {
	switch {
	case datum.IsZero():
		return GeogCS{}, missing("geogcs datum")
	case absent(primeMeridian):
		return GeogCS{}, missing("geogcs prime meridian")
	case absent(angularUnit):
		return GeogCS{}, missing("geogcs angular unit")
	}
	axes, err := resolveAxes(opts)
	if err != nil {
		return GeogCS{}, err
	}
	return GeogCS{
		name:          name,
		datum:         datum,
		primeMeridian: primeMeridian,
		angularUnit:   angularUnit,
		axes:          axes,
	}, nil
}

// Name returns the system's display name.
func (g GeogCS) Name() string { return g.name }

// Datum returns the datum.
func (g GeogCS) Datum() Datum { return g.datum }

// PrimeMeridian returns the prime meridian.
func (g GeogCS) PrimeMeridian() Renderer { return g.primeMeridian }

// AngularUnit returns the unit of longitude and latitude.
func (g GeogCS) AngularUnit() Renderer { return g.angularUnit }

// Axes returns the longitude and latitude axis directions.
func (g GeogCS) Axes() Axes { return g.axes }

// IsZero reports whether g was never constructed.
func (g GeogCS) IsZero() bool { return g.datum.IsZero() }

// Render spells the geographic system in gr.
func (g GeogCS) Render(gr grammar.Grammar) string {
	if gr == grammar.Proj4 {
		return g.proj4()
	}
	return g.wkt(gr)
}

// PROJ's +axis only applies to the projected system, so it is not written here.
func (g GeogCS) proj4() string {
	return grammar.JoinProj(
		g.datum.proj4(),
		g.primeMeridian.Render(grammar.Proj4),
		g.angularUnit.Render(grammar.Proj4),
	)
}

func (g GeogCS) wkt(gr grammar.Grammar) string {
	return grammar.Node("GEOGCS",
		grammar.Quote(g.name),
		g.datum.wkt(gr),
		g.primeMeridian.Render(gr),
		g.angularUnit.Render(gr),
		axisNode("Lon", g.axes[0], gr),
		axisNode("Lat", g.axes[1], gr),
	)
}
