package defn

import (
	"github.com/cockroachdb/errors"

	"github.com/pspoerri/geocrs/internal/catalog"
	"github.com/pspoerri/geocrs/internal/crs"
	"github.com/pspoerri/geocrs/internal/param"
)

// Build resolves every name against the catalog and constructs the CRS.
func (d Definition) Build() (crs.CRS, error) {
	geog, err := d.GeogCS.build(d.Name)
	if err != nil {
		return crs.CRS{}, errors.Wrap(err, "geogcs")
	}
	if d.Projection == nil {
		return crs.NewGeographic(geog)
	}
	proj, err := d.Projection.build(d.Name, geog)
	if err != nil {
		return crs.CRS{}, errors.Wrap(err, "projection")
	}
	return crs.NewProjected(proj)
}

func (g GeogCS) build(fallbackName string) (crs.GeogCS, error) {
	if g.Datum == "" {
		return crs.GeogCS{}, errors.Wrap(crs.ErrMissingComponent, "datum")
	}
	datum, ok := catalog.LookupDatum(g.Datum)
	if !ok {
		return crs.GeogCS{}, unknown("datum", g.Datum)
	}

	ellpsName := datum.Ellipsoid
	if g.Ellipsoid != "" {
		if ellpsName, ok = catalog.LookupEllipsoid(g.Ellipsoid); !ok {
			return crs.GeogCS{}, unknown("ellipsoid", g.Ellipsoid)
		}
	}
	var ellpsOpts []crs.EllipsoidOption
	if g.SemiMajorAxis != nil {
		ellpsOpts = append(ellpsOpts, crs.WithSemiMajorAxis(*g.SemiMajorAxis))
	}
	if g.InvFlattening != nil {
		ellpsOpts = append(ellpsOpts, crs.WithInvFlattening(*g.InvFlattening))
	}
	ellps, err := crs.NewEllipsoid(ellpsName, ellpsOpts...)
	if err != nil {
		return crs.GeogCS{}, err
	}

	var datumOpts []crs.DatumOption
	if g.ToWGS84 != nil {
		shift, err := param.NewDatumShift(g.ToWGS84...)
		if err != nil {
			return crs.GeogCS{}, err
		}
		datumOpts = append(datumOpts, crs.WithShift(shift))
	}
	dat, err := crs.NewDatum(datum, ellps, datumOpts...)
	if err != nil {
		return crs.GeogCS{}, err
	}

	pm := catalog.Greenwich
	if g.PrimeMeridian != "" {
		if pm, ok = catalog.LookupPrimeMeridian(g.PrimeMeridian); !ok {
			return crs.GeogCS{}, unknown("prime meridian", g.PrimeMeridian)
		}
	}
	unit := catalog.Degree
	if g.AngularUnit != "" {
		if unit, ok = catalog.LookupAngularUnit(g.AngularUnit); !ok {
			return crs.GeogCS{}, unknown("angular unit", g.AngularUnit)
		}
	}
	axes, err := axisOptions(g.Axes)
	if err != nil {
		return crs.GeogCS{}, err
	}

	name := g.Name
	if name == "" {
		name = fallbackName
	}
	return crs.NewGeogCS(name, dat, param.NewPrimeMeridian(pm), param.NewAngularUnit(unit), axes...)
}

func (p Projection) build(name string, base crs.GeogCS) (crs.ProjCS, error) {
	method := catalog.UnknownMethod
	if p.Method != "" {
		var ok bool
		if method, ok = catalog.LookupMethod(p.Method); !ok {
			return crs.ProjCS{}, unknown("method", p.Method)
		}
	}

	params := make([]crs.Renderer, 0, len(p.Parameters))
	for _, dp := range p.Parameters {
		id, ok := catalog.LookupParam(dp.Name)
		if !ok {
			return crs.ProjCS{}, unknown("parameter", dp.Name)
		}
		params = append(params, param.New(id, dp.Value))
	}

	unit := catalog.Metre
	if p.Unit != "" {
		var ok bool
		if unit, ok = catalog.LookupLinearUnit(p.Unit); !ok {
			return crs.ProjCS{}, unknown("unit", p.Unit)
		}
	}
	axes, err := axisOptions(p.Axes)
	if err != nil {
		return crs.ProjCS{}, err
	}
	return crs.NewProjCS(name, base, crs.NewProjection(method), params, param.NewLinearUnit(unit), axes...)
}

func axisOptions(names []string) ([]crs.AxisOption, error) {
	switch len(names) {
	case 0:
		return nil, nil
	case 2:
	default:
		return nil, errors.Wrapf(crs.ErrInvalidAxis, "want 2 axes, got %d", len(names))
	}
	var dirs [2]catalog.Direction
	for i, n := range names {
		d, ok := catalog.ParseDirection(n)
		if !ok {
			return nil, unknown("axis direction", n)
		}
		dirs[i] = d
	}
	return []crs.AxisOption{crs.WithAxes(dirs[0], dirs[1])}, nil
}

func unknown(what, name string) error {
	return errors.Wrapf(ErrUnknownName, "%s %q", what, name)
}
