package crs

import (
	"github.com/cockroachdb/errors"

	"github.com/pspoerri/geocrs/internal/grammar"
)

// ProjCS is a projected coordinate system. It owns its geographic base.
type ProjCS struct {
	name       string
	base       GeogCS
	projection Projection
	params     []Renderer
	linearUnit Renderer
	axes       Axes
}

// NewProjCS builds a projected CRS. params are positional: they are rendered
// in the order given, in every grammar. The slice is copied.
func NewProjCS(name string, base GeogCS, projection Projection, params []Renderer, linearUnit Renderer, opts ...AxisOption) (ProjCS, error) {
	switch {
	case base.IsZero():
		return ProjCS{}, missing("projcs geographic base")
	case absent(linearUnit):
		return ProjCS{}, missing("projcs linear unit")
	}
	for i, p := range params {
		if absent(p) {
			return ProjCS{}, errors.Wrapf(ErrMissingComponent, "projcs parameter %d", i)
		}
	}
	axes, err := resolveAxes(opts)
	if err != nil {
		return ProjCS{}, err
	}
	return ProjCS{
		name:       name,
		base:       base,
		projection: projection,
		params:     append([]Renderer(nil), params...),
		linearUnit: linearUnit,
		axes:       axes,
	}, nil
}

// Name returns the system's display name.
func (p ProjCS) Name() string { return p.name }

// GeogCS returns the geographic base.
func (p ProjCS) GeogCS() GeogCS { return p.base }

// Projection returns the projection method wrapper.
func (p ProjCS) Projection() Projection { return p.projection }

// LinearUnit returns the unit of the projected coordinates.
func (p ProjCS) LinearUnit() Renderer { return p.linearUnit }

// Axes returns the X and Y axis directions.
func (p ProjCS) Axes() Axes { return p.axes }

// Params returns a copy of the projection parameters in order.
func (p ProjCS) Params() []Renderer {
	return append([]Renderer(nil), p.params...)
}

// IsZero reports whether p was never constructed.
func (p ProjCS) IsZero() bool { return p.base.IsZero() }

// Render spells the projected system in g.
func (p ProjCS) Render(g grammar.Grammar) string {
	if g == grammar.Proj4 {
		return p.proj4()
	}
	return p.wkt(g)
}

func (p ProjCS) proj4() string {
	fragments := make([]string, 0, len(p.params)+4)
	fragments = append(fragments, p.projection.proj4(), p.base.proj4())
	for _, param := range p.params {
		fragments = append(fragments, param.Render(grammar.Proj4))
	}
	// +axis always takes three letters; the vertical axis is not modelled
	// and is always up.
	axis := p.axes[0].For(grammar.Proj4) + p.axes[1].For(grammar.Proj4) + "u"
	fragments = append(fragments, p.linearUnit.Render(grammar.Proj4), grammar.ProjToken("axis", axis))
	return grammar.JoinProj(fragments...)
}

func (p ProjCS) wkt(g grammar.Grammar) string {
	args := make([]string, 0, len(p.params)+6)
	args = append(args, grammar.Quote(p.name), p.base.wkt(g), p.projection.wkt(g))
	for _, param := range p.params {
		args = append(args, param.Render(g))
	}
	args = append(args,
		p.linearUnit.Render(g),
		axisNode("X", p.axes[0], g),
		axisNode("Y", p.axes[1], g),
	)
	return grammar.Node("PROJCS", args...)
}
