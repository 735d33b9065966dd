package crs

import (
	"github.com/pspoerri/geocrs/internal/catalog"
	"github.com/pspoerri/geocrs/internal/grammar"
)

// Projection wraps a projection method.
type Projection struct {
	method catalog.Method
}

// NewProjection wraps method. The Unknown method is allowed.
func NewProjection(method catalog.Method) Projection {
	return Projection{method: method}
}

// Method returns the catalog entry.
func (p Projection) Method() catalog.Method { return p.method }

// Render spells the projection in g.
func (p Projection) Render(g grammar.Grammar) string {
	if g == grammar.Proj4 {
		return p.proj4()
	}
	return p.wkt(g)
}

// PROJ has no spelling for a method it does not know, so nothing is written.
func (p Projection) proj4() string {
	switch {
	case p.method.Kind() == catalog.KindUnknown:
		return ""
	case !p.method.HasProj4():
		return ""
	default:
		return grammar.ProjToken("proj", p.method.Proj4)
	}
}

func (p Projection) wkt(g grammar.Grammar) string {
	return grammar.Node("PROJECTION", grammar.Quote(p.method.For(g)))
}
