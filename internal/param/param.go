// Package param holds the leaf parameter objects of a CRS tree: prime
// meridian, units, datum shift and projection parameters. Each renders
// itself in every grammar; the crs package treats them as opaque renderers.
package param

import (
	"github.com/pspoerri/geocrs/internal/catalog"
	"github.com/pspoerri/geocrs/internal/grammar"
)

// PrimeMeridian is the meridian at which longitude is zero.
type PrimeMeridian struct {
	Name      catalog.PrimeMeridian
	Longitude float64 // degrees east of Greenwich
}

// NewPrimeMeridian uses the catalog entry's longitude.
func NewPrimeMeridian(pm catalog.PrimeMeridian) PrimeMeridian {
	return PrimeMeridian{Name: pm, Longitude: pm.Longitude}
}

// Greenwich is the prime meridian of nearly every modern CRS.
func Greenwich() PrimeMeridian {
	return NewPrimeMeridian(catalog.Greenwich)
}

// IsZero reports whether p was built without a catalog entry.
func (p PrimeMeridian) IsZero() bool { return p.Name.Name == "" }

// Render spells p as +pm= or PRIMEM[...].
func (p PrimeMeridian) Render(g grammar.Grammar) string {
	if g == grammar.Proj4 {
		return p.proj4()
	}
	return p.wkt(g)
}

func (p PrimeMeridian) proj4() string {
	return grammar.ProjToken("pm", grammar.FormatFloat(p.Longitude))
}

func (p PrimeMeridian) wkt(g grammar.Grammar) string {
	return grammar.Node("PRIMEM", grammar.Quote(p.Name.For(g)), grammar.FormatFloat(p.Longitude))
}

// AngularUnit is the unit of a geographic CRS's coordinates.
type AngularUnit struct {
	Name           catalog.Unit
	RadiansPerUnit float64
}

// NewAngularUnit uses the catalog entry's conversion factor.
func NewAngularUnit(u catalog.Unit) AngularUnit {
	return AngularUnit{Name: u, RadiansPerUnit: u.Factor}
}

// Degrees is the usual angular unit.
func Degrees() AngularUnit {
	return NewAngularUnit(catalog.Degree)
}

// IsZero reports whether u was built without a catalog entry.
func (u AngularUnit) IsZero() bool { return u.Name.Name == "" }

// Render returns "" for PROJ: longlat input is always in degrees and PROJ
// has no angular unit token.
func (u AngularUnit) Render(g grammar.Grammar) string {
	if g == grammar.Proj4 {
		return ""
	}
	return u.wkt(g)
}

func (u AngularUnit) wkt(g grammar.Grammar) string {
	return grammar.Node("UNIT", grammar.Quote(u.Name.For(g)), grammar.FormatFloat(u.RadiansPerUnit))
}

// LinearUnit is the unit of a projected CRS's coordinates.
type LinearUnit struct {
	Name          catalog.Unit
	MetersPerUnit float64
}

// NewLinearUnit uses the catalog entry's conversion factor.
func NewLinearUnit(u catalog.Unit) LinearUnit {
	return LinearUnit{Name: u, MetersPerUnit: u.Factor}
}

// Metres is the usual linear unit.
func Metres() LinearUnit {
	return NewLinearUnit(catalog.Metre)
}

// IsZero reports whether u was built without a catalog entry.
func (u LinearUnit) IsZero() bool { return u.Name.Name == "" }

// Render spells u as +units=, +to_meter= or UNIT[...].
func (u LinearUnit) Render(g grammar.Grammar) string {
	if g == grammar.Proj4 {
		return u.proj4()
	}
	return u.wkt(g)
}

func (u LinearUnit) proj4() string {
	if !u.Name.HasProj4() {
		return grammar.ProjToken("to_meter", grammar.FormatFloat(u.MetersPerUnit))
	}
	return grammar.ProjToken("units", u.Name.Proj4)
}

func (u LinearUnit) wkt(g grammar.Grammar) string {
	return grammar.Node("UNIT", grammar.Quote(u.Name.For(g)), grammar.FormatFloat(u.MetersPerUnit))
}

// Parameter is one positional projection parameter.
type Parameter struct {
	Name  catalog.Param
	Value float64
}

// New pairs a catalog parameter with its value.
func New(name catalog.Param, value float64) Parameter {
	return Parameter{Name: name, Value: value}
}

// IsZero reports whether p was built without a catalog parameter.
func (p Parameter) IsZero() bool { return p.Name.Name == "" }

// Render spells p as +key=value or PARAMETER[...].
func (p Parameter) Render(g grammar.Grammar) string {
	if g == grammar.Proj4 {
		return p.proj4()
	}
	return p.wkt(g)
}

func (p Parameter) proj4() string {
	return grammar.ProjToken(p.Name.Proj4, grammar.FormatFloat(p.Value))
}

func (p Parameter) wkt(g grammar.Grammar) string {
	return grammar.Node("PARAMETER", grammar.Quote(p.Name.For(g)), grammar.FormatFloat(p.Value))
}
