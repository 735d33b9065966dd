package crs

import "github.com/pspoerri/geocrs/internal/grammar"

// Kind tells which root a CRS holds.
type Kind uint8

const (
	Geographic Kind = iota + 1
	Projected
)

func (k Kind) String() string {
	switch k {
	case Geographic:
		return "geographic"
	case Projected:
		return "projected"
	default:
		return "invalid"
	}
}

// CRS is the top of the tree: exactly one of a geographic or a projected
// system. Build it with NewGeographic or NewProjected.
type CRS struct {
	kind Kind
	geog GeogCS
	proj ProjCS
}

// NewGeographic wraps a geographic system.
func NewGeographic(g GeogCS) (CRS, error) {
	if g.IsZero() {
		return CRS{}, missing("crs geographic root")
	}
	return CRS{kind: Geographic, geog: g}, nil
}

// NewProjected wraps a projected system.
func NewProjected(p ProjCS) (CRS, error) {
	if p.IsZero() {
		return CRS{}, missing("crs projected root")
	}
	return CRS{kind: Projected, proj: p}, nil
}

// Kind returns the root kind. The zero CRS reports an invalid kind.
func (c CRS) Kind() Kind { return c.kind }

// Geographic returns the root if it is a geographic system.
func (c CRS) Geographic() (GeogCS, bool) {
	return c.geog, c.kind == Geographic
}

// Projected returns the root if it is a projected system.
func (c CRS) Projected() (ProjCS, bool) {
	return c.proj, c.kind == Projected
}

// Name returns the root's name.
func (c CRS) Name() string {
	switch c.kind {
	case Geographic:
		return c.geog.Name()
	case Projected:
		return c.proj.Name()
	default:
		return ""
	}
}

// Proj4 renders the PROJ string. +no_defs is always appended so PROJ does
// not merge in defaults from its init files.
func (c CRS) Proj4() string {
	switch c.kind {
	case Geographic:
		return grammar.JoinProj(grammar.ProjToken("proj", "longlat"), c.geog.proj4(), grammar.ProjFlag("no_defs"))
	case Projected:
		return grammar.JoinProj(c.proj.proj4(), grammar.ProjFlag("no_defs"))
	default:
		return ""
	}
}

// OGCWKT renders OGC Well-Known Text.
func (c CRS) OGCWKT() string {
	return c.wkt(grammar.OGCWKT)
}

// ESRIWKT renders ESRI Well-Known Text.
func (c CRS) ESRIWKT() string {
	return c.wkt(grammar.ESRIWKT)
}

// Render dispatches to Proj4, OGCWKT or ESRIWKT. Other grammars render "".
func (c CRS) Render(g grammar.Grammar) string {
	switch g {
	case grammar.Proj4:
		return c.Proj4()
	case grammar.OGCWKT:
		return c.OGCWKT()
	case grammar.ESRIWKT:
		return c.ESRIWKT()
	default:
		return ""
	}
}

func (c CRS) wkt(g grammar.Grammar) string {
	switch c.kind {
	case Geographic:
		return c.geog.wkt(g)
	case Projected:
		return c.proj.wkt(g)
	default:
		return ""
	}
}

// String returns the PROJ string.
func (c CRS) String() string {
	return c.Proj4()
}
