// Package crs models a coordinate reference system as an immutable tree and
// renders it as a PROJ string, OGC WKT or ESRI WKT.
//
// Trees are built bottom-up through the New* constructors, which reject
// missing or malformed components. Once built, nothing in a tree changes and
// every Render call is a pure function of the tree, so trees can be rendered
// from any number of goroutines.
//
// Each component has one PROJ routine and one WKT routine; the two WKT
// dialects share structure and differ only in the identifiers the catalog
// hands back.
package crs

import "github.com/pspoerri/geocrs/internal/grammar"

// Renderer is a leaf parameter object that spells itself in every grammar:
// prime meridians, units, datum shifts and projection parameters.
type Renderer interface {
	Render(g grammar.Grammar) string
}

// zeroer is implemented by leaves whose zero value is not a usable component.
type zeroer interface {
	IsZero() bool
}

// absent reports whether r is nil or an unconstructed zero value.
func absent(r Renderer) bool {
	if r == nil {
		return true
	}
	z, ok := r.(zeroer)
	return ok && z.IsZero()
}
