// Package catalog is the read-only reference data behind CRS rendering:
// named ellipsoids, datums, projection methods, prime meridians, units,
// projection parameters and axis directions, each carrying its identifier
// in every output grammar.
//
// Datums, ellipsoids and projection methods have a distinguished Unknown
// entry. Unknown is a real entry with its own display text, not a missing
// value; renderers switch on Kind to handle it.
package catalog

import (
	"strings"

	"github.com/pspoerri/geocrs/internal/grammar"
)

// Kind separates catalog entries from the Unknown sentinel. The zero value
// is KindUnknown, so an entry that was never filled in is never mistaken
// for a named one.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindNamed
)

func (k Kind) String() string {
	if k == KindNamed {
		return "named"
	}
	return "unknown"
}

// Ident is an entry's identifier in each grammar. Proj4 is empty when PROJ
// has no spelling for the entry.
type Ident struct {
	Proj4 string
	OGC   string
	ESRI  string
}

// For returns the identifier used by g, or "" for a grammar it does not know.
func (i Ident) For(g grammar.Grammar) string {
	switch g {
	case grammar.Proj4:
		return i.Proj4
	case grammar.OGCWKT:
		return i.OGC
	case grammar.ESRIWKT:
		return i.ESRI
	default:
		return ""
	}
}

// HasProj4 reports whether the entry can be named in a PROJ string.
func (i Ident) HasProj4() bool {
	return i.Proj4 != ""
}

func (i Ident) matches(name string) bool {
	for _, s := range [...]string{i.Proj4, i.OGC, i.ESRI} {
		if s != "" && strings.EqualFold(s, name) {
			return true
		}
	}
	return false
}

// entry is implemented by every table row so lookups can share one loop.
type entry interface {
	key() string
	ident() Ident
}

func lookup[T entry](table []T, name string) (T, bool) {
	name = strings.TrimSpace(name)
	for _, e := range table {
		if strings.EqualFold(e.key(), name) || e.ident().matches(name) {
			return e, true
		}
	}
	var zero T
	return zero, false
}
