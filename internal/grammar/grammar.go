// Package grammar holds the three textual CRS exchange grammars and the
// low-level token syntax of each. Components never build PROJ tokens or WKT
// nodes by hand; they go through the helpers here so that one grammar's
// punctuation cannot end up in another's output.
package grammar

import (
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Grammar selects an output format.
type Grammar uint8

const (
	// Proj4 is the space separated +key=value PROJ parameter string.
	Proj4 Grammar = iota
	// OGCWKT is OGC Well-Known Text.
	OGCWKT
	// ESRIWKT is ESRI's Well-Known Text dialect. Same structure as OGCWKT,
	// different identifier strings.
	ESRIWKT
)

// All lists the grammars in their canonical order.
var All = []Grammar{Proj4, OGCWKT, ESRIWKT}

func (g Grammar) String() string {
	switch g {
	case Proj4:
		return "proj4"
	case OGCWKT:
		return "ogc"
	case ESRIWKT:
		return "esri"
	default:
		return "grammar(" + strconv.Itoa(int(g)) + ")"
	}
}

// IsWKT reports whether g is one of the bracketed WKT dialects.
func (g Grammar) IsWKT() bool {
	return g == OGCWKT || g == ESRIWKT
}

// Parse resolves a user supplied grammar name.
func Parse(s string) (Grammar, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "proj4", "proj", "proj.4":
		return Proj4, nil
	case "ogc", "ogcwkt", "ogc_wkt", "wkt":
		return OGCWKT, nil
	case "esri", "esriwkt", "esri_wkt":
		return ESRIWKT, nil
	default:
		return 0, errors.Newf("unknown grammar %q (want proj4, ogc or esri)", s)
	}
}

// FormatFloat renders v using the shortest representation that round-trips,
// always keeping a decimal point so 6378137 prints as 6378137.0. Very small
// and very large magnitudes switch to exponent notation (1e-05, 1e+16).
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
