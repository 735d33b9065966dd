package catalog

import (
	"strings"

	"github.com/pspoerri/geocrs/internal/grammar"
)

// Direction is the compass sense in which a coordinate axis increases.
// The zero value is not a valid direction.
type Direction uint8

const (
	East Direction = iota + 1
	West
	North
	South
)

// Directions lists the valid directions.
var Directions = []Direction{East, West, North, South}

var directionIdents = map[Direction]Ident{
	East:  {Proj4: "e", OGC: "EAST", ESRI: "EAST"},
	West:  {Proj4: "w", OGC: "WEST", ESRI: "WEST"},
	North: {Proj4: "n", OGC: "NORTH", ESRI: "NORTH"},
	South: {Proj4: "s", OGC: "SOUTH", ESRI: "SOUTH"},
}

// Valid reports whether d is one of the four compass directions.
func (d Direction) Valid() bool {
	_, ok := directionIdents[d]
	return ok
}

// Ident returns the direction's spelling in each grammar.
func (d Direction) Ident() Ident {
	return directionIdents[d]
}

// For returns the direction's spelling in g.
func (d Direction) For(g grammar.Grammar) string {
	return d.Ident().For(g)
}

func (d Direction) String() string {
	if !d.Valid() {
		return "invalid"
	}
	return strings.ToLower(d.Ident().OGC)
}

// ParseDirection accepts the full name or the one letter PROJ form.
func ParseDirection(s string) (Direction, bool) {
	s = strings.TrimSpace(s)
	for _, d := range Directions {
		id := d.Ident()
		if strings.EqualFold(s, id.OGC) || strings.EqualFold(s, id.Proj4) {
			return d, true
		}
	}
	return 0, false
}
