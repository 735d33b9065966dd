package catalog

import "strings"

// PrimeMeridian is a named meridian and its longitude east of Greenwich in degrees.
type PrimeMeridian struct {
	Name string
	Ident
	Longitude float64
}

func (p PrimeMeridian) key() string  { return p.Name }
func (p PrimeMeridian) ident() Ident { return p.Ident }

func meridian(name string, longitude float64) PrimeMeridian {
	return PrimeMeridian{
		Name:      name,
		Ident:     Ident{Proj4: strings.ToLower(name), OGC: name, ESRI: name},
		Longitude: longitude,
	}
}

var (
	Greenwich = meridian("Greenwich", 0)
	Paris     = meridian("Paris", 2.33722917)
	Bern      = meridian("Bern", 7.439583333333333)
	Rome      = meridian("Rome", 12.452333333333332)
	Madrid    = meridian("Madrid", -3.687938888888889)
	Ferro     = meridian("Ferro", -17.666666666666668)
	Brussels  = meridian("Brussels", 4.367975)
	Oslo      = meridian("Oslo", 10.722916666666666)
	Athens    = meridian("Athens", 23.7163375)
	Lisbon    = meridian("Lisbon", -9.131906111111112)
	Jakarta   = meridian("Jakarta", 106.80771944444444)
	Bogota    = meridian("Bogota", -74.08091666666667)
	Stockholm = meridian("Stockholm", 18.05827777777778)
)

// PrimeMeridians is the built-in prime meridian table.
var PrimeMeridians = []PrimeMeridian{
	Greenwich, Paris, Bern, Rome, Madrid, Ferro, Brussels,
	Oslo, Athens, Lisbon, Jakarta, Bogota, Stockholm,
}

// LookupPrimeMeridian finds a prime meridian by name.
func LookupPrimeMeridian(name string) (PrimeMeridian, bool) {
	return lookup(PrimeMeridians, name)
}
