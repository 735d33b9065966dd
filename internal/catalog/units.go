package catalog

import "strings"

// Unit is an angular or linear unit. Factor converts one unit to the base
// unit: radians for angular units, metres for linear units.
type Unit struct {
	Name string
	Ident
	Factor float64
}

func (u Unit) key() string  { return u.Name }
func (u Unit) ident() Ident { return u.Ident }

var (
	Degree = Unit{Name: "degree", Ident: Ident{Proj4: "degrees", OGC: "degree", ESRI: "Degree"}, Factor: 0.017453292519943295}
	Radian = Unit{Name: "radian", Ident: Ident{Proj4: "radians", OGC: "radian", ESRI: "Radian"}, Factor: 1.0}
	Grad   = Unit{Name: "grad", Ident: Ident{Proj4: "grad", OGC: "grad", ESRI: "Grad"}, Factor: 0.015707963267948967}

	Metre        = Unit{Name: "metre", Ident: Ident{Proj4: "m", OGC: "metre", ESRI: "Meter"}, Factor: 1.0}
	Kilometre    = Unit{Name: "kilometre", Ident: Ident{Proj4: "km", OGC: "kilometre", ESRI: "Kilometer"}, Factor: 1000.0}
	Foot         = Unit{Name: "foot", Ident: Ident{Proj4: "ft", OGC: "foot", ESRI: "Foot"}, Factor: 0.3048}
	USSurveyFoot = Unit{Name: "us-ft", Ident: Ident{Proj4: "us-ft", OGC: "US survey foot", ESRI: "Foot_US"}, Factor: 0.3048006096012192}
	// PROJ has no unit name for the Clarke foot; it is written as +to_meter.
	ClarkeFoot = Unit{Name: "clarke-ft", Ident: Ident{OGC: "Clarke's foot", ESRI: "Foot_Clarke"}, Factor: 0.3047972654}
)

// AngularUnits and LinearUnits are the built-in unit tables.
var (
	AngularUnits = []Unit{Degree, Radian, Grad}
	LinearUnits  = []Unit{Metre, Kilometre, Foot, USSurveyFoot, ClarkeFoot}
)

// LookupAngularUnit finds an angular unit by name.
func LookupAngularUnit(name string) (Unit, bool) {
	return lookup(AngularUnits, name)
}

// LookupLinearUnit finds a linear unit by name. "meter" is accepted for metre.
func LookupLinearUnit(name string) (Unit, bool) {
	if strings.EqualFold(strings.TrimSpace(name), "meter") {
		return Metre, true
	}
	return lookup(LinearUnits, name)
}
