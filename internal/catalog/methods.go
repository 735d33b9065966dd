package catalog

// Method is a projection method.
type Method struct {
	Name string
	Ident
	kind Kind
}

// NewMethod creates a named projection method outside the built-in table.
func NewMethod(name string, id Ident) Method {
	return Method{Name: name, Ident: id, kind: KindNamed}
}

// Kind reports whether m is the Unknown sentinel.
func (m Method) Kind() Kind { return m.kind }

func (m Method) key() string  { return m.Name }
func (m Method) ident() Ident { return m.Ident }

var (
	UnknownMethod = Method{Name: "Unknown", Ident: Ident{OGC: "Unknown", ESRI: "Unknown"}}

	Mercator = NewMethod("Mercator",
		Ident{Proj4: "merc", OGC: "Mercator_1SP", ESRI: "Mercator"})
	TransverseMercator = NewMethod("TransverseMercator",
		Ident{Proj4: "tmerc", OGC: "Transverse_Mercator", ESRI: "Transverse_Mercator"})
	LambertConformalConic = NewMethod("LambertConformalConic",
		Ident{Proj4: "lcc", OGC: "Lambert_Conformal_Conic_2SP", ESRI: "Lambert_Conformal_Conic"})
	AlbersEqualArea = NewMethod("AlbersEqualArea",
		Ident{Proj4: "aea", OGC: "Albers_Conic_Equal_Area", ESRI: "Albers"})
	SwissObliqueMercator = NewMethod("SwissObliqueMercator",
		Ident{Proj4: "somerc", OGC: "Hotine_Oblique_Mercator_Azimuth_Center", ESRI: "Hotine_Oblique_Mercator_Azimuth_Center"})
	PolarStereographic = NewMethod("PolarStereographic",
		Ident{Proj4: "stere", OGC: "Polar_Stereographic", ESRI: "Stereographic"})
	LambertAzimuthalEqualArea = NewMethod("LambertAzimuthalEqualArea",
		Ident{Proj4: "laea", OGC: "Lambert_Azimuthal_Equal_Area", ESRI: "Lambert_Azimuthal_Equal_Area"})
	Equirectangular = NewMethod("Equirectangular",
		Ident{Proj4: "eqc", OGC: "Equirectangular", ESRI: "Equidistant_Cylindrical"})
	Robinson = NewMethod("Robinson",
		Ident{Proj4: "robin", OGC: "Robinson", ESRI: "Robinson"})
	Sinusoidal = NewMethod("Sinusoidal",
		Ident{Proj4: "sinu", OGC: "Sinusoidal", ESRI: "Sinusoidal"})
	EquidistantConic = NewMethod("EquidistantConic",
		Ident{Proj4: "eqdc", OGC: "Equidistant_Conic", ESRI: "Equidistant_Conic"})
)

// Methods is the built-in projection method table, Unknown last.
var Methods = []Method{
	Mercator,
	TransverseMercator,
	LambertConformalConic,
	AlbersEqualArea,
	SwissObliqueMercator,
	PolarStereographic,
	LambertAzimuthalEqualArea,
	Equirectangular,
	Robinson,
	Sinusoidal,
	EquidistantConic,
	UnknownMethod,
}

// LookupMethod finds a projection method by catalog name or any grammar identifier.
func LookupMethod(name string) (Method, bool) {
	return lookup(Methods, name)
}
