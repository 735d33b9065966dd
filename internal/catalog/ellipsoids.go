package catalog

// Ellipsoid is a named earth-shape model with its default axis values.
type Ellipsoid struct {
	Name string
	Ident
	SemiMajorAxis float64
	InvFlattening float64
	kind          Kind
}

// NewEllipsoid creates a named ellipsoid entry that is not part of the
// built-in table.
func NewEllipsoid(name string, id Ident, semiMajorAxis, invFlattening float64) Ellipsoid {
	return Ellipsoid{Name: name, Ident: id, SemiMajorAxis: semiMajorAxis, InvFlattening: invFlattening, kind: KindNamed}
}

// Kind reports whether e is the Unknown sentinel.
func (e Ellipsoid) Kind() Kind { return e.kind }

// HasDefaults reports whether the entry supplies axis values. Unknown does not.
func (e Ellipsoid) HasDefaults() bool { return e.kind == KindNamed }

func (e Ellipsoid) key() string  { return e.Name }
func (e Ellipsoid) ident() Ident { return e.Ident }

var (
	UnknownEllipsoid = Ellipsoid{
		Name:  "Unknown",
		Ident: Ident{OGC: "Unknown", ESRI: "Unknown"},
	}
	WGS84Ellipsoid = NewEllipsoid("WGS84",
		Ident{Proj4: "WGS84", OGC: "WGS_1984", ESRI: "WGS_1984"}, 6378137.0, 298.257223563)
	GRS80 = NewEllipsoid("GRS80",
		Ident{Proj4: "GRS80", OGC: "GRS_1980", ESRI: "GRS_1980"}, 6378137.0, 298.257222101)
	Clarke1866 = NewEllipsoid("Clarke1866",
		Ident{Proj4: "clrk66", OGC: "Clarke_1866", ESRI: "Clarke_1866"}, 6378206.4, 294.9786982)
	Bessel1841 = NewEllipsoid("Bessel1841",
		Ident{Proj4: "bessel", OGC: "Bessel_1841", ESRI: "Bessel_1841"}, 6377397.155, 299.1528128)
	Airy1830 = NewEllipsoid("Airy1830",
		Ident{Proj4: "airy", OGC: "Airy_1830", ESRI: "Airy_1830"}, 6377563.396, 299.3249646)
	International1924 = NewEllipsoid("International1924",
		Ident{Proj4: "intl", OGC: "International_1924", ESRI: "International_1924"}, 6378388.0, 297.0)
	Krassowsky1940 = NewEllipsoid("Krassowsky1940",
		Ident{Proj4: "krass", OGC: "Krassowsky_1940", ESRI: "Krasovsky_1940"}, 6378245.0, 298.3)
	// Sphere used by Web Mercator. Inverse flattening 0 marks a sphere in WKT.
	WebMercatorSphere = NewEllipsoid("WebMercatorSphere",
		Ident{OGC: "Popular_Visualisation_Sphere", ESRI: "Sphere_Radius_6378137"}, 6378137.0, 0)
)

// Ellipsoids is the built-in ellipsoid table, Unknown last.
var Ellipsoids = []Ellipsoid{
	WGS84Ellipsoid,
	GRS80,
	Clarke1866,
	Bessel1841,
	Airy1830,
	International1924,
	Krassowsky1940,
	WebMercatorSphere,
	UnknownEllipsoid,
}

// LookupEllipsoid finds an ellipsoid by catalog name or any grammar identifier.
func LookupEllipsoid(name string) (Ellipsoid, bool) {
	return lookup(Ellipsoids, name)
}
