package catalog

// Datum is a named datum and the ellipsoid it is normally paired with.
type Datum struct {
	Name string
	Ident
	Ellipsoid Ellipsoid
	kind      Kind
}

// NewDatum creates a named datum entry that is not part of the built-in table.
func NewDatum(name string, id Ident, ellps Ellipsoid) Datum {
	return Datum{Name: name, Ident: id, Ellipsoid: ellps, kind: KindNamed}
}

// Kind reports whether d is the Unknown sentinel.
func (d Datum) Kind() Kind { return d.kind }

func (d Datum) key() string  { return d.Name }
func (d Datum) ident() Ident { return d.Ident }

var (
	UnknownDatum = Datum{
		Name:      "Unknown",
		Ident:     Ident{OGC: "Unknown", ESRI: "Unknown"},
		Ellipsoid: UnknownEllipsoid,
	}
	WGS84Datum = NewDatum("WGS84",
		Ident{Proj4: "WGS84", OGC: "WGS_1984", ESRI: "D_WGS_1984"}, WGS84Ellipsoid)
	NAD83 = NewDatum("NAD83",
		Ident{Proj4: "NAD83", OGC: "North_American_Datum_1983", ESRI: "D_North_American_1983"}, GRS80)
	NAD27 = NewDatum("NAD27",
		Ident{Proj4: "NAD27", OGC: "North_American_Datum_1927", ESRI: "D_North_American_1927"}, Clarke1866)
	ETRS89 = NewDatum("ETRS89",
		Ident{OGC: "European_Terrestrial_Reference_System_1989", ESRI: "D_ETRS_1989"}, GRS80)
	CH1903 = NewDatum("CH1903",
		Ident{OGC: "CH1903", ESRI: "D_CH1903"}, Bessel1841)
	CH1903Plus = NewDatum("CH1903+",
		Ident{OGC: "CH1903+", ESRI: "D_CH1903+"}, Bessel1841)
	OSGB36 = NewDatum("OSGB36",
		Ident{Proj4: "OSGB36", OGC: "OSGB_1936", ESRI: "D_OSGB_1936"}, Airy1830)
	Pulkovo1942 = NewDatum("Pulkovo1942",
		Ident{OGC: "Pulkovo_1942", ESRI: "D_Pulkovo_1942"}, Krassowsky1940)
)

// Datums is the built-in datum table, Unknown last.
var Datums = []Datum{
	WGS84Datum,
	NAD83,
	NAD27,
	ETRS89,
	CH1903,
	CH1903Plus,
	OSGB36,
	Pulkovo1942,
	UnknownDatum,
}

// LookupDatum finds a datum by catalog name or any grammar identifier.
func LookupDatum(name string) (Datum, bool) {
	return lookup(Datums, name)
}
