package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pspoerri/geocrs/internal/grammar"
)

func TestUnknownSentinels(t *testing.T) {
	assert.Equal(t, KindUnknown, UnknownEllipsoid.Kind())
	assert.Equal(t, KindUnknown, UnknownDatum.Kind())
	assert.Equal(t, KindUnknown, UnknownMethod.Kind())
	assert.False(t, UnknownEllipsoid.HasDefaults())
	assert.False(t, UnknownDatum.HasProj4())

	// Unknown still has display text in both WKT dialects.
	assert.Equal(t, "Unknown", UnknownDatum.For(grammar.OGCWKT))
	assert.Equal(t, "Unknown", UnknownDatum.For(grammar.ESRIWKT))
	assert.Equal(t, "", UnknownDatum.For(grammar.Proj4))
}

func TestIdentForUnknownGrammar(t *testing.T) {
	assert.Equal(t, "", WGS84Datum.For(grammar.Grammar(9)))
	assert.Equal(t, "", East.For(grammar.Grammar(9)))
	assert.Equal(t, "WGS_1984", WGS84Datum.For(grammar.OGCWKT))
}

func TestZeroValueIsUnknown(t *testing.T) {
	var e Ellipsoid
	assert.Equal(t, KindUnknown, e.Kind())
	assert.Equal(t, "unknown", e.Kind().String())
	assert.Equal(t, "named", WGS84Ellipsoid.Kind().String())
}

func TestTablesAreNamed(t *testing.T) {
	for _, e := range Ellipsoids {
		if e.Name == UnknownEllipsoid.Name {
			continue
		}
		assert.Equal(t, KindNamed, e.Kind(), e.Name)
		assert.NotEmpty(t, e.OGC, e.Name)
		assert.NotEmpty(t, e.ESRI, e.Name)
		assert.Greater(t, e.SemiMajorAxis, 6e6, e.Name)
	}
	for _, d := range Datums {
		if d.Name == UnknownDatum.Name {
			continue
		}
		assert.Equal(t, KindNamed, d.Kind(), d.Name)
		assert.Equal(t, KindNamed, d.Ellipsoid.Kind(), d.Name)
	}
	for _, m := range Methods {
		if m.Name == UnknownMethod.Name {
			continue
		}
		assert.Equal(t, KindNamed, m.Kind(), m.Name)
		assert.True(t, m.HasProj4(), m.Name)
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name   string
		lookup func(string) (string, bool)
		in     string
		want   string
	}{
		{"ellipsoid by catalog name", ellipsoidName, "WGS84", "WGS84"},
		{"ellipsoid by proj4 id", ellipsoidName, "clrk66", "Clarke1866"},
		{"ellipsoid by esri id", ellipsoidName, "Krasovsky_1940", "Krassowsky1940"},
		{"ellipsoid case insensitive", ellipsoidName, "grs_1980", "GRS80"},
		{"ellipsoid unknown", ellipsoidName, "unknown", "Unknown"},
		{"datum by esri id", datumName, "D_North_American_1983", "NAD83"},
		{"datum by ogc id", datumName, "OSGB_1936", "OSGB36"},
		{"datum with plus", datumName, "CH1903+", "CH1903+"},
		{"method by proj4 id", methodName, "tmerc", "TransverseMercator"},
		{"method by esri id", methodName, "Albers", "AlbersEqualArea"},
		{"param by proj4 key", paramName, "+lon_0", "lon_0"},
		{"param by esri name", paramName, "False_Easting", "x_0"},
		{"meridian", meridianName, "paris", "Paris"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.lookup(tt.in)
			require.True(t, ok, "lookup(%q) failed", tt.in)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := LookupDatum("Atlantis_1900")
	assert.False(t, ok)
	_, ok = LookupMethod("")
	assert.False(t, ok)
}

func TestLookupUnits(t *testing.T) {
	u, ok := LookupLinearUnit("Meter")
	require.True(t, ok)
	assert.Equal(t, Metre, u)

	u, ok = LookupLinearUnit("Foot_US")
	require.True(t, ok)
	assert.Equal(t, USSurveyFoot, u)

	u, ok = LookupAngularUnit("Degree")
	require.True(t, ok)
	assert.Equal(t, Degree, u)

	_, ok = LookupAngularUnit("metre")
	assert.False(t, ok)
}

func TestDirections(t *testing.T) {
	tests := []struct {
		d     Direction
		proj4 string
		wkt   string
	}{
		{East, "e", "EAST"},
		{West, "w", "WEST"},
		{North, "n", "NORTH"},
		{South, "s", "SOUTH"},
	}
	for _, tt := range tests {
		assert.True(t, tt.d.Valid())
		assert.Equal(t, tt.proj4, tt.d.For(grammar.Proj4))
		assert.Equal(t, tt.wkt, tt.d.For(grammar.OGCWKT))
		assert.Equal(t, tt.wkt, tt.d.For(grammar.ESRIWKT))

		parsed, ok := ParseDirection(tt.proj4)
		require.True(t, ok)
		assert.Equal(t, tt.d, parsed)
		parsed, ok = ParseDirection(tt.d.String())
		require.True(t, ok)
		assert.Equal(t, tt.d, parsed)
	}

	var zero Direction
	assert.False(t, zero.Valid())
	assert.Equal(t, "invalid", zero.String())
	_, ok := ParseDirection("up")
	assert.False(t, ok)
}

func ellipsoidName(s string) (string, bool) {
	e, ok := LookupEllipsoid(s)
	return e.Name, ok
}

func datumName(s string) (string, bool) {
	d, ok := LookupDatum(s)
	return d.Name, ok
}

func methodName(s string) (string, bool) {
	m, ok := LookupMethod(s)
	return m.Name, ok
}

func paramName(s string) (string, bool) {
	p, ok := LookupParam(s)
	return p.Name, ok
}

func meridianName(s string) (string, bool) {
	p, ok := LookupPrimeMeridian(s)
	return p.Name, ok
}
