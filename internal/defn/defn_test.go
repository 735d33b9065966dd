package defn

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pspoerri/geocrs/internal/crs"
	"github.com/pspoerri/geocrs/internal/epsg"
	"github.com/pspoerri/geocrs/internal/grammar"
	"github.com/pspoerri/geocrs/internal/param"
)

func mustBuild(t *testing.T, doc string, format Format) crs.CRS {
	t.Helper()
	d, err := Decode(strings.NewReader(doc), format)
	require.NoError(t, err)
	c, err := d.Build()
	require.NoError(t, err)
	return c
}

func TestLoadTOML(t *testing.T) {
	d, err := Load(filepath.Join("testdata", "lcc.toml"))
	require.NoError(t, err)
	require.NotNil(t, d.Projection)
	assert.Len(t, d.Projection.Parameters, 6)

	c, err := d.Build()
	require.NoError(t, err)
	assert.Equal(t, crs.Projected, c.Kind())
	assert.Equal(t, "USA Contiguous Lambert Conformal Conic", c.Name())
	assert.Equal(t,
		"+proj=lcc +datum=WGS84 +ellps=WGS84 +a=6378137.0 +f=298.257223563 +pm=0.0 "+
			"+lat_1=33.0 +lat_2=45.0 +lat_0=39.0 +lon_0=-96.0 +x_0=0.0 +y_0=0.0 +units=m +axis=enu +no_defs",
		c.Proj4())
	assert.True(t, strings.HasPrefix(c.ESRIWKT(),
		`PROJCS["USA Contiguous Lambert Conformal Conic", GEOGCS["GCS_WGS_1984", `))
	assert.Contains(t, c.ESRIWKT(), `PROJECTION["Lambert_Conformal_Conic"], PARAMETER["Standard_Parallel_1", 33.0]`)
}

func TestLoadYAMLMatchesRegistry(t *testing.T) {
	d, err := Load(filepath.Join("testdata", "lv95.yaml"))
	require.NoError(t, err)
	got, err := d.Build()
	require.NoError(t, err)

	want, err := epsg.Lookup(2056)
	require.NoError(t, err)
	for _, g := range grammar.All {
		assert.Equal(t, want.Render(g), got.Render(g), g.String())
	}
}

func TestGeographic(t *testing.T) {
	c := mustBuild(t, `
name = "NAD27"
[geogcs]
datum = "North_American_Datum_1927"
`, TOML)
	assert.Equal(t, crs.Geographic, c.Kind())
	assert.Equal(t, "NAD27", c.Name())
	assert.Equal(t,
		"+proj=longlat +datum=NAD27 +ellps=clrk66 +a=6378206.4 +f=294.9786982 +pm=0.0 +no_defs",
		c.Proj4())
}

func TestOverrides(t *testing.T) {
	c := mustBuild(t, `
name: custom
geogcs:
  datum: unknown
  ellipsoid: unknown
  semimajor_axis: 6378000
  inverse_flattening: 300
  prime_meridian: paris
  angular_unit: grad
  axes: [north, east]
projection:
  method: merc
  unit: us-ft
  axes: [w, s]
`, YAML)
	assert.Equal(t,
		"+proj=merc +a=6378000.0 +f=300.0 +pm=2.33722917 +units=us-ft +axis=wsu +no_defs",
		c.Proj4())
	assert.Contains(t, c.OGCWKT(), `PRIMEM["Paris", 2.33722917], UNIT["grad", 0.015707963267948967], AXIS["Lon", NORTH], AXIS["Lat", EAST]]`)
	assert.Contains(t, c.OGCWKT(), `UNIT["US survey foot", 0.3048006096012192], AXIS["X", WEST], AXIS["Y", SOUTH]]`)
}

func TestUnknownProjectionMethod(t *testing.T) {
	c := mustBuild(t, `
[geogcs]
datum = "WGS84"
[projection]
unit = "metre"
`, TOML)
	assert.Equal(t, crs.Projected, c.Kind())
	assert.NotContains(t, c.Proj4(), "+proj=")
	assert.Contains(t, c.OGCWKT(), `PROJECTION["Unknown"]`)
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"missing datum", "[geogcs]\n", crs.ErrMissingComponent},
		{"unknown datum", "[geogcs]\ndatum = \"Atlantis\"\n", ErrUnknownName},
		{"unknown ellipsoid", "[geogcs]\ndatum = \"WGS84\"\nellipsoid = \"egg\"\n", ErrUnknownName},
		{"unknown ellipsoid without values", "[geogcs]\ndatum = \"unknown\"\n", crs.ErrUnknownEllipsoid},
		{"bad semi-major axis", "[geogcs]\ndatum = \"WGS84\"\nsemimajor_axis = -1.0\n", crs.ErrInvalidEllipsoid},
		{"unknown meridian", "[geogcs]\ndatum = \"WGS84\"\nprime_meridian = \"Atlantis\"\n", ErrUnknownName},
		{"unknown angular unit", "[geogcs]\ndatum = \"WGS84\"\nangular_unit = \"metre\"\n", ErrUnknownName},
		{"shift arity", "[geogcs]\ndatum = \"WGS84\"\ntowgs84 = [1.0, 2.0]\n", param.ErrShiftArity},
		{"axis count", "[geogcs]\ndatum = \"WGS84\"\naxes = [\"east\"]\n", crs.ErrInvalidAxis},
		{"axis name", "[geogcs]\ndatum = \"WGS84\"\naxes = [\"east\", \"up\"]\n", ErrUnknownName},
		{"unknown method", "[geogcs]\ndatum = \"WGS84\"\n[projection]\nmethod = \"fancy\"\n", ErrUnknownName},
		{"unknown unit", "[geogcs]\ndatum = \"WGS84\"\n[projection]\nunit = \"degree\"\n", ErrUnknownName},
		{"unknown parameter", "[geogcs]\ndatum = \"WGS84\"\n[projection]\n[[projection.parameters]]\nname = \"zoom\"\nvalue = 1.0\n", ErrUnknownName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Decode(strings.NewReader(tt.doc), TOML)
			require.NoError(t, err)
			_, err = d.Build()
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "err = %v", err)
		})
	}
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	_, err := Decode(strings.NewReader("[geogcs]\ndatum = \"WGS84\"\nelipsoid = \"GRS80\"\n"), TOML)
	assert.ErrorContains(t, err, "geogcs.elipsoid")

	_, err = Decode(strings.NewReader("geogcs:\n  datum: WGS84\n  elipsoid: GRS80\n"), YAML)
	assert.Error(t, err)

	_, err = Decode(strings.NewReader("name = \"x\"\n"), Format(0))
	assert.Error(t, err)
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"a.toml", TOML, false},
		{"dir/b.YAML", YAML, false},
		{"c.yml", YAML, false},
		{"d.json", 0, true},
		{"noext", 0, true},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if tt.wantErr {
			assert.Error(t, err, tt.path)
			continue
		}
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[geogcs\n"), 0o644))
	_, err = Load(bad)
	assert.ErrorContains(t, err, "bad.toml")
}
