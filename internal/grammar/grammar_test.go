package grammar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"integral", 6378137, "6378137.0"},
		{"inverse flattening", 298.257223563, "298.257223563"},
		{"zero", 0, "0.0"},
		{"negative zero", math.Copysign(0, -1), "-0.0"},
		{"negative", -74.5, "-74.5"},
		{"degree in radians", 0.017453292519943295, "0.017453292519943295"},
		{"small", 0.00001, "1e-05"},
		{"small mantissa", 0.000015, "1.5e-05"},
		{"threshold", 0.0001, "0.0001"},
		{"large", 1e16, "1e+16"},
		{"nan", math.NaN(), "nan"},
		{"inf", math.Inf(1), "inf"},
		{"-inf", math.Inf(-1), "-inf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFloat(tt.in))
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Grammar
	}{
		{"proj4", Proj4},
		{"PROJ", Proj4},
		{"ogc", OGCWKT},
		{" wkt ", OGCWKT},
		{"esri", ESRIWKT},
		{"ESRI_WKT", ESRIWKT},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := Parse("geojson")
	assert.Error(t, err)
}

func TestGrammarString(t *testing.T) {
	for _, g := range All {
		parsed, err := Parse(g.String())
		require.NoError(t, err)
		assert.Equal(t, g, parsed)
	}
	assert.Equal(t, "grammar(9)", Grammar(9).String())
	assert.False(t, Proj4.IsWKT())
	assert.True(t, OGCWKT.IsWKT())
	assert.True(t, ESRIWKT.IsWKT())
}

func TestJoinProj(t *testing.T) {
	assert.Equal(t, "+a=1 +b=2", JoinProj("+a=1", "", "+b=2", ""))
	assert.Equal(t, "", JoinProj("", ""))
	assert.Equal(t, "+proj=merc", JoinProj(ProjToken("proj", "merc")))
	assert.Equal(t, "+no_defs", ProjFlag("no_defs"))
}

func TestNode(t *testing.T) {
	assert.Equal(t, `PRIMEM["Greenwich", 0.0]`, Node("PRIMEM", Quote("Greenwich"), FormatFloat(0)))
	assert.Equal(t, `AXIS["X", EAST]`, Node("AXIS", Quote("X"), "EAST"))
	assert.Equal(t, `"say ""hi"""`, Quote(`say "hi"`))
}
