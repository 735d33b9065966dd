package param

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/pspoerri/geocrs/internal/grammar"
)

// ErrShiftArity is returned for a datum shift that is neither a three
// parameter translation nor a seven parameter Helmert transform.
var ErrShiftArity = errors.New("datum shift needs 3 or 7 values")

// DatumShift holds TOWGS84 parameters: dx, dy, dz in metres, optionally
// followed by rx, ry, rz in arc seconds and a scale difference in ppm.
type DatumShift struct {
	values []float64
}

// NewDatumShift copies values so the shift stays immutable.
func NewDatumShift(values ...float64) (DatumShift, error) {
	if len(values) != 3 && len(values) != 7 {
		return DatumShift{}, errors.Wrapf(ErrShiftArity, "got %d", len(values))
	}
	return DatumShift{values: append([]float64(nil), values...)}, nil
}

// Values returns a copy of the shift parameters.
func (s DatumShift) Values() []float64 {
	return append([]float64(nil), s.values...)
}

// IsZero reports whether s was not built by NewDatumShift.
func (s DatumShift) IsZero() bool { return len(s.values) == 0 }

// Render spells s as +towgs84= or TOWGS84[...].
func (s DatumShift) Render(g grammar.Grammar) string {
	if g == grammar.Proj4 {
		return s.proj4()
	}
	return s.wkt()
}

func (s DatumShift) proj4() string {
	return grammar.ProjToken("towgs84", strings.Join(s.formatted(), ","))
}

func (s DatumShift) wkt() string {
	return grammar.Node("TOWGS84", s.formatted()...)
}

func (s DatumShift) formatted() []string {
	out := make([]string, len(s.values))
	for i, v := range s.values {
		out[i] = grammar.FormatFloat(v)
	}
	return out
}
