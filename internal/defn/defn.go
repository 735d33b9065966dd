// Package defn decodes CRS definition documents written in TOML or YAML and
// builds them into crs trees. Components are named by catalog identifier in
// any grammar; numbers override catalog defaults.
package defn

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// ErrUnknownName is returned when a document names a catalog entry that
// does not exist.
var ErrUnknownName = errors.New("unknown name")

// Format is the encoding of a definition document.
type Format int

const (
	TOML Format = iota + 1
	YAML
)

func (f Format) String() string {
	switch f {
	case TOML:
		return "toml"
	case YAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return 0, errors.Newf("cannot infer definition format from %q", path)
	}
}

// Definition is a decoded document. A nil Projection describes a
// geographic CRS.
type Definition struct {
	Name       string      `toml:"name" yaml:"name"`
	GeogCS     GeogCS      `toml:"geogcs" yaml:"geogcs"`
	Projection *Projection `toml:"projection" yaml:"projection"`
}

// GeogCS describes the geographic part. Empty names fall back to defaults:
// the datum's ellipsoid, Greenwich and degrees.
type GeogCS struct {
	Name          string    `toml:"name" yaml:"name"`
	Datum         string    `toml:"datum" yaml:"datum"`
	Ellipsoid     string    `toml:"ellipsoid" yaml:"ellipsoid"`
	SemiMajorAxis *float64  `toml:"semimajor_axis" yaml:"semimajor_axis"`
	InvFlattening *float64  `toml:"inverse_flattening" yaml:"inverse_flattening"`
	ToWGS84       []float64 `toml:"towgs84" yaml:"towgs84"`
	PrimeMeridian string    `toml:"prime_meridian" yaml:"prime_meridian"`
	AngularUnit   string    `toml:"angular_unit" yaml:"angular_unit"`
	Axes          []string  `toml:"axes" yaml:"axes"`
}

// Projection describes the projected part. The unit defaults to metres.
type Projection struct {
	Method     string      `toml:"method" yaml:"method"`
	Unit       string      `toml:"unit" yaml:"unit"`
	Axes       []string    `toml:"axes" yaml:"axes"`
	Parameters []Parameter `toml:"parameters" yaml:"parameters"`
}

// Parameter is one projection parameter, in document order.
type Parameter struct {
	Name  string  `toml:"name" yaml:"name"`
	Value float64 `toml:"value" yaml:"value"`
}

// Decode reads a document. Keys that do not belong to the schema are
// rejected so that typos do not silently fall back to defaults.
func Decode(r io.Reader, format Format) (Definition, error) {
	var d Definition
	switch format {
	case TOML:
		md, err := toml.NewDecoder(r).Decode(&d)
		if err != nil {
			return Definition{}, errors.Wrap(err, "decoding TOML definition")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Definition{}, errors.Newf("unknown key %q in TOML definition", undecoded[0].String())
		}
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&d); err != nil {
			return Definition{}, errors.Wrap(err, "decoding YAML definition")
		}
	default:
		return Definition{}, errors.Newf("unsupported definition format %s", format)
	}
	return d, nil
}

// Load reads the document at path, inferring the format from its extension.
func Load(path string) (Definition, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Definition{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return Definition{}, errors.Wrap(err, "opening definition")
	}
	defer f.Close()

	d, err := Decode(f, format)
	if err != nil {
		return Definition{}, errors.Wrapf(err, "%s", path)
	}
	return d, nil
}
