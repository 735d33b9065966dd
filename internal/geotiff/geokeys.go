// Package geotiff reads the coordinate reference system keys of a GeoTIFF.
package geotiff

import (
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	// ErrNoGeoKeys is returned for TIFF files without a GeoKeyDirectory.
	ErrNoGeoKeys = errors.New("TIFF has no GeoKey directory")
	// ErrNoCRS is returned when the GeoKeys carry neither an EPSG code nor a
	// user-defined ellipsoid.
	ErrNoCRS = errors.New("GeoKeys carry no EPSG code or user-defined ellipsoid")
)

// GeoTIFF GeoKey IDs.
const (
	gkModelTypeGeoKey         = 1024
	gkRasterTypeGeoKey        = 1025
	gkCitationGeoKey          = 1026
	gkGeographicTypeGeoKey    = 2048
	gkGeogCitationGeoKey      = 2049
	gkGeogSemiMajorAxisGeoKey = 2057
	gkGeogInvFlatteningGeoKey = 2059
	gkProjectedCSTypeGeoKey   = 3072
	gkPCSCitationGeoKey       = 3073
)

// Model types.
const (
	ModelProjected  = 1
	ModelGeographic = 2
	ModelGeocentric = 3
)

// UserDefined marks a key whose value is given by other keys rather than
// an EPSG code.
const UserDefined = 32767

// Keys holds the CRS related GeoKeys of a GeoTIFF.
type Keys struct {
	ModelType      int
	RasterType     int
	GeographicType int // EPSG geographic CRS code
	ProjectedType  int // EPSG projected CRS code
	Citation       string
	GeogCitation   string
	ProjCitation   string
	SemiMajorAxis  float64 // user-defined ellipsoid, 0 when absent
	InvFlattening  float64

	hasSemiMajorAxis bool
	hasInvFlattening bool
}

// Ellipsoid returns the user-defined ellipsoid. ok is false unless both the
// semi-major axis and the inverse flattening keys are present.
func (k Keys) Ellipsoid() (semiMajorAxis, invFlattening float64, ok bool) {
	return k.SemiMajorAxis, k.InvFlattening, k.hasSemiMajorAxis && k.hasInvFlattening
}

// EPSG returns the EPSG code of the raster's CRS, or 0 if it has none.
// A projected code wins over the geographic code it is based on.
func (k Keys) EPSG() int {
	switch {
	case k.ProjectedType > 0 && k.ProjectedType != UserDefined:
		return k.ProjectedType
	case k.GeographicType > 0 && k.GeographicType != UserDefined:
		return k.GeographicType
	default:
		return 0
	}
}

// Open reads the GeoKeys of the TIFF file at path.
func Open(path string) (Keys, error) {
	f, err := os.Open(path)
	if err != nil {
		return Keys{}, errors.Wrap(err, "opening GeoTIFF")
	}
	defer f.Close()

	k, err := Parse(f)
	if err != nil {
		return Keys{}, errors.Wrapf(err, "%s", path)
	}
	return k, nil
}

// Parse reads the GeoKeys from a TIFF stream.
func Parse(r io.ReadSeeker) (Keys, error) {
	d, err := parseFirstIFD(r)
	if err != nil {
		return Keys{}, err
	}
	if len(d.GeoKeys) < 4 {
		return Keys{}, ErrNoGeoKeys
	}
	return parseKeys(d), nil
}

// parseKeys decodes the GeoKey directory. Each key is four shorts:
// [KeyID, TIFFTagLocation, Count, ValueOffset]. A location of 0 stores the
// value inline; otherwise the value lives in the named params tag.
func parseKeys(d ifd) Keys {
	var k Keys
	// Header: [KeyDirectoryVersion, KeyRevision, MinorRevision, NumberOfKeys]
	numKeys := int(d.GeoKeys[3])

	for i := 0; i < numKeys; i++ {
		base := 4 + i*4
		if base+3 >= len(d.GeoKeys) {
			break
		}
		keyID := d.GeoKeys[base]
		location := d.GeoKeys[base+1]
		count := int(d.GeoKeys[base+2])
		value := d.GeoKeys[base+3]

		switch keyID {
		case gkModelTypeGeoKey:
			k.ModelType = int(value)
		case gkRasterTypeGeoKey:
			k.RasterType = int(value)
		case gkGeographicTypeGeoKey:
			k.GeographicType = int(value)
		case gkProjectedCSTypeGeoKey:
			k.ProjectedType = int(value)
		case gkCitationGeoKey:
			k.Citation = asciiParam(d, location, int(value), count)
		case gkGeogCitationGeoKey:
			k.GeogCitation = asciiParam(d, location, int(value), count)
		case gkPCSCitationGeoKey:
			k.ProjCitation = asciiParam(d, location, int(value), count)
		case gkGeogSemiMajorAxisGeoKey:
			k.SemiMajorAxis, k.hasSemiMajorAxis = doubleParam(d, location, int(value))
		case gkGeogInvFlatteningGeoKey:
			k.InvFlattening, k.hasInvFlattening = doubleParam(d, location, int(value))
		}
	}
	return k
}

// ASCII params are '|' terminated strings packed into one tag.
func asciiParam(d ifd, location uint16, offset, count int) string {
	if location != tagGeoAsciiParamsTag || offset < 0 || offset+count > len(d.GeoAsciiParams) {
		return ""
	}
	s := d.GeoAsciiParams[offset : offset+count]
	return strings.TrimRight(s, "|\x00")
}

func doubleParam(d ifd, location uint16, offset int) (float64, bool) {
	if location != tagGeoDoubleParamsTag || offset < 0 || offset >= len(d.GeoDoubleParams) {
		return 0, false
	}
	return d.GeoDoubleParams[offset], true
}
