// Package epsg builds CRS trees for a fixed set of EPSG codes.
package epsg

import (
	"fmt"
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/pspoerri/geocrs/internal/catalog"
	"github.com/pspoerri/geocrs/internal/crs"
	"github.com/pspoerri/geocrs/internal/param"
)

// ErrUnsupported is returned for codes the registry cannot build.
var ErrUnsupported = errors.New("unsupported EPSG code")

type builder func() (crs.CRS, error)

var registry = map[int]builder{
	4326:  geographic("WGS 84", catalog.WGS84Datum),
	4269:  geographic("NAD83", catalog.NAD83),
	4267:  geographic("NAD27", catalog.NAD27),
	4258:  geographic("ETRS89", catalog.ETRS89),
	3857:  pseudoMercator,
	2056:  swiss("CH1903+ / LV95", catalog.CH1903Plus, []float64{674.374, 15.056, 405.346}, 2600000, 1200000),
	21781: swiss("CH1903 / LV03", catalog.CH1903, []float64{674.4, 15.1, 405.3}, 600000, 200000),
	27700: britishNationalGrid,
}

// UTM code ranges.
const (
	wgs84UTMNorth = 32600
	wgs84UTMSouth = 32700
	etrs89UTM     = 25800
)

// Lookup returns the CRS for an EPSG code.
func Lookup(code int) (crs.CRS, error) {
	if b, ok := registry[code]; ok {
		c, err := b()
		if err != nil {
			return crs.CRS{}, errors.Wrapf(err, "EPSG:%d", code)
		}
		return c, nil
	}

	switch {
	case code > wgs84UTMNorth && code <= wgs84UTMNorth+60:
		return utm("WGS 84", catalog.WGS84Datum, code-wgs84UTMNorth, false)
	case code > wgs84UTMSouth && code <= wgs84UTMSouth+60:
		return utm("WGS 84", catalog.WGS84Datum, code-wgs84UTMSouth, true)
	case code >= etrs89UTM+28 && code <= etrs89UTM+38:
		return utm("ETRS89", catalog.ETRS89, code-etrs89UTM, false)
	}
	return crs.CRS{}, errors.Wrapf(ErrUnsupported, "EPSG:%d", code)
}

// Supported reports whether Lookup can build code.
func Supported(code int) bool {
	_, err := Lookup(code)
	return err == nil
}

// Codes returns the individually registered codes in ascending order. UTM
// ranges are not expanded.
func Codes() []int {
	codes := make([]int, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}

func geographic(name string, datum catalog.Datum) builder {
	return func() (crs.CRS, error) {
		g, err := geogCS(name, datum)
		if err != nil {
			return crs.CRS{}, err
		}
		return crs.NewGeographic(g)
	}
}

func geogCS(name string, datum catalog.Datum, shift ...float64) (crs.GeogCS, error) {
	ellps, err := crs.NewEllipsoid(datum.Ellipsoid)
	if err != nil {
		return crs.GeogCS{}, err
	}
	var opts []crs.DatumOption
	if len(shift) > 0 {
		s, err := param.NewDatumShift(shift...)
		if err != nil {
			return crs.GeogCS{}, err
		}
		opts = append(opts, crs.WithShift(s))
	}
	d, err := crs.NewDatum(datum, ellps, opts...)
	if err != nil {
		return crs.GeogCS{}, err
	}
	return crs.NewGeogCS(name, d, param.Greenwich(), param.Degrees())
}

func projected(name string, base crs.GeogCS, method catalog.Method, params ...param.Parameter) (crs.CRS, error) {
	renderers := make([]crs.Renderer, len(params))
	for i, p := range params {
		renderers[i] = p
	}
	p, err := crs.NewProjCS(name, base, crs.NewProjection(method), renderers, param.Metres())
	if err != nil {
		return crs.CRS{}, err
	}
	return crs.NewProjected(p)
}

// Web Mercator projects WGS 84 coordinates as if they lay on a sphere, so
// the base system carries the sphere rather than the WGS 84 datum alias.
func pseudoMercator() (crs.CRS, error) {
	sphere, err := crs.NewEllipsoid(catalog.WebMercatorSphere)
	if err != nil {
		return crs.CRS{}, err
	}
	d, err := crs.NewDatum(catalog.UnknownDatum, sphere)
	if err != nil {
		return crs.CRS{}, err
	}
	base, err := crs.NewGeogCS("WGS 84", d, param.Greenwich(), param.Degrees())
	if err != nil {
		return crs.CRS{}, err
	}
	return projected("WGS 84 / Pseudo-Mercator", base, catalog.Mercator,
		param.New(catalog.CentralMeridian, 0),
		param.New(catalog.ScaleFactor, 1),
		param.New(catalog.FalseEasting, 0),
		param.New(catalog.FalseNorthing, 0),
	)
}

// Swiss oblique Mercator centred on the old observatory in Bern.
func swiss(name string, datum catalog.Datum, shift []float64, falseEasting, falseNorthing float64) builder {
	return func() (crs.CRS, error) {
		base, err := geogCS(datum.OGC, datum, shift...)
		if err != nil {
			return crs.CRS{}, err
		}
		return projected(name, base, catalog.SwissObliqueMercator,
			param.New(catalog.LatitudeOfOrigin, 46.95240555555556),
			param.New(catalog.CentralMeridian, 7.439583333333333),
			param.New(catalog.ScaleFactor, 1),
			param.New(catalog.FalseEasting, falseEasting),
			param.New(catalog.FalseNorthing, falseNorthing),
		)
	}
}

func britishNationalGrid() (crs.CRS, error) {
	base, err := geogCS("OSGB 1936", catalog.OSGB36,
		446.448, -125.157, 542.06, 0.15, 0.247, 0.842, -20.489)
	if err != nil {
		return crs.CRS{}, err
	}
	return projected("OSGB 1936 / British National Grid", base, catalog.TransverseMercator,
		param.New(catalog.LatitudeOfOrigin, 49),
		param.New(catalog.CentralMeridian, -2),
		param.New(catalog.ScaleFactor, 0.9996012717),
		param.New(catalog.FalseEasting, 400000),
		param.New(catalog.FalseNorthing, -100000),
	)
}

func utm(geogName string, datum catalog.Datum, zone int, south bool) (crs.CRS, error) {
	base, err := geogCS(geogName, datum)
	if err != nil {
		return crs.CRS{}, err
	}
	hemisphere, falseNorthing := "N", 0.0
	if south {
		hemisphere, falseNorthing = "S", 10000000.0
	}
	return projected(fmt.Sprintf("%s / UTM zone %d%s", geogName, zone, hemisphere), base, catalog.TransverseMercator,
		param.New(catalog.LatitudeOfOrigin, 0),
		param.New(catalog.CentralMeridian, float64(zone*6-183)),
		param.New(catalog.ScaleFactor, 0.9996),
		param.New(catalog.FalseEasting, 500000),
		param.New(catalog.FalseNorthing, falseNorthing),
	)
}
