package geotiff

import (
	"github.com/cockroachdb/errors"

	"github.com/pspoerri/geocrs/internal/catalog"
	"github.com/pspoerri/geocrs/internal/crs"
	"github.com/pspoerri/geocrs/internal/epsg"
	"github.com/pspoerri/geocrs/internal/param"
)

// CRS builds the raster's coordinate reference system. An EPSG code is
// looked up in the registry. Without one, a geographic raster whose keys
// define an ellipsoid gets a geographic CRS on the Unknown datum, named by
// its citation.
func (k Keys) CRS() (crs.CRS, error) {
	if code := k.EPSG(); code != 0 {
		return epsg.Lookup(code)
	}

	a, rf, ok := k.Ellipsoid()
	switch {
	case k.ModelType == ModelProjected:
		return crs.CRS{}, errors.Wrapf(ErrNoCRS, "user-defined projected CRS %q", k.ProjCitation)
	case !ok:
		return crs.CRS{}, errors.Wrapf(ErrNoCRS, "model type %d", k.ModelType)
	}

	ellps, err := crs.NewEllipsoid(catalog.UnknownEllipsoid,
		crs.WithSemiMajorAxis(a), crs.WithInvFlattening(rf))
	if err != nil {
		return crs.CRS{}, err
	}
	datum, err := crs.NewDatum(catalog.UnknownDatum, ellps)
	if err != nil {
		return crs.CRS{}, err
	}
	name := k.GeogCitation
	if name == "" {
		name = k.Citation
	}
	if name == "" {
		name = "Unknown"
	}
	g, err := crs.NewGeogCS(name, datum, param.Greenwich(), param.Degrees())
	if err != nil {
		return crs.CRS{}, err
	}
	return crs.NewGeographic(g)
}
