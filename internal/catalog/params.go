package catalog

// Param identifies a projection parameter. Proj4 holds the PROJ key without
// the leading "+".
type Param struct {
	Name string
	Ident
}

func (p Param) key() string  { return p.Name }
func (p Param) ident() Ident { return p.Ident }

func param(proj4, ogc, esri string) Param {
	return Param{Name: proj4, Ident: Ident{Proj4: proj4, OGC: ogc, ESRI: esri}}
}

var (
	LatitudeOfOrigin  = param("lat_0", "latitude_of_origin", "Latitude_Of_Origin")
	CentralMeridian   = param("lon_0", "central_meridian", "Central_Meridian")
	ScaleFactor       = param("k_0", "scale_factor", "Scale_Factor")
	FalseEasting      = param("x_0", "false_easting", "False_Easting")
	FalseNorthing     = param("y_0", "false_northing", "False_Northing")
	StandardParallel1 = param("lat_1", "standard_parallel_1", "Standard_Parallel_1")
	StandardParallel2 = param("lat_2", "standard_parallel_2", "Standard_Parallel_2")
	LatitudeTrueScale = param("lat_ts", "latitude_of_true_scale", "Latitude_Of_True_Scale")
	Azimuth           = param("alpha", "azimuth", "Azimuth")
	LongitudeOfCenter = param("lonc", "longitude_of_center", "Longitude_Of_Center")
	RectifiedGrid     = param("gamma", "rectified_grid_angle", "Rectified_Grid_Angle")
)

// Params is the built-in projection parameter table.
var Params = []Param{
	LatitudeOfOrigin,
	CentralMeridian,
	ScaleFactor,
	FalseEasting,
	FalseNorthing,
	StandardParallel1,
	StandardParallel2,
	LatitudeTrueScale,
	Azimuth,
	LongitudeOfCenter,
	RectifiedGrid,
}

// LookupParam finds a projection parameter by PROJ key, OGC or ESRI name.
// A leading "+" on PROJ keys is ignored.
func LookupParam(name string) (Param, bool) {
	if len(name) > 0 && name[0] == '+' {
		name = name[1:]
	}
	return lookup(Params, name)
}
