package crs

import "github.com/wroge/wgs84"

// A returns the semi-major axis. Together with Fi it lets an Ellipsoid be
// used as the spheroid of a github.com/wroge/wgs84 datum.
func (e Ellipsoid) A() float64 { return e.semiMajorAxis }

// Fi returns the inverse flattening.
func (e Ellipsoid) Fi() float64 { return e.invFlattening }

// WGS84 returns the datum in github.com/wroge/wgs84 form, for handing to
// code that transforms coordinates. Only the spheroid is carried over.
func (d Datum) WGS84() wgs84.Datum {
	return wgs84.Datum{Spheroid: d.ellipsoid}
}
