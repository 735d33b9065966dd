package crs

import "github.com/cockroachdb/errors"

var (
	// ErrMissingComponent is returned when a required sub-component is nil or zero.
	ErrMissingComponent = errors.New("missing required component")
	// ErrUnknownEllipsoid is returned when the Unknown ellipsoid is built
	// without explicit axis values.
	ErrUnknownEllipsoid = errors.New("unknown ellipsoid needs explicit semi-major axis and inverse flattening")
	// ErrInvalidEllipsoid is returned for non-finite or non-positive axis values.
	ErrInvalidEllipsoid = errors.New("invalid ellipsoid parameters")
	// ErrInvalidAxis is returned for an axis direction outside East/West/North/South.
	ErrInvalidAxis = errors.New("invalid axis direction")
)

func missing(what string) error {
	return errors.Wrapf(ErrMissingComponent, "%s", what)
}
