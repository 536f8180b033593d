package coordsys

import "errors"

var (
	// ErrLookup is returned for a CoordinateSystem with no registered
	// camera convention.
	ErrLookup = errors.New("coordinate system not registered")
	// ErrSingular is returned when a basis that must be inverted is singular.
	ErrSingular = errors.New("basis matrix is singular")
	// ErrShape is returned for inputs with the wrong dimensions.
	ErrShape = errors.New("unexpected matrix shape")
	// ErrNotOrthonormal is returned by NewRegistry for a basis whose columns
	// are not orthonormal within Options.Tolerance.
	ErrNotOrthonormal = errors.New("basis matrix is not orthonormal")
)
