package convention

import (
	"maps"
	"sync"

	"github.com/golang/geo/r3"
)

// ReferenceConvention is the convention every transform is expressed against.
const ReferenceConvention = "LEFT_UP_FRONT"

// ReferenceAxes maps each cube face to its signed unit vector in the
// reference frame.
type ReferenceAxes map[CubeFace]r3.Vector

// GetReferenceAxes builds the unit vector of every cube face for the given
// reference convention. The faces named by the convention map to +x, +y and
// +z; their opposites map to the negated axes.
func GetReferenceAxes(refConvention string) (ReferenceAxes, error) {
	a, err := SplitAxesConvention(refConvention)
	if err != nil {
		return nil, err
	}

	ex := r3.Vector{X: 1}
	ey := r3.Vector{Y: 1}
	ez := r3.Vector{Z: 1}
	return ReferenceAxes{
		a.X:            ex,
		a.Y:            ey,
		a.Z:            ez,
		a.X.Opposite(): ex.Mul(-1),
		a.Y.Opposite(): ey.Mul(-1),
		a.Z.Opposite(): ez.Mul(-1),
	}, nil
}

var defaultReferenceAxes = sync.OnceValue(func() ReferenceAxes {
	ref, err := GetReferenceAxes(ReferenceConvention)
	if err != nil {
		panic(err)
	}
	return ref
})

// DefaultReferenceAxes returns a copy of the axes of ReferenceConvention.
func DefaultReferenceAxes() ReferenceAxes {
	return maps.Clone(defaultReferenceAxes())
}
