package convention

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// handednessTolerance is how close to zero a determinant must be for a basis
// to count as degenerate.
const handednessTolerance = 1e-12

// TransformToRef returns the 3×3 matrix whose columns are the reference
// vectors of the +x, +y and +z faces of convention. Multiplying a column
// vector in convention coordinates by it yields reference coordinates.
func TransformToRef(convention string, ref ReferenceAxes) (*mat.Dense, error) {
	a, err := SplitAxesConvention(convention)
	if err != nil {
		return nil, err
	}

	m := mat.NewDense(3, 3, nil)
	for j, f := range a.Faces() {
		v, ok := ref[f]
		if !ok {
			return nil, fmt.Errorf("%w: %s (convention %q)", ErrMissingFace, f, convention)
		}
		m.SetCol(j, []float64{v.X, v.Y, v.Z})
	}
	return m, nil
}

// GetTransformToRef is TransformToRef against the axes of ReferenceConvention.
func GetTransformToRef(convention string) (*mat.Dense, error) {
	return TransformToRef(convention, defaultReferenceAxes())
}

// Handedness returns +1 if m has a positive determinant, -1 if negative and
// 0 if m is degenerate or not 3×3. A basis with the same handedness as the
// reference frame yields +1.
func Handedness(m mat.Matrix) int {
	if r, c := m.Dims(); r != 3 || c != 3 {
		return 0
	}
	d := mat.Det(m)
	switch {
	case math.Abs(d) < handednessTolerance:
		return 0
	case d > 0:
		return 1
	default:
		return -1
	}
}

// IsOrthonormal reports whether m is a 3×3 matrix with unit-length, mutually
// orthogonal columns, i.e. mᵀm equals the identity within tol.
func IsOrthonormal(m mat.Matrix, tol float64) bool {
	if r, c := m.Dims(); r != 3 || c != 3 {
		return false
	}
	var gram mat.Dense
	gram.Mul(m.T(), m)
	return mat.EqualApprox(&gram, mat.NewDiagDense(3, []float64{1, 1, 1}), tol)
}
