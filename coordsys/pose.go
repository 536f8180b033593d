package coordsys

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"

	"github.com/banshee-data/camconv/convention"
)

// MatrixValidationTolerance is the default tolerance for checking rotation
// matrix validity.
const MatrixValidationTolerance = 0.01

// Pose is a rigid transform in one coordinate system: a 3×3 rotation R and a
// translation T, mapping camera coordinates to world coordinates.
type Pose struct {
	R *mat.Dense
	T r3.Vector
}

// IdentityPose returns the pose with R = I and T = 0.
func IdentityPose() Pose {
	return Pose{R: mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})}
}

// Matrix returns the pose as a 4x4 row-major homogeneous transform:
// m00,m01,m02,tx, m10,...,ty, m20,...,tz, 0,0,0,1.
func (p Pose) Matrix() [16]float64 {
	var T [16]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			T[i*4+j] = p.R.At(i, j)
		}
	}
	T[3], T[7], T[11] = p.T.X, p.T.Y, p.T.Z
	T[15] = 1
	return T
}

// PoseFromMatrix splits a 4x4 row-major homogeneous transform into a Pose.
// The last row must be [0 0 0 1].
func PoseFromMatrix(T [16]float64) (Pose, error) {
	if T[12] != 0 || T[13] != 0 || T[14] != 0 || math.Abs(T[15]-1.0) > 0.001 {
		return Pose{}, fmt.Errorf("%w: last row is [%g %g %g %g], want [0 0 0 1]",
			ErrShape, T[12], T[13], T[14], T[15])
	}
	return Pose{
		R: mat.NewDense(3, 3, []float64{
			T[0], T[1], T[2],
			T[4], T[5], T[6],
			T[8], T[9], T[10],
		}),
		T: r3.Vector{X: T[3], Y: T[7], Z: T[11]},
	}, nil
}

// Apply maps camera-frame point v into the world frame.
func (p Pose) Apply(v r3.Vector) r3.Vector {
	x, y, z := ApplyPose(v.X, v.Y, v.Z, p.Matrix())
	return r3.Vector{X: x, Y: y, Z: z}
}

// ApplyPose applies a 4x4 row-major transform T to point (x,y,z).
// T is expected as [16]float64 row-major: m00,m01,m02,m03, m10,...
func ApplyPose(x, y, z float64, T [16]float64) (wx, wy, wz float64) {
	wx = T[0]*x + T[1]*y + T[2]*z + T[3]
	wy = T[4]*x + T[5]*y + T[6]*z + T[7]
	wz = T[8]*x + T[9]*y + T[10]*z + T[11]
	return
}

// IsValidTransformMatrix checks if a 4x4 matrix is a valid rigid transform.
// A valid rigid transform has:
// 1. Orthonormal rotation submatrix with det ≈ 1 (proper rotation, not reflection)
// 2. Last row is [0 0 0 1]
func IsValidTransformMatrix(T [16]float64, tol float64) bool {
	if T[12] != 0 || T[13] != 0 || T[14] != 0 || math.Abs(T[15]-1.0) > 0.001 {
		return false
	}

	// Extract 3x3 rotation submatrix (row-major layout)
	r := mat.NewDense(3, 3, []float64{
		T[0], T[1], T[2],
		T[4], T[5], T[6],
		T[8], T[9], T[10],
	})
	if math.Abs(mat.Det(r)-1.0) > tol {
		return false
	}
	return convention.IsOrthonormal(r, tol)
}
