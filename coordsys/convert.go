package coordsys

import (
	"fmt"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// worldChange returns T_wout_ref · T_ref_win, the matrix taking world
// coordinates of in to world coordinates of out.
func (r *Registry) worldChange(in, out CoordinateSystem) (*mat.Dense, error) {
	_, win, err := r.bases(in)
	if err != nil {
		return nil, err
	}
	_, wout, err := r.bases(out)
	if err != nil {
		return nil, err
	}
	var m mat.Dense
	m.Mul(wout.fromRef, win.toRef)
	return &m, nil
}

// ConvertVertices converts N×3 world-frame vertices from system in to
// system out. Row i of the result is T_wout_ref · T_ref_win · verts[i].
func (r *Registry) ConvertVertices(verts mat.Matrix, in, out CoordinateSystem) (*mat.Dense, error) {
	if isNilMatrix(verts) {
		return nil, fmt.Errorf("%w: vertices are nil", ErrShape)
	}
	n, c := verts.Dims()
	if c != 3 {
		return nil, fmt.Errorf("%w: vertices are %dx%d, want Nx3", ErrShape, n, c)
	}
	m, err := r.worldChange(in, out)
	if err != nil {
		return nil, err
	}

	// Rows are points, so apply the change as vᵀ·Mᵀ.
	var res mat.Dense
	res.Mul(verts, m.T())
	Tracef("vertices %s -> %s: %d rows", in, out, n)
	return &res, nil
}

// ConvertPoint converts a single world-frame point from system in to
// system out.
func (r *Registry) ConvertPoint(p r3.Vector, in, out CoordinateSystem) (r3.Vector, error) {
	m, err := r.worldChange(in, out)
	if err != nil {
		return r3.Vector{}, err
	}
	return mulVec(m, p), nil
}

// ConvertPose converts a rotation and translation expressed in system in to
// system out:
//
//	R_out = T_wout_ref · T_ref_win · R · T_cin_ref · T_ref_cout
//	t_out = T_wout_ref · T_ref_win · t
//
// The rotation's left side changes world axes and its right side changes
// camera axes; the translation is a world-frame vector.
func (r *Registry) ConvertPose(rot mat.Matrix, t r3.Vector, in, out CoordinateSystem) (*mat.Dense, r3.Vector, error) {
	if isNilMatrix(rot) {
		return nil, r3.Vector{}, fmt.Errorf("%w: rotation is nil", ErrShape)
	}
	if rr, rc := rot.Dims(); rr != 3 || rc != 3 {
		return nil, r3.Vector{}, fmt.Errorf("%w: rotation is %dx%d, want 3x3", ErrShape, rr, rc)
	}
	cin, win, err := r.bases(in)
	if err != nil {
		return nil, r3.Vector{}, err
	}
	cout, wout, err := r.bases(out)
	if err != nil {
		return nil, r3.Vector{}, err
	}

	var rOut mat.Dense
	rOut.Product(wout.fromRef, win.toRef, rot, cin.fromRef, cout.toRef)

	var world mat.Dense
	world.Mul(wout.fromRef, win.toRef)

	Tracef("pose %s -> %s", in, out)
	return &rOut, mulVec(&world, t), nil
}

// ConvertPoseValue is ConvertPose for a Pose.
func (r *Registry) ConvertPoseValue(p Pose, in, out CoordinateSystem) (Pose, error) {
	if p.R == nil {
		return Pose{}, fmt.Errorf("%w: pose has no rotation", ErrShape)
	}
	rot, t, err := r.ConvertPose(p.R, p.T, in, out)
	if err != nil {
		return Pose{}, err
	}
	return Pose{R: rot, T: t}, nil
}

// ConvertVertices converts vertices with the Default registry.
func ConvertVertices(verts mat.Matrix, in, out CoordinateSystem) (*mat.Dense, error) {
	return Default().ConvertVertices(verts, in, out)
}

// ConvertPose converts a pose with the Default registry.
func ConvertPose(rot mat.Matrix, t r3.Vector, in, out CoordinateSystem) (*mat.Dense, r3.Vector, error) {
	return Default().ConvertPose(rot, t, in, out)
}

// isNilMatrix reports whether m is a nil interface or a nil *mat.Dense.
func isNilMatrix(m mat.Matrix) bool {
	if m == nil {
		return true
	}
	d, ok := m.(*mat.Dense)
	return ok && d == nil
}

func mulVec(m mat.Matrix, v r3.Vector) r3.Vector {
	var res mat.VecDense
	res.MulVec(m, mat.NewVecDense(3, []float64{v.X, v.Y, v.Z}))
	return r3.Vector{X: res.AtVec(0), Y: res.AtVec(1), Z: res.AtVec(2)}
}
