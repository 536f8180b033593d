package coordsys

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/banshee-data/camconv/convention"
)

// DefaultTolerance is the orthonormality tolerance used when Options leaves
// Tolerance unset.
const DefaultTolerance = 1e-9

// cameraConventions maps every system to the convention of its camera axes.
// A system without an entry fails NewRegistry with ErrLookup.
var cameraConventions = [numSystems]string{
	Reference: convention.ReferenceConvention,
	PyTorch3D: "LEFT_UP_FRONT",
	OpenCV:    "RIGHT_DOWN_FRONT",
	COLMAP:    "RIGHT_DOWN_FRONT",
	OpenGL:    "RIGHT_UP_BACK",
	NGP:       "RIGHT_UP_BACK",
}

// worldConventions overrides the world axes of systems whose world frame
// differs from their camera frame. Empty means "same as camera".
var worldConventions = [numSystems]string{
	NGP: "FRONT_LEFT_UP",
}

// Options configures NewRegistry.
type Options struct {
	// Tolerance bounds |BᵀB - I| for every basis B. Zero means DefaultTolerance.
	Tolerance float64
}

func (o Options) tolerance() float64 {
	if o.Tolerance <= 0 {
		return DefaultTolerance
	}
	return o.Tolerance
}

// basis is one convention's change-of-basis matrix to the reference frame
// and its inverse.
type basis struct {
	convention string
	toRef      *mat.Dense
	fromRef    *mat.Dense
}

// Registry holds the camera-to-reference and world-to-reference transforms
// of every CoordinateSystem. It is never mutated after NewRegistry returns.
type Registry struct {
	tolerance float64
	camera    [numSystems]*basis
	world  [numSystems]*basis // nil: falls back to camera
}

// NewRegistry builds the transforms of every supported system. The reference
// axes are derived from the REFERENCE system's own convention.
func NewRegistry(opts Options) (*Registry, error) {
	r, err := buildRegistry(cameraConventions, worldConventions, opts.tolerance())
	if err != nil {
		Opsf("registry build failed: %v", err)
		return nil, err
	}
	return r, nil
}

func buildRegistry(camera, world [numSystems]string, tol float64) (*Registry, error) {
	refAxes, err := convention.GetReferenceAxes(camera[Reference])
	if err != nil {
		return nil, fmt.Errorf("reference axes: %w", err)
	}

	r := &Registry{tolerance: tol}
	for _, sys := range Systems() {
		if camera[sys] == "" {
			return nil, fmt.Errorf("%w: %s has no camera convention", ErrLookup, sys)
		}
		b, err := newBasis(camera[sys], refAxes, tol)
		if err != nil {
			return nil, fmt.Errorf("%s camera: %w", sys, err)
		}
		r.camera[sys] = b

		if world[sys] != "" {
			w, err := newBasis(world[sys], refAxes, tol)
			if err != nil {
				return nil, fmt.Errorf("%s world: %w", sys, err)
			}
			r.world[sys] = w
		}

		Diagf("%s: camera=%s handedness=%+d world=%s",
			sys, b.convention, convention.Handedness(b.toRef), r.worldBasis(sys).convention)
	}
	return r, nil
}

func newBasis(conv string, ref convention.ReferenceAxes, tol float64) (*basis, error) {
	toRef, err := convention.TransformToRef(conv, ref)
	if err != nil {
		return nil, err
	}
	if !convention.IsOrthonormal(toRef, tol) {
		return nil, fmt.Errorf("%w: %s", ErrNotOrthonormal, conv)
	}
	var fromRef mat.Dense
	if err := fromRef.Inverse(toRef); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSingular, conv, err)
	}
	return &basis{convention: conv, toRef: toRef, fromRef: &fromRef}, nil
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	r, err := NewRegistry(Options{})
	if err != nil {
		// The built-in tables are fixed; failing here is a programming error.
		panic(err)
	}
	return r
})

// Default returns the process-wide registry, building it on first use.
func Default() *Registry {
	return defaultRegistry()
}

func (r *Registry) cameraBasis(sys CoordinateSystem) (*basis, error) {
	if !sys.Valid() || r.camera[sys] == nil {
		return nil, fmt.Errorf("%w: %s", ErrLookup, sys)
	}
	return r.camera[sys], nil
}

// worldBasis returns the world override of a valid, registered sys, or its
// camera basis when there is none.
func (r *Registry) worldBasis(sys CoordinateSystem) *basis {
	if w := r.world[sys]; w != nil {
		return w
	}
	return r.camera[sys]
}

func (r *Registry) bases(sys CoordinateSystem) (camera, world *basis, err error) {
	camera, err = r.cameraBasis(sys)
	if err != nil {
		return nil, nil, err
	}
	return camera, r.worldBasis(sys), nil
}

// Tolerance returns the orthonormality tolerance the registry was built with.
func (r *Registry) Tolerance() float64 {
	return r.tolerance
}

// CameraToReference returns a copy of the matrix mapping sys camera axes to
// the reference frame.
func (r *Registry) CameraToReference(sys CoordinateSystem) (*mat.Dense, error) {
	b, err := r.cameraBasis(sys)
	if err != nil {
		return nil, err
	}
	return mat.DenseCopyOf(b.toRef), nil
}

// WorldToReference returns a copy of the matrix mapping sys world axes to the
// reference frame. Systems without a world override use their camera axes.
func (r *Registry) WorldToReference(sys CoordinateSystem) (*mat.Dense, error) {
	_, w, err := r.bases(sys)
	if err != nil {
		return nil, err
	}
	return mat.DenseCopyOf(w.toRef), nil
}

// HasWorldOverride reports whether sys has world axes distinct from its
// camera axes.
func (r *Registry) HasWorldOverride(sys CoordinateSystem) bool {
	return sys.Valid() && r.world[sys] != nil
}

// CameraConvention returns the convention string of sys camera axes.
func (r *Registry) CameraConvention(sys CoordinateSystem) (string, error) {
	b, err := r.cameraBasis(sys)
	if err != nil {
		return "", err
	}
	return b.convention, nil
}

// WorldConvention returns the convention string of sys world axes.
func (r *Registry) WorldConvention(sys CoordinateSystem) (string, error) {
	_, w, err := r.bases(sys)
	if err != nil {
		return "", err
	}
	return w.convention, nil
}
