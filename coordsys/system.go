package coordsys

import (
	"fmt"
	"strings"
)

// CoordinateSystem names a 3D library's axis convention.
type CoordinateSystem int

const (
	Reference CoordinateSystem = iota
	PyTorch3D
	OpenCV
	COLMAP
	OpenGL
	NGP

	numSystems
)

var systemNames = [numSystems]string{
	Reference: "REFERENCE",
	PyTorch3D: "PYTORCH3D",
	OpenCV:    "OPENCV",
	COLMAP:    "COLMAP",
	OpenGL:    "OPENGL",
	NGP:       "NGP",
}

// Systems returns every supported coordinate system in ordinal order.
func Systems() []CoordinateSystem {
	out := make([]CoordinateSystem, numSystems)
	for i := range out {
		out[i] = CoordinateSystem(i)
	}
	return out
}

// Valid reports whether s is a supported coordinate system.
func (s CoordinateSystem) Valid() bool {
	return s >= 0 && s < numSystems
}

func (s CoordinateSystem) String() string {
	if !s.Valid() {
		return fmt.Sprintf("CoordinateSystem(%d)", int(s))
	}
	return systemNames[s]
}

// ParseCoordinateSystem parses a system name such as "opencv", ignoring case.
func ParseCoordinateSystem(name string) (CoordinateSystem, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for i, n := range systemNames {
		if n == upper {
			return CoordinateSystem(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown coordinate system %q", ErrLookup, name)
}
