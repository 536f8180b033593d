package convention

import (
	"fmt"
	"strings"
)

// CubeFace is one of the six directions an axis can point at.
type CubeFace int

const (
	Front CubeFace = iota
	Right
	Back
	Left
	Up
	Down

	numFaces = 6
)

var faceNames = [numFaces]string{
	Front: "FRONT",
	Right: "RIGHT",
	Back:  "BACK",
	Left:  "LEFT",
	Up:    "UP",
	Down:  "DOWN",
}

// oppositeFace is a fixed table; Opposite never computes anything.
var oppositeFace = [numFaces]CubeFace{
	Front: Back,
	Right: Left,
	Back:  Front,
	Left:  Right,
	Up:    Down,
	Down:  Up,
}

// Faces returns all six faces in ordinal order.
func Faces() []CubeFace {
	return []CubeFace{Front, Right, Back, Left, Up, Down}
}

// Valid reports whether f is one of the six defined faces.
func (f CubeFace) Valid() bool {
	return f >= 0 && f < numFaces
}

// Opposite returns the face on the other side of the cube.
// Invalid faces are returned unchanged.
func (f CubeFace) Opposite() CubeFace {
	if !f.Valid() {
		return f
	}
	return oppositeFace[f]
}

// Axis returns the index of the axis pair f belongs to:
// 0 for FRONT/BACK, 1 for RIGHT/LEFT, 2 for UP/DOWN.
func (f CubeFace) Axis() int {
	switch f {
	case Front, Back:
		return 0
	case Right, Left:
		return 1
	case Up, Down:
		return 2
	default:
		return -1
	}
}

// String returns the upper-case face name.
func (f CubeFace) String() string {
	if !f.Valid() {
		return fmt.Sprintf("CubeFace(%d)", int(f))
	}
	return faceNames[f]
}

// ParseCubeFace parses a face name, ignoring case.
func ParseCubeFace(s string) (CubeFace, error) {
	name := strings.ToUpper(s)
	for i, n := range faceNames {
		if n == name {
			return CubeFace(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown cube face %q", ErrFormat, s)
}
