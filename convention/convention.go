package convention

import (
	"errors"
	"fmt"
	"strings"
)

// Separator joins the three face names of a convention string.
const Separator = "_"

var (
	// ErrFormat is returned for convention strings that do not name exactly
	// three known faces.
	ErrFormat = errors.New("invalid axis convention")
	// ErrDegenerate is returned alongside ErrFormat when two faces of a
	// convention share an axis pair, e.g. "UP_UP_FRONT" or "FRONT_BACK_UP".
	ErrDegenerate = errors.New("axes are not mutually independent")
	// ErrMissingFace is returned when a reference table lacks a face.
	ErrMissingFace = errors.New("face missing from reference axes")
)

// Axes holds the faces that +x, +y and +z point at.
type Axes struct {
	X, Y, Z CubeFace
}

// Faces returns the three faces in x, y, z order.
func (a Axes) Faces() [3]CubeFace {
	return [3]CubeFace{a.X, a.Y, a.Z}
}

// String renders the canonical upper-case convention, e.g. "LEFT_UP_FRONT".
func (a Axes) String() string {
	return a.X.String() + Separator + a.Y.String() + Separator + a.Z.String()
}

// SplitAxesConvention parses a convention such as "left_up_front" into the
// faces aligned with +x, +y and +z. Matching is case-insensitive.
//
// The three faces must come from different axis pairs; a convention that
// repeats a face or names both sides of the same pair cannot span 3D space
// and is rejected.
func SplitAxesConvention(convention string) (Axes, error) {
	tokens := strings.Split(strings.ToUpper(convention), Separator)
	if len(tokens) != 3 {
		return Axes{}, fmt.Errorf("%w: %q has %d components, want 3", ErrFormat, convention, len(tokens))
	}

	var faces [3]CubeFace
	for i, tok := range tokens {
		f, err := ParseCubeFace(tok)
		if err != nil {
			return Axes{}, fmt.Errorf("%q: %w", convention, err)
		}
		faces[i] = f
	}

	var seen [3]bool
	for _, f := range faces {
		if seen[f.Axis()] {
			return Axes{}, fmt.Errorf("%w: %w: %q", ErrFormat, ErrDegenerate, convention)
		}
		seen[f.Axis()] = true
	}

	return Axes{X: faces[0], Y: faces[1], Z: faces[2]}, nil
}

// MustSplitAxesConvention is like SplitAxesConvention but panics on error.
// Use it only with convention literals known to be valid, such as
// ReferenceConvention.
func MustSplitAxesConvention(convention string) Axes {
	a, err := SplitAxesConvention(convention)
	if err != nil {
		panic(err)
	}
	return a
}
