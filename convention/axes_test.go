package convention

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetReferenceAxes_Reference(t *testing.T) {
	t.Parallel()

	ref, err := GetReferenceAxes(ReferenceConvention)
	require.NoError(t, err)

	want := ReferenceAxes{
		Left:  {X: 1},
		Right: {X: -1},
		Up:    {Y: 1},
		Down:  {Y: -1},
		Front: {Z: 1},
		Back:  {Z: -1},
	}
	assert.Equal(t, want, ref)
}

func TestGetReferenceAxes_CoversAllFaces(t *testing.T) {
	t.Parallel()

	conventions := []string{
		"LEFT_UP_FRONT",
		"RIGHT_DOWN_FRONT",
		"RIGHT_UP_BACK",
		"FRONT_LEFT_UP",
		"DOWN_BACK_RIGHT",
	}
	for _, conv := range conventions {
		t.Run(conv, func(t *testing.T) {
			ref, err := GetReferenceAxes(conv)
			require.NoError(t, err)
			require.Len(t, ref, 6)

			a := MustSplitAxesConvention(conv)
			for _, f := range Faces() {
				v, ok := ref[f]
				require.True(t, ok, "missing face %s", f)
				assert.InDelta(t, 1.0, v.Norm(), 1e-12, "face %s not unit length", f)
				assert.Equal(t, v.Mul(-1), ref[f.Opposite()], "face %s and its opposite", f)
			}

			// Named faces are the standard basis, and distinct pairs are orthogonal.
			assert.Equal(t, r3.Vector{X: 1}, ref[a.X])
			assert.Equal(t, r3.Vector{Y: 1}, ref[a.Y])
			assert.Equal(t, r3.Vector{Z: 1}, ref[a.Z])
			assert.Zero(t, ref[a.X].Dot(ref[a.Y]))
			assert.Zero(t, ref[a.Y].Dot(ref[a.Z]))
			assert.Zero(t, ref[a.X].Dot(ref[a.Z]))
		})
	}
}

func TestGetReferenceAxes_Invalid(t *testing.T) {
	t.Parallel()

	_, err := GetReferenceAxes("FRONT_BACK_UP")
	assert.ErrorIs(t, err, ErrDegenerate)

	_, err = GetReferenceAxes("NORTH_UP_FRONT")
	assert.ErrorIs(t, err, ErrFormat)
}

func TestDefaultReferenceAxes_ReturnsCopy(t *testing.T) {
	t.Parallel()

	a := DefaultReferenceAxes()
	a[Left] = r3.Vector{X: 99}

	b := DefaultReferenceAxes()
	assert.Equal(t, r3.Vector{X: 1}, b[Left])
}
