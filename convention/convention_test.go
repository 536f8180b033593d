package convention

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitAxesConvention(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  Axes
	}{
		{"reference", "LEFT_UP_FRONT", Axes{Left, Up, Front}},
		{"lowercase", "left_up_front", Axes{Left, Up, Front}},
		{"mixed case", "Right_Down_Front", Axes{Right, Down, Front}},
		{"opengl", "RIGHT_UP_BACK", Axes{Right, Up, Back}},
		{"ngp world", "FRONT_LEFT_UP", Axes{Front, Left, Up}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitAxesConvention(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitAxesConvention_FormatErrors(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"LEFT_UP",
		"LEFT_UP_FRONT_BACK",
		"LEFT-UP-FRONT",
		"LEFT_UP_FORWARD",
		"LEFT__FRONT",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, err := SplitAxesConvention(in)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrFormat)
			assert.NotErrorIs(t, err, ErrDegenerate)
		})
	}
}

func TestSplitAxesConvention_Degenerate(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"UP_UP_FRONT",
		"FRONT_FRONT_UP",
		"FRONT_BACK_UP",
		"LEFT_UP_RIGHT",
		"up_down_left",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, err := SplitAxesConvention(in)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrFormat)
			assert.ErrorIs(t, err, ErrDegenerate)
		})
	}
}

func TestAxes_String(t *testing.T) {
	t.Parallel()

	a, err := SplitAxesConvention("right_down_front")
	require.NoError(t, err)
	assert.Equal(t, "RIGHT_DOWN_FRONT", a.String())
	assert.Equal(t, [3]CubeFace{Right, Down, Front}, a.Faces())
}

func TestMustSplitAxesConvention(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Axes{Left, Up, Front}, MustSplitAxesConvention(ReferenceConvention))
	assert.Panics(t, func() { MustSplitAxesConvention("FRONT_BACK_UP") })
}
