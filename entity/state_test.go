package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomphys/hydrogen/entity"
)

// TestNewState_Valid covers the accepted (n, l) range.
func TestNewState_Valid(t *testing.T) {
	for _, tc := range []struct{ n, l int }{
		{1, 0},
		{2, 0},
		{2, 1},
		{7, 6},
	} {
		st, err := entity.NewState(tc.n, tc.l)
		require.NoError(t, err, "n=%d, l=%d", tc.n, tc.l)
		assert.Equal(t, tc.n, st.N)
		assert.Equal(t, tc.l, st.L)
	}
}

// TestNewState_Invalid covers the three rejection reasons.
func TestNewState_Invalid(t *testing.T) {
	_, err := entity.NewState(0, 0)
	assert.ErrorIs(t, err, entity.ErrPrincipalTooSmall)

	_, err = entity.NewState(-3, 0)
	assert.ErrorIs(t, err, entity.ErrPrincipalTooSmall)

	_, err = entity.NewState(2, -1)
	assert.ErrorIs(t, err, entity.ErrAngularNegative)

	_, err = entity.NewState(1, 1)
	assert.ErrorIs(t, err, entity.ErrAngularTooLarge)

	_, err = entity.NewState(3, 5)
	assert.ErrorIs(t, err, entity.ErrAngularTooLarge)
}

// TestState_Energy checks −13.6/n² for the first shells.
func TestState_Energy(t *testing.T) {
	cases := []struct {
		n    int
		want float64
	}{
		{1, -13.6},
		{2, -3.4},
		{3, -13.6 / 9},
		{4, -0.85},
	}
	for _, tc := range cases {
		st, err := entity.NewState(tc.n, 0)
		require.NoError(t, err)
		assert.InDelta(t, tc.want, st.Energy(), 1e-12, "n=%d", tc.n)
	}
}

func TestState_Label(t *testing.T) {
	st, err := entity.NewState(3, 2)
	require.NoError(t, err)
	assert.Equal(t, "n=3, l=2", st.Label())
}
