package timeseries

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestLagView(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	features, targets, err := LagView(x, 3)
	require.NoError(t, err)

	rows, cols := features.Dims()
	assert.Equal(t, 7, rows)
	assert.Equal(t, 3, cols)

	assert.Equal(t, []float64{0, 1, 2}, mat.Row(nil, 0, features))
	assert.Equal(t, []float64{6, 7, 8}, mat.Row(nil, 6, features))
	assert.Equal(t, []float64{3, 4, 5, 6, 7, 8, 9}, targets)
}

func TestLagViewRowAlignment(t *testing.T) {
	x := []float64{1.5, -2, 0.25, 4, 8, -1}

	for order := 1; order < len(x); order++ {
		features, targets, err := LagView(x, order)
		require.NoError(t, err)

		rows, _ := features.Dims()
		require.Equal(t, len(x)-order, rows)
		for i := 0; i < rows; i++ {
			assert.Equal(t, x[i:i+order], mat.Row(nil, i, features))
			assert.Equal(t, x[i+order], targets[i])
		}
	}
}

func TestLagViewInvalidOrder(t *testing.T) {
	x := []float64{1, 2, 3}

	tests := []struct {
		name  string
		order int
	}{
		{"zero order", 0},
		{"negative order", -1},
		{"order equals length", 3},
		{"order exceeds length", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := LagView(x, tt.order)
			assert.ErrorIs(t, err, ErrInvalidOrder)
		})
	}
}

func TestLagViewDoesNotAliasInput(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	features, targets, err := LagView(x, 2)
	require.NoError(t, err)

	x[0], x[2] = 99, 99
	assert.Equal(t, []float64{1, 2}, mat.Row(nil, 0, features))
	assert.Equal(t, []float64{3, 4}, targets)
}

func TestPaddedLagView(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}

	features, targets, err := PaddedLagView(x, 2)
	require.NoError(t, err)

	rows, cols := features.Dims()
	assert.Equal(t, len(x), rows)
	assert.Equal(t, 2, cols)

	// First rows reach into the zero padding.
	assert.Equal(t, []float64{0, 0}, mat.Row(nil, 0, features))
	assert.Equal(t, []float64{0, 1}, mat.Row(nil, 1, features))
	assert.Equal(t, []float64{1, 2}, mat.Row(nil, 2, features))

	assert.Equal(t, x, targets)
}

func TestPaddedLagViewInvalid(t *testing.T) {
	_, _, err := PaddedLagView([]float64{1, 2}, 0)
	assert.ErrorIs(t, err, ErrInvalidOrder)

	_, _, err = PaddedLagView(nil, 1)
	assert.ErrorIs(t, err, ErrInvalidOrder)
}

func TestDifference(t *testing.T) {
	assert.Equal(t, []float64{1, 2, 3, 4}, Difference([]float64{1, 3, 6, 10}, 1))

	// Length is preserved at every order.
	x := []float64{2, 4, 8, 16, 32}
	for d := 0; d <= 3; d++ {
		assert.Len(t, Difference(x, d), len(x))
	}

	// d=0 copies without aliasing.
	out := Difference(x, 0)
	assert.Equal(t, x, out)
	out[0] = -1
	assert.Equal(t, 2.0, x[0])
}

func TestUndoDifference(t *testing.T) {
	assert.Equal(t, []float64{1, 3, 6, 10}, UndoDifference([]float64{1, 2, 3, 4}, 1))
}

func TestDifferenceRoundTrip(t *testing.T) {
	x := []float64{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}

	for d := 1; d <= 3; d++ {
		diffed := Difference(x, d)
		restored := UndoDifference(diffed, d)
		require.Len(t, restored, len(x))
		for i := range x {
			assert.InDelta(t, x[i], restored[i], 1e-9, "d=%d index %d", d, i)
		}
	}
}

func TestMoments(t *testing.T) {
	x := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	assert.InDelta(t, 5.0, Mean(x), 1e-12)
	assert.InDelta(t, 32.0/7.0, Variance(x), 1e-12)
	assert.InDelta(t, 2.0, Min(x), 1e-12)
	assert.InDelta(t, 9.0, Max(x), 1e-12)

	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 0.0, Variance([]float64{1}))
}
