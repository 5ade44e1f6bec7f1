package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olslab/arimalite/sim"
	"github.com/olslab/arimalite/timeseries"
)

func TestPearsonCorrelation(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}

	r, err := PearsonCorrelation(x, x)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, r, 1e-12)

	neg := []float64{5, 4, 3, 2, 1}
	r, err = PearsonCorrelation(x, neg)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, r, 1e-12)
}

func TestPearsonCorrelationErrors(t *testing.T) {
	_, err := PearsonCorrelation([]float64{1, 2}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = PearsonCorrelation([]float64{1}, []float64{2})
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = PearsonCorrelation([]float64{3, 3, 3}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrDegenerateInput)
}

func TestACF(t *testing.T) {
	x := sim.AR([]float64{0.8}, 500, 1, 7)

	acf, err := ACF(x, 10)
	require.NoError(t, err)
	require.Len(t, acf, 11)

	assert.Equal(t, 1.0, acf[0])
	assert.Greater(t, acf[1], 0.5, "AR(1) with phi=0.8 should have strong lag-1 autocorrelation")

	// Autocorrelation of an AR(1) decays geometrically.
	assert.Greater(t, acf[1], acf[5])
}

func TestACFWhiteNoiseNearZero(t *testing.T) {
	x := sim.WhiteNoise(2000, 1, 11)

	acf, err := ACF(x, 5)
	require.NoError(t, err)

	for k := 1; k <= 5; k++ {
		assert.InDelta(t, 0.0, acf[k], 0.1, "lag %d", k)
	}
}

func TestACFInvalidLag(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}

	_, err := ACF(x, 0)
	assert.ErrorIs(t, err, timeseries.ErrInvalidOrder)

	_, err = ACF(x, 4)
	assert.ErrorIs(t, err, timeseries.ErrInvalidOrder)
}

func TestACFConstantSeries(t *testing.T) {
	x := []float64{2, 2, 2, 2, 2, 2, 2, 2}

	_, err := ACF(x, 3)
	assert.ErrorIs(t, err, ErrDegenerateInput)
}

func TestPACF(t *testing.T) {
	x := sim.AR([]float64{0.7}, 2000, 1, 13)

	pacf, err := PACF(x, 8)
	require.NoError(t, err)
	require.Len(t, pacf, 9)

	assert.Equal(t, 1.0, pacf[0])
	assert.InDelta(t, 0.7, pacf[1], 0.1)

	// For AR(1) the partial autocorrelation cuts off after lag 1.
	for k := 2; k <= 8; k++ {
		assert.InDelta(t, 0.0, pacf[k], 0.15, "lag %d", k)
	}
}

func TestPACFLag1MatchesACF(t *testing.T) {
	x := sim.AR([]float64{0.5, 0.2}, 800, 1, 17)

	acf, err := ACF(x, 5)
	require.NoError(t, err)
	pacf, err := PACF(x, 5)
	require.NoError(t, err)

	assert.InDelta(t, acf[1], pacf[1], 1e-12)
}

func TestBartlettSE(t *testing.T) {
	acf := []float64{1, 0.5, 0.3, 0.1}
	n := 100

	se := BartlettSE(acf, n)
	require.Len(t, se, 4)

	assert.InDelta(t, 0.1, se[0], 1e-12)
	// se[1] uses an empty sum, so it equals se[0].
	assert.InDelta(t, se[0], se[1], 1e-12)
	assert.InDelta(t, math.Sqrt((1+2*0.25)/100.0), se[2], 1e-12)
	assert.InDelta(t, math.Sqrt((1+2*(0.25+0.09))/100.0), se[3], 1e-12)

	// Standard errors widen as correlation accumulates.
	for k := 1; k < len(se); k++ {
		assert.GreaterOrEqual(t, se[k], se[k-1])
	}
}

func TestConfidenceBand(t *testing.T) {
	acf := []float64{1, 0.2}
	band := ConfidenceBand(acf, 400, 0.05)

	// z_{0.975} * 1/sqrt(400) = 1.96 * 0.05
	assert.InDelta(t, 0.098, band[0], 1e-3)
}

func TestSignificantLags(t *testing.T) {
	values := []float64{1, 0.5, 0.05, -0.4, 0.01}
	band := []float64{0.1, 0.1, 0.1, 0.1, 0.1}

	assert.Equal(t, []int{1, 3}, SignificantLags(values, band))
	assert.Nil(t, SignificantLags([]float64{1, 0.01}, band))
}
