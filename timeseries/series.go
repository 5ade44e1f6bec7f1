// Package timeseries provides core sequence operations for time series modeling.
package timeseries

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ErrInvalidOrder is returned when a lag order does not leave at least one
// usable row in the series.
var ErrInvalidOrder = errors.New("timeseries: lag order must be in [1, len(x)-1]")

// LagView builds trailing-window features from x. Row i holds
// x[i : i+order] and the aligned target is x[i+order], so the result has
// len(x)-order rows of order columns. The input is copied; x is never
// modified.
func LagView(x []float64, order int) (*mat.Dense, []float64, error) {
	n := len(x)
	if order < 1 || order >= n {
		return nil, nil, ErrInvalidOrder
	}

	rows := n - order
	m := mat.NewDense(rows, order, nil)
	targets := make([]float64, rows)
	for i := 0; i < rows; i++ {
		m.SetRow(i, x[i:i+order])
		targets[i] = x[i+order]
	}

	return m, targets, nil
}

// PaddedLagView is LagView over x left-padded with order zeros, producing
// one row per element of x and the full series as the target vector. The
// first order rows reach into the zero padding.
func PaddedLagView(x []float64, order int) (*mat.Dense, []float64, error) {
	if order < 1 || len(x) == 0 {
		return nil, nil, ErrInvalidOrder
	}

	padded := make([]float64, order+len(x))
	copy(padded[order:], x)

	return LagView(padded, order)
}

// Difference applies first-order differencing d times. Each pass keeps
// element 0 as-is and replaces element i with x[i]-x[i-1], so the series
// length is invariant across calls and the retained leading value acts as
// the cumulative base for UndoDifference. d <= 0 returns a copy.
func Difference(x []float64, d int) []float64 {
	out := make([]float64, len(x))
	copy(out, x)

	for k := 0; k < d; k++ {
		for i := len(out) - 1; i >= 1; i-- {
			out[i] -= out[i-1]
		}
	}

	return out
}

// UndoDifference inverts Difference by cumulative summation applied d
// times. Because each differencing pass keeps the first element as the
// cumulative base, the round trip is exact for any d >= 0.
func UndoDifference(x []float64, d int) []float64 {
	out := make([]float64, len(x))
	copy(out, x)

	for k := 0; k < d; k++ {
		floats.CumSum(out, out)
	}

	return out
}

// Mean returns the arithmetic mean of x, or 0 for an empty slice.
func Mean(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return stat.Mean(x, nil)
}

// Variance returns the unbiased sample variance of x, or 0 when fewer than
// two observations are available.
func Variance(x []float64) float64 {
	if len(x) < 2 {
		return 0
	}
	return stat.Variance(x, nil)
}

// Std returns the sample standard deviation of x.
func Std(x []float64) float64 {
	return math.Sqrt(Variance(x))
}

// Min returns the minimum value in x.
func Min(x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	return floats.Min(x)
}

// Max returns the maximum value in x.
func Max(x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	return floats.Max(x)
}
