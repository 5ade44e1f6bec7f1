// Package stats provides autocorrelation estimators and residual
// diagnostics for time series analysis.
package stats

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/olslab/arimalite/regress"
	"github.com/olslab/arimalite/timeseries"
)

var (
	// ErrDegenerateInput is returned when a correlation is requested
	// against a zero-variance series. The package fails fast instead of
	// propagating NaN.
	ErrDegenerateInput = errors.New("stats: series has zero variance")

	// ErrLengthMismatch is returned when paired inputs differ in length or
	// are too short to correlate.
	ErrLengthMismatch = errors.New("stats: input series must have equal length of at least 2")
)

// PearsonCorrelation returns the covariance of x and y normalized by the
// product of their standard deviations.
func PearsonCorrelation(x, y []float64) (float64, error) {
	if len(x) != len(y) || len(x) < 2 {
		return 0, ErrLengthMismatch
	}
	if stat.Variance(x, nil) == 0 || stat.Variance(y, nil) == 0 {
		return 0, ErrDegenerateInput
	}

	return stat.Correlation(x, y, nil), nil
}

// ACF computes the autocorrelation function of x for lags 0..maxLag. Lag 0
// is 1 by definition; lag k is the Pearson correlation between x[:n-k] and
// x[k:].
func ACF(x []float64, maxLag int) ([]float64, error) {
	n := len(x)
	if maxLag < 1 || maxLag > n-2 {
		return nil, timeseries.ErrInvalidOrder
	}

	out := make([]float64, maxLag+1)
	out[0] = 1
	for k := 1; k <= maxLag; k++ {
		r, err := PearsonCorrelation(x[:n-k], x[k:])
		if err != nil {
			return nil, err
		}
		out[k] = r
	}

	return out, nil
}

// PACF computes partial autocorrelations of x for lags 0..maxLag by the
// regression method: the value at lag m is the Pearson correlation between
// the residuals of the current value and of the m-steps-back value after
// both are regressed (without intercept) on the intermediate lags. Lag 1
// has no intermediate lags and equals the plain ACF at lag 1.
//
// Each lag fits two OLS models over a window of that width, so the cost is
// quadratic in maxLag. Fine for exploratory lag counts, not for huge ones.
func PACF(x []float64, maxLag int) ([]float64, error) {
	n := len(x)
	if maxLag < 1 || maxLag > n-2 {
		return nil, timeseries.ErrInvalidOrder
	}

	out := make([]float64, maxLag+1)
	out[0] = 1

	r1, err := PearsonCorrelation(x[:n-1], x[1:])
	if err != nil {
		return nil, err
	}
	out[1] = r1

	for m := 2; m <= maxLag; m++ {
		window := m + 1
		rows := n - window + 1
		if rows < 2 {
			return nil, timeseries.ErrInvalidOrder
		}

		// Window columns are [X_{t-m}, ..., X_t]: column 0 is the
		// m-steps-back target, column m the current target, the middle
		// columns the intermediate regressors.
		w := mat.NewDense(rows, window, nil)
		for i := 0; i < rows; i++ {
			w.SetRow(i, x[i:i+window])
		}
		inter := w.Slice(0, rows, 1, m)
		curr := mat.Col(nil, m, w)
		back := mat.Col(nil, 0, w)

		currPred, err := regress.NewLinearModel(false).FitPredict(inter, curr)
		if err != nil {
			return nil, err
		}
		backPred, err := regress.NewLinearModel(false).FitPredict(inter, back)
		if err != nil {
			return nil, err
		}

		currResid := make([]float64, rows)
		backResid := make([]float64, rows)
		for i := 0; i < rows; i++ {
			currResid[i] = curr[i] - currPred[i]
			backResid[i] = back[i] - backPred[i]
		}

		r, err := PearsonCorrelation(currResid, backResid)
		if err != nil {
			return nil, err
		}
		out[m] = r
	}

	return out, nil
}

// BartlettSE returns Bartlett's standard error for each entry of a
// correlogram estimated from n observations:
//
//	se[0] = 1/sqrt(n)
//	se[k] = sqrt((1 + 2*sum(acf[1:k]^2)) / n)
func BartlettSE(acf []float64, n int) []float64 {
	se := make([]float64, len(acf))
	if len(se) == 0 || n <= 0 {
		return se
	}

	se[0] = 1 / math.Sqrt(float64(n))
	sum := 0.0
	for k := 1; k < len(acf); k++ {
		se[k] = math.Sqrt((1 + 2*sum) / float64(n))
		sum += acf[k] * acf[k]
	}

	return se
}

// ConfidenceBand returns the ± confidence band for a correlogram at
// two-sided significance level alpha, scaling Bartlett's standard errors by
// the matching normal quantile.
func ConfidenceBand(acf []float64, n int, alpha float64) []float64 {
	z := distuv.Normal{Mu: 0, Sigma: 1}.Quantile(1 - alpha/2)
	band := BartlettSE(acf, n)
	floats.Scale(z, band)

	return band
}

// SignificantLags returns the lags (excluding lag 0) whose correlation
// exceeds the confidence band in absolute value.
func SignificantLags(values, band []float64) []int {
	var lags []int
	for k := 1; k < len(values) && k < len(band); k++ {
		if math.Abs(values[k]) > band[k] {
			lags = append(lags, k)
		}
	}

	return lags
}
