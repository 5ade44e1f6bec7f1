package stats

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/olslab/arimalite/regress"
	"github.com/olslab/arimalite/timeseries"
)

// ADFResult represents the result of an Augmented Dickey-Fuller test.
type ADFResult struct {
	Statistic    float64
	Lags         int
	NObs         int
	CriticalVals map[string]float64
	IsStationary bool
}

// Approximate Dickey-Fuller critical values for the constant, no-trend
// regression.
var adfCriticalVals = map[string]float64{
	"1%":  -3.43,
	"5%":  -2.86,
	"10%": -2.57,
}

// ADF performs the Augmented Dickey-Fuller test for a unit root, regressing
// the first difference on the lagged level and maxLag lagged differences
// (with constant). The null hypothesis is that the series has a unit root;
// IsStationary reports rejection at the 5% level. maxLag <= 0 selects
// floor((n-1)^(1/3)).
func ADF(x []float64, maxLag int) (*ADFResult, error) {
	n := len(x)
	if n < 12 {
		return nil, timeseries.ErrInvalidOrder
	}

	if maxLag <= 0 {
		maxLag = int(math.Floor(math.Pow(float64(n-1), 1.0/3.0)))
	}
	if maxLag > n-11 {
		maxLag = n - 11
	}
	if maxLag < 1 {
		maxLag = 1
	}

	diff := make([]float64, n-1)
	for i := 1; i < n; i++ {
		diff[i-1] = x[i] - x[i-1]
	}

	nObs := n - maxLag - 1
	cols := 1 + maxLag
	X := mat.NewDense(nObs, cols, nil)
	y := make([]float64, nObs)
	for i := 0; i < nObs; i++ {
		t := i + maxLag
		y[i] = diff[t]
		X.Set(i, 0, x[t]) // lagged level
		for j := 1; j <= maxLag; j++ {
			X.Set(i, j, diff[t-j])
		}
	}

	lm := regress.NewLinearModel(true)
	if err := lm.Fit(X, y); err != nil {
		return nil, err
	}
	if len(lm.StdErrs) < 2 || lm.StdErrs[1] == 0 {
		return nil, regress.ErrSingularMatrix
	}

	tStat := lm.Coefficients[0] / lm.StdErrs[1]

	return &ADFResult{
		Statistic:    tStat,
		Lags:         maxLag,
		NObs:         nObs,
		CriticalVals: adfCriticalVals,
		IsStationary: tStat < adfCriticalVals["5%"],
	}, nil
}

// NDiffs returns the number of first differences, capped at maxD, after
// which x tests stationary under ADF. maxD <= 0 defaults to 2.
func NDiffs(x []float64, maxD int) int {
	if maxD <= 0 {
		maxD = 2
	}

	cur := append([]float64(nil), x...)
	for d := 0; d < maxD; d++ {
		res, err := ADF(cur, 0)
		if err != nil || res.IsStationary {
			return d
		}
		// Drop the retained base value so the next test sees pure
		// differences.
		cur = timeseries.Difference(cur, 1)[1:]
	}

	return maxD
}
