package stats

import (
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/olslab/arimalite/timeseries"
)

// LjungBoxResult represents the result of a Ljung-Box test.
type LjungBoxResult struct {
	Statistic float64
	PValue    float64
	Lags      int
	DOF       int
}

// LjungBox tests residuals for autocorrelation up to the given lag. The
// null hypothesis is that there is none; a small p-value means the
// residuals still carry structure. fitdf is the number of parameters
// estimated by the model that produced the residuals (p+q for ARIMA).
func LjungBox(resid []float64, lags, fitdf int) (*LjungBoxResult, error) {
	n := len(resid)
	if n < 3 || lags < 1 {
		return nil, timeseries.ErrInvalidOrder
	}
	if lags > n-2 {
		lags = n - 2
	}

	acf, err := ACF(resid, lags)
	if err != nil {
		return nil, err
	}

	q := 0.0
	for k := 1; k <= lags; k++ {
		q += acf[k] * acf[k] / float64(n-k)
	}
	q *= float64(n) * float64(n+2)

	dof := lags - fitdf
	if dof < 1 {
		dof = 1
	}
	chi := distuv.ChiSquared{K: float64(dof)}

	return &LjungBoxResult{
		Statistic: q,
		PValue:    1 - chi.CDF(q),
		Lags:      lags,
		DOF:       dof,
	}, nil
}

// BoxPierceResult represents the result of a Box-Pierce test.
type BoxPierceResult struct {
	Statistic float64
	PValue    float64
	Lags      int
	DOF       int
}

// BoxPierce is the simpler portmanteau test; Ljung-Box is preferred for
// small samples.
func BoxPierce(resid []float64, lags, fitdf int) (*BoxPierceResult, error) {
	n := len(resid)
	if n < 3 || lags < 1 {
		return nil, timeseries.ErrInvalidOrder
	}
	if lags > n-2 {
		lags = n - 2
	}

	acf, err := ACF(resid, lags)
	if err != nil {
		return nil, err
	}

	q := 0.0
	for k := 1; k <= lags; k++ {
		q += acf[k] * acf[k]
	}
	q *= float64(n)

	dof := lags - fitdf
	if dof < 1 {
		dof = 1
	}
	chi := distuv.ChiSquared{K: float64(dof)}

	return &BoxPierceResult{
		Statistic: q,
		PValue:    1 - chi.CDF(q),
		Lags:      lags,
		DOF:       dof,
	}, nil
}

// DurbinWatson returns the Durbin-Watson statistic for first-order
// autocorrelation in residuals. Values near 2 indicate none; below 2,
// positive autocorrelation; above 2, negative.
func DurbinWatson(resid []float64) (float64, error) {
	if len(resid) < 2 {
		return 0, ErrLengthMismatch
	}

	num, den := 0.0, 0.0
	for i, r := range resid {
		den += r * r
		if i > 0 {
			d := r - resid[i-1]
			num += d * d
		}
	}
	if den == 0 {
		return 0, ErrDegenerateInput
	}

	return num / den, nil
}
