// Package stats provides autocorrelation estimators and diagnostics for
// time series analysis.
//
// # Autocorrelation
//
// Estimate correlation structure and its sampling bounds:
//
//	acf, _ := stats.ACF(x, 20)
//	pacf, _ := stats.PACF(x, 20)
//
//	band := stats.ConfidenceBand(acf, len(x), 0.05)
//	spikes := stats.SignificantLags(acf, band)
//
// ACF and PACF return values indexed by lag 0..maxLag with lag 0 fixed at
// 1. PACF uses the regression method: each lag's value is the correlation
// of two residual vectors after partialling out the intermediate lags, so
// its cost grows quadratically with the lag count.
//
// Inputs with zero variance fail fast with ErrDegenerateInput rather than
// producing NaN.
//
// # Residual Diagnostics
//
// Check whether model residuals look like white noise:
//
//	lb, _ := stats.LjungBox(resid, 10, p+q)
//	if lb.PValue > 0.05 {
//	    // no remaining autocorrelation
//	}
//
//	dw, _ := stats.DurbinWatson(resid)
//
// # Stationarity
//
// ADF tests for a unit root; NDiffs picks the differencing order by
// applying it repeatedly:
//
//	d := stats.NDiffs(x, 2)
package stats
