// Package timeseries provides the sequence primitives the rest of the
// library is built on: lag-window feature construction, length-preserving
// differencing with an exact inverse, and basic series moments.
//
// # Lag Features
//
// Turn a series into a regression design of trailing windows:
//
//	X, y, err := timeseries.LagView(x, 3)
//	// row i of X is x[i:i+3], y[i] is x[i+3]
//
// PaddedLagView produces the same windows over a zero-padded copy so every
// observation yields a row; the ARIMA fit uses this so the target stays the
// full series.
//
// # Differencing
//
// Difference keeps the first element as the cumulative base rather than
// dropping it, so series length is invariant and UndoDifference (repeated
// cumulative summation) is an exact inverse at any order:
//
//	d := timeseries.Difference(x, 2)
//	back := timeseries.UndoDifference(d, 2) // equals x
package timeseries
