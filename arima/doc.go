// Package arima implements AutoRegressive Integrated Moving Average
// (ARIMA) models fitted by ordinary least squares on lagged features.
//
// An ARIMA(p,d,q) model combines:
//   - AR(p): regression on the previous p values
//   - I(d): differencing of order d to remove trend
//   - MA(q): regression on the previous q noise terms
//
// The noise terms are unobservable, so the MA features use the residuals
// of an internal pure AR model fitted on the same (differenced) series as
// a quasi-white-noise proxy. AR and MA lag windows are concatenated into a
// single design matrix and solved in one closed-form OLS fit with
// intercept, so the model composes a plain linear model rather than using
// a bespoke ARMA estimator.
//
// # Basic Usage
//
//	model := arima.New(1, 1, 1)
//	if err := model.Fit(values); err != nil {
//	    log.Fatal(err)
//	}
//
//	// In-sample output plus residuals on the differenced scale.
//	pred, resid, _ := model.Predict(values)
//
//	// History plus 10 future steps, back on the original scale.
//	out, _ := model.Forecast(values, 10)
//
// Future noise terms are zero in expectation, so forecasts more than q
// steps ahead are carried by the AR part alone and revert toward the model
// mean. That is a property of the model class, not a defect.
//
// # Model Selection
//
// Compare fitted models via Summary (AIC, AICc, BIC, Ljung-Box on the
// residuals), or let AutoFit search:
//
//	result, err := arima.AutoFit(values, nil)
//	// result.Model is fitted; result.Order holds the selected (p,d,q)
//
// # Concurrency
//
// A Model retains residuals across calls and refits its internal noise
// proxy during feature preparation. It is single-owner state; guard it
// externally if it must be shared.
package arima
