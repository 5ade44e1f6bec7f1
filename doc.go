// Package arimalite provides ARIMA time series modeling via ordinary least
// squares on lagged features.
//
// The library builds AR and MA regressors explicitly (trailing lag windows
// of the differenced series for the AR part, lag windows of the residuals
// of an internal pure AR model for the MA part) and fits them with a single
// closed-form OLS solve. Every step of the fit-predict-forecast cycle stays
// inspectable, at the cost of the statistical efficiency of full maximum
// likelihood estimation.
//
// # Quick Start
//
// Fit an ARIMA model and forecast:
//
//	model := arima.New(1, 1, 0) // ARIMA(1,1,0)
//	if err := model.Fit(values); err != nil {
//	    log.Fatal(err)
//	}
//	out, _ := model.Forecast(values, 10) // len(values)+10 values
//
// Explore autocorrelation structure:
//
//	acf, _ := stats.ACF(values, 20)
//	pacf, _ := stats.PACF(values, 20)
//	band := stats.ConfidenceBand(acf, len(values), 0.05)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - arima: ARIMA models, model summaries, and automatic order selection
//   - regress: ordinary least squares linear regression
//   - stats: ACF, PACF, Bartlett bands, and residual diagnostics
//   - timeseries: lag features, differencing, and series moments
//   - sim: synthetic white noise, AR, MA, and random walk generators
//
// # References
//
//   - Box, G. E. P., & Jenkins, G. M. (1976). Time Series Analysis: Forecasting and Control
//   - Hyndman, R.J., & Athanasopoulos, G. (2021). Forecasting: Principles and Practice
package arimalite
