// Package arima implements ARIMA (AutoRegressive Integrated Moving Average)
// models fitted by ordinary least squares on lagged features.
package arima

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/olslab/arimalite/regress"
	"github.com/olslab/arimalite/timeseries"
)

var (
	// ErrNoFeatures is returned when both p and q are zero: the model has
	// no regressors to fit.
	ErrNoFeatures = errors.New("arima: model with p=0 and q=0 has no features")

	// ErrNotFitted is returned by Predict and Forecast before a successful
	// Fit.
	ErrNotFitted = errors.New("arima: model must be fitted before prediction")

	// ErrInvalidHorizon is returned by Forecast for a non-positive horizon.
	ErrInvalidHorizon = errors.New("arima: forecast horizon must be at least 1")
)

// Order holds the ARIMA hyperparameters.
type Order struct {
	P int // AR order
	D int // differencing order
	Q int // MA order
}

// Model is an ARIMA(p,d,q) model. The AR part regresses on lag windows of
// the d-times differenced series; the MA part regresses on lag windows of
// the residuals of an internal pure AR model, which stand in for the
// unobservable noise terms. Both parts feed a single OLS fit with
// intercept.
//
// A Model is single-owner state: Fit, Predict, and Forecast update the
// stored residuals, so a Model must not be shared between goroutines
// without external synchronization.
type Model struct {
	Order Order

	lm *regress.LinearModel
	ar *Model // noise-proxy sub-model, present iff Q > 0

	fitted    bool
	prepared  *Prepared
	residuals []float64
}

// Prepared holds a feature matrix and its aligned target so that work done
// during Fit can be reused by Predict.
type Prepared struct {
	Features *mat.Dense
	Target   []float64
}

// New constructs an ARIMA model with the given order. The pure AR sub-model
// that proxies the noise sequence for the MA features is built here rather
// than lazily on first use. For a pure MA model (p=0) the proxy uses order
// q, since an AR(0) regression would have nothing to fit.
func New(p, d, q int) *Model {
	m := &Model{
		Order: Order{P: p, D: d, Q: q},
		lm:    regress.NewLinearModel(true),
	}
	if q > 0 {
		arOrder := p
		if arOrder == 0 {
			arOrder = q
		}
		m.ar = &Model{
			Order: Order{P: arOrder},
			lm:    regress.NewLinearModel(true),
		}
	}

	return m
}

// PrepareFeatures builds the regression design for x: lag-p features of the
// (differenced) series and, when q > 0, lag-q features of the residuals of
// the internal pure AR model with the first residual forced to zero. Both
// blocks are built over zero-padded series, so every observation yields a
// row and the target is the full (differenced) series.
//
// When q > 0 this refits the internal AR sub-model on x as a side effect.
func (m *Model) PrepareFeatures(x []float64) (*Prepared, error) {
	p, d, q := m.Order.P, m.Order.D, m.Order.Q
	if p == 0 && q == 0 {
		return nil, ErrNoFeatures
	}

	if d > 0 {
		x = timeseries.Difference(x, d)
	}

	var arFeat, maFeat *mat.Dense

	if q > 0 {
		resid, err := m.ar.fitResiduals(x)
		if err != nil {
			return nil, fmt.Errorf("arima: noise proxy fit: %w", err)
		}
		resid[0] = 0 // no prior error term at t=0
		maFeat, _, err = timeseries.PaddedLagView(resid, q)
		if err != nil {
			return nil, err
		}
	}

	if p > 0 {
		var err error
		arFeat, _, err = timeseries.PaddedLagView(x, p)
		if err != nil {
			return nil, err
		}
	}

	var feats *mat.Dense
	switch {
	case arFeat != nil && maFeat != nil:
		ra, _ := arFeat.Dims()
		rm, _ := maFeat.Dims()
		rows := min(ra, rm)
		feats = mat.NewDense(rows, p+q, nil)
		feats.Slice(0, rows, 0, p).(*mat.Dense).Copy(arFeat.Slice(0, rows, 0, p))
		feats.Slice(0, rows, p, p+q).(*mat.Dense).Copy(maFeat.Slice(0, rows, 0, q))
	case arFeat != nil:
		feats = arFeat
	default:
		feats = maFeat
	}

	rows, _ := feats.Dims()
	target := append([]float64(nil), x[:rows]...)

	return &Prepared{Features: feats, Target: target}, nil
}

// fitResiduals fits the model on an already-differenced series and returns
// the in-sample residuals on that scale.
func (m *Model) fitResiduals(x []float64) ([]float64, error) {
	prep, err := m.PrepareFeatures(x)
	if err != nil {
		return nil, err
	}
	pred, err := m.lm.FitPredict(prep.Features, prep.Target)
	if err != nil {
		return nil, err
	}
	m.fitted = true

	resid := make([]float64, len(prep.Target))
	for i := range resid {
		resid[i] = prep.Target[i] - pred[i]
	}
	m.residuals = resid

	return resid, nil
}

// Fit estimates the model coefficients on x. The prepared features are
// retained so that FitPredict can reuse them.
func (m *Model) Fit(x []float64) error {
	o := m.Order
	if o.P == 0 && o.Q == 0 {
		return ErrNoFeatures
	}
	if len(x) < o.P+o.Q+o.D+2 {
		return fmt.Errorf("arima: series too short for order (%d,%d,%d): %w",
			o.P, o.D, o.Q, timeseries.ErrInvalidOrder)
	}

	prep, err := m.PrepareFeatures(x)
	if err != nil {
		return err
	}
	pred, err := m.lm.FitPredict(prep.Features, prep.Target)
	if err != nil {
		return err
	}
	m.fitted = true
	m.prepared = prep

	resid := make([]float64, len(prep.Target))
	for i := range resid {
		resid[i] = prep.Target[i] - pred[i]
	}
	m.residuals = resid

	return nil
}

// FitPredict fits the model on x and returns the in-sample output, reusing
// the features prepared during the fit.
func (m *Model) FitPredict(x []float64) ([]float64, error) {
	if err := m.Fit(x); err != nil {
		return nil, err
	}
	pred, _, err := m.Predict(x, m.prepared)

	return pred, err
}

// Predict returns the model output for x together with the residual vector
// on the differenced scale. A Prepared design from a previous call may be
// supplied to skip the feature computation. When d > 0 the returned output
// is integrated back to the original scale via UndoDifference; the
// residuals are not.
//
// The residuals are also retained on the model for Summary, overwriting
// those of any previous call.
func (m *Model) Predict(x []float64, prepared ...*Prepared) ([]float64, []float64, error) {
	if !m.fitted {
		return nil, nil, ErrNotFitted
	}

	var prep *Prepared
	if len(prepared) > 0 && prepared[0] != nil {
		prep = prepared[0]
	} else {
		var err error
		prep, err = m.PrepareFeatures(x)
		if err != nil {
			return nil, nil, err
		}
	}

	raw, err := m.lm.Predict(prep.Features)
	if err != nil {
		return nil, nil, err
	}

	resid := make([]float64, len(prep.Target))
	for i := range resid {
		resid[i] = prep.Target[i] - raw[i]
	}
	m.residuals = resid

	out := raw
	if m.Order.D > 0 {
		out = timeseries.UndoDifference(raw, m.Order.D)
	}

	return out, resid, nil
}

// Forecast extends the in-sample prediction by steps values. Each future
// step regresses on the p most recent values of the working sequence with
// the MA columns forced to zero, since future noise terms are zero in
// expectation; beyond q steps the trajectory is therefore driven by the AR
// part alone and reverts toward the model mean. The result is integrated
// back to the original scale and has length len(x)+steps.
func (m *Model) Forecast(x []float64, steps int) ([]float64, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}
	if steps < 1 {
		return nil, ErrInvalidHorizon
	}

	prep, err := m.PrepareFeatures(x)
	if err != nil {
		return nil, err
	}
	raw, err := m.lm.Predict(prep.Features)
	if err != nil {
		return nil, err
	}

	p, q := m.Order.P, m.Order.Q
	work := append(make([]float64, 0, len(raw)+steps), raw...)

	for s := 0; s < steps; s++ {
		row := make([]float64, p+q)
		for j := 0; j < p; j++ {
			if idx := len(work) - p + j; idx >= 0 {
				row[j] = work[idx]
			}
		}
		step, err := m.lm.Predict(mat.NewDense(1, p+q, row))
		if err != nil {
			return nil, err
		}
		work = append(work, step[0])
	}

	if m.Order.D > 0 {
		return timeseries.UndoDifference(work, m.Order.D), nil
	}

	return work, nil
}

// Residuals returns a copy of the residuals from the most recent
// Fit/Predict call, or nil for an unfitted model.
func (m *Model) Residuals() []float64 {
	if !m.fitted {
		return nil
	}

	return append([]float64(nil), m.residuals...)
}

// Intercept returns the fitted intercept.
func (m *Model) Intercept() float64 {
	return m.lm.Intercept
}

// Coefficients returns the fitted slope coefficients, AR lags first
// (oldest to newest), then MA lags.
func (m *Model) Coefficients() []float64 {
	return append([]float64(nil), m.lm.Coefficients...)
}
