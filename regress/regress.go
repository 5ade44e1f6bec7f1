// Package regress implements ordinary least squares linear regression.
package regress

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrSingularMatrix is returned when the normal equations cannot be
	// solved because XᵀX is singular or numerically so. The package fails
	// fast instead of returning a garbage coefficient vector.
	ErrSingularMatrix = errors.New("regress: design matrix is singular")

	// ErrNotFitted is returned by Predict on a model that has not been
	// fitted.
	ErrNotFitted = errors.New("regress: model has not been fitted")

	// ErrDimensionMismatch is returned when the target length does not
	// match the feature row count, or a prediction input has a different
	// column count than the fitting input.
	ErrDimensionMismatch = errors.New("regress: dimension mismatch")
)

// LinearModel fits and predicts via the closed-form ordinary least squares
// solution beta = (XᵀX)⁻¹Xᵀy. The zero value is a no-intercept model ready
// for Fit; a fitted model is safe for concurrent Predict calls but Fit must
// not race with anything.
type LinearModel struct {
	// FitIntercept prepends a constant column of ones to the design matrix.
	FitIntercept bool

	// Intercept and Coefficients hold the solution after a successful Fit.
	// Intercept is 0 for a no-intercept model.
	Intercept    float64
	Coefficients []float64

	// StdErrs holds the standard error of each fitted parameter, intercept
	// first when the model has one. Nil when there are no residual degrees
	// of freedom.
	StdErrs []float64

	fitted bool
	nCols  int
}

// NewLinearModel returns a LinearModel with the given intercept setting.
func NewLinearModel(fitIntercept bool) *LinearModel {
	return &LinearModel{FitIntercept: fitIntercept}
}

// design returns X with the constant column prepended when the model has an
// intercept.
func (m *LinearModel) design(X mat.Matrix) *mat.Dense {
	r, c := X.Dims()
	if !m.FitIntercept {
		d := mat.NewDense(r, c, nil)
		d.Copy(X)
		return d
	}

	d := mat.NewDense(r, c+1, nil)
	for i := 0; i < r; i++ {
		d.Set(i, 0, 1)
	}
	d.Slice(0, r, 1, c+1).(*mat.Dense).Copy(X)

	return d
}

// Fit solves the normal equations for X and y and stores the result.
// It returns ErrSingularMatrix when XᵀX cannot be inverted.
func (m *LinearModel) Fit(X mat.Matrix, y []float64) error {
	r, c := X.Dims()
	if r == 0 || c == 0 || len(y) != r {
		return ErrDimensionMismatch
	}

	d := m.design(X)
	_, k := d.Dims()

	var xtx mat.Dense
	xtx.Mul(d.T(), d)

	var xtxInv mat.Dense
	if err := xtxInv.Inverse(&xtx); err != nil {
		return ErrSingularMatrix
	}

	yv := mat.NewVecDense(r, y)
	var xty mat.VecDense
	xty.MulVec(d.T(), yv)

	var beta mat.VecDense
	beta.MulVec(&xtxInv, &xty)

	raw := make([]float64, k)
	copy(raw, beta.RawVector().Data)

	if m.FitIntercept {
		m.Intercept = raw[0]
		m.Coefficients = raw[1:]
	} else {
		m.Intercept = 0
		m.Coefficients = raw
	}
	m.nCols = c
	m.fitted = true

	m.StdErrs = stdErrs(d, raw, y, &xtxInv)

	return nil
}

// stdErrs computes the parameter standard errors from the residual variance
// and the diagonal of (XᵀX)⁻¹.
func stdErrs(d *mat.Dense, beta, y []float64, xtxInv *mat.Dense) []float64 {
	r, k := d.Dims()
	if r <= k {
		return nil
	}

	var fitted mat.VecDense
	fitted.MulVec(d, mat.NewVecDense(k, beta))

	sse := 0.0
	for i := 0; i < r; i++ {
		resid := y[i] - fitted.AtVec(i)
		sse += resid * resid
	}
	sigma2 := sse / float64(r-k)

	se := make([]float64, k)
	for j := 0; j < k; j++ {
		if v := sigma2 * xtxInv.At(j, j); v > 0 {
			se[j] = math.Sqrt(v)
		}
	}

	return se
}

// Predict returns X·beta using the same constant-column convention as Fit.
func (m *LinearModel) Predict(X mat.Matrix) ([]float64, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}
	r, c := X.Dims()
	if c != m.nCols {
		return nil, ErrDimensionMismatch
	}

	d := m.design(X)

	beta := make([]float64, 0, len(m.Coefficients)+1)
	if m.FitIntercept {
		beta = append(beta, m.Intercept)
	}
	beta = append(beta, m.Coefficients...)

	var out mat.VecDense
	out.MulVec(d, mat.NewVecDense(len(beta), beta))

	pred := make([]float64, r)
	for i := 0; i < r; i++ {
		pred[i] = out.AtVec(i)
	}

	return pred, nil
}

// FitPredict fits the model on X, y and returns the in-sample prediction.
func (m *LinearModel) FitPredict(X mat.Matrix, y []float64) ([]float64, error) {
	if err := m.Fit(X, y); err != nil {
		return nil, err
	}
	return m.Predict(X)
}

// Fitted reports whether Fit has completed successfully.
func (m *LinearModel) Fitted() bool {
	return m.fitted
}
