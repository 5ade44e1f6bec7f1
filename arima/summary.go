package arima

import (
	"math"

	"github.com/olslab/arimalite/stats"
)

// Summary describes a fitted model.
type Summary struct {
	Order        Order
	Intercept    float64
	Coefficients []float64 // AR coefficients first, then MA
	Variance     float64   // residual variance
	LogLik       float64
	AIC          float64
	AICc         float64
	BIC          float64
	NObs         int
	LjungBox     *stats.LjungBoxResult
}

// Summary returns fit diagnostics computed from the most recent residuals,
// or nil when the model is unfitted. The log-likelihood assumes Gaussian
// errors.
func (m *Model) Summary() *Summary {
	if !m.fitted {
		return nil
	}

	n := len(m.residuals)
	k := m.Order.P + m.Order.Q + 1 // slopes + intercept

	sse := 0.0
	for _, r := range m.residuals {
		sse += r * r
	}

	variance := 0.0
	switch {
	case n > k:
		variance = sse / float64(n-k)
	case n > 0:
		variance = sse / float64(n)
	}

	nf, kf := float64(n), float64(k)

	logLik := math.Inf(-1)
	if variance > 0 {
		logLik = -nf/2*math.Log(2*math.Pi) - nf/2*math.Log(variance) - sse/(2*variance)
	}

	aic := -2*logLik + 2*kf
	aicc := math.Inf(1)
	if nf-kf-1 > 0 {
		aicc = aic + 2*kf*(kf+1)/(nf-kf-1)
	}
	bic := -2*logLik + kf*math.Log(nf)

	lb, err := stats.LjungBox(m.residuals, 10, m.Order.P+m.Order.Q)
	if err != nil {
		lb = nil
	}

	return &Summary{
		Order:        m.Order,
		Intercept:    m.lm.Intercept,
		Coefficients: append([]float64(nil), m.lm.Coefficients...),
		Variance:     variance,
		LogLik:       logLik,
		AIC:          aic,
		AICc:         aicc,
		BIC:          bic,
		NObs:         n,
		LjungBox:     lb,
	}
}
