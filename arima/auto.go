package arima

import (
	"errors"
	"math"

	"github.com/olslab/arimalite/stats"
)

// Config controls the AutoFit search space.
type Config struct {
	MaxP      int    // maximum AR order (default 5)
	MaxD      int    // maximum differencing order (default 2)
	MaxQ      int    // maximum MA order (default 5)
	Criterion string // "aic" (default) or "bic"
}

// DefaultConfig returns the default AutoFit configuration.
func DefaultConfig() *Config {
	return &Config{MaxP: 5, MaxD: 2, MaxQ: 5, Criterion: "aic"}
}

// Result represents the outcome of an AutoFit search.
type Result struct {
	Model           *Model
	Order           Order
	Criterion       float64
	ModelsEvaluated int
}

// AutoFit selects the differencing order with repeated ADF tests, then
// grid-searches AR and MA orders up to the configured maxima, scoring each
// fitted candidate by the chosen information criterion. The returned model
// is already fitted on x.
func AutoFit(x []float64, cfg *Config) (*Result, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	d := stats.NDiffs(x, cfg.MaxD)

	best := &Result{Criterion: math.Inf(1)}
	for p := 0; p <= cfg.MaxP; p++ {
		for q := 0; q <= cfg.MaxQ; q++ {
			if p == 0 && q == 0 {
				continue
			}

			model := New(p, d, q)
			if err := model.Fit(x); err != nil {
				continue
			}
			best.ModelsEvaluated++

			s := model.Summary()
			score := s.AIC
			if cfg.Criterion == "bic" {
				score = s.BIC
			}
			if score < best.Criterion {
				best.Model = model
				best.Order = model.Order
				best.Criterion = score
			}
		}
	}

	if best.Model == nil {
		return nil, errors.New("arima: no candidate model could be fitted")
	}

	return best, nil
}
