// Package sim generates synthetic realizations of the standard time series
// processes. All generators are deterministic for a fixed seed, which is
// what the tests and the demo rely on.
package sim

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

func normal(sigma float64, seed uint64) distuv.Normal {
	return distuv.Normal{Mu: 0, Sigma: sigma, Src: rand.NewSource(seed)}
}

// WhiteNoise returns n independent draws from N(0, sigma²). sigma must be
// positive.
func WhiteNoise(n int, sigma float64, seed uint64) []float64 {
	dist := normal(sigma, seed)
	out := make([]float64, n)
	for i := range out {
		out[i] = dist.Rand()
	}

	return out
}

// AR simulates an autoregressive process driven by the given coefficients,
// x[t] = phi[0]*x[t-1] + ... + phi[p-1]*x[t-p] + e[t].
func AR(phi []float64, n int, sigma float64, seed uint64) []float64 {
	dist := normal(sigma, seed)
	out := make([]float64, n)
	for t := range out {
		v := dist.Rand()
		for j, c := range phi {
			if t-j-1 >= 0 {
				v += c * out[t-j-1]
			}
		}
		out[t] = v
	}

	return out
}

// MA simulates a moving average process,
// x[t] = e[t] + theta[0]*e[t-1] + ... + theta[q-1]*e[t-q].
func MA(theta []float64, n int, sigma float64, seed uint64) []float64 {
	dist := normal(sigma, seed)
	eps := make([]float64, n)
	out := make([]float64, n)
	for t := range out {
		eps[t] = dist.Rand()
		v := eps[t]
		for j, c := range theta {
			if t-j-1 >= 0 {
				v += c * eps[t-j-1]
			}
		}
		out[t] = v
	}

	return out
}

// RandomWalk returns the cumulative sum of white noise, a canonical
// non-stationary series.
func RandomWalk(n int, sigma float64, seed uint64) []float64 {
	out := WhiteNoise(n, sigma, seed)
	floats.CumSum(out, out)

	return out
}
