package entropyweight

import (
	"fmt"
	"math"
)

// DefaultEpsilon is the Σ dⱼ threshold at or below which weights are undefined.
const DefaultEpsilon = 1e-12

// Option customizes Compute.
type Option func(*Options)

// Options holds resolved Compute settings.
type Options struct {
	preNormalized bool
	eps           float64
}

// WithPreNormalized declares that the table is already scaled into [0,1]
// and skips min-max normalisation. Negative cells are then rejected.
func WithPreNormalized() Option {
	return func(o *Options) { o.preNormalized = true }
}

// WithEpsilon sets the total-redundancy threshold. Panics on negative or NaN.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(fmt.Sprintf("entropyweight: WithEpsilon(%v): eps must be finite and >= 0", eps))
	}

	return func(o *Options) { o.eps = eps }
}

func gatherOptions(user ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
