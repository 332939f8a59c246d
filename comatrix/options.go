package comatrix

import "fmt"

// DefaultMinFrequency keeps every category that occurs at least once.
const DefaultMinFrequency = 1

// Option customizes Build.
type Option func(*Options)

// Options holds resolved Build settings.
type Options struct {
	minFrequency int
	allow        map[string]struct{}
}

// WithMinFrequency drops categories occurring fewer than n times.
// Panics if n < 1.
func WithMinFrequency(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("comatrix: WithMinFrequency(%d): n must be >= 1", n))
	}

	return func(o *Options) { o.minFrequency = n }
}

// WithAllowList restricts the matrix to the given categories. Repeated
// calls accumulate. An empty list keeps the filter off.
func WithAllowList(categories ...string) Option {
	return func(o *Options) {
		if len(categories) == 0 {
			return
		}
		if o.allow == nil {
			o.allow = make(map[string]struct{}, len(categories))
		}
		for _, c := range categories {
			o.allow[c] = struct{}{}
		}
	}
}

func gatherOptions(user ...Option) Options {
	o := Options{minFrequency: DefaultMinFrequency}
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

func (o Options) allowed(c string) bool {
	if o.allow == nil {
		return true
	}
	_, ok := o.allow[c]

	return ok
}
