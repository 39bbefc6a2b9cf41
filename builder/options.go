package builder

import (
	"fmt"
	"math/rand"
)

// Option customizes a build before any Constructor runs.
type Option func(*config)

// config is resolved once per BuildNetwork call and passed by value.
type config struct {
	rng      *rand.Rand
	idFn     IDFn
	weightFn WeightFn
}

func newConfig(opts ...Option) config {
	c := config{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithSeed makes stochastic constructors reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies the RNG directly. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithIDScheme sets how station indices become names. Panics on nil.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *config) { c.idFn = fn }
}

// WithWeightFn sets the travel time drawn for every connection. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *config) { c.weightFn = fn }
}

// WithStationPrefix names stations prefix0, prefix1, ...
func WithStationPrefix(prefix string) Option {
	if prefix == "" {
		panic(fmt.Sprintf("builder: WithStationPrefix(%q)", prefix))
	}
	return WithIDScheme(PrefixIDFn(prefix))
}
