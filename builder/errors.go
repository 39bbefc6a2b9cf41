package builder

import "errors"

// ErrTooFewStations reports a size parameter below a constructor's minimum.
var ErrTooFewStations = errors.New("builder: parameter too small")

// ErrNeedRandSource reports a stochastic constructor run without WithSeed or
// WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed wraps a core error raised while inserting connections.
var ErrConstructFailed = errors.New("builder: construction failed")
