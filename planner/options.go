package planner

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/metroroute/logging"
	"github.com/katalvlaran/metroroute/metrics"
)

// ErrOptionViolation reports an invalid Option passed to New.
var ErrOptionViolation = errors.New("planner: invalid option")

// Option configures a Planner.
type Option func(*options)

type options struct {
	logger     logging.Logger
	metrics    *metrics.Registry
	cacheSize  int
	maxCost    int64
	avoidLines []string
	err        error
}

func defaultOptions() options {
	return options{
		logger:    logging.NewNopLogger(),
		cacheSize: DefaultCacheSize,
	}
}

// DefaultCacheSize is the number of itineraries kept per published network.
const DefaultCacheSize = 256

// WithLogger routes query and publish logs to l.
func WithLogger(l logging.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics records query and network metrics in r.
func WithMetrics(r *metrics.Registry) Option {
	return func(o *options) { o.metrics = r }
}

// WithCacheSize bounds the LRU itinerary cache. 0 disables caching.
func WithCacheSize(n int) Option {
	return func(o *options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: cache size cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.cacheSize = n
	}
}

// WithMaxCost drops routes longer than max minutes. 0 means unlimited.
func WithMaxCost(max int64) Option {
	return func(o *options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: max cost cannot be negative (%d)", ErrOptionViolation, max)
			return
		}
		o.maxCost = max
	}
}

// WithAvoidLines excludes lines from every query.
func WithAvoidLines(lines ...string) Option {
	return func(o *options) {
		for _, l := range lines {
			if l == "" {
				o.err = fmt.Errorf("%w: empty line label", ErrOptionViolation)
				return
			}
		}
		o.avoidLines = append(o.avoidLines, lines...)
	}
}
