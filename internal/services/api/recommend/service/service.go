// Package service contains the recommendation selector cascade
package service

import (
	"context"
	"time"

	"davenport/internal/platform/logger"
	catalogdom "davenport/internal/services/api/catalog/domain"
	"davenport/internal/services/api/recommend/domain"
	signalsdom "davenport/internal/services/api/signals/domain"
)

const (
	defaultLimit = 6
	maxLimit     = 100

	// similar products sit in the same category within +/-30% of the
	// reference price
	priceBandLow  = 0.7
	priceBandHigh = 1.3

	trendingWindow = 7 * 24 * time.Hour
)

// Service defines the service contract for recommendations
type Service interface{ domain.ServicePort }

// Svc implements the Service interface by walking an ordered strategy
// cascade until the quota is filled
type Svc struct {
	catalog    catalogdom.ReaderPort
	signals    signalsdom.AffinityPort
	strategies []Strategy
	now        func() time.Time
}

// Option mutates service construction
type Option func(*Svc)

// WithClock overrides the service clock, for tests
func WithClock(fn func() time.Time) Option {
	return func(s *Svc) {
		if fn != nil {
			s.now = fn
		}
	}
}

// WithStrategies replaces the default cascade, for tests
func WithStrategies(st ...Strategy) Option {
	return func(s *Svc) { s.strategies = st }
}

// New creates a new recommendation service over the catalog and signals ports
func New(catalog catalogdom.ReaderPort, signals signalsdom.AffinityPort, opts ...Option) *Svc {
	if catalog == nil {
		panic("recommend.Service requires a non nil catalog port")
	}
	if signals == nil {
		panic("recommend.Service requires a non nil signals port")
	}
	s := &Svc{catalog: catalog, signals: signals, now: time.Now}
	s.strategies = []Strategy{
		collaborative{s},
		contentBased{s},
		trending{s},
		featured{s},
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// cascade is the per-request accumulator shared by all stages
type cascade struct {
	in    domain.SelectInput
	limit int
	seen  map[string]struct{}
	out   []catalogdom.Product
}

func (c *cascade) remaining() int { return c.limit - len(c.out) }

// add keeps first occurrence per id and never grows past the quota
func (c *cascade) add(products []catalogdom.Product) {
	for _, p := range products {
		if c.remaining() <= 0 {
			return
		}
		if _, dup := c.seen[p.ID]; dup {
			continue
		}
		c.seen[p.ID] = struct{}{}
		c.out = append(c.out, p)
	}
}

// Select runs the cascade. A stage that errors contributes nothing and the
// walk continues; the error surfaces only when every stage failed and there
// is nothing to return.
func (s *Svc) Select(ctx context.Context, in domain.SelectInput) ([]catalogdom.Product, error) {
	limit := in.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	c := &cascade{in: in, limit: limit, seen: make(map[string]struct{})}
	if in.ProductID != "" {
		// the reference product never recommends itself
		c.seen[in.ProductID] = struct{}{}
	}

	var failures int
	var lastErr error
	for _, st := range s.strategies {
		if c.remaining() <= 0 {
			break
		}
		got, err := st.Attempt(ctx, c)
		if err != nil {
			failures++
			lastErr = err
			logger.C(ctx).Warn().Err(err).Str("strategy", st.Name()).Msg("recommendation strategy failed")
			continue
		}
		c.add(got)
	}

	if len(c.out) == 0 && lastErr != nil && failures == len(s.strategies) {
		return nil, lastErr
	}
	if c.out == nil {
		c.out = []catalogdom.Product{}
	}
	return c.out, nil
}
