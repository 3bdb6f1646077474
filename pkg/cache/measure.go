package cache

import (
	"context"
	"fmt"
	"strconv"

	"github.com/matzehuels/gridflow/pkg/grid"
	"github.com/matzehuels/gridflow/pkg/observability"
)

// =============================================================================
// Cached Measurer
// =============================================================================

// MeasurerConfig holds the construction parameters for a CachedMeasurer.
type MeasurerConfig struct {
	// Cache is the persistent backend. Nil disables caching.
	Cache Cache

	// Keyer generates measurement keys. Nil selects the default scheme.
	Keyer Keyer

	// Fingerprint identifies the measured configuration. It must cover
	// everything the measurement depends on beyond the environment and the
	// candidate width, including the prototype content.
	Fingerprint string

	// Environment is the viewport the measurements are valid for.
	Environment grid.Environment

	// Inner performs the measurement on a miss. Nil selects TextMeasurer.
	Inner grid.Measurer

	// Refresh skips cache lookups while still storing fresh results.
	Refresh bool
}

// CachedMeasurer wraps a measurer with persistent caching so prototype
// measurements survive across runs. Like Environment it is scoped to one
// layout pass: the construction context carries through every backend call.
type CachedMeasurer struct {
	ctx         context.Context
	cache       Cache
	keyer       Keyer
	fingerprint string
	env         grid.Environment
	inner       grid.Measurer
	refresh     bool
}

var _ grid.Measurer = (*CachedMeasurer)(nil)

// NewCachedMeasurer creates a measurer that consults the cache before
// delegating to the inner measurer.
func NewCachedMeasurer(ctx context.Context, cfg MeasurerConfig) *CachedMeasurer {
	if ctx == nil {
		ctx = context.Background()
	}
	c := cfg.Cache
	if c == nil {
		c = NewNullCache()
	}
	keyer := cfg.Keyer
	if keyer == nil {
		keyer = NewDefaultKeyer()
	}
	inner := cfg.Inner
	if inner == nil {
		inner = grid.TextMeasurer{}
	}
	return &CachedMeasurer{
		ctx:         ctx,
		cache:       c,
		keyer:       keyer,
		fingerprint: cfg.Fingerprint,
		env:         cfg.Environment,
		inner:       inner,
		refresh:     cfg.Refresh,
	}
}

// NaturalHeight returns the cached height for the configuration and width,
// measuring and storing it on a miss. Backend errors degrade to a fresh
// measurement rather than failing the layout pass.
func (m *CachedMeasurer) NaturalHeight(target grid.Prototype, width float64) float64 {
	key := m.keyer.MeasureKey(fmt.Sprintf("%s:w%g", m.fingerprint, width), m.env)

	if !m.refresh {
		if data, hit, err := m.cache.Get(m.ctx, key); err == nil && hit {
			if h, err := strconv.ParseFloat(string(data), 64); err == nil {
				observability.Cache().OnCacheHit(m.ctx, key)
				return h
			}
			// An unparsable entry falls through to remeasure
		}
		observability.Cache().OnCacheMiss(m.ctx, key)
	}

	h := m.inner.NaturalHeight(target, width)

	data := []byte(strconv.FormatFloat(h, 'g', -1, 64))
	if err := m.cache.Set(m.ctx, key, data, DefaultTTL); err == nil {
		observability.Cache().OnCacheSet(m.ctx, key, len(data))
	}
	return h
}
