package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gridflow/pkg/cache"
	"github.com/matzehuels/gridflow/pkg/grid"
	"github.com/matzehuels/gridflow/pkg/layout"
	"github.com/matzehuels/gridflow/pkg/manifest"
	"github.com/matzehuels/gridflow/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and server can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → arrange → emit pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Load
	loadStart := time.Now()
	m, source, err := r.Load(opts)
	if err != nil {
		return nil, err
	}
	result.Manifest = m
	result.ManifestHash = cache.Hash(source)
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.SectionCount = len(m.Sections)

	r.Logger.Info("loaded manifest",
		"sections", len(m.Sections),
		"duration", result.Stats.LoadTime)

	// Stage 2: Arrange
	env := grid.NewEnvironment(opts.Width, opts.Height)
	arrangeStart := time.Now()
	l, layoutHit, err := r.ArrangeWithCacheInfo(ctx, m, result.ManifestHash, env, opts)
	if err != nil {
		return nil, err
	}
	result.Layout = l
	result.Stats.ArrangeTime = time.Since(arrangeStart)
	result.Stats.FrameCount = l.FrameCount()
	result.CacheInfo.LayoutHit = layoutHit

	r.Logger.Info("arranged layout",
		"frames", result.Stats.FrameCount,
		"cached", layoutHit,
		"duration", result.Stats.ArrangeTime)

	// Stage 3: Emit
	emitStart := time.Now()
	artifacts, err := Emit(l, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.EmitTime = time.Since(emitStart)

	r.Logger.Info("emitted artifacts",
		"formats", opts.Formats,
		"duration", result.Stats.EmitTime)

	return result, nil
}

// Load parses the manifest from its path or inline content and returns the
// manifest together with its raw source bytes.
func (r *Runner) Load(opts Options) (*manifest.Manifest, []byte, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, nil, err
	}

	if opts.Manifest != "" {
		source := []byte(opts.Manifest)
		m, err := manifest.Parse(source)
		return m, source, err
	}
	return manifest.LoadWithSource(opts.ManifestPath)
}

// ArrangeWithCacheInfo arranges the manifest with caching and returns cache
// hit info. The cache key binds the manifest content to the environment, so
// a resized viewport misses and recomputes.
func (r *Runner) ArrangeWithCacheInfo(ctx context.Context, m *manifest.Manifest, manifestHash string, env grid.Environment, opts Options) (layout.Layout, bool, error) {
	opts.SetArrangeDefaults()
	r.applyLogger(&opts)

	cacheKey := r.Keyer.LayoutKey(manifestHash, env)

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			cached, err := layout.UnmarshalLayout(data)
			if err == nil {
				observability.Cache().OnCacheHit(ctx, cacheKey)
				return cached, true, nil
			}
			// If deserialization fails, fall through to recompute
		}
		observability.Cache().OnCacheMiss(ctx, cacheKey)
	}

	sections := m.LayoutSections()
	r.attachMeasureCache(ctx, sections, manifestHash, env, opts.Refresh)

	l, err := layout.Arrange(ctx, sections, env)
	if err != nil {
		return layout.Layout{}, false, err
	}

	if data, err := layout.MarshalLayout(l); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.DefaultTTL); err == nil {
			observability.Cache().OnCacheSet(ctx, cacheKey, len(data))
		}
	}

	return l, false, nil
}

// attachMeasureCache decorates automatic-mode sections with the persistent
// measurement cache, keyed on the manifest content and the section's sizing
// configuration. Refresh skips lookups but still stores fresh measurements,
// matching the layout cache's refresh behavior.
func (r *Runner) attachMeasureCache(ctx context.Context, sections []layout.Section, manifestHash string, env grid.Environment, refresh bool) {
	for i := range sections {
		sec := &sections[i]
		if sec.Mode.Kind != grid.ModeAutomatic {
			continue
		}
		cfg := grid.StrategyConfig{Columns: sec.Columns, Mode: sec.Mode, Metrics: sec.Metrics}
		sec.Measurer = cache.NewCachedMeasurer(ctx, cache.MeasurerConfig{
			Cache:       r.Cache,
			Keyer:       r.Keyer,
			Fingerprint: manifestHash + ":" + cfg.Fingerprint(),
			Environment: env,
			Inner:       sec.Measurer,
			Refresh:     refresh,
		})
	}
}

// Arrange is a convenience wrapper that discards the cache hit info.
func (r *Runner) Arrange(ctx context.Context, m *manifest.Manifest, manifestHash string, env grid.Environment, opts Options) (layout.Layout, error) {
	l, _, err := r.ArrangeWithCacheInfo(ctx, m, manifestHash, env, opts)
	return l, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
