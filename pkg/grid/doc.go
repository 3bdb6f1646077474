// Package grid computes item sizes for column-based grid layouts inside a
// scrollable viewport.
//
// The central type is [Strategy]: given a column count, a sizing [Mode], and
// per-section [Metrics], it resolves the pixel size of each item for the
// current viewport [Environment]. Results are memoized so repeated layout
// passes do not re-run expensive measurement.
//
// # Sizing Modes
//
// Three modes are supported:
//
//   - [Fixed]: every item uses the same configured height.
//   - [Automatic]: the height is measured from a prototype view constrained
//     to the computed column width. With uniform=true the first measurement
//     is reused for every index.
//   - [AspectRatio]: the height is the computed column width multiplied by a
//     ratio.
//
// # Measurement
//
// Automatic sizing delegates to a [Measurer], an injected capability that
// resolves the natural height of an opaque [Prototype] at a candidate width.
// [TextMeasurer] is the production implementation for terminal cells; tests
// substitute stubs so the sizing logic stays independent of any rendering
// backend.
//
// # Overrides
//
// Sections can customize the sizes and metrics a hosting layout would
// otherwise use by implementing [SectionDelegate]. Embed [Passthrough] and
// override only the operations you need; everything else keeps the suggested
// values unchanged.
//
// # Lifetime
//
// A Strategy is bound to a single environment: the cache is never checked
// for staleness against a changed viewport. Hosting layouts must call
// [Strategy.Invalidate] (or construct a fresh Strategy) whenever the
// environment changes. All methods are intended for a single layout
// goroutine; the cache has no internal locking.
package grid
