// Package pkg provides the core libraries for Gridflow grid arrangement.
//
// # Overview
//
// Gridflow turns section manifests into concrete item frames for terminal
// viewports. The pkg directory is organized into five main areas:
//
//  1. [grid] - Sizing strategies (column arithmetic, fixed/automatic/aspect modes)
//  2. [layout] - Arrangement of sections into positioned frames, plus serialization
//  3. [manifest] - TOML section manifests
//  4. [cache], [store] - Persistence (layout cache backends, snapshot storage)
//  5. [pipeline] - Orchestration (load → arrange → emit)
//
// # Architecture
//
// The typical data flow through Gridflow:
//
//	Section Manifest (TOML)
//	         ↓
//	    [manifest] package (parse + validate)
//	         ↓
//	    [grid] package (per-section sizing strategies)
//	         ↓
//	    [layout] package (frames for one environment)
//	         ↓
//	    JSON layout document / terminal preview
//
// # Quick Start
//
// Arrange a manifest for a 120x40 viewport:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/gridflow/pkg/grid"
//	    "github.com/matzehuels/gridflow/pkg/layout"
//	    "github.com/matzehuels/gridflow/pkg/manifest"
//	)
//
//	m, err := manifest.Load("sections.toml")
//	if err != nil {
//	    return err
//	}
//	env := grid.NewEnvironment(120, 40)
//	l, err := layout.Arrange(context.Background(), m.LayoutSections(), env)
//
// Supporting packages: [errors] for structured error codes, [observability]
// for layout and cache hooks, [buildinfo] for version metadata.
package pkg
