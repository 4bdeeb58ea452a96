// Package pkg provides the core libraries for tagcloud layout and rendering.
//
// # Overview
//
// tagcloud places short text labels (tags) in a compact, non-overlapping
// cloud around a center point. Each tag is a rectangle sized by the measured
// width and height of its text. Rectangles are walked outward along an
// Archimedean spiral until they fit, then pulled back toward the center one
// axis at a time.
//
// # Architecture
//
// The data flow through tagcloud:
//
//	word list (file, stdin, preset)
//	         ↓
//	    [words] package (read, validate, seeded shuffle)
//	         ↓
//	    [tags] package (style per rank, measure with [fonts])
//	         ↓
//	    [layout] package (spiral search + compaction over [geom] rects)
//	         ↓
//	    render/sink package (SVG, PNG, JSON)
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/tagcloud/pkg/geom"
//	    "github.com/matzehuels/tagcloud/pkg/layout"
//	)
//
//	l := layout.New(geom.Pt(400, 300))
//	for _, size := range []geom.Size{geom.Sz(120, 40), geom.Sz(60, 20)} {
//	    r, err := l.Place(size)
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(r)
//	}
//
// # Main Packages
//
// ## Layout
//
// [geom] - Integer points, sizes and rectangles with the strict intersection
// predicate used everywhere (touching edges do not intersect).
//
// [spiral] - Deterministic point generator for r = step·θ, rounded to the
// integer grid.
//
// [layout] - The Layouter. Place takes a size, searches the spiral for a free
// spot, compacts it toward the center and records it. Compact is exported for
// callers that manage their own rectangle sets.
//
// ## Content
//
// [words] - Reading word lists, built-in presets and seeded shuffling that
// keeps the first (most important) word in front.
//
// [tags] - Tag styles and themes. Factory.Build turns words into styled,
// measured and placed tags.
//
// [fonts] - Embedded Go fonts and a concurrent-safe text Measurer backed by
// golang.org/x/image.
//
// ## Infrastructure
//
// [pipeline] - The layout → render pipeline with caching, shared by the CLI
// and the HTTP API.
//
// [cache] - Cache interface with file, Redis and null backends, plus keyers
// that hash pipeline inputs.
//
// [config] - TOML configuration (canvas, style overrides, cache backend).
//
// [errors] - Coded errors and input validation helpers.
//
// [observability] - Hooks for metrics and tracing backends.
//
// [buildinfo] - Version information injected at build time.
package pkg
