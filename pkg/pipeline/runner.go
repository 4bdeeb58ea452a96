package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/tagcloud/pkg/cache"
	"github.com/matzehuels/tagcloud/pkg/config"
	"github.com/matzehuels/tagcloud/pkg/fonts"
	"github.com/matzehuels/tagcloud/pkg/geom"
	"github.com/matzehuels/tagcloud/pkg/layout"
	"github.com/matzehuels/tagcloud/pkg/observability"
	"github.com/matzehuels/tagcloud/pkg/render/sink"
	"github.com/matzehuels/tagcloud/pkg/tags"
)

// Key types reported to cache hooks.
const (
	keyTypeLayout   = "layout"
	keyTypeArtifact = "artifact"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache, measurer and logger. Multiple
// goroutines can safely use the same Runner with different options; each
// execution owns its own Layouter.
type Runner struct {
	Cache    cache.Cache
	Keyer    cache.Keyer
	Logger   *log.Logger
	Measurer tags.Measurer
	TTL      time.Duration
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
		Cache:    c,
		Keyer:    keyer,
		Logger:   logger,
		Measurer: fonts.NewMeasurer(),
		TTL:      config.DefaultTTL,
	}
}

// Execute runs the layout and render stages with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	hooks := observability.Pipeline()

	layoutStart := time.Now()
	hooks.OnLayoutStart(ctx, len(opts.ResolveWords()))
	cloud, layoutData, layoutHit, err := r.LayoutWithCacheInfo(ctx, opts)
	hooks.OnLayoutComplete(ctx, len(cloud.Tags), time.Since(layoutStart), err)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Cloud = cloud
	result.LayoutHash = cache.Hash(layoutData)
	result.ID = CloudID(layoutData)
	result.Stats.WordCount = len(cloud.Tags)
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.CacheInfo.LayoutHit = layoutHit

	r.Logger.Info("computed layout",
		"tags", len(cloud.Tags),
		"cached", layoutHit,
		"duration", result.Stats.LayoutTime)

	renderStart := time.Now()
	hooks.OnRenderStart(ctx, opts.Formats)
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, cloud, result.LayoutHash, result.ID, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(renderStart), err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// LayoutWithCacheInfo computes the cloud layout, or loads it from cache, and
// returns it with its JSON encoding and whether it was a cache hit.
func (r *Runner) LayoutWithCacheInfo(ctx context.Context, opts Options) (sink.Cloud, []byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return sink.Cloud{}, nil, false, err
	}

	ws := opts.ResolveWords()
	cacheKey := r.Keyer.LayoutKey(cache.HashStrings(ws), opts.LayoutKeyOpts())

	hooks := observability.Cache()
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			cloud, err := sink.ReadJSON(bytes.NewReader(data))
			if err == nil {
				hooks.OnCacheHit(ctx, keyTypeLayout)
				return cloud, data, true, nil
			}
			// undecodable entry, recompute
		} else if err != nil {
			r.Logger.Warn("cache get failed", "key", cacheKey, "err", err)
		}
		hooks.OnCacheMiss(ctx, keyTypeLayout)
	}

	cloud, err := r.Layout(ctx, ws, opts)
	if err != nil {
		return sink.Cloud{}, nil, false, err
	}
	data, err := layoutJSON(cloud, opts)
	if err != nil {
		return sink.Cloud{}, nil, false, err
	}
	if err := r.Cache.Set(ctx, cacheKey, data, r.TTL); err != nil {
		r.Logger.Warn("cache set failed", "key", cacheKey, "err", err)
	} else {
		hooks.OnCacheSet(ctx, keyTypeLayout, len(data))
	}
	return cloud, data, false, nil
}

// Layout measures and places ws on a fresh canvas.
func (r *Runner) Layout(ctx context.Context, ws []string, opts Options) (sink.Cloud, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return sink.Cloud{}, err
	}

	center := geom.Pt(opts.Width/2, opts.Height/2)
	l := layout.New(center, layout.WithStep(opts.Step), layout.WithLogger(opts.Logger))
	f := tags.Factory{Styles: opts.theme.Styles, Measurer: r.Measurer}
	tt, err := f.Build(ctx, ws, l)
	if err != nil {
		return sink.Cloud{}, err
	}

	cloud := sink.Cloud{
		Width:      opts.Width,
		Height:     opts.Height,
		Background: opts.theme.Background,
		Tags:       tt,
	}
	canvas := cloud.Bounds()
	if b := geom.Bounds(tags.Boxes(tt)); !b.Empty() && canvas.Union(b) != canvas {
		opts.Logger.Debug("cloud exceeds canvas", "bounds", b, "canvas", canvas)
	}
	return cloud, nil
}

// RenderWithCacheInfo renders every requested format and reports whether all
// of them came from cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, cloud sink.Cloud, layoutHash, id string, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	hooks := observability.Cache()
	artifacts := make(map[string][]byte, len(opts.Formats))
	allCached := !opts.Refresh
	if allCached {
		for _, format := range opts.Formats {
			key := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil || !hit {
				allCached = false
				break
			}
			artifacts[format] = data
		}
	}
	if allCached {
		hooks.OnCacheHit(ctx, keyTypeArtifact)
		return artifacts, true, nil
	}
	if !opts.Refresh {
		hooks.OnCacheMiss(ctx, keyTypeArtifact)
	}

	rendered, err := Render(cloud, id, opts)
	if err != nil {
		return nil, false, err
	}
	for format, data := range rendered {
		key := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
			r.Logger.Warn("cache set failed", "key", key, "err", err)
		} else {
			hooks.OnCacheSet(ctx, keyTypeArtifact, len(data))
		}
	}
	return rendered, false, nil
}

// Render draws cloud in every format of opts.Formats.
func Render(cloud sink.Cloud, id string, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var (
			data []byte
			err  error
		)
		switch format {
		case FormatSVG:
			var svgOpts []sink.SVGOption
			if opts.Boxes {
				svgOpts = append(svgOpts, sink.WithBoxes())
			}
			data = sink.RenderSVG(cloud, svgOpts...)
		case FormatPNG:
			var pngOpts []sink.PNGOption
			if opts.Boxes {
				pngOpts = append(pngOpts, sink.WithPNGBoxes())
			}
			data, err = sink.RenderPNG(cloud, pngOpts...)
		case FormatJSON:
			data, err = sink.RenderJSON(cloud,
				sink.WithJSONID(id),
				sink.WithJSONStyle(opts.theme.Name),
				sink.WithJSONSeed(opts.Seed))
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

// CloudID derives a stable identifier from the layout JSON.
func CloudID(layoutData []byte) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, layoutData).String()
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

func layoutJSON(cloud sink.Cloud, opts Options) ([]byte, error) {
	return sink.RenderJSON(cloud, sink.WithJSONStyle(opts.theme.Name), sink.WithJSONSeed(opts.Seed))
}

func themeHash(th tags.Theme) string {
	data, _ := json.Marshal(th)
	return cache.Hash(data)
}
