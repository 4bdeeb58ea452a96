// Package pipeline turns words into rendered tag clouds.
//
// The pipeline has two cached stages:
//
//  1. Layout: resolve and shuffle the words, measure each tag with its
//     style and place it on a [layout.Layouter] centered on the canvas
//  2. Render: draw the laid-out cloud in the requested formats (SVG, PNG,
//     JSON)
//
// The CLI and the HTTP server both drive the pipeline through a [Runner]:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Preset:  "web",
//	    Style:   "web",
//	    Formats: []string{"svg"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tagcloud/pkg/cache"
	"github.com/matzehuels/tagcloud/pkg/config"
	tcerrors "github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/render/sink"
	"github.com/matzehuels/tagcloud/pkg/spiral"
	"github.com/matzehuels/tagcloud/pkg/tags"
	"github.com/matzehuels/tagcloud/pkg/words"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
}

// ContentTypes maps formats to MIME types.
var ContentTypes = map[string]string{
	FormatSVG:  "image/svg+xml",
	FormatPNG:  "image/png",
	FormatJSON: "application/json",
}

// Options contains all configuration for one pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Words to lay out in order; the first becomes the central tag. When
	// empty, the built-in Preset word set is used.
	Words  []string `json:"words,omitempty"`
	Preset string   `json:"preset,omitempty"`

	// Layout options
	Style   string  `json:"style,omitempty"`
	Width   int     `json:"width,omitempty"`
	Height  int     `json:"height,omitempty"`
	Seed    uint64  `json:"seed,omitempty"`
	Shuffle bool    `json:"shuffle,omitempty"`
	Step    float64 `json:"step,omitempty"`
	Refresh bool    `json:"refresh,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Boxes   bool     `json:"boxes,omitempty"`

	// Theme replaces the Style lookup when set (config overrides).
	Theme  *tags.Theme `json:"-"`
	Logger *log.Logger `json:"-"`

	theme     tags.Theme
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// ID identifies the layout; equal layouts share an ID.
	ID string

	// Cloud is the laid-out cloud.
	Cloud sink.Cloud

	// LayoutHash is the content hash of the layout JSON.
	LayoutHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	WordCount  int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// ValidateAndSetDefaults checks the options and fills in defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Width == 0 {
		o.Width = config.DefaultWidth
	}
	if o.Height == 0 {
		o.Height = config.DefaultHeight
	}
	if o.Seed == 0 {
		o.Seed = config.DefaultSeed
	}
	if o.Step == 0 {
		o.Step = spiral.DefaultStep
	}
	if o.Style == "" {
		o.Style = tags.ThemeWeb
	}
	if len(o.Words) == 0 && o.Preset == "" {
		o.Preset = words.PresetWeb
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	if err := tcerrors.ValidateDimensions(o.Width, o.Height); err != nil {
		return err
	}
	if err := tcerrors.ValidateStep(o.Step); err != nil {
		return err
	}
	if err := tcerrors.ValidateFormats(o.Formats, ValidFormats); err != nil {
		return err
	}
	if len(o.Words) > 0 {
		if err := words.Validate(o.Words); err != nil {
			return err
		}
	} else if _, ok := words.Preset(o.Preset); !ok {
		return tcerrors.New(tcerrors.ErrCodeInvalidInput, "unknown word preset %q", o.Preset)
	}

	if o.Theme != nil {
		o.theme = tags.Theme{Name: o.Theme.Name, Background: o.Theme.Background, Styles: o.Theme.Styles.Clone()}
		if o.theme.Name == "" {
			o.theme.Name = o.Style
		}
	} else {
		th, err := tags.LookupTheme(o.Style)
		if err != nil {
			return err
		}
		o.theme = th
	}
	if err := o.theme.Styles.Validate(); err != nil {
		return err
	}

	o.validated = true
	return nil
}

// ResolveWords returns the words the run lays out: the explicit list or the
// preset, shuffled when requested.
func (o *Options) ResolveWords() []string {
	ws := o.Words
	if len(ws) == 0 {
		ws, _ = words.Preset(o.Preset)
	}
	if o.Shuffle {
		return words.Shuffle(ws, o.Seed)
	}
	return ws
}

// LayoutKeyOpts returns cache key options for the layout stage.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Style:   o.theme.Name,
		Styles:  themeHash(o.theme),
		Width:   o.Width,
		Height:  o.Height,
		Step:    o.Step,
		Seed:    o.Seed,
		Shuffle: o.Shuffle,
	}
}

// ArtifactKeyOpts returns cache key options for one rendered format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{Format: format, Boxes: o.Boxes}
}
