// Package config loads tagcloud settings from TOML files.
//
// A file only needs the keys it changes; everything else keeps the value from
// [Default]:
//
//	width = 1024
//	formats = ["svg", "png"]
//
//	[style]
//	preset = "mono"
//
//	[style.kinds.central]
//	color = "#0B7285"
//	font_size = 72
//
//	[cache]
//	backend = "redis"
//	redis_url = "redis://localhost:6379/0"
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"

	tcerrors "github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/spiral"
	"github.com/matzehuels/tagcloud/pkg/tags"
)

// Cache backends.
const (
	CacheFile  = "file"
	CacheRedis = "redis"
	CacheNone  = "none"
)

// Defaults mirror a single 800x600 web-styled cloud.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultSeed   = uint64(42)
	DefaultTTL    = 24 * time.Hour
)

// Config is the full set of settings.
type Config struct {
	Width   int      `toml:"width"`
	Height  int      `toml:"height"`
	Seed    uint64   `toml:"seed"`
	Shuffle bool     `toml:"shuffle"`
	Formats []string `toml:"formats"`
	Words   string   `toml:"words"` // words file; empty uses Preset
	Preset  string   `toml:"preset"`

	Layout LayoutConfig `toml:"layout"`
	Style  StyleConfig  `toml:"style"`
	Cache  CacheConfig  `toml:"cache"`
}

// LayoutConfig tunes the layout engine.
type LayoutConfig struct {
	Step float64 `toml:"step"` // spiral angular step in radians
}

// StyleConfig picks a theme and overrides parts of it.
type StyleConfig struct {
	Preset     string                `toml:"preset"`
	Background string                `toml:"background"`
	Kinds      map[string]tags.Style `toml:"kinds"`
}

// CacheConfig selects the cache backend.
type CacheConfig struct {
	Backend  string   `toml:"backend"`
	Dir      string   `toml:"dir"`
	RedisURL string   `toml:"redis_url"`
	TTL      Duration `toml:"ttl"`
}

// Duration is a time.Duration written as a string ("24h") in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		Seed:    DefaultSeed,
		Shuffle: true,
		Formats: []string{"svg"},
		Preset:  "web",
		Layout:  LayoutConfig{Step: spiral.DefaultStep},
		Style:   StyleConfig{Preset: tags.ThemeWeb},
		Cache:   CacheConfig{Backend: CacheFile, TTL: Duration{DefaultTTL}},
	}
}

// Load reads path on top of Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, tcerrors.Wrap(tcerrors.ErrCodeFileNotFound, err, "config %s", path)
	}
	if err != nil {
		return Config{}, tcerrors.Wrap(tcerrors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	if err := Decode(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Decode overlays TOML data onto cfg and validates the result. Unknown keys
// are rejected.
func Decode(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return tcerrors.Wrap(tcerrors.ErrCodeInvalidConfig, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return tcerrors.New(tcerrors.ErrCodeInvalidConfig, "unknown config key %q", undecoded[0].String())
	}
	return cfg.Validate()
}

// Validate checks value ranges and that the style resolves.
func (c Config) Validate() error {
	if err := tcerrors.ValidateDimensions(c.Width, c.Height); err != nil {
		return tcerrors.Wrap(tcerrors.ErrCodeInvalidConfig, err, "canvas")
	}
	if !(c.Layout.Step > 0) || c.Layout.Step > 1 {
		return tcerrors.New(tcerrors.ErrCodeInvalidConfig, "layout.step must be in (0, 1], got %v", c.Layout.Step)
	}
	switch c.Cache.Backend {
	case CacheFile, CacheNone:
	case CacheRedis:
		if c.Cache.RedisURL == "" {
			return tcerrors.New(tcerrors.ErrCodeInvalidConfig, "cache.redis_url is required for the redis backend")
		}
	default:
		return tcerrors.New(tcerrors.ErrCodeInvalidConfig, "unknown cache backend %q", c.Cache.Backend)
	}
	if _, err := c.Theme(); err != nil {
		return tcerrors.Wrap(tcerrors.ErrCodeInvalidConfig, err, "style")
	}
	return nil
}

// Theme resolves the style preset with the configured overrides applied.
func (c Config) Theme() (tags.Theme, error) {
	th, err := tags.LookupTheme(c.Style.Preset)
	if err != nil {
		return tags.Theme{}, err
	}
	if c.Style.Background != "" {
		th.Background = c.Style.Background
	}
	for name, st := range c.Style.Kinds {
		kind, ok := tags.ParseKind(name)
		if !ok {
			return tags.Theme{}, tcerrors.New(tcerrors.ErrCodeInvalidStyle, "unknown tag kind %q", name)
		}
		base := th.Styles[kind]
		if st.Color != "" {
			base.Color = st.Color
		}
		if st.FontSize != 0 {
			base.FontSize = st.FontSize
		}
		th.Styles[kind] = base
	}
	if th.Background != "" {
		if _, err := tags.ParseColor(th.Background); err != nil {
			return tags.Theme{}, err
		}
	}
	return th, th.Styles.Validate()
}
