package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tcerrors "github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/tags"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default() invalid: %v", err)
	}
	if cfg.Width != 800 || cfg.Height != 600 {
		t.Errorf("canvas = %dx%d, want 800x600", cfg.Width, cfg.Height)
	}
	th, err := cfg.Theme()
	if err != nil {
		t.Fatal(err)
	}
	if th.Name != tags.ThemeWeb || th.Styles[tags.Central].FontSize != 60 {
		t.Errorf("Theme() = %+v", th)
	}
}

func TestDecodeOverlay(t *testing.T) {
	data := `
width = 1024
formats = ["svg", "png"]
shuffle = false

[layout]
step = 0.05

[style]
preset = "mono"
background = "#FAFAFA"

[style.kinds.central]
color = "#0B7285"
font_size = 72

[style.kinds.small]
font_size = 10

[cache]
backend = "redis"
redis_url = "redis://localhost:6379/1"
ttl = "2h"
`
	cfg := Default()
	if err := Decode([]byte(data), &cfg); err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	if cfg.Width != 1024 || cfg.Height != DefaultHeight {
		t.Errorf("canvas = %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Shuffle {
		t.Error("shuffle = true, want false")
	}
	if len(cfg.Formats) != 2 || cfg.Formats[1] != "png" {
		t.Errorf("formats = %v", cfg.Formats)
	}
	if cfg.Layout.Step != 0.05 {
		t.Errorf("step = %v", cfg.Layout.Step)
	}
	if cfg.Cache.TTL.Duration != 2*time.Hour {
		t.Errorf("ttl = %v", cfg.Cache.TTL)
	}

	th, err := cfg.Theme()
	if err != nil {
		t.Fatal(err)
	}
	if th.Background != "#FAFAFA" {
		t.Errorf("background = %q", th.Background)
	}
	if got := th.Styles[tags.Central]; got.Color != "#0B7285" || got.FontSize != 72 {
		t.Errorf("central = %+v", got)
	}
	mono, _ := tags.LookupTheme(tags.ThemeMono)
	if got := th.Styles[tags.Small]; got.Color != mono.Styles[tags.Small].Color || got.FontSize != 10 {
		t.Errorf("small = %+v, want mono color with size 10", got)
	}
}

func TestDecodeInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", `width = `},
		{"unknown key", `colour = "red"`},
		{"zero width", `width = 0`},
		{"step too large", "[layout]\nstep = 3.5"},
		{"unknown preset", "[style]\npreset = \"neon\""},
		{"unknown kind", "[style.kinds.huge]\nfont_size = 3"},
		{"bad color", "[style.kinds.large]\ncolor = \"orange\""},
		{"bad background", "[style]\nbackground = \"dark\""},
		{"unknown backend", "[cache]\nbackend = \"memcached\""},
		{"redis without url", "[cache]\nbackend = \"redis\""},
		{"bad ttl", "[cache]\nttl = \"soon\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			err := Decode([]byte(tt.data), &cfg)
			if !tcerrors.Is(err, tcerrors.ErrCodeInvalidConfig) {
				t.Errorf("Decode() error = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tagcloud.toml")
	if err := os.WriteFile(path, []byte("height = 480\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Height != 480 || cfg.Width != DefaultWidth {
		t.Errorf("canvas = %dx%d", cfg.Width, cfg.Height)
	}

	_, err = Load(filepath.Join(dir, "missing.toml"))
	if !tcerrors.Is(err, tcerrors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestDurationText(t *testing.T) {
	d := Duration{90 * time.Minute}
	text, _ := d.MarshalText()
	var back Duration
	if err := back.UnmarshalText(text); err != nil || back != d {
		t.Errorf("round trip %q -> %v, %v", text, back, err)
	}
}
