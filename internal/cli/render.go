package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tagcloud/pkg/config"
	tcerrors "github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/pipeline"
	"github.com/matzehuels/tagcloud/pkg/tags"
	"github.com/matzehuels/tagcloud/pkg/words"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output     string  // output file (single format) or base path
	formats    string  // comma-separated output formats
	preset     string  // built-in word set when no file is given
	style      string  // style preset name
	width      int     // canvas width in pixels
	height     int     // canvas height in pixels
	seed       uint64  // shuffle seed
	shuffle    bool    // shuffle every word except the first
	step       float64 // spiral angular step in radians
	boxes      bool    // outline tag boxes
	configPath string  // TOML config file
	noCache    bool
	refresh    bool
	pick       bool // choose the style interactively
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	def := config.Default()
	ro := renderOpts{
		preset:  def.Preset,
		style:   def.Style.Preset,
		width:   def.Width,
		height:  def.Height,
		seed:    def.Seed,
		shuffle: def.Shuffle,
		step:    def.Layout.Step,
	}

	cmd := &cobra.Command{
		Use:   "render [words-file]",
		Short: "Render a tag cloud to SVG, PNG or JSON",
		Long: `Render lays out one word per line from words-file ("-" reads stdin) or
from a built-in preset. The first word becomes the central tag.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			return c.runRender(cmd.Context(), input, &ro, cmd.Flags().Changed)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&ro.output, "output", "o", "", `output file (single format), base path (multiple) or "-" for stdout`)
	f.StringVarP(&ro.formats, "format", "f", "", "output format(s): svg (default), png, json (comma-separated)")
	f.StringVar(&ro.preset, "preset", ro.preset, "built-in words: "+strings.Join(words.Presets(), ", "))
	f.StringVar(&ro.style, "style", ro.style, "style: "+strings.Join(tags.ThemeNames(), ", "))
	f.IntVar(&ro.width, "width", ro.width, "canvas width")
	f.IntVar(&ro.height, "height", ro.height, "canvas height")
	f.Uint64Var(&ro.seed, "seed", ro.seed, "shuffle seed")
	f.BoolVar(&ro.shuffle, "shuffle", ro.shuffle, "shuffle all words except the first")
	f.Float64Var(&ro.step, "step", ro.step, "spiral angular step in radians")
	f.BoolVar(&ro.boxes, "boxes", false, "outline tag boxes")
	f.StringVarP(&ro.configPath, "config", "c", "", "TOML config file")
	f.BoolVar(&ro.noCache, "no-cache", false, "disable caching")
	f.BoolVar(&ro.refresh, "refresh", false, "recompute even when cached")
	f.BoolVar(&ro.pick, "pick", false, "pick the style interactively")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, ro *renderOpts, changed func(string) bool) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	cfg, err := loadConfig(ro.configPath)
	if err != nil {
		return err
	}

	if ro.pick {
		style, err := pickStyle(ro.style)
		if err != nil {
			return err
		}
		if style == "" {
			printWarning("No style selected")
			return nil
		}
		ro.style = style
		changed = withChanged(changed, "style")
	}

	opts, err := buildRenderOptions(cfg, ro, changed)
	if err != nil {
		return err
	}
	toStdout := ro.output == "-"
	if toStdout && len(opts.Formats) != 1 {
		return tcerrors.New(tcerrors.ErrCodeInvalidFormat, "stdout output needs exactly one format, got %d", len(opts.Formats))
	}
	ws, err := readWords(input, cfg.Words)
	if err != nil {
		return err
	}
	if ws != nil {
		opts.Words = ws
	}

	runner, err := c.newRunner(ctx, cfg, ro.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	var spinner *Spinner
	if !toStdout {
		spinner = newSpinnerWithContext(ctx, os.Stderr, "Laying out words...")
		spinner.Start()
	}
	result, err := runner.Execute(ctx, opts)
	if err != nil {
		if spinner != nil {
			spinner.StopWithError("Layout failed")
		}
		return err
	}
	if spinner != nil {
		spinner.Stop()
	}

	if toStdout {
		_, err := os.Stdout.Write(result.Artifacts[opts.Formats[0]])
		return err
	}

	paths, err := writeArtifacts(result.Artifacts, opts.Formats, ro.output, input)
	if err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Rendered %d tags", len(result.Cloud.Tags)))
	printSuccess("Rendered tag cloud %s", StyleDim.Render(result.ID))
	printStats(len(result.Cloud.Tags), fmt.Sprintf("%dx%d", opts.Width, opts.Height),
		result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit)
	for _, p := range paths {
		printFile(p)
	}
	return nil
}

// buildRenderOptions merges cfg with the flags the user set explicitly.
func buildRenderOptions(cfg config.Config, ro *renderOpts, changed func(string) bool) (pipeline.Options, error) {
	if changed("width") {
		cfg.Width = ro.width
	}
	if changed("height") {
		cfg.Height = ro.height
	}
	if changed("seed") {
		cfg.Seed = ro.seed
	}
	if changed("shuffle") {
		cfg.Shuffle = ro.shuffle
	}
	if changed("step") {
		cfg.Layout.Step = ro.step
	}
	if changed("preset") {
		cfg.Preset = ro.preset
	}
	if changed("style") {
		cfg.Style.Preset = ro.style
	}
	if changed("format") {
		cfg.Formats = parseFormats(ro.formats)
	}
	if err := cfg.Validate(); err != nil {
		return pipeline.Options{}, err
	}

	theme, err := cfg.Theme()
	if err != nil {
		return pipeline.Options{}, err
	}
	return pipeline.Options{
		Preset:  cfg.Preset,
		Style:   theme.Name,
		Theme:   &theme,
		Width:   cfg.Width,
		Height:  cfg.Height,
		Seed:    cfg.Seed,
		Shuffle: cfg.Shuffle,
		Step:    cfg.Layout.Step,
		Formats: cfg.Formats,
		Boxes:   ro.boxes,
		Refresh: ro.refresh,
	}, nil
}

// readWords reads the words from input, falling back to the config's words
// file. It returns nil when neither is set.
func readWords(input, configured string) ([]string, error) {
	path := input
	if path == "" {
		path = configured
	}
	if path == "" {
		return nil, nil
	}

	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if os.IsNotExist(err) {
			return nil, tcerrors.Wrap(tcerrors.ErrCodeFileNotFound, err, "words file %s", path)
		}
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	ws, err := words.Read(r)
	if err != nil {
		return nil, err
	}
	if err := words.Validate(ws); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ws, nil
}

// writeArtifacts writes one file per format and returns the paths.
func writeArtifacts(artifacts map[string][]byte, formats []string, output, input string) ([]string, error) {
	var paths []string
	if len(formats) == 1 && output != "" && filepath.Ext(output) != "" {
		paths = []string{output}
	} else {
		base := basePath(output, input)
		for _, f := range formats {
			paths = append(paths, base+"."+f)
		}
	}

	for i, f := range formats {
		if dir := filepath.Dir(paths[i]); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, err
			}
		}
		if err := os.WriteFile(paths[i], artifacts[f], 0644); err != nil {
			return nil, fmt.Errorf("write %s: %w", paths[i], err)
		}
	}
	return paths, nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input (or uses the app
// name for preset words). Known format extensions are stripped from output.
func basePath(output, input string) string {
	if output == "" {
		if input == "" || input == "-" {
			return appName
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

func withChanged(changed func(string) bool, names ...string) func(string) bool {
	return func(name string) bool {
		for _, n := range names {
			if n == name {
				return true
			}
		}
		return changed(name)
	}
}

// pickStyle runs the interactive style picker and returns the chosen name,
// or "" when the user quit.
func pickStyle(current string) (string, error) {
	m := NewStylePickerModel(tags.ThemeNames(), current)
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return "", fmt.Errorf("style picker: %w", err)
	}
	return final.(StylePickerModel).Selected, nil
}
