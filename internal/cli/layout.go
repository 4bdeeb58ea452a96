package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	tcerrors "github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/geom"
	"github.com/matzehuels/tagcloud/pkg/layout"
	"github.com/matzehuels/tagcloud/pkg/spiral"
)

// layoutOpts holds the command-line flags for the layout command.
type layoutOpts struct {
	center string  // "X,Y"
	step   float64 // spiral angular step
	output string  // output file, stdout when empty
}

// layoutRect is one placed rectangle in the layout command output.
type layoutRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"width"`
	H int `json:"height"`
}

type layoutOutput struct {
	Center layoutRect   `json:"center"`
	Rects  []layoutRect `json:"rects"`
}

// layoutCommand creates the layout command that places raw sizes.
func (c *CLI) layoutCommand() *cobra.Command {
	lo := layoutOpts{center: "0,0", step: spiral.DefaultStep}

	cmd := &cobra.Command{
		Use:   "layout [sizes-file]",
		Short: "Place WxH rectangle sizes and print them as JSON",
		Long: `Layout reads one WxH size per line (stdin when no file is given), places
each on a layouter centered at --center and prints the rectangles as JSON.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}
			w := cmd.OutOrStdout()
			if lo.output != "" {
				f, err := os.Create(lo.output)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			return runLayout(cmd.Context(), r, w, lo)
		},
	}

	cmd.Flags().StringVar(&lo.center, "center", lo.center, "layout center as X,Y")
	cmd.Flags().Float64Var(&lo.step, "step", lo.step, "spiral angular step in radians")
	cmd.Flags().StringVarP(&lo.output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func runLayout(ctx context.Context, r io.Reader, w io.Writer, lo layoutOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	center, err := parseCenter(lo.center)
	if err != nil {
		return err
	}
	if err := tcerrors.ValidateStep(lo.step); err != nil {
		return err
	}
	sizes, err := readSizes(r)
	if err != nil {
		return err
	}

	l := layout.New(center, layout.WithStep(lo.step), layout.WithLogger(logger))
	out := layoutOutput{
		Center: layoutRect{X: center.X, Y: center.Y},
		Rects:  make([]layoutRect, 0, len(sizes)),
	}
	for i, size := range sizes {
		if err := ctx.Err(); err != nil {
			return err
		}
		rect, err := l.Place(size)
		if err != nil {
			return fmt.Errorf("line %d: %w", i+1, err)
		}
		out.Rects = append(out.Rects, layoutRect{X: rect.X, Y: rect.Y, W: rect.W, H: rect.H})
	}
	prog.done(fmt.Sprintf("Placed %d rectangles", len(sizes)))

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// parseCenter parses "X,Y".
func parseCenter(s string) (geom.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return geom.Point{}, tcerrors.New(tcerrors.ErrCodeInvalidInput, "center %q must be X,Y", s)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(xs))
	y, errY := strconv.Atoi(strings.TrimSpace(ys))
	if errX != nil || errY != nil {
		return geom.Point{}, tcerrors.New(tcerrors.ErrCodeInvalidInput, "center %q must be two integers", s)
	}
	return geom.Pt(x, y), nil
}

// readSizes reads one WxH size per line, skipping blanks and # comments.
// Sizes are not validated here; the layouter rejects non-positive ones.
func readSizes(r io.Reader) ([]geom.Size, error) {
	var sizes []geom.Size
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		size, err := parseSize(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		sizes = append(sizes, size)
	}
	if err := sc.Err(); err != nil {
		return nil, tcerrors.Wrap(tcerrors.ErrCodeInvalidInput, err, "read sizes")
	}
	return sizes, nil
}

// parseSize parses "WxH".
func parseSize(s string) (geom.Size, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return geom.Size{}, tcerrors.New(tcerrors.ErrCodeInvalidInput, "size %q must be WxH", s)
	}
	w, errW := strconv.Atoi(strings.TrimSpace(ws))
	h, errH := strconv.Atoi(strings.TrimSpace(hs))
	if errW != nil || errH != nil {
		return geom.Size{}, tcerrors.New(tcerrors.ErrCodeInvalidInput, "size %q must be two integers", s)
	}
	return geom.Sz(w, h), nil
}
