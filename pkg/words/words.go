// Package words sources the strings of a tag cloud.
//
// The first word of a list is the cloud's central tag; [Shuffle] permutes
// the rest and leaves it in place.
package words

import (
	"bufio"
	"io"
	"math/rand/v2"
	"slices"
	"strings"

	tcerrors "github.com/matzehuels/tagcloud/pkg/errors"
)

// maxLineLength bounds a single word line.
const maxLineLength = 1024

// Read parses one word or phrase per line. Lines are trimmed; blank lines
// and lines starting with '#' are skipped.
func Read(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 256), maxLineLength)

	var out []string
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, tcerrors.Wrap(tcerrors.ErrCodeInvalidInput, err, "read words")
	}
	return out, nil
}

// Validate checks every word.
func Validate(words []string) error {
	if len(words) == 0 {
		return tcerrors.New(tcerrors.ErrCodeInvalidInput, "no words given")
	}
	for _, w := range words {
		if err := tcerrors.ValidateWord(w); err != nil {
			return err
		}
	}
	return nil
}

// Shuffle returns a copy of words with everything after the first element
// permuted by a PCG source seeded with seed.
func Shuffle(words []string, seed uint64) []string {
	out := slices.Clone(words)
	if len(out) < 3 {
		return out
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	tail := out[1:]
	rng.Shuffle(len(tail), func(i, j int) { tail[i], tail[j] = tail[j], tail[i] })
	return out
}
