package words

import (
	"slices"
	"strings"
	"testing"

	tcerrors "github.com/matzehuels/tagcloud/pkg/errors"
)

func TestRead(t *testing.T) {
	input := `
# central word first
Go

  channels  
goroutines
# comment
tag cloud
`
	got, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	want := []string{"Go", "channels", "goroutines", "tag cloud"}
	if !slices.Equal(got, want) {
		t.Errorf("Read() = %q, want %q", got, want)
	}
}

func TestReadLineTooLong(t *testing.T) {
	_, err := Read(strings.NewReader(strings.Repeat("x", maxLineLength+1)))
	if !tcerrors.Is(err, tcerrors.ErrCodeInvalidInput) {
		t.Errorf("Read() error = %v, want INVALID_INPUT", err)
	}
}

func TestValidate(t *testing.T) {
	if err := Validate([]string{"a", "b"}); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
	if err := Validate(nil); !tcerrors.Is(err, tcerrors.ErrCodeInvalidInput) {
		t.Errorf("Validate(nil) = %v, want INVALID_INPUT", err)
	}
	if err := Validate([]string{"a", " "}); err == nil {
		t.Error("Validate() accepted a blank word")
	}
}

func TestShuffleKeepsFirst(t *testing.T) {
	in, _ := Preset(PresetWeb)
	got := Shuffle(in, 42)

	if got[0] != in[0] {
		t.Errorf("first word = %q, want %q", got[0], in[0])
	}
	if len(got) != len(in) {
		t.Fatalf("len = %d, want %d", len(got), len(in))
	}

	a, b := slices.Clone(in), slices.Clone(got)
	slices.Sort(a)
	slices.Sort(b)
	if !slices.Equal(a, b) {
		t.Error("Shuffle() is not a permutation")
	}
	if slices.Equal(in, got) {
		t.Error("Shuffle() left the list unchanged")
	}
}

func TestShuffleDeterministic(t *testing.T) {
	in, _ := Preset(PresetCommon)
	if !slices.Equal(Shuffle(in, 7), Shuffle(in, 7)) {
		t.Error("equal seeds produced different orders")
	}
	if slices.Equal(Shuffle(in, 7), Shuffle(in, 8)) {
		t.Error("different seeds produced the same order")
	}
}

func TestShuffleDoesNotMutate(t *testing.T) {
	in := []string{"a", "b", "c", "d", "e"}
	Shuffle(in, 1)
	if !slices.Equal(in, []string{"a", "b", "c", "d", "e"}) {
		t.Errorf("input mutated: %q", in)
	}
}

func TestShuffleShort(t *testing.T) {
	for _, in := range [][]string{nil, {"a"}, {"a", "b"}} {
		if got := Shuffle(in, 3); !slices.Equal(got, in) {
			t.Errorf("Shuffle(%q) = %q", in, got)
		}
	}
}

func TestPresets(t *testing.T) {
	if got := Presets(); !slices.Equal(got, []string{PresetCommon, PresetWeb}) {
		t.Errorf("Presets() = %q", got)
	}
	if _, ok := Preset("missing"); ok {
		t.Error("Preset(missing) ok = true")
	}

	w, _ := Preset(PresetWeb)
	w[0] = "changed"
	if again, _ := Preset(PresetWeb); again[0] != "Web" {
		t.Error("Preset() returned shared storage")
	}
}
