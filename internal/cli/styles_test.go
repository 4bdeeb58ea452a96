package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/tagcloud/pkg/tags"
)

func TestStylesTable(t *testing.T) {
	out, err := stylesTable()
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range tags.ThemeNames() {
		if !strings.Contains(out, name) {
			t.Errorf("table should list style %q", name)
		}
	}
	if !strings.Contains(out, "#FF6600") {
		t.Error("table should show the web large-tag color")
	}
}

func TestStylesCommand(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"styles"})
	if err := root.Execute(); err != nil {
		t.Fatalf("styles: %v", err)
	}
	if !strings.Contains(out.String(), "web") {
		t.Errorf("output = %q, want web style", out.String())
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestStylePickerModel(t *testing.T) {
	styles := []string{"mono", "web"}

	tests := []struct {
		name    string
		current string
		keys    []string
		want    string
	}{
		{"enter keeps current", "web", []string{"enter"}, "web"},
		{"move up", "web", []string{"up", "enter"}, "mono"},
		{"vim keys", "mono", []string{"j", "enter"}, "web"},
		{"clamped at end", "web", []string{"down", "down", "enter"}, "web"},
		{"quit selects nothing", "web", []string{"q"}, ""},
		{"esc selects nothing", "mono", []string{"esc"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m tea.Model = NewStylePickerModel(styles, tt.current)
			for _, k := range tt.keys {
				m, _ = m.Update(key(k))
			}
			if got := m.(StylePickerModel).Selected; got != tt.want {
				t.Errorf("Selected = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStylePickerView(t *testing.T) {
	m := NewStylePickerModel(tags.ThemeNames(), "web")
	view := m.View()
	if !strings.Contains(view, "Select Style") || !strings.Contains(view, "web") {
		t.Errorf("View() = %q", view)
	}
}
