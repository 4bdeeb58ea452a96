package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/tagcloud/pkg/tags"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// StylePickerModel is the bubbletea model for interactive style selection.
type StylePickerModel struct {
	Styles   []string
	Cursor   int
	Selected string
}

// NewStylePickerModel creates a picker with the cursor on current.
func NewStylePickerModel(styles []string, current string) StylePickerModel {
	m := StylePickerModel{Styles: styles}
	for i, s := range styles {
		if s == current {
			m.Cursor = i
		}
	}
	return m
}

func (m StylePickerModel) Init() tea.Cmd {
	return nil
}

func (m StylePickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Styles)-1 {
				m.Cursor++
			}
		case "enter":
			if len(m.Styles) > 0 {
				m.Selected = m.Styles[m.Cursor]
			}
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m StylePickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Style"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, name := range m.Styles {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%-10s", cursor, name)
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("  ")
		b.WriteString(swatch(name))
		b.WriteString("\n")
	}
	return b.String()
}

// swatch renders one sample word per tag kind in the theme's colors.
func swatch(name string) string {
	th, err := tags.LookupTheme(name)
	if err != nil {
		return listDimStyle.Render("?")
	}
	parts := make([]string, 0, len(tags.Kinds))
	for _, k := range tags.Kinds {
		st := lipgloss.NewStyle().Foreground(lipgloss.Color(th.Styles[k].Color))
		if th.Background != "" {
			st = st.Background(lipgloss.Color(th.Background))
		}
		parts = append(parts, st.Render(" "+k.String()+" "))
	}
	return strings.Join(parts, "")
}
