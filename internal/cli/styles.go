package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tagcloud/pkg/tags"
)

// stylesCommand creates the styles command listing the built-in styles.
func (c *CLI) stylesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List the built-in styles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := stylesTable()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

// stylesTable renders one row per style with its background and the color
// and font size of every tag kind.
func stylesTable() (string, error) {
	headers := []string{"Style", "Background"}
	for _, k := range tags.Kinds {
		headers = append(headers, k.String())
	}

	var rows [][]string
	for _, name := range tags.ThemeNames() {
		th, err := tags.LookupTheme(name)
		if err != nil {
			return "", err
		}
		row := []string{name, th.Background}
		for _, k := range tags.Kinds {
			st := th.Styles[k]
			row = append(row, fmt.Sprintf("%s %gpx", st.Color, st.FontSize))
		}
		rows = append(rows, row)
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle.Padding(0, 1)
			}
			if col == 0 {
				return listSelectedStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	return t.Render(), nil
}
