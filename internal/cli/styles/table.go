package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// EngineRow is one registered bang as shown in the engines table.
type EngineRow struct {
	Key        string
	Name       string
	SearchURL  string
	SuggestURL string
	Default    bool // private default engine
	Trusted    bool // trusted-network engine
}

// ToRow converts to table cells.
func (e EngineRow) ToRow() []string {
	role := ""
	switch {
	case e.Default && e.Trusted:
		role = "default, trusted"
	case e.Default:
		role = "default"
	case e.Trusted:
		role = "trusted"
	}
	return []string{"!" + e.Key, e.Name, role, e.SearchURL}
}

// RenderEngineTable renders registered bangs as a bordered table.
func RenderEngineTable(theme *Theme, rows []EngineRow, showSuggest bool) string {
	headers := []string{"Bang", "Name", "Role", "Search URL"}
	if showSuggest {
		headers = append(headers, "Suggest URL")
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return style.Foreground(theme.Accent).Bold(true)
			case col == 0:
				return style.Foreground(theme.Accent)
			case col == 2:
				return style.Foreground(theme.Warning)
			case col >= 3:
				return style.Foreground(theme.Muted)
			default:
				return style.Foreground(theme.Text)
			}
		})

	for _, r := range rows {
		cells := r.ToRow()
		if showSuggest {
			cells = append(cells, r.SuggestURL)
		}
		t.Row(cells...)
	}

	return t.Render()
}
