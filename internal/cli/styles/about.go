package styles

import (
	"cmp"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/banger/internal/domain/build"
)

// AboutRenderer renders the version card.
type AboutRenderer struct {
	theme *Theme
}

// NewAboutRenderer creates a new about renderer with the given theme.
func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

type aboutField struct {
	icon  string
	label string
	value string
}

// Render draws build info inside a rounded box headed by the program name.
func (r *AboutRenderer) Render(info build.Info) string {
	fields := []aboutField{
		{IconVersion, "version", cmp.Or(info.Version, "dev")},
		{IconGitBranch, "commit", cmp.Or(info.Commit, "unknown")},
		{IconCalendar, "built", cmp.Or(info.BuildDate, "unknown")},
		{IconGo, "go", cmp.Or(info.GoVersion, "unknown")},
	}

	labelWidth := 0
	for _, f := range fields {
		labelWidth = max(labelWidth, lipgloss.Width(f.label))
	}

	icon := lipgloss.NewStyle().Foreground(r.theme.Accent)
	label := r.theme.Subtle.Width(labelWidth + 1)

	rows := make([]string, 0, len(fields)+3)
	rows = append(rows, r.theme.AccentBadge("!banger"), "")
	for _, f := range fields {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			icon.Render(f.icon), " ", label.Render(f.label), r.theme.Highlight.Render(f.value)))
	}
	rows = append(rows, "", icon.Render(IconGithub)+" "+r.theme.Subtle.Render(build.RepoURL()))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(r.theme.Border).
		Padding(0, 2)
	return box.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
