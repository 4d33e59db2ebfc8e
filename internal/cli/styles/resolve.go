package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Resolution is the view data for one resolved query.
type Resolution struct {
	Query      string
	Bang       string
	EngineName string
	Remainder  string
	SearchURL  string
	SuggestURL string

	UsedDefault bool
	SSID        string
	SSIDFound   bool
	Trusted     bool
}

// ResolveRenderer renders query resolutions.
type ResolveRenderer struct {
	theme *Theme
}

// NewResolveRenderer creates a new resolve renderer with the given theme.
func NewResolveRenderer(theme *Theme) *ResolveRenderer {
	return &ResolveRenderer{theme: theme}
}

// Render renders the full explanation of how a query was routed.
func (r *ResolveRenderer) Render(res Resolution) string {
	keyStyle := r.theme.Subtle.Width(9)
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	var engine string
	if res.Bang != "" {
		engine = fmt.Sprintf("%s %s", r.theme.BangBadge(res.Bang), r.theme.Normal.Render(res.EngineName))
	} else {
		engine = fmt.Sprintf("%s %s", r.theme.MutedBadge("default"), r.theme.Normal.Render(res.EngineName))
	}

	lines := []string{
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconSearch), keyStyle.Render("Query"), r.theme.Title.Render(res.Query)),
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconGlobe), keyStyle.Render("Engine"), engine),
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconArrow), keyStyle.Render("Terms"), r.theme.Normal.Render(res.Remainder)),
	}
	if res.UsedDefault {
		lines = append(lines, fmt.Sprintf("%s %s %s",
			iconStyle.Render(IconWifi), keyStyle.Render("Network"), r.RenderNetwork(res.SSID, res.SSIDFound, res.Trusted)))
	}
	lines = append(lines,
		"",
		fmt.Sprintf("  %s %s", keyStyle.Render("Search"), r.theme.Highlight.Render(res.SearchURL)),
		fmt.Sprintf("  %s %s", keyStyle.Render("Suggest"), r.theme.Subtle.Render(res.SuggestURL)),
	)

	return strings.Join(lines, "\n")
}

// RenderNetwork describes the detected network.
func (r *ResolveRenderer) RenderNetwork(ssid string, found, trusted bool) string {
	if !found {
		return r.theme.Subtle.Render("no SSID detected")
	}
	out := r.theme.Normal.Render(ssid)
	if trusted {
		out += " " + r.theme.AccentBadge("trusted")
	}
	return out
}

// RenderError renders an error message.
func (r *ResolveRenderer) RenderError(err error) string {
	return fmt.Sprintf("%s %s", r.theme.ErrorStyle.Render(IconX), r.theme.ErrorStyle.Render(err.Error()))
}
