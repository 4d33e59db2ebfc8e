package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderPath renders the config file location and whether it exists.
func (r *ConfigRenderer) RenderPath(path string, exists bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	status := r.theme.SuccessStyle.Render("exists")
	if !exists {
		status = r.theme.WarningStyle.Render("not created yet")
	}

	return fmt.Sprintf("%s Config %s %s",
		iconStyle.Render(IconConfig),
		r.theme.Subtle.Render(path),
		status,
	)
}

// RenderWritten confirms a file was written.
func (r *ConfigRenderer) RenderWritten(what, path string) string {
	return fmt.Sprintf("%s %s written to %s",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Normal.Render(what),
		r.theme.Subtle.Render(path),
	)
}

// RenderExists reports a file that was left untouched.
func (r *ConfigRenderer) RenderExists(path string) string {
	return fmt.Sprintf("%s %s already exists %s",
		r.theme.WarningStyle.Render(IconWarning),
		r.theme.Subtle.Render(path),
		r.theme.Subtle.Render("(use --force to overwrite)"),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	return fmt.Sprintf("%s %s",
		r.theme.ErrorStyle.Render(IconX),
		r.theme.ErrorStyle.Render(err.Error()),
	)
}
