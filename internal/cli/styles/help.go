package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// TryKeyMap defines keybindings for the interactive resolver.
type TryKeyMap struct {
	Complete key.Binding
	Mode     key.Binding
	Accept   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k TryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Complete, k.Mode, k.Accept, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k TryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Complete, k.Mode},
		{k.Accept, k.Help, k.Quit},
	}
}

// DefaultTryKeyMap returns the default keybindings.
func DefaultTryKeyMap() TryKeyMap {
	return TryKeyMap{
		Complete: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "complete bang"),
		),
		Mode: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "search/suggest"),
		),
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "print url"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
