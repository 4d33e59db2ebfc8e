package model

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/banger/internal/application/usecase"
	"github.com/bnema/banger/internal/cli/styles"
)

const maxBangHints = 8

// TryMode selects which redirect the TUI shows and prints.
type TryMode int

const (
	// TryModeSearch shows the /search redirect.
	TryModeSearch TryMode = iota
	// TryModeSuggest shows the /suggest redirect.
	TryModeSuggest
)

func (m TryMode) String() string {
	if m == TryModeSuggest {
		return "suggest"
	}
	return "search"
}

// TryModel is the Bubble Tea model for the interactive resolver.
type TryModel struct {
	// UI components
	input textinput.Model
	help  help.Model
	keys  styles.TryKeyMap

	// State
	query    string
	result   *usecase.ResolveOutput
	hints    []usecase.BangSuggestion
	mode     TryMode
	selected string
	width    int

	// Dependencies
	ctx       context.Context
	resolver  *usecase.ResolveQueryUseCase
	shortcuts *usecase.SearchShortcutsUseCase
	theme     *styles.Theme
}

// NewTryModel creates a new interactive resolver model.
func NewTryModel(
	ctx context.Context,
	theme *styles.Theme,
	resolver *usecase.ResolveQueryUseCase,
	shortcuts *usecase.SearchShortcutsUseCase,
) TryModel {
	input := styles.NewQueryInput(theme)
	input.Focus()

	return TryModel{
		input:     input,
		help:      styles.NewStyledHelp(theme),
		keys:      styles.DefaultTryKeyMap(),
		ctx:       ctx,
		resolver:  resolver,
		shortcuts: shortcuts,
		theme:     theme,
		width:     80,
	}
}

// tryResolvedMsg carries a resolution computed off the UI loop.
type tryResolvedMsg struct {
	query  string
	result *usecase.ResolveOutput
}

// Init implements tea.Model.
func (m TryModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.resolveCmd(m.query))
}

// resolveCmd resolves query in the background. The SSID lookup can take up
// to its timeout, which must not stall key handling.
func (m TryModel) resolveCmd(query string) tea.Cmd {
	ctx := m.ctx
	resolver := m.resolver
	return func() tea.Msg {
		return tryResolvedMsg{
			query:  query,
			result: resolver.Resolve(ctx, usecase.ResolveInput{Query: query}),
		}
	}
}

// Update implements tea.Model.
func (m TryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case tryResolvedMsg:
		// Drop results for text the user has already changed.
		if msg.query == m.query {
			m.result = msg.result
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Accept):
			if m.result != nil {
				m.selected = m.currentURL()
			}
			return m, tea.Quit

		case key.Matches(msg, m.keys.Mode):
			if m.mode == TryModeSearch {
				m.mode = TryModeSuggest
			} else {
				m.mode = TryModeSearch
			}

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll

		case key.Matches(msg, m.keys.Complete):
			if completed, ok := m.completion(); ok {
				m.input.SetValue(completed)
				m.input.CursorEnd()
				cmds = append(cmds, m.setQuery(completed))
			}

		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			cmds = append(cmds, cmd)

			if m.input.Value() != m.query {
				cmds = append(cmds, m.setQuery(m.input.Value()))
			}
		}
	}

	return m, tea.Batch(cmds...)
}

// setQuery records the new text, refreshes bang hints and schedules a resolution.
func (m *TryModel) setQuery(query string) tea.Cmd {
	m.query = query
	m.hints = nil
	if m.typingBang() {
		m.hints = m.shortcuts.FilterBangs(m.ctx, usecase.FilterBangsInput{Query: query}).Suggestions
	}
	return m.resolveCmd(query)
}

// typingBang reports whether the cursor is still inside a bang keyword.
func (m TryModel) typingBang() bool {
	return strings.HasPrefix(m.query, "!") && !strings.ContainsFunc(m.query, unicode.IsSpace)
}

// completion returns the query with the first matching bang completed.
func (m TryModel) completion() (string, bool) {
	if !m.typingBang() || len(m.hints) == 0 {
		return "", false
	}
	return "!" + m.hints[0].Key + " ", true
}

func (m TryModel) currentURL() string {
	if m.result == nil {
		return ""
	}
	if m.mode == TryModeSuggest {
		return m.result.SuggestURL
	}
	return m.result.SearchURL
}

// View implements tea.Model.
func (m TryModel) View() string {
	var sb strings.Builder

	sb.WriteString(m.theme.Title.Render("banger"))
	sb.WriteString(" ")
	sb.WriteString(m.theme.MutedBadge(m.mode.String()))
	sb.WriteString("\n\n")

	sb.WriteString(m.theme.InputBox(m.input.View(), true))
	sb.WriteString("\n")

	if len(m.hints) > 0 {
		sb.WriteString(m.renderHints())
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.renderResult())
	sb.WriteString("\n\n")
	sb.WriteString(m.help.View(m.keys))

	return lipgloss.NewStyle().Padding(1, 2).Render(sb.String())
}

func (m TryModel) renderHints() string {
	parts := make([]string, 0, maxBangHints+1)
	for i, hint := range m.hints {
		if i == maxBangHints {
			parts = append(parts, m.theme.Subtle.Render(fmt.Sprintf("+%d", len(m.hints)-maxBangHints)))
			break
		}
		parts = append(parts, m.theme.BangBadge(hint.Key)+" "+m.theme.Subtle.Render(hint.Description))
	}
	return strings.Join(parts, "  ")
}

func (m TryModel) renderResult() string {
	if m.result == nil {
		return m.theme.Subtle.Render("resolving...")
	}

	var engine string
	if m.result.Bang != "" {
		engine = m.theme.BangBadge(m.result.Bang)
	} else {
		engine = m.theme.MutedBadge("default")
	}
	engine += " " + m.theme.Normal.Render(m.result.EngineName)

	lines := []string{engine}
	if m.result.UsedDefault {
		network := "no SSID"
		if m.result.SSIDFound {
			network = m.result.SSID
		}
		lines = append(lines, m.theme.Subtle.Render(styles.IconWifi+" "+network))
	}

	urlStyle := m.theme.Highlight
	if m.width > 8 {
		urlStyle = urlStyle.MaxWidth(m.width - 4)
	}
	lines = append(lines, urlStyle.Render(m.currentURL()))

	return strings.Join(lines, "\n")
}

// Selected returns the URL accepted with enter, or empty if the user quit.
func (m TryModel) Selected() string {
	return m.selected
}
