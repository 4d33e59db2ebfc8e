package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/banger/internal/cli/model"
)

var tryCmd = &cobra.Command{
	Use:   "try",
	Short: "Interactively resolve queries",
	Long: `Type a query and watch where it would be redirected.

Tab completes a bang, Ctrl+S switches between search and suggestion URLs,
Enter prints the URL and exits.`,
	Args: cobra.NoArgs,
	RunE: runTry,
}

func init() {
	rootCmd.AddCommand(tryCmd)
}

func runTry(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	m := model.NewTryModel(a.WithContext(cmd.Context()), a.Theme, a.Resolver, a.Shortcuts)
	final, err := tea.NewProgram(m, tea.WithContext(cmd.Context())).Run()
	if err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	if tm, ok := final.(model.TryModel); ok && tm.Selected() != "" {
		fmt.Fprintln(cmd.OutOrStdout(), tm.Selected())
	}
	return nil
}
