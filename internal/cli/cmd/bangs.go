package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/banger/internal/application/usecase"
)

var bangsCmd = &cobra.Command{
	Use:   "bangs [prefix]",
	Short: "List bangs starting with a prefix",
	Long: `List registered bangs whose keyword starts with prefix (case-insensitive).
A leading "!" is optional.

  banger bangs c      # !cpp, !crates`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBangs,
}

func init() {
	rootCmd.AddCommand(bangsCmd)
}

func runBangs(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	prefix := ""
	if len(args) == 1 {
		prefix = args[0]
	}

	out := a.Shortcuts.FilterBangs(a.WithContext(cmd.Context()), usecase.FilterBangsInput{Query: prefix})
	if len(out.Suggestions) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), a.Theme.Subtle.Render(fmt.Sprintf("no bangs match %q", prefix)))
		return nil
	}

	for _, s := range out.Suggestions {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", a.Theme.BangBadge(s.Key), a.Theme.Normal.Render(s.Description))
	}
	return nil
}
