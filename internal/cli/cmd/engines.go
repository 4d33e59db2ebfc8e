package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/banger/internal/cli/styles"
)

var enginesSuggest bool

var enginesCmd = &cobra.Command{
	Use:     "engines",
	Aliases: []string{"ls"},
	Short:   "List registered bangs",
	Args:    cobra.NoArgs,
	RunE:    runEngines,
}

func init() {
	rootCmd.AddCommand(enginesCmd)
	enginesCmd.Flags().BoolVar(&enginesSuggest, "suggest", false, "include suggestion URL templates")
}

func runEngines(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	entries := a.Resolver.Registry().Entries()
	rows := make([]styles.EngineRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, styles.EngineRow{
			Key:        e.Key,
			Name:       e.Name,
			SearchURL:  e.Engine.SearchURL,
			SuggestURL: e.Engine.SuggestURL,
			Default:    e.Key == a.Config.Search.DefaultEngine,
			Trusted:    e.Key == a.Config.Search.TrustedEngine,
		})
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.RenderEngineTable(a.Theme, rows, enginesSuggest))
	return nil
}
