package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/banger/internal/application/usecase"
	"github.com/bnema/banger/internal/cli/styles"
)

var ssidCmd = &cobra.Command{
	Use:   "ssid",
	Short: "Show the detected network and the default engine it selects",
	Args:  cobra.NoArgs,
	RunE:  runSSID,
}

func init() {
	rootCmd.AddCommand(ssidCmd)
}

func runSSID(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	// An empty query always goes to the default engine.
	out := a.Resolver.Resolve(a.WithContext(cmd.Context()), usecase.ResolveInput{})

	renderer := styles.NewResolveRenderer(a.Theme)
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s %s\n", a.Theme.Highlight.Render(styles.IconWifi), renderer.RenderNetwork(out.SSID, out.SSIDFound, out.Trusted))
	fmt.Fprintf(w, "%s default engine %s\n", a.Theme.Highlight.Render(styles.IconGlobe), a.Theme.Title.Render(out.EngineName))
	return nil
}
