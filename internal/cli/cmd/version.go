package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/banger/internal/cli/styles"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"about"},
	Short:   "Show version and build information",
	Args:    cobra.NoArgs,
	RunE:    runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVarP(&versionShort, "short", "s", false, "print only the version")
}

func runVersion(cmd *cobra.Command, _ []string) error {
	if versionShort {
		fmt.Fprintln(cmd.OutOrStdout(), buildInfo.Version)
		return nil
	}

	renderer := styles.NewAboutRenderer(styles.NewTheme())
	fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(buildInfo))
	return nil
}
