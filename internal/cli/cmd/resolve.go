package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/banger/internal/application/usecase"
	"github.com/bnema/banger/internal/cli/styles"
)

var (
	resolveSuggest bool
	resolveURLOnly bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <query...>",
	Short: "Show where a query would be redirected",
	Long: `Resolve a query exactly like the server does and print the result.

Arguments are joined with single spaces, so quoting is optional:

  banger resolve !w Alan Turing
  banger resolve --suggest "!g rust"
  banger resolve -u weather boulder    # bare URL, for scripts`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().BoolVarP(&resolveSuggest, "suggest", "s", false, "print the suggestion URL with --url-only")
	resolveCmd.Flags().BoolVarP(&resolveURLOnly, "url-only", "u", false, "print only the redirect URL")
}

func runResolve(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")
	out := a.Resolver.Resolve(a.WithContext(cmd.Context()), usecase.ResolveInput{Query: query})

	if resolveURLOnly {
		if resolveSuggest {
			fmt.Fprintln(cmd.OutOrStdout(), out.SuggestURL)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), out.SearchURL)
		}
		return nil
	}

	renderer := styles.NewResolveRenderer(a.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(toResolution(query, out)))
	return nil
}

func toResolution(query string, out *usecase.ResolveOutput) styles.Resolution {
	return styles.Resolution{
		Query:       query,
		Bang:        out.Bang,
		EngineName:  out.EngineName,
		Remainder:   out.Remainder,
		SearchURL:   out.SearchURL,
		SuggestURL:  out.SuggestURL,
		UsedDefault: out.UsedDefault,
		SSID:        out.SSID,
		SSIDFound:   out.SSIDFound,
		Trusted:     out.Trusted,
	}
}
