package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/banger/internal/cli/styles"
	"github.com/bnema/banger/internal/infrastructure/config"
)

var (
	configShowFormat  string
	configInitForce   bool
	configSchemaWrite bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Locate, print, initialize and describe the banger configuration file.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the configuration after defaults, the config file and BANGER_*
environment overrides have been merged.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	Long: `Print the JSON schema of the config file. With --write, store it as
config.schema.json next to the config file for editor completion.`,
	Args: cobra.NoArgs,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSchemaCmd)

	configShowCmd.Flags().StringVarP(&configShowFormat, "format", "f", config.FormatTOML, "output format: toml, yaml, json")
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing config file")
	configSchemaCmd.Flags().BoolVarP(&configSchemaWrite, "write", "w", false, "write config.schema.json next to the config file")
}

// resolveConfigFile returns the --config path or the XDG default.
func resolveConfigFile() (string, error) {
	if configFile != "" {
		return configFile, nil
	}
	return config.GetConfigFile()
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	path, err := resolveConfigFile()
	if err != nil {
		return err
	}

	_, statErr := os.Stat(path)
	if statErr != nil && !errors.Is(statErr, fs.ErrNotExist) {
		return fmt.Errorf("stat config file: %w", statErr)
	}

	renderer := styles.NewConfigRenderer(styles.NewTheme())
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderPath(path, statErr == nil))
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	data, err := config.Render(a.Config, configShowFormat)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path, err := resolveConfigFile()
	if err != nil {
		return err
	}

	renderer := styles.NewConfigRenderer(styles.NewTheme())
	written, err := config.CreateDefaultConfigFile(path, configInitForce)
	if err != nil {
		return err
	}
	if !written {
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderExists(path))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderWritten("default config", path))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	if !configSchemaWrite {
		data, err := config.GenerateSchema()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	path, err := resolveConfigFile()
	if err != nil {
		return err
	}
	schemaFile, err := config.GenerateSchemaFile(path)
	if err != nil {
		return err
	}

	renderer := styles.NewConfigRenderer(styles.NewTheme())
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderWritten("schema", schemaFile))
	return nil
}
