package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/pagestate/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file and profile database paths",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	Args:  cobra.NoArgs,
	RunE:  runConfigSchema,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configSchemaCmd, configInitCmd)
}

func runConfigPath(c *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	configFile := options.ConfigFile
	if configFile == "" {
		if configFile, err = config.GetConfigFile(); err != nil {
			return err
		}
	}
	out := c.OutOrStdout()
	fmt.Fprintf(out, "config   %s\n", configFile)
	fmt.Fprintf(out, "profile  %s\n", a.Config.Profile)
	fmt.Fprintf(out, "database %s\n", a.Config.Database.Path)
	return nil
}

func runConfigSchema(c *cobra.Command, _ []string) error {
	data, err := config.Schema()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.OutOrStdout(), string(data))
	return err
}

func runConfigInit(c *cobra.Command, _ []string) error {
	path := options.ConfigFile
	if path == "" {
		var err error
		if path, err = config.GetConfigFile(); err != nil {
			return err
		}
	}
	if err := config.WriteDefault(path); err != nil {
		return err
	}
	_, err := fmt.Fprintf(c.OutOrStdout(), "wrote %s\n", path)
	return err
}
