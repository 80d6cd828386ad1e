package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bnema/pagestate/internal/cli"
)

var (
	themeOutput string
	themeJSON   bool
)

var themeCmd = &cobra.Command{
	Use:   "theme PAGE",
	Short: "Toggle between light and dark",
	Args:  cobra.ExactArgs(1),
	RunE:  runTheme,
}

func init() {
	rootCmd.AddCommand(themeCmd)
	addPageOutputFlags(themeCmd, &themeOutput, &themeJSON)
}

func runTheme(c *cobra.Command, args []string) error {
	return withPage(c, args[0], themeOutput, themeJSON, func(s *cli.PageSession) error {
		s.ToggleTheme()
		return nil
	})
}
