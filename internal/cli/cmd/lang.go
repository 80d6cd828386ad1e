package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bnema/pagestate/internal/cli"
)

var (
	langOutput string
	langJSON   bool
)

var langCmd = &cobra.Command{
	Use:   "lang PAGE CODE",
	Short: "Switch the site language",
	Long: `Load PAGE and select language CODE. The matching selector button is clicked
when the page has one; any other code is still applied and persisted.`,
	Args: cobra.ExactArgs(2),
	RunE: runLang,
}

func init() {
	rootCmd.AddCommand(langCmd)
	addPageOutputFlags(langCmd, &langOutput, &langJSON)
}

func runLang(c *cobra.Command, args []string) error {
	return withPage(c, args[0], langOutput, langJSON, func(s *cli.PageSession) error {
		return s.SelectLanguage(args[1])
	})
}
