package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bnema/pagestate/internal/cli"
)

var (
	clickOutput string
	clickJSON   bool
)

var clickCmd = &cobra.Command{
	Use:   "click PAGE SELECTOR...",
	Short: "Load a page and click elements",
	Long: `Load PAGE, then click the first element matching each SELECTOR in order.
Checkbox targets flip their checked state and also fire change.

Examples:
  pagestate click index.html '#mode'
  pagestate click index.html '.lang-btn[data-lang="ko"]' '#menu-trigger'`,
	Args: cobra.MinimumNArgs(2),
	RunE: runClick,
}

func init() {
	rootCmd.AddCommand(clickCmd)
	addPageOutputFlags(clickCmd, &clickOutput, &clickJSON)
}

func runClick(c *cobra.Command, args []string) error {
	return withPage(c, args[0], clickOutput, clickJSON, func(s *cli.PageSession) error {
		for _, selector := range args[1:] {
			if err := s.Click(selector); err != nil {
				return err
			}
		}
		return nil
	})
}
