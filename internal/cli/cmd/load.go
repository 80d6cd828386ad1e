package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bnema/pagestate/internal/cli"
)

var (
	loadOutput string
	loadJSON   bool
)

var loadCmd = &cobra.Command{
	Use:   "load PAGE",
	Short: "Load a page and show its state",
	Long: `Parse PAGE, apply the stored theme and language and print the resulting
state. With --output the page is written back as HTML after initialization.`,
	Args: cobra.ExactArgs(1),
	RunE: runLoad,
}

func init() {
	rootCmd.AddCommand(loadCmd)
	addPageOutputFlags(loadCmd, &loadOutput, &loadJSON)
}

func addPageOutputFlags(c *cobra.Command, output *string, asJSON *bool) {
	c.Flags().StringVarP(output, "output", "o", "", "write the resulting HTML to this file")
	c.Flags().BoolVar(asJSON, "json", false, "output as JSON")
}

func runLoad(c *cobra.Command, args []string) error {
	return withPage(c, args[0], loadOutput, loadJSON, func(*cli.PageSession) error { return nil })
}

// withPage opens path, runs fn, then reports and optionally writes the HTML.
func withPage(c *cobra.Command, path, output string, asJSON bool, fn func(*cli.PageSession) error) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	session, err := a.OpenPage(path)
	if err != nil {
		return err
	}
	if err := fn(session); err != nil {
		return err
	}
	if output != "" {
		if err := session.WriteHTML(output); err != nil {
			return err
		}
	}
	return printReport(c.OutOrStdout(), a, session.Report(), asJSON)
}
