package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/pagestate/internal/cli/styles"
)

var langsJSON bool

var langsCmd = &cobra.Command{
	Use:   "langs PAGE",
	Short: "List the languages a page offers",
	Long: `List the language selector buttons of PAGE and every language tag found on
its content items, with display names and item counts.`,
	Args: cobra.ExactArgs(1),
	RunE: runLangs,
}

func init() {
	rootCmd.AddCommand(langsCmd)
	langsCmd.Flags().BoolVar(&langsJSON, "json", false, "output as JSON")
}

func runLangs(c *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	session, err := a.OpenPage(args[0])
	if err != nil {
		return err
	}

	languages := session.Page.Languages
	rows := styles.LanguageRows(languages.Buttons(), languages.ItemLanguages())

	out := c.OutOrStdout()
	if langsJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}
	_, err = fmt.Fprintln(out, styles.NewPageRenderer(a.Theme).Languages(rows))
	return err
}
