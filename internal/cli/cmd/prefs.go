package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/pagestate/internal/cli/styles"
	"github.com/bnema/pagestate/internal/domain/entity"
)

var prefsJSON bool

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Inspect and edit stored preferences",
	Long: `Read and write the current profile's preferences. Known keys are
"` + entity.PreferenceKeyTheme + `" and "` + entity.PreferenceKeyLanguage + `".`,
}

var prefsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored preferences",
	Args:  cobra.NoArgs,
	RunE:  runPrefsList,
}

var prefsGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Print one preference",
	Args:  cobra.ExactArgs(1),
	RunE:  runPrefsGet,
}

var prefsSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Store a preference",
	Args:  cobra.ExactArgs(2),
	RunE:  runPrefsSet,
}

func init() {
	rootCmd.AddCommand(prefsCmd)
	prefsCmd.AddCommand(prefsListCmd, prefsGetCmd, prefsSetCmd)
	prefsListCmd.Flags().BoolVar(&prefsJSON, "json", false, "output as JSON")
}

func runPrefsList(c *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	prefs, err := a.Preferences.List(a.Ctx())
	if err != nil {
		return err
	}

	out := c.OutOrStdout()
	if prefsJSON {
		values := make(map[string]string, len(prefs))
		for _, p := range prefs {
			values[p.Key] = p.Value
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(values)
	}
	_, err = fmt.Fprintln(out, styles.NewPageRenderer(a.Theme).Preferences(prefs))
	return err
}

func runPrefsGet(c *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	value, ok := a.Preferences.Get(a.Ctx(), args[0])
	if !ok {
		return fmt.Errorf("preference %q is not set", args[0])
	}
	_, err = fmt.Fprintln(c.OutOrStdout(), value)
	return err
}

func runPrefsSet(c *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	a.Preferences.Set(a.Ctx(), args[0], args[1])
	if a.Preferences.Degraded() {
		fmt.Fprintln(c.ErrOrStderr(), a.Theme.WarningStyle.Render("profile store unavailable, value not persisted"))
	}
	return nil
}
