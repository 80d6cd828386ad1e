// Package cmd provides Cobra CLI commands for pagestate.
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/pagestate/internal/cli"
	"github.com/bnema/pagestate/internal/cli/styles"
	"github.com/bnema/pagestate/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	options   cli.Options
	rootCmd   = &cobra.Command{
		Use:   "pagestate",
		Short: "Headless host for a content site's theme, menu and language state",
		Long: `pagestate loads a static content page the way a browser would and runs its
client-side enhancements: the light/dark theme toggle, the menu blur and the
language filter. Preferences are kept per profile and survive reloads.

Use 'pagestate load' to see what a page looks like after load, 'pagestate tui'
to interact with it, or 'pagestate watch' to re-apply on every save.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			if skipsApp(cmd) {
				return nil
			}

			var err error
			app, err = cli.NewApp(options)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&options.ConfigFile, "config", "", "config file (default $XDG_CONFIG_HOME/pagestate/config.toml)")
	flags.StringVarP(&options.Profile, "profile", "p", "", "preference profile to use")
	flags.StringVar(&options.LogLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
}

func skipsApp(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "help", "completion", "version", "schema", "init":
		return true
	}
	return false
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

func requireApp() (*cli.App, error) {
	a := GetApp()
	if a == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return a, nil
}

// printReport writes report as JSON or as styled text.
func printReport(w io.Writer, a *cli.App, report cli.Report, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	r := styles.NewPageRenderer(a.Theme)
	_, err := fmt.Fprintf(w, "%s\n\n%s\n", r.Header(report.Page, report.Profile, report.Degraded), r.Snapshot(report.Snapshot))
	return err
}
