package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/pagestate/internal/domain/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		out := c.OutOrStdout()
		fmt.Fprintf(out, "pagestate %s\n", buildInfo.Version)
		fmt.Fprintf(out, "commit    %s\n", buildInfo.Commit)
		fmt.Fprintf(out, "built     %s\n", buildInfo.BuildDate)
		fmt.Fprintf(out, "go        %s\n", buildInfo.GoVersion)
		fmt.Fprintf(out, "%s\n", build.RepoURL())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
