package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/pagestate/internal/infrastructure/filewatch"
	"github.com/bnema/pagestate/internal/logging"
)

var (
	watchOutput string
	watchJSON   bool
)

var watchCmd = &cobra.Command{
	Use:   "watch PAGE",
	Short: "Reload the page whenever it changes",
	Long: `Load PAGE, then reload it every time the file is saved, re-applying the
stored theme and language. With --output the initialized HTML is rewritten
after each reload. Stop with Ctrl+C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	addPageOutputFlags(watchCmd, &watchOutput, &watchJSON)
}

func runWatch(c *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	session, err := a.OpenPage(args[0])
	if err != nil {
		return err
	}

	out := c.OutOrStdout()
	emit := func() error {
		if watchOutput != "" {
			if err := session.WriteHTML(watchOutput); err != nil {
				return err
			}
		}
		return printReport(out, a, session.Report(), watchJSON)
	}
	if err := emit(); err != nil {
		return err
	}

	watcher, err := filewatch.New(args[0], 0)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(session.Ctx(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return watcher.Run(ctx, func(ctx context.Context) error {
		if err := session.Reload(); err != nil {
			// A half-written file is common while saving; wait for the next event.
			logging.FromContext(ctx).Warn().Err(err).Msg("reload failed")
			return nil
		}
		if !watchJSON {
			fmt.Fprintln(out)
		}
		return emit()
	})
}
