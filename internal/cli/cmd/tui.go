package cmd

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bnema/pagestate/internal/cli/model"
	"github.com/bnema/pagestate/internal/infrastructure/filewatch"
	"github.com/bnema/pagestate/internal/logging"
)

var tuiCmd = &cobra.Command{
	Use:   "tui PAGE",
	Short: "Interact with a page in the terminal",
	Long: `Open PAGE in an interactive view: toggle the theme and the menu, switch
languages and reload, with preferences saved to the current profile.
The view reloads on its own when PAGE changes on disk.`,
	Args: cobra.ExactArgs(1),
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, args []string) error {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return fmt.Errorf("tui needs an interactive terminal, use 'pagestate load' instead")
	}

	a, err := requireApp()
	if err != nil {
		return err
	}
	session, err := a.OpenPage(args[0])
	if err != nil {
		return err
	}

	p := tea.NewProgram(model.NewPageModel(session), tea.WithAltScreen())

	ctx, cancel := context.WithCancel(session.Ctx())
	defer cancel()
	go func() {
		if err := watchPage(ctx, session.Path, p.Send); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("page watcher stopped")
		}
	}()

	_, err = p.Run()
	return err
}

// watchPage sends a model.PageReloadedMsg every time the page file changes.
func watchPage(ctx context.Context, path string, send func(tea.Msg)) error {
	watcher, err := filewatch.New(path, 0)
	if err != nil {
		return err
	}
	return watcher.Run(ctx, func(context.Context) error {
		send(model.PageReloadedMsg{})
		return nil
	})
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
