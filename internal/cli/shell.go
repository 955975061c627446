package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/roach88/shoestock/internal/logger"
	"github.com/roach88/shoestock/internal/shell"
)

// NewShellCommand creates the shell command.
func NewShellCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive menu",
		Long: `Start the interactive inventory menu.

The inventory file is reloaded before every menu choice according to the
reload policy. There is no exit option: press Ctrl+C or close standard
input to leave.

Example:
  shoestock shell --file ./inventory.txt
  shoestock shell --reload once --journal ./restocks.db`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(rootOpts, cmd)
		},
	}

	return cmd
}

func runShell(opts *RootOptions, cmd *cobra.Command) error {
	a, err := openApp(opts, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runShellLoop(ctx, a, cmd)
}

func runShellLoop(ctx context.Context, a *app, cmd *cobra.Command) error {
	sh := shell.New(a.tracker, cmd.InOrStdin(), cmd.OutOrStdout(), logger.Named(a.log, "shell"))
	if err := sh.Run(ctx); err != nil {
		return a.formatter.Fail(ExitCommandError, ErrCodeGeneric, "shell stopped", err)
	}
	return nil
}
