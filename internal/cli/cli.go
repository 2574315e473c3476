package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/nameform/internal/config"
	"github.com/idilsaglam/nameform/internal/logging"
	"github.com/idilsaglam/nameform/internal/ui"
)

// errInvalid marks a run whose names failed validation; the details have
// already been printed.
var errInvalid = errors.New("invalid name")

// usageError wraps bad invocations so Run can exit with 2.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

type app struct {
	cfgPath string
	verbose bool
	cfg     *config.Config

	stdout, stderr io.Writer
}

// Run executes the command line and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return run(ctx, args, os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	var ue usageError
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errInvalid):
		return 1
	case errors.As(err, &ue):
		ui.Fail(stderr, err.Error())
		fmt.Fprintln(stderr)
		_ = root.Usage()
		return 2
	default:
		ui.Fail(stderr, err.Error())
		return 1
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "nameform",
		Short: "nameform - collect and validate a first and last name",
		Long: `nameform asks for a first and a last name, validates each one and
shows the full name once both are valid.

Run without arguments to start the interactive terminal form.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageError{fmt.Errorf("unknown command %q", args[0])}
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.cfgPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			ui.SetTheme(cfg.Theme)
			return nil
		},
		RunE: a.runTUI,
	}
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err}
	})
	root.PersistentFlags().StringVar(&a.cfgPath, "config", "nameform.yaml", "config file (YAML)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(a.tuiCmd(), a.checkCmd(), a.askCmd(), a.serveCmd(), a.initCmd())
	return root
}

// logger builds the process logger; terminal UIs only log to a file.
func (a *app) logger(terminal bool) (*zap.Logger, error) {
	if terminal {
		return logging.ForTerminal(a.cfg.Logging, a.verbose)
	}
	return logging.New(a.cfg.Logging, a.verbose)
}
