// Package cli implements ledgerctl, a command line client that works on the
// same storage as the HTTP server.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	portssvc "github.com/SscSPs/pocket_ledger/internal/core/ports/services"
	"github.com/SscSPs/pocket_ledger/internal/platform/bootstrap"
	"github.com/SscSPs/pocket_ledger/internal/platform/config"
	"github.com/spf13/cobra"
)

// AppFactory builds the services a command runs against. The returned close
// func releases them.
type AppFactory func(ctx context.Context) (*portssvc.ServiceContainer, func() error, error)

// DefaultAppFactory loads configuration from the environment and opens the configured storage.
func DefaultAppFactory(ctx context.Context) (*portssvc.ServiceContainer, func() error, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	app, err := bootstrap.NewApp(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return app.Services, app.Close, nil
}

type runtime struct {
	factory AppFactory
}

// withServices opens the services for one command and releases them afterwards.
func (r *runtime) withServices(fn func(cmd *cobra.Command, args []string, svc *portssvc.ServiceContainer) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		services, closeFn, err := r.factory(cmd.Context())
		if err != nil {
			return err
		}
		defer func() {
			if cerr := closeFn(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		return fn(cmd, args, services)
	}
}

// NewRootCmd builds the ledgerctl command tree.
func NewRootCmd(factory AppFactory) *cobra.Command {
	rt := &runtime{factory: factory}
	var verbose bool

	root := &cobra.Command{
		Use:           "ledgerctl",
		Short:         "Manage a pocket ledger from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(
		newRegistryCmd(),
		newCurrenciesCmd(rt),
		newReportCmd(rt),
		newReminderCmd(rt),
		newAuthCmd(),
	)
	return root
}

// Execute runs the command tree and reports any error on stderr.
func Execute(ctx context.Context, root *cobra.Command) int {
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		return 1
	}
	return 0
}

func printf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format, args...)
}
