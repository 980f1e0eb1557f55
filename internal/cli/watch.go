package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/s-hama/sigma-js-primes/config"
	"github.com/s-hama/sigma-js-primes/msgs"
	"github.com/s-hama/sigma-js-primes/store"
)

// NewWatchCommand creates the watch command.
func NewWatchCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Re-sieve whenever the configuration file changes",
		Long: `Loads --config, prints the resulting settings, then follows the file and
prints the settings again after every change. Rejected changes are reported
and leave the previous range in place. Flags keep precedence over the file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(rootOpts, cmd)
		},
	}
}

func runWatch(opts *RootOptions, cmd *cobra.Command) error {
	f := opts.formatter(cmd)
	if opts.ConfigPath == "" {
		return opts.fail(f, ExitCommandError, usageErrorf("watch requires --config"), nil)
	}

	st, err := opts.openStore(cmd)
	if err != nil {
		return opts.fail(f, ExitCommandError, err, nil)
	}
	if err := f.Success(info(st)); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	f.VerboseLog("watching %s", opts.ConfigPath)
	err = config.Watch(ctx, opts.ConfigPath, st, opts.logger,
		config.WithOverrides(opts.overrides(cmd)),
		config.OnReload(func(_ store.Settings, err error) {
			if err != nil {
				_ = f.Error(errorCode(err), msgs.Localize(err, opts.language()), st.Settings())

				return
			}
			_ = f.Success(info(st))
		}),
	)
	if err != nil && ctx.Err() == nil {
		return opts.fail(f, ExitCommandError, err, st.Settings())
	}

	return nil
}
