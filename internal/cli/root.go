package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"

	"github.com/s-hama/sigma-js-primes/config"
	"github.com/s-hama/sigma-js-primes/msgs"
	"github.com/s-hama/sigma-js-primes/query"
	"github.com/s-hama/sigma-js-primes/sieve"
	"github.com/s-hama/sigma-js-primes/store"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	MinBound   int64
	MaxBound   int64
	Algorithm  string
	Format     string // "json" | "text"
	Lang       string
	Seed       int64
	Verbose    bool

	logger *zap.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the primes CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "primes",
		Short: "Bounded-range prime queries",
		Long: `primes sieves every prime in a configured [min, max] range once and answers
questions about it: primality, factorization, counts, sums, averages, medians,
twin primes, coprimality, modular inverses and random picks.

Settings come from a YAML file (--config), then PRIMES_* environment
variables, then the --min/--max/--algorithm flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}

			logCfg := zap.NewProductionConfig()
			if opts.Verbose {
				logCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			// Logs go to the command's stderr, not the process's.
			logger, err := logCfg.Build(zap.WrapCore(func(zapcore.Core) zapcore.Core {
				return zapcore.NewCore(
					zapcore.NewJSONEncoder(logCfg.EncoderConfig),
					zapcore.AddSync(cmd.ErrOrStderr()),
					logCfg.Level,
				)
			}))
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			opts.logger = logger

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	// Global flags
	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "YAML configuration file")
	pf.Int64Var(&opts.MinBound, "min", store.DefaultMinBound, "lowest integer of the range")
	pf.Int64Var(&opts.MaxBound, "max", store.DefaultMaxBound, "highest integer of the range")
	pf.StringVar(&opts.Algorithm, "algorithm", string(sieve.DefaultAlgorithm), "sieve algorithm (eratosthenes|atkin)")
	pf.StringVar(&opts.Format, "format", "text", "output format (json|text)")
	pf.StringVar(&opts.Lang, "lang", "en", "message language (en|ja)")
	pf.Int64Var(&opts.Seed, "seed", 0, "seed for random picks (clock-seeded when unset)")
	pf.BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	// Add subcommands
	cmd.AddCommand(NewInfoCommand(opts))
	cmd.AddCommand(NewIsPrimeCommand(opts))
	cmd.AddCommand(NewPrimesCommand(opts))
	cmd.AddCommand(NewFactorsCommand(opts))
	cmd.AddCommand(NewRandomCommand(opts))
	cmd.AddCommand(NewCoprimeCommand(opts))
	cmd.AddCommand(NewCountCommand(opts))
	cmd.AddCommand(NewIndexCommand(opts))
	cmd.AddCommand(NewSumCommand(opts))
	cmd.AddCommand(NewAverageCommand(opts))
	cmd.AddCommand(NewMedianCommand(opts))
	cmd.AddCommand(NewTwinsCommand(opts))
	cmd.AddCommand(NewInverseCommand(opts))
	cmd.AddCommand(NewWatchCommand(opts))

	return cmd
}

// Execute runs the command tree with args and returns the process exit code.
// Failures raised by commands are already rendered on stdout; anything else
// (unknown flags, wrong argument counts) is printed to stderr.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	code := GetExitCode(err)
	if err != nil && code == ExitCommandError {
		var rendered *ExitError
		if !errors.As(err, &rendered) {
			fmt.Fprintln(stderr, "Error:", err)
		}
	}

	return code
}

// formatter builds the output formatter for cmd.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
}

func (o *RootOptions) language() language.Tag { return msgs.Match(o.Lang) }

// overrides returns the settings given explicitly on the command line.
func (o *RootOptions) overrides(cmd *cobra.Command) store.Config {
	var cfg store.Config
	flags := cmd.Flags()
	if flags.Changed("min") {
		cfg.MinBound = &o.MinBound
	}
	if flags.Changed("max") {
		cfg.MaxBound = &o.MaxBound
	}
	if flags.Changed("algorithm") {
		alg, err := sieve.ParseAlgorithm(o.Algorithm)
		if err != nil {
			alg = sieve.Algorithm(o.Algorithm)
		}
		cfg.Algorithm = &alg
	}

	return cfg
}

// openStore resolves file, environment and flags (in rising precedence) and
// sieves the resulting range.
func (o *RootOptions) openStore(cmd *cobra.Command) (*store.Store, error) {
	fileCfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return nil, err
	}

	var opts []store.Option
	if !fileCfg.Empty() {
		opts = append(opts, store.WithConfig(fileCfg))
	}
	if flagCfg := o.overrides(cmd); !flagCfg.Empty() {
		opts = append(opts, store.WithConfig(flagCfg))
	}

	started := time.Now()
	st, err := store.New(opts...)
	if err != nil {
		return nil, err
	}

	settings := st.Settings()
	o.logger.Debug("sieve ready",
		zap.Int64("min_bound", settings.MinBound),
		zap.Int64("max_bound", settings.MaxBound),
		zap.Stringer("algorithm", settings.Algorithm),
		zap.Int("primes", st.Len()),
		zap.Duration("elapsed", time.Since(started)),
	)

	return st, nil
}

// service opens the store and wraps it in a query service.
func (o *RootOptions) service(cmd *cobra.Command) (*query.Service, error) {
	st, err := o.openStore(cmd)
	if err != nil {
		return nil, err
	}

	var qopts []query.Option
	if cmd.Flags().Changed("seed") {
		qopts = append(qopts, query.WithSeed(o.Seed))
	}

	return query.New(st, qopts...), nil
}

// run opens a service, runs fn and renders its result or failure.
func (o *RootOptions) run(cmd *cobra.Command, fn func(q *query.Service) (any, error)) error {
	f := o.formatter(cmd)

	q, err := o.service(cmd)
	if err != nil {
		return o.fail(f, ExitCommandError, err, nil)
	}

	result, err := fn(q)
	if err != nil {
		code := ExitFailure
		if c := errorCode(err); c == CodeUsage || c == CodeConfig {
			code = ExitCommandError
		}

		return o.fail(f, code, err, q.Store().Settings())
	}

	return f.Success(result)
}

// fail renders err in the requested language and returns it as an ExitError.
// details carries the settings a query ran against; nil when none were
// resolved.
func (o *RootOptions) fail(f *OutputFormatter, code int, err error, details any) error {
	message := msgs.Localize(err, o.language())
	o.logger.Debug("command failed", zap.Error(err), zap.Int("exit_code", code))
	if ferr := f.Error(errorCode(err), message, details); ferr != nil {
		return ferr
	}

	return WrapExitError(code, message, err)
}
