package cli

import (
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/s-hama/sigma-js-primes/config"
	"github.com/s-hama/sigma-js-primes/query"
)

// rangeFlags binds --start/--end; unset flags fall back to the store bounds.
type rangeFlags struct {
	start, end int64
}

func (r *rangeFlags) bind(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&r.start, "start", 0, "inclusive start of the range (default: min bound)")
	cmd.Flags().Int64Var(&r.end, "end", 0, "inclusive end of the range (default: max bound)")
}

func (r *rangeFlags) options(cmd *cobra.Command) []query.RangeOption {
	var opts []query.RangeOption
	if cmd.Flags().Changed("start") {
		opts = append(opts, query.From(r.start))
	}
	if cmd.Flags().Changed("end") {
		opts = append(opts, query.To(r.end))
	}

	return opts
}

// parseInt parses a positional integer argument.
func parseInt(name, arg string) (int64, error) {
	n, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, usageErrorf("%s must be an integer, got %q", name, arg)
	}

	return n, nil
}

// NewInfoCommand creates the info command.
func NewInfoCommand(rootOpts *RootOptions) *cobra.Command {
	var savePath string

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show the active range, algorithm and prime count",
		Long: `Shows the active range, algorithm and prime count. With --save the resolved
settings (file, environment and flags combined) are written as a YAML file
that --config accepts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.run(cmd, func(q *query.Service) (any, error) {
				if savePath != "" {
					if err := config.Save(savePath, q.Store().Settings()); err != nil {
						return nil, err
					}
					rootOpts.logger.Debug("settings saved", zap.String("path", savePath))
				}

				return info(q.Store()), nil
			})
		},
	}
	cmd.Flags().StringVar(&savePath, "save", "", "write the resolved settings to this YAML file")

	return cmd
}

// NewIsPrimeCommand creates the is-prime command.
func NewIsPrimeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "is-prime <n>",
		Short: "Report whether n is prime",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.run(cmd, func(q *query.Service) (any, error) {
				n, err := parseInt("n", args[0])
				if err != nil {
					return nil, err
				}
				ok, err := q.IsPrime(n)
				if err != nil {
					return nil, err
				}

				return primeCheck{N: n, Prime: ok}, nil
			})
		},
	}
}

// NewPrimesCommand creates the primes command.
func NewPrimesCommand(rootOpts *RootOptions) *cobra.Command {
	var rf rangeFlags
	cmd := &cobra.Command{
		Use:   "primes",
		Short: "List the primes of a range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.run(cmd, func(q *query.Service) (any, error) {
				primes, err := q.Primes(rf.options(cmd)...)
				if err != nil {
					return nil, err
				}

				return primesResult{Primes: primes}, nil
			})
		},
	}
	rf.bind(cmd)

	return cmd
}

// NewFactorsCommand creates the factors command.
func NewFactorsCommand(rootOpts *RootOptions) *cobra.Command {
	var formula bool
	cmd := &cobra.Command{
		Use:   "factors <n>",
		Short: "Factorize n into primes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.run(cmd, func(q *query.Service) (any, error) {
				n, err := parseInt("n", args[0])
				if err != nil {
					return nil, err
				}
				if formula {
					f, err := q.FactorsFormula(n)
					if err != nil {
						return nil, err
					}

					return formulaResult{N: n, Formula: f}, nil
				}
				factors, err := q.Factors(n)
				if err != nil {
					return nil, err
				}

				return factorsResult{N: n, Factors: factors}, nil
			})
		},
	}
	cmd.Flags().BoolVar(&formula, "formula", false, `render as "2^3*3" instead of a list`)

	return cmd
}

// NewRandomCommand creates the random command.
func NewRandomCommand(rootOpts *RootOptions) *cobra.Command {
	var rf rangeFlags
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Pick a random prime from a range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.run(cmd, func(q *query.Service) (any, error) {
				p, err := q.RandomPrime(rf.options(cmd)...)
				if err != nil {
					return nil, err
				}

				return randomResult{Prime: p}, nil
			})
		},
	}
	rf.bind(cmd)

	return cmd
}

// NewCoprimeCommand creates the coprime command.
func NewCoprimeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "coprime <a> <b>",
		Short: "Report whether a and b share no factor",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.run(cmd, func(q *query.Service) (any, error) {
				a, err := parseInt("a", args[0])
				if err != nil {
					return nil, err
				}
				b, err := parseInt("b", args[1])
				if err != nil {
					return nil, err
				}
				ok, err := q.IsCoprime(a, b)
				if err != nil {
					return nil, err
				}

				return coprimeResult{A: a, B: b, Coprime: ok}, nil
			})
		},
	}
}

// NewCountCommand creates the count command.
func NewCountCommand(rootOpts *RootOptions) *cobra.Command {
	var rf rangeFlags
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count the primes of a range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.run(cmd, func(q *query.Service) (any, error) {
				n, err := q.PrimesCount(rf.options(cmd)...)
				if err != nil {
					return nil, err
				}

				return countResult{Count: n}, nil
			})
		},
	}
	rf.bind(cmd)

	return cmd
}

// NewIndexCommand creates the index command.
func NewIndexCommand(rootOpts *RootOptions) *cobra.Command {
	var rf rangeFlags
	cmd := &cobra.Command{
		Use:   "index <n>",
		Short: "Show the 1-based position of prime n within a range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.run(cmd, func(q *query.Service) (any, error) {
				n, err := parseInt("n", args[0])
				if err != nil {
					return nil, err
				}
				idx, err := q.PrimesIndex(n, rf.options(cmd)...)
				if err != nil {
					return nil, err
				}

				return indexResult{N: n, Index: idx}, nil
			})
		},
	}
	rf.bind(cmd)

	return cmd
}

// NewSumCommand creates the sum command.
func NewSumCommand(rootOpts *RootOptions) *cobra.Command {
	var rf rangeFlags
	cmd := &cobra.Command{
		Use:   "sum",
		Short: "Sum the primes of a range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.run(cmd, func(q *query.Service) (any, error) {
				total, err := q.PrimesSum(rf.options(cmd)...)
				if err != nil {
					return nil, err
				}

				return sumResult{Sum: total}, nil
			})
		},
	}
	rf.bind(cmd)

	return cmd
}

// NewAverageCommand creates the average command.
func NewAverageCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		rf     rangeFlags
		places int
	)
	cmd := &cobra.Command{
		Use:   "average",
		Short: "Average the primes of a range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.run(cmd, func(q *query.Service) (any, error) {
				avg, err := q.PrimesAverage(places, rf.options(cmd)...)
				if err != nil {
					return nil, err
				}

				return averageResult{Average: avg, Places: places}, nil
			})
		},
	}
	rf.bind(cmd)
	cmd.Flags().IntVar(&places, "places", query.DefaultAveragePlaces, "decimal places to round to")

	return cmd
}

// NewMedianCommand creates the median command.
func NewMedianCommand(rootOpts *RootOptions) *cobra.Command {
	var rf rangeFlags
	cmd := &cobra.Command{
		Use:   "median",
		Short: "Median of the primes of a range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.run(cmd, func(q *query.Service) (any, error) {
				med, err := q.PrimesMedian(rf.options(cmd)...)
				if err != nil {
					return nil, err
				}

				return medianResult{Median: med}, nil
			})
		},
	}
	rf.bind(cmd)

	return cmd
}

// NewTwinsCommand creates the twins command.
func NewTwinsCommand(rootOpts *RootOptions) *cobra.Command {
	var rf rangeFlags
	cmd := &cobra.Command{
		Use:   "twins",
		Short: "List the twin prime pairs of a range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.run(cmd, func(q *query.Service) (any, error) {
				twins, err := q.PrimesTwins(rf.options(cmd)...)
				if err != nil {
					return nil, err
				}

				return twinsResult{Twins: twins}, nil
			})
		},
	}
	rf.bind(cmd)

	return cmd
}

// NewInverseCommand creates the inverse command.
func NewInverseCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inverse <a> <m>",
		Short: "Smallest x with a*x ≡ 1 (mod m)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.run(cmd, func(q *query.Service) (any, error) {
				a, err := parseInt("a", args[0])
				if err != nil {
					return nil, err
				}
				m, err := parseInt("m", args[1])
				if err != nil {
					return nil, err
				}
				x, err := q.MultInverse(a, m)
				if err != nil {
					return nil, err
				}

				return inverseResult{A: a, M: m, Inverse: x}, nil
			})
		},
	}
}
