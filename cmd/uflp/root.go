// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/uflp/exact"
	"github.com/katalvlaran/uflp/instance"
	"github.com/katalvlaran/uflp/solver"
)

// verifyTolerance is the largest gap between the pipeline and the exact
// solver still reported as agreement.
const verifyTolerance = 1e-6

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "uflp",
		Short:        "Uncapacitated facility location via Hammer-function reduction",
		SilenceUsage: true,
	}
	cmd.AddCommand(newSolveCmd())

	return cmd
}

func newSolveCmd() *cobra.Command {
	var (
		c          = defaultConfig()
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Generate a random instance and solve it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if configPath != "" {
				if err := c.merge(configPath, cmd.Flags()); err != nil {
					return err
				}
			}
			if err := c.validate(); err != nil {
				return err
			}

			logger := logrus.New()
			logger.SetOutput(cmd.ErrOrStderr())
			if c.Verbose > 0 {
				logger.SetLevel(logrus.DebugLevel)
			}

			return run(cmd.OutOrStdout(), logger, c)
		},
	}
	c.bindFlags(cmd.Flags())
	cmd.Flags().StringVar(&configPath, "config", "", "YAML file with run settings; flags override it")

	return cmd
}

// funcrErrorKey marks lines funcr rendered from a logr Error call.
const funcrErrorKey = `"error"=`

// bridge routes logr output of the library packages into logrus. Error
// calls reach logrus at error level; everything else is debug output.
func bridge(logger *logrus.Logger, verbosity int) logr.Logger {
	return funcr.New(func(prefix, args string) {
		entry := logger.WithField("component", prefix)
		if strings.Contains(args, funcrErrorKey) {
			entry.Error(args)
			return
		}
		entry.Debug(args)
	}, funcr.Options{Verbosity: verbosity})
}

func run(out io.Writer, logger *logrus.Logger, c config) error {
	in, err := instance.Random(c.Plants, c.Customers, c.randomOptions()...)
	if err != nil {
		return fmt.Errorf("generating instance: %w", err)
	}
	logger.WithFields(logrus.Fields{
		"plants": c.Plants, "customers": c.Customers, "seed": c.Seed,
	}).Info("instance generated")

	s, err := solver.New(in, append(c.solverOptions(), solver.WithLogger(bridge(logger, c.Verbose)))...)
	if err != nil {
		return err
	}
	if err = s.Solve(); err != nil {
		return err
	}
	res, err := s.Result()
	if err != nil {
		return err
	}
	gap, err := s.MaxRelativeError()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "cost\t%.6g\n", res.MinimumCost)
	fmt.Fprintf(tw, "lower bound\t%.6g\n", res.LowerBound)
	if !math.IsNaN(res.RelaxationBound) {
		fmt.Fprintf(tw, "lp bound\t%.6g\n", res.RelaxationBound)
	}
	fmt.Fprintf(tw, "max relative error\t%.4f\n", gap)
	fmt.Fprintf(tw, "open plants\t%v\n", res.PlantsToOpen)
	fmt.Fprintf(tw, "rules\topened=%d closed=%d\n", res.Stats.KhumawalaOpened, res.Stats.KhumawalaClosed)
	fmt.Fprintf(tw, "heuristics\tgreedy=%d tentative=%d\n", res.Stats.GreedyOpened, res.Stats.TentativeOpened)
	fmt.Fprintf(tw, "search\tresidual=%d assignments=%d\n", res.Stats.Residual, res.Stats.Assignments)
	fmt.Fprintf(tw, "timings\tprep=%s reduce=%s search=%s\n",
		res.Timings.Preparation, res.Timings.Reduction, res.Timings.Search)

	var verr error
	if c.Verify {
		verr = verify(tw, logger, in, res.MinimumCost, c)
	}
	if err = tw.Flush(); err != nil {
		return err
	}

	return verr
}

// verify compares cost with the exact optimum and appends it to the report.
func verify(out io.Writer, logger *logrus.Logger, in *instance.Instance, cost float64, c config) error {
	sol, err := exact.Solve(in, c.Scale)
	if err != nil {
		return fmt.Errorf("verifying: %w", err)
	}
	fmt.Fprintf(out, "exact cost\t%.6g\n", sol.Cost)
	if math.Abs(sol.Cost-cost) > verifyTolerance*math.Max(1, sol.Cost) {
		if c.NoGreedy {
			return fmt.Errorf("verifying: proof-backed run found %g, exact optimum is %g", cost, sol.Cost)
		}
		logger.WithField("exact", sol.Cost).Warn("greedy heuristic missed the optimum")
	}

	return nil
}
