// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/uflp/instance"
	"github.com/katalvlaran/uflp/rules"
	"github.com/katalvlaran/uflp/search"
	"github.com/katalvlaran/uflp/solver"
)

// config is everything one run needs. Field names double as YAML keys.
type config struct {
	Plants    int   `yaml:"plants"`
	Customers int   `yaml:"customers"`
	Seed      int64 `yaml:"seed"`
	Euclidean bool  `yaml:"euclidean"`
	Integral  bool  `yaml:"integral"`

	Alpha          float64 `yaml:"alpha"`
	Beta           float64 `yaml:"beta"`
	MaxAssignments uint64  `yaml:"maxAssignments"`
	Workers        int     `yaml:"workers"`
	NoGreedy       bool    `yaml:"noGreedy"`
	NoSignPart     bool    `yaml:"noSignPartition"`
	Relaxation     bool    `yaml:"relaxation"`

	Verify bool    `yaml:"verify"`
	Scale  float64 `yaml:"scale"`

	Verbose int `yaml:"verbose"`
}

func defaultConfig() config {
	return config{
		Plants:         20,
		Customers:      30,
		Seed:           instance.DefaultSeed,
		Alpha:          rules.DefaultAlpha,
		Beta:           solver.DefaultBeta,
		MaxAssignments: search.DefaultMaxAssignments,
		Workers:        solver.DefaultWorkers,
		Scale:          1,
	}
}

func (c *config) bindFlags(fs *pflag.FlagSet) {
	fs.IntVar(&c.Plants, "plants", c.Plants, "number of candidate plants")
	fs.IntVar(&c.Customers, "customers", c.Customers, "number of customers")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random instance seed")
	fs.BoolVar(&c.Euclidean, "euclidean", c.Euclidean, "derive transport costs from planar distances")
	fs.BoolVar(&c.Integral, "integral", c.Integral, "round generated costs to integers")

	fs.Float64Var(&c.Alpha, "alpha", c.Alpha, "share of plants the greedy heuristic may open")
	fs.Float64Var(&c.Beta, "beta", c.Beta, "share of plants to decide before exhaustive search")
	fs.Uint64Var(&c.MaxAssignments, "max-assignments", c.MaxAssignments, "residual search ceiling")
	fs.IntVar(&c.Workers, "workers", c.Workers, "residual search goroutines")
	fs.BoolVar(&c.NoGreedy, "no-h1", c.NoGreedy, "disable the greedy heuristic")
	fs.BoolVar(&c.NoSignPart, "no-h2", c.NoSignPart, "disable the sign-partition heuristic")
	fs.BoolVar(&c.Relaxation, "lp-bound", c.Relaxation, "also compute the LP relaxation bound")

	fs.BoolVar(&c.Verify, "verify", c.Verify, "cross-check the cost with the exact MaxSAT solver")
	fs.Float64Var(&c.Scale, "scale", c.Scale, "cost multiplier making weights integral for --verify")

	fs.IntVarP(&c.Verbose, "verbose", "v", c.Verbose, "log verbosity (0-2)")
}

// merge loads path over c and then re-applies every flag set explicitly on
// fs, so the command line wins over the file.
func (c *config) merge(path string, fs *pflag.FlagSet) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	changed := make(map[string]string)
	fs.Visit(func(f *pflag.Flag) { changed[f.Name] = f.Value.String() })

	if err = yaml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	for name, value := range changed {
		if err = fs.Set(name, value); err != nil {
			return fmt.Errorf("re-applying --%s: %w", name, err)
		}
	}

	return nil
}

func (c config) validate() error {
	switch {
	case c.Plants < 1 || c.Customers < 1:
		return fmt.Errorf("plants and customers must be ≥ 1, got %d and %d", c.Plants, c.Customers)
	case !(c.Alpha >= 0 && c.Alpha <= 1):
		return fmt.Errorf("alpha must be in [0, 1], got %g", c.Alpha)
	case !(c.Beta >= 0 && c.Beta <= 1):
		return fmt.Errorf("beta must be in [0, 1], got %g", c.Beta)
	case c.MaxAssignments < 1:
		return fmt.Errorf("max-assignments must be ≥ 1")
	case c.Workers < 1:
		return fmt.Errorf("workers must be ≥ 1, got %d", c.Workers)
	case c.Scale <= 0:
		return fmt.Errorf("scale must be positive, got %g", c.Scale)
	}

	return nil
}

func (c config) randomOptions() []instance.RandomOption {
	opts := []instance.RandomOption{instance.WithSeed(c.Seed)}
	if c.Euclidean {
		opts = append(opts, instance.WithEuclidean())
	}
	if c.Integral {
		opts = append(opts, instance.WithIntegral())
	}

	return opts
}

// solverOptions must only be called on a validated config; the setters
// panic on out-of-range values.
func (c config) solverOptions() []solver.Option {
	opts := []solver.Option{
		solver.WithAlpha(c.Alpha),
		solver.WithBeta(c.Beta),
		solver.WithMaxAssignments(c.MaxAssignments),
		solver.WithWorkers(c.Workers),
	}
	if c.NoGreedy {
		opts = append(opts, solver.WithoutGreedy())
	}
	if c.NoSignPart {
		opts = append(opts, solver.WithoutSignPartition())
	}
	if c.Relaxation {
		opts = append(opts, solver.WithRelaxationBound())
	}

	return opts
}
