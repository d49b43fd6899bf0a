// Copyright 2026 The distrib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// distcalc evaluates distribution functions from the command line:
// densities, cumulative and survival probabilities, quantiles, random
// samples and pdf/cdf tables for the distributions in the dist
// package.
package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/probstat/distrib/dist"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// distFlags selects a distribution and carries the parameter flags for
// every supported kind; only the flags for the selected kind are read.
type distFlags struct {
	name string

	mean, sd     float64 // normal (mean also: poisson)
	mu, beta     float64 // laplace
	lower, upper int     // uniform
	value        float64 // constant
	trials       int     // binomial
	prob         float64 // binomial
}

func (f *distFlags) register(cmd *cobra.Command) {
	fs := cmd.PersistentFlags()
	fs.StringVar(&f.name, "dist", "normal",
		"distribution: normal, laplace, poisson, uniform, constant, binomial")
	fs.Float64Var(&f.mean, "mean", 0, "mean (normal, poisson)")
	fs.Float64Var(&f.sd, "sd", 1, "standard deviation (normal)")
	fs.Float64Var(&f.mu, "mu", 0, "location (laplace)")
	fs.Float64Var(&f.beta, "beta", 1, "scale (laplace)")
	fs.IntVar(&f.lower, "lower", 0, "lower bound, inclusive (uniform)")
	fs.IntVar(&f.upper, "upper", 1, "upper bound, inclusive (uniform)")
	fs.Float64Var(&f.value, "value", 0, "point of support (constant)")
	fs.IntVar(&f.trials, "trials", 1, "number of trials (binomial)")
	fs.Float64Var(&f.prob, "prob", 0.5, "success probability (binomial)")
}

// build returns the selected distribution; exactly one of the results
// is non-nil on success.
func (f *distFlags) build() (dist.Dist, dist.DiscreteDist, error) {
	switch f.name {
	case "normal":
		d, err := dist.NewNormal(f.mean, f.sd)
		if err != nil {
			return nil, nil, err
		}
		return d, nil, nil
	case "laplace":
		d, err := dist.NewLaplace(f.mu, f.beta)
		if err != nil {
			return nil, nil, err
		}
		return d, nil, nil
	case "constant":
		d, err := dist.NewConstant(f.value)
		if err != nil {
			return nil, nil, err
		}
		return d, nil, nil
	case "poisson":
		d, err := dist.NewPoisson(f.mean)
		if err != nil {
			return nil, nil, err
		}
		return nil, d, nil
	case "uniform":
		d, err := dist.NewUniformInt(f.lower, f.upper)
		if err != nil {
			return nil, nil, err
		}
		return nil, d, nil
	case "binomial":
		d, err := dist.NewBinomial(f.trials, f.prob)
		if err != nil {
			return nil, nil, err
		}
		return nil, d, nil
	}
	return nil, nil, fmt.Errorf("unknown distribution %q", f.name)
}

func newRootCmd() *cobra.Command {
	f := new(distFlags)
	root := &cobra.Command{
		Use:           "distcalc",
		Short:         "Evaluate probability distribution functions",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	f.register(root)
	root.AddCommand(
		newPointCmd(f, "pdf", "Evaluate the density (or mass) function"),
		newPointCmd(f, "cdf", "Evaluate the cumulative distribution function"),
		newPointCmd(f, "survival", "Evaluate the survival function"),
		newQuantileCmd(f),
		newSampleCmd(f),
		newTableCmd(f),
	)
	return root
}

// newPointCmd builds the pdf, cdf and survival subcommands, which all
// evaluate one function at each argument.
func newPointCmd(f *distFlags, kind, short string) *cobra.Command {
	return &cobra.Command{
		Use:   kind + " x...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, d, err := f.build()
			if err != nil {
				return err
			}
			for _, arg := range args {
				var y float64
				if c != nil {
					x, err := strconv.ParseFloat(arg, 64)
					if err != nil {
						return err
					}
					switch kind {
					case "pdf":
						y = c.PDF(x)
					case "cdf":
						y = c.CDF(x)
					case "survival":
						y = dist.Survival(c, x)
					}
				} else {
					k, err := strconv.Atoi(arg)
					if err != nil {
						return err
					}
					switch kind {
					case "pdf":
						y = d.PMF(k)
					case "cdf":
						y = d.CDF(k)
					case "survival":
						y = dist.DiscreteSurvival(d, k)
					}
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%g\n", y)
			}
			return nil
		},
	}
}

func newQuantileCmd(f *distFlags) *cobra.Command {
	var survival bool
	cmd := &cobra.Command{
		Use:   "quantile p...",
		Short: "Evaluate the inverse CDF (or inverse survival function)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, d, err := f.build()
			if err != nil {
				return err
			}
			for _, arg := range args {
				p, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return err
				}
				if c != nil {
					var x float64
					if survival {
						x, err = dist.InvSurvival(c, p)
					} else {
						x, err = c.InvCDF(p)
					}
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%g\n", x)
				} else {
					var k int
					if survival {
						k, err = dist.DiscreteInvSurvival(d, p)
					} else {
						k, err = d.InvCDF(p)
					}
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%d\n", k)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&survival, "survival", false, "invert the survival function instead of the CDF")
	return cmd
}

// samplers are per-type methods, not part of the core interfaces;
// every shipped distribution satisfies one of these.
type continuousSampler interface {
	Sampler(*rand.Rand) dist.Sampler[float64]
}

type discreteSampler interface {
	Sampler(*rand.Rand) dist.Sampler[int]
}

func newSampleCmd(f *distFlags) *cobra.Command {
	var (
		n    int
		seed uint64
	)
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Draw random variates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, d, err := f.build()
			if err != nil {
				return err
			}
			rng := rand.New(rand.NewPCG(seed, seed))
			out := cmd.OutOrStdout()
			if c != nil {
				s := c.(continuousSampler).Sampler(rng)
				for x := range dist.SamplesN(s, n) {
					fmt.Fprintf(out, "%g\n", x)
				}
			} else {
				s := d.(discreteSampler).Sampler(rng)
				for k := range dist.SamplesN(s, n) {
					fmt.Fprintf(out, "%d\n", k)
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "samples", "n", 10, "number of variates to draw")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "random seed")
	return cmd
}

func newTableCmd(f *distFlags) *cobra.Command {
	var (
		from, to float64
		steps    int
	)
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print an x, pdf, cdf table over a range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, d, err := f.build()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if d != nil {
				lo, hi := from, to
				if lo == 0 && hi == 0 {
					l, err := d.InvCDF(0.001)
					if err != nil {
						return err
					}
					h, err := d.InvCDF(0.999)
					if err != nil {
						return err
					}
					lo, hi = float64(l), float64(h)
				}
				for k := int(lo); k <= int(hi); k++ {
					fmt.Fprintf(out, "%d\t%.6g\t%.6g\n", k, d.PMF(k), d.CDF(k))
				}
				return nil
			}
			lo, hi := from, to
			if lo == 0 && hi == 0 {
				if lo, err = c.InvCDF(0.001); err != nil {
					return err
				}
				if hi, err = c.InvCDF(0.999); err != nil {
					return err
				}
			}
			if steps < 2 {
				steps = 2
			}
			dx := (hi - lo) / float64(steps-1)
			for i := 0; i < steps; i++ {
				x := lo + float64(i)*dx
				fmt.Fprintf(out, "%.6g\t%.6g\t%.6g\n", x, c.PDF(x), c.CDF(x))
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&from, "from", 0, "table start (default: 0.1% quantile)")
	cmd.Flags().Float64Var(&to, "to", 0, "table end (default: 99.9% quantile)")
	cmd.Flags().IntVar(&steps, "steps", 21, "number of rows (continuous)")
	return cmd
}
