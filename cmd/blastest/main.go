// Command blastest runs correctness tests and benchmarks for the BLAS
// routines against the registered compute backend.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	algoblas "github.com/cwbudde/algo-blas"
	"github.com/cwbudde/algo-blas/blastest"
	"github.com/cwbudde/algo-blas/device"
)

var precisions = map[string]algoblas.Precision{
	"single":         algoblas.PrecisionSingle,
	"double":         algoblas.PrecisionDouble,
	"complex-single": algoblas.PrecisionComplexSingle,
	"complex-double": algoblas.PrecisionComplexDouble,
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		routineName string
		precName    string
		configPath  string
		full        bool
		verbose     bool
	)

	root := &cobra.Command{
		Use:           "blastest",
		Short:         "Correctness tests and benchmarks for BLAS routines",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&routineName, "routine", "", "routine to run (default: all registered)")
	root.PersistentFlags().StringVar(&precName, "precision", "", "element precision: single, double, complex-single, complex-double (default: all)")
	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML settings file overlaying the defaults")
	root.PersistentFlags().BoolVar(&full, "full", false, "widen the parameter sweeps")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "per-case log output")

	setup := func() (*blastest.Settings, zerolog.Logger, error) {
		log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
			With().Timestamp().Logger()
		if !verbose {
			log = log.Level(zerolog.WarnLevel)
		}
		settings, err := blastest.LoadSettings(configPath, full)
		if err != nil {
			return nil, log, err
		}
		info := device.RegisterDefaultBackend()
		log.Info().Str("backend", info.Name).Str("description", info.Description).
			Msg("compute backend registered")
		return settings, log, nil
	}

	root.AddCommand(&cobra.Command{
		Use:   "test",
		Short: "Check routine results against the reference implementation",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, log, err := setup()
			if err != nil {
				return err
			}
			var total blastest.Summary
			err = forEach(routineName, precName, func(e blastest.Entry, prec algoblas.Precision) error {
				sum, err := e.Test(prec, settings, log)
				if err != nil {
					return fmt.Errorf("%s %s: %w", e.Name, prec, err)
				}
				fmt.Printf("%-14s %-15s %s\n", e.Name, prec, sum)
				total.Cases += sum.Cases
				total.Passed += sum.Passed
				total.Failed += sum.Failed
				total.Skipped += sum.Skipped
				return nil
			})
			if err != nil {
				return err
			}
			fmt.Printf("total: %s\n", total)
			if total.Failed > 0 {
				return fmt.Errorf("%d case(s) failed", total.Failed)
			}
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "bench",
		Short: "Measure routine throughput",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, log, err := setup()
			if err != nil {
				return err
			}
			// Benchmarks report through the logger, so always keep it audible.
			log = log.Level(zerolog.InfoLevel)
			return forEach(routineName, precName, func(e blastest.Entry, prec algoblas.Precision) error {
				if err := e.Bench(prec, settings, log); err != nil {
					return fmt.Errorf("%s %s: %w", e.Name, prec, err)
				}
				return nil
			})
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List registered routines",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range blastest.Names() {
				e, _ := blastest.Get(name)
				fmt.Printf("%-14s level %d\n", e.Name, e.Level)
			}
			return nil
		},
	})

	return root
}

// forEach resolves the routine and precision selectors and invokes fn for
// every combination. Empty selectors mean "all".
func forEach(routineName, precName string, fn func(blastest.Entry, algoblas.Precision) error) error {
	names := blastest.Names()
	if routineName != "" {
		if _, ok := blastest.Get(strings.ToLower(routineName)); !ok {
			return fmt.Errorf("unknown routine %q (known: %s)", routineName, strings.Join(names, ", "))
		}
		names = []string{strings.ToLower(routineName)}
	}

	precs := []algoblas.Precision{
		algoblas.PrecisionSingle, algoblas.PrecisionDouble,
		algoblas.PrecisionComplexSingle, algoblas.PrecisionComplexDouble,
	}
	if precName != "" {
		p, ok := precisions[strings.ToLower(precName)]
		if !ok {
			return fmt.Errorf("unknown precision %q", precName)
		}
		precs = []algoblas.Precision{p}
	}

	for _, name := range names {
		e, _ := blastest.Get(name)
		for _, p := range precs {
			if err := fn(e, p); err != nil {
				return err
			}
		}
	}
	return nil
}
