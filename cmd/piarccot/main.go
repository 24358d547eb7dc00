// Command piarccot computes pi (or a pi-proportional constant) to
// arbitrary configurable precision by evaluating a Machin-like linear
// combination of inverse cotangents.
//
//	piarccot precision d m1 a1 [m2 a2 ...]
//
// With no arguments, piarccot uses a built-in default formula. See
// "piarccot --help" for flags, and "piarccot --list-formulas" for
// named formulas usable via --formula.
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/GBuella/pi-arccot/internal/arccot"
	"github.com/GBuella/pi-arccot/internal/cliargs"
	"github.com/GBuella/pi-arccot/internal/formula"
)

var log = logrus.New()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		formulaName  string
		verbose      bool
		listFormulas bool
	)

	cmd := &cobra.Command{
		Use:           "piarccot [flags] precision d m1 a1 [m2 a2 ...]",
		Short:         "Compute pi via a Machin-like arccot series to arbitrary precision",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			} else {
				log.SetLevel(logrus.WarnLevel)
			}

			if listFormulas {
				for _, name := range formula.Names() {
					spec, _ := formula.Lookup(name)
					fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", name, spec.Description)
				}
				return nil
			}

			parsed, err := resolveArgs(formulaName, args)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				fmt.Fprintln(cmd.ErrOrStderr(), cmd.UsageString())
				return err
			}

			return run(cmd, parsed)
		},
	}

	cmd.Flags().StringVar(&formulaName, "formula", "", "use a named built-in formula instead of m/a pairs (see --list-formulas)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable diagnostic logging")
	cmd.Flags().BoolVar(&listFormulas, "list-formulas", false, "list built-in named formulas and exit")

	return cmd
}

// resolveArgs turns either "--formula NAME precision" or the plain
// positional grammar into a cliargs.Parsed.
func resolveArgs(formulaName string, args []string) (*cliargs.Parsed, error) {
	if formulaName == "" {
		return cliargs.Parse(args)
	}
	spec, ok := formula.Lookup(formulaName)
	if !ok {
		return nil, fmt.Errorf("unknown formula %q (see --list-formulas)", formulaName)
	}
	if len(args) != 1 {
		return nil, fmt.Errorf("--formula %s requires exactly one positional argument: precision", formulaName)
	}
	precision, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid precision %q", args[0])
	}
	return cliargs.FromFormula(uint(precision), spec)
}

// run executes the evaluator and prints its result to stdout. Internal
// invariant violations panic inside the arccot package by design
// (assertion failures are fatal bugs, not recoverable errors); run
// recovers once here, logs the failure, and reports it as an ordinary
// error so main exits with status 1.
func run(cmd *cobra.Command, parsed *cliargs.Parsed) (err error) {
	runID := uuid.NewString()
	entry := log.WithFields(logrus.Fields{
		"run_id":    runID,
		"precision": parsed.Precision,
		"scale":     parsed.Scale,
		"terms":     len(parsed.Terms),
	})

	defer func() {
		if r := recover(); r != nil {
			entry.WithField("panic", r).Error("internal invariant violated")
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	eval, buildErr := arccot.New(parsed.Precision, parsed.Scale, parsed.Terms)
	if buildErr != nil {
		entry.WithError(buildErr).Debug("rejecting arguments")
		fmt.Fprintln(cmd.ErrOrStderr(), buildErr)
		fmt.Fprintln(cmd.ErrOrStderr(), cmd.UsageString())
		return buildErr
	}

	start := time.Now()
	if err := eval.Run(); err != nil {
		return err
	}
	entry.WithField("elapsed", time.Since(start)).Debug("evaluation complete")

	fmt.Fprintln(cmd.OutOrStdout(), eval.String())
	return nil
}
