// Package cliargs parses the positional CLI grammar:
//
//	program precision d m1 a1 m2 a2 ... mn an
//
// into inputs ready for arccot.New, independently of any particular
// flag-parsing framework so it can be unit tested without a command
// tree.
package cliargs

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/GBuella/pi-arccot/internal/arccot"
	"github.com/GBuella/pi-arccot/internal/formula"
)

// ErrUsage is returned for any malformed positional argument list:
// missing precision/d, an odd number of multiplier/argument tokens, a
// non-numeric token, or zero term pairs.
var ErrUsage = errors.New("cliargs: usage: precision d m1 a1 [m2 a2 ...]")

// Parsed holds the validated inputs for arccot.New.
type Parsed struct {
	Precision uint
	Scale     uint32
	Terms     []arccot.Term
}

// Parse parses args as precision, d, and one or more (m, a) pairs. An
// empty args reproduces the built-in default formula.
func Parse(args []string) (*Parsed, error) {
	if len(args) == 0 {
		return Default(), nil
	}
	if len(args) < 4 {
		return nil, errors.Wrap(ErrUsage, "too few arguments")
	}

	precision, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil || precision < 1 {
		return nil, errors.Wrapf(ErrUsage, "invalid precision %q", args[0])
	}
	scale, err := strconv.ParseUint(args[1], 10, 32)
	if err != nil || scale == 0 {
		return nil, errors.Wrapf(ErrUsage, "invalid scale %q", args[1])
	}

	rest := args[2:]
	if len(rest) == 0 || len(rest)%2 != 0 {
		return nil, errors.Wrap(ErrUsage, "multiplier/argument tokens must come in pairs")
	}

	terms := make([]arccot.Term, 0, len(rest)/2)
	for i := 0; i < len(rest); i += 2 {
		mult, err := strconv.ParseInt(rest[i], 10, 64)
		if err != nil {
			return nil, errors.Wrapf(ErrUsage, "invalid multiplier %q", rest[i])
		}
		arg, err := strconv.ParseUint(rest[i+1], 10, 32)
		if err != nil {
			return nil, errors.Wrapf(ErrUsage, "invalid argument %q", rest[i+1])
		}
		terms = append(terms, arccot.Term{Mult: mult, Arg: uint32(arg)})
	}

	return &Parsed{
		Precision: uint(precision),
		Scale:     uint32(scale),
		Terms:     terms,
	}, nil
}

// FromFormula builds a Parsed from a named formula's scale and terms,
// combined with a caller-supplied precision (formulas do not carry a
// precision of their own).
func FromFormula(precision uint, spec formula.Spec) (*Parsed, error) {
	if precision < 1 {
		return nil, errors.Wrapf(ErrUsage, "invalid precision %d", precision)
	}
	return &Parsed{
		Precision: precision,
		Scale:     spec.Scale,
		Terms:     spec.ArccotTerms(),
	}, nil
}

// Default is the zero-argument built-in formula: precision=17, d=4,
// 5*arccot(7) + 4*arccot(68) + 2*arccot(117).
func Default() *Parsed {
	spec, ok := formula.Lookup(formula.Default)
	if !ok {
		panic("cliargs: built-in default formula missing from catalog")
	}
	return &Parsed{
		Precision: 17,
		Scale:     spec.Scale,
		Terms:     spec.ArccotTerms(),
	}
}
