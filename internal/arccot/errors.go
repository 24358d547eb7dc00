package arccot

import "github.com/pkg/errors"

// Sentinel errors for invalid construction arguments and arithmetic
// overflow. Wrap with errors.Wrapf for context and compare with
// errors.Is (github.com/pkg/errors preserves Unwrap, so stdlib
// errors.Is works against these).
var (
	// ErrNoTerms is returned when the term list is empty.
	ErrNoTerms = errors.New("arccot: at least one term is required")
	// ErrInvalidArg is returned when a term's argument is less than 2
	// (see the degenerate-division note on Term) or exceeds the
	// half-word boundary.
	ErrInvalidArg = errors.New("arccot: term argument out of range")
	// ErrInvalidMult is returned when a term's multiplier magnitude
	// does not fit in one limb.
	ErrInvalidMult = errors.New("arccot: term multiplier out of range")
	// ErrInvalidScale is returned when the scale factor d is not a
	// positive integer.
	ErrInvalidScale = errors.New("arccot: scale factor d must be positive")
	// ErrInvalidPrecision is returned when the requested precision is
	// less than one limb.
	ErrInvalidPrecision = errors.New("arccot: precision must be at least one limb")
	// ErrSeedOverflow is returned when m*a*d does not fit in two
	// limbs (a DoubleLimb), the precondition for seeding the quotient
	// vector.
	ErrSeedOverflow = errors.New("arccot: multiplier*argument*scale exceeds two limbs")
	// ErrInvalidBlockSize is returned by options that would set a zero
	// block height or a block width below 2: a zero height leaves no
	// series rows to process, so quotients never decay, and the width
	// is a divisor in ceilToMultiple and must hold the two-limb seed
	// (rows w-2 and w-1 of the quotient vector). These are ordinary bad
	// arguments, not internal invariant violations.
	ErrInvalidBlockSize = errors.New("arccot: block height must be at least 1 and block width at least 2")
	// ErrOddBlockHeight is returned by options that would set an odd
	// block height: the per-column alternating-sign reset is only
	// correct for an even H.
	ErrOddBlockHeight = errors.New("arccot: block height must be even")
	// ErrAlreadyRun is returned by Run when called more than once on
	// the same Evaluator.
	ErrAlreadyRun = errors.New("arccot: evaluator has already run")
	// ErrNotRun is returned by the digit accessors before Run has
	// completed.
	ErrNotRun = errors.New("arccot: evaluator has not been run yet")
)
