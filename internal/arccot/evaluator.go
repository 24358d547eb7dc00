package arccot

import "github.com/pkg/errors"

// DefaultBlockHeight and DefaultBlockWidth are the H x W block
// dimensions: a performance knob, not a correctness one, beyond the
// constraint that H must stay even (see ErrOddBlockHeight).
const (
	DefaultBlockHeight = 64
	DefaultBlockWidth  = 64
)

// Evaluator owns the entire mutable state of one computation: the
// accumulator(s), quotient vector(s), and remainder column(s). Nothing
// survives outside its lifetime; there is no global mutable state.
type Evaluator struct {
	precision uint
	d         uint32
	h, w      uint

	pos *blockMachine
	neg *blockMachine // nil if every term has a non-negative multiplier

	ran bool
}

// Option configures a non-default block geometry. Most callers should
// not need one: see DefaultBlockHeight/DefaultBlockWidth.
type Option func(*evalConfig)

type evalConfig struct {
	h, w uint
}

// WithBlockSize overrides the H x W block geometry. h must be at least
// 1 and even, and w must be at least 2.
func WithBlockSize(h, w uint) Option {
	return func(c *evalConfig) {
		c.h, c.w = h, w
	}
}

// New constructs an Evaluator for d * sum(m[i]*arccot(a[i])), with
// precision limbs of fractional precision. It validates every term at
// construction time, not during Run, and pre-seeds the quotient
// vector(s).
func New(precision uint, d uint32, terms []Term, opts ...Option) (*Evaluator, error) {
	if precision < 1 {
		return nil, ErrInvalidPrecision
	}
	if d == 0 {
		return nil, ErrInvalidScale
	}
	if len(terms) == 0 {
		return nil, ErrNoTerms
	}

	cfg := evalConfig{h: DefaultBlockHeight, w: DefaultBlockWidth}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.h < 1 || cfg.w < 2 {
		return nil, ErrInvalidBlockSize
	}
	if cfg.h%2 != 0 {
		return nil, ErrOddBlockHeight
	}

	var posTerms, negTerms []seededTerm
	var posSeeds, negSeeds []uint64
	for _, t := range terms {
		st, x, err := t.seed(d)
		if err != nil {
			return nil, err
		}
		if t.Mult < 0 {
			negTerms = append(negTerms, st)
			negSeeds = append(negSeeds, x)
		} else {
			posTerms = append(posTerms, st)
			posSeeds = append(posSeeds, x)
		}
	}

	e := &Evaluator{precision: precision, d: d, h: cfg.h, w: cfg.w}
	if len(posTerms) > 0 {
		e.pos = newBlockMachine(posTerms, posSeeds, precision, cfg.h, cfg.w)
	} else {
		// Degenerate but valid: an all-negative formula still needs a
		// zero-valued positive accumulator to subtract from.
		e.pos = newBlockMachine(nil, nil, precision, cfg.h, cfg.w)
	}
	if len(negTerms) > 0 {
		e.neg = newBlockMachine(negTerms, negSeeds, precision, cfg.h, cfg.w)
	}
	return e, nil
}

// Run performs the computation: the blocked evaluator for each
// multiplier-sign group, followed (if there were negative multipliers)
// by a single whole-accumulator subtraction combining the two groups.
// It is CPU-bound, single-threaded, and cannot be cancelled — there is
// deliberately no context.Context here. Run may only be called once.
func (e *Evaluator) Run() error {
	if e.ran {
		return ErrAlreadyRun
	}
	e.pos.run()
	if e.neg != nil {
		e.neg.run()
		subtractInPlace(e.pos.acc.limbs, e.neg.acc.limbs)
	}
	e.ran = true
	return nil
}

// IntegerPart renders the truncated integer part of the result as
// decimal digits ("0" if zero). It destructively drains the
// accumulator's integer region and must be called before
// FractionalPart.
func (e *Evaluator) IntegerPart() (string, error) {
	if !e.ran {
		return "", ErrNotRun
	}
	return string(e.pos.acc.IntegerDigits()), nil
}

// FractionalPart renders up to (L-W)*digitsPerLimb-2 truncated decimal
// digits of the fractional part, or "" if the fractional part is
// entirely zero. IntegerPart must have been called first.
func (e *Evaluator) FractionalPart() (string, error) {
	if !e.ran {
		return "", ErrNotRun
	}
	budget := fractionalDigitBudget(e.pos.acc.Len(), e.w)
	return string(e.pos.acc.FractionalDigits(budget)), nil
}

func fractionalDigitBudget(totalLimbs, intWidth uint) int {
	budget := int((totalLimbs-intWidth)*digitsPerLimb) - 2
	if budget < 0 {
		budget = 0
	}
	return budget
}

// String renders "I.FFFF..." (or just "I" if the fractional part is
// entirely zero). Run must have completed.
func (e *Evaluator) String() string {
	if !e.ran {
		panic(errors.Wrap(ErrNotRun, "Evaluator.String"))
	}
	intPart, _ := e.IntegerPart()
	fracPart, _ := e.FractionalPart()
	if fracPart == "" {
		return intPart
	}
	return intPart + "." + fracPart
}
