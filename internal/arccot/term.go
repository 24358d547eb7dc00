package arccot

import (
	"math/big"

	"github.com/pkg/errors"
)

// Term is one m*arccot(a) addend of the linear combination. Mult may be
// negative (see Evaluator's handling of signed multipliers); Arg must
// be at least 2 (Arg == 1 degenerates the per-row division into a
// no-op, which is rejected rather than handled) and its square must
// fit in one Limb.
type Term struct {
	Mult int64
	Arg  uint32
}

// seededTerm is the validated, immutable per-term state: the squared
// argument and the magnitude used to seed the quotient vector. Sign is
// tracked separately by which blockMachine a term was routed to.
type seededTerm struct {
	magnitude uint64 // |Mult|
	arg       Limb
	argSq     Limb
}

func (t Term) validate() error {
	if t.Arg < 2 {
		// arg == 1 makes argSq == 1, which degenerates the per-row
		// division in processBlock into a no-op: the seeded quotient
		// never decays to zero and countActive would report the term
		// as active forever. Reject rather than handle.
		return errors.Wrapf(ErrInvalidArg, "arg %d must be at least 2", t.Arg)
	}
	if uint64(t.Arg) > argMax {
		return errors.Wrapf(ErrInvalidArg, "arg %d exceeds 2^(%d/2)-1", t.Arg, LimbBits)
	}
	magnitude := t.Mult
	if magnitude < 0 {
		magnitude = -magnitude
	}
	if uint64(magnitude) > uint64(limbMax) {
		return errors.Wrapf(ErrInvalidMult, "multiplier %d exceeds one limb in magnitude", t.Mult)
	}
	return nil
}

// seed validates the term and checks that its scaled numerator
// m*a*d fits in a DoubleLimb (two limbs), treating overflow as an
// ordinary validation failure rather than a panic.
func (t Term) seed(d uint32) (seededTerm, uint64, error) {
	if err := t.validate(); err != nil {
		return seededTerm{}, 0, err
	}
	magnitude := uint64(t.Mult)
	if t.Mult < 0 {
		magnitude = uint64(-t.Mult)
	}
	x := new(big.Int).SetUint64(magnitude)
	x.Mul(x, new(big.Int).SetUint64(uint64(t.Arg)))
	x.Mul(x, new(big.Int).SetUint64(uint64(d)))
	if x.BitLen() > 2*LimbBits {
		return seededTerm{}, 0, errors.Wrapf(ErrSeedOverflow,
			"multiplier %d * arg %d * scale %d exceeds two limbs", t.Mult, t.Arg, d)
	}
	return seededTerm{
		magnitude: magnitude,
		arg:       t.Arg,
		argSq:     t.Arg * t.Arg,
	}, x.Uint64(), nil
}
