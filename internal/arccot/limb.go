package arccot

import "math/bits"

// LimbBits is the width B, in bits, of one machine-word limb. The
// evaluator is hard-coded to 32-bit limbs: this is what keeps a[i]^2
// inside one DoubleLimb multiplication/division step, which is the
// precondition the whole scheme relies on.
const LimbBits = 32

// Limb is one unsigned machine word of the big fixed-point accumulator.
type Limb = uint32

// DoubleLimb is an unsigned integer at least twice as wide as Limb, used
// for intermediate multiplications and divisions.
type DoubleLimb = uint64

// digitsPerLimb is floor(log10(2^LimbBits)): the number of decimal
// digits that are always safely representable in one Limb, used by
// FractionalDigits' multiply-and-carry extraction.
const digitsPerLimb = 9

// pow10D is 10^digitsPerLimb.
const pow10D = 1_000_000_000

// argMax is the largest accepted term argument: 2^(LimbBits/2) - 1, the
// boundary at which a[i]^2 still fits in one Limb.
const argMax = (1 << (LimbBits / 2)) - 1

// limbMax is the largest value a single Limb can hold.
const limbMax = 1<<LimbBits - 1

// Accumulator is a big fixed-point unsigned number: an ordered
// sequence of limbs, most significant first. The first intWidth limbs
// hold the integer portion (plus guard digits); the remainder holds
// the fractional portion. The zero value is not usable; construct
// with newAccumulator.
type Accumulator struct {
	limbs    []Limb
	intWidth uint
}

func newAccumulator(total, intWidth uint) *Accumulator {
	return &Accumulator{limbs: make([]Limb, total), intWidth: intWidth}
}

// Len returns the total number of limbs held by the accumulator.
func (a *Accumulator) Len() uint { return uint(len(a.limbs)) }

// Add adds the signed delta to the two-limb window ending at offset
// (offset is the less significant limb of the pair spanning
// [offset-1, offset]), propagating carry or borrow toward lower
// (more significant) indices. The accumulator must never need to
// underflow past index 0: for the class of Machin-like sums this
// package evaluates, running partial sums stay non-negative even
// though individual deltas alternate in sign.
func (a *Accumulator) Add(delta int64, offset uint) {
	if delta < 0 {
		a.borrow(uint64(-delta), offset)
		return
	}
	a.carry(uint64(delta), offset)
}

func (a *Accumulator) carry(d uint64, offset uint) {
	for d != 0 {
		d += uint64(a.limbs[offset])
		a.limbs[offset] = Limb(d)
		d >>= LimbBits
		offset--
	}
}

// borrow subtracts d (which may span more than one limb) from the
// accumulator starting at offset, walking toward more significant
// limbs while the remaining borrow exceeds what the current limb
// holds. This mirrors the original's virtual-borrow identity
// (2^B + limb) - d_low, and keeps the same load-bearing invariant: the
// post-borrow high half must be exactly zero.
func (a *Accumulator) borrow(d uint64, offset uint) {
	const borrowUnit = uint64(1) << LimbBits
	for d > uint64(a.limbs[offset]) {
		dLow := Limb(d)
		d >>= LimbBits
		if dLow > a.limbs[offset] {
			temp := (borrowUnit + uint64(a.limbs[offset])) - uint64(dLow)
			if temp>>LimbBits != 0 {
				panic("arccot: borrow normalization invariant violated")
			}
			a.limbs[offset] = Limb(temp)
			d++
		} else {
			a.limbs[offset] -= dLow
		}
		offset--
	}
	a.limbs[offset] -= Limb(d)
}

// IntegerDigits repeatedly divides the integer region (the first
// intWidth limbs) by 10, collecting remainders least-significant digit
// first, until that region is entirely zero. It mutates the integer
// region in place (leaving it zeroed) and must be called before
// FractionalDigits, which reuses the last integer limb as a scratch
// overflow cell and relies on the integer region having been drained
// to zero first.
//
// Returns the digits most-significant first; "0" if the integer part
// is zero.
func (a *Accumulator) IntegerDigits() []byte {
	w := a.intWidth
	firstNonZero := uint(0)
	for firstNonZero < w && a.limbs[firstNonZero] == 0 {
		firstNonZero++
	}
	if firstNonZero == w {
		return []byte{'0'}
	}
	var digits []byte
	for firstNonZero < w {
		var n uint64
		for i := uint(0); i < w; i++ {
			n += uint64(a.limbs[i])
			a.limbs[i] = Limb(n / 10)
			n %= 10
			n <<= LimbBits
		}
		digits = append(digits, '0'+byte(n>>LimbBits))
		for firstNonZero < w && a.limbs[firstNonZero] == 0 {
			firstNonZero++
		}
	}
	reverseBytes(digits)
	return digits
}

// FractionalDigits extracts up to maxDigits decimal digits of the
// fractional region by repeatedly multiplying the fractional limbs by
// 10^digitsPerLimb and reading off the digits that spill into the
// integer/fraction boundary cell (limb intWidth-1), which is zeroed
// after each pass. It stops early once the fractional region is
// entirely zero. IntegerDigits must have been called first so that the
// boundary cell starts at zero.
func (a *Accumulator) FractionalDigits(maxDigits int) []byte {
	w := a.intWidth
	last := uint(len(a.limbs)) - 1
	firstNonZero := last
	for firstNonZero > 0 && a.limbs[firstNonZero] == 0 {
		firstNonZero--
	}
	var digits []byte
	for firstNonZero > 0 && len(digits) < maxDigits {
		var carry uint64
		for i := firstNonZero; ; i-- {
			carry += uint64(a.limbs[i]) * pow10D
			a.limbs[i] = Limb(carry)
			carry >>= LimbBits
			if i == w-1 {
				break
			}
		}
		p := uint64(pow10D / 10)
		for i := 0; i < digitsPerLimb; i++ {
			digits = append(digits, '0'+byte(uint64(a.limbs[w-1])/p))
			a.limbs[w-1] = Limb(uint64(a.limbs[w-1]) % p)
			p /= 10
		}
		a.limbs[w-1] = 0
		for firstNonZero > 0 && a.limbs[firstNonZero] == 0 {
			firstNonZero--
		}
	}
	if len(digits) > maxDigits {
		digits = digits[:maxDigits]
	}
	return digits
}

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// subtractInPlace computes dst -= src across the full limb arrays
// (most significant first), used to combine the non-negative- and
// negative-multiplier accumulators of a signed-multiplier Evaluator.
// Panics if src > dst, which would indicate the supplied formula does
// not actually evaluate to a non-negative constant.
func subtractInPlace(dst, src []Limb) {
	if len(dst) != len(src) {
		panic("arccot: accumulator length mismatch")
	}
	var borrowOut uint32
	for i := len(dst) - 1; i >= 0; i-- {
		diff, b := bits.Sub32(dst[i], src[i], borrowOut)
		dst[i] = diff
		borrowOut = b
	}
	if borrowOut != 0 {
		panic("arccot: combined negative-multiplier result exceeds non-negative total")
	}
}
