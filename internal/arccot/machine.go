package arccot

// remainderBlock holds, for one column of the block grid, the per-row
// long-division remainders that must carry over to the next
// blockWidth-limb output slab: (N+1) limbs per row (N term carries
// plus one odd-divisor carry). argCount is the number of terms still
// active the last time this block was processed; it only ever grows,
// since a later column may reactivate a term that had decayed by an
// earlier one.
type remainderBlock struct {
	argCount   int
	remainders []Limb
}

// blockMachine runs the blocked series evaluator for one group of
// terms whose multipliers share a sign: all magnitudes are seeded as
// non-negative, so the running partial sum in acc never goes
// negative, which is the precondition the unsigned long division in
// processBlock relies on.
type blockMachine struct {
	terms []seededTerm
	h, w  uint // block height (series rows) and width (output limbs)
	acc   *Accumulator

	q []Limb // quotient vector Q: row-major [w][len(terms)]

	remCols            []remainderBlock
	blockDigitOffset   uint
	blockDivisorOffset uint64
}

// newBlockMachine allocates the accumulator and quotient vector and
// seeds Q: for term i, x = magnitude*arg*d is placed with its low limb
// at Q[w-1][i] and high limb at Q[w-2][i].
func newBlockMachine(terms []seededTerm, seeds []uint64, precision, h, w uint) *blockMachine {
	fractional := ceilToMultiple(precision, w)
	l := fractional + w
	n := uint(len(terms))

	m := &blockMachine{
		terms:              terms,
		h:                  h,
		w:                  w,
		acc:                newAccumulator(l, w),
		q:                  make([]Limb, w*n),
		blockDivisorOffset: 1,
	}
	for i, x := range seeds {
		m.q[(w-1)*n+uint(i)] = Limb(x)
		m.q[(w-2)*n+uint(i)] = Limb(x >> LimbBits)
	}
	return m
}

func ceilToMultiple(n, m uint) uint {
	if n%m == 0 {
		return n
	}
	return (n/m + 1) * m
}

// countActive scans the quotient vector from the lowest-indexed term
// upward and returns N minus the index of the first term whose column
// still holds a non-zero limb anywhere in the w output slots. Terms
// below that index have fully decayed and are skipped on future
// passes.
func (m *blockMachine) countActive() int {
	n := uint(len(m.terms))
	for argi := uint(0); argi < n; argi++ {
		for row := uint(0); row < m.w; row++ {
			if m.q[row*n+argi] != 0 {
				return int(n - argi)
			}
		}
	}
	return 0
}

// processBlock is the heart of the evaluator. For each of the w
// output-limb slots, it walks the h series rows stored in block,
// dividing each active term's running dividend by its a^2, summing the
// per-term quotients, dividing that sum by the row's odd divisor, and
// folding the (alternating-sign) result into the accumulator at the
// current digit offset.
func (m *blockMachine) processBlock(block *remainderBlock) {
	n := uint(len(m.terms))
	digitOffset := m.blockDigitOffset

	for slot := uint(0); slot < m.w; slot++ {
		addition := true
		divisor := m.blockDivisorOffset
		var delta int64

		for row := uint(0); row < m.h; row++ {
			rowBase := row * (n + 1)
			var sum uint64

			for i := n - uint(block.argCount); i < n; i++ {
				rem := block.remainders[rowBase+i]
				dividend := (uint64(rem) << LimbBits) + uint64(m.q[slot*n+i])
				argSq := uint64(m.terms[i].argSq)
				q := Limb(dividend / argSq)
				r := Limb(dividend % argSq)
				m.q[slot*n+i] = q
				block.remainders[rowBase+i] = r
				sum += uint64(q)
			}

			divIdx := rowBase + n
			sum += uint64(block.remainders[divIdx]) << LimbBits
			quot := sum / divisor
			block.remainders[divIdx] = Limb(sum % divisor)

			if addition {
				delta += int64(quot)
			} else {
				delta -= int64(quot)
			}
			addition = !addition
			divisor += 2
		}

		m.acc.Add(delta, digitOffset)
		digitOffset++
	}

	m.blockDivisorOffset += 2 * uint64(m.h)
}

// run drives the outer/inner loop to completion, filling acc's
// fractional region with the series sum to full precision.
func (m *blockMachine) run() {
	n := uint(len(m.terms))
	l := m.acc.Len()

	for m.blockDigitOffset < l {
		nextArgCount := int(n)
		columnIndex := 0
		m.blockDivisorOffset = 1

		for {
			if uint(len(m.remCols)) <= uint(columnIndex) {
				m.remCols = append(m.remCols, remainderBlock{
					argCount:   nextArgCount,
					remainders: make([]Limb, (n+1)*m.h),
				})
			}
			col := &m.remCols[columnIndex]
			if nextArgCount > col.argCount {
				col.argCount = nextArgCount
			}
			m.processBlock(col)
			nextArgCount = m.countActive()
			columnIndex++
			if uint(len(m.remCols)) <= uint(columnIndex) && nextArgCount == 0 {
				break
			}
		}
		m.blockDigitOffset += m.w
	}
}
