package arccot

import (
	"errors"
	"strconv"
	"testing"
)

func TestTermValidate(t *testing.T) {
	td := []struct {
		term    Term
		wantErr error
	}{
		{Term{Mult: 1, Arg: 7}, nil},
		{Term{Mult: -239, Arg: 5}, nil},
		{Term{Mult: 1, Arg: 0}, ErrInvalidArg},
		{Term{Mult: 1, Arg: 1}, ErrInvalidArg},
		{Term{Mult: 1, Arg: 2}, nil},
		{Term{Mult: 1, Arg: argMax}, nil},
		{Term{Mult: 1, Arg: argMax + 1}, ErrInvalidArg},
		{Term{Mult: int64(limbMax) + 1, Arg: 7}, ErrInvalidMult},
		{Term{Mult: -(int64(limbMax) + 1), Arg: 7}, ErrInvalidMult},
	}
	for i, d := range td {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			err := d.term.validate()
			if d.wantErr == nil && err != nil {
				t.Fatalf("validate() = %v, want nil", err)
			}
			if d.wantErr != nil && !errors.Is(err, d.wantErr) {
				t.Fatalf("validate() = %v, want wrapping %v", err, d.wantErr)
			}
		})
	}
}

func TestTermSeed(t *testing.T) {
	term := Term{Mult: 5, Arg: 7}
	st, x, err := term.seed(4)
	if err != nil {
		t.Fatalf("seed() error = %v", err)
	}
	wantX := uint64(5 * 7 * 4)
	if x != wantX {
		t.Fatalf("seed() x = %d, want %d", x, wantX)
	}
	if st.magnitude != 5 {
		t.Fatalf("seed() magnitude = %d, want 5", st.magnitude)
	}
	if st.arg != 7 {
		t.Fatalf("seed() arg = %d, want 7", st.arg)
	}
	if st.argSq != 49 {
		t.Fatalf("seed() argSq = %d, want 49", st.argSq)
	}
}

func TestTermSeedNegativeMagnitude(t *testing.T) {
	term := Term{Mult: -1, Arg: 239}
	st, x, err := term.seed(4)
	if err != nil {
		t.Fatalf("seed() error = %v", err)
	}
	if st.magnitude != 1 {
		t.Fatalf("seed() magnitude = %d, want 1 (sign dropped)", st.magnitude)
	}
	if x != uint64(1*239*4) {
		t.Fatalf("seed() x = %d, want %d", x, uint64(1*239*4))
	}
}

func TestTermSeedOverflow(t *testing.T) {
	// magnitude * arg * d must exceed 2^64 to overflow two limbs.
	term := Term{Mult: int64(limbMax), Arg: argMax}
	_, _, err := term.seed(^uint32(0))
	if !errors.Is(err, ErrSeedOverflow) {
		t.Fatalf("seed() error = %v, want wrapping ErrSeedOverflow", err)
	}
}
