package bignum

import (
	"math/big"
	"testing"
)

// randomLimbVec fills n limbs with deterministic pseudo-random-looking
// values under 2^120, derived from a simple counter so tests need no
// external randomness source.
func randomLimbVec(n int, seed int64) LimbVec {
	x := big.NewInt(seed)
	out := make(LimbVec, n)
	for i := range out {
		x.Mul(x, big.NewInt(6364136223846793005))
		x.Add(x, big.NewInt(1442695040888963407))
		limb := new(big.Int).Mod(x, new(big.Int).Lsh(big.NewInt(1), 120))
		out[i] = LimbsFromBigInt(limb, 1)[0]
	}
	return out
}

func TestMultiplicationKernelEquivalence(t *testing.T) {
	testCases := []struct {
		name string
		n    int
		fn   func(a, b LimbVec) (WideVec, error)
	}{
		{name: "karatsuba13", n: 13, fn: Karatsuba13},
		{name: "karatsuba17", n: 17, fn: Karatsuba17},
		{name: "karatsuba18", n: 18, fn: Karatsuba18},
		{name: "karatsuba26", n: 26, fn: Karatsuba26},
		{name: "karatsuba34", n: 34, fn: Karatsuba34},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := randomLimbVec(tc.n, 1)
			b := randomLimbVec(tc.n, 2)

			want, err := Schoolbook(a, b)
			if err != nil {
				t.Fatalf("Schoolbook: %v", err)
			}
			got, err := tc.fn(a, b)
			if err != nil {
				t.Fatalf("%s: %v", tc.name, err)
			}
			if !got.Equal(want) {
				t.Errorf("%s disagrees with Schoolbook:\n got  %s\n want %s", tc.name, got, want)
			}

			// Commutativity.
			gotCommuted, err := tc.fn(b, a)
			if err != nil {
				t.Fatalf("%s (commuted): %v", tc.name, err)
			}
			if !gotCommuted.Equal(got) {
				t.Errorf("%s is not commutative", tc.name)
			}
		})
	}
}

func TestSchoolbookOperandLengthMismatch(t *testing.T) {
	a := randomLimbVec(3, 1)
	b := randomLimbVec(4, 2)
	if _, err := Schoolbook(a, b); err == nil {
		t.Error("expected an error for mismatched operand lengths")
	}
}

func TestSchoolbookAgainstBigIntProduct(t *testing.T) {
	a := randomLimbVec(3, 11)
	b := randomLimbVec(3, 13)

	wide, err := Schoolbook(a, b)
	if err != nil {
		t.Fatalf("Schoolbook: %v", err)
	}
	got := BigIntFromLimbs(LimbVec(wide))
	want := new(big.Int).Mul(BigIntFromLimbs(a), BigIntFromLimbs(b))
	if got.Cmp(want) != 0 {
		t.Errorf("got %s, want %s", got, want)
	}
}
