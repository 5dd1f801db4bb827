package bignum

import (
	"errors"
	"fmt"
	"math/big"

	"bignum.mleku.dev/hostcircuit"
	"bignum.mleku.dev/nativefield"
)

// new2Pow returns 2^n as a fresh *big.Int.
func new2Pow(n int) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(n))
}

// topLimbBound returns the bit width the top limb of a range-valid
// N-limb value must satisfy: modulus_bits - 120*(N-1), substituting 120
// when that would otherwise be zero — a modulus_bits that is an exact
// multiple of 120 leaves no extra bits in the top limb, so the top limb
// is a full 120-bit limb like any other.
func topLimbBound(p Params) int {
	b := p.ModulusBits() - 120*(p.N()-1)
	if b <= 0 {
		return 120
	}
	return b
}

// ValidateInRange checks that every limb of x is < 2^120 and the top
// limb is < 2^topLimbBound(p).
func ValidateInRange(x LimbVec, p Params) error {
	return validateLimbBounds(x, p, topLimbBound(p))
}

// validateQuotientInRange is ValidateQuotientInRange's internal form,
// used directly by EvaluateQuadraticExpression.
func validateQuotientInRange(x LimbVec, p Params) error {
	return validateLimbBounds(x, p, topLimbBound(p)+6)
}

// ValidateQuotientInRange is ValidateInRange but with the top limb
// allowed 6 extra bits of headroom, matching the 64-product cap enforced
// in EvaluateQuadraticExpression.
func ValidateQuotientInRange(x LimbVec, p Params) error {
	return validateQuotientInRange(x, p)
}

// validateLimbBounds delegates the actual per-limb bound check to
// hostcircuit.AssertMaxBitSize: on a real backend this is the point where
// PublicOps would hand a limb to the host proof system's range-check
// primitive, so this package calls that same entry point rather than
// re-deriving the comparison inline.
func validateLimbBounds(x LimbVec, p Params, topBound int) error {
	n := p.N()
	if len(x) != n {
		return fmt.Errorf("bignum: range check: expected %d limbs, got %d", n, len(x))
	}
	for i, limb := range x {
		bound := 120
		if i == n-1 {
			bound = topBound
		}
		if err := hostcircuit.AssertMaxBitSize(limb, bound); err != nil {
			return fmt.Errorf("bignum: range failure: limb %d: %w", i, err)
		}
	}
	return nil
}

// ValidateInField computes modulus - x with U60Repr borrow propagation
// and asserts the result is range-valid, which together with
// ValidateInRange(x) proves 0 <= x < p.
func ValidateInField(x LimbVec, p Params) error {
	if err := ValidateInRange(x, p); err != nil {
		return err
	}
	n := p.N()
	modU60 := truncateU60(FromLimbVec(p.Modulus()), 2*n)
	xU60 := truncateU60(FromLimbVec(x), 2*n)
	if xU60.Gte(modU60) {
		return errors.New("bignum: field-membership failure: x >= modulus")
	}
	diff := modU60.Sub(xU60).ToLimbVec()
	if err := ValidateInRange(diff, p); err != nil {
		return fmt.Errorf("bignum: field-membership failure: modulus - x is not range-valid: %w", err)
	}
	return nil
}

// AssertIsNotEqual evaluates a and b's limb sequences as degree-(N-1)
// polynomials at x = 2^120 in the native field and asserts
// (L-R)*(L-R+M)*(L-R-M) != 0, where M
// is the modulus evaluated the same way. The product is zero when a and
// b are equal, or when one of them equals the other plus the modulus, so
// all three ways of writing the same residue mod p are rejected.
func AssertIsNotEqual(a, b LimbVec, p Params) error {
	l := evalAtBase120(a)
	r := evalAtBase120(b)
	m := evalAtBase120(p.Modulus())

	diff := l.Sub(r)
	t1 := diff
	t2 := diff.Add(m)
	t3 := diff.Sub(m)

	product := t1.Mul(t2).Mul(t3)
	if product.IsZero() {
		return errors.New("bignum: equality/inequality failure: assert_is_not_equal found a == b")
	}
	return nil
}

// evalAtBase120 evaluates v's limbs as a polynomial at x = 2^120 in the
// native field: sum_i v[i] * (2^120)^i.
func evalAtBase120(v LimbVec) nativefield.Element {
	base := nativefield.FromBigInt(new2Pow(120))
	acc := nativefield.Zero
	for i := len(v) - 1; i >= 0; i-- {
		acc = acc.Mul(base).Add(v[i])
	}
	return acc
}

// ConditionalSelect returns a if pred == 1, b if pred == 0, via a
// limbwise linear blend b + pred*(a-b). pred must be 0 or 1; any other
// value yields an unspecified blend.
func ConditionalSelect(a, b LimbVec, pred nativefield.Element) (LimbVec, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("bignum: ConditionalSelect: length mismatch (%d vs %d)", len(a), len(b))
	}
	out := make(LimbVec, len(a))
	for i := range a {
		out[i] = b[i].Add(pred.Mul(a[i].Sub(b[i])))
	}
	return out, nil
}

// LimbsFromBytesBE decomposes a big-endian byte string into an N-limb
// LimbVec, with a range check on the most significant byte so the
// result is range-valid. BigInt's FromBytesBE wraps this for callers
// that want a BigInt back.
func LimbsFromBytesBE(data []byte, p Params) (LimbVec, error) {
	n := p.N()
	maxBytes := (n*120 + 7) / 8
	if len(data) > maxBytes {
		return nil, fmt.Errorf("bignum: FromBytesBE: %d bytes exceeds the %d-limb capacity", len(data), n)
	}
	padded := make([]byte, maxBytes)
	copy(padded[maxBytes-len(data):], data)

	x := new(big.Int).SetBytes(padded)
	limbs := LimbsFromBigInt(x, n)
	if err := ValidateInRange(limbs, p); err != nil {
		return nil, err
	}
	return limbs, nil
}

// LimbsToBytesBE is LimbsFromBytesBE's inverse: it packs x's limbs back
// into a fixed-width big-endian byte string of length (N*120+7)/8, the
// same width LimbsFromBytesBE accepts. BigInt's ToBytesBE wraps this for
// callers that want to serialize a BigInt directly.
func LimbsToBytesBE(x LimbVec, p Params) ([]byte, error) {
	n := p.N()
	if len(x) != n {
		return nil, fmt.Errorf("bignum: ToBytesBE: expected %d limbs, got %d", n, len(x))
	}
	if err := ValidateInRange(x, p); err != nil {
		return nil, err
	}
	maxBytes := (n*120 + 7) / 8
	v := BigIntFromLimbs(x)
	out := make([]byte, maxBytes)
	v.FillBytes(out)
	return out, nil
}
