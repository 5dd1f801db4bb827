package bignum

import "fmt"

// Schoolbook is the reference O(N^2) multiplication kernel:
// res[i+j] += a[i]*b[j] for all i, j. a and b must have the same
// length N; the result is a WideVec of length 2N holding 2N-1 populated,
// unreduced limbs plus one trailing zero (so every kernel in this file
// returns the same shape regardless of N).
func Schoolbook(a, b LimbVec) (WideVec, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("bignum: Schoolbook: operand length mismatch (%d vs %d)", len(a), len(b))
	}
	n := len(a)
	res := NewWideVec(2 * n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			res.AddAt(i+j, a[i].Mul(b[j]))
		}
	}
	return res, nil
}

// splitHalves splits an N-limb vector into (lo, hi) halves: the hi half
// is ceil(N/2) limbs, the lo half is floor(N/2) limbs; both are returned
// padded to the same storage length L = ceil(N/2) so the three Karatsuba
// sub-products all operate on equal-length operands.
func splitHalves(v LimbVec) (lo, hi LimbVec, loLen int) {
	n := len(v)
	hiLen := (n + 1) / 2
	loLen = n / 2
	lo = make(LimbVec, hiLen)
	hi = make(LimbVec, hiLen)
	copy(lo[:loLen], v[:loLen])
	copy(hi, v[loLen:])
	return lo, hi, loLen
}

// karatsuba1 is the single-level Karatsuba variant (used at sizes 13,
// 17, 18): split into halves, compute r0 = lo*lo, r2 = hi*hi, r1 =
// (lo+hi)*(lo+hi) - r0 - r2 via three sub-products of the supplied
// multiplier, then superpose res[i] += r0[i], res[i+L] += r1[i],
// res[i+2L] += r2[i]. mulFn is the sub-product routine (Schoolbook for a
// single-level variant).
func karatsuba1(a, b LimbVec, mulFn func(LimbVec, LimbVec) (WideVec, error)) (WideVec, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("bignum: karatsuba1: operand length mismatch (%d vs %d)", len(a), len(b))
	}
	n := len(a)
	aLo, aHi, loLen := splitHalves(a)
	bLo, bHi, _ := splitHalves(b)
	l := len(aLo) // == ceil(n/2), the padded half-length

	aSum := make(LimbVec, l)
	bSum := make(LimbVec, l)
	for i := 0; i < l; i++ {
		aSum[i] = aLo[i].Add(aHi[i])
		bSum[i] = bLo[i].Add(bHi[i])
	}

	r0, err := mulFn(aLo, bLo)
	if err != nil {
		return nil, err
	}
	r2, err := mulFn(aHi, bHi)
	if err != nil {
		return nil, err
	}
	rSum, err := mulFn(aSum, bSum)
	if err != nil {
		return nil, err
	}
	r1 := rSum.Clone()
	for i := range r1 {
		r1.SubAt(i, r0[i])
		r1.SubAt(i, r2[i])
	}

	// Placement uses the true (unpadded) lo-half length L = loLen, not
	// the padded sub-product operand length l: L is where x^L actually
	// falls in the split V = lo + hi*x^L. r0/r1's trailing limbs beyond
	// 2*loLen are zero (they only arise from the zero-padding limb), so
	// the overlap with r1's/r2's region this creates when n is odd is
	// harmless — every placement is a plain addition into res.
	L := loLen
	res := NewWideVec(2 * n)
	for i := range r0 {
		res.AddAt(i, r0[i])
	}
	for i := range r1 {
		res.AddAt(i+L, r1[i])
	}
	for i := range r2 {
		res.AddAt(i+2*L, r2[i])
	}
	return res, nil
}

// karatsuba2 is the two-level Karatsuba variant (used at sizes 26, 34):
// identical structure to karatsuba1, but the three sub-products are
// themselves computed by the matching single-level Karatsuba routine.
func karatsuba2(a, b LimbVec, level1 func(LimbVec, LimbVec) (WideVec, error)) (WideVec, error) {
	return karatsuba1(a, b, level1)
}

// Karatsuba13 multiplies two 13-limb operands using single-level
// Karatsuba over Schoolbook sub-products.
func Karatsuba13(a, b LimbVec) (WideVec, error) { return fixedSizeKaratsuba1(a, b, 13) }

// Karatsuba17 multiplies two 17-limb operands using single-level
// Karatsuba over Schoolbook sub-products.
func Karatsuba17(a, b LimbVec) (WideVec, error) { return fixedSizeKaratsuba1(a, b, 17) }

// Karatsuba18 multiplies two 18-limb operands using single-level
// Karatsuba over Schoolbook sub-products.
func Karatsuba18(a, b LimbVec) (WideVec, error) { return fixedSizeKaratsuba1(a, b, 18) }

// Karatsuba26 multiplies two 26-limb operands using two-level Karatsuba
// (the three sub-products are themselves Karatsuba13).
func Karatsuba26(a, b LimbVec) (WideVec, error) { return fixedSizeKaratsuba2(a, b, 26, Karatsuba13) }

// Karatsuba34 multiplies two 34-limb operands using two-level Karatsuba
// (the three sub-products are themselves Karatsuba17).
func Karatsuba34(a, b LimbVec) (WideVec, error) { return fixedSizeKaratsuba2(a, b, 34, Karatsuba17) }

func fixedSizeKaratsuba1(a, b LimbVec, size int) (WideVec, error) {
	if len(a) != size || len(b) != size {
		return nil, fmt.Errorf("bignum: Karatsuba%d: expected %d-limb operands, got %d and %d", size, size, len(a), len(b))
	}
	return karatsuba1(a, b, Schoolbook)
}

func fixedSizeKaratsuba2(a, b LimbVec, size int, level1 func(LimbVec, LimbVec) (WideVec, error)) (WideVec, error) {
	if len(a) != size || len(b) != size {
		return nil, fmt.Errorf("bignum: Karatsuba%d: expected %d-limb operands, got %d and %d", size, size, len(a), len(b))
	}
	return karatsuba2(a, b, level1)
}
