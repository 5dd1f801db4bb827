package bignum

import "bignum.mleku.dev/nativefield"

// crossMultiply is the general (possibly-unequal-length) schoolbook
// cross product res[i+j] += a[i]*b[j], used internally by Reduce where
// the two operands are not both N limbs (e.g. a 2N-limb value times an
// N-limb redc_param).
func crossMultiply(a, b []nativefield.Element) WideVec {
	res := NewWideVec(len(a) + len(b))
	for i := range a {
		for j := range b {
			res.AddAt(i+j, a[i].Mul(b[j]))
		}
	}
	return res
}

// resize returns a copy of v truncated or zero-padded to exactly n
// elements.
func resize(v []nativefield.Element, n int) []nativefield.Element {
	out := make([]nativefield.Element, n)
	copy(out, v)
	return out
}

// Reduce performs Barrett reduction: given x as an unreduced WideVec
// (length 2N, each limb possibly exceeding 2^120) and the
// modulus/redc_param/k from Params, returns (quotient, remainder) as
// N-limb LimbVecs such that x = quotient*modulus + remainder, 0 <=
// remainder < modulus.
func Reduce(x WideVec, modulus, redcParam LimbVec, k int) (quotient, remainder LimbVec, err error) {
	n := len(modulus)

	// 0. Normalize x to 120-bit limbs so the products below stay inside
	// the native field.
	x, err = Normalize(x)
	if err != nil {
		return nil, nil, err
	}

	// 1. m = x * redc_param, into a length-3N container.
	m := crossMultiply(x, redcParam)
	m = resize(m, 3*n)

	// 2. Normalize m to 120-bit limbs.
	m, err = Normalize(m)
	if err != nil {
		return nil, nil, err
	}

	// 3. View m as 60-bit limbs and shift right by 2k bits to obtain the
	// partial quotient.
	mU60 := FromWideVec(m)
	qU60 := mU60.Shr(2 * k)

	// 4. Convert the partial quotient back to a WideVec<N,2> (2N limbs);
	// its true magnitude fits comfortably within N limbs, so the high
	// half is expected to be zero.
	qWide := resize(qU60.ToWideVec(), 2*n)

	// 5. qp = partial_quotient * modulus, normalized; only the low N
	// limbs of the partial quotient are load-bearing.
	qp := crossMultiply(qWide[:n], modulus)
	qp = resize(qp, 2*n)
	qp, err = Normalize(qp)
	if err != nil {
		return nil, nil, err
	}

	// 6. r = x - qp via U60Repr subtraction; correct by at most one more
	// subtraction of modulus.
	xWide := resize(x, 2*n)
	xU60 := FromWideVec(xWide)
	qpU60 := FromWideVec(qp)
	rU60 := xU60.Sub(qpU60)
	rWide := resize(rU60.ToWideVec(), n)

	modU60 := FromLimbVec(modulus)
	rTrimU60 := FromLimbVec(rWide)

	quotientLimbs := resize(qWide[:n], n)

	if rTrimU60.Gte(modU60) {
		rTrimU60 = rTrimU60.Sub(modU60)
		quotientLimbs = incrementLimbVec(quotientLimbs)
	}

	return quotientLimbs, rTrimU60.ToLimbVec(), nil
}

// incrementLimbVec returns v + 1, propagating a carry across limbs (used
// to correct the Barrett partial quotient by the at-most-one final
// adjustment above).
func incrementLimbVec(v LimbVec) LimbVec {
	u := FromLimbVec(v)
	u.Increment()
	return u.ToLimbVec()
}
