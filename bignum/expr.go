package bignum

import (
	"errors"
	"fmt"
	"math/big"
)

// maxProducts caps the number of summed limb products a single
// expression may carry, keeping the accumulated cross-product magnitude
// within the range the borrow-flag walk below is sized for.
const maxProducts = 64

// borrowShift is 2^246, the amount added to a limb position whose net
// positive-minus-negative value would otherwise be negative. rangeCap is
// 2^126, the bound every shifted limb must satisfy. limbBase is 2^120,
// this library's limb radix.
var (
	borrowShift = new(big.Int).Lsh(big.NewInt(1), 246)
	rangeCap    = new(big.Int).Lsh(big.NewInt(1), 126)
	limbBase    = new(big.Int).Lsh(big.NewInt(1), 120)
)

// EvaluateQuadraticExpression is the central engine: it constrains
//
//	sum_k (sum_j lhsProducts[k][j]) * (sum_j rhsProducts[k][j]) + sum_i linearTerms[i] = 0 (mod p)
//
// by computing the integer quotient q witnessing that identity and then
// validating the same borrow-flag zero-check a real circuit would
// constrain (the 2^246/2^126 borrow shift, the 126-bit range check on
// every shifted limb, and the direct zero-check on the final limb).
// There is no circuit here, so "constrain" means "check now and return
// an error if it does not hold" rather than emit a gate; an honest
// caller with a true relation never triggers any error.
//
// The unconstrained quotient itself is computed via plain big.Int
// arithmetic rather than by reproducing the positive/negative-WideVec
// bookkeeping for that step: the quotient computation has no soundness
// consequence (it is never reflected in a constraint, only its *result*
// is), so there is nothing to be gained by replicating a more complex
// equivalent computation. The borrow-flag walk below, which the
// zero-check actually depends on, is implemented limb-by-limb.
func EvaluateQuadraticExpression(lhsProducts, rhsProducts [][]BNExpression, linearTerms []BNExpression, p Params) (LimbVec, error) {
	if len(lhsProducts) != len(rhsProducts) {
		return nil, fmt.Errorf("bignum: EvaluateQuadraticExpression: %d lhs products but %d rhs products", len(lhsProducts), len(rhsProducts))
	}
	if len(lhsProducts) > maxProducts {
		return nil, fmt.Errorf("bignum: EvaluateQuadraticExpression: %d products exceeds the maximum of %d", len(lhsProducts), maxProducts)
	}

	n := p.N()
	l := 2*n - 1 // number of limb positions in an N-by-N product

	pos := NewWideVec(l)
	neg := NewWideVec(l)

	for k := range lhsProducts {
		lPos, lNeg := sumSplit(lhsProducts[k], n)
		rPos, rNeg := sumSplit(rhsProducts[k], n)

		ppProd, err := crossMultiplyChecked(lPos, rPos)
		if err != nil {
			return nil, err
		}
		nnProd, err := crossMultiplyChecked(lNeg, rNeg)
		if err != nil {
			return nil, err
		}
		pnProd, err := crossMultiplyChecked(lPos, rNeg)
		if err != nil {
			return nil, err
		}
		npProd, err := crossMultiplyChecked(lNeg, rPos)
		if err != nil {
			return nil, err
		}
		addWideInto(pos, ppProd)
		addWideInto(pos, nnProd)
		addWideInto(neg, pnProd)
		addWideInto(neg, npProd)
	}

	for _, term := range linearTerms {
		posLimb, negLimb := term.positiveNegativeRaw()
		addLimbInto(pos, posLimb)
		addLimbInto(neg, negLimb)
	}

	// Quotient: q = (sum(pos) - sum(neg)) / modulus, computed exactly in
	// big.Int.
	totalPos := BigIntFromLimbs(LimbVec(pos))
	totalNeg := BigIntFromLimbs(LimbVec(neg))
	total := new(big.Int).Sub(totalPos, totalNeg)

	modBig := BigIntFromLimbs(p.Modulus())
	q, rem := new(big.Int).DivMod(total, modBig, new(big.Int))
	if rem.Sign() != 0 {
		return nil, errors.New("bignum: EvaluateQuadraticExpression: invalid relation: claimed equality does not hold mod p")
	}
	if q.Sign() < 0 {
		return nil, errors.New("bignum: EvaluateQuadraticExpression: invalid relation: negative quotient (operands not properly reduced)")
	}
	if q.BitLen() > n*120 {
		return nil, errors.New("bignum: EvaluateQuadraticExpression: quotient overflow: exceeds N limbs")
	}
	quotient := LimbsFromBigInt(q, n)
	if err := validateQuotientInRange(quotient, p); err != nil {
		return nil, err
	}

	// Fold q*modulus into the negative accumulator and run the
	// borrow-flag zero-check over the full relation.
	qp, err := crossMultiplyChecked(quotient, p.Modulus())
	if err != nil {
		return nil, err
	}
	addWideInto(neg, qp)

	if err := verifyBorrowZeroCheck(pos, neg); err != nil {
		return nil, err
	}

	return quotient, nil
}

// sumSplit sums a list of BNExpression into (posSum, negSum), each an
// n-limb LimbVec: posSum accumulates every non-negative term's raw
// value, negSum accumulates every negative term's raw value. Neither sum
// is range-reduced; limbs may exceed 2^120.
func sumSplit(terms []BNExpression, n int) (pos, negv LimbVec) {
	pos = NewLimbVec(n)
	negv = NewLimbVec(n)
	for _, t := range terms {
		p, ng := t.positiveNegativeRaw()
		addLimbVecInto(pos, p)
		addLimbVecInto(negv, ng)
	}
	return pos, negv
}

// positiveNegativeRaw returns (value, 0) if e is positive, or (0, value)
// if e is negative — the plain sign split used to build the Pos/Neg
// accumulators (distinct from BNExpression.positiveNegativeSplit, which
// is the double_modulus-offset form; that form has no use here since the
// Pos/Neg accumulators tolerate genuinely negative intermediate
// differences via the borrow-flag walk).
func (e BNExpression) positiveNegativeRaw() (pos, negv LimbVec) {
	n := len(e.Value)
	if !e.Negative {
		return e.Value, NewLimbVec(n)
	}
	return NewLimbVec(n), e.Value
}

func addLimbVecInto(dst, src LimbVec) {
	for i := range dst {
		if i < len(src) {
			dst[i] = dst[i].Add(src[i])
		}
	}
}

func addLimbInto(dst WideVec, src LimbVec) {
	for i := range src {
		dst.AddAt(i, src[i])
	}
}

func addWideInto(dst, src WideVec) {
	for i := range src {
		if i < len(dst) {
			dst.AddAt(i, src[i])
		}
	}
}

// crossMultiplyChecked is crossMultiply with an explicit zero-length
// guard: an empty operand yields an empty WideVec. An all-zero operand
// of nonzero length goes through crossMultiply and yields zero limbs.
func crossMultiplyChecked(a, b LimbVec) (WideVec, error) {
	if len(a) == 0 || len(b) == 0 {
		return NewWideVec(0), nil
	}
	return crossMultiply(a, b), nil
}

// verifyBorrowZeroCheck walks pos/neg position by position, recording a
// borrow flag at each position and checking that the accumulated,
// borrow-adjusted value is exactly divisible by 2^120 (the
// "multiply by 2^-120, range-check < 2^126" step — here checked exactly,
// since there is no native field to probabilistically wrap into), with
// the quotient carried forward into the next position. The final
// position must equal exactly zero.
func verifyBorrowZeroCheck(pos, neg WideVec) error {
	l := len(pos)
	carry := new(big.Int)
	for i := 0; i < l; i++ {
		net := new(big.Int).Sub(pos[i].BigInt(), neg[i].BigInt())
		net.Add(net, carry)

		if i == l-1 {
			if net.Sign() != 0 {
				return fmt.Errorf("bignum: EvaluateQuadraticExpression: zero-check failed at final limb %d: got %s, want 0", i, net)
			}
			return nil
		}

		borrowed := false
		if net.Sign() < 0 {
			borrowed = true
			net.Add(net, borrowShift)
			if net.Sign() < 0 {
				return fmt.Errorf("bignum: EvaluateQuadraticExpression: borrow-flag overflow at limb %d: deficit exceeds 2^246", i)
			}
		}

		q120, r120 := new(big.Int), new(big.Int)
		q120.DivMod(net, limbBase, r120)
		if r120.Sign() != 0 {
			return fmt.Errorf("bignum: EvaluateQuadraticExpression: range/zero-check failure at limb %d: nonzero low 120 bits", i)
		}
		if q120.Cmp(rangeCap) >= 0 {
			return fmt.Errorf("bignum: EvaluateQuadraticExpression: range failure at limb %d: shifted value >= 2^126", i)
		}

		carry = q120
		if borrowed {
			carry = new(big.Int).Sub(carry, new(big.Int).Lsh(big.NewInt(1), 126))
		}
	}
	return nil
}
