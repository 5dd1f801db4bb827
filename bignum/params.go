package bignum

import (
	"math/big"

	"bignum.mleku.dev/nativefield"
)

// Params is the compile-time bundle every modulus supplies. Go has no
// way to make these compile-time constants the way a const-generic trait
// implementation would be, so Params is an ordinary interface implemented
// by a value built once (typically at package init) by a parameter-set
// package such as emparams.
type Params interface {
	// N is the limb count: ceil((ModulusBits()+1)/120), and at most 64.
	N() int
	// Modulus returns a range-valid N-limb copy of the modulus p.
	Modulus() LimbVec
	// DoubleModulus returns a range-valid N-limb copy of 2p.
	DoubleModulus() LimbVec
	// RedcParam returns floor(2^(2K)/p) as an N-limb copy.
	RedcParam() LimbVec
	// K is the Barrett precision parameter (see DESIGN.md's Open
	// Question 1 decision: K() == ModulusBits()).
	K() int
	// ModulusBits is the bit length of p.
	ModulusBits() int
	// Mult multiplies two N-limb operands using whichever kernel this
	// parameter set advertises as its preferred routine; correctness is
	// identical to schoolbook for every choice.
	Mult(a, b LimbVec) (WideVec, error)
}

// MinLimbs returns ceil((modulusBits+1)/120), the minimum N a Params
// needs so that 2p still fits in N limbs.
func MinLimbs(modulusBits int) int {
	return (modulusBits + 1 + 119) / 120
}

// LimbsFromBigInt decomposes x (x >= 0) into n limbs of 120 bits each,
// least-significant first. emparams uses it at init time instead of
// hand-typing 120-bit limb literals for 2048-bit constants, which is
// exactly the kind of manual arithmetic that is easy to get silently
// wrong.
func LimbsFromBigInt(x *big.Int, n int) LimbVec {
	out := make(LimbVec, n)
	rem := new(big.Int).Set(x)
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 120), big.NewInt(1))
	for i := 0; i < n; i++ {
		limb := new(big.Int).And(rem, mask)
		out[i] = nativefield.FromBigInt(limb)
		rem.Rsh(rem, 120)
	}
	return out
}

// BigIntFromLimbs recomposes a LimbVec's integer value (limbs are assumed
// < 2^120; this is the inverse of LimbsFromBigInt and is used by tests,
// InvMod, EvaluateQuadraticExpression and LimbsToBytesBE).
func BigIntFromLimbs(v LimbVec) *big.Int {
	out := new(big.Int)
	for i := len(v) - 1; i >= 0; i-- {
		out.Lsh(out, 120)
		out.Add(out, v[i].BigInt())
	}
	return out
}
