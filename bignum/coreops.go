package bignum

import (
	"errors"
	"math/big"

	"github.com/minio/sha256-simd"

	"bignum.mleku.dev/nativefield"
)

// truncateU60 returns u resized to exactly n 60-bit limbs (truncating or
// zero-padding), used after an Add/ToWideVec step that may have produced
// one extra limb of headroom.
func truncateU60(u U60Repr, n int) U60Repr {
	out := make(U60Repr, n)
	copy(out, u)
	return out
}

// AddMod is the unconstrained addmod helper: adds a and b in U60Repr and,
// if the sum is >= modulus, subtracts modulus once. Assumes a, b are
// range-valid (< 2^ModulusBits()); the result may be >= modulus if the
// addends were not fully reduced — callers that need a field-valid
// result must apply ValidateInField separately.
func AddMod(a, b LimbVec, p Params) LimbVec {
	n := p.N()
	sum := truncateU60(FromLimbVec(a).Add(FromLimbVec(b)), 2*n)
	modU60 := FromLimbVec(p.Modulus())
	if sum.Gte(modU60) {
		sum = sum.Sub(modU60)
	}
	return sum.ToLimbVec()
}

// Negate is the unconstrained negate helper: returns 2*modulus - a in
// U60Repr, using DoubleModulus so the subtraction never underflows even
// if a is itself as large as (but not exceeding) 2*modulus.
func Negate(a LimbVec, p Params) LimbVec {
	n := p.N()
	dm := truncateU60(FromLimbVec(p.DoubleModulus()), 2*n)
	av := truncateU60(FromLimbVec(a), 2*n)
	return dm.Sub(av).ToLimbVec()
}

// SubMod is addmod(a, negate(b)).
func SubMod(a, b LimbVec, p Params) LimbVec {
	return AddMod(a, Negate(b, p), p)
}

// MulMod is the unconstrained mulmod helper: schoolbook/Karatsuba
// multiply into a WideVec, normalize, Barrett-reduce, and return the
// remainder.
func MulMod(a, b LimbVec, p Params) (LimbVec, error) {
	_, rem, err := MulModWithQuotient(a, b, p)
	return rem, err
}

// MulModWithQuotient is MulMod but also returns the Barrett quotient.
func MulModWithQuotient(a, b LimbVec, p Params) (quotient, remainder LimbVec, err error) {
	wide, err := p.Mult(a, b)
	if err != nil {
		return nil, nil, err
	}
	return Reduce(wide, p.Modulus(), p.RedcParam(), p.K())
}

// PowMod is left-to-right binary exponentiation using MulMod, iterating
// ModulusBits()+1 bit positions.
func PowMod(a, e LimbVec, p Params) (LimbVec, error) {
	result := NewLimbVec(p.N())
	result[0] = nativefield.FromUint64(1)

	eU60 := FromLimbVec(e)
	base := a.Clone()

	bits := p.ModulusBits() + 1
	for i := bits - 1; i >= 0; i-- {
		var err error
		result, err = MulMod(result, result, p)
		if err != nil {
			return nil, err
		}
		if eU60.GetBit(i) == 1 {
			result, err = MulMod(result, base, p)
			if err != nil {
				return nil, err
			}
		}
	}
	return result, nil
}

// InvMod is powmod(a, modulus-2), Fermat's little theorem. Correct only
// when the modulus is prime; callers are responsible for only invoking
// it on a Params whose modulus satisfies that.
func InvMod(a LimbVec, p Params) (LimbVec, error) {
	modBig := BigIntFromLimbs(p.Modulus())
	modBig.Sub(modBig, big.NewInt(2))
	modMinus2 := LimbsFromBigInt(modBig, p.N())
	return PowMod(a, modMinus2, p)
}

// DivMod is mulmod(a, invmod(b)).
func DivMod(a, b LimbVec, p Params) (LimbVec, error) {
	bInv, err := InvMod(b, p)
	if err != nil {
		return nil, err
	}
	return MulMod(a, bInv, p)
}

// DeriveFromSeed is a deterministic, non-cryptographic hash-to-field
// helper for test fixtures only: hash seed with SHA-256 (incrementing the
// first byte between blocks) to fill N limbs 15 bytes at a time (high
// half then low half of each 32-byte digest), then Barrett-reduce.
func DeriveFromSeed(seed []byte, p Params) (LimbVec, error) {
	if len(seed) == 0 {
		return nil, errors.New("bignum: DeriveFromSeed: empty seed")
	}
	n := p.N()
	wide := NewWideVec(2 * n)

	block := make([]byte, len(seed))
	copy(block, seed)

	limbsFilled := 0
	for limbsFilled < n {
		digest := hashBlock(block)

		// 15 bytes per half: high half first, then low half.
		hi := bytesToLimb(digest[0:15])
		if limbsFilled < n {
			wide[limbsFilled] = hi
			limbsFilled++
		}
		if limbsFilled < n {
			lo := bytesToLimb(digest[15:30])
			wide[limbsFilled] = lo
			limbsFilled++
		}

		block[0]++
	}

	wide, err := Normalize(wide)
	if err != nil {
		return nil, err
	}
	_, rem, err := Reduce(wide, p.Modulus(), p.RedcParam(), p.K())
	return rem, err
}

// hashBlock is a thin synchronous call into sha256-simd.
func hashBlock(data []byte) [32]byte {
	return sha256.Sum256(data)
}

func bytesToLimb(b []byte) nativefield.Element {
	v := new(big.Int).SetBytes(b)
	return nativefield.FromBigInt(v)
}
