package bignum

import (
	"math/big"

	"bignum.mleku.dev/nativefield"
)

// BigInt ties a LimbVec to the Params it is valid under, so arithmetic
// methods don't need a Params argument at every call site. BigInts are
// value objects: operators return new BigInts rather than mutating the
// receiver.
type BigInt struct {
	params Params
	limbs  LimbVec
}

// New wraps limbs under params without validating them; callers that
// need a field-valid guarantee should call ValidateInField explicitly.
func New(params Params, limbs LimbVec) BigInt {
	return BigInt{params: params, limbs: limbs.Clone()}
}

// Zero returns the additive identity under params.
func Zero(params Params) BigInt {
	return BigInt{params: params, limbs: NewLimbVec(params.N())}
}

// One returns the multiplicative identity under params.
func One(params Params) BigInt {
	limbs := NewLimbVec(params.N())
	limbs[0] = limbs[0].Add(nativefield.FromUint64(1))
	return BigInt{params: params, limbs: limbs}
}

// FromBytesBE builds a BigInt from a big-endian byte string, with the
// same range check LimbsFromBytesBE performs.
func FromBytesBE(data []byte, params Params) (BigInt, error) {
	limbs, err := LimbsFromBytesBE(data, params)
	if err != nil {
		return BigInt{}, err
	}
	return BigInt{params: params, limbs: limbs}, nil
}

// ToBytesBE serializes b to a fixed-width big-endian byte string, the
// inverse of FromBytesBE.
func (b BigInt) ToBytesBE() ([]byte, error) {
	return LimbsToBytesBE(b.limbs, b.params)
}

// Limbs returns a copy of b's underlying limbs.
func (b BigInt) Limbs() LimbVec { return b.limbs.Clone() }

// Params returns the Params b was built under.
func (b BigInt) Params() Params { return b.params }

// BigInt returns the integer value of b (not reduced mod p; callers that
// need a field-valid guarantee should check ValidateInField first).
func (b BigInt) BigInt() *big.Int { return BigIntFromLimbs(b.limbs) }

// Add returns b+other mod p, constrained via the package-level Add.
func (b BigInt) Add(other BigInt) (BigInt, error) {
	limbs, err := Add(b.limbs, other.limbs, b.params)
	if err != nil {
		return BigInt{}, err
	}
	return BigInt{params: b.params, limbs: limbs}, nil
}

// Sub returns b-other mod p.
func (b BigInt) Sub(other BigInt) (BigInt, error) {
	limbs, err := Sub(b.limbs, other.limbs, b.params)
	if err != nil {
		return BigInt{}, err
	}
	return BigInt{params: b.params, limbs: limbs}, nil
}

// Mul returns b*other mod p.
func (b BigInt) Mul(other BigInt) (BigInt, error) {
	limbs, err := Mul(b.limbs, other.limbs, b.params)
	if err != nil {
		return BigInt{}, err
	}
	return BigInt{params: b.params, limbs: limbs}, nil
}

// Div returns b/other mod p.
func (b BigInt) Div(other BigInt) (BigInt, error) {
	limbs, err := Div(b.limbs, other.limbs, b.params)
	if err != nil {
		return BigInt{}, err
	}
	return BigInt{params: b.params, limbs: limbs}, nil
}

// ValidateInRange checks b is range-valid under its Params.
func (b BigInt) ValidateInRange() error {
	return ValidateInRange(b.limbs, b.params)
}

// ValidateInField checks b is field-valid (0 <= b < p) under its Params.
func (b BigInt) ValidateInField() error {
	return ValidateInField(b.limbs, b.params)
}

// AssertIsNotEqual asserts b and other differ modulo p: it fails when
// they are equal or differ by exactly the modulus.
func (b BigInt) AssertIsNotEqual(other BigInt) error {
	return AssertIsNotEqual(b.limbs, other.limbs, b.params)
}

// Equal reports limbwise equality (not the same thing AssertIsNotEqual
// checks: this is a plain witness-level comparison, never a constraint).
func (b BigInt) Equal(other BigInt) bool {
	return b.limbs.Equal(other.limbs)
}
