// Package nativefield is a minimal stand-in for the "native field" a host
// proving system supplies to bignum.Params and bignum.PublicOps: a single
// fixed-modulus prime field of the size a circuit's scalar field normally
// is (here, the BN254 scalar field, ~254 bits). A production host supplies
// a highly optimized version of this type (compare p256k1's FieldElement,
// which reduces modulo a different 256-bit prime using that prime's
// special Solinas form); this package exists only so bignum's core has a
// concrete F to compile and test against.
package nativefield

import (
	"crypto/subtle"
	"errors"
	"math/big"
)

// Modulus is the BN254 scalar field prime: the native field bignum's
// tests and emparams parameter sets are built against.
var Modulus = mustParse("21888242871839275222246405745257275088696311157297823662689037894645226208583")

func mustParse(s string) *big.Int {
	m, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("nativefield: bad modulus literal")
	}
	return m
}

// Element is a single native-field element, always held fully reduced in
// [0, Modulus).
type Element struct {
	v big.Int
}

// Zero is the additive identity.
var Zero = Element{}

// One is the multiplicative identity.
var One = FromUint64(1)

// FromUint64 builds an Element from a small unsigned integer.
func FromUint64(x uint64) Element {
	var e Element
	e.v.SetUint64(x)
	return e
}

// FromBigInt reduces x modulo Modulus and returns the result. x is not
// mutated.
func FromBigInt(x *big.Int) Element {
	var e Element
	e.v.Mod(x, Modulus)
	return e
}

// BigInt returns a fresh *big.Int holding the element's canonical value in
// [0, Modulus). The caller owns the result; mutating it does not affect e.
func (e Element) BigInt() *big.Int {
	return new(big.Int).Set(&e.v)
}

// Add returns e + other mod Modulus.
func (e Element) Add(other Element) Element {
	var r Element
	r.v.Add(&e.v, &other.v)
	r.v.Mod(&r.v, Modulus)
	return r
}

// Sub returns e - other mod Modulus.
func (e Element) Sub(other Element) Element {
	var r Element
	r.v.Sub(&e.v, &other.v)
	r.v.Mod(&r.v, Modulus)
	return r
}

// Mul returns e * other mod Modulus.
func (e Element) Mul(other Element) Element {
	var r Element
	r.v.Mul(&e.v, &other.v)
	r.v.Mod(&r.v, Modulus)
	return r
}

// Neg returns -e mod Modulus.
func (e Element) Neg() Element {
	var r Element
	r.v.Neg(&e.v)
	r.v.Mod(&r.v, Modulus)
	return r
}

// IsZero reports whether e is the additive identity.
func (e Element) IsZero() bool {
	return e.v.Sign() == 0
}

// Equal reports whether e and other hold the same canonical value.
func (e Element) Equal(other Element) bool {
	a, b := e.ToBytesLE(), other.ToBytesLE()
	return subtle.ConstantTimeCompare(a[:], b[:]) == 1
}

// Lt reports whether e's canonical representative is less than other's.
// Unconstrained: a witness-side comparison, not a constraint.
func (e Element) Lt(other Element) bool {
	return e.v.Cmp(&other.v) < 0
}

// ToBytesLE returns e's canonical value as 32 little-endian bytes.
func (e Element) ToBytesLE() [32]byte {
	var out [32]byte
	be := e.v.FillBytes(make([]byte, 32))
	for i := 0; i < 32; i++ {
		out[i] = be[31-i]
	}
	return out
}

// FromBytesLE builds an Element from a 32-byte little-endian encoding. It
// returns an error if the encoded value is not a canonical representative
// (i.e. >= Modulus).
func FromBytesLE(b [32]byte) (Element, error) {
	be := make([]byte, 32)
	for i := 0; i < 32; i++ {
		be[i] = b[31-i]
	}
	var e Element
	e.v.SetBytes(be)
	if e.v.Cmp(Modulus) >= 0 {
		return Element{}, errors.New("nativefield: value is not a canonical representative")
	}
	return e, nil
}

// String renders e's canonical decimal value, for debugging and test
// failure messages only.
func (e Element) String() string {
	return e.v.String()
}
