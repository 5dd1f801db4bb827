// Package bignum implements the modular-arithmetic core: the multi-limb
// big-integer representation (120-bit radix), Barrett-reduction witness
// computation, the borrow-propagation zero-check, the 120/60-bit bit
// splitters, and the fixed-width multiplication kernels a circuit author
// composes into a single quadratic relation.
package bignum

import (
	"fmt"

	"bignum.mleku.dev/nativefield"
)

// LimbVec is a fixed-length vector of native-field elements, one 120-bit
// limb per slot, least-significant first. No bounds are enforced on limb
// magnitudes by this type — it is a raw container; range-validity is a
// property PublicOps establishes and checks, not something LimbVec
// itself guarantees.
type LimbVec []nativefield.Element

// NewLimbVec returns a zero-valued LimbVec of length n.
func NewLimbVec(n int) LimbVec {
	return make(LimbVec, n)
}

// Clone returns an independent copy of v.
func (v LimbVec) Clone() LimbVec {
	out := make(LimbVec, len(v))
	copy(out, v)
	return out
}

// Equal reports elementwise equality.
func (v LimbVec) Equal(other LimbVec) bool {
	if len(v) != len(other) {
		return false
	}
	for i := range v {
		if !v[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// IsZero reports whether every limb is the additive identity.
func (v LimbVec) IsZero() bool {
	for _, l := range v {
		if !l.IsZero() {
			return false
		}
	}
	return true
}

// WideVec is a k*N-element ordered sequence of native-field elements,
// addressed by a single logical index, used wherever an intermediate
// value grows beyond N limbs: typically a 2N-limb unreduced product (k=2)
// or a 3N-limb Barrett multiplication output (k=3). Go has no
// arithmetic-on-generics, so this models k*N as a plain runtime slice
// length rather than a pair of type parameters — segmenting by N
// collapses to ordinary slice indexing once k*N is a single dimension.
type WideVec []nativefield.Element

// NewWideVec returns a zero-valued WideVec of length n (== k*N for
// whatever k the caller has in mind).
func NewWideVec(n int) WideVec {
	return make(WideVec, n)
}

// Clone returns an independent copy of v.
func (v WideVec) Clone() WideVec {
	out := make(WideVec, len(v))
	copy(out, v)
	return out
}

// AddAt adds val into v[i] in place, growing no storage — i must already
// be within range. Used throughout Mul to accumulate cross products.
func (v WideVec) AddAt(i int, val nativefield.Element) {
	v[i] = v[i].Add(val)
}

// SubAt subtracts val from v[i] in place (sub_assign).
func (v WideVec) SubAt(i int, val nativefield.Element) {
	v[i] = v[i].Sub(val)
}

// MulAt scales v[i] by val in place (mul_assign).
func (v WideVec) MulAt(i int, val nativefield.Element) {
	v[i] = v[i].Mul(val)
}

// Equal reports elementwise equality; used to check that schoolbook and
// every Karatsuba variant agree on a product.
func (v WideVec) Equal(other WideVec) bool {
	if len(v) != len(other) {
		return false
	}
	for i := range v {
		if !v[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// String renders v for test-failure diagnostics only.
func (v WideVec) String() string {
	return fmt.Sprint([]nativefield.Element(v))
}
