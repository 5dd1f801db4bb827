package bignum

import (
	"errors"
	"math/big"

	"bignum.mleku.dev/nativefield"
)

// mask120 is 2^120 - 1; mask60 is 2^60 - 1.
var (
	mask120 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 120), big.NewInt(1))
	mask60  = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 60), big.NewInt(1))
)

// Split120 is the unconstrained 120-bit splitter (spec §4.3 BitSplit):
// given x, returns (lo, hi) such that x = lo + hi*2^120, lo < 2^120. It
// reads x's canonical little-endian byte serialization and asserts the
// 32nd byte (the most significant) is zero, i.e. x < 2^248 — the
// precondition every caller in Reduce/normalization is required to
// satisfy.
func Split120(x nativefield.Element) (lo, hi nativefield.Element, err error) {
	b := x.ToBytesLE()
	if b[31] != 0 {
		return nativefield.Element{}, nativefield.Element{}, errors.New("bignum: Split120 precondition violated: value has a nonzero 32nd byte (x >= 2^248)")
	}
	v := x.BigInt()
	loBig := new(big.Int).And(v, mask120)
	hiBig := new(big.Int).Rsh(v, 120)
	return nativefield.FromBigInt(loBig), nativefield.FromBigInt(hiBig), nil
}

// Split60 is the unconstrained 60-bit splitter: given x assumed < 2^120,
// splits its low 120 bits into two 60-bit halves, returned as u64. The
// assumption is not checked here (matching spec §4.3: "Assumes x <
// 2^120"); callers are responsible for only invoking it on range-valid
// limbs.
func Split60(x nativefield.Element) (lo, hi uint64) {
	v := x.BigInt()
	loBig := new(big.Int).And(v, mask60)
	hiBig := new(big.Int).Rsh(v, 60)
	hiBig.And(hiBig, mask60)
	return loBig.Uint64(), hiBig.Uint64()
}
