// Tests that exercise both bignum and emparams live in this external
// test package (bignum_test) rather than the internal bignum test
// files: emparams imports bignum, so a file declared as `package
// bignum` cannot import emparams without creating an import cycle.
package bignum_test

import (
	"math/big"

	"bignum.mleku.dev/bignum"
)

// randomLimbVec fills n limbs with deterministic pseudo-random-looking
// values under 2^120, derived from a simple counter so tests need no
// external randomness source. Mirrors the unexported helper of the same
// name in the internal bignum test files.
func randomLimbVec(n int, seed int64) bignum.LimbVec {
	x := big.NewInt(seed)
	out := make(bignum.LimbVec, n)
	limbBound := new(big.Int).Lsh(big.NewInt(1), 120)
	for i := range out {
		x.Mul(x, big.NewInt(6364136223846793005))
		x.Add(x, big.NewInt(1442695040888963407))
		limb := new(big.Int).Mod(x, limbBound)
		out[i] = bignum.LimbsFromBigInt(limb, 1)[0]
	}
	return out
}
