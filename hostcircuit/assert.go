// Package hostcircuit is a minimal stand-in for a host proof-system
// surface: the small set of primitives a real SNARK backend supplies so
// bignum's PublicOps can emit range constraints. There is no circuit
// here — gate generation and range-check primitives belong to an
// external backend — so AssertMaxBitSize returns a Go error where a real
// backend would emit an unsatisfiable constraint.
package hostcircuit

import (
	"fmt"
	"math/big"

	"bignum.mleku.dev/nativefield"
)

// AssertMaxBitSize reports whether f's canonical value is strictly less
// than 2^bits. It returns an error rather than panicking: in an
// honest-prover circuit this condition always holds, but PublicOps must
// be able to surface a failure as a proving-time assertion failure
// rather than crash the host process.
func AssertMaxBitSize(f nativefield.Element, bits int) error {
	if bits < 0 {
		return fmt.Errorf("hostcircuit: negative bit size %d", bits)
	}
	bound := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	if f.BigInt().Cmp(bound) >= 0 {
		return fmt.Errorf("hostcircuit: range failure: value has more than %d bits", bits)
	}
	return nil
}
