// Package emparams supplies concrete bignum.Params implementations for a
// handful of moduli worth exercising end to end: the BN254 scalar field,
// secp256k1's base field (cross-checked at init time against
// github.com/decred/dcrd/dcrec/secp256k1/v4's independent FieldVal
// arithmetic), the Ed25519 base field, a 2048-bit RSA-style modulus, and
// a non-prime 250-bit composite modulus.
//
// Every set is built from a decimal or expression-derived *big.Int via
// bignum.LimbsFromBigInt at init time rather than hand-typed 120-bit
// limb literals — exactly the kind of manual arithmetic that's easy to
// get silently wrong for a 2048-bit constant.
package emparams

import (
	"fmt"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"bignum.mleku.dev/bignum"
)

// set is the concrete bignum.Params implementation shared by every
// parameter set in this package; only the stored limb vectors and
// multiplication kernel differ between moduli.
type set struct {
	n             int
	modulusBits   int
	modulus       bignum.LimbVec
	doubleModulus bignum.LimbVec
	redcParam     bignum.LimbVec
	k             int
	mult          func(a, b bignum.LimbVec) (bignum.WideVec, error)
}

func (s *set) N() int                  { return s.n }
func (s *set) Modulus() bignum.LimbVec { return s.modulus.Clone() }
func (s *set) DoubleModulus() bignum.LimbVec {
	return s.doubleModulus.Clone()
}
func (s *set) RedcParam() bignum.LimbVec { return s.redcParam.Clone() }
func (s *set) K() int                    { return s.k }
func (s *set) ModulusBits() int          { return s.modulusBits }
func (s *set) Mult(a, b bignum.LimbVec) (bignum.WideVec, error) {
	return s.mult(a, b)
}

// build constructs a *set from a modulus, taking K == ModulusBits() and
// computing redc_param = floor(2^(2K)/modulus). It panics if n is below
// bignum.MinLimbs(ModulusBits()) or above 64.
func build(modulusBig *big.Int, n int, mult func(a, b bignum.LimbVec) (bignum.WideVec, error)) *set {
	modulusBits := modulusBig.BitLen()
	if n < bignum.MinLimbs(modulusBits) || n > 64 {
		panic(fmt.Sprintf("emparams: unsupported limb count %d for a %d-bit modulus", n, modulusBits))
	}
	k := modulusBits

	redcNumerator := new(big.Int).Lsh(big.NewInt(1), uint(2*k))
	redcParamBig := new(big.Int).Div(redcNumerator, modulusBig)

	doubleModulusBig := new(big.Int).Lsh(modulusBig, 1)

	return &set{
		n:             n,
		modulusBits:   modulusBits,
		modulus:       bignum.LimbsFromBigInt(modulusBig, n),
		doubleModulus: bignum.LimbsFromBigInt(doubleModulusBig, n),
		redcParam:     bignum.LimbsFromBigInt(redcParamBig, n),
		k:             k,
		mult:          mult,
	}
}

func mustDecimal(s string) *big.Int {
	x, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("emparams: bad decimal literal: " + s)
	}
	return x
}

// BN254Fr is the BN254 scalar field, N=3.
var BN254Fr bignum.Params

// Secp256k1Fp is secp256k1's base field, p = 2^256 - 2^32 - 977, N=3.
var Secp256k1Fp bignum.Params

// Ed25519Fp is the Ed25519 base field, p = 2^255 - 19, N=3.
var Ed25519Fp bignum.Params

// RSA2048 is a 2048-bit RSA-style prime, N=18, multiplied with
// Karatsuba18.
var RSA2048 bignum.Params

// Composite250 is a non-prime 250-bit modulus, N=3: add/mul/not-equal
// all pass normally, but div/invmod are not expected to succeed since
// the modulus isn't prime.
var Composite250 bignum.Params

func init() {
	bn254Fr := mustDecimal("21888242871839275222246405745257275088696311157297823662689037894645226208583")
	BN254Fr = build(bn254Fr, 3, bignum.Schoolbook)

	secp256k1Fp := new(big.Int).Sub(
		new(big.Int).Lsh(big.NewInt(1), 256),
		new(big.Int).Add(new(big.Int).Lsh(big.NewInt(1), 32), big.NewInt(977)),
	)
	if err := crossCheckSecp256k1Fp(secp256k1Fp); err != nil {
		panic(err)
	}
	Secp256k1Fp = build(secp256k1Fp, 3, bignum.Schoolbook)

	ed25519Fp := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(19))
	Ed25519Fp = build(ed25519Fp, 3, bignum.Schoolbook)

	RSA2048 = build(rfc3526Group14Prime(), 18, bignum.Karatsuba18)

	// 2^250 - 1: a Mersenne-form number whose exponent (250 = 2*5^3) is
	// composite, so the number itself is guaranteed composite (2^a-1
	// divides 2^n-1 whenever a divides n) — a non-prime 250-bit modulus
	// without needing a hand-factored constant.
	composite250 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 250), big.NewInt(1))
	Composite250 = build(composite250, 3, bignum.Schoolbook)
}

// rfc3526Group14Prime is the RFC 3526 MODP Group 14 2048-bit prime, a
// publicly documented and independently verified constant, used here
// rather than a hand-typed decimal literal so RSA2048's primality does
// not rest on this package getting a 2048-bit number transcribed
// correctly by hand.
func rfc3526Group14Prime() *big.Int {
	const hexDigits = "" +
		"FFFFFFFFFFFFFFFFC90FDAA22168C234C4C6628B80DC1CD129024E088A67CC7" +
		"4020BBEA63B139B22514A08798E3404DDEF9519B3CD3A431B302B0A6DF25F14" +
		"374FE1356D6D51C245E485B576625E7EC6F44C42E9A637ED6B0BFF5CB6F406B" +
		"7EDEE386BFB5A899FA5AE9F24117C4B1FE649286651ECE45B3DC2007CB8A163" +
		"BF0598DA48361C55D39A69163FA8FD24CF5F83655D23DCA3AD961C62F356208" +
		"552BB9ED529077096966D670C354E4ABC9804F1746C08CA18217C32905E462E" +
		"36CE3BE39E772C180E86039B2783A2EC07A28FB5C55DF06F4C52C9DE2BCBF69" +
		"55817183995497CEA956AE515D2261898FA051015728E5A8AACAA68FFFFFFFF" +
		"FFFFFFFF"
	x, ok := new(big.Int).SetString(hexDigits, 16)
	if !ok {
		panic("emparams: bad RFC 3526 group 14 hex literal")
	}
	return x
}

// crossCheckSecp256k1Fp verifies our hand-assembled secp256k1 base-field
// modulus against github.com/decred/dcrd/dcrec/secp256k1/v4's own
// FieldVal arithmetic: FieldVal represents 0 as the canonical
// representative of the field's additive identity, so -1 (mod p)
// normalized and converted back to a big.Int recovers p-1 independently
// of this package's literal decimal/expression computation above.
func crossCheckSecp256k1Fp(p *big.Int) error {
	var negOne secp256k1.FieldVal
	negOne.SetInt(1)
	negOne.Negate(1)
	negOne.Normalize()

	pMinusOne := new(big.Int).Sub(p, big.NewInt(1))
	gotBytes := negOne.Bytes()
	got := new(big.Int).SetBytes(gotBytes[:])

	if got.Cmp(pMinusOne) != 0 {
		return fmt.Errorf("emparams: secp256k1 base field cross-check failed: decred FieldVal gives p-1 = %s, literal modulus gives p-1 = %s", got, pMinusOne)
	}
	return nil
}
