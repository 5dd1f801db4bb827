package bignum_test

import (
	"math/big"
	"testing"

	"bignum.mleku.dev/bignum"
	"bignum.mleku.dev/emparams"
)

func TestReduceAgainstBigIntMod(t *testing.T) {
	p := emparams.BN254Fr
	a := reducedBigInt(p)(101).Limbs()
	b := reducedBigInt(p)(202).Limbs()

	wide, err := p.Mult(a, b)
	if err != nil {
		t.Fatalf("Mult: %v", err)
	}

	quotient, remainder, err := bignum.Reduce(wide, p.Modulus(), p.RedcParam(), p.K())
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}

	product := new(big.Int).Mul(bignum.BigIntFromLimbs(a), bignum.BigIntFromLimbs(b))
	modBig := bignum.BigIntFromLimbs(p.Modulus())
	wantQuotient, wantRemainder := new(big.Int).QuoRem(product, modBig, new(big.Int))

	if bignum.BigIntFromLimbs(remainder).Cmp(wantRemainder) != 0 {
		t.Errorf("remainder: got %s, want %s", bignum.BigIntFromLimbs(remainder), wantRemainder)
	}
	if bignum.BigIntFromLimbs(quotient).Cmp(wantQuotient) != 0 {
		t.Errorf("quotient: got %s, want %s", bignum.BigIntFromLimbs(quotient), wantQuotient)
	}
	if bignum.BigIntFromLimbs(remainder).Cmp(modBig) >= 0 {
		t.Error("remainder is not less than the modulus")
	}
}

func TestReduceOfZero(t *testing.T) {
	p := emparams.Ed25519Fp
	wide := bignum.NewWideVec(2 * p.N())
	quotient, remainder, err := bignum.Reduce(wide, p.Modulus(), p.RedcParam(), p.K())
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	if !quotient.IsZero() {
		t.Error("expected zero quotient for zero input")
	}
	if !remainder.IsZero() {
		t.Error("expected zero remainder for zero input")
	}
}
