package bignum_test

import (
	"math/big"
	"testing"

	"bignum.mleku.dev/bignum"
	"bignum.mleku.dev/emparams"
)

func TestEvaluateQuadraticExpressionLinearOnly(t *testing.T) {
	p := emparams.BN254Fr
	a := randomLimbVec(p.N(), 11)
	b := randomLimbVec(p.N(), 12)
	sum := bignum.AddMod(a, b, p)

	// a + b - sum = 0 (mod p)
	_, err := bignum.EvaluateQuadraticExpression(nil, nil,
		[]bignum.BNExpression{bignum.Pos(a), bignum.Pos(b), bignum.Neg(sum)}, p)
	if err != nil {
		t.Fatalf("expected a valid relation, got error: %v", err)
	}
}

func TestEvaluateQuadraticExpressionRejectsFalseLinearRelation(t *testing.T) {
	p := emparams.BN254Fr
	a := randomLimbVec(p.N(), 21)
	b := randomLimbVec(p.N(), 22)
	wrong := bignum.AddMod(a, b, p)
	wrong = bignum.AddMod(wrong, bignum.LimbsFromBigInt(big.NewInt(1), p.N()), p)

	_, err := bignum.EvaluateQuadraticExpression(nil, nil,
		[]bignum.BNExpression{bignum.Pos(a), bignum.Pos(b), bignum.Neg(wrong)}, p)
	if err == nil {
		t.Fatal("expected a false relation to be rejected")
	}
}

func TestEvaluateQuadraticExpressionSingleProduct(t *testing.T) {
	p := emparams.Secp256k1Fp
	a := reducedBigInt(p)(31).Limbs()
	b := reducedBigInt(p)(32).Limbs()
	product, err := bignum.MulMod(a, b, p)
	if err != nil {
		t.Fatalf("MulMod: %v", err)
	}

	lhs := [][]bignum.BNExpression{{bignum.Pos(a)}}
	rhs := [][]bignum.BNExpression{{bignum.Pos(b)}}
	_, err = bignum.EvaluateQuadraticExpression(lhs, rhs, []bignum.BNExpression{bignum.Neg(product)}, p)
	if err != nil {
		t.Fatalf("expected a valid product relation, got error: %v", err)
	}
}

func TestEvaluateQuadraticExpressionMultiProductSum(t *testing.T) {
	// (a1+a2)*(b1+b2) + (a3*b3) - result = 0, combining a multi-term
	// product group with a second single-term product group.
	p := emparams.Ed25519Fp
	mk := reducedBigInt(p)
	a1 := mk(41).Limbs()
	a2 := mk(42).Limbs()
	a3 := mk(43).Limbs()
	b1 := mk(44).Limbs()
	b2 := mk(45).Limbs()
	b3 := mk(46).Limbs()

	aSum := bignum.AddMod(a1, a2, p)
	bSum := bignum.AddMod(b1, b2, p)
	term1, err := bignum.MulMod(aSum, bSum, p)
	if err != nil {
		t.Fatalf("MulMod: %v", err)
	}
	term2, err := bignum.MulMod(a3, b3, p)
	if err != nil {
		t.Fatalf("MulMod: %v", err)
	}
	result := bignum.AddMod(term1, term2, p)

	lhs := [][]bignum.BNExpression{
		{bignum.Pos(a1), bignum.Pos(a2)},
		{bignum.Pos(a3)},
	}
	rhs := [][]bignum.BNExpression{
		{bignum.Pos(b1), bignum.Pos(b2)},
		{bignum.Pos(b3)},
	}
	_, err = bignum.EvaluateQuadraticExpression(lhs, rhs, []bignum.BNExpression{bignum.Neg(result)}, p)
	if err != nil {
		t.Fatalf("expected a valid multi-product relation, got error: %v", err)
	}
}

func TestEvaluateQuadraticExpressionRejectsMismatchedProductCounts(t *testing.T) {
	p := emparams.BN254Fr
	a := randomLimbVec(p.N(), 51)
	b := randomLimbVec(p.N(), 52)

	lhs := [][]bignum.BNExpression{{bignum.Pos(a)}, {bignum.Pos(a)}}
	rhs := [][]bignum.BNExpression{{bignum.Pos(b)}}
	_, err := bignum.EvaluateQuadraticExpression(lhs, rhs, nil, p)
	if err == nil {
		t.Fatal("expected an error for mismatched lhs/rhs product counts")
	}
}

func TestEvaluateQuadraticExpressionRejectsTooManyProducts(t *testing.T) {
	p := emparams.BN254Fr
	a := randomLimbVec(p.N(), 61)
	b := randomLimbVec(p.N(), 62)

	lhs := make([][]bignum.BNExpression, 65)
	rhs := make([][]bignum.BNExpression, 65)
	for i := range lhs {
		lhs[i] = []bignum.BNExpression{bignum.Pos(a)}
		rhs[i] = []bignum.BNExpression{bignum.Pos(b)}
	}
	_, err := bignum.EvaluateQuadraticExpression(lhs, rhs, nil, p)
	if err == nil {
		t.Fatal("expected the 64-product cap to be enforced")
	}
}

func TestAddSubMulDivOpsAgreeWithEvaluateQuadraticExpression(t *testing.T) {
	p := emparams.BN254Fr
	a := reducedBigInt(p)(71).Limbs()
	b := reducedBigInt(p)(72).Limbs()

	if _, err := bignum.Add(a, b, p); err != nil {
		t.Errorf("Add: %v", err)
	}
	if _, err := bignum.Sub(a, b, p); err != nil {
		t.Errorf("Sub: %v", err)
	}
	if _, err := bignum.Mul(a, b, p); err != nil {
		t.Errorf("Mul: %v", err)
	}
	nonZeroB := bignum.LimbsFromBigInt(big.NewInt(99991), p.N())
	if _, err := bignum.Div(a, nonZeroB, p); err != nil {
		t.Errorf("Div: %v", err)
	}
}
