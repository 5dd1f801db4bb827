package bignum

// Add computes a+b mod p: derives the witness via AddMod, then constrains
// it by calling EvaluateQuadraticExpression with linear terms
// [a+, b+, result-] and no products.
func Add(a, b LimbVec, p Params) (LimbVec, error) {
	result := AddMod(a, b, p)
	_, err := EvaluateQuadraticExpression(nil, nil, []BNExpression{Pos(a), Pos(b), Neg(result)}, p)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Sub computes a-b mod p: linear terms [a-, b+, result+], proving
// result+b = a.
func Sub(a, b LimbVec, p Params) (LimbVec, error) {
	result := SubMod(a, b, p)
	_, err := EvaluateQuadraticExpression(nil, nil, []BNExpression{Neg(a), Pos(b), Pos(result)}, p)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Mul computes a*b mod p: one product [a+]*[b+], linear term [result-].
func Mul(a, b LimbVec, p Params) (LimbVec, error) {
	result, err := MulMod(a, b, p)
	if err != nil {
		return nil, err
	}
	lhs := [][]BNExpression{{Pos(a)}}
	rhs := [][]BNExpression{{Pos(b)}}
	_, err = EvaluateQuadraticExpression(lhs, rhs, []BNExpression{Neg(result)}, p)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Div computes a/b mod p: one product [result+]*[b+], linear term [a-],
// proving result*b = a. b must be invertible mod p.
func Div(a, b LimbVec, p Params) (LimbVec, error) {
	result, err := DivMod(a, b, p)
	if err != nil {
		return nil, err
	}
	lhs := [][]BNExpression{{Pos(result)}}
	rhs := [][]BNExpression{{Pos(b)}}
	_, err = EvaluateQuadraticExpression(lhs, rhs, []BNExpression{Neg(a)}, p)
	if err != nil {
		return nil, err
	}
	return result, nil
}
