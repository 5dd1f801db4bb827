package bignum

// BNExpression is a tagged pair (value, negative), the unit of
// composition in a quadratic expression. Negative instructs
// EvaluateQuadraticExpression to subtract the value's contribution
// instead of adding it while accumulating the integer relation.
type BNExpression struct {
	Value    LimbVec
	Negative bool
}

// Pos wraps v as a positive BNExpression term.
func Pos(v LimbVec) BNExpression { return BNExpression{Value: v} }

// Neg wraps v as a negative BNExpression term.
func Neg(v LimbVec) BNExpression { return BNExpression{Value: v, Negative: true} }

// positiveNegativeSplit returns (p, n) such that the expression's
// contribution is p - n: for a positive term p = value, n = 0; for a
// negative term it is offset by 2*modulus so the constrained polynomial
// never sees a negative limb: p = doubleModulus, n = value.
func (e BNExpression) positiveNegativeSplit(doubleModulus LimbVec) (p, n LimbVec) {
	if !e.Negative {
		return e.Value, NewLimbVec(len(e.Value))
	}
	return doubleModulus, e.Value
}
