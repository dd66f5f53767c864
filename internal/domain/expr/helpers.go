package expr

// GetNumberOrNone returns the Rational value of e if e is an Integer or
// Rational leaf (wrapped or bare), and false otherwise.
func GetNumberOrNone(e Expr) (Rational, bool) {
	switch v := e.(type) {
	case Var:
		return GetNumberOrNone(v.V)
	case Integer:
		return Rational{P: v.Value, Q: 1}, true
	case Rational:
		return v, true
	default:
		return Rational{}, false
	}
}

// GetIntegerOrNone returns the int64 value of e if e is an Integer leaf
// (wrapped or bare) or a Rational that reduces to a whole number.
func GetIntegerOrNone(e Expr) (int64, bool) {
	n, ok := GetNumberOrNone(e)
	if !ok || !n.IsInteger() {
		return 0, false
	}
	return n.P, true
}

// MultiplyBy returns e * factor, flattening into an existing Mul rather
// than nesting one, the same convenience original_source's
// math/multiply_by.rs provides.
func MultiplyBy(e Expr, factor Expr) Expr {
	switch v := e.(type) {
	case Mul:
		factors := make([]Expr, len(v.Factors), len(v.Factors)+1)
		copy(factors, v.Factors)
		factors = append(factors, factor)
		return Mul{Factors: factors}
	default:
		return Mul{Factors: []Expr{e, factor}}
	}
}

// NumberExpr wraps an int64 as a canonical Integer leaf.
func NumberExpr(v int64) Expr {
	return Var{V: Integer{Value: v}}
}

// RationalExpr wraps a Rational as a canonical leaf, collapsing to Integer
// when the denominator reduces to 1.
func RationalExpr(r Rational) Expr {
	if r.IsInteger() {
		return Var{V: Integer{Value: r.P}}
	}
	return Var{V: r}
}

// LetterExpr wraps a symbol name as a canonical leaf.
func LetterExpr(name string) Expr {
	return Var{V: Letter{Name: name}}
}

// ConstantExpr wraps a named constant as a canonical leaf.
func ConstantExpr(k ConstantKind) Expr {
	return Var{V: Constant{Kind: k}}
}

// VectorExpr wraps a vector-tagged symbol as a canonical leaf.
func VectorExpr(name string) Expr {
	return Var{V: Vector{Name: name}}
}
