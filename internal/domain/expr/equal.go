package expr

// Equal reports whether a and b are structurally identical expression
// trees. It does not simplify first — callers that want "equal after
// simplification" must simplify both sides themselves. Grounded in
// original_source's math/compare.rs recursive-descent equality.
func Equal(a, b Expr) bool {
	switch av := a.(type) {
	case Var:
		bv, ok := b.(Var)
		return ok && variableEqual(av.V, bv.V)
	case Neg:
		bv, ok := b.(Neg)
		return ok && Equal(av.X, bv.X)
	case Add:
		bv, ok := b.(Add)
		return ok && exprSliceEqual(av.Terms, bv.Terms)
	case Mul:
		bv, ok := b.(Mul)
		return ok && exprSliceEqual(av.Factors, bv.Factors)
	case Div:
		bv, ok := b.(Div)
		return ok && Equal(av.Num, bv.Num) && Equal(av.Denom, bv.Denom)
	case Pow:
		bv, ok := b.(Pow)
		return ok && Equal(av.Base, bv.Base) && Equal(av.Exp, bv.Exp)
	case Ln:
		bv, ok := b.(Ln)
		return ok && Equal(av.X, bv.X)
	case Sin:
		bv, ok := b.(Sin)
		return ok && Equal(av.X, bv.X)
	case Cos:
		bv, ok := b.(Cos)
		return ok && Equal(av.X, bv.X)
	case Arcsin:
		bv, ok := b.(Arcsin)
		return ok && Equal(av.X, bv.X)
	case Arccos:
		bv, ok := b.(Arccos)
		return ok && Equal(av.X, bv.X)
	case Arctan:
		bv, ok := b.(Arctan)
		return ok && Equal(av.X, bv.X)
	case Abs:
		bv, ok := b.(Abs)
		return ok && Equal(av.X, bv.X)
	case Eq:
		bv, ok := b.(Eq)
		return ok && Equal(av.LHS, bv.LHS) && Equal(av.RHS, bv.RHS)
	case Integer, Rational, Constant, Letter, Vector:
		bv, ok := b.(Variable)
		return ok && variableEqual(av.(Variable), bv)
	default:
		return false
	}
}

func exprSliceEqual(a, b []Expr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func variableEqual(a, b Variable) bool {
	switch av := a.(type) {
	case Integer:
		bv, ok := b.(Integer)
		return ok && av.Value == bv.Value
	case Rational:
		bv, ok := b.(Rational)
		return ok && av.P == bv.P && av.Q == bv.Q
	case Constant:
		bv, ok := b.(Constant)
		return ok && av.Kind == bv.Kind
	case Letter:
		bv, ok := b.(Letter)
		return ok && av.Name == bv.Name
	case Vector:
		bv, ok := b.(Vector)
		return ok && av.Name == bv.Name
	default:
		return false
	}
}
