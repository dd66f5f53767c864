package simplify

import "github.com/fishrambeta/symcas/internal/domain/expr"

// simplifyNeg collapses double negation and folds negation of a literal
// into a negative literal rather than leaving a Neg node around it.
func simplifyNeg(n expr.Neg) expr.Expr {
	if inner, ok := n.X.(expr.Neg); ok {
		return inner.X
	}
	if num, ok := expr.GetNumberOrNone(n.X); ok {
		return expr.RationalExpr(num.Neg())
	}
	return n
}
