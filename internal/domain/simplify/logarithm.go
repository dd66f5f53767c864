package simplify

import "github.com/fishrambeta/symcas/internal/domain/expr"

// simplifyLn rewrites ln(base^exp) = exp*ln(base), ln(a/b) = ln(a)-ln(b),
// ln(1) = 0, and ln(e) = 1. ln(0) is left unresolved: it is a singular
// case that deliberately has no rewrite rule (see DESIGN.md's Open
// Question decisions), matching original_source's dead branch for it.
// Grounded in original_source's math/simplify/logarithm.rs.
func simplifyLn(l expr.Ln) expr.Expr {
	if n, ok := expr.GetNumberOrNone(l.X); ok {
		if n.IsOne() {
			return expr.NumberExpr(0)
		}
		return l
	}
	if c, ok := l.X.(expr.Constant); ok && c.Kind == expr.E {
		return expr.NumberExpr(1)
	}
	if v, ok := l.X.(expr.Var); ok {
		if c, ok := v.V.(expr.Constant); ok && c.Kind == expr.E {
			return expr.NumberExpr(1)
		}
	}
	if p, ok := l.X.(expr.Pow); ok {
		return simplifyMulExpr(expr.Mul{Factors: []expr.Expr{p.Exp, expr.Ln{X: p.Base}}})
	}
	if d, ok := l.X.(expr.Div); ok {
		return simplifyAdd([]expr.Expr{
			expr.Ln{X: d.Num},
			expr.Neg{X: expr.Ln{X: d.Denom}},
		})
	}
	return l
}
