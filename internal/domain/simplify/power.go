package simplify

import (
	"github.com/fishrambeta/symcas/internal/domain/exacteval"
	"github.com/fishrambeta/symcas/internal/domain/expr"
)

// simplifyPow applies the exponent-0/1 shortcuts, folds an exact
// rational base/integer exponent pair into a single Rational, combines
// nested powers (a^b)^c = a^(b*c), and distributes an exponent over a
// product or a division. Grounded in original_source's
// math/simplify/power.rs.
func simplifyPow(p expr.Pow) expr.Expr {
	if n, ok := expr.GetIntegerOrNone(p.Exp); ok {
		if n == 0 {
			return expr.NumberExpr(1)
		}
		if n == 1 {
			return p.Base
		}
	}

	if r, ok := exacteval.CalculateExact(p); ok {
		return expr.RationalExpr(r)
	}

	if inner, ok := p.Base.(expr.Pow); ok {
		return simplifyPow(expr.Pow{Base: inner.Base, Exp: simplifyMulExpr(expr.Mul{Factors: []expr.Expr{inner.Exp, p.Exp}})})
	}

	if m, ok := p.Base.(expr.Mul); ok {
		distributed := make([]expr.Expr, len(m.Factors))
		for i, f := range m.Factors {
			distributed[i] = simplifyPow(expr.Pow{Base: f, Exp: p.Exp})
		}
		return simplifyMul(distributed)
	}

	if d, ok := p.Base.(expr.Div); ok {
		return simplifyDiv(expr.Div{
			Num:   simplifyPow(expr.Pow{Base: d.Num, Exp: p.Exp}),
			Denom: simplifyPow(expr.Pow{Base: d.Denom, Exp: p.Exp}),
		})
	}

	return p
}
