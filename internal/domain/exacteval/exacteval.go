// Package exacteval computes the exact rational value of an expression
// when every leaf reduces to a rational number, without falling back to
// floating point. Grounded in original_source's
// math/calculate_exact.rs.
package exacteval

import "github.com/fishrambeta/symcas/internal/domain/expr"

// CalculateExact attempts to reduce e to a single Rational using only
// exact integer/rational arithmetic. It returns false if e contains a
// free variable, an irrational constant, or an operation (trig, log)
// that cannot in general produce a rational result.
func CalculateExact(e expr.Expr) (expr.Rational, bool) {
	switch v := e.(type) {
	case expr.Var:
		return CalculateExact(variableExpr(v.V))
	case expr.Integer:
		return expr.Rational{P: v.Value, Q: 1}, true
	case expr.Rational:
		return v, true
	case expr.Constant, expr.Letter, expr.Vector:
		return expr.Rational{}, false
	case expr.Neg:
		x, ok := CalculateExact(v.X)
		if !ok {
			return expr.Rational{}, false
		}
		return x.Neg(), true
	case expr.Add:
		acc := expr.Rational{P: 0, Q: 1}
		for _, t := range v.Terms {
			x, ok := CalculateExact(t)
			if !ok {
				return expr.Rational{}, false
			}
			acc = acc.Add(x)
		}
		return acc, true
	case expr.Mul:
		acc := expr.Rational{P: 1, Q: 1}
		for _, f := range v.Factors {
			x, ok := CalculateExact(f)
			if !ok {
				return expr.Rational{}, false
			}
			acc = acc.Mul(x)
		}
		return acc, true
	case expr.Div:
		num, ok := CalculateExact(v.Num)
		if !ok {
			return expr.Rational{}, false
		}
		den, ok := CalculateExact(v.Denom)
		if !ok {
			return expr.Rational{}, false
		}
		return num.Div(den)
	case expr.Pow:
		base, ok := CalculateExact(v.Base)
		if !ok {
			return expr.Rational{}, false
		}
		exp, ok := CalculateExact(v.Exp)
		if !ok || !exp.IsInteger() {
			return expr.Rational{}, false
		}
		return pow(base, exp.P)
	case expr.Abs:
		x, ok := CalculateExact(v.X)
		if !ok {
			return expr.Rational{}, false
		}
		if x.P < 0 {
			return x.Neg(), true
		}
		return x, true
	default:
		// Ln, Sin, Cos, Arcsin, Arccos, Arctan, Eq: no general exact
		// rational value.
		return expr.Rational{}, false
	}
}

func variableExpr(v expr.Variable) expr.Expr {
	return v
}

func pow(base expr.Rational, n int64) (expr.Rational, bool) {
	if n == 0 {
		return expr.Rational{P: 1, Q: 1}, true
	}
	neg := n < 0
	if neg {
		n = -n
	}
	acc := expr.Rational{P: 1, Q: 1}
	for i := int64(0); i < n; i++ {
		acc = acc.Mul(base)
	}
	if neg {
		return expr.Rational{P: 1, Q: 1}.Div(acc)
	}
	return acc, true
}
