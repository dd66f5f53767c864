package simplify

import "github.com/fishrambeta/symcas/internal/domain/expr"

// simplifyMul flattens nested Mul, short-circuits to 0 if any factor is
// literal 0, hoists any Div factors into one combined division, and
// accumulates exponents of repeated bases (x*x -> x^2) before folding the
// numeric factors into a single coefficient. Grounded in
// original_source's math/simplify/multiplication.rs.
func simplifyMul(factors []expr.Expr) expr.Expr {
	flat := flattenMul(factors)

	for _, f := range flat {
		if n, ok := expr.GetNumberOrNone(f); ok && n.IsZero() {
			return expr.NumberExpr(0)
		}
	}

	var divNums, divDens []expr.Expr
	var rest []expr.Expr
	for _, f := range flat {
		if d, ok := f.(expr.Div); ok {
			divNums = append(divNums, d.Num)
			divDens = append(divDens, d.Denom)
		} else {
			rest = append(rest, f)
		}
	}

	numeric := expr.Rational{P: 1, Q: 1}
	type bucket struct {
		base  expr.Expr
		exps  []expr.Expr
	}
	order := []string{}
	buckets := map[string]*bucket{}

	for _, f := range rest {
		if neg, ok := f.(expr.Neg); ok {
			numeric = numeric.Mul(expr.NewRational(-1, 1))
			f = neg.X
		}
		if n, ok := expr.GetNumberOrNone(f); ok {
			numeric = numeric.Mul(n)
			continue
		}
		base, exp := splitBaseExponent(f)
		key := expr.Key(base)
		if b, ok := buckets[key]; ok {
			b.exps = append(b.exps, exp)
		} else {
			buckets[key] = &bucket{base: base, exps: []expr.Expr{exp}}
			order = append(order, key)
		}
	}

	var combined []expr.Expr
	if !numeric.IsOne() {
		combined = append(combined, expr.RationalExpr(numeric))
	}
	for _, key := range order {
		b := buckets[key]
		exp := b.exps[0]
		if len(b.exps) > 1 {
			exp = simplifyAdd(b.exps)
		}
		if n, ok := expr.GetIntegerOrNone(exp); ok {
			if n == 0 {
				continue
			}
			if n == 1 {
				combined = append(combined, b.base)
				continue
			}
		}
		combined = append(combined, expr.Pow{Base: b.base, Exp: exp})
	}

	expr.SortExprs(combined)

	var numeratorExpr expr.Expr
	switch len(combined) {
	case 0:
		numeratorExpr = expr.NumberExpr(1)
	case 1:
		numeratorExpr = combined[0]
	default:
		numeratorExpr = expr.Mul{Factors: combined}
	}

	if len(divNums) == 0 {
		return numeratorExpr
	}

	fullNum := append([]expr.Expr{numeratorExpr}, divNums...)
	fullNum = flattenMul(fullNum)
	var numExpr expr.Expr
	switch len(fullNum) {
	case 0:
		numExpr = expr.NumberExpr(1)
	case 1:
		numExpr = fullNum[0]
	default:
		numExpr = expr.Mul{Factors: fullNum}
	}

	var denExpr expr.Expr
	switch len(divDens) {
	case 1:
		denExpr = divDens[0]
	default:
		denExpr = expr.Mul{Factors: divDens}
	}

	return simplifyDiv(expr.Div{Num: simplifyMulExpr(numExpr), Denom: simplifyMulExpr(denExpr)})
}

// simplifyMulExpr re-runs factor collection on an expression built up
// internally (the numerator/denominator combined while hoisting
// divisions), without going through the full Simplify post-order walk.
func simplifyMulExpr(e expr.Expr) expr.Expr {
	if m, ok := e.(expr.Mul); ok {
		return simplifyMul(m.Factors)
	}
	return e
}

func flattenMul(factors []expr.Expr) []expr.Expr {
	var out []expr.Expr
	for _, f := range factors {
		if m, ok := f.(expr.Mul); ok {
			out = append(out, flattenMul(m.Factors)...)
		} else {
			out = append(out, f)
		}
	}
	return out
}

func splitBaseExponent(e expr.Expr) (expr.Expr, expr.Expr) {
	if p, ok := e.(expr.Pow); ok {
		return p.Base, p.Exp
	}
	return e, expr.NumberExpr(1)
}
