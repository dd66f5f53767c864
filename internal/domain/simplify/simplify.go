// Package simplify implements the rewrite-based simplifier: a dispatch
// over expr.Expr that recursively simplifies children first (post-order)
// and then applies the rule family for the node's own kind. Because the
// rule set is not proven confluent, callers that want a stable result use
// SimplifyUntilComplete rather than a single Simplify pass. Grounded in
// original_source's math/simplify/mod.rs and its per-operator siblings.
package simplify

import (
	"github.com/fishrambeta/symcas/internal/domain/expr"
	"github.com/fishrambeta/symcas/internal/domain/steps"
)

// maxIterations bounds the fixed-point loop the same way
// simplify_until_complete does in the original: five rounds, or sooner if
// two consecutive rounds produce structurally identical expressions.
const maxIterations = 5

// SimplifyUntilComplete repeatedly simplifies e until it stops changing
// or the iteration cap is reached, whichever comes first.
func SimplifyUntilComplete(e expr.Expr, rec steps.Recorder) expr.Expr {
	if rec == nil {
		rec = steps.NullRecorder{}
	}
	current := e
	for i := 0; i < maxIterations; i++ {
		next := Simplify(current, rec)
		if expr.Equal(next, current) {
			return next
		}
		current = next
	}
	return current
}

// Simplify performs one rewrite pass over e.
func Simplify(e expr.Expr, rec steps.Recorder) expr.Expr {
	if rec == nil {
		rec = steps.NullRecorder{}
	}
	rec.OpenStep(e)
	result := simplifyOnce(e, rec)
	rec.CloseStep(result)
	return result
}

func simplifyOnce(e expr.Expr, rec steps.Recorder) expr.Expr {
	switch v := e.(type) {
	case expr.Var:
		return v
	case expr.Neg:
		return simplifyNeg(expr.Neg{X: Simplify(v.X, rec)})
	case expr.Add:
		terms := make([]expr.Expr, len(v.Terms))
		for i, t := range v.Terms {
			terms[i] = Simplify(t, rec)
		}
		return simplifyAdd(terms)
	case expr.Mul:
		factors := make([]expr.Expr, len(v.Factors))
		for i, f := range v.Factors {
			factors[i] = Simplify(f, rec)
		}
		return simplifyMul(factors)
	case expr.Div:
		return simplifyDiv(expr.Div{Num: Simplify(v.Num, rec), Denom: Simplify(v.Denom, rec)})
	case expr.Pow:
		return simplifyPow(expr.Pow{Base: Simplify(v.Base, rec), Exp: Simplify(v.Exp, rec)})
	case expr.Ln:
		return simplifyLn(expr.Ln{X: Simplify(v.X, rec)})
	case expr.Sin:
		return expr.Sin{X: Simplify(v.X, rec)}
	case expr.Cos:
		return expr.Cos{X: Simplify(v.X, rec)}
	case expr.Arcsin:
		return expr.Arcsin{X: Simplify(v.X, rec)}
	case expr.Arccos:
		return expr.Arccos{X: Simplify(v.X, rec)}
	case expr.Arctan:
		return expr.Arctan{X: Simplify(v.X, rec)}
	case expr.Abs:
		return simplifyAbs(expr.Abs{X: Simplify(v.X, rec)})
	case expr.Eq:
		return expr.Eq{LHS: Simplify(v.LHS, rec), RHS: Simplify(v.RHS, rec)}
	default:
		return e
	}
}

func simplifyAbs(a expr.Abs) expr.Expr {
	if n, ok := expr.GetNumberOrNone(a.X); ok {
		if n.P < 0 {
			return expr.RationalExpr(n.Neg())
		}
		return expr.RationalExpr(n)
	}
	if neg, ok := a.X.(expr.Neg); ok {
		return expr.Abs{X: neg.X}
	}
	return a
}
