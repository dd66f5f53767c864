package simplify

import (
	"github.com/fishrambeta/symcas/internal/domain/expr"
	"github.com/fishrambeta/symcas/internal/domain/factors"
)

// simplifyDiv folds numeric/numeric division into a single Rational,
// hoists nested divisions (a/(b/c) = a*c/b, (a/b)/c = a/(b*c)), cancels
// shared multiplicative factors between numerator and denominator, and
// collapses Num==Denom to 1 and Denom==1 to Num. Grounded in
// original_source's math/simplify/division.rs.
func simplifyDiv(d expr.Div) expr.Expr {
	if denomNum, ok := expr.GetNumberOrNone(d.Denom); ok && denomNum.IsZero() {
		// Division by zero is a hard error at evaluation time, not at
		// simplification time; leave the expression unresolved so the
		// caller's numeric evaluator can surface
		// mathkinds.ErrDivisionByZero (the exact evaluator reports no
		// exact value for it instead).
		return d
	}

	if nestedDenom, ok := d.Denom.(expr.Div); ok {
		return simplifyDiv(expr.Div{
			Num:   simplifyMulExpr(expr.Mul{Factors: []expr.Expr{d.Num, nestedDenom.Denom}}),
			Denom: nestedDenom.Num,
		})
	}
	if nestedNum, ok := d.Num.(expr.Div); ok {
		return simplifyDiv(expr.Div{
			Num:   nestedNum.Num,
			Denom: simplifyMulExpr(expr.Mul{Factors: []expr.Expr{nestedNum.Denom, d.Denom}}),
		})
	}

	if numNum, ok1 := expr.GetNumberOrNone(d.Num); ok1 {
		if denomNum, ok2 := expr.GetNumberOrNone(d.Denom); ok2 {
			if result, ok := numNum.Div(denomNum); ok {
				return expr.RationalExpr(result)
			}
			return d
		}
	}

	if denomNum, ok := expr.GetNumberOrNone(d.Denom); ok && denomNum.IsOne() {
		return d.Num
	}

	if expr.Equal(d.Num, d.Denom) {
		return expr.NumberExpr(1)
	}

	shared := factors.SharedFactors(d.Num, d.Denom)
	if len(shared) > 0 {
		num, denom := d.Num, d.Denom
		for _, f := range shared {
			num = factors.RemoveFactor(num, f)
			denom = factors.RemoveFactor(denom, f)
		}
		if denomNum, ok := expr.GetNumberOrNone(denom); ok && denomNum.IsOne() {
			return num
		}
		return expr.Div{Num: num, Denom: denom}
	}

	return d
}
