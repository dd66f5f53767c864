// Package taylor builds the degree-n Taylor expansion of an expression
// around a point, by iteratively differentiating and evaluating its
// coefficient at that point, expressed as a Polynomial in v itself (per
// original_source's Polynomial::from_coefficients(coefficients,
// variable), which uses the expansion variable as the polynomial base
// rather than an offset). Grounded in original_source's
// math/taylor_series.rs.
package taylor

import (
	"github.com/fishrambeta/symcas/internal/domain/differentiate"
	"github.com/fishrambeta/symcas/internal/domain/expr"
	"github.com/fishrambeta/symcas/internal/domain/polynomial"
	"github.com/fishrambeta/symcas/internal/domain/simplify"
	"github.com/fishrambeta/symcas/internal/domain/steps"
)

func factorial(n int) expr.Rational {
	acc := expr.Rational{P: 1, Q: 1}
	for i := 2; i <= n; i++ {
		acc = acc.Mul(expr.Rational{P: int64(i), Q: 1})
	}
	return acc
}

// Expansion returns the Taylor polynomial of e around v=around, up to and
// including the term of degree `degree`, as a Polynomial in v (per
// original_source's Polynomial::from_coefficients(coefficients,
// variable), whose base is the expansion variable itself). Each
// coefficient is substituted and simplified rather than required to
// reduce to an exact rational: a coefficient involving an unevaluated
// constant (e.g. the e in e^x expanded around x=1) stays symbolic,
// matching original_source's coefficients.push(...
// evaluate(...).simplify() ...), which never requires an exact value.
func Expansion(e expr.Expr, v string, around expr.Rational, degree int, rec steps.Recorder) polynomial.Polynomial {
	if rec == nil {
		rec = steps.NullRecorder{}
	}
	current := e
	coeffs := make([]expr.Expr, degree+1)

	for n := 0; n <= degree; n++ {
		substituted := Substitute(current, v, around)
		fact := factorial(n)
		coeffs[n] = simplify.SimplifyUntilComplete(
			expr.Div{Num: substituted, Denom: expr.RationalExpr(fact)}, rec)
		if n < degree {
			current = differentiate.WithRespectTo(current, v, rec)
		}
	}

	return polynomial.Polynomial{Var: v, Coeffs: coeffs}
}

// Substitute replaces every free occurrence of the symbol named v in e
// with the Rational value at.
func Substitute(e expr.Expr, v string, at expr.Rational) expr.Expr {
	switch x := e.(type) {
	case expr.Var:
		switch vr := x.V.(type) {
		case expr.Letter:
			if vr.Name == v {
				return expr.RationalExpr(at)
			}
		case expr.Vector:
			if vr.Name == v {
				return expr.RationalExpr(at)
			}
		}
		return x
	case expr.Neg:
		return expr.Neg{X: Substitute(x.X, v, at)}
	case expr.Add:
		terms := make([]expr.Expr, len(x.Terms))
		for i, t := range x.Terms {
			terms[i] = Substitute(t, v, at)
		}
		return expr.Add{Terms: terms}
	case expr.Mul:
		factors := make([]expr.Expr, len(x.Factors))
		for i, f := range x.Factors {
			factors[i] = Substitute(f, v, at)
		}
		return expr.Mul{Factors: factors}
	case expr.Div:
		return expr.Div{Num: Substitute(x.Num, v, at), Denom: Substitute(x.Denom, v, at)}
	case expr.Pow:
		return expr.Pow{Base: Substitute(x.Base, v, at), Exp: Substitute(x.Exp, v, at)}
	case expr.Ln:
		return expr.Ln{X: Substitute(x.X, v, at)}
	case expr.Sin:
		return expr.Sin{X: Substitute(x.X, v, at)}
	case expr.Cos:
		return expr.Cos{X: Substitute(x.X, v, at)}
	case expr.Arcsin:
		return expr.Arcsin{X: Substitute(x.X, v, at)}
	case expr.Arccos:
		return expr.Arccos{X: Substitute(x.X, v, at)}
	case expr.Arctan:
		return expr.Arctan{X: Substitute(x.X, v, at)}
	case expr.Abs:
		return expr.Abs{X: Substitute(x.X, v, at)}
	case expr.Eq:
		// Substitution distributes across Eq per DESIGN.md's Open
		// Question decision: both sides are substituted rather than
		// treating Eq as a precondition violation.
		return expr.Eq{LHS: Substitute(x.LHS, v, at), RHS: Substitute(x.RHS, v, at)}
	default:
		return e
	}
}
