// Package differentiate implements structural differentiation of an
// expression with respect to a named variable, following the standard
// rules (sum, product, quotient, chain) plus the generalized power rule
// for f(x)^g(x). Every result is run back through the simplifier so
// derivatives come out in the same canonical shape the rest of the engine
// expects. Grounded in original_source's math/differentiate.rs.
package differentiate

import (
	"github.com/fishrambeta/symcas/internal/domain/expr"
	"github.com/fishrambeta/symcas/internal/domain/simplify"
	"github.com/fishrambeta/symcas/internal/domain/steps"
)

// WithRespectTo differentiates e with respect to the symbol named v and
// simplifies the result.
func WithRespectTo(e expr.Expr, v string, rec steps.Recorder) expr.Expr {
	if rec == nil {
		rec = steps.NullRecorder{}
	}
	rec.OpenStep(e)
	d := differentiate(e, v)
	result := simplify.SimplifyUntilComplete(d, rec)
	rec.CloseStep(result)
	return result
}

func differentiate(e expr.Expr, v string) expr.Expr {
	switch x := e.(type) {
	case expr.Var:
		return differentiateVariable(x.V, v)
	case expr.Neg:
		return expr.Neg{X: differentiate(x.X, v)}
	case expr.Add:
		terms := make([]expr.Expr, len(x.Terms))
		for i, t := range x.Terms {
			terms[i] = differentiate(t, v)
		}
		return expr.Add{Terms: terms}
	case expr.Mul:
		return differentiateProduct(x.Factors, v)
	case expr.Div:
		return differentiateQuotient(x, v)
	case expr.Pow:
		return differentiatePower(x, v)
	case expr.Ln:
		return expr.Div{Num: differentiate(x.X, v), Denom: x.X}
	case expr.Sin:
		return expr.Mul{Factors: []expr.Expr{expr.Cos{X: x.X}, differentiate(x.X, v)}}
	case expr.Cos:
		return expr.Neg{X: expr.Mul{Factors: []expr.Expr{expr.Sin{X: x.X}, differentiate(x.X, v)}}}
	case expr.Arcsin:
		return expr.Div{
			Num: differentiate(x.X, v),
			Denom: expr.Pow{
				Base: expr.Add{Terms: []expr.Expr{expr.NumberExpr(1), expr.Neg{X: expr.Pow{Base: x.X, Exp: expr.NumberExpr(2)}}}},
				Exp:  expr.Div{Num: expr.NumberExpr(1), Denom: expr.NumberExpr(2)},
			},
		}
	case expr.Arccos:
		return expr.Neg{X: differentiate(expr.Arcsin{X: x.X}, v)}
	case expr.Arctan:
		return expr.Div{
			Num:   differentiate(x.X, v),
			Denom: expr.Add{Terms: []expr.Expr{expr.NumberExpr(1), expr.Pow{Base: x.X, Exp: expr.NumberExpr(2)}}},
		}
	case expr.Abs:
		return expr.Mul{Factors: []expr.Expr{
			expr.Div{Num: x.X, Denom: expr.Abs{X: x.X}},
			differentiate(x.X, v),
		}}
	case expr.Eq:
		return expr.Eq{LHS: differentiate(x.LHS, v), RHS: differentiate(x.RHS, v)}
	default:
		return expr.NumberExpr(0)
	}
}

func differentiateVariable(vr expr.Variable, v string) expr.Expr {
	switch x := vr.(type) {
	case expr.Letter:
		if x.Name == v {
			return expr.NumberExpr(1)
		}
		return expr.NumberExpr(0)
	case expr.Vector:
		if x.Name == v {
			return expr.NumberExpr(1)
		}
		return expr.NumberExpr(0)
	default:
		// Integer, Rational, Constant have zero derivative.
		return expr.NumberExpr(0)
	}
}

// differentiateProduct applies the generalized product rule to an n-ary
// Mul: d/dv (f1*f2*...*fn) = sum_i (df_i/dv * prod_{j!=i} f_j).
func differentiateProduct(factors []expr.Expr, v string) expr.Expr {
	if len(factors) == 1 {
		return differentiate(factors[0], v)
	}
	var terms []expr.Expr
	for i := range factors {
		termFactors := make([]expr.Expr, 0, len(factors))
		for j, f := range factors {
			if j == i {
				termFactors = append(termFactors, differentiate(f, v))
			} else {
				termFactors = append(termFactors, f)
			}
		}
		terms = append(terms, expr.Mul{Factors: termFactors})
	}
	return expr.Add{Terms: terms}
}

// differentiateQuotient applies the quotient rule:
// d/dv (f/g) = (f'g - fg') / g^2.
func differentiateQuotient(d expr.Div, v string) expr.Expr {
	fPrime := differentiate(d.Num, v)
	gPrime := differentiate(d.Denom, v)
	numerator := expr.Add{Terms: []expr.Expr{
		expr.Mul{Factors: []expr.Expr{fPrime, d.Denom}},
		expr.Neg{X: expr.Mul{Factors: []expr.Expr{d.Num, gPrime}}},
	}}
	return expr.Div{Num: numerator, Denom: expr.Pow{Base: d.Denom, Exp: expr.NumberExpr(2)}}
}

// differentiatePower applies the generalized power rule to f(x)^g(x):
//
//	d/dv f^g = f^g * (g' * ln(f) + g * f'/f)
//
// which reduces to the elementary power rule (n*f^(n-1)*f') when g is
// constant in v, and to the elementary exponential rule (f^g * g' * ln(f))
// when f is constant in v. The f=0 singularity is not special-cased, per
// DESIGN.md's Open Question decision (matching original_source).
func differentiatePower(p expr.Pow, v string) expr.Expr {
	exponentIsConstant := !dependsOn(p.Exp, v)
	baseIsConstant := !dependsOn(p.Base, v)

	if exponentIsConstant {
		return expr.Mul{Factors: []expr.Expr{
			p.Exp,
			expr.Pow{Base: p.Base, Exp: expr.Add{Terms: []expr.Expr{p.Exp, expr.NumberExpr(-1)}}},
			differentiate(p.Base, v),
		}}
	}
	if baseIsConstant {
		return expr.Mul{Factors: []expr.Expr{
			p,
			expr.Ln{X: p.Base},
			differentiate(p.Exp, v),
		}}
	}

	return expr.Mul{Factors: []expr.Expr{
		p,
		expr.Add{Terms: []expr.Expr{
			expr.Mul{Factors: []expr.Expr{differentiate(p.Exp, v), expr.Ln{X: p.Base}}},
			expr.Mul{Factors: []expr.Expr{p.Exp, expr.Div{Num: differentiate(p.Base, v), Denom: p.Base}}},
		}},
	}}
}

func dependsOn(e expr.Expr, v string) bool {
	switch x := e.(type) {
	case expr.Var:
		switch vr := x.V.(type) {
		case expr.Letter:
			return vr.Name == v
		case expr.Vector:
			return vr.Name == v
		default:
			return false
		}
	case expr.Neg:
		return dependsOn(x.X, v)
	case expr.Add:
		for _, t := range x.Terms {
			if dependsOn(t, v) {
				return true
			}
		}
		return false
	case expr.Mul:
		for _, f := range x.Factors {
			if dependsOn(f, v) {
				return true
			}
		}
		return false
	case expr.Div:
		return dependsOn(x.Num, v) || dependsOn(x.Denom, v)
	case expr.Pow:
		return dependsOn(x.Base, v) || dependsOn(x.Exp, v)
	case expr.Ln:
		return dependsOn(x.X, v)
	case expr.Sin:
		return dependsOn(x.X, v)
	case expr.Cos:
		return dependsOn(x.X, v)
	case expr.Arcsin:
		return dependsOn(x.X, v)
	case expr.Arccos:
		return dependsOn(x.X, v)
	case expr.Arctan:
		return dependsOn(x.X, v)
	case expr.Abs:
		return dependsOn(x.X, v)
	case expr.Eq:
		return dependsOn(x.LHS, v) || dependsOn(x.RHS, v)
	default:
		return false
	}
}
