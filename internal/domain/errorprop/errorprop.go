// Package errorprop propagates measurement uncertainty through an
// expression via the standard partial-derivatives formula
// σ_f = sqrt(Σ (∂f/∂xᵢ · σᵢ)²), built entirely on the differentiator and
// numeric evaluator. Grounded in original_source's math/error_analysis.rs.
package errorprop

import (
	"math"

	"github.com/fishrambeta/symcas/internal/domain/differentiate"
	"github.com/fishrambeta/symcas/internal/domain/expr"
	"github.com/fishrambeta/symcas/internal/domain/numeric"
	"github.com/fishrambeta/symcas/internal/domain/physvalues"
	"github.com/fishrambeta/symcas/internal/domain/steps"
)

// Symbolic builds the symbolic uncertainty expression
// sqrt(Σ (∂e/∂v · s_v)^2) for each name in errorVariables, where s_v is
// the letter variable named "s_" + v.
func Symbolic(e expr.Expr, errorVariables []string, rec steps.Recorder) expr.Expr {
	if rec == nil {
		rec = steps.NullRecorder{}
	}
	terms := make([]expr.Expr, 0, len(errorVariables))
	for _, v := range errorVariables {
		derivative := differentiate.WithRespectTo(e, v, rec)
		sigma := expr.LetterExpr("s_" + v)
		term := expr.Pow{
			Base: expr.Mul{Factors: []expr.Expr{derivative, sigma}},
			Exp:  expr.NumberExpr(2),
		}
		terms = append(terms, term)
	}
	return expr.Pow{
		Base: expr.Add{Terms: terms},
		Exp:  expr.RationalExpr(expr.NewRational(1, 2)),
	}
}

// Evaluate computes the propagated numeric uncertainty directly: for
// each variable in sigmas, it differentiates e, evaluates the partial
// derivative at point (falling back to values for any variable not
// supplied in point), and accumulates (∂e/∂v · σ_v)^2 before taking the
// square root of the sum.
func Evaluate(e expr.Expr, sigmas map[string]float64, values physvalues.Provider, point map[string]float64, rec steps.Recorder) (float64, error) {
	if rec == nil {
		rec = steps.NullRecorder{}
	}
	sumSquares := 0.0
	for v, sigma := range sigmas {
		derivative := differentiate.WithRespectTo(e, v, rec)
		partial, err := numeric.Calculate(derivative, values, point)
		if err != nil {
			return 0, err
		}
		contribution := partial * sigma
		sumSquares += contribution * contribution
	}
	return math.Sqrt(sumSquares), nil
}
