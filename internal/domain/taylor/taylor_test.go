package taylor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fishrambeta/symcas/internal/domain/expr"
	"github.com/fishrambeta/symcas/internal/domain/taylor"
)

func TestExpansionOfPolynomialIsExact(t *testing.T) {
	x := expr.LetterExpr("x")
	e := expr.Pow{Base: x, Exp: expr.NumberExpr(2)}
	result := taylor.Expansion(e, "x", expr.NewRational(0, 1), 2, nil)
	assert.True(t, expr.Equal(result.IntoExpr(), e), "got %v", result.IntoExpr())
}

func TestExpansionConstantTerm(t *testing.T) {
	x := expr.LetterExpr("x")
	e := expr.Add{Terms: []expr.Expr{x, expr.NumberExpr(5)}}
	result := taylor.Expansion(e, "x", expr.NewRational(0, 1), 0, nil)
	assert.True(t, expr.Equal(result.IntoExpr(), expr.NumberExpr(5)))
}

func TestSubstituteReplacesFreeVariable(t *testing.T) {
	x := expr.LetterExpr("x")
	y := expr.LetterExpr("y")
	e := expr.Add{Terms: []expr.Expr{x, y}}
	result := taylor.Substitute(e, "x", expr.NewRational(3, 1))
	want := expr.Add{Terms: []expr.Expr{expr.NumberExpr(3), y}}
	assert.True(t, expr.Equal(result, want))
}

func TestExpansionKeepsSymbolicCoefficientWhenNotExact(t *testing.T) {
	// sin(x) around x=1 has no exact-rational coefficient (sin(1) is
	// transcendental) but must still expand, carrying the coefficient as
	// a symbolic expression rather than failing.
	x := expr.LetterExpr("x")
	result := taylor.Expansion(expr.Sin{X: x}, "x", expr.NewRational(1, 1), 1, nil)
	assert.Equal(t, 1, result.Degree())
	assert.False(t, isNumber(result.Coeffs[0]))
}

func isNumber(e expr.Expr) bool {
	_, ok := expr.GetNumberOrNone(e)
	return ok
}
