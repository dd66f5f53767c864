package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fishrambeta/symcas/internal/domain/expr"
	"github.com/fishrambeta/symcas/internal/domain/mathkinds"
	"github.com/fishrambeta/symcas/internal/domain/solver"
)

func TestSolveSimplifyCombinesLikeTerms(t *testing.T) {
	x := expr.LetterExpr("x")
	e := expr.Add{Terms: []expr.Expr{x, x}}
	out, err := solver.Solve("simplify", []expr.Expr{e}, solver.Options{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "2\\cdot x", out)
}

func TestSolveDifferentiatePowerRule(t *testing.T) {
	x := expr.LetterExpr("x")
	e := expr.Pow{Base: x, Exp: expr.NumberExpr(2)}
	out, err := solver.Solve("differentiate", []expr.Expr{e}, solver.Options{Var: "x"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "2\\cdot x", out)
}

func TestSolveDifferentiateRequiresVar(t *testing.T) {
	_, err := solver.Solve("differentiate", []expr.Expr{expr.LetterExpr("x")}, solver.Options{}, nil)
	assert.ErrorIs(t, err, mathkinds.ErrInvalidLatex)
}

func TestSolveEvalUsesOverrides(t *testing.T) {
	e := expr.Add{Terms: []expr.Expr{expr.LetterExpr("x"), expr.NumberExpr(1)}}
	out, err := solver.Solve("eval", []expr.Expr{e}, solver.Options{Overrides: "x=4"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "5", out)
}

func TestSolveEvalFallsBackToPhysicalConstants(t *testing.T) {
	e := expr.LetterExpr("c")
	out, err := solver.Solve("eval", []expr.Expr{e}, solver.Options{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "2.99792458e+08", out)
}

func TestSolveTaylorExpandsAroundPoint(t *testing.T) {
	x := expr.LetterExpr("x")
	e := expr.Pow{Base: x, Exp: expr.NumberExpr(2)}
	out, err := solver.Solve("taylor", []expr.Expr{e}, solver.Options{Var: "x", Around: "0", Degree: 2}, nil)
	require.NoError(t, err)
	assert.Equal(t, "x^{2}", out)
}

func TestSolveSystemTwoVariables(t *testing.T) {
	x, y := expr.LetterExpr("x"), expr.LetterExpr("y")
	eq1 := expr.Eq{LHS: expr.Add{Terms: []expr.Expr{x, y}}, RHS: expr.NumberExpr(3)}
	eq2 := expr.Eq{LHS: expr.Add{Terms: []expr.Expr{x, expr.Neg{X: y}}}, RHS: expr.NumberExpr(1)}
	out, err := solver.Solve("solve", []expr.Expr{eq1, eq2}, solver.Options{Var: "x,y"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "x=2, y=1", out)
}

func TestSolveSystemRejectsNonEquation(t *testing.T) {
	_, err := solver.Solve("solve", []expr.Expr{expr.LetterExpr("x")}, solver.Options{Var: "x"}, nil)
	assert.ErrorIs(t, err, mathkinds.ErrInvalidLatex)
}

func TestSolveFactorSquareFreeFactorization(t *testing.T) {
	// (x-1)^2 = x^2 - 2x + 1
	x := expr.LetterExpr("x")
	e := expr.Add{Terms: []expr.Expr{
		expr.Pow{Base: x, Exp: expr.NumberExpr(2)},
		expr.Neg{X: expr.Mul{Factors: []expr.Expr{expr.NumberExpr(2), x}}},
		expr.NumberExpr(1),
	}}
	out, err := solver.Solve("factor", []expr.Expr{e}, solver.Options{Var: "x"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "(-1+x)^{2}", out)
}

func TestSolveUnknownModeIsUnsupported(t *testing.T) {
	_, err := solver.Solve("integrate", []expr.Expr{expr.LetterExpr("x")}, solver.Options{}, nil)
	assert.ErrorIs(t, err, mathkinds.ErrUnsupportedOperation)
}
