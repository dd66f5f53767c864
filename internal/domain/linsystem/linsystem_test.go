package linsystem_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fishrambeta/symcas/internal/domain/expr"
	"github.com/fishrambeta/symcas/internal/domain/linsystem"
)

func r(p, q int64) expr.Expr { return expr.RationalExpr(expr.NewRational(p, q)) }

func TestLinearPartAndConstantPart(t *testing.T) {
	x := expr.LetterExpr("x")
	y := expr.LetterExpr("y")
	// 3x - 2y + 5
	e := expr.Add{Terms: []expr.Expr{
		expr.Mul{Factors: []expr.Expr{expr.NumberExpr(3), x}},
		expr.Neg{X: expr.Mul{Factors: []expr.Expr{expr.NumberExpr(2), y}}},
		expr.NumberExpr(5),
	}}
	assert.True(t, expr.Equal(linsystem.LinearPart(e, "x"), r(3, 1)))
	assert.True(t, expr.Equal(linsystem.LinearPart(e, "y"), r(-2, 1)))
	assert.True(t, expr.Equal(linsystem.ConstantPart(e, []string{"x", "y"}), r(5, 1)))
}

func TestLinearPartWithSymbolicCoefficient(t *testing.T) {
	// 4x*sin(4) + y + c + 9 + sin(c): linear_part(x) = 4*sin(4), a
	// symbolic coefficient that never reduces to an exact rational.
	x := expr.LetterExpr("x")
	y := expr.LetterExpr("y")
	c := expr.LetterExpr("c")
	four := expr.NumberExpr(4)
	e := expr.Add{Terms: []expr.Expr{
		expr.Mul{Factors: []expr.Expr{four, x, expr.Sin{X: four}}},
		y,
		c,
		expr.NumberExpr(9),
		expr.Sin{X: c},
	}}
	want := expr.Mul{Factors: []expr.Expr{four, expr.Sin{X: four}}}
	assert.True(t, expr.Equal(linsystem.LinearPart(e, "x"), want), "got %v", linsystem.LinearPart(e, "x"))
	assert.True(t, expr.Equal(linsystem.LinearPart(e, "y"), expr.NumberExpr(1)))

	wantConst := expr.Add{Terms: []expr.Expr{expr.NumberExpr(9), c, expr.Sin{X: c}}}
	assert.True(t, expr.Equal(linsystem.ConstantPart(e, []string{"x", "y"}), wantConst),
		"got %v", linsystem.ConstantPart(e, []string{"x", "y"}))
}

func TestIsLinearRejectsNonlinearTerm(t *testing.T) {
	x := expr.LetterExpr("x")
	e := expr.Pow{Base: x, Exp: expr.NumberExpr(2)}
	assert.False(t, linsystem.IsLinear(e, []string{"x"}))
}

func TestSolveThreeVariableSystem(t *testing.T) {
	// x + y + z = 1/3 + 7/3 + 1 = 11/3
	// 2x - y + z = 2/3 - 7/3 + 1 = -2/3
	// x + 2y - z = 1/3 + 14/3 - 1 = 4
	sys := linsystem.LinearEquationSystem{
		Vars: []string{"x", "y", "z"},
		Coefficients: [][]expr.Expr{
			{r(1, 1), r(1, 1), r(1, 1)},
			{r(2, 1), r(-1, 1), r(1, 1)},
			{r(1, 1), r(2, 1), r(-1, 1)},
		},
		Constants: []expr.Expr{r(11, 3), r(-2, 3), r(4, 1)},
	}
	solution, err := sys.Solve()
	require.NoError(t, err)
	require.Len(t, solution, 3)
	assert.True(t, expr.Equal(solution[0], r(1, 3)), "got %v", solution[0])
	assert.True(t, expr.Equal(solution[1], r(7, 3)), "got %v", solution[1])
	assert.True(t, expr.Equal(solution[2], r(1, 1)), "got %v", solution[2])
}

func TestSolveSingularSystemIsUnsolvable(t *testing.T) {
	sys := linsystem.LinearEquationSystem{
		Vars: []string{"x", "y"},
		Coefficients: [][]expr.Expr{
			{r(1, 1), r(1, 1)},
			{r(2, 1), r(2, 1)},
		},
		Constants: []expr.Expr{r(1, 1), r(2, 1)},
	}
	_, err := sys.Solve()
	assert.Error(t, err)
}

func TestFromEquationsBuildsCoefficients(t *testing.T) {
	x := expr.LetterExpr("x")
	y := expr.LetterExpr("y")
	eq := expr.Eq{
		LHS: expr.Add{Terms: []expr.Expr{x, y}},
		RHS: expr.NumberExpr(10),
	}
	sys := linsystem.FromEquations([]expr.Eq{eq}, []string{"x", "y"})
	assert.True(t, expr.Equal(sys.Coefficients[0][0], r(1, 1)))
	assert.True(t, expr.Equal(sys.Coefficients[0][1], r(1, 1)))
	assert.True(t, expr.Equal(sys.Constants[0], r(10, 1)))
}
