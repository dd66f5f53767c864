package simplify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fishrambeta/symcas/internal/domain/expr"
	"github.com/fishrambeta/symcas/internal/domain/simplify"
)

func TestSimplifyCombinesLikeTerms(t *testing.T) {
	x := expr.LetterExpr("x")
	e := expr.Add{Terms: []expr.Expr{x, x}}
	result := simplify.SimplifyUntilComplete(e, nil)
	want := expr.Mul{Factors: []expr.Expr{expr.NumberExpr(2), x}}
	assert.True(t, expr.Equal(result, want), "got %v", result)
}

func TestSimplifyXOverXIsOne(t *testing.T) {
	x := expr.LetterExpr("x")
	e := expr.Div{Num: x, Denom: x}
	result := simplify.SimplifyUntilComplete(e, nil)
	assert.True(t, expr.Equal(result, expr.NumberExpr(1)))
}

func TestSimplifyPowerOfZeroExponent(t *testing.T) {
	x := expr.LetterExpr("x")
	e := expr.Pow{Base: x, Exp: expr.NumberExpr(0)}
	result := simplify.SimplifyUntilComplete(e, nil)
	assert.True(t, expr.Equal(result, expr.NumberExpr(1)))
}

func TestSimplifyReciprocalOfSquaredSumStaysADivision(t *testing.T) {
	// 1 / (x+4)^2 stays a division with numerator 1 (no factor cancels;
	// only the sum's terms are reordered).
	x := expr.LetterExpr("x")
	base := expr.Add{Terms: []expr.Expr{x, expr.NumberExpr(4)}}
	e := expr.Div{Num: expr.NumberExpr(1), Denom: expr.Pow{Base: base, Exp: expr.NumberExpr(2)}}
	result := simplify.SimplifyUntilComplete(e, nil)
	div, ok := result.(expr.Div)
	assert.True(t, ok)
	assert.True(t, expr.Equal(div.Num, expr.NumberExpr(1)))
}

func TestSimplifyPythagoreanIdentity(t *testing.T) {
	x := expr.LetterExpr("x")
	e := expr.Add{Terms: []expr.Expr{
		expr.Pow{Base: expr.Sin{X: x}, Exp: expr.NumberExpr(2)},
		expr.Pow{Base: expr.Cos{X: x}, Exp: expr.NumberExpr(2)},
	}}
	result := simplify.SimplifyUntilComplete(e, nil)
	assert.True(t, expr.Equal(result, expr.NumberExpr(1)), "got %v", result)
}

func TestSimplifyPythagoreanIdentityWithCoefficients(t *testing.T) {
	x := expr.LetterExpr("x")
	e := expr.Add{Terms: []expr.Expr{
		expr.Mul{Factors: []expr.Expr{expr.NumberExpr(2), expr.Pow{Base: expr.Sin{X: x}, Exp: expr.NumberExpr(2)}}},
		expr.Mul{Factors: []expr.Expr{expr.NumberExpr(2), expr.Pow{Base: expr.Cos{X: x}, Exp: expr.NumberExpr(2)}}},
	}}
	result := simplify.SimplifyUntilComplete(e, nil)
	assert.True(t, expr.Equal(result, expr.NumberExpr(2)), "got %v", result)
}

func TestSimplifyPythagoreanIdentityUnequalCoefficientsLeavesRemainder(t *testing.T) {
	x := expr.LetterExpr("x")
	e := expr.Add{Terms: []expr.Expr{
		expr.Mul{Factors: []expr.Expr{expr.NumberExpr(3), expr.Pow{Base: expr.Sin{X: x}, Exp: expr.NumberExpr(2)}}},
		expr.Pow{Base: expr.Cos{X: x}, Exp: expr.NumberExpr(2)},
	}}
	result := simplify.SimplifyUntilComplete(e, nil)
	// min(3,1) = 1 pair collapses to the numeric literal 1, leaving 2*sin(x)^2.
	want := expr.Add{Terms: []expr.Expr{
		expr.NumberExpr(1),
		expr.Mul{Factors: []expr.Expr{expr.NumberExpr(2), expr.Pow{Base: expr.Sin{X: x}, Exp: expr.NumberExpr(2)}}},
	}}
	assert.True(t, expr.Equal(result, want), "got %v", result)
}

func TestSimplifyDivisionCancelsFactorSharedAcrossAddends(t *testing.T) {
	x := expr.LetterExpr("x")
	y := expr.LetterExpr("y")
	z := expr.LetterExpr("z")
	e := expr.Div{
		Num: expr.Add{Terms: []expr.Expr{
			expr.Mul{Factors: []expr.Expr{x, y}},
			expr.Mul{Factors: []expr.Expr{x, z}},
		}},
		Denom: x,
	}
	result := simplify.SimplifyUntilComplete(e, nil)
	want := expr.Add{Terms: []expr.Expr{y, z}}
	assert.True(t, expr.Equal(result, want), "got %v", result)
}

func TestSimplifyDivisionCancelsIntegerContentGCD(t *testing.T) {
	x := expr.LetterExpr("x")
	e := expr.Div{
		Num:   expr.Mul{Factors: []expr.Expr{expr.NumberExpr(6), x}},
		Denom: expr.NumberExpr(9),
	}
	result := simplify.SimplifyUntilComplete(e, nil)
	want := expr.Div{
		Num:   expr.Mul{Factors: []expr.Expr{expr.NumberExpr(2), x}},
		Denom: expr.NumberExpr(3),
	}
	assert.True(t, expr.Equal(result, want), "got %v", result)
}

func TestSimplifyLnOfPower(t *testing.T) {
	x := expr.LetterExpr("x")
	e := expr.Ln{X: expr.Pow{Base: x, Exp: expr.NumberExpr(3)}}
	result := simplify.SimplifyUntilComplete(e, nil)
	want := expr.Mul{Factors: []expr.Expr{expr.NumberExpr(3), expr.Ln{X: x}}}
	assert.True(t, expr.Equal(result, want), "got %v", result)
}

func TestSimplifyDoubleNegationCollapses(t *testing.T) {
	x := expr.LetterExpr("x")
	e := expr.Neg{X: expr.Neg{X: x}}
	result := simplify.SimplifyUntilComplete(e, nil)
	assert.True(t, expr.Equal(result, x))
}

func TestSimplifyDropsZeroAddend(t *testing.T) {
	// x + 0 reduces to x and SimplifyUntilComplete returns.
	x := expr.LetterExpr("x")
	e := expr.Add{Terms: []expr.Expr{x, expr.NumberExpr(0)}}
	result := simplify.SimplifyUntilComplete(e, nil)
	assert.True(t, expr.Equal(result, x))
}
