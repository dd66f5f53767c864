package exacteval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fishrambeta/symcas/internal/domain/exacteval"
	"github.com/fishrambeta/symcas/internal/domain/expr"
)

func TestCalculateExactArithmetic(t *testing.T) {
	e := expr.Add{Terms: []expr.Expr{
		expr.NumberExpr(1),
		expr.Div{Num: expr.NumberExpr(1), Denom: expr.NumberExpr(2)},
	}}
	r, ok := exacteval.CalculateExact(e)
	assert.True(t, ok)
	assert.Equal(t, expr.NewRational(3, 2), r)
}

func TestCalculateExactDivisionByZero(t *testing.T) {
	e := expr.Div{Num: expr.NumberExpr(1), Denom: expr.NumberExpr(0)}
	_, ok := exacteval.CalculateExact(e)
	assert.False(t, ok)
}

func TestCalculateExactFreeVariableFails(t *testing.T) {
	_, ok := exacteval.CalculateExact(expr.LetterExpr("x"))
	assert.False(t, ok)
}

func TestCalculateExactIntegerPower(t *testing.T) {
	e := expr.Pow{Base: expr.NumberExpr(2), Exp: expr.NumberExpr(5)}
	r, ok := exacteval.CalculateExact(e)
	assert.True(t, ok)
	assert.Equal(t, expr.NewRational(32, 1), r)
}

func TestCalculateExactNegativeIntegerPower(t *testing.T) {
	e := expr.Pow{Base: expr.NumberExpr(2), Exp: expr.NumberExpr(-2)}
	r, ok := exacteval.CalculateExact(e)
	assert.True(t, ok)
	assert.Equal(t, expr.NewRational(1, 4), r)
}

func TestCalculateExactTrigHasNoExactValue(t *testing.T) {
	_, ok := exacteval.CalculateExact(expr.Sin{X: expr.NumberExpr(0)})
	assert.False(t, ok)
}
