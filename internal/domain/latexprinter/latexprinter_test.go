package latexprinter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fishrambeta/symcas/internal/domain/expr"
	"github.com/fishrambeta/symcas/internal/domain/latexprinter"
)

func TestPrintAddition(t *testing.T) {
	e := expr.Add{Terms: []expr.Expr{expr.LetterExpr("x"), expr.NumberExpr(1)}}
	assert.Equal(t, "x+1", latexprinter.Print(e))
}

func TestPrintAdditionBracketsNestedSum(t *testing.T) {
	inner := expr.Add{Terms: []expr.Expr{expr.LetterExpr("x"), expr.LetterExpr("y")}}
	e := expr.Add{Terms: []expr.Expr{inner, expr.NumberExpr(1)}}
	assert.Equal(t, "(x+y)+1", latexprinter.Print(e))
}

func TestPrintDivisionAsFrac(t *testing.T) {
	e := expr.Div{Num: expr.NumberExpr(1), Denom: expr.LetterExpr("x")}
	assert.Equal(t, "\\frac{1}{x}", latexprinter.Print(e))
}

func TestPrintPower(t *testing.T) {
	e := expr.Pow{Base: expr.LetterExpr("x"), Exp: expr.NumberExpr(2)}
	assert.Equal(t, "x^{2}", latexprinter.Print(e))
}

func TestPrintNegationOfSumIsBracketed(t *testing.T) {
	inner := expr.Add{Terms: []expr.Expr{expr.LetterExpr("x"), expr.LetterExpr("y")}}
	e := expr.Neg{X: inner}
	assert.Equal(t, "-(x+y)", latexprinter.Print(e))
}

func TestPrintTrigFunctions(t *testing.T) {
	x := expr.LetterExpr("x")
	assert.Equal(t, "\\sin(x)", latexprinter.Print(expr.Sin{X: x}))
	assert.Equal(t, "\\cos(x)", latexprinter.Print(expr.Cos{X: x}))
	assert.Equal(t, "\\ln(x)", latexprinter.Print(expr.Ln{X: x}))
}

func TestPrintRationalAsFrac(t *testing.T) {
	e := expr.RationalExpr(expr.NewRational(1, 2))
	assert.Equal(t, "\\frac{1}{2}", latexprinter.Print(e))
}

func TestPrintEquation(t *testing.T) {
	e := expr.Eq{LHS: expr.LetterExpr("x"), RHS: expr.NumberExpr(1)}
	assert.Equal(t, "x=1", latexprinter.Print(e))
}
