package polynomial_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fishrambeta/symcas/internal/domain/expr"
	"github.com/fishrambeta/symcas/internal/domain/polynomial"
)

func r(p, q int64) expr.Expr { return expr.RationalExpr(expr.NewRational(p, q)) }

func TestPolynomialFromExprRoundTrip(t *testing.T) {
	x := expr.LetterExpr("x")
	e := expr.Add{Terms: []expr.Expr{
		expr.Pow{Base: x, Exp: expr.NumberExpr(2)},
		expr.Mul{Factors: []expr.Expr{expr.NumberExpr(3), x}},
		expr.NumberExpr(2),
	}}
	p, ok := polynomial.FromExpr(e, "x")
	require.True(t, ok)
	assert.Equal(t, 2, p.Degree())
	assert.True(t, expr.Equal(p.Coeffs[2], r(1, 1)))
	assert.True(t, expr.Equal(p.Coeffs[1], r(3, 1)))
	assert.True(t, expr.Equal(p.Coeffs[0], r(2, 1)))
}

func TestPolynomialFromExprAcceptsSymbolicCoefficients(t *testing.T) {
	// a*x^2 + b*x + c is a polynomial in x with Expr-valued (non-rational)
	// coefficients a, b, c.
	x := expr.LetterExpr("x")
	a, b, c := expr.LetterExpr("a"), expr.LetterExpr("b"), expr.LetterExpr("c")
	e := expr.Add{Terms: []expr.Expr{
		expr.Mul{Factors: []expr.Expr{a, expr.Pow{Base: x, Exp: expr.NumberExpr(2)}}},
		expr.Mul{Factors: []expr.Expr{b, x}},
		c,
	}}
	p, ok := polynomial.FromExpr(e, "x")
	require.True(t, ok)
	assert.Equal(t, 2, p.Degree())
	assert.True(t, expr.Equal(p.Coeffs[2], a))
	assert.True(t, expr.Equal(p.Coeffs[1], b))
	assert.True(t, expr.Equal(p.Coeffs[0], c))
}

func TestPolynomialFromExprRejectsNonPolynomial(t *testing.T) {
	x := expr.LetterExpr("x")
	_, ok := polynomial.FromExpr(expr.Sin{X: x}, "x")
	assert.False(t, ok)

	_, ok = polynomial.FromExpr(expr.Pow{Base: x, Exp: expr.LetterExpr("n")}, "x")
	assert.False(t, ok)
}

func TestIsPolynomialProbe(t *testing.T) {
	x := expr.LetterExpr("x")
	assert.True(t, polynomial.IsPolynomial(expr.Pow{Base: x, Exp: expr.NumberExpr(2)}, "x"))
	assert.False(t, polynomial.IsPolynomial(expr.Sin{X: x}, "x"))
}

func TestPolynomialDivision(t *testing.T) {
	// (x^2 - 1) / (x - 1) = x + 1, remainder 0.
	p := polynomial.Polynomial{Var: "x", Coeffs: []expr.Expr{r(-1, 1), r(0, 1), r(1, 1)}}
	d := polynomial.Polynomial{Var: "x", Coeffs: []expr.Expr{r(-1, 1), r(1, 1)}}
	q, rem, ok := p.Div(d)
	require.True(t, ok)
	assert.True(t, rem.IsZero())
	assert.Equal(t, 1, q.Degree())
	assert.True(t, expr.Equal(q.Coeffs[0], r(1, 1)))
	assert.True(t, expr.Equal(q.Coeffs[1], r(1, 1)))
}

func TestPolynomialGCD(t *testing.T) {
	// gcd(x^2-1, x-1) = x-1 (monic).
	a := polynomial.Polynomial{Var: "x", Coeffs: []expr.Expr{r(-1, 1), r(0, 1), r(1, 1)}}
	b := polynomial.Polynomial{Var: "x", Coeffs: []expr.Expr{r(-1, 1), r(1, 1)}}
	g := polynomial.GCD(a, b)
	assert.Equal(t, 1, g.Degree())
	assert.True(t, expr.Equal(g.LeadingCoeff(), r(1, 1)))
}

func TestPolynomialDifferentiate(t *testing.T) {
	p := polynomial.Polynomial{Var: "x", Coeffs: []expr.Expr{r(2, 1), r(0, 1), r(3, 1)}} // 3x^2 + 2
	d := p.Differentiate()
	assert.Equal(t, 1, d.Degree())
	assert.True(t, expr.Equal(d.Coeffs[1], r(6, 1)))
}

func TestPolynomialIntoMonic(t *testing.T) {
	p := polynomial.Polynomial{Var: "x", Coeffs: []expr.Expr{r(4, 1), r(2, 1)}} // 2x + 4
	monic := p.IntoMonic()
	assert.True(t, expr.Equal(monic.LeadingCoeff(), r(1, 1)))
	assert.True(t, expr.Equal(monic.Coeffs[0], r(2, 1)))
}

func TestSquareFreeFactorizationOfPerfectSquare(t *testing.T) {
	// (x-1)^2 = x^2 - 2x + 1 should report x-1 with multiplicity 2.
	p := polynomial.Polynomial{Var: "x", Coeffs: []expr.Expr{r(1, 1), r(-2, 1), r(1, 1)}}
	factors := p.SquareFreeFactorization()
	require.Len(t, factors, 2)
	assert.True(t, factors[0].IsOne())
	assert.Equal(t, 1, factors[1].Degree())
}
