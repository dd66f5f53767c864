package numeric_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fishrambeta/symcas/internal/domain/expr"
	"github.com/fishrambeta/symcas/internal/domain/mathkinds"
	"github.com/fishrambeta/symcas/internal/domain/numeric"
	"github.com/fishrambeta/symcas/internal/domain/physvalues"
)

func TestCalculateArithmetic(t *testing.T) {
	x := expr.LetterExpr("x")
	e := expr.Add{Terms: []expr.Expr{
		expr.Mul{Factors: []expr.Expr{expr.NumberExpr(2), x}},
		expr.NumberExpr(1),
	}}
	v, err := numeric.Calculate(e, nil, map[string]float64{"x": 3})
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)
}

func TestCalculateUsesPhysicalConstantsTable(t *testing.T) {
	c := expr.LetterExpr("c")
	v, err := numeric.Calculate(c, physvalues.Standard(), nil)
	require.NoError(t, err)
	assert.Equal(t, 299792458.0, v)
}

func TestCalculateOverridesTakePriorityOverTable(t *testing.T) {
	g := expr.LetterExpr("g")
	v, err := numeric.Calculate(g, physvalues.Standard(), map[string]float64{"g": 1.62})
	require.NoError(t, err)
	assert.Equal(t, 1.62, v)
}

func TestCalculateMissingValueFails(t *testing.T) {
	x := expr.LetterExpr("x")
	_, err := numeric.Calculate(x, nil, nil)
	assert.ErrorIs(t, err, mathkinds.ErrMissingValue)
}

func TestCalculateDivisionByZero(t *testing.T) {
	e := expr.Div{Num: expr.NumberExpr(1), Denom: expr.NumberExpr(0)}
	_, err := numeric.Calculate(e, nil, nil)
	assert.ErrorIs(t, err, mathkinds.ErrDivisionByZero)
}

func TestCalculateEqIsUnsupported(t *testing.T) {
	e := expr.Eq{LHS: expr.NumberExpr(1), RHS: expr.NumberExpr(1)}
	_, err := numeric.Calculate(e, nil, nil)
	assert.True(t, errors.Is(err, mathkinds.ErrUnsupportedOperation))
}

func TestCalculateTranscendentals(t *testing.T) {
	e := expr.Sin{X: expr.ConstantExpr(expr.Pi)}
	v, err := numeric.Calculate(e, nil, nil)
	require.NoError(t, err)
	assert.InDelta(t, 0, v, 1e-9)

	e2 := expr.Ln{X: expr.ConstantExpr(expr.E)}
	v2, err := numeric.Calculate(e2, nil, nil)
	require.NoError(t, err)
	assert.InDelta(t, 1, v2, 1e-9)
}
