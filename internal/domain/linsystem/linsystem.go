// Package linsystem implements a linear system of equations over named
// variables: extracting the linear/constant parts of an expression as
// symbolic coefficients, constructing a system from a set of Eq
// expressions (a linearity precondition that panics rather than
// returning an error — see DESIGN.md), and solving via Gaussian
// elimination with partial pivoting, carried out in Expr arithmetic so a
// coefficient that is itself symbolic (e.g. 4*sin(4)) survives the
// whole pipeline. Grounded in original_source's math/equation_system.rs,
// including its embedded worked examples, reproduced here as tests.
package linsystem

import (
	"github.com/fishrambeta/symcas/internal/domain/expr"
	"github.com/fishrambeta/symcas/internal/domain/mathkinds"
	"github.com/fishrambeta/symcas/internal/domain/simplify"
)

// LinearEquationSystem is a dense matrix of coefficients (one row per
// equation, one column per variable in Vars) plus a constant column,
// every entry an Expr rather than a numeric leaf so a system built from
// equations with symbolic coefficients solves without losing them.
type LinearEquationSystem struct {
	Vars         []string
	Coefficients [][]expr.Expr // Coefficients[row][col]
	Constants    []expr.Expr
}

func simp(e expr.Expr) expr.Expr {
	return simplify.SimplifyUntilComplete(e, nil)
}

// LinearPart returns the coefficient of variable v in e — the partial
// derivative of e with respect to v evaluated structurally, relying on e
// being linear (coefficients don't depend on any variable), and
// simplified rather than required to reduce to an exact rational: the
// coefficient of x in 4*x*sin(4) is the symbolic expression 4*sin(4),
// not a failure, matching original_source's worked example. It panics
// (ErrNonlinear) if e is not linear in its variables; callers must
// probe with IsLinear first.
func LinearPart(e expr.Expr, v string) expr.Expr {
	c, ok := linearCoefficient(e, v)
	if !ok {
		panic(mathkinds.ErrNonlinear)
	}
	return simp(c)
}

// ConstantPart returns the constant term of e (the value of e with every
// variable set to zero), again assuming e is linear; the result is
// simplified but not required to be numeric (sin(c) passes through
// untouched if c isn't one of vars).
func ConstantPart(e expr.Expr, vars []string) expr.Expr {
	zeroed := e
	for _, v := range vars {
		zeroed = substituteZero(zeroed, v)
	}
	return simp(zeroed)
}

func substituteZero(e expr.Expr, v string) expr.Expr {
	switch x := e.(type) {
	case expr.Var:
		if letter, ok := x.V.(expr.Letter); ok && letter.Name == v {
			return expr.NumberExpr(0)
		}
		return x
	case expr.Neg:
		return expr.Neg{X: substituteZero(x.X, v)}
	case expr.Add:
		terms := make([]expr.Expr, len(x.Terms))
		for i, t := range x.Terms {
			terms[i] = substituteZero(t, v)
		}
		return expr.Add{Terms: terms}
	case expr.Mul:
		factors := make([]expr.Expr, len(x.Factors))
		for i, f := range x.Factors {
			factors[i] = substituteZero(f, v)
		}
		return expr.Mul{Factors: factors}
	case expr.Div:
		return expr.Div{Num: substituteZero(x.Num, v), Denom: substituteZero(x.Denom, v)}
	default:
		return e
	}
}

// linearCoefficient returns the coefficient of v in e assuming e is a
// linear combination of named variables plus a constant: it recognizes
// Add of terms, and a Mul term in which exactly one factor depends on v
// (that factor's own linear_part, multiplied back against the rest of
// the Mul unevaluated — so a non-exact factor like sin(4) is carried
// through rather than required to evaluate). A Mul with more than one
// factor depending on v (e.g. x*x) is rejected as nonlinear; the
// original's matching algorithm doesn't check for this and silently
// mishandles such terms.
func linearCoefficient(e expr.Expr, v string) (expr.Expr, bool) {
	switch x := e.(type) {
	case expr.Var:
		if letter, ok := x.V.(expr.Letter); ok && letter.Name == v {
			return expr.NumberExpr(1), true
		}
		return expr.NumberExpr(0), true
	case expr.Neg:
		c, ok := linearCoefficient(x.X, v)
		if !ok {
			return nil, false
		}
		return expr.Neg{X: c}, true
	case expr.Add:
		terms := make([]expr.Expr, 0, len(x.Terms))
		for _, t := range x.Terms {
			c, ok := linearCoefficient(t, v)
			if !ok {
				return nil, false
			}
			terms = append(terms, c)
		}
		return expr.Add{Terms: terms}, true
	case expr.Mul:
		idx, count := -1, 0
		for i, f := range x.Factors {
			if containsVar(f, v) {
				idx, count = i, count+1
			}
		}
		if count == 0 {
			return expr.NumberExpr(0), true
		}
		if count > 1 {
			return nil, false // more than one factor depends on v: nonlinear
		}
		c, ok := linearCoefficient(x.Factors[idx], v)
		if !ok {
			return nil, false
		}
		rest := make([]expr.Expr, 0, len(x.Factors))
		for i, f := range x.Factors {
			if i != idx {
				rest = append(rest, f)
			}
		}
		rest = append(rest, c)
		switch len(rest) {
		case 0:
			return expr.NumberExpr(1), true
		case 1:
			return rest[0], true
		default:
			return expr.Mul{Factors: rest}, true
		}
	default:
		if !containsVar(e, v) {
			return expr.NumberExpr(0), true
		}
		return nil, false
	}
}

// containsVar reports whether e mentions the free symbol named v
// anywhere in its tree.
func containsVar(e expr.Expr, v string) bool {
	switch x := e.(type) {
	case expr.Var:
		if letter, ok := x.V.(expr.Letter); ok {
			return letter.Name == v
		}
		return false
	case expr.Neg:
		return containsVar(x.X, v)
	case expr.Add:
		for _, t := range x.Terms {
			if containsVar(t, v) {
				return true
			}
		}
		return false
	case expr.Mul:
		for _, f := range x.Factors {
			if containsVar(f, v) {
				return true
			}
		}
		return false
	case expr.Div:
		return containsVar(x.Num, v) || containsVar(x.Denom, v)
	case expr.Pow:
		return containsVar(x.Base, v) || containsVar(x.Exp, v)
	case expr.Ln:
		return containsVar(x.X, v)
	case expr.Sin:
		return containsVar(x.X, v)
	case expr.Cos:
		return containsVar(x.X, v)
	case expr.Arcsin:
		return containsVar(x.X, v)
	case expr.Arccos:
		return containsVar(x.X, v)
	case expr.Arctan:
		return containsVar(x.X, v)
	case expr.Abs:
		return containsVar(x.X, v)
	default:
		return false
	}
}

// IsLinear reports whether e is linear in every name listed in vars,
// the precondition probe callers run before LinearPart/ConstantPart or
// FromEquations.
func IsLinear(e expr.Expr, vars []string) bool {
	for _, v := range vars {
		if _, ok := linearCoefficient(e, v); !ok {
			return false
		}
	}
	return true
}

// FromEquations builds a system from a list of (LHS, RHS) equation pairs
// over vars, each rewritten as LHS-RHS = 0 before extracting coefficients.
// It panics with mathkinds.ErrNonlinear if any equation fails the
// linearity precondition — callers must call IsLinear first on each side.
func FromEquations(equations []expr.Eq, vars []string) LinearEquationSystem {
	sys := LinearEquationSystem{Vars: vars}
	for _, eq := range equations {
		diff := expr.Add{Terms: []expr.Expr{eq.LHS, expr.Neg{X: eq.RHS}}}
		row := make([]expr.Expr, len(vars))
		for i, v := range vars {
			row[i] = LinearPart(diff, v)
		}
		constant := ConstantPart(diff, vars)
		sys.Coefficients = append(sys.Coefficients, row)
		sys.Constants = append(sys.Constants, simp(expr.Neg{X: constant}))
	}
	return sys
}

// isZero reports whether e is (or simplifies to) the number zero. A pivot
// that is already a number is checked directly; a pivot that may be
// genuinely symbolic (e.g. sin(4)) is simplified and matched structurally
// against the literal 0, the same test original_source's solve() makes
// (`a[r][r] == Equation::Variable(Variable::Integer(0))`).
func isZero(e expr.Expr) bool {
	if n, ok := expr.GetNumberOrNone(e); ok {
		return n.IsZero()
	}
	return expr.Equal(simp(e), expr.NumberExpr(0))
}

// Solve runs Gauss-Jordan elimination with partial pivoting over Expr
// arithmetic (every elementary row operation goes through simplify), and
// reads each unknown off the fully reduced diagonal by dividing the
// constant column by the pivot. It returns mathkinds.ErrUnsolvable if
// the system is singular (a zero pivot column that can't be fixed by
// swapping) or under/over-determined.
func (s LinearEquationSystem) Solve() ([]expr.Expr, error) {
	n := len(s.Vars)
	if len(s.Coefficients) != n {
		return nil, mathkinds.ErrUnsolvable
	}

	rows := make([][]expr.Expr, n)
	for i := range rows {
		row := make([]expr.Expr, n+1)
		copy(row, s.Coefficients[i])
		row[n] = s.Constants[i]
		rows[i] = row
	}

	for col := 0; col < n; col++ {
		pivot := -1
		for r := col; r < n; r++ {
			if !isZero(rows[r][col]) {
				pivot = r
				break
			}
		}
		if pivot == -1 {
			return nil, mathkinds.ErrUnsolvable
		}
		rows[col], rows[pivot] = rows[pivot], rows[col]

		pivotVal := rows[col][col]
		for r := 0; r < n; r++ {
			if r == col || isZero(rows[r][col]) {
				continue
			}
			factor := simp(expr.Neg{X: expr.Div{Num: rows[r][col], Denom: pivotVal}})
			for c := col; c <= n; c++ {
				rows[r][c] = simp(expr.Add{Terms: []expr.Expr{
					rows[r][c],
					expr.Mul{Factors: []expr.Expr{rows[col][c], factor}},
				}})
			}
		}
	}

	result := make([]expr.Expr, n)
	for i := 0; i < n; i++ {
		result[i] = simp(expr.Div{Num: rows[i][n], Denom: rows[i][i]})
	}
	return result, nil
}
