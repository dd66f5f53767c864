// Package polynomial implements univariate polynomials over an
// Expr-valued coefficient ring: construction from/to an expr.Expr, long
// division, Euclidean GCD, and Yun's square-free factorization. Every
// coefficient is simplified as it's produced, so coefficients that
// happen to be exact rationals collapse the way they always did, while
// coefficients that stay symbolic (an unevaluated constant, a second
// variable) are carried through arithmetic unevaluated. Grounded in
// original_source's math/polynomial.rs, whose own Polynomial wraps
// Vec<Equation> (Expr-valued terms), not a numeric leaf type.
package polynomial

import (
	"github.com/fishrambeta/symcas/internal/domain/expr"
	"github.com/fishrambeta/symcas/internal/domain/mathkinds"
	"github.com/fishrambeta/symcas/internal/domain/simplify"
)

// Polynomial holds coefficients lowest-degree first: Coeffs[i] is the
// coefficient of Var^i.
type Polynomial struct {
	Var    string
	Coeffs []expr.Expr
}

func simp(e expr.Expr) expr.Expr {
	return simplify.SimplifyUntilComplete(e, nil)
}

func isZeroCoeff(e expr.Expr) bool {
	if n, ok := expr.GetNumberOrNone(e); ok {
		return n.IsZero()
	}
	return false
}

func isOneCoeff(e expr.Expr) bool {
	if n, ok := expr.GetNumberOrNone(e); ok {
		return n.IsOne()
	}
	return false
}

// Zero returns the zero polynomial in v.
func Zero(v string) Polynomial {
	return Polynomial{Var: v, Coeffs: []expr.Expr{expr.NumberExpr(0)}}
}

// One returns the constant polynomial 1 in v.
func One(v string) Polynomial {
	return Polynomial{Var: v, Coeffs: []expr.Expr{expr.NumberExpr(1)}}
}

// Constant returns the constant polynomial c in v.
func Constant(v string, c expr.Expr) Polynomial {
	return Polynomial{Var: v, Coeffs: []expr.Expr{simp(c)}}
}

// SingleTerm returns the polynomial c * v^degree.
func SingleTerm(v string, c expr.Expr, degree int) Polynomial {
	coeffs := make([]expr.Expr, degree+1)
	for i := range coeffs {
		coeffs[i] = expr.NumberExpr(0)
	}
	coeffs[degree] = simp(c)
	return Polynomial{Var: v, Coeffs: coeffs}
}

// simplify drops trailing zero coefficients so Degree reports the
// true degree rather than an over-allocated one.
func (p Polynomial) simplify() Polynomial {
	c := p.Coeffs
	for len(c) > 1 && isZeroCoeff(c[len(c)-1]) {
		c = c[:len(c)-1]
	}
	return Polynomial{Var: p.Var, Coeffs: c}
}

// Degree returns the polynomial's degree; the zero polynomial has degree 0.
func (p Polynomial) Degree() int {
	p = p.simplify()
	return len(p.Coeffs) - 1
}

// IsZero reports whether every coefficient is zero.
func (p Polynomial) IsZero() bool {
	p = p.simplify()
	return len(p.Coeffs) == 1 && isZeroCoeff(p.Coeffs[0])
}

// IsOne reports whether p is the constant polynomial 1.
func (p Polynomial) IsOne() bool {
	p = p.simplify()
	return len(p.Coeffs) == 1 && isOneCoeff(p.Coeffs[0])
}

// LeadingCoeff returns the coefficient of the highest-degree term.
func (p Polynomial) LeadingCoeff() expr.Expr {
	p = p.simplify()
	return p.Coeffs[len(p.Coeffs)-1]
}

// Add returns p + q.
func (p Polynomial) Add(q Polynomial) Polynomial {
	n := len(p.Coeffs)
	if len(q.Coeffs) > n {
		n = len(q.Coeffs)
	}
	out := make([]expr.Expr, n)
	for i := 0; i < n; i++ {
		a, b := expr.Expr(expr.NumberExpr(0)), expr.Expr(expr.NumberExpr(0))
		if i < len(p.Coeffs) {
			a = p.Coeffs[i]
		}
		if i < len(q.Coeffs) {
			b = q.Coeffs[i]
		}
		out[i] = simp(expr.Add{Terms: []expr.Expr{a, b}})
	}
	return Polynomial{Var: p.Var, Coeffs: out}.simplify()
}

// Sub returns p - q.
func (p Polynomial) Sub(q Polynomial) Polynomial {
	return p.Add(q.Neg())
}

// Neg returns -p.
func (p Polynomial) Neg() Polynomial {
	out := make([]expr.Expr, len(p.Coeffs))
	for i, c := range p.Coeffs {
		out[i] = simp(expr.Neg{X: c})
	}
	return Polynomial{Var: p.Var, Coeffs: out}
}

// Mul returns p * q via convolution.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	out := make([]expr.Expr, len(p.Coeffs)+len(q.Coeffs)-1)
	for i := range out {
		out[i] = expr.NumberExpr(0)
	}
	for i, a := range p.Coeffs {
		for j, b := range q.Coeffs {
			out[i+j] = simp(expr.Add{Terms: []expr.Expr{out[i+j], expr.Mul{Factors: []expr.Expr{a, b}}}})
		}
	}
	return Polynomial{Var: p.Var, Coeffs: out}.simplify()
}

// Differentiate returns dp/dvar.
func (p Polynomial) Differentiate() Polynomial {
	p = p.simplify()
	if len(p.Coeffs) <= 1 {
		return Zero(p.Var)
	}
	out := make([]expr.Expr, len(p.Coeffs)-1)
	for i := 1; i < len(p.Coeffs); i++ {
		out[i-1] = simp(expr.Mul{Factors: []expr.Expr{p.Coeffs[i], expr.NumberExpr(int64(i))}})
	}
	return Polynomial{Var: p.Var, Coeffs: out}.simplify()
}

// IntoMonic divides every coefficient by the leading coefficient so the
// polynomial becomes monic. Panics if p is the zero polynomial, matching
// the original's precondition that IntoMonic is only called on nonzero
// polynomials (a caller bug otherwise).
func (p Polynomial) IntoMonic() Polynomial {
	if p.IsZero() {
		panic("polynomial: IntoMonic of the zero polynomial")
	}
	lead := p.LeadingCoeff()
	out := make([]expr.Expr, len(p.Coeffs))
	for i, c := range p.Coeffs {
		out[i] = simp(expr.Div{Num: c, Denom: lead})
	}
	return Polynomial{Var: p.Var, Coeffs: out}
}

// Div performs polynomial long division, returning quotient and
// remainder such that p = quotient*divisor + remainder. ok is false if
// divisor is the zero polynomial.
func (p Polynomial) Div(divisor Polynomial) (quotient, remainder Polynomial, ok bool) {
	if divisor.IsZero() {
		return Polynomial{}, Polynomial{}, false
	}
	remainder = p.simplify()
	quotient = Zero(p.Var)
	divDeg := divisor.Degree()
	divLead := divisor.LeadingCoeff()

	for !remainder.IsZero() && remainder.Degree() >= divDeg {
		degDiff := remainder.Degree() - divDeg
		coeff := simp(expr.Div{Num: remainder.LeadingCoeff(), Denom: divLead})
		term := SingleTerm(p.Var, coeff, degDiff)
		quotient = quotient.Add(term)
		remainder = remainder.Sub(term.Mul(divisor))
	}
	return quotient, remainder.simplify(), true
}

// GCD computes the Euclidean-algorithm greatest common divisor of a and
// b, returned in monic form (or the zero polynomial if both inputs are
// zero).
func GCD(a, b Polynomial) Polynomial {
	a, b = a.simplify(), b.simplify()
	for !b.IsZero() {
		_, r, _ := a.Div(b)
		a, b = b, r
	}
	if a.IsZero() {
		return a
	}
	return a.IntoMonic()
}

// SquareFreeFactorization factors p into squarefree components using
// Yun's algorithm: repeatedly dividing out the gcd of p and its
// derivative. It returns the factors in increasing multiplicity order
// (factors[i] has multiplicity i+1); the trailing constant cofactor is
// folded into the first factor.
func (p Polynomial) SquareFreeFactorization() []Polynomial {
	p = p.simplify()
	if p.IsZero() || p.Degree() == 0 {
		return []Polynomial{p}
	}

	pPrime := p.Differentiate()
	g := GCD(p, pPrime)
	cQuot, _, _ := p.Div(g)
	dQuot, _, _ := pPrime.Div(g)

	var factors []Polynomial
	c, d := cQuot, dQuot
	for c.Degree() > 0 {
		dMinusCPrime := d.Sub(c.Differentiate())
		y := GCD(c, dMinusCPrime)
		factors = append(factors, y)
		c, _, _ = c.Div(y)
		d, _, _ = dMinusCPrime.Div(y)
	}
	if len(factors) == 0 {
		return []Polynomial{p}
	}
	if !c.IsOne() {
		factors[0] = factors[0].Mul(c)
	}
	return factors
}

// FromExpr converts e into a Polynomial in variable v. ok is false (and
// the zero value is returned) if e is not a polynomial in v — callers
// that have already validated polynomial-ness via a prior IsPolynomial
// probe are the only ones expected to ignore ok; a caller that
// constructs from an un-probed expression and gets ok==false has
// violated the mathkinds.ErrNonpolynomial precondition. A term that
// doesn't mention v at all (e.g. "a", "sin(c)") is a legitimate constant
// coefficient even when it has no exact rational value — only terms that
// mention v in a non-polynomial shape (v inside a Sin, a negative or
// fractional exponent of v, ...) are rejected.
func FromExpr(e expr.Expr, v string) (Polynomial, bool) {
	switch x := e.(type) {
	case expr.Var:
		if letter, ok := x.V.(expr.Letter); ok && letter.Name == v {
			return SingleTerm(v, expr.NumberExpr(1), 1), true
		}
		return Constant(v, e), true
	case expr.Neg:
		inner, ok := FromExpr(x.X, v)
		if !ok {
			return Polynomial{}, false
		}
		return inner.Neg(), true
	case expr.Add:
		acc := Zero(v)
		for _, t := range x.Terms {
			term, ok := FromExpr(t, v)
			if !ok {
				return Polynomial{}, false
			}
			acc = acc.Add(term)
		}
		return acc, true
	case expr.Mul:
		acc := One(v)
		for _, f := range x.Factors {
			term, ok := FromExpr(f, v)
			if !ok {
				return Polynomial{}, false
			}
			acc = acc.Mul(term)
		}
		return acc, true
	case expr.Pow:
		if containsVar(x.Base, v) {
			n, ok := expr.GetIntegerOrNone(x.Exp)
			if !ok || n < 0 {
				return Polynomial{}, false
			}
			base, ok := FromExpr(x.Base, v)
			if !ok {
				return Polynomial{}, false
			}
			acc := One(v)
			for i := int64(0); i < n; i++ {
				acc = acc.Mul(base)
			}
			return acc, true
		}
		if containsVar(x.Exp, v) {
			return Polynomial{}, false
		}
		return Constant(v, e), true
	default:
		if containsVar(e, v) {
			return Polynomial{}, false
		}
		return Constant(v, e), true
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

// IsPolynomial reports whether e is a polynomial in v, the precondition
// probe callers run before MustFromExpr.
func IsPolynomial(e expr.Expr, v string) bool {
	_, ok := FromExpr(e, v)
	return ok
}

// MustFromExpr is FromExpr but panics with the mathkinds.ErrNonpolynomial
// error value when e is not a polynomial in v. It exists for
// callers (e.g. the CLI's --mode factor) that already probed
// polynomial-ness via IsPolynomial and treat failure here as a
// programmer error.
func MustFromExpr(e expr.Expr, v string) Polynomial {
	p, ok := FromExpr(e, v)
	if !ok {
		panic(mathkinds.ErrNonpolynomial)
	}
	return p
}

// IntoExpr rebuilds an expr.Expr from the polynomial's coefficients.
func (p Polynomial) IntoExpr() expr.Expr {
	p = p.simplify()
	var terms []expr.Expr
	for i, c := range p.Coeffs {
		if isZeroCoeff(c) {
			continue
		}
		switch i {
		case 0:
			terms = append(terms, c)
		case 1:
			if isOneCoeff(c) {
				terms = append(terms, expr.LetterExpr(p.Var))
			} else {
				terms = append(terms, expr.Mul{Factors: []expr.Expr{c, expr.LetterExpr(p.Var)}})
			}
		default:
			power := expr.Pow{Base: expr.LetterExpr(p.Var), Exp: expr.NumberExpr(int64(i))}
			if isOneCoeff(c) {
				terms = append(terms, power)
			} else {
				terms = append(terms, expr.Mul{Factors: []expr.Expr{c, power}})
			}
		}
	}
	if len(terms) == 0 {
		return expr.NumberExpr(0)
	}
	if len(terms) == 1 {
		return terms[0]
	}
	return expr.Add{Terms: terms}
}
