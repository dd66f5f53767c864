package expr

import "fmt"

// Rational is an exact fraction P/Q held as a pair of 64-bit integers.
// Spec.md's Non-goals exclude arbitrary-precision arithmetic, so this
// deliberately does not use math/big (see DESIGN.md).
type Rational struct {
	P, Q int64
}

func (Rational) expr()     {}
func (Rational) variable() {}

// NewRational builds a reduced rational with a positive denominator. It
// panics if q is zero, matching the teacher's convention of panicking on
// programmer-error inputs rather than threading an error through a
// constructor that every call site treats as infallible.
func NewRational(p, q int64) Rational {
	if q == 0 {
		panic("expr: rational with zero denominator")
	}
	if q < 0 {
		p, q = -p, -q
	}
	g := gcd64(abs64(p), q)
	if g == 0 {
		g = 1
	}
	return Rational{P: p / g, Q: q / g}
}

func abs64(a int64) int64 {
	if a < 0 {
		return -a
	}
	return a
}

func gcd64(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// IsInteger reports whether r reduces to a whole number.
func (r Rational) IsInteger() bool {
	return r.Q == 1
}

// Float64 converts r to a floating point approximation.
func (r Rational) Float64() float64 {
	return float64(r.P) / float64(r.Q)
}

func (r Rational) Add(o Rational) Rational {
	return NewRational(r.P*o.Q+o.P*r.Q, r.Q*o.Q)
}

func (r Rational) Sub(o Rational) Rational {
	return NewRational(r.P*o.Q-o.P*r.Q, r.Q*o.Q)
}

func (r Rational) Mul(o Rational) Rational {
	return NewRational(r.P*o.P, r.Q*o.Q)
}

// Div divides r by o. ok is false if o is zero.
func (r Rational) Div(o Rational) (result Rational, ok bool) {
	if o.P == 0 {
		return Rational{}, false
	}
	return NewRational(r.P*o.Q, r.Q*o.P), true
}

func (r Rational) Neg() Rational {
	return Rational{P: -r.P, Q: r.Q}
}

func (r Rational) IsZero() bool { return r.P == 0 }
func (r Rational) IsOne() bool  { return r.P == r.Q }

func (r Rational) String() string {
	if r.Q == 1 {
		return fmt.Sprintf("%d", r.P)
	}
	return fmt.Sprintf("%d/%d", r.P, r.Q)
}

// RationalFromDecimal converts a finite decimal literal such as "3.14"
// into an exact Rational (157/50), the way original_source's parser turns
// decimal LaTeX literals into Rational64 rather than a float.
func RationalFromDecimal(intPart, fracDigits int64, fracLen int) Rational {
	den := int64(1)
	for i := 0; i < fracLen; i++ {
		den *= 10
	}
	sign := int64(1)
	if intPart < 0 {
		sign = -1
		intPart = -intPart
	}
	p := sign * (intPart*den + fracDigits)
	return NewRational(p, den)
}
