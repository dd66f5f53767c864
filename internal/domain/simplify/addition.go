package simplify

import "github.com/fishrambeta/symcas/internal/domain/expr"

// simplifyAdd flattens nested Add, collects like terms by their
// non-numeric "base" (summing their numeric coefficients), applies the
// sin^2(x)+cos^2(x) = 1 identity, sums the numeric terms into one, and
// collapses the result to the canonical Add/single-term/Integer(0) shape.
// Grounded in original_source's math/simplify/addition.rs.
func simplifyAdd(terms []expr.Expr) expr.Expr {
	flat := flattenAdd(terms)

	order := []string{}
	buckets := map[string]*bucket{}
	numeric := expr.Rational{P: 0, Q: 1}

	for _, t := range flat {
		if n, ok := expr.GetNumberOrNone(t); ok {
			numeric = numeric.Add(n)
			continue
		}
		coeff, rest := splitCoefficient(t)
		key := expr.Key(rest)
		if b, ok := buckets[key]; ok {
			b.coeff = b.coeff.Add(coeff)
		} else {
			buckets[key] = &bucket{coeff: coeff, rest: rest}
			order = append(order, key)
		}
	}

	numeric = numeric.Add(collapsePythagoreanIdentity(buckets))

	var termsOut []expr.Expr
	for _, key := range order {
		b := buckets[key]
		if b.coeff.IsZero() {
			continue
		}
		if b.coeff.IsOne() {
			termsOut = append(termsOut, b.rest)
			continue
		}
		termsOut = append(termsOut, expr.Mul{Factors: []expr.Expr{expr.RationalExpr(b.coeff), b.rest}})
	}

	var out []expr.Expr
	if !numeric.IsZero() {
		out = append(out, expr.RationalExpr(numeric))
	}
	out = append(out, termsOut...)

	expr.SortExprs(out)
	switch len(out) {
	case 0:
		return expr.NumberExpr(0)
	case 1:
		return out[0]
	default:
		return expr.Add{Terms: out}
	}
}

// bucket accumulates every flattened addend whose non-numeric part (rest)
// is structurally identical, summing their numeric coefficients as they're
// found.
type bucket struct {
	coeff expr.Rational
	rest  expr.Expr
}

func flattenAdd(terms []expr.Expr) []expr.Expr {
	var out []expr.Expr
	for _, t := range terms {
		if a, ok := t.(expr.Add); ok {
			out = append(out, flattenAdd(a.Terms)...)
		} else {
			out = append(out, t)
		}
	}
	return out
}

// splitCoefficient separates a numeric coefficient from the rest of a
// multiplicative term, so "3*x" and "x" collect into the same bucket.
func splitCoefficient(t expr.Expr) (expr.Rational, expr.Expr) {
	switch v := t.(type) {
	case expr.Neg:
		c, rest := splitCoefficient(v.X)
		return c.Neg(), rest
	case expr.Mul:
		var numericIdx = -1
		var coeff expr.Rational
		for i, f := range v.Factors {
			if n, ok := expr.GetNumberOrNone(f); ok && numericIdx == -1 {
				numericIdx = i
				coeff = n
			}
		}
		if numericIdx == -1 {
			return expr.Rational{P: 1, Q: 1}, t
		}
		rest := make([]expr.Expr, 0, len(v.Factors)-1)
		for i, f := range v.Factors {
			if i == numericIdx {
				continue
			}
			rest = append(rest, f)
		}
		switch len(rest) {
		case 0:
			return coeff, expr.NumberExpr(1)
		case 1:
			return coeff, rest[0]
		default:
			return coeff, expr.Mul{Factors: rest}
		}
	default:
		return expr.Rational{P: 1, Q: 1}, t
	}
}

// collapsePythagoreanIdentity walks the coefficient buckets looking for a
// sin(y)^2 bucket and a cos(y)^2 bucket sharing the same argument y, and
// for each such pair collapses min(sinCoeff, cosCoeff) pairs of the
// identity sin^2(y)+cos^2(y) = 1, debiting that amount from both buckets'
// coefficients (a bucket whose coefficient reaches zero is then skipped
// when simplifyAdd rebuilds the sum, same as any other cancelled term) and
// returning the total folded
// into the numeric accumulator. Operating on the bucket's coefficient
// directly (rather than scanning for bare, coefficient-1 terms) is what
// lets "2*sin(x)^2 + 2*cos(x)^2" collapse to "2": both terms reach this
// function already folded into a single Mul-wrapped bucket per key, with
// coefficient 2, not as two separate bare Pow terms. Grounded in
// original_source's addition simplifier special-casing this identity.
func collapsePythagoreanIdentity(buckets map[string]*bucket) expr.Rational {
	sinByArg := map[string]string{}
	cosByArg := map[string]string{}
	for key, b := range buckets {
		p, ok := b.rest.(expr.Pow)
		if !ok {
			continue
		}
		if n, ok := expr.GetIntegerOrNone(p.Exp); !ok || n != 2 {
			continue
		}
		switch base := p.Base.(type) {
		case expr.Sin:
			sinByArg[expr.Key(base.X)] = key
		case expr.Cos:
			cosByArg[expr.Key(base.X)] = key
		}
	}

	total := expr.Rational{P: 0, Q: 1}
	for argKey, sinKey := range sinByArg {
		cosKey, ok := cosByArg[argKey]
		if !ok {
			continue
		}
		sinBucket, cosBucket := buckets[sinKey], buckets[cosKey]
		pairs, ok := minPositiveRational(sinBucket.coeff, cosBucket.coeff)
		if !ok {
			continue
		}
		sinBucket.coeff = sinBucket.coeff.Sub(pairs)
		cosBucket.coeff = cosBucket.coeff.Sub(pairs)
		total = total.Add(pairs)
	}
	return total
}

// minPositiveRational returns the smaller of a and b, or ok=false if
// either is zero or negative — the identity only makes sense as a count of
// whole sin^2/cos^2 pairs to remove, not as a rule for arbitrary-signed
// coefficients.
func minPositiveRational(a, b expr.Rational) (expr.Rational, bool) {
	if a.IsZero() || a.P < 0 || b.IsZero() || b.P < 0 {
		return expr.Rational{}, false
	}
	if a.P*b.Q <= b.P*a.Q {
		return a, true
	}
	return b, true
}
