// Package factors implements the multiplicative-factor utilities the
// division simplifier and the polynomial layer use to cancel common
// terms: decomposing a product into its atomic factors, testing and
// removing occurrences of a factor, and finding factors shared between
// two expressions. Grounded in original_source's math/factors.rs.
package factors

import "github.com/fishrambeta/symcas/internal/domain/expr"

// GetAllFactors decomposes e into its multiplicative atoms. Mul flattens
// into its members; Pow with a positive integer exponent repeats its base
// that many times; anything else is a single atom.
func GetAllFactors(e expr.Expr) []expr.Expr {
	switch v := e.(type) {
	case expr.Mul:
		var out []expr.Expr
		for _, f := range v.Factors {
			out = append(out, GetAllFactors(f)...)
		}
		return out
	case expr.Pow:
		if n, ok := expr.GetIntegerOrNone(v.Exp); ok && n >= 1 {
			var out []expr.Expr
			for i := int64(0); i < n; i++ {
				out = append(out, v.Base)
			}
			return out
		}
		return []expr.Expr{e}
	default:
		return []expr.Expr{e}
	}
}

// GetFactors returns how many times factor occurs atomically in e.
func GetFactors(e expr.Expr, factor expr.Expr) int {
	return CountFactor(GetAllFactors(e), factor)
}

// CountFactor counts occurrences of factor within an already decomposed
// atom list; exported so callers that decompose once (e.g. the division
// simplifier comparing numerator and denominator) don't redo it.
func CountFactor(atoms []expr.Expr, factor expr.Expr) int {
	count := 0
	for _, a := range atoms {
		if expr.Equal(a, factor) {
			count++
		}
	}
	return count
}

// HasFactor reports whether factor divides e: structurally (e equals
// factor, or e is a Mul with a member that has it, a Pow whose base is
// exactly factor, or a Neg whose operand has it), across every addend at
// once for an Add (factors.rs's "all addends have f as a factor" case),
// or numerically (factor is a nonzero integer and e's integer content is
// divisible by it, e.g. HasFactor(6*x, 3) via integerContent(6*x)=6).
// Grounded in original_source's has_factor/gcd.
func HasFactor(e expr.Expr, factor expr.Expr) bool {
	if expr.Equal(e, factor) {
		return true
	}
	if n, ok := expr.GetIntegerOrNone(factor); ok && n != 0 {
		if integerContent(e)%n == 0 {
			return true
		}
	}
	switch v := e.(type) {
	case expr.Neg:
		return HasFactor(v.X, factor)
	case expr.Mul:
		for _, f := range v.Factors {
			if HasFactor(f, factor) {
				return true
			}
		}
		return false
	case expr.Pow:
		return expr.Equal(v.Base, factor)
	case expr.Add:
		for _, t := range v.Terms {
			if !HasFactor(t, factor) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// integerContent is the integer analogue of a gcd: the product of an
// expression's integer leaves through Mul, the gcd of its addends'
// contents through Add, the gcd of numerator/denominator through Div, and
// 1 (the multiplicative identity, meaning "no integer factor found") for
// anything else, including non-integer leaves. Absolute value is taken so
// HasFactor's modulo check never has to reason about Go's signed-%
// semantics; divisibility itself is sign-invariant. Grounded in
// original_source's Equation::gcd.
func integerContent(e expr.Expr) int64 {
	if n, ok := expr.GetIntegerOrNone(e); ok {
		if n == 0 {
			return 1
		}
		return abs64(n)
	}
	switch v := e.(type) {
	case expr.Add:
		content := int64(1)
		first := true
		for _, t := range v.Terms {
			c := integerContent(t)
			if first {
				content, first = c, false
			} else {
				content = gcd64(content, c)
			}
		}
		return content
	case expr.Mul:
		content := int64(1)
		for _, f := range v.Factors {
			content *= integerContent(f)
		}
		return content
	case expr.Div:
		return gcd64(integerContent(v.Num), integerContent(v.Denom))
	default:
		return 1
	}
}

func abs64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

func gcd64(a, b int64) int64 {
	a, b = abs64(a), abs64(b)
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

// SharedFactors returns the factors that divide both a and b: atoms that
// appear in both's Mul/Pow decomposition (with multiplicity equal to the
// smaller of the two occurrence counts — what numerator/denominator
// cancellation needs for repeated atoms like x*x), factors that divide
// one side structurally without being a literal atom of it (e.g. x
// dividing every addend of x*y+x*z, discovered via HasFactor rather than
// atom equality, so it's only ever offered once), and the integer content
// shared by both sides (e.g. gcd(6*x, 9) = 3) even when neither side
// carries that integer as its own atom.
func SharedFactors(a, b expr.Expr) []expr.Expr {
	atomsA := GetAllFactors(a)
	atomsB := GetAllFactors(b)
	seen := map[string]bool{}
	var shared []expr.Expr

	for _, atom := range atomsA {
		key := expr.Key(atom)
		if seen[key] {
			continue
		}
		seen[key] = true
		n := CountFactor(atomsA, atom)
		m := CountFactor(atomsB, atom)
		pairs := n
		if m < pairs {
			pairs = m
		}
		for i := 0; i < pairs; i++ {
			shared = append(shared, atom)
		}
	}

	for _, atom := range append(append([]expr.Expr{}, atomsA...), atomsB...) {
		key := expr.Key(atom)
		if seen[key] {
			continue
		}
		seen[key] = true
		if HasFactor(a, atom) && HasFactor(b, atom) {
			shared = append(shared, atom)
		}
	}

	if g := gcd64(integerContent(a), integerContent(b)); g > 1 {
		shared = append(shared, expr.NumberExpr(g))
	}

	return shared
}

// RemoveFactor removes a single occurrence of factor from e, rebuilding a
// Mul/Pow/Add/leaf as appropriate. If e does not contain factor, e is
// returned unchanged. Grounded in original_source's remove_factor.
func RemoveFactor(e expr.Expr, factor expr.Expr) expr.Expr {
	if !HasFactor(e, factor) {
		return e
	}
	if expr.Equal(e, factor) {
		return expr.NumberExpr(1)
	}

	switch v := e.(type) {
	case expr.Neg:
		return expr.Neg{X: RemoveFactor(v.X, factor)}
	case expr.Mul:
		out := make([]expr.Expr, len(v.Factors))
		removed := false
		for i, f := range v.Factors {
			if !removed && HasFactor(f, factor) {
				out[i] = RemoveFactor(f, factor)
				removed = true
			} else {
				out[i] = f
			}
		}
		if removed {
			return expr.Mul{Factors: out}
		}
	case expr.Pow:
		if expr.Equal(v.Base, factor) {
			return expr.Pow{Base: v.Base, Exp: expr.Add{Terms: []expr.Expr{v.Exp, expr.NumberExpr(-1)}}}
		}
	case expr.Add:
		terms := make([]expr.Expr, len(v.Terms))
		for i, t := range v.Terms {
			terms[i] = RemoveFactor(t, factor)
		}
		return expr.Add{Terms: terms}
	}

	if n, ok := expr.GetIntegerOrNone(e); ok {
		if m, ok := expr.GetIntegerOrNone(factor); ok && m != 0 && n%m == 0 {
			return expr.NumberExpr(n / m)
		}
	}
	return e
}

func rebuild(atoms []expr.Expr) expr.Expr {
	switch len(atoms) {
	case 0:
		return expr.NumberExpr(1)
	case 1:
		return atoms[0]
	default:
		return expr.Mul{Factors: atoms}
	}
}

// GCD returns the product of the factors shared between a and b (the
// multiplicative greatest common divisor of two already-factorable
// expressions), or the integer 1 if they share nothing.
func GCD(a, b expr.Expr) expr.Expr {
	shared := SharedFactors(a, b)
	return rebuild(shared)
}
