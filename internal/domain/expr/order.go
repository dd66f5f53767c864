package expr

import (
	"fmt"
	"sort"
	"strings"
)

// rank gives each Expr/Variable kind a fixed position in the total order,
// mirroring the BTreeMap key ordering original_source relies on for
// deterministic term collection (math/simplify/addition.rs,
// multiplication.rs).
func rank(e Expr) int {
	switch e.(type) {
	case Integer:
		return 0
	case Rational:
		return 1
	case Constant:
		return 2
	case Letter:
		return 3
	case Vector:
		return 4
	case Var:
		return 4
	case Neg:
		return 5
	case Add:
		return 6
	case Mul:
		return 7
	case Div:
		return 8
	case Pow:
		return 9
	case Ln:
		return 10
	case Sin:
		return 11
	case Cos:
		return 12
	case Arcsin:
		return 13
	case Arccos:
		return 14
	case Arctan:
		return 15
	case Abs:
		return 16
	case Eq:
		return 17
	default:
		return 99
	}
}

// Less defines a total order over Expr so associative-container keys
// (addition/multiplication term collection, sorted printing) have a
// deterministic iteration order.
func Less(a, b Expr) bool {
	ra, rb := rank(a), rank(b)
	if ra != rb {
		return ra < rb
	}
	switch av := a.(type) {
	case Integer:
		return av.Value < b.(Integer).Value
	case Rational:
		bv := b.(Rational)
		return av.Float64() < bv.Float64()
	case Constant:
		return av.Kind < b.(Constant).Kind
	case Letter:
		return av.Name < b.(Letter).Name
	case Vector:
		return av.Name < b.(Vector).Name
	case Var:
		return Less(Expr(av.V), Expr(b.(Var).V))
	case Neg:
		return Less(av.X, b.(Neg).X)
	case Add:
		return lessSlice(av.Terms, b.(Add).Terms)
	case Mul:
		return lessSlice(av.Factors, b.(Mul).Factors)
	case Div:
		bv := b.(Div)
		if !Equal(av.Num, bv.Num) {
			return Less(av.Num, bv.Num)
		}
		return Less(av.Denom, bv.Denom)
	case Pow:
		bv := b.(Pow)
		if !Equal(av.Base, bv.Base) {
			return Less(av.Base, bv.Base)
		}
		return Less(av.Exp, bv.Exp)
	case Ln:
		return Less(av.X, b.(Ln).X)
	case Sin:
		return Less(av.X, b.(Sin).X)
	case Cos:
		return Less(av.X, b.(Cos).X)
	case Arcsin:
		return Less(av.X, b.(Arcsin).X)
	case Arccos:
		return Less(av.X, b.(Arccos).X)
	case Arctan:
		return Less(av.X, b.(Arctan).X)
	case Abs:
		return Less(av.X, b.(Abs).X)
	case Eq:
		bv := b.(Eq)
		if !Equal(av.LHS, bv.LHS) {
			return Less(av.LHS, bv.LHS)
		}
		return Less(av.RHS, bv.RHS)
	default:
		return false
	}
}

func lessSlice(a, b []Expr) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if !Equal(a[i], b[i]) {
			return Less(a[i], b[i])
		}
	}
	return len(a) < len(b)
}

// SortExprs sorts a slice of expressions in place per the total order.
func SortExprs(es []Expr) {
	sort.SliceStable(es, func(i, j int) bool { return Less(es[i], es[j]) })
}

// Key returns a canonical string for e, suitable as a map key when
// collecting like terms/factors (the Go idiom the pack uses in place of a
// BTreeMap<Expr, _> — see other_examples quizizz-cas simplify.go's
// string-keyed Collect). Structurally Equal expressions have the same
// Key; the converse holds only up to the order of Add terms and Mul
// factors, which Key sorts and Equal does not.
func Key(e Expr) string {
	var b strings.Builder
	writeKey(&b, e)
	return b.String()
}

func writeKey(b *strings.Builder, e Expr) {
	switch v := e.(type) {
	case Integer:
		fmt.Fprintf(b, "i(%d)", v.Value)
	case Rational:
		fmt.Fprintf(b, "r(%d/%d)", v.P, v.Q)
	case Constant:
		fmt.Fprintf(b, "c(%s)", v.Kind.String())
	case Letter:
		fmt.Fprintf(b, "l(%s)", v.Name)
	case Vector:
		fmt.Fprintf(b, "v(%s)", v.Name)
	case Var:
		writeKey(b, v.V)
	case Neg:
		b.WriteString("neg(")
		writeKey(b, v.X)
		b.WriteString(")")
	case Add:
		b.WriteString("add(")
		writeKeySlice(b, v.Terms)
		b.WriteString(")")
	case Mul:
		b.WriteString("mul(")
		writeKeySlice(b, v.Factors)
		b.WriteString(")")
	case Div:
		b.WriteString("div(")
		writeKey(b, v.Num)
		b.WriteString(",")
		writeKey(b, v.Denom)
		b.WriteString(")")
	case Pow:
		b.WriteString("pow(")
		writeKey(b, v.Base)
		b.WriteString(",")
		writeKey(b, v.Exp)
		b.WriteString(")")
	case Ln:
		b.WriteString("ln(")
		writeKey(b, v.X)
		b.WriteString(")")
	case Sin:
		b.WriteString("sin(")
		writeKey(b, v.X)
		b.WriteString(")")
	case Cos:
		b.WriteString("cos(")
		writeKey(b, v.X)
		b.WriteString(")")
	case Arcsin:
		b.WriteString("asin(")
		writeKey(b, v.X)
		b.WriteString(")")
	case Arccos:
		b.WriteString("acos(")
		writeKey(b, v.X)
		b.WriteString(")")
	case Arctan:
		b.WriteString("atan(")
		writeKey(b, v.X)
		b.WriteString(")")
	case Abs:
		b.WriteString("abs(")
		writeKey(b, v.X)
		b.WriteString(")")
	case Eq:
		b.WriteString("eq(")
		writeKey(b, v.LHS)
		b.WriteString(",")
		writeKey(b, v.RHS)
		b.WriteString(")")
	default:
		b.WriteString("?")
	}
}

func writeKeySlice(b *strings.Builder, es []Expr) {
	sorted := make([]Expr, len(es))
	copy(sorted, es)
	SortExprs(sorted)
	for i, e := range sorted {
		if i > 0 {
			b.WriteString(";")
		}
		writeKey(b, e)
	}
}
