// Package latexprinter renders an Expr back to LaTeX text, via the
// shared latexir.IR intermediate representation. Bracketing is decided by
// the operand alone, not by the enclosing operator: see needsBracket.
// Grounded in original_source's parser/formatters.rs (needs_to_be_bracketet
// drives the bracket policy here) and parser/mod.rs's
// equation_to_ir/ir_to_latex split into a build stage and a render stage.
package latexprinter

import (
	"strconv"
	"strings"

	"github.com/fishrambeta/symcas/internal/domain/expr"
	"github.com/fishrambeta/symcas/internal/domain/latexir"
)

// Print renders e to LaTeX text.
func Print(e expr.Expr) string {
	return render(toIR(e))
}

// needsBracket mirrors needs_to_be_bracketet: whether e, used as an
// operand of a negation, sum, product or power base, is wrapped in
// parentheses. Every negation and every sum or product of more than one
// operand is bracketed whatever the enclosing operator, so a sum inside a
// sum prints as "(x+y)+1". Nothing else is bracketed: a power or fraction
// used as a power's base, or a negative number, is printed bare.
func needsBracket(e expr.Expr) bool {
	switch x := e.(type) {
	case expr.Neg:
		return true
	case expr.Add:
		return len(x.Terms) != 1
	case expr.Mul:
		return len(x.Factors) != 1
	default:
		return false
	}
}

func bracketedParam(e expr.Expr) latexir.Param {
	b := latexir.NoBracket
	if needsBracket(e) {
		b = latexir.Round
	}
	return latexir.Param{Node: toIR(e), Bracket: b}
}

func toIR(e expr.Expr) latexir.IR {
	switch x := e.(type) {
	case expr.Var:
		return variableToIR(x.V)
	case expr.Neg:
		return latexir.IR{Name: "-", Params: []latexir.Param{bracketedParam(x.X)}}
	case expr.Add:
		params := make([]latexir.Param, len(x.Terms))
		for i, t := range x.Terms {
			params[i] = bracketedParam(t)
		}
		return latexir.IR{Name: "+", Params: params}
	case expr.Mul:
		params := make([]latexir.Param, len(x.Factors))
		for i, f := range x.Factors {
			params[i] = bracketedParam(f)
		}
		return latexir.IR{Name: "\\cdot", Params: params}
	case expr.Div:
		return latexir.IR{Name: "\\frac", Params: []latexir.Param{
			{Node: toIR(x.Num), Bracket: latexir.Curly},
			{Node: toIR(x.Denom), Bracket: latexir.Curly},
		}}
	case expr.Pow:
		return latexir.IR{Name: "^", Params: []latexir.Param{
			bracketedParam(x.Base),
			{Node: toIR(x.Exp), Bracket: latexir.Curly},
		}}
	case expr.Ln:
		return latexir.IR{Name: "\\ln", Params: []latexir.Param{{Node: toIR(x.X), Bracket: latexir.Round}}}
	case expr.Sin:
		return latexir.IR{Name: "\\sin", Params: []latexir.Param{{Node: toIR(x.X), Bracket: latexir.Round}}}
	case expr.Cos:
		return latexir.IR{Name: "\\cos", Params: []latexir.Param{{Node: toIR(x.X), Bracket: latexir.Round}}}
	case expr.Arcsin:
		return latexir.IR{Name: "\\arcsin", Params: []latexir.Param{{Node: toIR(x.X), Bracket: latexir.Round}}}
	case expr.Arccos:
		return latexir.IR{Name: "\\arccos", Params: []latexir.Param{{Node: toIR(x.X), Bracket: latexir.Round}}}
	case expr.Arctan:
		return latexir.IR{Name: "\\arctan", Params: []latexir.Param{{Node: toIR(x.X), Bracket: latexir.Round}}}
	case expr.Abs:
		return latexir.IR{Name: "abs", Params: []latexir.Param{{Node: toIR(x.X), Bracket: latexir.NoBracket}}}
	case expr.Eq:
		return latexir.IR{Name: "=", Params: []latexir.Param{
			{Node: toIR(x.LHS)},
			{Node: toIR(x.RHS)},
		}}
	default:
		return latexir.Leaf("?")
	}
}

func variableToIR(v expr.Variable) latexir.IR {
	switch vv := v.(type) {
	case expr.Integer:
		return latexir.Leaf(strconv.FormatInt(vv.Value, 10))
	case expr.Rational:
		return latexir.IR{Name: "\\frac", Params: []latexir.Param{
			{Node: latexir.Leaf(strconv.FormatInt(vv.P, 10)), Bracket: latexir.Curly},
			{Node: latexir.Leaf(strconv.FormatInt(vv.Q, 10)), Bracket: latexir.Curly},
		}}
	case expr.Constant:
		switch vv.Kind {
		case expr.Pi:
			return latexir.Leaf("\\pi")
		case expr.E:
			return latexir.Leaf("e")
		}
		return latexir.Leaf("?")
	case expr.Letter:
		return latexir.Leaf(vv.Name)
	case expr.Vector:
		return latexir.Leaf("\\vec{" + vv.Name + "}")
	default:
		return latexir.Leaf("?")
	}
}

// render walks an IR tree produced by toIR back into LaTeX text.
func render(ir latexir.IR) string {
	switch ir.Name {
	case "+":
		return joinInfix(ir.Params, "+")
	case "\\cdot":
		return joinInfix(ir.Params, "\\cdot ")
	case "=":
		return joinInfix(ir.Params, "=")
	case "-":
		return "-" + wrap(ir.Params[0])
	case "^":
		return wrap(ir.Params[0]) + "^{" + render(ir.Params[1].Node) + "}"
	case "\\frac":
		return "\\frac{" + render(ir.Params[0].Node) + "}{" + render(ir.Params[1].Node) + "}"
	case "\\ln", "\\sin", "\\cos", "\\arcsin", "\\arccos", "\\arctan":
		return ir.Name + "(" + render(ir.Params[0].Node) + ")"
	case "abs":
		return "|" + render(ir.Params[0].Node) + "|"
	default:
		return ir.Name
	}
}

func wrap(p latexir.Param) string {
	inner := render(p.Node)
	if p.Bracket == latexir.NoBracket {
		return inner
	}
	return string(p.Bracket.Opening()) + inner + string(p.Bracket.Closing())
}

func joinInfix(params []latexir.Param, sep string) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = wrap(p)
	}
	return strings.Join(parts, sep)
}
