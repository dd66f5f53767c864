// Package latexparser turns LaTeX source text into an Expr tree, via the
// shared latexir.IR intermediate representation. It recognizes the
// operator/bracket/command subset in spec.md §6 and supports an
// implicit-multiplication mode for bare adjacent letters.
//
// Grounded in original_source's parser/mod.rs: latex_to_ir splits the
// input at the lowest-precedence top-level operator it finds (equals,
// then add/sub, then mul/div, then powers), recursing on each side;
// once no top-level operator remains it strips a connected outer
// bracket pair, or dispatches on a leading backslash command, or falls
// through to number/implicit-multiplication/bare-letter handling.
package latexparser

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/fishrambeta/symcas/internal/domain/expr"
	"github.com/fishrambeta/symcas/internal/domain/latexir"
	"github.com/fishrambeta/symcas/internal/domain/mathkinds"
)

// Parse converts LaTeX source text to an Expr. implicitMul controls
// whether adjacent bare letters with no explicit operator between them
// are read as a product of single-letter variables.
func Parse(latex string, implicitMul bool) (expr.Expr, error) {
	runes := []rune(cleanup(latex))
	if len(runes) == 0 {
		return nil, fmt.Errorf("empty input: %w", mathkinds.ErrInvalidLatex)
	}
	if depthDifference(runes) != 0 {
		return nil, fmt.Errorf("unbalanced brackets: %w", mathkinds.ErrInvalidLatex)
	}
	ir, err := toIR(runes, implicitMul)
	if err != nil {
		return nil, err
	}
	return irToExpr(ir)
}

// cleanup mirrors the original's cleanup_latex: NFC-normalize first
// (copy-pasted LaTeX commonly carries decomposed Unicode on accented
// labels), then strip \left/\right/\bigg-style sizing commands, spaces,
// and rewrite \cdot to *.
func cleanup(latex string) string {
	s := norm.NFC.String(latex)
	replacer := strings.NewReplacer(
		"\\cdot", "*",
		" ", "",
		"\\left", "",
		"\\right", "",
		"\\bigg", "",
		"\\big", "",
	)
	return replacer.Replace(s)
}

func depthDifference(latex []rune) int {
	depth := 0
	for _, r := range latex {
		if latexir.IsOpeningBracket(r) {
			depth++
		} else if latexir.IsClosingBracket(r) {
			depth--
		}
	}
	return depth
}

type topLevelOperators struct {
	equals              []int
	additionsSubtractions []int
	multiplicationsDivisions []int
	powers              []int
}

func (t topLevelOperators) any() bool {
	return len(t.equals) > 0 || len(t.additionsSubtractions) > 0 ||
		len(t.multiplicationsDivisions) > 0 || len(t.powers) > 0
}

func topLevelOperatorsIn(latex []rune, implicitMul bool) topLevelOperators {
	var ops topLevelOperators
	depth := 0
	for i, r := range latex {
		switch {
		case latexir.IsOpeningBracket(r):
			depth++
		case latexir.IsClosingBracket(r):
			depth--
		case depth == 0:
			switch r {
			case '=':
				ops.equals = append(ops.equals, i)
			case '+':
				ops.additionsSubtractions = append(ops.additionsSubtractions, i)
			case '-':
				if i != 0 {
					ops.additionsSubtractions = append(ops.additionsSubtractions, i)
				}
			case '*', '/':
				ops.multiplicationsDivisions = append(ops.multiplicationsDivisions, i)
			case '^':
				if isCaretPower(latex, i) && isPowerTopLevel(latex, i, implicitMul) {
					ops.powers = append(ops.powers, i)
				}
			}
		}
	}
	return ops
}

// isCaretPower distinguishes a power operator from a LaTeX superscript
// that belongs to a preceding command (e.g. the "10" in \int^10 marks a
// bound, not an exponent).
func isCaretPower(latex []rune, caret int) bool {
	var beforeCommand []rune
	for i := caret - 1; i >= 0; i-- {
		if latex[i] != '\\' {
			beforeCommand = append([]rune{latex[i]}, beforeCommand...)
		} else {
			break
		}
	}
	if idx := indexRune(beforeCommand, '{'); idx >= 0 {
		if idx > 0 && beforeCommand[idx-1] != '_' {
			return true
		}
		if indexRune(beforeCommand[:idx], '{') >= 0 {
			return true
		}
	}
	var command string
	if idx := indexRune(beforeCommand, '_'); idx >= 0 {
		command = string(beforeCommand[:idx])
	} else {
		command = string(beforeCommand)
	}
	return command != "int"
}

func indexRune(s []rune, r rune) int {
	for i, c := range s {
		if c == r {
			return i
		}
	}
	return -1
}

// isPowerTopLevel rejects a caret that is itself the exponent of a
// preceding caret in the same bracket-free stretch (a^b^c binds as
// a^(b^c), so the second caret isn't top level: it belongs to the
// exponent of the first one).
func isPowerTopLevel(latex []rune, caret int, implicitMul bool) bool {
	for i := caret - 1; i > 0; i-- {
		if latex[i] == '^' {
			between := latex[i+1 : caret]
			if len(between) == 1 {
				return false
			}
			return !isSingleExpression(between, implicitMul)
		}
	}
	return true
}

func isSingleExpression(part []rune, implicitMul bool) bool {
	if len(part) == 0 {
		return false
	}
	if depthDifference(part) != 0 {
		return false
	}
	if latexir.IsOpeningBracket(part[0]) && latexir.IsClosingBracket(part[0]) {
		return true
	}
	if !implicitMul {
		return false
	}
	for _, r := range part {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// toIR is the recursive LaTeX-text-to-IR conversion, mirroring
// IR::latex_to_ir.
func toIR(latex []rune, implicitMul bool) (latexir.IR, error) {
	for len(latex) > 0 && latex[0] == '+' {
		latex = latex[1:]
	}
	if len(latex) == 0 {
		return latexir.IR{}, fmt.Errorf("empty expression: %w", mathkinds.ErrInvalidLatex)
	}

	ops := topLevelOperatorsIn(latex, implicitMul)
	if ops.any() {
		switch {
		case len(ops.equals) > 0:
			return splitBinary(latex, ops.equals[0], implicitMul)
		case len(ops.additionsSubtractions) > 0:
			return splitBinary(latex, ops.additionsSubtractions[0], implicitMul)
		case len(ops.multiplicationsDivisions) > 0:
			return splitBinary(latex, ops.multiplicationsDivisions[0], implicitMul)
		default:
			return splitPowers(latex, ops.powers, implicitMul)
		}
	}

	if latexir.IsOpeningBracket(latex[0]) && latexir.IsClosingBracket(latex[len(latex)-1]) &&
		firstLastBracketConnected(latex) {
		return toIR(latex[1:len(latex)-1], implicitMul)
	}

	if latex[0] == '\\' {
		return commandToIR(latex, implicitMul)
	}

	if containsRune(latex, '\\') {
		i := indexRune(latex, '\\')
		lhs, rhs := latex[:i], latex[i:]
		return productOf(lhs, rhs, implicitMul, latexir.Round)
	}

	if containsAnyBracket(latex) {
		if latexir.IsOpeningBracket(latex[0]) && latexir.IsClosingBracket(latex[len(latex)-1]) {
			if firstLastBracketConnected(latex) {
				return toIR(latex[1:len(latex)-1], implicitMul)
			}
			lhs, rhs, err := splitOnBrackets(latex)
			if err != nil {
				return latexir.IR{}, err
			}
			return productOf(lhs, rhs, implicitMul, latexir.Round)
		}
		return latexir.IR{}, fmt.Errorf("unsupported bracket placement: %w", mathkinds.ErrInvalidLatex)
	}

	if containsDigit(latex) {
		return numericToIR(latex, implicitMul)
	}

	if latex[0] == '-' {
		inner, err := toIR(latex[1:], implicitMul)
		if err != nil {
			return latexir.IR{}, err
		}
		return latexir.IR{Name: "\\inv", Params: []latexir.Param{{Node: inner, Bracket: latexir.Round}}}, nil
	}

	if implicitMul {
		params := make([]latexir.Param, 0, len(latex))
		for _, r := range latex {
			params = append(params, latexir.Param{Node: latexir.Leaf(string(r))})
		}
		return latexir.IR{Name: "*", Params: params}, nil
	}

	return latexir.Leaf(string(latex)), nil
}

func containsRune(s []rune, r rune) bool { return indexRune(s, r) >= 0 }

func containsAnyBracket(s []rune) bool {
	for _, r := range s {
		if r == '{' || r == '(' || r == '[' || r == '⟨' {
			return true
		}
	}
	return false
}

func containsDigit(s []rune) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func splitBinary(latex []rune, at int, implicitMul bool) (latexir.IR, error) {
	lhs := latex[:at]
	operator := latex[at]
	rhs := latex[at+1:]
	lhsIR, err := toIR(lhs, implicitMul)
	if err != nil {
		return latexir.IR{}, err
	}
	rhsIR, err := toIR(rhs, implicitMul)
	if err != nil {
		return latexir.IR{}, err
	}
	return latexir.IR{
		Name: string(operator),
		Params: []latexir.Param{
			{Node: lhsIR},
			{Node: rhsIR},
		},
	}, nil
}

func splitPowers(latex []rune, powers []int, implicitMul bool) (latexir.IR, error) {
	var parts [][]rune
	rest := latex
	prevCut := 0
	for _, p := range powers {
		cut := p - prevCut
		parts = append(parts, rest[:cut])
		rest = rest[cut+1:]
		prevCut = p + 1
	}
	parts = append(parts, rest)

	params := make([]latexir.Param, 0, len(parts))
	for _, part := range parts {
		ir, err := toIR(part, implicitMul)
		if err != nil {
			return latexir.IR{}, err
		}
		params = append(params, latexir.Param{Node: ir})
	}
	return latexir.IR{Name: "^", Params: params}, nil
}

func productOf(lhs, rhs []rune, implicitMul bool, bracket latexir.BracketType) (latexir.IR, error) {
	lhsIR, err := toIR(lhs, implicitMul)
	if err != nil {
		return latexir.IR{}, err
	}
	rhsIR, err := toIR(rhs, implicitMul)
	if err != nil {
		return latexir.IR{}, err
	}
	return latexir.IR{
		Name: "*",
		Params: []latexir.Param{
			{Node: lhsIR, Bracket: bracket},
			{Node: rhsIR, Bracket: bracket},
		},
	}, nil
}

func firstLastBracketConnected(latex []rune) bool {
	depth := 1
	for i := 1; i < len(latex)-1; i++ {
		if latexir.IsOpeningBracket(latex[i]) {
			depth++
		} else if latexir.IsClosingBracket(latex[i]) {
			depth--
		}
		if depth == 0 {
			return false
		}
	}
	return true
}

func splitOnBrackets(latex []rune) ([]rune, []rune, error) {
	depth := 1
	for i := 1; i < len(latex)-1; i++ {
		if latexir.IsOpeningBracket(latex[i]) {
			depth++
		} else if latexir.IsClosingBracket(latex[i]) {
			depth--
		}
		if depth == 0 {
			return latex[:i+1], latex[i+1:], nil
		}
	}
	return nil, nil, fmt.Errorf("unterminated bracket group: %w", mathkinds.ErrInvalidLatex)
}

// commandToIR dispatches a leading backslash command: \frac, \sqrt,
// \sin/\cos/\tan/\ln/\log, \vec/\hat (folded into the variable-name
// reader so "\vec{a}" becomes a single Vector leaf), \int (unsupported,
// the integration pipeline is out of scope), or any other command
// (treated as an opaque leaf, implicitly multiplied against whatever
// immediately follows it).
func commandToIR(latex []rune, implicitMul bool) (latexir.IR, error) {
	latex = latex[1:]
	var command []rune
	for len(latex) > 0 {
		r := latex[0]
		if r == '{' || r == '(' || r == '[' || r == '^' || r == '_' || r == '\\' {
			break
		}
		command = append(command, r)
		latex = latex[1:]
	}
	name := string(command)

	switch name {
	case "int":
		return latexir.IR{}, fmt.Errorf("integration: %w", mathkinds.ErrUnsupportedOperation)
	case "frac":
		if len(latex) == 0 || !latexir.IsOpeningBracket(latex[0]) {
			return latexir.IR{}, fmt.Errorf("invalid \\frac: %w", mathkinds.ErrInvalidLatex)
		}
		num, rest, err := firstParameter(latex, implicitMul)
		if err != nil {
			return latexir.IR{}, err
		}
		denom, rest, err := firstParameter(rest, implicitMul)
		if err != nil {
			return latexir.IR{}, err
		}
		fraction := latexir.IR{Name: "/", Params: []latexir.Param{
			{Node: num, Bracket: latexir.Curly},
			{Node: denom, Bracket: latexir.Curly},
		}}
		if len(rest) == 0 {
			return fraction, nil
		}
		otherIR, err := toIR(rest, implicitMul)
		if err != nil {
			return latexir.IR{}, err
		}
		return latexir.IR{Name: "*", Params: []latexir.Param{
			{Node: fraction, Bracket: latexir.Curly},
			{Node: otherIR, Bracket: latexir.Curly},
		}}, nil
	case "sqrt":
		arg, rest, err := firstParameter(latex, implicitMul)
		if err != nil {
			return latexir.IR{}, err
		}
		sqrt := latexir.IR{Name: "sqrt", Params: []latexir.Param{{Node: arg, Bracket: latexir.Curly}}}
		if len(rest) == 0 {
			return sqrt, nil
		}
		otherIR, err := toIR(rest, implicitMul)
		if err != nil {
			return latexir.IR{}, err
		}
		return latexir.IR{Name: "sqrt", Params: []latexir.Param{
			{Node: sqrt},
			{Node: otherIR},
		}}, nil
	case "sin", "cos", "tan", "ln", "log":
		arg, rest, err := firstParameter(latex, implicitMul)
		if err != nil {
			return latexir.IR{}, err
		}
		if len(rest) == 0 {
			return latexir.IR{Name: name, Params: []latexir.Param{{Node: arg, Bracket: latexir.Curly}}}, nil
		}
		restIR, err := toIR(rest, implicitMul)
		if err != nil {
			return latexir.IR{}, err
		}
		return latexir.IR{Name: "*", Params: []latexir.Param{
			{Node: latexir.IR{Name: name, Params: []latexir.Param{{Node: arg, Bracket: latexir.Curly}}}, Bracket: latexir.Round},
			{Node: restIR, Bracket: latexir.Round},
		}}, nil
	case "vec", "hat":
		arg, rest, err := firstParameter(latex, implicitMul)
		if err != nil {
			return latexir.IR{}, err
		}
		labelled := latexir.IR{Name: "\\" + name, Params: []latexir.Param{{Node: arg, Bracket: latexir.Curly}}}
		if len(rest) == 0 {
			return labelled, nil
		}
		restIR, err := toIR(rest, implicitMul)
		if err != nil {
			return latexir.IR{}, err
		}
		return latexir.IR{Name: "*", Params: []latexir.Param{
			{Node: labelled, Bracket: latexir.Round},
			{Node: restIR, Bracket: latexir.Round},
		}}, nil
	default:
		if len(latex) == 0 {
			return latexir.IR{Name: "\\" + name}, nil
		}
		commandIR := latexir.IR{Name: name}
		restIR, err := toIR(latex, implicitMul)
		if err != nil {
			return latexir.IR{}, err
		}
		return latexir.IR{Name: "*", Params: []latexir.Param{
			{Node: commandIR, Bracket: latexir.Round},
			{Node: restIR, Bracket: latexir.Round},
		}}, nil
	}
}

// firstParameter consumes a bracketed group (the opening bracket must
// be the current first rune) and returns its parsed IR plus whatever
// LaTeX remains after the closing bracket.
func firstParameter(latex []rune, implicitMul bool) (latexir.IR, []rune, error) {
	if len(latex) == 0 || !latexir.IsOpeningBracket(latex[0]) {
		return latexir.IR{}, nil, fmt.Errorf("expected bracketed argument: %w", mathkinds.ErrInvalidLatex)
	}
	depth := 1
	i := 1
	for depth > 0 {
		if i >= len(latex) {
			return latexir.IR{}, nil, fmt.Errorf("unterminated argument: %w", mathkinds.ErrInvalidLatex)
		}
		if latexir.IsOpeningBracket(latex[i]) {
			depth++
		} else if latexir.IsClosingBracket(latex[i]) {
			depth--
		}
		i++
	}
	inner := latex[1 : i-1]
	ir, err := toIR(inner, implicitMul)
	if err != nil {
		return latexir.IR{}, nil, err
	}
	return ir, latex[i:], nil
}

// numericToIR handles a stretch containing at least one digit: a pure
// number (int/decimal), a leading unary minus, or digits interleaved
// with letters split into an implicit product of number/letter runs.
func numericToIR(latex []rune, implicitMul bool) (latexir.IR, error) {
	onlyNumeric := true
	for _, r := range latex {
		if !unicode.IsDigit(r) && r != '.' {
			onlyNumeric = false
			break
		}
	}
	if onlyNumeric {
		return latexir.IR{Name: string(latex)}, nil
	}
	if latex[0] == '-' {
		inner, err := toIR(latex[1:], implicitMul)
		if err != nil {
			return latexir.IR{}, err
		}
		return latexir.IR{Name: "\\inv", Params: []latexir.Param{{Node: inner, Bracket: latexir.Round}}}, nil
	}

	hasLetter := false
	for _, r := range latex {
		if unicode.IsLetter(r) {
			hasLetter = true
			break
		}
	}
	if !hasLetter {
		return latexir.IR{}, fmt.Errorf("malformed number %q: %w", string(latex), mathkinds.ErrInvalidLatex)
	}

	var parts [][]rune
	isNumber := unicode.IsDigit(latex[0])
	var buf []rune
	for _, r := range latex {
		numeric := unicode.IsDigit(r) || r == '.'
		if (isNumber && numeric) || (!isNumber && !unicode.IsDigit(r)) {
			buf = append(buf, r)
		} else {
			parts = append(parts, buf)
			isNumber = unicode.IsDigit(r)
			buf = []rune{r}
		}
	}
	parts = append(parts, buf)

	params := make([]latexir.Param, 0, len(parts))
	for _, part := range parts {
		ir, err := toIR(part, implicitMul)
		if err != nil {
			return latexir.IR{}, err
		}
		params = append(params, latexir.Param{Node: ir, Bracket: latexir.Round})
	}
	return latexir.IR{Name: "*", Params: params}, nil
}

// irToExpr converts the IR tree produced by toIR into an Expr.
func irToExpr(ir latexir.IR) (expr.Expr, error) {
	switch ir.Name {
	case "+":
		return addChain(ir, false)
	case "-":
		return addChain(ir, true)
	case "*":
		factors := make([]expr.Expr, 0, len(ir.Params))
		for _, p := range ir.Params {
			e, err := irToExpr(p.Node)
			if err != nil {
				return nil, err
			}
			factors = append(factors, e)
		}
		return expr.Mul{Factors: factors}, nil
	case "/":
		if len(ir.Params) != 2 {
			return nil, fmt.Errorf("malformed division: %w", mathkinds.ErrInvalidLatex)
		}
		num, err := irToExpr(ir.Params[0].Node)
		if err != nil {
			return nil, err
		}
		denom, err := irToExpr(ir.Params[1].Node)
		if err != nil {
			return nil, err
		}
		return expr.Div{Num: num, Denom: denom}, nil
	case "^":
		if len(ir.Params) < 2 {
			return nil, fmt.Errorf("malformed power: %w", mathkinds.ErrInvalidLatex)
		}
		return powerChain(ir.Params)
	case "=":
		if len(ir.Params) != 2 {
			return nil, fmt.Errorf("malformed equation: %w", mathkinds.ErrInvalidLatex)
		}
		lhs, err := irToExpr(ir.Params[0].Node)
		if err != nil {
			return nil, err
		}
		rhs, err := irToExpr(ir.Params[1].Node)
		if err != nil {
			return nil, err
		}
		return expr.Eq{LHS: lhs, RHS: rhs}, nil
	case "sqrt":
		if len(ir.Params) == 1 {
			base, err := irToExpr(ir.Params[0].Node)
			if err != nil {
				return nil, err
			}
			return expr.Pow{Base: base, Exp: expr.RationalExpr(expr.NewRational(1, 2))}, nil
		}
		base, err := irToExpr(ir.Params[0].Node)
		if err != nil {
			return nil, err
		}
		rest, err := irToExpr(ir.Params[1].Node)
		if err != nil {
			return nil, err
		}
		return expr.Mul{Factors: []expr.Expr{
			expr.Pow{Base: base, Exp: expr.RationalExpr(expr.NewRational(1, 2))}, rest,
		}}, nil
	case "sin", "cos", "tan", "ln", "log":
		return gonioOrLog(ir)
	case "\\inv":
		if len(ir.Params) != 1 {
			return nil, fmt.Errorf("malformed negation: %w", mathkinds.ErrInvalidLatex)
		}
		inner, err := irToExpr(ir.Params[0].Node)
		if err != nil {
			return nil, err
		}
		return expr.Neg{X: inner}, nil
	case "\\vec":
		name, err := labelName(ir)
		if err != nil {
			return nil, err
		}
		return expr.VectorExpr(name), nil
	case "\\hat":
		name, err := labelName(ir)
		if err != nil {
			return nil, err
		}
		return expr.LetterExpr("\\hat{" + name + "}"), nil
	default:
		if len(ir.Params) == 0 {
			return leafExpr(ir.Name)
		}
		return nil, fmt.Errorf("unsupported command %q: %w", ir.Name, mathkinds.ErrUnsupportedOperation)
	}
}

func addChain(ir latexir.IR, subtract bool) (expr.Expr, error) {
	terms := make([]expr.Expr, 0, len(ir.Params))
	for i, p := range ir.Params {
		e, err := irToExpr(p.Node)
		if err != nil {
			return nil, err
		}
		if subtract && i > 0 {
			e = expr.Neg{X: e}
		}
		terms = append(terms, e)
	}
	return expr.Add{Terms: terms}, nil
}

func powerChain(params []latexir.Param) (expr.Expr, error) {
	if len(params) == 2 {
		base, err := irToExpr(params[0].Node)
		if err != nil {
			return nil, err
		}
		exp, err := irToExpr(params[1].Node)
		if err != nil {
			return nil, err
		}
		return expr.Pow{Base: base, Exp: exp}, nil
	}
	first, err := powerChain(params[:2])
	if err != nil {
		return nil, err
	}
	rest := make([]expr.Expr, 0, len(params)-1)
	rest = append(rest, first)
	for _, p := range params[2:] {
		e, err := irToExpr(p.Node)
		if err != nil {
			return nil, err
		}
		rest = append(rest, e)
	}
	return expr.Mul{Factors: rest}, nil
}

func gonioOrLog(ir latexir.IR) (expr.Expr, error) {
	build := func(arg expr.Expr) expr.Expr {
		switch ir.Name {
		case "sin":
			return expr.Sin{X: arg}
		case "cos":
			return expr.Cos{X: arg}
		case "tan":
			return expr.Div{Num: expr.Sin{X: arg}, Denom: expr.Cos{X: arg}}
		case "ln":
			return expr.Ln{X: arg}
		case "log":
			return expr.Div{Num: expr.Ln{X: arg}, Denom: expr.Ln{X: expr.NumberExpr(10)}}
		}
		return nil
	}
	arg, err := irToExpr(ir.Params[0].Node)
	if err != nil {
		return nil, err
	}
	gonio := build(arg)
	if len(ir.Params) == 1 {
		return gonio, nil
	}
	factors := make([]expr.Expr, 0, len(ir.Params))
	factors = append(factors, gonio)
	for _, p := range ir.Params[1:] {
		e, err := irToExpr(p.Node)
		if err != nil {
			return nil, err
		}
		factors = append(factors, e)
	}
	return expr.Mul{Factors: factors}, nil
}

func labelName(ir latexir.IR) (string, error) {
	if len(ir.Params) != 1 {
		return "", fmt.Errorf("malformed label command: %w", mathkinds.ErrInvalidLatex)
	}
	inner := ir.Params[0].Node
	if len(inner.Params) != 0 {
		return "", fmt.Errorf("unsupported nested label argument: %w", mathkinds.ErrUnsupportedOperation)
	}
	return inner.Name, nil
}

func leafExpr(name string) (expr.Expr, error) {
	isInt := true
	isFloat := true
	for _, r := range name {
		if !unicode.IsDigit(r) {
			isInt = false
			if r != '.' {
				isFloat = false
			}
		}
	}
	if name == "" {
		return nil, fmt.Errorf("empty leaf: %w", mathkinds.ErrInvalidLatex)
	}
	if isInt {
		v, err := strconv.ParseInt(name, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", name, mathkinds.ErrInvalidLatex)
		}
		return expr.NumberExpr(v), nil
	}
	if isFloat {
		return parseFloat(name)
	}
	switch name {
	case "e":
		return expr.ConstantExpr(expr.E), nil
	case "\\pi":
		return expr.ConstantExpr(expr.Pi), nil
	default:
		return expr.LetterExpr(name), nil
	}
}

func parseFloat(name string) (expr.Expr, error) {
	dot := strings.IndexByte(name, '.')
	if dot < 0 {
		return nil, fmt.Errorf("invalid decimal %q: %w", name, mathkinds.ErrInvalidLatex)
	}
	intPart, fracPart := name[:dot], name[dot+1:]
	if intPart == "" {
		intPart = "0"
	}
	intVal, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid decimal %q: %w", name, mathkinds.ErrInvalidLatex)
	}
	fracVal, err := strconv.ParseInt(fracPart, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid decimal %q: %w", name, mathkinds.ErrInvalidLatex)
	}
	return expr.RationalExpr(expr.RationalFromDecimal(intVal, fracVal, len(fracPart))), nil
}
