// Package solver dispatches a parsed expression to one of the engine's
// operations (simplify, differentiate, eval, taylor, solve, factor) and
// renders the result back to text, the single domain step the app layer
// injects between parsing and output. Grounded in original_source's
// main.rs match-on-mode dispatch, which the Rust CLI performs inline
// against the same set of math/*.rs operations this package wires.
package solver

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fishrambeta/symcas/internal/domain/differentiate"
	"github.com/fishrambeta/symcas/internal/domain/expr"
	"github.com/fishrambeta/symcas/internal/domain/latexprinter"
	"github.com/fishrambeta/symcas/internal/domain/linsystem"
	"github.com/fishrambeta/symcas/internal/domain/mathkinds"
	"github.com/fishrambeta/symcas/internal/domain/numeric"
	"github.com/fishrambeta/symcas/internal/domain/physvalues"
	"github.com/fishrambeta/symcas/internal/domain/polynomial"
	"github.com/fishrambeta/symcas/internal/domain/simplify"
	"github.com/fishrambeta/symcas/internal/domain/steps"
	"github.com/fishrambeta/symcas/internal/domain/taylor"
)

// Options carries every mode's parameters, most of which only some modes
// use: Var names the differentiation/Taylor/factor/solve variable (a
// comma-separated list for solve), Around is the Taylor expansion point
// as an integer, decimal, or "p/q" literal, Degree bounds the Taylor
// expansion, and Overrides is a comma-separated "name=value" list
// consumed by eval.
type Options struct {
	Var       string
	Around    string
	Degree    int
	Overrides string
}

// Solve runs mode against exprs (a single expression for every mode but
// solve, which takes one Eq per system row) and renders the result to
// LaTeX or plain numeric text.
func Solve(mode string, exprs []expr.Expr, opts Options, rec steps.Recorder) (string, error) {
	if rec == nil {
		rec = steps.NullRecorder{}
	}
	if len(exprs) == 0 {
		return "", fmt.Errorf("solve: no expression given: %w", mathkinds.ErrInvalidLatex)
	}

	switch mode {
	case "simplify":
		return latexprinter.Print(simplify.SimplifyUntilComplete(exprs[0], rec)), nil

	case "differentiate":
		if opts.Var == "" {
			return "", fmt.Errorf("differentiate: --var is required: %w", mathkinds.ErrInvalidLatex)
		}
		d := differentiate.WithRespectTo(exprs[0], opts.Var, rec)
		return latexprinter.Print(d), nil

	case "eval":
		overrides, err := parseOverrides(opts.Overrides)
		if err != nil {
			return "", err
		}
		v, err := numeric.Calculate(exprs[0], physvalues.Standard(), overrides)
		if err != nil {
			return "", fmt.Errorf("eval: %w", err)
		}
		return strconv.FormatFloat(v, 'g', -1, 64), nil

	case "taylor":
		if opts.Var == "" {
			return "", fmt.Errorf("taylor: --var is required: %w", mathkinds.ErrInvalidLatex)
		}
		around, err := parseRationalArg(opts.Around)
		if err != nil {
			return "", fmt.Errorf("taylor: invalid --around %q: %w", opts.Around, mathkinds.ErrInvalidLatex)
		}
		t := taylor.Expansion(exprs[0], opts.Var, around, opts.Degree, rec)
		return latexprinter.Print(t.IntoExpr()), nil

	case "solve":
		return solveSystem(exprs, opts)

	case "factor":
		return factorExpr(exprs[0], opts)

	default:
		return "", fmt.Errorf("mode %q: %w", mode, mathkinds.ErrUnsupportedOperation)
	}
}

func solveSystem(exprs []expr.Expr, opts Options) (string, error) {
	if opts.Var == "" {
		return "", fmt.Errorf("solve: --var is required: %w", mathkinds.ErrInvalidLatex)
	}
	vars := splitTrimmed(opts.Var)

	equations := make([]expr.Eq, len(exprs))
	for i, e := range exprs {
		eq, ok := e.(expr.Eq)
		if !ok {
			return "", fmt.Errorf("solve: row %d is not an equation: %w", i, mathkinds.ErrInvalidLatex)
		}
		equations[i] = eq
	}

	for i, eq := range equations {
		diff := expr.Add{Terms: []expr.Expr{eq.LHS, expr.Neg{X: eq.RHS}}}
		if !linsystem.IsLinear(diff, vars) {
			return "", fmt.Errorf("solve: row %d: %w", i, mathkinds.ErrNonlinear)
		}
	}

	system := linsystem.FromEquations(equations, vars)
	solution, err := system.Solve()
	if err != nil {
		return "", fmt.Errorf("solve: %w", err)
	}

	parts := make([]string, len(vars))
	for i, v := range vars {
		parts[i] = v + "=" + latexprinter.Print(solution[i])
	}
	return strings.Join(parts, ", "), nil
}

// factorExpr square-free factors e and renders it as a product of
// factors[i]^(i+1) (SquareFreeFactorization's multiplicity convention),
// skipping unit factors and leaving the bracketing to latexprinter.
func factorExpr(e expr.Expr, opts Options) (string, error) {
	if opts.Var == "" {
		return "", fmt.Errorf("factor: --var is required: %w", mathkinds.ErrInvalidLatex)
	}
	if !polynomial.IsPolynomial(e, opts.Var) {
		return "", fmt.Errorf("factor: not a polynomial in %s: %w", opts.Var, mathkinds.ErrNonpolynomial)
	}
	p := polynomial.MustFromExpr(e, opts.Var)
	sqFree := p.SquareFreeFactorization()

	var terms []expr.Expr
	for i, f := range sqFree {
		if f.IsOne() {
			continue
		}
		fe := f.IntoExpr()
		if multiplicity := i + 1; multiplicity > 1 {
			fe = expr.Pow{Base: fe, Exp: expr.NumberExpr(int64(multiplicity))}
		}
		terms = append(terms, fe)
	}

	var result expr.Expr
	switch len(terms) {
	case 0:
		result = expr.NumberExpr(1)
	case 1:
		result = terms[0]
	default:
		result = expr.Mul{Factors: terms}
	}
	return latexprinter.Print(result), nil
}

func parseOverrides(raw string) (map[string]float64, error) {
	overrides := map[string]float64{}
	if raw == "" {
		return overrides, nil
	}
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, value, found := strings.Cut(pair, "=")
		if !found {
			return nil, fmt.Errorf("eval: invalid override %q: %w", pair, mathkinds.ErrInvalidLatex)
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("eval: invalid override %q: %w", pair, mathkinds.ErrInvalidLatex)
		}
		overrides[strings.TrimSpace(name)] = f
	}
	return overrides, nil
}

func splitTrimmed(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseRationalArg(s string) (expr.Rational, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		s = "0"
	}
	if i := strings.IndexByte(s, '/'); i >= 0 {
		p, err1 := strconv.ParseInt(strings.TrimSpace(s[:i]), 10, 64)
		q, err2 := strconv.ParseInt(strings.TrimSpace(s[i+1:]), 10, 64)
		if err1 != nil || err2 != nil || q == 0 {
			return expr.Rational{}, fmt.Errorf("not a rational literal")
		}
		return expr.NewRational(p, q), nil
	}
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, err1 := strconv.ParseInt(s[:i], 10, 64)
		fracStr := s[i+1:]
		fracPart, err2 := strconv.ParseInt(fracStr, 10, 64)
		if err1 != nil || err2 != nil {
			return expr.Rational{}, fmt.Errorf("not a decimal literal")
		}
		return expr.RationalFromDecimal(intPart, fracPart, len(fracStr)), nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return expr.Rational{}, fmt.Errorf("not an integer literal")
	}
	return expr.NewRational(n, 1), nil
}
