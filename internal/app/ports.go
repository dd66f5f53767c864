package app

import (
	"github.com/fishrambeta/symcas/internal/domain/expr"
	"github.com/fishrambeta/symcas/internal/domain/solver"
	"github.com/fishrambeta/symcas/internal/domain/steps"
)

// Config holds configuration values passed from the input adapter.
type Config struct {
	OutputFile string

	// Mode selects the operation: simplify, differentiate, eval,
	// taylor, solve, or factor.
	Mode string

	// Var names the variable an operation is with respect to
	// (differentiate, taylor, factor), or a comma-separated list of
	// variables to solve for (solve).
	Var string

	// Around is the Taylor expansion point, as an integer, decimal, or
	// "p/q" literal.
	Around string

	// Degree bounds a Taylor expansion.
	Degree int

	// ImplicitMul enables implicit multiplication in the LaTeX parser
	// (e.g. "xy" parses as x*y rather than failing to split the two
	// variables apart).
	ImplicitMul bool

	// Overrides is a comma-separated "name=value" list of numeric
	// substitutions consumed by eval mode.
	Overrides string
}

// LatexProvider defines the input port for retrieving LaTeX input and config.
type LatexProvider interface {
	GetLatexInput() (latex string, config Config, err error)
}

// ResultWriter defines the output port for writing the rendered result
// (LaTeX for most modes, a plain numeric literal for eval).
type ResultWriter interface {
	WriteResult(result string) error
}

// Parser defines the domain collaborator that turns raw LaTeX into one
// expression per equation row (more than one only for solve mode).
type Parser interface {
	Parse(latex string, implicitMul bool) ([]expr.Expr, error)
}

// Solver defines the domain collaborator that dispatches a mode against
// the parsed expressions and renders the result to text.
type Solver interface {
	Solve(mode string, exprs []expr.Expr, opts solver.Options, rec steps.Recorder) (string, error)
}
