package app

import (
	"fmt"
	"strings"

	"github.com/fishrambeta/symcas/internal/domain/expr"
	"github.com/fishrambeta/symcas/internal/domain/latexparser"
	"github.com/fishrambeta/symcas/internal/domain/mathkinds"
	"github.com/fishrambeta/symcas/internal/domain/solver"
	"github.com/fishrambeta/symcas/internal/domain/steps"
)

// ApplicationService orchestrates the LaTeX-in, result-out pipeline.
type ApplicationService struct {
	latexProvider LatexProvider // Input port
	resultWriter  ResultWriter  // Output port
	parser        Parser        // Domain: LaTeX parser
	solver        Solver        // Domain: mode dispatcher
	recorder      steps.Recorder
}

// NewApplicationService creates a new application service instance.
// It requires implementations of the input/output ports and domain
// collaborators.
func NewApplicationService(
	provider LatexProvider,
	writer ResultWriter,
	parser Parser,
	solver Solver,
) *ApplicationService {
	return &ApplicationService{
		latexProvider: provider,
		resultWriter:  writer,
		parser:        parser,
		solver:        solver,
		recorder:      steps.NullRecorder{},
	}
}

// NewDefaultApplicationService wires the real domain collaborators
// (latexparser/solver), the shape cmd/symcas actually constructs.
func NewDefaultApplicationService(provider LatexProvider, writer ResultWriter) *ApplicationService {
	return NewApplicationService(provider, writer, defaultParser{}, defaultSolver{})
}

// WithRecorder swaps in a step recorder (e.g. a steps.LogRecorder),
// returning the same service for chaining.
func (s *ApplicationService) WithRecorder(rec steps.Recorder) *ApplicationService {
	s.recorder = rec
	return s
}

// Run executes the main application logic: parse LaTeX, dispatch the
// configured mode, and write the result.
func (s *ApplicationService) Run() error {
	// 1. Get input from the provider.
	latexInput, config, err := s.latexProvider.GetLatexInput()
	if err != nil {
		return fmt.Errorf("failed to get latex input: %w", err)
	}

	// 2. Parse the LaTeX into one expression per equation row.
	exprs, err := s.parser.Parse(latexInput, config.ImplicitMul)
	if err != nil {
		return fmt.Errorf("failed to parse latex: %w", err)
	}

	// 3. Dispatch the configured mode and render the result.
	opts := solver.Options{
		Var:       config.Var,
		Around:    config.Around,
		Degree:    config.Degree,
		Overrides: config.Overrides,
	}
	result, err := s.solver.Solve(config.Mode, exprs, opts, s.recorder)
	if err != nil {
		return fmt.Errorf("failed to evaluate: %w", err)
	}

	// 4. Write the output using the result writer.
	if err := s.resultWriter.WriteResult(result); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	fmt.Println("Successfully computed result.")
	return nil
}

// defaultParser is the production Parser: one expression per
// semicolon-separated row of latexInput (a single row for every mode but
// solve).
type defaultParser struct{}

func (defaultParser) Parse(latex string, implicitMul bool) ([]expr.Expr, error) {
	rows := strings.Split(latex, ";")
	out := make([]expr.Expr, 0, len(rows))
	for _, row := range rows {
		row = strings.TrimSpace(row)
		if row == "" {
			continue
		}
		e, err := latexparser.Parse(row, implicitMul)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no expression given: %w", mathkinds.ErrInvalidLatex)
	}
	return out, nil
}

// defaultSolver is the production Solver: a thin call into solver.Solve.
type defaultSolver struct{}

func (defaultSolver) Solve(mode string, exprs []expr.Expr, opts solver.Options, rec steps.Recorder) (string, error) {
	return solver.Solve(mode, exprs, opts, rec)
}
