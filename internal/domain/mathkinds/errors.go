// Package mathkinds declares the sentinel error values shared across the
// algebra engine's domain packages. Call sites wrap these with fmt.Errorf's
// %w verb so callers can still errors.Is against the kind while getting a
// message with context.
package mathkinds

import "errors"

var (
	// ErrInvalidLatex is returned when raw LaTeX input cannot be tokenized
	// or has unbalanced brackets.
	ErrInvalidLatex = errors.New("invalid latex")

	// ErrDivisionByZero is returned when numeric evaluation would divide by
	// zero. Exact evaluation does not return it: exacteval.CalculateExact
	// reports a zero divisor as "no exact value" (ok=false).
	ErrDivisionByZero = errors.New("division by zero")

	// ErrUnsupportedOperation is returned for constructs outside this
	// engine's scope (e.g. integration).
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrMissingValue is returned when numeric evaluation needs a variable
	// or physical constant that was not supplied.
	ErrMissingValue = errors.New("missing value")

	// ErrUnsolvable is returned when a linear system has no solution or is
	// underdetermined.
	ErrUnsolvable = errors.New("unsolvable system")

	// ErrNonlinear is a precondition violation: an equation system
	// constructor was given an equation that is not linear in its
	// variables. Callers must probe linearity before constructing; the
	// constructor itself panics rather than returning this wrapped, since
	// violating the precondition is a programmer error.
	ErrNonlinear = errors.New("equation is not linear")

	// ErrNonpolynomial is a precondition violation analogous to
	// ErrNonlinear, for polynomial construction from an expression that is
	// not a polynomial in the target variable.
	ErrNonpolynomial = errors.New("expression is not a polynomial")
)
