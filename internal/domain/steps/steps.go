// Package steps provides the step-recording collaborator that the
// simplifier and differentiator push before/after snapshots through, so a
// caller can reconstruct "how" an answer was reached without the domain
// packages needing any notion of a global logger. Grounded in
// original_source's math/steps.rs (StepLogger/Step/add_step).
package steps

import "github.com/fishrambeta/symcas/internal/domain/expr"

// Step is one recorded rewrite: the expression before and after a rule
// fired, plus an optional human-readable label for the rule.
type Step struct {
	Before  expr.Expr
	After   expr.Expr
	Message string
}

// Recorder receives steps as they happen. OpenStep/CloseStep bracket a
// named phase (e.g. "simplify addition"); SetMessage attaches a label to
// the step about to be closed.
type Recorder interface {
	OpenStep(before expr.Expr)
	SetMessage(msg string)
	CloseStep(after expr.Expr)
}

// NullRecorder discards everything. It is the default collaborator so
// callers that don't care about steps pay nothing for them.
type NullRecorder struct{}

func (NullRecorder) OpenStep(expr.Expr)   {}
func (NullRecorder) SetMessage(string)    {}
func (NullRecorder) CloseStep(expr.Expr)  {}

// LogRecorder accumulates steps in memory, skipping any step whose before
// and after are structurally equal — mirroring add_step's skip-if-unchanged
// rule in the original.
type LogRecorder struct {
	Steps []Step

	pending expr.Expr
	message string
	open    bool
}

func NewLogRecorder() *LogRecorder {
	return &LogRecorder{}
}

func (l *LogRecorder) OpenStep(before expr.Expr) {
	l.pending = before
	l.message = ""
	l.open = true
}

func (l *LogRecorder) SetMessage(msg string) {
	l.message = msg
}

func (l *LogRecorder) CloseStep(after expr.Expr) {
	if !l.open {
		return
	}
	l.open = false
	if expr.Equal(l.pending, after) {
		return
	}
	l.Steps = append(l.Steps, Step{Before: l.pending, After: after, Message: l.message})
}
