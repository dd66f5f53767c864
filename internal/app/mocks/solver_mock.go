package mocks

import (
	"github.com/fishrambeta/symcas/internal/domain/expr"
	"github.com/fishrambeta/symcas/internal/domain/solver"
	"github.com/fishrambeta/symcas/internal/domain/steps"
	"github.com/stretchr/testify/mock"
)

// MockSolver is a mock type for the app.Solver type
type MockSolver struct {
	mock.Mock
}

// Solve provides a mock function with given fields: mode, exprs, opts, rec
func (_m *MockSolver) Solve(mode string, exprs []expr.Expr, opts solver.Options, rec steps.Recorder) (string, error) {
	ret := _m.Called(mode, exprs, opts, rec)

	var r0 string
	if rf, ok := ret.Get(0).(func(string, []expr.Expr, solver.Options, steps.Recorder) string); ok {
		r0 = rf(mode, exprs, opts, rec)
	} else {
		r0 = ret.Get(0).(string)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(string, []expr.Expr, solver.Options, steps.Recorder) error); ok {
		r1 = rf(mode, exprs, opts, rec)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockSolver creates a new instance of MockSolver. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockSolver(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSolver {
	mock := &MockSolver{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
