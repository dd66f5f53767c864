package mocks

import (
	"github.com/fishrambeta/symcas/internal/domain/expr"
	"github.com/stretchr/testify/mock"
)

// MockParser is a mock type for the app.Parser type
type MockParser struct {
	mock.Mock
}

// Parse provides a mock function with given fields: latex, implicitMul
func (_m *MockParser) Parse(latex string, implicitMul bool) ([]expr.Expr, error) {
	ret := _m.Called(latex, implicitMul)

	var r0 []expr.Expr
	if rf, ok := ret.Get(0).(func(string, bool) []expr.Expr); ok {
		r0 = rf(latex, implicitMul)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]expr.Expr)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(string, bool) error); ok {
		r1 = rf(latex, implicitMul)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockParser creates a new instance of MockParser. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockParser(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockParser {
	mock := &MockParser{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
