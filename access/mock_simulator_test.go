// Code in this file follows the shape mockgen produces for
// access.Simulator; it is hand-maintained here since regenerating it
// requires running the Go toolchain, which this repository's build
// process does not do in CI for test-only mocks.

package access_test

import (
	"math/big"
	"reflect"

	gomock "github.com/golang/mock/gomock"

	"github.com/sarchlab/cycleharness/access"
)

// MockSimulator is a mock of the access.Simulator interface.
type MockSimulator struct {
	ctrl     *gomock.Controller
	recorder *MockSimulatorMockRecorder
}

// MockSimulatorMockRecorder is the mock recorder for MockSimulator.
type MockSimulatorMockRecorder struct {
	mock *MockSimulator
}

// NewMockSimulator creates a new mock instance.
func NewMockSimulator(ctrl *gomock.Controller) *MockSimulator {
	mock := &MockSimulator{ctrl: ctrl}
	mock.recorder = &MockSimulatorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSimulator) EXPECT() *MockSimulatorMockRecorder {
	return m.recorder
}

// PeekByName mocks base method.
func (m *MockSimulator) PeekByName(name string) (*big.Int, bool) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PeekByName", name)
	v, _ := ret[0].(*big.Int)
	ok, _ := ret[1].(bool)
	return v, ok
}

// PeekByName indicates an expected call.
func (mr *MockSimulatorMockRecorder) PeekByName(name interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PeekByName",
		reflect.TypeOf((*MockSimulator)(nil).PeekByName), name)
}

// PokeByName mocks base method.
func (m *MockSimulator) PokeByName(name string, v *big.Int) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PokeByName", name, v)
	ok, _ := ret[0].(bool)
	return ok
}

// PokeByName indicates an expected call.
func (mr *MockSimulatorMockRecorder) PokeByName(name, v interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PokeByName",
		reflect.TypeOf((*MockSimulator)(nil).PokeByName), name, v)
}

// Step mocks base method.
func (m *MockSimulator) Step(cycles int) access.StepResult {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Step", cycles)
	res, _ := ret[0].(access.StepResult)
	return res
}

// Step indicates an expected call.
func (mr *MockSimulatorMockRecorder) Step(cycles interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Step",
		reflect.TypeOf((*MockSimulator)(nil).Step), cycles)
}
