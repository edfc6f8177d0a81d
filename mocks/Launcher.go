package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/wtframework/wtf/internal/driverservice"
)

// Launcher is a mock type for the Launcher type
type Launcher struct {
	mock.Mock
}

type Launcher_Expecter struct {
	mock *mock.Mock
}

func (_m *Launcher) EXPECT() *Launcher_Expecter {
	return &Launcher_Expecter{mock: &_m.Mock}
}

// Start provides a mock function with given fields: ctx, spec
func (_m *Launcher) Start(ctx context.Context, spec driverservice.Spec) (driverservice.Service, error) {
	ret := _m.Called(ctx, spec)

	if len(ret) == 0 {
		panic("no return value specified for Start")
	}

	var r0 driverservice.Service
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, driverservice.Spec) (driverservice.Service, error)); ok {
		return rf(ctx, spec)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(driverservice.Service)
	}
	r1 = ret.Error(1)

	return r0, r1
}

type Launcher_Start_Call struct {
	*mock.Call
}

// Start is a helper method to define mock.On call
//   - ctx context.Context
//   - spec driverservice.Spec
func (_e *Launcher_Expecter) Start(ctx interface{}, spec interface{}) *Launcher_Start_Call {
	return &Launcher_Start_Call{Call: _e.mock.On("Start", ctx, spec)}
}

func (_c *Launcher_Start_Call) Run(run func(ctx context.Context, spec driverservice.Spec)) *Launcher_Start_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(driverservice.Spec))
	})
	return _c
}

func (_c *Launcher_Start_Call) Return(_a0 driverservice.Service, _a1 error) *Launcher_Start_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// NewLauncher creates a new instance of Launcher. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewLauncher(t interface {
	mock.TestingT
	Cleanup(func())
}) *Launcher {
	m := &Launcher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
