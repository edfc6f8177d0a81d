package mocks

import (
	"github.com/stretchr/testify/mock"
	"github.com/tebeka/selenium"
)

// DriverFactory is a mock type for the DriverFactory type
type DriverFactory struct {
	mock.Mock
}

type DriverFactory_Expecter struct {
	mock *mock.Mock
}

func (_m *DriverFactory) EXPECT() *DriverFactory_Expecter {
	return &DriverFactory_Expecter{mock: &_m.Mock}
}

// CreateDriver provides a mock function with given fields: testName
func (_m *DriverFactory) CreateDriver(testName string) (selenium.WebDriver, error) {
	ret := _m.Called(testName)

	if len(ret) == 0 {
		panic("no return value specified for CreateDriver")
	}

	var r0 selenium.WebDriver
	var r1 error
	if rf, ok := ret.Get(0).(func(string) (selenium.WebDriver, error)); ok {
		return rf(testName)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(selenium.WebDriver)
	}
	r1 = ret.Error(1)

	return r0, r1
}

type DriverFactory_CreateDriver_Call struct {
	*mock.Call
}

// CreateDriver is a helper method to define mock.On call
//   - testName string
func (_e *DriverFactory_Expecter) CreateDriver(testName interface{}) *DriverFactory_CreateDriver_Call {
	return &DriverFactory_CreateDriver_Call{Call: _e.mock.On("CreateDriver", testName)}
}

func (_c *DriverFactory_CreateDriver_Call) Return(_a0 selenium.WebDriver, _a1 error) *DriverFactory_CreateDriver_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *DriverFactory_CreateDriver_Call) RunAndReturn(run func(string) (selenium.WebDriver, error)) *DriverFactory_CreateDriver_Call {
	_c.Call.Return(run)
	return _c
}

// NewDriverFactory creates a new instance of DriverFactory. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewDriverFactory(t interface {
	mock.TestingT
	Cleanup(func())
}) *DriverFactory {
	m := &DriverFactory{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
