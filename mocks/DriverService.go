package mocks

import "github.com/stretchr/testify/mock"

// DriverService is a mock type for the driverservice.Service type
type DriverService struct {
	mock.Mock
}

type DriverService_Expecter struct {
	mock *mock.Mock
}

func (_m *DriverService) EXPECT() *DriverService_Expecter {
	return &DriverService_Expecter{mock: &_m.Mock}
}

// Stop provides a mock function with given fields:
func (_m *DriverService) Stop() error {
	ret := _m.Called()

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

type DriverService_Stop_Call struct {
	*mock.Call
}

func (_e *DriverService_Expecter) Stop() *DriverService_Stop_Call {
	return &DriverService_Stop_Call{Call: _e.mock.On("Stop")}
}

func (_c *DriverService_Stop_Call) Return(_a0 error) *DriverService_Stop_Call {
	_c.Call.Return(_a0)
	return _c
}

// URL provides a mock function with given fields:
func (_m *DriverService) URL() string {
	ret := _m.Called()

	var r0 string
	if rf, ok := ret.Get(0).(func() string); ok {
		r0 = rf()
	} else {
		r0 = ret.String(0)
	}

	return r0
}

type DriverService_URL_Call struct {
	*mock.Call
}

func (_e *DriverService_Expecter) URL() *DriverService_URL_Call {
	return &DriverService_URL_Call{Call: _e.mock.On("URL")}
}

func (_c *DriverService_URL_Call) Return(_a0 string) *DriverService_URL_Call {
	_c.Call.Return(_a0)
	return _c
}

// NewDriverService creates a new instance of DriverService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewDriverService(t interface {
	mock.TestingT
	Cleanup(func())
}) *DriverService {
	m := &DriverService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
