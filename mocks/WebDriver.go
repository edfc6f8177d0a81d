package mocks

import (
	"github.com/stretchr/testify/mock"
	"github.com/tebeka/selenium"
)

// WebDriver is a mock of selenium.WebDriver. Only the methods the harness calls are mocked,
// the rest panic through the nil embedded interface.
type WebDriver struct {
	selenium.WebDriver
	mock.Mock
}

type WebDriver_Expecter struct {
	mock *mock.Mock
}

func (_m *WebDriver) EXPECT() *WebDriver_Expecter {
	return &WebDriver_Expecter{mock: &_m.Mock}
}

// DeleteAllCookies provides a mock function with given fields:
func (_m *WebDriver) DeleteAllCookies() error {
	ret := _m.Called()

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

type WebDriver_DeleteAllCookies_Call struct {
	*mock.Call
}

func (_e *WebDriver_Expecter) DeleteAllCookies() *WebDriver_DeleteAllCookies_Call {
	return &WebDriver_DeleteAllCookies_Call{Call: _e.mock.On("DeleteAllCookies")}
}

func (_c *WebDriver_DeleteAllCookies_Call) Return(_a0 error) *WebDriver_DeleteAllCookies_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *WebDriver_DeleteAllCookies_Call) RunAndReturn(run func() error) *WebDriver_DeleteAllCookies_Call {
	_c.Call.Return(run)
	return _c
}

// Get provides a mock function with given fields: url
func (_m *WebDriver) Get(url string) error {
	ret := _m.Called(url)

	var r0 error
	if rf, ok := ret.Get(0).(func(string) error); ok {
		r0 = rf(url)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

type WebDriver_Get_Call struct {
	*mock.Call
}

// Get is a helper method to define mock.On call
//   - url string
func (_e *WebDriver_Expecter) Get(url interface{}) *WebDriver_Get_Call {
	return &WebDriver_Get_Call{Call: _e.mock.On("Get", url)}
}

func (_c *WebDriver_Get_Call) Return(_a0 error) *WebDriver_Get_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *WebDriver_Get_Call) RunAndReturn(run func(string) error) *WebDriver_Get_Call {
	_c.Call.Return(run)
	return _c
}

// MaximizeWindow provides a mock function with given fields: name
func (_m *WebDriver) MaximizeWindow(name string) error {
	ret := _m.Called(name)

	var r0 error
	if rf, ok := ret.Get(0).(func(string) error); ok {
		r0 = rf(name)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

type WebDriver_MaximizeWindow_Call struct {
	*mock.Call
}

// MaximizeWindow is a helper method to define mock.On call
//   - name string
func (_e *WebDriver_Expecter) MaximizeWindow(name interface{}) *WebDriver_MaximizeWindow_Call {
	return &WebDriver_MaximizeWindow_Call{Call: _e.mock.On("MaximizeWindow", name)}
}

func (_c *WebDriver_MaximizeWindow_Call) Return(_a0 error) *WebDriver_MaximizeWindow_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *WebDriver_MaximizeWindow_Call) RunAndReturn(run func(string) error) *WebDriver_MaximizeWindow_Call {
	_c.Call.Return(run)
	return _c
}

// Quit provides a mock function with given fields:
func (_m *WebDriver) Quit() error {
	ret := _m.Called()

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

type WebDriver_Quit_Call struct {
	*mock.Call
}

func (_e *WebDriver_Expecter) Quit() *WebDriver_Quit_Call {
	return &WebDriver_Quit_Call{Call: _e.mock.On("Quit")}
}

func (_c *WebDriver_Quit_Call) Return(_a0 error) *WebDriver_Quit_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *WebDriver_Quit_Call) RunAndReturn(run func() error) *WebDriver_Quit_Call {
	_c.Call.Return(run)
	return _c
}

// SessionID provides a mock function with given fields:
func (_m *WebDriver) SessionID() string {
	ret := _m.Called()

	var r0 string
	if rf, ok := ret.Get(0).(func() string); ok {
		r0 = rf()
	} else {
		r0 = ret.String(0)
	}

	return r0
}

type WebDriver_SessionID_Call struct {
	*mock.Call
}

func (_e *WebDriver_Expecter) SessionID() *WebDriver_SessionID_Call {
	return &WebDriver_SessionID_Call{Call: _e.mock.On("SessionID")}
}

func (_c *WebDriver_SessionID_Call) Return(_a0 string) *WebDriver_SessionID_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *WebDriver_SessionID_Call) RunAndReturn(run func() string) *WebDriver_SessionID_Call {
	_c.Call.Return(run)
	return _c
}

// Title provides a mock function with given fields:
func (_m *WebDriver) Title() (string, error) {
	ret := _m.Called()

	var r0 string
	var r1 error
	if rf, ok := ret.Get(0).(func() (string, error)); ok {
		return rf()
	}
	r0 = ret.String(0)
	r1 = ret.Error(1)

	return r0, r1
}

type WebDriver_Title_Call struct {
	*mock.Call
}

func (_e *WebDriver_Expecter) Title() *WebDriver_Title_Call {
	return &WebDriver_Title_Call{Call: _e.mock.On("Title")}
}

func (_c *WebDriver_Title_Call) Return(_a0 string, _a1 error) *WebDriver_Title_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *WebDriver_Title_Call) RunAndReturn(run func() (string, error)) *WebDriver_Title_Call {
	_c.Call.Return(run)
	return _c
}

// NewWebDriver creates a new instance of WebDriver. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewWebDriver(t interface {
	mock.TestingT
	Cleanup(func())
}) *WebDriver {
	m := &WebDriver{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
