package models

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

const (
	InvalidSessionIDErr = "invalid session id"
	UnknownCommandErr   = "unknown command"
	InvalidArgumentErr  = "invalid argument"
)

var ErrMissingConfiguration = errors.New("missing configuration")

// UnsupportedBrowserTypeError is returned when a browser key is not known to the chosen driver strategy.
type UnsupportedBrowserTypeError struct {
	Browser  string
	Strategy DriverType
}

func (e *UnsupportedBrowserTypeError) Error() string {
	if e.Strategy == "" {
		return fmt.Sprintf("unsupported browser type %q", e.Browser)
	}
	return fmt.Sprintf("unsupported browser type %q for %s driver", e.Browser, e.Strategy)
}

func IsUnsupportedBrowserType(err error) bool {
	var e *UnsupportedBrowserTypeError
	return errors.As(err, &e)
}

func MissingConfiguration(key string) error {
	return errors.Wrapf(ErrMissingConfiguration, "%s setting is missing", key)
}

type W3CError struct {
	code  int
	err   error
	Value ErrorBody `json:"value"`
}

func (w *W3CError) Error() string {
	return w.err.Error()
}

func (w *W3CError) Code() int {
	return w.code
}

func (w *W3CError) Unwrap() error {
	return w.err
}

type ErrorBody struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	StackTrace string `json:"stacktrace"`
}

func NewW3CErr(code int, errText string, err error) *W3CError {
	return &W3CError{
		code: code,
		err:  err,
		Value: ErrorBody{
			Error:      errText,
			Message:    err.Error(),
			StackTrace: fmt.Sprintf("%+v", err),
		},
	}
}

func InvalidSessionError(id string) *W3CError {
	return NewW3CErr(http.StatusNotFound, InvalidSessionIDErr, errors.Errorf("session %s does not exist", id))
}

func UnknownCommandError(method, path string) *W3CError {
	return NewW3CErr(http.StatusNotFound, UnknownCommandErr, errors.Errorf("unknown command %s %s", method, path))
}

func InvalidArgumentError(err error) *W3CError {
	return NewW3CErr(http.StatusBadRequest, InvalidArgumentErr, err)
}
