package models

import (
	"errors"
	"net/http"
	"testing"

	. "github.com/onsi/gomega"
	pkgerrors "github.com/pkg/errors"
)

func TestW3CErr(t *testing.T) {
	g := NewWithT(t)
	err := errors.New("test error")

	got := NewW3CErr(123, "test", err)

	g.Expect(got).To(Equal(&W3CError{
		code: 123,
		err:  err,
		Value: ErrorBody{
			Error:      "test",
			Message:    "test error",
			StackTrace: "test error",
		},
	}))

	g.Expect(got.Code()).To(Equal(123))
	g.Expect(got.Error()).To(Equal("test error"))
	g.Expect(got.Unwrap()).To(BeIdenticalTo(err))
}

func TestInvalidSessionError(t *testing.T) {
	g := NewWithT(t)

	got := InvalidSessionError("abc")
	g.Expect(got.Code()).To(Equal(http.StatusNotFound))
	g.Expect(got.Value.Error).To(Equal(InvalidSessionIDErr))
	g.Expect(got.Value.Message).To(Equal("session abc does not exist"))
}

func TestUnknownCommandError(t *testing.T) {
	g := NewWithT(t)

	got := UnknownCommandError(http.MethodGet, "/session/abc/element")
	g.Expect(got.Code()).To(Equal(http.StatusNotFound))
	g.Expect(got.Value.Error).To(Equal(UnknownCommandErr))
	g.Expect(got.Value.Message).To(Equal("unknown command GET /session/abc/element"))
}

func TestUnsupportedBrowserTypeError(t *testing.T) {
	g := NewWithT(t)

	err := pkgerrors.Wrap(&UnsupportedBrowserTypeError{Browser: "MOSAIC", Strategy: RemoteDriver}, "create")
	g.Expect(IsUnsupportedBrowserType(err)).To(BeTrue())
	g.Expect(err.Error()).To(Equal(`create: unsupported browser type "MOSAIC" for REMOTE driver`))

	g.Expect((&UnsupportedBrowserTypeError{Browser: "x"}).Error()).To(Equal(`unsupported browser type "x"`))
	g.Expect(IsUnsupportedBrowserType(errors.New("other"))).To(BeFalse())
}

func TestMissingConfiguration(t *testing.T) {
	g := NewWithT(t)

	err := MissingConfiguration("selenium.type")
	g.Expect(errors.Is(err, ErrMissingConfiguration)).To(BeTrue())
	g.Expect(err.Error()).To(Equal("selenium.type setting is missing: missing configuration"))
}
