package fakewd

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/wtframework/wtf/pkg/models"
)

// ErrorHandler renders W3C errors in the WebDriver error format, everything else as plain text.
// Requests matching no route are reported as unknown commands.
func ErrorHandler(err error, c echo.Context) {
	httpErr := &echo.HTTPError{}
	if errors.As(err, &httpErr) {
		if httpErr.Code != http.StatusNotFound && httpErr.Code != http.StatusMethodNotAllowed {
			c.Echo().DefaultHTTPErrorHandler(err, c)
			return
		}
		err = models.UnknownCommandError(c.Request().Method, c.Request().URL.Path)
	}

	if c.Response().Committed {
		return
	}

	w3cErr := &models.W3CError{}
	if errors.As(err, &w3cErr) {
		_ = c.JSON(w3cErr.Code(), w3cErr)
		return
	}

	_ = c.String(http.StatusInternalServerError, err.Error())
}
