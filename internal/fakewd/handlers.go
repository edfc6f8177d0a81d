package fakewd

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/wtframework/wtf/internal/router"
	"github.com/wtframework/wtf/pkg/models"
)

const blankPage = "about:blank"

func (s *Server) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, models.NewWebDriverStatus(true, "fake webdriver is ready"))
}

func (s *Server) CreateSession(c echo.Context) error {
	var req models.W3CNewSessionRequest
	if err := decodeBody(c, &req); err != nil {
		return models.InvalidArgumentError(errors.Wrap(err, "failed to parse new session request"))
	}

	sess := &Session{
		ID:           uuid.NewString(),
		Capabilities: req.Merge(),
		URL:          blankPage,
		Created:      s.now(),
	}
	s.mu.Lock()
	s.seq++
	sess.seq = s.seq
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	s.l.Infow("session created", zap.String("id", sess.ID), zap.Any("caps", sess.Capabilities))
	return c.JSON(http.StatusOK, models.W3CValue{
		Value: models.W3CSession{
			SessionID:    sess.ID,
			Capabilities: sess.Capabilities,
		},
	})
}

// ValidateSession resolves the session path parameter, unknown sessions are rejected with invalid session id.
func (s *Server) ValidateSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param(router.SessionParam)
		sess, ok := s.session(id)
		if !ok {
			return models.InvalidSessionError(id)
		}
		c.Set(sessionKey, sess)
		return next(c)
	}
}

func (s *Server) DeleteSession(c echo.Context) error {
	sess := getSession(c)
	s.mu.Lock()
	sess.Deleted = true
	s.mu.Unlock()

	s.l.Infow("session deleted", zap.String("id", sess.ID))
	return nullValue(c)
}

func (s *Server) Navigate(c echo.Context) error {
	var req models.W3CNavigateRequest
	if err := decodeBody(c, &req); err != nil {
		return models.InvalidArgumentError(errors.Wrap(err, "failed to parse navigate request"))
	}
	if req.URL == "" {
		return models.InvalidArgumentError(errors.New("url is missing"))
	}

	sess := getSession(c)
	s.mu.Lock()
	sess.URL = req.URL
	sess.history = append(sess.history, req.URL)
	s.mu.Unlock()
	return nullValue(c)
}

func (s *Server) CurrentURL(c echo.Context) error {
	sess := getSession(c)
	s.mu.Lock()
	u := sess.URL
	s.mu.Unlock()
	return c.JSON(http.StatusOK, models.W3CValue{Value: u})
}

// Title is derived from the current URL, blank pages have no title.
func (s *Server) Title(c echo.Context) error {
	sess := getSession(c)
	s.mu.Lock()
	u := sess.URL
	s.mu.Unlock()

	title := ""
	if u != blankPage {
		title = "Fake page " + u
	}
	return c.JSON(http.StatusOK, models.W3CValue{Value: title})
}

func (s *Server) DeleteCookies(c echo.Context) error {
	sess := getSession(c)
	s.mu.Lock()
	sess.CookieDeletes++
	s.mu.Unlock()
	return nullValue(c)
}

func (s *Server) Maximize(c echo.Context) error {
	sess := getSession(c)
	s.mu.Lock()
	sess.Maximized = true
	s.mu.Unlock()
	return c.JSON(http.StatusOK, models.W3CValue{
		Value: models.W3CRect{Width: 1920, Height: 1080},
	})
}

func getSession(c echo.Context) *Session {
	return c.Get(sessionKey).(*Session)
}

// decodeBody reads a JSON body whatever the request content type is.
func decodeBody(c echo.Context, v interface{}) error {
	return json.NewDecoder(c.Request().Body).Decode(v)
}

func nullValue(c echo.Context) error {
	return c.JSON(http.StatusOK, models.W3CValue{})
}
