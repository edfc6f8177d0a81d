// Package fakewd is an in-memory WebDriver endpoint implementing the handful of W3C commands
// the harness issues. It backs integration tests and the serve-fake command.
package fakewd

import (
	"sort"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/wtframework/wtf/internal/router"
)

const sessionKey = "session"

type Session struct {
	ID            string
	Capabilities  map[string]interface{}
	URL           string
	CookieDeletes int
	Maximized     bool
	Created       time.Time
	Deleted       bool
	history       []string
	seq           int
}

// History returns every URL the session navigated to.
func (s Session) History() []string {
	return append([]string(nil), s.history...)
}

type Server struct {
	mu       sync.Mutex
	sessions map[string]*Session
	seq      int
	now      func() time.Time
	l        *zap.SugaredLogger
}

func NewServer(l *zap.Logger) *Server {
	return &Server{
		sessions: make(map[string]*Session),
		now:      time.Now,
		l:        l.Sugar().Named("fakewd"),
	}
}

// Echo builds the HTTP handler. Routes are served both at the root and under /wd/hub.
func (s *Server) Echo(l *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler

	if l.Core().Enabled(zap.DebugLevel) {
		accLogger := l.Named("access").Sugar()
		e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
			LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
				al := accLogger.With(zap.String("method", v.Method),
					zap.String("uri", v.URI),
					zap.Duration("latency", v.Latency),
					zap.Int("status", v.Status))
				if v.Error != nil {
					al = al.With(zap.Error(v.Error))
				}
				al.Debug()
				return nil
			},
			LogLatency:  true,
			LogMethod:   true,
			LogURI:      true,
			LogStatus:   true,
			LogError:    true,
			HandleError: true,
		}))
	}
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisablePrintStack: true,
		LogErrorFunc: func(c echo.Context, err error, _ []byte) error {
			l.With(zap.Error(err), zap.String("uri", c.Request().RequestURI)).Error("panic recovered")
			return err
		},
	}))

	s.register(e.Group(""))
	s.register(e.Group(router.WDHUBPath))
	return e
}

func (s *Server) register(g *echo.Group) {
	g.GET(router.StatusPath, s.Status)
	g.POST(router.SessionPath, s.CreateSession)
	g.DELETE(router.SessionRoute(""), s.DeleteSession, s.ValidateSession)
	g.POST(router.SessionRoute("/url"), s.Navigate, s.ValidateSession)
	g.GET(router.SessionRoute("/url"), s.CurrentURL, s.ValidateSession)
	g.GET(router.SessionRoute("/title"), s.Title, s.ValidateSession)
	g.DELETE(router.SessionRoute("/cookie"), s.DeleteCookies, s.ValidateSession)
	g.POST(router.SessionRoute("/window/maximize"), s.Maximize, s.ValidateSession)
	// JSON wire protocol spelling used by legacy clients
	g.POST(router.SessionRoute("/window/:handle/maximize"), s.Maximize, s.ValidateSession)
}

// Sessions returns a snapshot of every session ever created, oldest first.
func (s *Server) Sessions() []Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := make([]Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		res = append(res, *sess)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].seq < res[j].seq
	})
	return res
}

// Kill makes the session unknown to the server, like a browser that crashed or timed out.
func (s *Server) Kill(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[id]; ok {
		sess.Deleted = true
	}
}

func (s *Server) session(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok || sess.Deleted {
		return nil, false
	}
	return sess, true
}
