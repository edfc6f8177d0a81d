package router

import "fmt"

const (
	WDHUBPath    = "/wd/hub"
	StatusPath   = "/status"
	SessionPath  = "/session"
	SessionParam = "sess"
)

// SessRoute substitutes the session path parameter name into s.
func SessRoute(s string) string {
	return fmt.Sprintf(s, SessionParam)
}

// SessionRoute is the route of the session subresource sub, e.g. SessionRoute("/url").
func SessionRoute(sub string) string {
	return SessRoute(SessionPath+"/:%s") + sub
}
