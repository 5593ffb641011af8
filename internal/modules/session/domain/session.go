package domain

import (
	"net/url"
	"strings"
	"time"
)

// Token is the bearer pair issued by /auth/token/ and /auth/register/.
// Refresh is stored but never used for automatic renewal.
type Token struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

func (t Token) Present() bool { return t.Access != "" }

// Cookie mirrors the access token for the server-side route guard. A zero
// Expires means a session cookie; logout forces Expires to the Unix epoch.
type Cookie struct {
	Name    string    `json:"name"`
	Value   string    `json:"value"`
	Path    string    `json:"path"`
	Expires time.Time `json:"expires"`
}

const CookieName = "accessToken"

func NewSessionCookie(access string) Cookie {
	return Cookie{Name: CookieName, Value: access, Path: "/"}
}

func (c Cookie) Expired(now time.Time) bool {
	return !c.Expires.IsZero() && !c.Expires.After(now)
}

func (c Cookie) Live(now time.Time) bool {
	return c.Value != "" && !c.Expired(now)
}

// Profile is the authenticated user's record from /auth/me/.
type Profile struct {
	Username     string
	Email        string
	Program      string
	ProgramLevel string
	YearIntake   string
}

// Registration is the payload for /auth/register/.
type Registration struct {
	Username     string
	Email        string
	Password     string
	ProgramLevel string
	Program      string
	YearIntake   string
}

// ProfileUpdate carries the PATCHable profile fields. Nil means unchanged.
type ProfileUpdate struct {
	Program      *string
	ProgramLevel *string
	YearIntake   *string
}

// RouteDecision is the outcome of the route guard for one page request.
type RouteDecision struct {
	Allow      bool
	RedirectTo string
}

const loginRoute = "/auth/login"

// GuardRoute gates protected page paths. Health, auth, favicon, and
// static-looking paths pass through; everything else requires a live cookie
// and otherwise redirects to the login route with the original path in next.
func GuardRoute(path string, authenticated bool) RouteDecision {
	if strings.Contains(path, "/health") ||
		strings.HasPrefix(path, "/auth") ||
		strings.HasPrefix(path, "/favicon") ||
		strings.Contains(lastSegment(path), ".") {
		return RouteDecision{Allow: true}
	}
	if authenticated {
		return RouteDecision{Allow: true}
	}
	q := url.Values{}
	q.Set("next", path)
	return RouteDecision{RedirectTo: loginRoute + "?" + q.Encode()}
}

func lastSegment(path string) string {
	idx := strings.LastIndex(path, "/")
	if idx < 0 {
		return path
	}
	return path[idx+1:]
}
