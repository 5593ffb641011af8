package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"uniplan/internal/modules/session/domain"
	sessionout "uniplan/internal/modules/session/port/out"
	"uniplan/internal/platform/clock"
)

// FileCookieMirror persists the accessToken cookie the route guard reads.
// Logout does not delete the file: it keeps the cookie with its expiry forced
// to the Unix epoch, the same way the browser client invalidates it.
type FileCookieMirror struct {
	path  string
	clock clock.Clock
}

func NewFileCookieMirror(path string, clk clock.Clock) sessionout.CookieMirror {
	return &FileCookieMirror{path: path, clock: clk}
}

func (m *FileCookieMirror) Set(_ context.Context, access string) error {
	return m.write(domain.NewSessionCookie(access))
}

func (m *FileCookieMirror) Expire(_ context.Context) error {
	cookie := domain.NewSessionCookie("")
	cookie.Expires = time.Unix(0, 0).UTC()
	return m.write(cookie)
}

func (m *FileCookieMirror) Live(_ context.Context) bool {
	payload, err := os.ReadFile(m.path)
	if err != nil {
		return false
	}
	cookie := domain.Cookie{}
	if err := json.Unmarshal(payload, &cookie); err != nil {
		return false
	}
	return cookie.Live(m.clock.Now())
}

func (m *FileCookieMirror) write(cookie domain.Cookie) error {
	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	payload, err := json.MarshalIndent(cookie, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal cookie: %w", err)
	}
	if err := os.WriteFile(m.path, payload, 0o600); err != nil {
		return fmt.Errorf("write cookie mirror: %w", err)
	}
	return nil
}
