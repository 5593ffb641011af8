package service

import (
	"context"
	"sync"

	"uniplan/internal/modules/session/domain"
	sessionout "uniplan/internal/modules/session/port/out"
	apperrors "uniplan/internal/platform/errors"
)

// SessionService is the injected session context: one place holding the
// bearer token, with explicit set/clear and subscriber notification, instead
// of ambient token lookups scattered across call sites. It also satisfies the
// transport layer's TokenSource.
type SessionService struct {
	store  sessionout.TokenStore
	mirror sessionout.CookieMirror

	mu          sync.Mutex
	token       domain.Token
	subscribers []func(authenticated bool)
}

func NewSessionService(store sessionout.TokenStore, mirror sessionout.CookieMirror) *SessionService {
	s := &SessionService{store: store, mirror: mirror}
	if token, err := store.Load(context.Background()); err == nil {
		s.token = token
	}
	return s
}

// Token returns the current access token, or "" when unauthenticated.
func (s *SessionService) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token.Access
}

func (s *SessionService) Authenticated() bool {
	return s.Token() != ""
}

// Set persists the token pair, mirrors the access token into the cookie, and
// notifies subscribers.
func (s *SessionService) Set(ctx context.Context, token domain.Token) error {
	if !token.Present() {
		return apperrors.ErrInvalidInput
	}
	if err := s.store.Save(ctx, token); err != nil {
		return err
	}
	if err := s.mirror.Set(ctx, token.Access); err != nil {
		return err
	}
	s.mu.Lock()
	s.token = token
	subs := append([]func(bool){}, s.subscribers...)
	s.mu.Unlock()
	for _, fn := range subs {
		fn(true)
	}
	return nil
}

// Clear destroys the session: token store wiped, cookie expiry forced to the
// epoch, subscribers notified.
func (s *SessionService) Clear(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return err
	}
	if err := s.mirror.Expire(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	s.token = domain.Token{}
	subs := append([]func(bool){}, s.subscribers...)
	s.mu.Unlock()
	for _, fn := range subs {
		fn(false)
	}
	return nil
}

// Subscribe registers fn to run on every authentication change.
func (s *SessionService) Subscribe(fn func(authenticated bool)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *SessionService) CookieLive(ctx context.Context) bool {
	return s.mirror.Live(ctx)
}
