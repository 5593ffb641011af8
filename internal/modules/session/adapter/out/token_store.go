package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"uniplan/internal/modules/session/domain"
	sessionout "uniplan/internal/modules/session/port/out"
	apperrors "uniplan/internal/platform/errors"
)

type FileTokenStore struct {
	path string
}

func NewFileTokenStore(path string) sessionout.TokenStore {
	return &FileTokenStore{path: path}
}

func (s *FileTokenStore) Save(_ context.Context, token domain.Token) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	payload, err := json.MarshalIndent(token, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal token: %w", err)
	}
	// Token file is a credential; keep it owner-only.
	if err := os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	return nil
}

func (s *FileTokenStore) Load(_ context.Context) (domain.Token, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Token{}, apperrors.ErrNoSession
		}
		return domain.Token{}, fmt.Errorf("read token: %w", err)
	}
	token := domain.Token{}
	if err := json.Unmarshal(payload, &token); err != nil {
		return domain.Token{}, fmt.Errorf("decode token: %w", err)
	}
	if !token.Present() {
		return domain.Token{}, apperrors.ErrNoSession
	}
	return token, nil
}

func (s *FileTokenStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}
