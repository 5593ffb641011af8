package out

import (
	"context"

	"uniplan/internal/modules/session/domain"
)

type TokenStore interface {
	Save(ctx context.Context, token domain.Token) error
	Load(ctx context.Context) (domain.Token, error)
	Clear(ctx context.Context) error
}

type CookieMirror interface {
	Set(ctx context.Context, access string) error
	Expire(ctx context.Context) error
	Live(ctx context.Context) bool
}

type AuthAPI interface {
	Login(ctx context.Context, username, password string) (domain.Token, error)
	Register(ctx context.Context, reg domain.Registration) (domain.Token, error)
	Me(ctx context.Context) (domain.Profile, error)
	UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (domain.Profile, error)
}
