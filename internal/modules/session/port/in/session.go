package in

import (
	"context"

	"uniplan/internal/modules/session/dto"
)

type Usecase interface {
	Login(ctx context.Context, input dto.LoginInput) error
	Register(ctx context.Context, input dto.RegisterInput) error
	Logout(ctx context.Context) error
	Me(ctx context.Context) (dto.ProfileOutput, error)
	UpdateProfile(ctx context.Context, input dto.UpdateProfileInput) (dto.ProfileOutput, error)
	Status(ctx context.Context) dto.StatusOutput
	CheckRoute(ctx context.Context, path string) dto.RouteCheckOutput
}
