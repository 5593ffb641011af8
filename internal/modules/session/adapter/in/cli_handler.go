package in

import (
	"context"

	sessiondto "uniplan/internal/modules/session/dto"
	sessionin "uniplan/internal/modules/session/port/in"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Login(ctx context.Context, username, password string) error {
	return h.usecase.Login(ctx, sessiondto.LoginInput{Username: username, Password: password})
}

func (h CLIHandler) Register(ctx context.Context, input sessiondto.RegisterInput) error {
	return h.usecase.Register(ctx, input)
}

func (h CLIHandler) Logout(ctx context.Context) error {
	return h.usecase.Logout(ctx)
}

func (h CLIHandler) Me(ctx context.Context) (sessiondto.ProfileOutput, error) {
	return h.usecase.Me(ctx)
}

func (h CLIHandler) UpdateProfile(ctx context.Context, input sessiondto.UpdateProfileInput) (sessiondto.ProfileOutput, error) {
	return h.usecase.UpdateProfile(ctx, input)
}

func (h CLIHandler) Status(ctx context.Context) sessiondto.StatusOutput {
	return h.usecase.Status(ctx)
}

func (h CLIHandler) CheckRoute(ctx context.Context, path string) sessiondto.RouteCheckOutput {
	return h.usecase.CheckRoute(ctx, path)
}
