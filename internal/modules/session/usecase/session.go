package usecase

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"uniplan/internal/modules/session/domain"
	sessiondto "uniplan/internal/modules/session/dto"
	sessionin "uniplan/internal/modules/session/port/in"
	sessionout "uniplan/internal/modules/session/port/out"
	"uniplan/internal/modules/session/service"
)

type Interactor struct {
	svc      *service.SessionService
	api      sessionout.AuthAPI
	validate *validator.Validate
}

func NewInteractor(svc *service.SessionService, api sessionout.AuthAPI) sessionin.Usecase {
	return &Interactor{svc: svc, api: api, validate: validator.New()}
}

func (i *Interactor) Login(ctx context.Context, input sessiondto.LoginInput) error {
	if err := i.validate.Struct(input); err != nil {
		return fmt.Errorf("validate login input: %w", err)
	}
	token, err := i.api.Login(ctx, input.Username, input.Password)
	if err != nil {
		return err
	}
	return i.svc.Set(ctx, token)
}

func (i *Interactor) Register(ctx context.Context, input sessiondto.RegisterInput) error {
	if err := i.validate.Struct(input); err != nil {
		return fmt.Errorf("validate registration: %w", err)
	}
	token, err := i.api.Register(ctx, domain.Registration{
		Username:     input.Username,
		Email:        input.Email,
		Password:     input.Password,
		ProgramLevel: input.ProgramLevel,
		Program:      input.Program,
		YearIntake:   input.YearIntake,
	})
	if err != nil {
		return err
	}
	return i.svc.Set(ctx, token)
}

func (i *Interactor) Logout(ctx context.Context) error {
	return i.svc.Clear(ctx)
}

func (i *Interactor) Me(ctx context.Context) (sessiondto.ProfileOutput, error) {
	profile, err := i.api.Me(ctx)
	if err != nil {
		return sessiondto.ProfileOutput{}, err
	}
	return toProfileOutput(profile), nil
}

func (i *Interactor) UpdateProfile(ctx context.Context, input sessiondto.UpdateProfileInput) (sessiondto.ProfileOutput, error) {
	if err := i.validate.Struct(input); err != nil {
		return sessiondto.ProfileOutput{}, fmt.Errorf("validate profile update: %w", err)
	}
	profile, err := i.api.UpdateProfile(ctx, domain.ProfileUpdate{
		Program:      input.Program,
		ProgramLevel: input.ProgramLevel,
		YearIntake:   input.YearIntake,
	})
	if err != nil {
		return sessiondto.ProfileOutput{}, err
	}
	return toProfileOutput(profile), nil
}

func (i *Interactor) Status(context.Context) sessiondto.StatusOutput {
	return sessiondto.StatusOutput{Authenticated: i.svc.Authenticated()}
}

// CheckRoute applies the server-side route guard locally: the decision is
// driven by the mirrored cookie, not the token store, matching the backend's
// view of the session.
func (i *Interactor) CheckRoute(ctx context.Context, path string) sessiondto.RouteCheckOutput {
	decision := domain.GuardRoute(path, i.svc.CookieLive(ctx))
	return sessiondto.RouteCheckOutput{Allowed: decision.Allow, RedirectTo: decision.RedirectTo}
}

func toProfileOutput(p domain.Profile) sessiondto.ProfileOutput {
	return sessiondto.ProfileOutput{
		Username:     p.Username,
		Email:        p.Email,
		Program:      p.Program,
		ProgramLevel: p.ProgramLevel,
		YearIntake:   p.YearIntake,
	}
}
