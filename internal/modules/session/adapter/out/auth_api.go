package out

import (
	"context"

	"uniplan/internal/modules/session/domain"
	sessionout "uniplan/internal/modules/session/port/out"
	"uniplan/internal/platform/httpx"
)

type HTTPAuthAPI struct {
	client *httpx.Client
}

func NewHTTPAuthAPI(client *httpx.Client) sessionout.AuthAPI {
	return &HTTPAuthAPI{client: client}
}

type tokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type profileRecord struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	Program      string `json:"program"`
	ProgramLevel string `json:"program_level"`
	YearIntake   string `json:"year_intake"`
}

func (a *HTTPAuthAPI) Login(ctx context.Context, username, password string) (domain.Token, error) {
	body := map[string]string{"username": username, "password": password}
	var pair tokenPair
	if err := a.client.Post(ctx, "auth/token/", body, &pair); err != nil {
		return domain.Token{}, err
	}
	return domain.Token{Access: pair.Access, Refresh: pair.Refresh}, nil
}

func (a *HTTPAuthAPI) Register(ctx context.Context, reg domain.Registration) (domain.Token, error) {
	body := map[string]string{
		"username":      reg.Username,
		"email":         reg.Email,
		"password":      reg.Password,
		"program_level": reg.ProgramLevel,
		"program":       reg.Program,
		"year_intake":   reg.YearIntake,
	}
	var pair tokenPair
	if err := a.client.Post(ctx, "auth/register/", body, &pair); err != nil {
		return domain.Token{}, err
	}
	return domain.Token{Access: pair.Access, Refresh: pair.Refresh}, nil
}

func (a *HTTPAuthAPI) Me(ctx context.Context) (domain.Profile, error) {
	var record profileRecord
	if err := a.client.Get(ctx, "auth/me/", nil, &record); err != nil {
		return domain.Profile{}, err
	}
	return toProfile(record), nil
}

func (a *HTTPAuthAPI) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (domain.Profile, error) {
	body := map[string]string{}
	if update.Program != nil {
		body["program"] = *update.Program
	}
	if update.ProgramLevel != nil {
		body["program_level"] = *update.ProgramLevel
	}
	if update.YearIntake != nil {
		body["year_intake"] = *update.YearIntake
	}
	var record profileRecord
	if err := a.client.Patch(ctx, "auth/profile/", body, &record); err != nil {
		return domain.Profile{}, err
	}
	return toProfile(record), nil
}

func toProfile(r profileRecord) domain.Profile {
	return domain.Profile{
		Username:     r.Username,
		Email:        r.Email,
		Program:      r.Program,
		ProgramLevel: r.ProgramLevel,
		YearIntake:   r.YearIntake,
	}
}
