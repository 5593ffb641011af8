package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	sessionout "uniplan/internal/modules/session/adapter/out"
	"uniplan/internal/modules/session/domain"
	sessiondto "uniplan/internal/modules/session/dto"
	"uniplan/internal/modules/session/service"
	"uniplan/internal/modules/session/usecase"
	"uniplan/internal/platform/clock"
)

type fakeAuthAPI struct {
	token      domain.Token
	loginErr   error
	profile    domain.Profile
	lastUpdate domain.ProfileUpdate
}

func (f *fakeAuthAPI) Login(context.Context, string, string) (domain.Token, error) {
	if f.loginErr != nil {
		return domain.Token{}, f.loginErr
	}
	return f.token, nil
}

func (f *fakeAuthAPI) Register(context.Context, domain.Registration) (domain.Token, error) {
	return f.token, nil
}

func (f *fakeAuthAPI) Me(context.Context) (domain.Profile, error) {
	return f.profile, nil
}

func (f *fakeAuthAPI) UpdateProfile(_ context.Context, update domain.ProfileUpdate) (domain.Profile, error) {
	f.lastUpdate = update
	profile := f.profile
	if update.Program != nil {
		profile.Program = *update.Program
	}
	return profile, nil
}

func newSession(t *testing.T, api *fakeAuthAPI) (*service.SessionService, string) {
	t.Helper()
	dir := t.TempDir()
	svc := service.NewSessionService(
		sessionout.NewFileTokenStore(filepath.Join(dir, "token.json")),
		sessionout.NewFileCookieMirror(filepath.Join(dir, "cookies.txt"), clock.SystemClock{}),
	)
	return svc, dir
}

func TestLoginPersistsTokenAndCookie(t *testing.T) {
	t.Parallel()
	api := &fakeAuthAPI{token: domain.Token{Access: "acc-1", Refresh: "ref-1"}}
	svc, dir := newSession(t, api)
	uc := usecase.NewInteractor(svc, api)

	if err := uc.Login(context.Background(), sessiondto.LoginInput{Username: "alex", Password: "pw"}); err != nil {
		t.Fatalf("login: %v", err)
	}
	if !uc.Status(context.Background()).Authenticated {
		t.Fatalf("status must report authenticated")
	}
	if svc.Token() != "acc-1" {
		t.Fatalf("token source must serve the access token, got %q", svc.Token())
	}

	payload, err := os.ReadFile(filepath.Join(dir, "token.json"))
	if err != nil {
		t.Fatalf("read token file: %v", err)
	}
	if !strings.Contains(string(payload), "ref-1") {
		t.Fatalf("refresh token must be persisted: %s", payload)
	}
	if !svc.CookieLive(context.Background()) {
		t.Fatalf("cookie mirror must be live after login")
	}
}

func TestLoginValidatesInputBeforeNetwork(t *testing.T) {
	t.Parallel()
	api := &fakeAuthAPI{loginErr: errors.New("must not be called")}
	svc, _ := newSession(t, api)
	uc := usecase.NewInteractor(svc, api)

	err := uc.Login(context.Background(), sessiondto.LoginInput{Username: "", Password: "pw"})
	if err == nil || strings.Contains(err.Error(), "must not be called") {
		t.Fatalf("expected local validation failure, got %v", err)
	}
}

func TestLogoutExpiresCookieToEpoch(t *testing.T) {
	t.Parallel()
	api := &fakeAuthAPI{token: domain.Token{Access: "acc-1", Refresh: "ref-1"}}
	svc, dir := newSession(t, api)
	uc := usecase.NewInteractor(svc, api)

	if err := uc.Login(context.Background(), sessiondto.LoginInput{Username: "alex", Password: "pw"}); err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := uc.Logout(context.Background()); err != nil {
		t.Fatalf("logout: %v", err)
	}

	if uc.Status(context.Background()).Authenticated {
		t.Fatalf("status must report signed out")
	}
	if _, err := os.Stat(filepath.Join(dir, "token.json")); !os.IsNotExist(err) {
		t.Fatalf("token file must be removed, got %v", err)
	}

	// The cookie file survives with its expiry forced to the epoch.
	payload, err := os.ReadFile(filepath.Join(dir, "cookies.txt"))
	if err != nil {
		t.Fatalf("read cookie mirror: %v", err)
	}
	var cookie domain.Cookie
	if err := json.Unmarshal(payload, &cookie); err != nil {
		t.Fatalf("decode cookie: %v", err)
	}
	if !cookie.Expires.Equal(time.Unix(0, 0).UTC()) {
		t.Fatalf("expected epoch expiry, got %v", cookie.Expires)
	}
	if svc.CookieLive(context.Background()) {
		t.Fatalf("expired cookie must not be live")
	}
}

func TestSessionSurvivesRestart(t *testing.T) {
	t.Parallel()
	api := &fakeAuthAPI{token: domain.Token{Access: "acc-1", Refresh: "ref-1"}}
	dir := t.TempDir()
	tokenPath := filepath.Join(dir, "token.json")
	cookiePath := filepath.Join(dir, "cookies.txt")

	first := service.NewSessionService(
		sessionout.NewFileTokenStore(tokenPath),
		sessionout.NewFileCookieMirror(cookiePath, clock.SystemClock{}),
	)
	uc := usecase.NewInteractor(first, api)
	if err := uc.Login(context.Background(), sessiondto.LoginInput{Username: "alex", Password: "pw"}); err != nil {
		t.Fatalf("login: %v", err)
	}

	// A new service over the same state dir picks the token up again.
	second := service.NewSessionService(
		sessionout.NewFileTokenStore(tokenPath),
		sessionout.NewFileCookieMirror(cookiePath, clock.SystemClock{}),
	)
	if second.Token() != "acc-1" {
		t.Fatalf("restarted service must reload the token, got %q", second.Token())
	}
}

func TestSubscribersSeeAuthChanges(t *testing.T) {
	t.Parallel()
	api := &fakeAuthAPI{token: domain.Token{Access: "acc-1", Refresh: "ref-1"}}
	svc, _ := newSession(t, api)
	uc := usecase.NewInteractor(svc, api)

	var seen []bool
	svc.Subscribe(func(authenticated bool) { seen = append(seen, authenticated) })

	if err := uc.Login(context.Background(), sessiondto.LoginInput{Username: "alex", Password: "pw"}); err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := uc.Logout(context.Background()); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if len(seen) != 2 || !seen[0] || seen[1] {
		t.Fatalf("expected [true false], got %v", seen)
	}
}

func TestCheckRouteFollowsCookieState(t *testing.T) {
	t.Parallel()
	api := &fakeAuthAPI{token: domain.Token{Access: "acc-1", Refresh: "ref-1"}}
	svc, _ := newSession(t, api)
	uc := usecase.NewInteractor(svc, api)

	out := uc.CheckRoute(context.Background(), "/planner")
	if out.Allowed || out.RedirectTo != "/auth/login?next=%2Fplanner" {
		t.Fatalf("signed-out route check wrong: %+v", out)
	}

	if err := uc.Login(context.Background(), sessiondto.LoginInput{Username: "alex", Password: "pw"}); err != nil {
		t.Fatalf("login: %v", err)
	}
	if out := uc.CheckRoute(context.Background(), "/planner"); !out.Allowed {
		t.Fatalf("signed-in route check must allow, got %+v", out)
	}
}

func TestRegisterValidationCatchesBadInput(t *testing.T) {
	t.Parallel()
	api := &fakeAuthAPI{token: domain.Token{Access: "acc-1", Refresh: "ref-1"}}
	svc, _ := newSession(t, api)
	uc := usecase.NewInteractor(svc, api)

	err := uc.Register(context.Background(), sessiondto.RegisterInput{
		Username:     "al",
		Email:        "not-an-email",
		Password:     "short",
		ProgramLevel: "DIPLOMA",
		Program:      "Software Engineering",
		YearIntake:   "SEM1",
	})
	if err == nil {
		t.Fatalf("expected validation failure")
	}
	if uc.Status(context.Background()).Authenticated {
		t.Fatalf("failed registration must not create a session")
	}
}

func TestUpdateProfileSendsOnlyChangedFields(t *testing.T) {
	t.Parallel()
	api := &fakeAuthAPI{
		token:   domain.Token{Access: "acc-1", Refresh: "ref-1"},
		profile: domain.Profile{Username: "alex", Program: "Old Program", ProgramLevel: "UNDERGRAD"},
	}
	svc, _ := newSession(t, api)
	uc := usecase.NewInteractor(svc, api)

	program := "Master of Data Science (Postgraduate)"
	out, err := uc.UpdateProfile(context.Background(), sessiondto.UpdateProfileInput{Program: &program})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if out.Program != program {
		t.Fatalf("expected new program echoed, got %q", out.Program)
	}
	if api.lastUpdate.Program == nil || api.lastUpdate.ProgramLevel != nil || api.lastUpdate.YearIntake != nil {
		t.Fatalf("only the program field may be sent: %+v", api.lastUpdate)
	}
}
