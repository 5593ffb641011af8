package bootstrap

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	cataloginadapter "uniplan/internal/modules/catalog/adapter/in"
	catalogoutadapter "uniplan/internal/modules/catalog/adapter/out"
	catalogin "uniplan/internal/modules/catalog/port/in"
	catalogservice "uniplan/internal/modules/catalog/service"
	catalogusecase "uniplan/internal/modules/catalog/usecase"
	plannerinadapter "uniplan/internal/modules/planner/adapter/in"
	planneroutadapter "uniplan/internal/modules/planner/adapter/out"
	plannerin "uniplan/internal/modules/planner/port/in"
	plannerservice "uniplan/internal/modules/planner/service"
	plannerusecase "uniplan/internal/modules/planner/usecase"
	programinadapter "uniplan/internal/modules/program/adapter/in"
	programoutadapter "uniplan/internal/modules/program/adapter/out"
	programin "uniplan/internal/modules/program/port/in"
	programusecase "uniplan/internal/modules/program/usecase"
	reviewinadapter "uniplan/internal/modules/review/adapter/in"
	reviewoutadapter "uniplan/internal/modules/review/adapter/out"
	reviewin "uniplan/internal/modules/review/port/in"
	reviewusecase "uniplan/internal/modules/review/usecase"
	sessioninadapter "uniplan/internal/modules/session/adapter/in"
	sessionoutadapter "uniplan/internal/modules/session/adapter/out"
	sessionin "uniplan/internal/modules/session/port/in"
	sessionservice "uniplan/internal/modules/session/service"
	sessionusecase "uniplan/internal/modules/session/usecase"
	"uniplan/internal/platform/clock"
	"uniplan/internal/platform/config"
	"uniplan/internal/platform/httpx"
	"uniplan/internal/platform/logging"
	uiapp "uniplan/internal/ui/app"
)

type App struct {
	SessionCLI sessioninadapter.CLIHandler
	CatalogCLI cataloginadapter.CLIHandler
	PlannerCLI plannerinadapter.CLIHandler
	ReviewCLI  reviewinadapter.CLIHandler
	ProgramCLI programinadapter.CLIHandler

	// Usecases handed to the TUI layer.
	Session sessionin.Usecase
	Catalog catalogin.Usecase
	Planner plannerin.Usecase
	Review  reviewin.Usecase
	Program programin.Usecase

	Log zerolog.Logger

	logCloser io.Closer
}

func New(cfg config.Config) (*App, error) {
	log, closer, err := logging.New(cfg.LogPath(), cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}
	clk := clock.SystemClock{}

	sessionSvc := sessionservice.NewSessionService(
		sessionoutadapter.NewFileTokenStore(cfg.TokenPath()),
		sessionoutadapter.NewFileCookieMirror(cfg.CookiePath(), clk),
	)

	client, err := httpx.New(cfg.APIBaseURL, sessionSvc, log)
	if err != nil {
		_ = closer.Close()
		return nil, fmt.Errorf("new api client: %w", err)
	}

	sessionUC := sessionusecase.NewInteractor(sessionSvc, sessionoutadapter.NewHTTPAuthAPI(client))

	catalogAPI := catalogoutadapter.NewHTTPCatalogAPI(client)
	catalogUC := catalogusecase.NewInteractor(catalogservice.NewCatalogService(catalogAPI), catalogAPI)

	plannerUC := plannerusecase.NewInteractor(
		plannerservice.NewPlannerService(),
		planneroutadapter.NewHTTPPlannerAPI(client),
		planneroutadapter.NewHTTPSemesterAPI(client),
		catalogUC,
		sessionUC,
		log,
	)

	reviewUC := reviewusecase.NewInteractor(reviewoutadapter.NewHTTPReviewAPI(client), catalogUC, sessionUC)
	programUC := programusecase.NewInteractor(programoutadapter.NewHTTPProgramAPI(client))

	return &App{
		SessionCLI: sessioninadapter.NewCLIHandler(sessionUC),
		CatalogCLI: cataloginadapter.NewCLIHandler(catalogUC),
		PlannerCLI: plannerinadapter.NewCLIHandler(plannerUC),
		ReviewCLI:  reviewinadapter.NewCLIHandler(reviewUC),
		ProgramCLI: programinadapter.NewCLIHandler(programUC),
		Session:    sessionUC,
		Catalog:    catalogUC,
		Planner:    plannerUC,
		Review:     reviewUC,
		Program:    programUC,
		Log:        log,
		logCloser:  closer,
	}, nil
}

func (a *App) Close() {
	if a.logCloser != nil {
		_ = a.logCloser.Close()
	}
}

func RunTUI(app *App) error {
	defer app.Close()
	model := uiapp.NewModel(app.Session, app.Catalog, app.Planner, app.Review, app.Program)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
