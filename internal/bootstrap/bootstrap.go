package bootstrap

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	authinadapter "trak/internal/modules/auth/adapter/in"
	authoutadapter "trak/internal/modules/auth/adapter/out"
	authin "trak/internal/modules/auth/port/in"
	authservice "trak/internal/modules/auth/service"
	authusecase "trak/internal/modules/auth/usecase"
	coursesinadapter "trak/internal/modules/courses/adapter/in"
	coursesoutadapter "trak/internal/modules/courses/adapter/out"
	coursesin "trak/internal/modules/courses/port/in"
	coursesservice "trak/internal/modules/courses/service"
	coursesusecase "trak/internal/modules/courses/usecase"
	dashinadapter "trak/internal/modules/dashboard/adapter/in"
	dashoutadapter "trak/internal/modules/dashboard/adapter/out"
	dashin "trak/internal/modules/dashboard/port/in"
	dashservice "trak/internal/modules/dashboard/service"
	dashusecase "trak/internal/modules/dashboard/usecase"
	studyloginadapter "trak/internal/modules/studylog/adapter/in"
	studylogoutadapter "trak/internal/modules/studylog/adapter/out"
	studylogin "trak/internal/modules/studylog/port/in"
	studylogservice "trak/internal/modules/studylog/service"
	studylogusecase "trak/internal/modules/studylog/usecase"
	"trak/internal/platform/clock"
	"trak/internal/platform/config"
	"trak/internal/platform/httpapi"
	"trak/internal/platform/logging"
	uiapp "trak/internal/ui/app"
)

type App struct {
	AuthCLI      authinadapter.CLIHandler
	CoursesCLI   coursesinadapter.CLIHandler
	DashboardCLI dashinadapter.CLIHandler
	StudyLogCLI  studyloginadapter.CLIHandler

	authUC     authin.Usecase
	coursesUC  coursesin.Usecase
	dashUC     dashin.Usecase
	studyLogUC studylogin.Usecase

	journal *studylogoutadapter.SQLiteLogJournal
	logger  *zap.Logger
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}

	logger, err := logging.New(cfg.LogPath, cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("new logger: %w", err)
	}

	credentials := authoutadapter.NewFileCredentialStore(cfg.CredentialPath)
	api := httpapi.New(cfg.APIURL, cfg.HTTPTimeout, authoutadapter.NewStoreTokenSource(credentials), logger)

	authUC := authusecase.NewInteractor(
		authservice.NewAuthService(clk),
		credentials,
		authoutadapter.NewHTTPIdentityAPI(api),
	)

	coursesUC := coursesusecase.NewInteractor(
		coursesservice.NewCourseService(coursesoutadapter.NewHTTPCourseAPI(api)),
	)

	dashUC := dashusecase.NewInteractor(
		dashservice.NewDashboardService(dashoutadapter.NewHTTPDashboardAPI(api), coursesUC),
	)

	journal, err := studylogoutadapter.NewSQLiteLogJournal(cfg.JournalDBPath)
	if err != nil {
		return nil, fmt.Errorf("new log journal: %w", err)
	}
	studyLogUC := studylogusecase.NewInteractor(
		studylogservice.NewStudyLogService(studylogoutadapter.NewHTTPLogAPI(api)),
		journal,
		clk,
		logger,
	)

	return &App{
		AuthCLI:      authinadapter.NewCLIHandler(authUC),
		CoursesCLI:   coursesinadapter.NewCLIHandler(coursesUC),
		DashboardCLI: dashinadapter.NewCLIHandler(dashUC),
		StudyLogCLI:  studyloginadapter.NewCLIHandler(studyLogUC),
		authUC:       authUC,
		coursesUC:    coursesUC,
		dashUC:       dashUC,
		studyLogUC:   studyLogUC,
		journal:      journal,
		logger:       logger,
	}, nil
}

// Close releases the journal database and flushes buffered log entries.
// Call on process exit.
func (a *App) Close() {
	_ = a.journal.Close()
	_ = a.logger.Sync()
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.authUC, app.dashUC, app.coursesUC, app.studyLogUC)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
