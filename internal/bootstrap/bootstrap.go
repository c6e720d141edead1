package bootstrap

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	profileinadapter "shiddaha/internal/modules/profile/adapter/in"
	profileoutadapter "shiddaha/internal/modules/profile/adapter/out"
	profileservice "shiddaha/internal/modules/profile/service"
	profileusecase "shiddaha/internal/modules/profile/usecase"
	sessioninadapter "shiddaha/internal/modules/session/adapter/in"
	sessionoutadapter "shiddaha/internal/modules/session/adapter/out"
	sessiondomain "shiddaha/internal/modules/session/domain"
	sessionservice "shiddaha/internal/modules/session/service"
	sessionusecase "shiddaha/internal/modules/session/usecase"
	shopinadapter "shiddaha/internal/modules/shop/adapter/in"
	shopoutadapter "shiddaha/internal/modules/shop/adapter/out"
	shopservice "shiddaha/internal/modules/shop/service"
	shopusecase "shiddaha/internal/modules/shop/usecase"
	"shiddaha/internal/platform/clock"
	"shiddaha/internal/platform/config"
	"shiddaha/internal/platform/id"
	"shiddaha/internal/platform/log"
	"shiddaha/internal/platform/storage"
	"shiddaha/internal/platform/tx"
	uiapp "shiddaha/internal/ui/app"
)

type App struct {
	ProfileCLI profileinadapter.CLIHandler
	SessionCLI sessioninadapter.CLIHandler
	ShopCLI    shopinadapter.CLIHandler
	Session    config.SessionRules
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.UUID{}

	events, err := log.New(cfg.EventLogPath)
	if err != nil {
		return nil, fmt.Errorf("new event log: %w", err)
	}

	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	txm := tx.NewSQLiteManager(db)

	profileStore, err := profileoutadapter.NewSQLiteStore(db)
	if err != nil {
		return nil, fmt.Errorf("new profile store: %w", err)
	}
	profileUC := profileusecase.NewInteractor(profileservice.NewProfileService(clk, profileStore), events)

	recordStore, err := sessionoutadapter.NewSQLiteRecordStore(db)
	if err != nil {
		return nil, fmt.Errorf("new session record store: %w", err)
	}
	rules := sessiondomain.Rules{
		MinMinutes:       cfg.Session.MinMinutes,
		MaxMinutes:       cfg.Session.MaxMinutes,
		StepMinutes:      cfg.Session.StepMinutes,
		CountdownSeconds: cfg.Session.CountdownSeconds,
	}
	sessionUC := sessionusecase.NewInteractor(
		sessionservice.NewSessionService(clk, ids, recordStore, sessionoutadapter.NewProfileGatewayAdapter(profileUC), txm),
		rules,
		events,
	)

	shopUC := shopusecase.NewInteractor(
		shopservice.NewShopService(shopoutadapter.NewFileCatalogStore(cfg.CatalogPath)),
		profileUC,
	)

	return &App{
		ProfileCLI: profileinadapter.NewCLIHandler(profileUC),
		SessionCLI: sessioninadapter.NewCLIHandler(sessionUC),
		ShopCLI:    shopinadapter.NewCLIHandler(shopUC),
		Session:    cfg.Session,
	}, nil
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.ProfileCLI, app.SessionCLI, app.ShopCLI, app.Session)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
