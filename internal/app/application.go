package app

import (
	"context"
	"fmt"
	"log/slog"

	"nexus.regintel.org/internal/appconf"
	"nexus.regintel.org/internal/catalog"
	"nexus.regintel.org/internal/dashboard"
	"nexus.regintel.org/internal/kvstore"
	"nexus.regintel.org/internal/metrics"
	"nexus.regintel.org/internal/notifications"
	"nexus.regintel.org/internal/quiz"
	"nexus.regintel.org/internal/rfp"
)

// Application holds the dependencies shared by the HTTP handlers and middleware.
type Application struct {
	Config        appconf.Config
	Logger        *slog.Logger
	Store         *kvstore.Client
	Catalog       *catalog.Catalog
	RFPs          *rfp.Registry
	QuizSessions  *quiz.Sessions
	Notifications *notifications.Center
	Switcher      *dashboard.Switcher
	Metrics       *metrics.Metrics
}

// New opens the key-value store at cfg.DataPath, seeds the catalog and builds
// the in-memory workflow state.
func New(ctx context.Context, cfg appconf.Config, logger *slog.Logger) (*Application, error) {
	if logger == nil {
		logger = slog.Default()
	}

	store, err := kvstore.NewClient(kvstore.NewConfig(cfg.DataPath, cfg.Env), logger.With(slog.String("component", "kvstore")))
	if err != nil {
		return nil, fmt.Errorf("error opening store: %w", err)
	}

	m := metrics.NewMetrics()
	cat := catalog.InitCatalog(ctx, catalog.Config{CacheTTL: cfg.CacheTTL}, store, logger, m)

	app := &Application{
		Config:        cfg,
		Logger:        logger,
		Store:         store,
		Catalog:       cat,
		RFPs:          rfp.NewRegistry(m),
		QuizSessions:  quiz.NewSessions(m),
		Notifications: notifications.NewCenter(),
		Metrics:       m,
	}
	app.Switcher = dashboard.NewSwitcher(dashboard.Sources{
		Catalog:       app.Catalog,
		RFPs:          app.RFPs,
		Notifications: app.Notifications,
	})
	return app, nil
}

// Close releases the store.
func (app *Application) Close() error {
	if app.Store == nil {
		return nil
	}
	if err := app.Store.Close(); err != nil {
		return fmt.Errorf("error closing store: %w", err)
	}
	return nil
}
