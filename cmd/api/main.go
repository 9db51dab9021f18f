package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nexus.regintel.org/internal/app"
	"nexus.regintel.org/internal/appconf"
	"nexus.regintel.org/internal/logging"
	"nexus.regintel.org/internal/restapi"
	"nexus.regintel.org/internal/webui"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := parseConfig(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := logging.NewStructuredLogger(os.Stdout, logging.ParseLevel(cfg.Logging.Level))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logging.LogError(logger, "server exited", err)
		os.Exit(1)
	}
}

// parseConfig builds the configuration from defaults, then the optional
// -config file, then any flag set explicitly on the command line.
func parseConfig(args []string, output io.Writer) (appconf.Config, error) {
	fs := flag.NewFlagSet("nexus-api", flag.ContinueOnError)
	fs.SetOutput(output)

	defaults := appconf.Default()
	var (
		configPath string
		apiKeys    string
		envName    string
		logLevel   string
		port       int
		rateLimit  int
		dataPath   string
		cacheTTL   time.Duration
	)
	fs.StringVar(&configPath, "config", "", "Path to a YAML config file")
	fs.IntVar(&port, "port", defaults.Port, "API server port")
	fs.StringVar(&envName, "env", defaults.EnvName, "Environment (development|test|production)")
	fs.StringVar(&apiKeys, "api-keys", "test", "Comma Separated API Keys (test, etc)")
	fs.IntVar(&rateLimit, "rate-limit", defaults.RateLimit, "Requests per second per API key (0 disables)")
	fs.StringVar(&dataPath, "data-path", defaults.DataPath, "SQLite file for the catalog store")
	fs.DurationVar(&cacheTTL, "cache-ttl", defaults.CacheTTL, "Catalog cache lifetime")
	fs.StringVar(&logLevel, "log-level", defaults.Logging.Level, "Log level (debug|info|warn|error)")
	if err := fs.Parse(args); err != nil {
		return appconf.Config{}, err
	}

	cfg := defaults
	if configPath != "" {
		var err error
		if cfg, err = appconf.LoadFile(configPath, cfg); err != nil {
			return appconf.Config{}, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "port":
			cfg.Port = port
		case "env":
			cfg.EnvName = envName
			cfg.Env = appconf.EnvFlagToEnvironment(envName)
		case "api-keys":
			cfg.ApiKeys = appconf.ParseAPIKeys(apiKeys)
		case "rate-limit":
			cfg.RateLimit = rateLimit
		case "data-path":
			cfg.DataPath = dataPath
		case "cache-ttl":
			cfg.CacheTTL = cacheTTL
		case "log-level":
			cfg.Logging.Level = logLevel
		}
	})

	if err := cfg.Validate(); err != nil {
		return appconf.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newHandler wires the REST API and the web UI onto one mux behind the
// shared middleware chain.
func newHandler(application *app.Application) (http.Handler, *restapi.RestAPI, error) {
	ui, err := webui.NewWebUI(application)
	if err != nil {
		return nil, nil, err
	}
	api := restapi.NewRestAPI(application)

	mux := http.NewServeMux()
	api.SetRoutes(mux)
	ui.SetWebUIRoutes(mux)
	return api.Handler(mux), api, nil
}

func run(ctx context.Context, cfg appconf.Config, logger *slog.Logger) error {
	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer logging.SafeCloseWithLogging(application, logger, "application")

	handler, api, err := newHandler(application)
	if err != nil {
		return err
	}
	defer api.Shutdown()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env.String())
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}
	return nil
}
