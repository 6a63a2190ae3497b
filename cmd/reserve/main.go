package main

import (
	"io"
	"os"

	"github.com/muqry/hotel-reservation/internal/app"
	"github.com/muqry/hotel-reservation/internal/catalog"
	"github.com/muqry/hotel-reservation/internal/config"
	"github.com/muqry/hotel-reservation/internal/logger"
)

type App struct {
	logger  *logger.Logger
	cfg     *config.Config
	catalog *catalog.Catalog
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
}

func main() {
	a := &App{
		logger: logger.New(),
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}

	if err := a.run(); err != nil {
		a.logger.Error("Application error", logger.Error(err))
		os.Exit(1)
	}
}

func (a *App) run() error {
	if err := a.initialize(); err != nil {
		return err
	}

	session := app.New(a.catalog, a.logger, a.stdin, a.stdout, app.Options{Color: a.cfg.Color})
	outcome, err := session.Run()
	if err != nil {
		return err
	}

	a.logger.Debug("Session finished", logger.Action("session"), logger.Status(outcome.State.String()))
	return nil
}

func (a *App) initialize() error {
	envPath := getEnvOrDefault("ENV_FILE", ".env")
	cfg, err := config.LoadWithFile(envPath)
	if err != nil {
		a.logger.Error("Failed to load configuration", logger.Error(err), logger.Path(envPath))
		return err
	}
	a.cfg = cfg
	a.logger = newLogger(cfg, a.stdout, a.stderr)

	c, err := catalog.LoadOrDefault(cfg.CatalogPath)
	if err != nil {
		a.logger.Error("Failed to load catalog", logger.Error(err), logger.Path(cfg.CatalogPath))
		return err
	}
	a.catalog = c

	source := "built-in"
	if cfg.CatalogPath != "" {
		source = cfg.CatalogPath
	}
	a.logger.Debug("Catalog loaded",
		logger.Path(source),
		logger.F("ROOM_TYPES", c.RoomCount()),
		logger.F("SERVICES", c.ServiceCount()))
	return nil
}

// newLogger builds the logger described by cfg. cfg has already been validated.
func newLogger(cfg *config.Config, stdout, stderr io.Writer) *logger.Logger {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logger.LevelWarn
	}

	var w io.Writer
	switch cfg.LogOutput {
	case "stdout":
		w = stdout
	case "none":
		w = io.Discard
	default:
		w = stderr
	}
	return logger.NewWithLevel(w, level)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
