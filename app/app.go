package app

import (
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"todocli/config"
	"todocli/database"
	"todocli/services"
	"todocli/validation"
)

// App is the per-process context handed to every command. The store is
// opened on first use and shared afterwards.
type App struct {
	Config *config.Config
	Logger *slog.Logger

	emailValidator validation.EmailValidator

	once     sync.Once
	store    *database.Store
	services *services.Services
	err      error
}

type Option func(*App)

// WithEmailValidator replaces the default address check.
func WithEmailValidator(v validation.EmailValidator) Option {
	return func(a *App) {
		a.emailValidator = v
	}
}

// WithLogger replaces the logger built from the configuration.
func WithLogger(lg *slog.Logger) Option {
	return func(a *App) {
		a.Logger = lg
	}
}

func New(cfg *config.Config, logOutput io.Writer, opts ...Option) *App {
	a := &App{
		Config:         cfg,
		emailValidator: validation.NewEmailValidator(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.Logger == nil {
		a.Logger = NewLogger(cfg.LogLevel, logOutput)
	}
	a.Logger = a.Logger.With(slog.String("invocation_id", uuid.NewString()))
	return a
}

// Store opens the store and creates the schema on the first call. Later calls
// return the same store, or the same error.
func (a *App) Store() (*database.Store, error) {
	a.once.Do(func() {
		store, err := database.Open(a.Config.DatabaseURL,
			database.NewLogger(a.Config.LogLevel, a.Config.SlowQueryThreshold))
		if err != nil {
			a.err = err
			return
		}
		if err := store.CreateSchema(); err != nil {
			_ = store.Close()
			a.err = err
			return
		}

		a.store = store
		a.services = services.New(store, a.emailValidator, a.Logger)
		a.Logger.Debug("store opened", slog.String("dialect", store.Dialect()))
	})
	return a.store, a.err
}

func (a *App) Services() (*services.Services, error) {
	if _, err := a.Store(); err != nil {
		return nil, err
	}
	return a.services, nil
}

// Close releases the store if it was opened.
func (a *App) Close() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}

func NewLogger(level string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelWarn
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: lvl,
	}))
}
