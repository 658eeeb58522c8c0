package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	trmgorm "github.com/avito-tech/go-transaction-manager/drivers/gorm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"todocli/models"
)

// UnitOfWork runs fn inside one transaction: commit when fn returns nil,
// rollback otherwise. Nested calls join the outer transaction.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Store is the process-wide handle to the relational store.
type Store struct {
	db      *gorm.DB
	getter  *trmgorm.CtxGetter
	manager *manager.Manager
}

// Open connects to the store named by dsn. Accepted forms are
// postgres://..., postgresql://..., sqlite:///<path>, sqlite:// (in memory)
// and raw SQLite "file:" URIs.
func Open(dsn string, gormLogger logger.Interface) (*Store, error) {
	dialector, isSQLite, err := dialectorFor(dsn)
	if err != nil {
		return nil, err
	}
	if gormLogger == nil {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if isSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		// A single connection keeps in-memory databases alive and serializes writers.
		sqlDB.SetMaxOpenConns(1)
	}

	trManager, err := manager.New(trmgorm.NewDefaultFactory(db))
	if err != nil {
		return nil, err
	}

	return &Store{
		db:      db,
		getter:  trmgorm.DefaultCtxGetter,
		manager: trManager,
	}, nil
}

func dialectorFor(dsn string) (gorm.Dialector, bool, error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return postgres.Open(dsn), false, nil
	case strings.HasPrefix(dsn, "sqlite://"):
		path := strings.TrimPrefix(strings.TrimPrefix(dsn, "sqlite://"), "/")
		if path == "" {
			path = ":memory:"
		}
		return sqlite.Open(path), true, nil
	case strings.HasPrefix(dsn, "file:"):
		return sqlite.Open(dsn), true, nil
	default:
		return nil, false, fmt.Errorf("unsupported database url %q", dsn)
	}
}

// CreateSchema creates the teams, employees and tasks tables if missing.
func (s *Store) CreateSchema() error {
	return s.db.AutoMigrate(&models.Team{}, &models.Employee{}, &models.Task{})
}

// Do runs fn in the transaction bound to ctx, starting one if there is none.
func (s *Store) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return s.manager.Do(ctx, fn)
}

// Conn returns the transaction bound to ctx, or the plain handle outside Do.
func (s *Store) Conn(ctx context.Context) *gorm.DB {
	return s.getter.DefaultTrOrDB(ctx, s.db).WithContext(ctx)
}

// Dialect names the underlying driver, "sqlite" or "postgres".
func (s *Store) Dialect() string {
	return s.db.Dialector.Name()
}

// Close closes the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// NewLogger builds the gorm logger for the given application log level.
func NewLogger(level string, slowThreshold time.Duration) logger.Interface {
	logLevel := logger.Silent
	switch strings.ToLower(level) {
	case "debug":
		logLevel = logger.Info
	case "info", "warn", "warning":
		logLevel = logger.Warn
	case "error":
		logLevel = logger.Error
	}

	return logger.New(log.New(os.Stderr, "\r\n", log.LstdFlags), logger.Config{
		SlowThreshold:             slowThreshold,
		LogLevel:                  logLevel,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
