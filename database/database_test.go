package database_test

import (
	"context"
	"errors"
	"testing"

	"todocli/database"
	"todocli/database/dbtest"
	"todocli/models"
)

func TestOpen_RejectsUnknownScheme(t *testing.T) {
	if _, err := database.Open("mysql://root@localhost/todo", nil); err == nil {
		t.Fatal("expected error for unsupported url")
	}
}

func TestOpen_InMemorySQLite(t *testing.T) {
	store, err := database.Open("sqlite://", nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	if got := store.Dialect(); got != "sqlite" {
		t.Errorf("expected sqlite dialect, got %q", got)
	}
	if err := store.CreateSchema(); err != nil {
		t.Fatalf("CreateSchema: %v", err)
	}
	// Creating the schema again must be a no-op.
	if err := store.CreateSchema(); err != nil {
		t.Fatalf("second CreateSchema: %v", err)
	}
}

func TestOpen_SQLiteFile(t *testing.T) {
	path := t.TempDir() + "/todo.db"

	store, err := database.Open("sqlite:///"+path, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	if err := store.CreateSchema(); err != nil {
		t.Fatalf("CreateSchema: %v", err)
	}
}

func TestDo_CommitsOnSuccess(t *testing.T) {
	store := dbtest.Open(t)
	ctx := context.Background()

	err := store.Do(ctx, func(ctx context.Context) error {
		return store.Conn(ctx).Create(&models.Team{Name: "Alpha", Description: "A"}).Error
	})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}

	var count int64
	if err := store.Conn(ctx).Model(&models.Team{}).Count(&count).Error; err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 team, got %d", count)
	}
}

func TestDo_RollsBackOnError(t *testing.T) {
	store := dbtest.Open(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := store.Do(ctx, func(ctx context.Context) error {
		if err := store.Conn(ctx).Create(&models.Team{Name: "Alpha", Description: "A"}).Error; err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	var count int64
	if err := store.Conn(ctx).Model(&models.Team{}).Count(&count).Error; err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 0 {
		t.Errorf("expected rollback to leave no teams, got %d", count)
	}
}

func TestDo_NestedCallsShareTransaction(t *testing.T) {
	store := dbtest.Open(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := store.Do(ctx, func(ctx context.Context) error {
		inner := store.Do(ctx, func(ctx context.Context) error {
			return store.Conn(ctx).Create(&models.Team{Name: "Alpha", Description: "A"}).Error
		})
		if inner != nil {
			return inner
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	var count int64
	if err := store.Conn(ctx).Model(&models.Team{}).Count(&count).Error; err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 0 {
		t.Errorf("expected outer rollback to undo inner write, got %d teams", count)
	}
}

func TestNewLogger_AcceptsEveryLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "off", ""} {
		if database.NewLogger(level, 0) == nil {
			t.Errorf("NewLogger(%q) returned nil", level)
		}
	}
}
