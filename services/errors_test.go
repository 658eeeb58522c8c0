package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"todocli/database/dbtest"
	"todocli/models"
	"todocli/repository"
	"todocli/services"
	"todocli/validation"
)

func TestServices_StoreFailuresAreStorageErrors(t *testing.T) {
	store := dbtest.Open(t)
	svc := services.New(store, validation.NewEmailValidator(), discardLogger())
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	ctx := context.Background()

	tests := []struct {
		op   string
		call func() error
	}{
		{"list teams", func() error { _, err := svc.Teams.List(ctx); return err }},
		{"list employees", func() error { _, err := svc.Employees.List(ctx); return err }},
		{"list tasks", func() error { _, err := svc.Tasks.List(ctx); return err }},
		{"task statistics", func() error { _, err := svc.Tasks.Statistics(ctx); return err }},
		{"get team", func() error { _, err := svc.Teams.GetByID(ctx, 1); return err }},
	}

	for _, tt := range tests {
		err := tt.call()
		if !errors.Is(err, models.ErrStorage) {
			t.Errorf("%s: expected storage failure, got %v", tt.op, err)
			continue
		}
		if !strings.Contains(err.Error(), tt.op) {
			t.Errorf("%s: operation missing from %q", tt.op, err.Error())
		}
	}
}

// teamRepoStub lets the name pre-check pass while the insert hits the unique index.
type teamRepoStub struct {
	services.TeamRepository
	createErr error
}

func (teamRepoStub) ExistsByName(context.Context, string) (bool, error) {
	return false, nil
}

func (r teamRepoStub) Create(context.Context, *models.Team) error {
	return r.createErr
}

type inlineUnitOfWork struct{}

func (inlineUnitOfWork) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func TestTeamService_CreateIndexConflictIsDuplicate(t *testing.T) {
	repo := teamRepoStub{createErr: repository.ErrDuplicate}
	svc := services.NewTeamService(repo, inlineUnitOfWork{}, discardLogger())

	_, err := svc.Create(context.Background(), models.CreateTeamInput{Name: "Alpha", Description: "A"})
	kindIs(t, err, models.ErrDuplicate)
}

func TestTeamService_CreateRawErrorIsStorage(t *testing.T) {
	repo := teamRepoStub{createErr: errors.New("connection reset")}
	svc := services.NewTeamService(repo, inlineUnitOfWork{}, discardLogger())

	_, err := svc.Create(context.Background(), models.CreateTeamInput{Name: "Alpha", Description: "A"})
	kindIs(t, err, models.ErrStorage)
	if !strings.Contains(err.Error(), "create team") || !strings.Contains(err.Error(), "connection reset") {
		t.Errorf("expected operation and cause in %q", err.Error())
	}
}
