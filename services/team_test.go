package services_test

import (
	"context"
	"strings"
	"testing"

	"todocli/models"
)

func TestTeamService_CreateRoundTrip(t *testing.T) {
	svc, _ := newServices(t)
	ctx := context.Background()

	created, err := svc.Teams.Create(ctx, models.CreateTeamInput{Name: "  Alpha ", Description: "First team"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected an id to be assigned")
	}

	got, err := svc.Teams.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Alpha" || got.Description != "First team" {
		t.Errorf("unexpected team %+v", got)
	}
}

func TestTeamService_CreateDuplicateName(t *testing.T) {
	svc, _ := newServices(t)
	ctx := context.Background()
	mustTeam(t, svc, "Alpha")

	_, err := svc.Teams.Create(ctx, models.CreateTeamInput{Name: "Alpha", Description: "again"})
	kindIs(t, err, models.ErrDuplicate)

	teams, err := svc.Teams.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(teams) != 1 {
		t.Errorf("expected 1 team after duplicate create, got %d", len(teams))
	}
}

func TestTeamService_CreateValidation(t *testing.T) {
	svc, _ := newServices(t)
	ctx := context.Background()

	inputs := []models.CreateTeamInput{
		{Name: "", Description: "d"},
		{Name: "   ", Description: "d"},
		{Name: strings.Repeat("n", 101), Description: "d"},
		{Name: "Alpha", Description: ""},
		{Name: "Alpha", Description: strings.Repeat("d", 501)},
	}
	for _, input := range inputs {
		_, err := svc.Teams.Create(ctx, input)
		kindIs(t, err, models.ErrValidation)
	}

	// Boundary lengths are accepted.
	_, err := svc.Teams.Create(ctx, models.CreateTeamInput{
		Name:        strings.Repeat("n", 100),
		Description: strings.Repeat("d", 500),
	})
	if err != nil {
		t.Fatalf("Create at max lengths: %v", err)
	}
}

func TestTeamService_ListEmpty(t *testing.T) {
	svc, _ := newServices(t)

	teams, err := svc.Teams.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if teams == nil || len(teams) != 0 {
		t.Errorf("expected empty list, got %#v", teams)
	}
}

func TestTeamService_ListCounts(t *testing.T) {
	svc, _ := newServices(t)
	ctx := context.Background()
	alpha := mustTeam(t, svc, "Alpha")
	mustTeam(t, svc, "Beta")
	mustEmployee(t, svc, "Maria", "maria@x.com", alpha.ID)
	mustEmployee(t, svc, "Joao", "joao@x.com", alpha.ID)
	mustTask(t, svc, models.CreateTaskInput{Title: "T1", TeamID: alpha.ID})

	teams, err := svc.Teams.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(teams) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(teams))
	}
	if teams[0].Name != "Alpha" || teams[0].EmployeesCount != 2 || teams[0].TasksCount != 1 {
		t.Errorf("unexpected Alpha summary %+v", teams[0])
	}
	if teams[1].Name != "Beta" || teams[1].EmployeesCount != 0 || teams[1].TasksCount != 0 {
		t.Errorf("unexpected Beta summary %+v", teams[1])
	}
}

func TestTeamService_NotFound(t *testing.T) {
	svc, _ := newServices(t)
	ctx := context.Background()

	_, err := svc.Teams.GetByID(ctx, 7)
	kindIs(t, err, models.ErrNotFound)

	deleted, err := svc.Teams.Delete(ctx, 7)
	kindIs(t, err, models.ErrNotFound)
	if deleted {
		t.Error("expected false for a missing team")
	}
}

func TestTeamService_Delete(t *testing.T) {
	svc, _ := newServices(t)
	ctx := context.Background()
	alpha := mustTeam(t, svc, "Alpha")

	deleted, err := svc.Teams.Delete(ctx, alpha.ID)
	if err != nil || !deleted {
		t.Fatalf("Delete: %v %v", deleted, err)
	}

	_, err = svc.Teams.GetByID(ctx, alpha.ID)
	kindIs(t, err, models.ErrNotFound)

	// The name is free again.
	mustTeam(t, svc, "Alpha")
}
