package services_test

import (
	"context"
	"testing"

	"todocli/database/dbtest"
	"todocli/models"
	"todocli/services"
	"todocli/validation"
)

func TestEmployeeService_Create(t *testing.T) {
	svc, _ := newServices(t)
	alpha := mustTeam(t, svc, "Alpha")

	e := mustEmployee(t, svc, " Maria ", " maria@x.com ", alpha.ID)
	if e.ID == 0 || e.Name != "Maria" || e.Email != "maria@x.com" || e.TeamID != alpha.ID {
		t.Errorf("unexpected employee %+v", e)
	}
}

func TestEmployeeService_CreateDuplicates(t *testing.T) {
	svc, _ := newServices(t)
	ctx := context.Background()
	alpha := mustTeam(t, svc, "Alpha")
	mustEmployee(t, svc, "Maria", "maria@x.com", alpha.ID)

	_, err := svc.Employees.Create(ctx, models.CreateEmployeeInput{Name: "Maria", Email: "other@x.com", TeamID: alpha.ID})
	kindIs(t, err, models.ErrDuplicate)

	_, err = svc.Employees.Create(ctx, models.CreateEmployeeInput{Name: "Other", Email: "maria@x.com", TeamID: alpha.ID})
	kindIs(t, err, models.ErrDuplicate)

	employees, err := svc.Employees.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(employees) != 1 {
		t.Errorf("expected 1 employee, got %d", len(employees))
	}
}

func TestEmployeeService_InvalidEmailLeavesNoRow(t *testing.T) {
	store := dbtest.Open(t)
	var checked []string
	rejectAll := validation.EmailValidatorFunc(func(email string) bool {
		checked = append(checked, email)
		return false
	})
	svc := services.New(store, rejectAll, discardLogger())
	ctx := context.Background()
	alpha := mustTeam(t, svc, "Alpha")

	_, err := svc.Employees.Create(ctx, models.CreateEmployeeInput{Name: "Maria", Email: "maria@x.com", TeamID: alpha.ID})
	kindIs(t, err, models.ErrInvalidEmail)

	if len(checked) != 1 || checked[0] != "maria@x.com" {
		t.Errorf("expected one check of maria@x.com, got %v", checked)
	}

	exists, err := svc.Employees.ExistsByName(ctx, "Maria")
	if err != nil {
		t.Fatalf("ExistsByName: %v", err)
	}
	if exists {
		t.Error("expected no employee row after rejected email")
	}
}

func TestEmployeeService_CreateValidation(t *testing.T) {
	svc, _ := newServices(t)
	ctx := context.Background()
	alpha := mustTeam(t, svc, "Alpha")

	_, err := svc.Employees.Create(ctx, models.CreateEmployeeInput{Name: "", Email: "a@x.com", TeamID: alpha.ID})
	kindIs(t, err, models.ErrValidation)

	_, err = svc.Employees.Create(ctx, models.CreateEmployeeInput{Name: "Maria", Email: "not-an-email", TeamID: alpha.ID})
	kindIs(t, err, models.ErrInvalidEmail)
}

func TestEmployeeService_CreateUnknownTeam(t *testing.T) {
	svc, _ := newServices(t)

	_, err := svc.Employees.Create(context.Background(), models.CreateEmployeeInput{
		Name:   "Maria",
		Email:  "maria@x.com",
		TeamID: 9,
	})
	kindIs(t, err, models.ErrNotFound)
}

func TestEmployeeService_Exists(t *testing.T) {
	svc, _ := newServices(t)
	ctx := context.Background()
	alpha := mustTeam(t, svc, "Alpha")
	mustEmployee(t, svc, "Maria", "maria@x.com", alpha.ID)

	if ok, err := svc.Employees.ExistsByName(ctx, "Maria"); err != nil || !ok {
		t.Errorf("ExistsByName(Maria) = %v, %v", ok, err)
	}
	if ok, err := svc.Employees.ExistsByName(ctx, "Joao"); err != nil || ok {
		t.Errorf("ExistsByName(Joao) = %v, %v", ok, err)
	}
	if ok, err := svc.Employees.ExistsByEmail(ctx, "maria@x.com"); err != nil || !ok {
		t.Errorf("ExistsByEmail = %v, %v", ok, err)
	}
}

func TestEmployeeService_GetByID(t *testing.T) {
	svc, _ := newServices(t)
	ctx := context.Background()
	alpha := mustTeam(t, svc, "Alpha")
	maria := mustEmployee(t, svc, "Maria", "maria@x.com", alpha.ID)

	got, err := svc.Employees.GetByID(ctx, maria.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.TeamName() != "Alpha" {
		t.Errorf("expected team preloaded, got %+v", got.Team)
	}

	_, err = svc.Employees.GetByID(ctx, maria.ID+1)
	kindIs(t, err, models.ErrNotFound)
}

func TestEmployeeService_ListEmpty(t *testing.T) {
	svc, _ := newServices(t)

	employees, err := svc.Employees.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(employees) != 0 {
		t.Errorf("expected no employees, got %d", len(employees))
	}
}

func TestEmployeeService_Update(t *testing.T) {
	svc, _ := newServices(t)
	ctx := context.Background()
	alpha := mustTeam(t, svc, "Alpha")
	beta := mustTeam(t, svc, "Beta")
	maria := mustEmployee(t, svc, "Maria", "maria@x.com", alpha.ID)

	email := "maria@beta.com"
	updated, err := svc.Employees.Update(ctx, maria.ID, models.UpdateEmployeeInput{
		Email:  &email,
		TeamID: &beta.ID,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Maria" || updated.Email != email || updated.TeamName() != "Beta" {
		t.Errorf("unexpected employee after update %+v", updated)
	}

	// Keeping its own name and email is not a conflict.
	name := "Maria"
	if _, err := svc.Employees.Update(ctx, maria.ID, models.UpdateEmployeeInput{Name: &name, Email: &email}); err != nil {
		t.Fatalf("Update with unchanged values: %v", err)
	}
}

func TestEmployeeService_UpdateConflicts(t *testing.T) {
	svc, _ := newServices(t)
	ctx := context.Background()
	alpha := mustTeam(t, svc, "Alpha")
	mustEmployee(t, svc, "Maria", "maria@x.com", alpha.ID)
	joao := mustEmployee(t, svc, "Joao", "joao@x.com", alpha.ID)

	name := "Maria"
	_, err := svc.Employees.Update(ctx, joao.ID, models.UpdateEmployeeInput{Name: &name})
	kindIs(t, err, models.ErrDuplicate)

	bad := "nope"
	_, err = svc.Employees.Update(ctx, joao.ID, models.UpdateEmployeeInput{Email: &bad})
	kindIs(t, err, models.ErrInvalidEmail)

	team := uint(99)
	_, err = svc.Employees.Update(ctx, joao.ID, models.UpdateEmployeeInput{TeamID: &team})
	kindIs(t, err, models.ErrNotFound)

	_, err = svc.Employees.Update(ctx, 99, models.UpdateEmployeeInput{})
	kindIs(t, err, models.ErrNotFound)

	got, err := svc.Employees.GetByID(ctx, joao.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Joao" || got.Email != "joao@x.com" || got.TeamID != alpha.ID {
		t.Errorf("failed updates changed the employee: %+v", got)
	}
}
