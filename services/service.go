package services

import (
	"errors"
	"log/slog"

	"todocli/database"
	"todocli/models"
	"todocli/repository"
	"todocli/validation"
)

type Services struct {
	Teams     *TeamService
	Employees *EmployeeService
	Tasks     *TaskService
}

// New wires the three services over one store.
func New(store *database.Store, emailValidator validation.EmailValidator, lg *slog.Logger) *Services {
	teamRepo := repository.NewTeamRepository(store)
	employeeRepo := repository.NewEmployeeRepository(store)
	taskRepo := repository.NewTaskRepository(store)

	return &Services{
		Teams:     NewTeamService(teamRepo, store, lg),
		Employees: NewEmployeeService(employeeRepo, teamRepo, emailValidator, store, lg),
		Tasks:     NewTaskService(taskRepo, teamRepo, employeeRepo, store, lg),
	}
}

// classify turns repository and storage errors into service failure kinds.
// Errors that already carry a kind pass through unchanged.
func classify(entity, op string, err error) error {
	switch {
	case err == nil:
		return nil
	case models.KindOf(err) != nil:
		return err
	case errors.Is(err, repository.ErrDuplicate):
		return models.Duplicate(entity, "unique constraint violated")
	case errors.Is(err, repository.ErrNotFound):
		return &models.Error{Kind: models.ErrNotFound, Entity: entity}
	default:
		return models.Storage(op, err)
	}
}
