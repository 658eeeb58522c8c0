package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"todocli/database"
	"todocli/models"
	"todocli/repository"
	"todocli/validation"
)

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id uint) (*models.Task, error)
	List(ctx context.Context) ([]models.Task, error)
	ListByTeam(ctx context.Context, teamID uint) ([]models.Task, error)
	ListByOwner(ctx context.Context, employeeID uint) ([]models.Task, error)
	UpdateColumns(ctx context.Context, id uint, columns map[string]any) error
	Delete(ctx context.Context, id uint) (bool, error)
	CountByPriority(ctx context.Context) (map[models.Priority]int64, error)
}

// EmployeeLookup is the part of the employee repository the task service depends on.
type EmployeeLookup interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

type TaskService struct {
	taskRepo     TaskRepository
	teamRepo     TeamLookup
	employeeRepo EmployeeLookup
	uow          database.UnitOfWork
	lg           *slog.Logger
}

func NewTaskService(taskRepo TaskRepository,
	teamRepo TeamLookup,
	employeeRepo EmployeeLookup,
	uow database.UnitOfWork,
	lg *slog.Logger) *TaskService {
	return &TaskService{
		taskRepo:     taskRepo,
		teamRepo:     teamRepo,
		employeeRepo: employeeRepo,
		uow:          uow,
		lg:           lg,
	}
}

// Create persists a new task. The status always starts at Pending and the
// priority defaults to Medium.
func (s *TaskService) Create(ctx context.Context, input models.CreateTaskInput) (*models.Task, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	priority := models.DefaultPriority
	if input.Priority != nil {
		if !input.Priority.IsValid() {
			return nil, models.Validationf("priority", "unknown priority %d", int(*input.Priority))
		}
		priority = *input.Priority
	}

	task := &models.Task{
		Title:       input.Title,
		Description: input.Description,
		TeamID:      input.TeamID,
		OwnerID:     input.OwnerID,
		Status:      models.StatusPending,
		Priority:    priority,
	}

	err := s.uow.Do(ctx, func(txCtx context.Context) error {
		if err := s.checkTeam(txCtx, task.TeamID); err != nil {
			return err
		}
		if task.OwnerID != nil {
			if err := s.checkEmployee(txCtx, *task.OwnerID); err != nil {
				return err
			}
		}

		if err := s.taskRepo.Create(txCtx, task); err != nil {
			return err
		}

		created, err := s.taskRepo.GetByID(txCtx, task.ID)
		if err != nil {
			return err
		}
		task = created
		return nil
	})
	if err != nil {
		return nil, classify("task", "create task", err)
	}

	s.lg.Info("task created",
		slog.Uint64("task_id", uint64(task.ID)),
		slog.Uint64("team_id", uint64(task.TeamID)),
		slog.String("priority", task.Priority.String()))
	return task, nil
}

func (s *TaskService) GetByID(ctx context.Context, id uint) (*models.Task, error) {
	var task *models.Task

	err := s.uow.Do(ctx, func(txCtx context.Context) error {
		var err error
		task, err = s.getTask(txCtx, id)
		return err
	})
	if err != nil {
		return nil, classify("task", "get task", err)
	}

	return task, nil
}

func (s *TaskService) List(ctx context.Context) ([]models.Task, error) {
	return s.list(ctx, "list tasks", s.taskRepo.List)
}

// ListByTeam returns the tasks of a team. An unknown team yields an empty list.
func (s *TaskService) ListByTeam(ctx context.Context, teamID uint) ([]models.Task, error) {
	return s.list(ctx, "list team tasks", func(txCtx context.Context) ([]models.Task, error) {
		return s.taskRepo.ListByTeam(txCtx, teamID)
	})
}

// ListByEmployee returns the tasks owned by an employee.
func (s *TaskService) ListByEmployee(ctx context.Context, employeeID uint) ([]models.Task, error) {
	return s.list(ctx, "list employee tasks", func(txCtx context.Context) ([]models.Task, error) {
		return s.taskRepo.ListByOwner(txCtx, employeeID)
	})
}

func (s *TaskService) list(ctx context.Context, op string, query func(ctx context.Context) ([]models.Task, error)) ([]models.Task, error) {
	var tasks []models.Task

	err := s.uow.Do(ctx, func(txCtx context.Context) error {
		var err error
		tasks, err = query(txCtx)
		return err
	})
	if err != nil {
		return nil, classify("task", op, err)
	}

	return tasks, nil
}

// UpdateStatus sets the status unconditionally; every status may follow every other.
func (s *TaskService) UpdateStatus(ctx context.Context, id uint, status models.Status) (*models.Task, error) {
	if !status.IsValid() {
		return nil, models.Validationf("status", "unknown status %d", int(status))
	}

	task, err := s.updateTask(ctx, id, "update task status", func(txCtx context.Context) (map[string]any, error) {
		return map[string]any{"status": status}, nil
	})
	if err != nil {
		return nil, err
	}

	s.lg.Info("task status updated", slog.Uint64("task_id", uint64(id)), slog.String("status", status.String()))
	return task, nil
}

// Assign makes the employee the owner of the task.
func (s *TaskService) Assign(ctx context.Context, id uint, employeeID uint) (*models.Task, error) {
	task, err := s.updateTask(ctx, id, "assign task", func(txCtx context.Context) (map[string]any, error) {
		if err := s.checkEmployee(txCtx, employeeID); err != nil {
			return nil, err
		}
		return map[string]any{"owner_id": employeeID}, nil
	})
	if err != nil {
		return nil, err
	}

	s.lg.Info("task assigned", slog.Uint64("task_id", uint64(id)), slog.Uint64("employee_id", uint64(employeeID)))
	return task, nil
}

// Update edits the free-text fields. Nil or empty fields are left untouched.
func (s *TaskService) Update(ctx context.Context, id uint, input models.UpdateTaskInput) (*models.Task, error) {
	if input.Title != nil {
		*input.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		*input.Description = strings.TrimSpace(*input.Description)
	}
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	task, err := s.updateTask(ctx, id, "update task", func(context.Context) (map[string]any, error) {
		columns := map[string]any{}
		if input.Title != nil && *input.Title != "" {
			columns["title"] = *input.Title
		}
		if input.Description != nil && *input.Description != "" {
			columns["description"] = *input.Description
		}
		return columns, nil
	})
	if err != nil {
		return nil, err
	}

	s.lg.Info("task updated", slog.Uint64("task_id", uint64(id)))
	return task, nil
}

// updateTask loads the task, writes the columns returned by change and reloads it,
// all in one unit of work.
func (s *TaskService) updateTask(ctx context.Context, id uint, op string,
	change func(ctx context.Context) (map[string]any, error)) (*models.Task, error) {
	var task *models.Task

	err := s.uow.Do(ctx, func(txCtx context.Context) error {
		current, err := s.getTask(txCtx, id)
		if err != nil {
			return err
		}

		columns, err := change(txCtx)
		if err != nil {
			return err
		}
		if len(columns) == 0 {
			task = current
			return nil
		}

		if err := s.taskRepo.UpdateColumns(txCtx, id, columns); err != nil {
			return err
		}
		task, err = s.getTask(txCtx, id)
		return err
	})
	if err != nil {
		return nil, classify("task", op, err)
	}

	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, id uint) (bool, error) {
	err := s.uow.Do(ctx, func(txCtx context.Context) error {
		deleted, err := s.taskRepo.Delete(txCtx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return models.NotFound("task", id)
		}
		return nil
	})
	if err != nil {
		return false, classify("task", "delete task", err)
	}

	s.lg.Info("task deleted", slog.Uint64("task_id", uint64(id)))
	return true, nil
}

// Statistics counts tasks per priority label plus a "total" entry.
func (s *TaskService) Statistics(ctx context.Context) (map[string]int64, error) {
	var counts map[models.Priority]int64

	err := s.uow.Do(ctx, func(txCtx context.Context) error {
		var err error
		counts, err = s.taskRepo.CountByPriority(txCtx)
		return err
	})
	if err != nil {
		return nil, classify("task", "task statistics", err)
	}

	stats := make(map[string]int64, len(models.Priorities())+1)
	var total int64
	for _, p := range models.Priorities() {
		stats[p.String()] = counts[p]
		total += counts[p]
	}
	stats[models.StatisticsTotalKey] = total

	return stats, nil
}

func (s *TaskService) getTask(ctx context.Context, id uint) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, models.NotFound("task", id)
		}
		return nil, err
	}
	return task, nil
}

func (s *TaskService) checkTeam(ctx context.Context, teamID uint) error {
	exists, err := s.teamRepo.Exists(ctx, teamID)
	if err != nil {
		return err
	}
	if !exists {
		return models.NotFound("team", teamID)
	}
	return nil
}

func (s *TaskService) checkEmployee(ctx context.Context, employeeID uint) error {
	exists, err := s.employeeRepo.Exists(ctx, employeeID)
	if err != nil {
		return err
	}
	if !exists {
		return models.NotFound("employee", employeeID)
	}
	return nil
}
