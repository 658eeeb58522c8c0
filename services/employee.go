package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"todocli/database"
	"todocli/models"
	"todocli/repository"
	"todocli/validation"
)

type EmployeeRepository interface {
	Create(ctx context.Context, employee *models.Employee) error
	Save(ctx context.Context, employee *models.Employee) error
	GetByID(ctx context.Context, id uint) (*models.Employee, error)
	Exists(ctx context.Context, id uint) (bool, error)
	ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error)
	ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error)
	List(ctx context.Context) ([]models.Employee, error)
}

// TeamLookup is the part of the team repository other services depend on.
type TeamLookup interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

type EmployeeService struct {
	employeeRepo   EmployeeRepository
	teamRepo       TeamLookup
	emailValidator validation.EmailValidator
	uow            database.UnitOfWork
	lg             *slog.Logger
}

func NewEmployeeService(employeeRepo EmployeeRepository,
	teamRepo TeamLookup,
	emailValidator validation.EmailValidator,
	uow database.UnitOfWork,
	lg *slog.Logger) *EmployeeService {
	return &EmployeeService{
		employeeRepo:   employeeRepo,
		teamRepo:       teamRepo,
		emailValidator: emailValidator,
		uow:            uow,
		lg:             lg,
	}
}

func (s *EmployeeService) Create(ctx context.Context, input models.CreateEmployeeInput) (*models.Employee, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	if !s.emailValidator.IsValidEmail(input.Email) {
		return nil, models.InvalidEmail(input.Email)
	}

	employee := &models.Employee{
		Name:   input.Name,
		Email:  input.Email,
		TeamID: input.TeamID,
	}

	err := s.uow.Do(ctx, func(txCtx context.Context) error {
		if err := s.checkUnique(txCtx, employee.Name, employee.Email, 0); err != nil {
			return err
		}
		if err := s.checkTeam(txCtx, employee.TeamID); err != nil {
			return err
		}
		return s.employeeRepo.Create(txCtx, employee)
	})
	if err != nil {
		return nil, classify("employee", "create employee", err)
	}

	s.lg.Info("employee created",
		slog.Uint64("employee_id", uint64(employee.ID)),
		slog.Uint64("team_id", uint64(employee.TeamID)))
	return employee, nil
}

// Update applies the non-empty fields of input with the same rules as Create.
func (s *EmployeeService) Update(ctx context.Context, id uint, input models.UpdateEmployeeInput) (*models.Employee, error) {
	if input.Name != nil {
		*input.Name = strings.TrimSpace(*input.Name)
	}
	if input.Email != nil {
		*input.Email = strings.TrimSpace(*input.Email)
	}
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	if input.Email != nil && *input.Email != "" && !s.emailValidator.IsValidEmail(*input.Email) {
		return nil, models.InvalidEmail(*input.Email)
	}

	var employee *models.Employee
	err := s.uow.Do(ctx, func(txCtx context.Context) error {
		var err error
		employee, err = s.employeeRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return models.NotFound("employee", id)
			}
			return err
		}

		name, email := "", ""
		if input.Name != nil && *input.Name != "" {
			name = *input.Name
			employee.Name = name
		}
		if input.Email != nil && *input.Email != "" {
			email = *input.Email
			employee.Email = email
		}
		if err := s.checkUnique(txCtx, name, email, id); err != nil {
			return err
		}

		if input.TeamID != nil && *input.TeamID != 0 && *input.TeamID != employee.TeamID {
			if err := s.checkTeam(txCtx, *input.TeamID); err != nil {
				return err
			}
			employee.TeamID = *input.TeamID
			employee.Team = nil
		}

		if err := s.employeeRepo.Save(txCtx, employee); err != nil {
			return err
		}
		employee, err = s.employeeRepo.GetByID(txCtx, id)
		return err
	})
	if err != nil {
		return nil, classify("employee", "update employee", err)
	}

	s.lg.Info("employee updated", slog.Uint64("employee_id", uint64(id)))
	return employee, nil
}

func (s *EmployeeService) List(ctx context.Context) ([]models.Employee, error) {
	var employees []models.Employee

	err := s.uow.Do(ctx, func(txCtx context.Context) error {
		var err error
		employees, err = s.employeeRepo.List(txCtx)
		return err
	})
	if err != nil {
		return nil, classify("employee", "list employees", err)
	}

	return employees, nil
}

func (s *EmployeeService) GetByID(ctx context.Context, id uint) (*models.Employee, error) {
	var employee *models.Employee

	err := s.uow.Do(ctx, func(txCtx context.Context) error {
		var err error
		employee, err = s.employeeRepo.GetByID(txCtx, id)
		return err
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, models.NotFound("employee", id)
		}
		return nil, classify("employee", "get employee", err)
	}

	return employee, nil
}

func (s *EmployeeService) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool

	err := s.uow.Do(ctx, func(txCtx context.Context) error {
		var err error
		exists, err = s.employeeRepo.ExistsByName(txCtx, name, 0)
		return err
	})
	if err != nil {
		return false, classify("employee", "check employee name", err)
	}

	return exists, nil
}

func (s *EmployeeService) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool

	err := s.uow.Do(ctx, func(txCtx context.Context) error {
		var err error
		exists, err = s.employeeRepo.ExistsByEmail(txCtx, email, 0)
		return err
	})
	if err != nil {
		return false, classify("employee", "check employee email", err)
	}

	return exists, nil
}

// checkUnique fails with ErrDuplicate when another employee already uses name
// or email. Empty values are not checked.
func (s *EmployeeService) checkUnique(ctx context.Context, name, email string, excludeID uint) error {
	nameTaken, emailTaken := false, false

	if name != "" {
		exists, err := s.employeeRepo.ExistsByName(ctx, name, excludeID)
		if err != nil {
			return err
		}
		nameTaken = exists
	}
	if email != "" {
		exists, err := s.employeeRepo.ExistsByEmail(ctx, email, excludeID)
		if err != nil {
			return err
		}
		emailTaken = exists
	}

	switch {
	case nameTaken:
		return models.Duplicate("employee", fmt.Sprintf("name %q", name))
	case emailTaken:
		return models.Duplicate("employee", fmt.Sprintf("email %q", email))
	}
	return nil
}

func (s *EmployeeService) checkTeam(ctx context.Context, teamID uint) error {
	exists, err := s.teamRepo.Exists(ctx, teamID)
	if err != nil {
		return err
	}
	if !exists {
		return models.NotFound("team", teamID)
	}
	return nil
}
