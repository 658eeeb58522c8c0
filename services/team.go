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

type TeamRepository interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id uint) (*models.Team, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	List(ctx context.Context) ([]models.Team, error)
	Delete(ctx context.Context, id uint) (bool, error)
	CountEmployeesByTeam(ctx context.Context) (map[uint]int64, error)
	CountTasksByTeam(ctx context.Context) (map[uint]int64, error)
}

type TeamService struct {
	teamRepo TeamRepository
	uow      database.UnitOfWork
	lg       *slog.Logger
}

func NewTeamService(teamRepo TeamRepository, uow database.UnitOfWork, lg *slog.Logger) *TeamService {
	return &TeamService{
		teamRepo: teamRepo,
		uow:      uow,
		lg:       lg,
	}
}

func (s *TeamService) Create(ctx context.Context, input models.CreateTeamInput) (*models.Team, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Description = strings.TrimSpace(input.Description)
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	team := &models.Team{
		Name:        input.Name,
		Description: input.Description,
	}

	err := s.uow.Do(ctx, func(txCtx context.Context) error {
		exists, err := s.teamRepo.ExistsByName(txCtx, team.Name)
		if err != nil {
			return err
		}
		if exists {
			return models.Duplicate("team", fmt.Sprintf("name %q", team.Name))
		}

		return s.teamRepo.Create(txCtx, team)
	})
	if err != nil {
		return nil, classify("team", "create team", err)
	}

	s.lg.Info("team created", slog.Uint64("team_id", uint64(team.ID)), slog.String("name", team.Name))
	return team, nil
}

// List returns every team with its employee and task counts.
func (s *TeamService) List(ctx context.Context) ([]models.TeamSummary, error) {
	summaries := []models.TeamSummary{}

	err := s.uow.Do(ctx, func(txCtx context.Context) error {
		teams, err := s.teamRepo.List(txCtx)
		if err != nil {
			return err
		}

		employees, err := s.teamRepo.CountEmployeesByTeam(txCtx)
		if err != nil {
			return err
		}

		tasks, err := s.teamRepo.CountTasksByTeam(txCtx)
		if err != nil {
			return err
		}

		for _, team := range teams {
			summaries = append(summaries, models.TeamSummary{
				Team:           team,
				EmployeesCount: employees[team.ID],
				TasksCount:     tasks[team.ID],
			})
		}
		return nil
	})
	if err != nil {
		return nil, classify("team", "list teams", err)
	}

	return summaries, nil
}

func (s *TeamService) GetByID(ctx context.Context, id uint) (*models.Team, error) {
	var team *models.Team

	err := s.uow.Do(ctx, func(txCtx context.Context) error {
		var err error
		team, err = s.teamRepo.GetByID(txCtx, id)
		return err
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, models.NotFound("team", id)
		}
		return nil, classify("team", "get team", err)
	}

	return team, nil
}

// Delete removes the team. Employees and tasks that reference it are left as they are.
func (s *TeamService) Delete(ctx context.Context, id uint) (bool, error) {
	err := s.uow.Do(ctx, func(txCtx context.Context) error {
		deleted, err := s.teamRepo.Delete(txCtx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return models.NotFound("team", id)
		}
		return nil
	})
	if err != nil {
		return false, classify("team", "delete team", err)
	}

	s.lg.Info("team deleted", slog.Uint64("team_id", uint64(id)))
	return true, nil
}
