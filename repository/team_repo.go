package repository

import (
	"context"
	"fmt"

	"todocli/database"
	"todocli/models"
)

type TeamRepository struct {
	db *database.Store
}

func NewTeamRepository(db *database.Store) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(ctx context.Context, team *models.Team) error {
	if err := r.db.Conn(ctx).Create(team).Error; err != nil {
		return fmt.Errorf("failed to insert team: %w", HandleDuplicate(err))
	}
	return nil
}

func (r *TeamRepository) GetByID(ctx context.Context, id uint) (*models.Team, error) {
	var team models.Team
	if err := r.db.Conn(ctx).First(&team, id).Error; err != nil {
		return nil, HandleNotFound(err)
	}
	return &team, nil
}

func (r *TeamRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.Conn(ctx).Model(&models.Team{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check team existence: %w", err)
	}
	return count > 0, nil
}

func (r *TeamRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.Conn(ctx).Model(&models.Team{}).Where("name = ?", name).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check team name: %w", err)
	}
	return count > 0, nil
}

func (r *TeamRepository) List(ctx context.Context) ([]models.Team, error) {
	teams := []models.Team{}
	if err := r.db.Conn(ctx).Order("id").Find(&teams).Error; err != nil {
		return nil, fmt.Errorf("failed to query teams: %w", err)
	}
	return teams, nil
}

// Delete removes the team row and reports whether one existed.
func (r *TeamRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.Conn(ctx).Delete(&models.Team{}, id)
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete team: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

type teamCount struct {
	TeamID uint
	Count  int64
}

// CountEmployeesByTeam returns employee counts keyed by team id.
func (r *TeamRepository) CountEmployeesByTeam(ctx context.Context) (map[uint]int64, error) {
	return r.countByTeam(ctx, &models.Employee{})
}

// CountTasksByTeam returns task counts keyed by team id.
func (r *TeamRepository) CountTasksByTeam(ctx context.Context) (map[uint]int64, error) {
	return r.countByTeam(ctx, &models.Task{})
}

func (r *TeamRepository) countByTeam(ctx context.Context, model any) (map[uint]int64, error) {
	var rows []teamCount
	err := r.db.Conn(ctx).Model(model).
		Select("team_id, COUNT(*) AS count").
		Group("team_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count by team: %w", err)
	}

	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.TeamID] = row.Count
	}
	return counts, nil
}
