package repository

import (
	"context"
	"fmt"

	"todocli/database"
	"todocli/models"
)

type TaskRepository struct {
	db *database.Store
}

func NewTaskRepository(db *database.Store) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *models.Task) error {
	if err := r.db.Conn(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("failed to insert task: %w", HandleDuplicate(err))
	}
	return nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id uint) (*models.Task, error) {
	var task models.Task
	err := r.db.Conn(ctx).
		Preload("Team").
		Preload("Owner").
		First(&task, id).Error
	if err != nil {
		return nil, HandleNotFound(err)
	}
	return &task, nil
}

func (r *TaskRepository) List(ctx context.Context) ([]models.Task, error) {
	return r.find(ctx, "")
}

func (r *TaskRepository) ListByTeam(ctx context.Context, teamID uint) ([]models.Task, error) {
	return r.find(ctx, "team_id = ?", teamID)
}

func (r *TaskRepository) ListByOwner(ctx context.Context, employeeID uint) ([]models.Task, error) {
	return r.find(ctx, "owner_id = ?", employeeID)
}

func (r *TaskRepository) find(ctx context.Context, query string, args ...any) ([]models.Task, error) {
	db := r.db.Conn(ctx).Preload("Team").Preload("Owner").Order("id")
	if query != "" {
		db = db.Where(query, args...)
	}

	tasks := []models.Task{}
	if err := db.Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	return tasks, nil
}

// UpdateColumns writes the given columns of the task row and bumps updated_at.
func (r *TaskRepository) UpdateColumns(ctx context.Context, id uint, columns map[string]any) error {
	err := r.db.Conn(ctx).Model(&models.Task{ID: id}).Updates(columns).Error
	if err != nil {
		return fmt.Errorf("failed to update task %d: %w", id, err)
	}
	return nil
}

// Delete removes the task row and reports whether one existed.
func (r *TaskRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.Conn(ctx).Delete(&models.Task{}, id)
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete task: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

type priorityCount struct {
	Priority models.Priority
	Count    int64
}

// CountByPriority returns task counts keyed by priority.
func (r *TaskRepository) CountByPriority(ctx context.Context) (map[models.Priority]int64, error) {
	var rows []priorityCount
	err := r.db.Conn(ctx).Model(&models.Task{}).
		Select("priority, COUNT(*) AS count").
		Group("priority").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks by priority: %w", err)
	}

	counts := make(map[models.Priority]int64, len(rows))
	for _, row := range rows {
		counts[row.Priority] = row.Count
	}
	return counts, nil
}
