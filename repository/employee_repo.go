package repository

import (
	"context"
	"fmt"

	"todocli/database"
	"todocli/models"
)

type EmployeeRepository struct {
	db *database.Store
}

func NewEmployeeRepository(db *database.Store) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	if err := r.db.Conn(ctx).Create(employee).Error; err != nil {
		return fmt.Errorf("failed to insert employee: %w", HandleDuplicate(err))
	}
	return nil
}

func (r *EmployeeRepository) Save(ctx context.Context, employee *models.Employee) error {
	err := r.db.Conn(ctx).Model(employee).
		Select("name", "email", "team_id").
		Updates(employee).Error
	if err != nil {
		return fmt.Errorf("failed to update employee %d: %w", employee.ID, HandleDuplicate(err))
	}
	return nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id uint) (*models.Employee, error) {
	var employee models.Employee
	if err := r.db.Conn(ctx).Preload("Team").First(&employee, id).Error; err != nil {
		return nil, HandleNotFound(err)
	}
	return &employee, nil
}

func (r *EmployeeRepository) Exists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, "id = ?", id)
}

// ExistsByName reports whether an employee other than excludeID has the name.
// Pass 0 to consider every employee.
func (r *EmployeeRepository) ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error) {
	return r.exists(ctx, "name = ? AND id <> ?", name, excludeID)
}

// ExistsByEmail reports whether an employee other than excludeID has the email.
func (r *EmployeeRepository) ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error) {
	return r.exists(ctx, "email = ? AND id <> ?", email, excludeID)
}

func (r *EmployeeRepository) exists(ctx context.Context, query string, args ...any) (bool, error) {
	var count int64
	err := r.db.Conn(ctx).Model(&models.Employee{}).Where(query, args...).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check employee existence: %w", err)
	}
	return count > 0, nil
}

func (r *EmployeeRepository) List(ctx context.Context) ([]models.Employee, error) {
	employees := []models.Employee{}
	err := r.db.Conn(ctx).
		Preload("Team").
		Preload("Tasks").
		Order("id").
		Find(&employees).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	return employees, nil
}
