package models

import (
	"time"
)

type Team struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Name        string     `gorm:"uniqueIndex;not null;size:100" json:"name"`
	Description string     `gorm:"not null;size:500" json:"description"`
	Employees   []Employee `gorm:"foreignKey:TeamID" json:"employees,omitempty"`
	Tasks       []Task     `gorm:"foreignKey:TeamID" json:"tasks,omitempty"`
}

// TeamSummary is a Team with its employee and task counts computed on read.
type TeamSummary struct {
	Team
	EmployeesCount int64 `json:"employees_count"`
	TasksCount     int64 `json:"tasks_count"`
}

type CreateTeamInput struct {
	Name        string `validate:"required,max=100"`
	Description string `validate:"required,max=500"`
}
