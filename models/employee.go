package models

import (
	"time"
)

type Employee struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `gorm:"uniqueIndex;not null;size:100" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null;size:255" json:"email"`
	TeamID    uint      `gorm:"not null;index" json:"team_id"`
	Team      *Team     `gorm:"foreignKey:TeamID" json:"team,omitempty"`
	Tasks     []Task    `gorm:"foreignKey:OwnerID" json:"tasks,omitempty"`
}

// TeamName returns the name of the preloaded team, or an empty string.
func (e *Employee) TeamName() string {
	if e.Team == nil {
		return ""
	}
	return e.Team.Name
}

type CreateEmployeeInput struct {
	Name   string `validate:"required,max=100"`
	Email  string `validate:"required,max=255"`
	TeamID uint   `validate:"required"`
}

// UpdateEmployeeInput carries the fields to change; nil fields are left untouched.
type UpdateEmployeeInput struct {
	Name   *string `validate:"omitempty,min=1,max=100"`
	Email  *string `validate:"omitempty,min=1,max=255"`
	TeamID *uint   `validate:"omitempty,min=1"`
}
