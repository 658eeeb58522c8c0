package models

import (
	"fmt"
	"strings"
	"time"
)

// Status is stored as its ordinal; labels are for presentation only.
type Status int

const (
	StatusPending Status = iota
	StatusInProgress
	StatusCompleted
)

var statusLabels = map[Status]string{
	StatusPending:    "Pending",
	StatusInProgress: "In Progress",
	StatusCompleted:  "Completed",
}

// Statuses lists every status in ordinal order.
func Statuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusCompleted}
}

func (s Status) IsValid() bool {
	_, ok := statusLabels[s]
	return ok
}

func (s Status) String() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// ParseStatus accepts a label, an identifier such as "in_progress", or an ordinal.
func ParseStatus(text string) (Status, error) {
	key := normalizeEnumText(text)
	for _, s := range Statuses() {
		if key == normalizeEnumText(s.String()) || key == fmt.Sprint(int(s)) {
			return s, nil
		}
	}
	return 0, Validationf("status", "unknown status %q", text)
}

// Priority is stored as its ordinal; labels are for presentation only.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
)

// DefaultPriority applies when a task is created without one.
const DefaultPriority = PriorityMedium

var priorityLabels = map[Priority]string{
	PriorityLow:    "Low",
	PriorityMedium: "Medium",
	PriorityHigh:   "High",
}

// Priorities lists every priority in ordinal order.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

func (p Priority) IsValid() bool {
	_, ok := priorityLabels[p]
	return ok
}

func (p Priority) String() string {
	if label, ok := priorityLabels[p]; ok {
		return label
	}
	return fmt.Sprintf("Priority(%d)", int(p))
}

// ParsePriority accepts a label or an ordinal.
func ParsePriority(text string) (Priority, error) {
	key := normalizeEnumText(text)
	for _, p := range Priorities() {
		if key == normalizeEnumText(p.String()) || key == fmt.Sprint(int(p)) {
			return p, nil
		}
	}
	return 0, Validationf("priority", "unknown priority %q", text)
}

func normalizeEnumText(text string) string {
	r := strings.NewReplacer(" ", "", "_", "", "-", "")
	return strings.ToLower(r.Replace(strings.TrimSpace(text)))
}

type Task struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Title       string    `gorm:"not null;size:200" json:"title"`
	Description string    `gorm:"size:1000" json:"description"`
	Status      Status    `gorm:"not null;index" json:"status"`
	Priority    Priority  `gorm:"not null" json:"priority"`
	TeamID      uint      `gorm:"not null;index" json:"team_id"`
	Team        *Team     `gorm:"foreignKey:TeamID" json:"team,omitempty"`
	OwnerID     *uint     `gorm:"index" json:"owner_id"`
	Owner       *Employee `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
}

func (t *Task) IsAssigned() bool {
	return t.OwnerID != nil
}

type CreateTaskInput struct {
	Title       string `validate:"required,max=200"`
	Description string `validate:"max=1000"`
	TeamID      uint   `validate:"required"`
	OwnerID     *uint
	Priority    *Priority
}

// UpdateTaskInput carries free-text edits; nil or empty fields are left untouched.
type UpdateTaskInput struct {
	Title       *string `validate:"omitempty,max=200"`
	Description *string `validate:"omitempty,max=1000"`
}

// Statistics keys besides the priority labels.
const StatisticsTotalKey = "total"
