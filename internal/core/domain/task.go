package domain

import (
	"fmt"
	"time"
)

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

type TaskPriority int

const (
	PriorityHigh   TaskPriority = 1
	PriorityMedium TaskPriority = 2
	PriorityLow    TaskPriority = 3
)

func (p TaskPriority) Valid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

type Task struct {
	ID          int64
	Title       string
	Description *string
	Priority    TaskPriority
	Status      TaskStatus
	DueDate     time.Time
	ProjectID   int64
	AssigneeID  int64
}

func NewTask(title string, description *string, priority TaskPriority, due time.Time, projectID, assigneeID int64) (*Task, error) {
	if !priority.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPriority, priority)
	}

	return &Task{
		Title:       title,
		Description: description,
		Priority:    priority,
		Status:      TaskStatusPending,
		DueDate:     due,
		ProjectID:   projectID,
		AssigneeID:  assigneeID,
	}, nil
}

// Overdue reports whether the task is past due at the given instant.
// Completed tasks are never overdue.
func (t *Task) Overdue(now time.Time) bool {
	if t.Status == TaskStatusCompleted {
		return false
	}
	return t.DueDate.Before(now)
}

// UserTask is a task enriched for per-user listings: the owning project's
// name (or a placeholder when the project no longer exists) and the overdue
// flag computed at read time.
type UserTask struct {
	Task
	ProjectName string
	IsOverdue   bool
}

type CreateTaskInput struct {
	Title       string `validate:"notblank"`
	Description *string
	Priority    TaskPriority `validate:"oneof=1 2 3"`
	DueDate     time.Time    `validate:"required"`
	ProjectID   int64        `validate:"required"`
	AssigneeID  int64        `validate:"required"`
}

// UpdateTaskInput applies only the fields that are present. Description and
// its Set flag follow the same absent-vs-null convention as projects.
type UpdateTaskInput struct {
	Title          *string `validate:"omitempty,notblank"`
	Description    *string
	DescriptionSet bool
	Priority       *TaskPriority `validate:"omitempty,oneof=1 2 3"`
	Status         *TaskStatus   `validate:"omitempty,oneof=pending in_progress completed"`
	DueDate        *time.Time
	ProjectID      *int64
	AssigneeID     *int64
}

func (in UpdateTaskInput) IsEmpty() bool {
	return in.Title == nil &&
		!in.DescriptionSet &&
		in.Priority == nil &&
		in.Status == nil &&
		in.DueDate == nil &&
		in.ProjectID == nil &&
		in.AssigneeID == nil
}
