package ports

import (
	"context"

	"taskdesk/internal/core/domain"
)

// TaskStore is the storage contract for tasks. CreateTask re-validates that
// the referenced project and assignee exist before inserting, regardless of
// any controller-level check: the engine may be invoked directly.
type TaskStore interface {
	CreateTask(ctx context.Context, task *domain.Task) (int64, error)
	GetTaskByID(ctx context.Context, id int64) (*domain.Task, error)
	GetAllTasks(ctx context.Context) ([]domain.Task, error)
	UpdateTask(ctx context.Context, id int64, in domain.UpdateTaskInput) (bool, error)
	DeleteTask(ctx context.Context, id int64) (bool, error)
	SearchTasks(ctx context.Context, query string) ([]domain.Task, error)
	GetTasksByProject(ctx context.Context, projectID int64) ([]domain.Task, error)
	GetTasksByUser(ctx context.Context, userID int64) ([]domain.Task, error)
}

type TaskController interface {
	AddTask(ctx context.Context, in domain.CreateTaskInput) (*domain.Task, error)
	GetTask(ctx context.Context, id int64) (*domain.Task, error)
	GetAllTasks(ctx context.Context) ([]domain.Task, error)
	UpdateTask(ctx context.Context, id int64, in domain.UpdateTaskInput) (bool, error)
	UpdateTaskStatus(ctx context.Context, id int64, status domain.TaskStatus) (bool, error)
	DeleteTask(ctx context.Context, id int64) (bool, error)
	SearchTasks(ctx context.Context, query string) ([]domain.Task, error)
	GetOverdueTasks(ctx context.Context) ([]domain.Task, error)
	GetTasksByProject(ctx context.Context, projectID int64) ([]domain.Task, error)
	GetTasksByUser(ctx context.Context, userID int64) ([]domain.Task, error)
}
