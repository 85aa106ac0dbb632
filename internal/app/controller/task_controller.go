package controller

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"taskdesk/internal/core/domain"
	"taskdesk/internal/core/ports"
)

type TaskController struct {
	tasks    ports.TaskStore
	projects ports.ProjectStore
	users    ports.UserStore
	validate *validator.Validate
}

var _ ports.TaskController = (*TaskController)(nil)

func NewTaskController(tasks ports.TaskStore, projects ports.ProjectStore, users ports.UserStore) *TaskController {
	return &TaskController{
		tasks:    tasks,
		projects: projects,
		users:    users,
		validate: newValidate(),
	}
}

func (c *TaskController) AddTask(ctx context.Context, in domain.CreateTaskInput) (*domain.Task, error) {
	if err := checkInput(c.validate, in); err != nil {
		return nil, err
	}

	// The storage engine re-checks both references on insert; this check
	// must hold independently.
	if err := c.resolveProject(ctx, in.ProjectID); err != nil {
		return nil, err
	}
	if err := c.resolveUser(ctx, in.AssigneeID); err != nil {
		return nil, err
	}

	// Strict: a due date equal to now is accepted, earlier is not.
	if in.DueDate.Before(time.Now()) {
		return nil, fmt.Errorf("%w: %s", domain.ErrDueDateInPast, in.DueDate.Format(time.RFC3339))
	}

	task, err := domain.NewTask(in.Title, in.Description, in.Priority, in.DueDate, in.ProjectID, in.AssigneeID)
	if err != nil {
		return nil, err
	}
	if _, err := c.tasks.CreateTask(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (c *TaskController) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	return c.tasks.GetTaskByID(ctx, id)
}

func (c *TaskController) GetAllTasks(ctx context.Context) ([]domain.Task, error) {
	return c.tasks.GetAllTasks(ctx)
}

// UpdateTask validates present fields only. Moving the due date into the
// past is allowed on update, unlike creation; it is logged as a warning
// because the task becomes overdue immediately.
func (c *TaskController) UpdateTask(ctx context.Context, id int64, in domain.UpdateTaskInput) (bool, error) {
	if in.IsEmpty() {
		return false, nil
	}
	if err := checkInput(c.validate, in); err != nil {
		return false, err
	}

	if in.DueDate != nil && in.DueDate.Before(time.Now()) {
		zap.L().Warn("task due date moved into the past",
			zap.Int64("task_id", id),
			zap.Time("due_date", *in.DueDate))
	}

	if in.ProjectID != nil {
		if err := c.resolveProject(ctx, *in.ProjectID); err != nil {
			return false, err
		}
	}
	if in.AssigneeID != nil {
		if err := c.resolveUser(ctx, *in.AssigneeID); err != nil {
			return false, err
		}
	}

	return c.tasks.UpdateTask(ctx, id, in)
}

func (c *TaskController) UpdateTaskStatus(ctx context.Context, id int64, status domain.TaskStatus) (bool, error) {
	if !status.Valid() {
		return false, fmt.Errorf("%w: %q", domain.ErrInvalidTaskStatus, status)
	}
	return c.tasks.UpdateTask(ctx, id, domain.UpdateTaskInput{Status: &status})
}

func (c *TaskController) DeleteTask(ctx context.Context, id int64) (bool, error) {
	return c.tasks.DeleteTask(ctx, id)
}

// SearchTasks intercepts blank queries before storage is touched.
func (c *TaskController) SearchTasks(ctx context.Context, query string) ([]domain.Task, error) {
	if strings.TrimSpace(query) == "" {
		return []domain.Task{}, nil
	}
	return c.tasks.SearchTasks(ctx, query)
}

// GetOverdueTasks evaluates against the clock at call time; nothing is
// cached.
func (c *TaskController) GetOverdueTasks(ctx context.Context) ([]domain.Task, error) {
	all, err := c.tasks.GetAllTasks(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	overdue := make([]domain.Task, 0)
	for _, task := range all {
		if task.Overdue(now) {
			overdue = append(overdue, task)
		}
	}
	return overdue, nil
}

func (c *TaskController) GetTasksByProject(ctx context.Context, projectID int64) ([]domain.Task, error) {
	if err := c.resolveProject(ctx, projectID); err != nil {
		return nil, err
	}
	return c.tasks.GetTasksByProject(ctx, projectID)
}

func (c *TaskController) GetTasksByUser(ctx context.Context, userID int64) ([]domain.Task, error) {
	if err := c.resolveUser(ctx, userID); err != nil {
		return nil, err
	}
	return c.tasks.GetTasksByUser(ctx, userID)
}

func (c *TaskController) resolveProject(ctx context.Context, id int64) error {
	project, err := c.projects.GetProjectByID(ctx, id)
	if err != nil {
		return err
	}
	if project == nil {
		return fmt.Errorf("%w: id %d", domain.ErrProjectNotFound, id)
	}
	return nil
}

func (c *TaskController) resolveUser(ctx context.Context, id int64) error {
	user, err := c.users.GetUserByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("%w: id %d", domain.ErrUserNotFound, id)
	}
	return nil
}
