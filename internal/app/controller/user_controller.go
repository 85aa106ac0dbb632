package controller

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"taskdesk/internal/core/domain"
	"taskdesk/internal/core/ports"
)

// unknownProject is shown in per-user task listings when the owning project
// was deleted between reads.
const unknownProject = "Unknown project"

type UserController struct {
	users    ports.UserStore
	projects ports.ProjectStore
	tasks    ports.TaskStore
	validate *validator.Validate
}

var _ ports.UserController = (*UserController)(nil)

func NewUserController(users ports.UserStore, projects ports.ProjectStore, tasks ports.TaskStore) *UserController {
	return &UserController{
		users:    users,
		projects: projects,
		tasks:    tasks,
		validate: newValidate(),
	}
}

func (c *UserController) AddUser(ctx context.Context, in domain.CreateUserInput) (*domain.User, error) {
	if err := checkInput(c.validate, in); err != nil {
		return nil, err
	}

	// Application-level uniqueness scan, layered on top of the storage
	// engine's UNIQUE constraints. Exact, case-sensitive comparison.
	existing, err := c.users.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}
	for _, other := range existing {
		if other.Username == in.Username {
			return nil, fmt.Errorf("%w: %q", domain.ErrDuplicateUsername, in.Username)
		}
		if other.Email == in.Email {
			return nil, fmt.Errorf("%w: %q", domain.ErrDuplicateEmail, in.Email)
		}
	}

	user, err := domain.NewUser(in.Username, in.Email, in.Role)
	if err != nil {
		return nil, err
	}
	if _, err := c.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (c *UserController) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return c.users.GetUserByID(ctx, id)
}

func (c *UserController) GetAllUsers(ctx context.Context) ([]domain.User, error) {
	return c.users.GetAllUsers(ctx)
}

func (c *UserController) UpdateUser(ctx context.Context, id int64, in domain.UpdateUserInput) (bool, error) {
	if in.IsEmpty() {
		return false, nil
	}
	if err := checkInput(c.validate, in); err != nil {
		return false, err
	}

	if in.Username != nil || in.Email != nil {
		existing, err := c.users.GetAllUsers(ctx)
		if err != nil {
			return false, err
		}
		for _, other := range existing {
			if other.ID == id {
				// Re-submitting a user's own values is not a collision.
				continue
			}
			if in.Username != nil && other.Username == *in.Username {
				return false, fmt.Errorf("%w: %q", domain.ErrDuplicateUsername, *in.Username)
			}
			if in.Email != nil && other.Email == *in.Email {
				return false, fmt.Errorf("%w: %q", domain.ErrDuplicateEmail, *in.Email)
			}
		}
	}

	return c.users.UpdateUser(ctx, id, in)
}

func (c *UserController) DeleteUser(ctx context.Context, id int64) (bool, error) {
	return c.users.DeleteUser(ctx, id)
}

// GetUserTasks lists the user's tasks ordered by due date then priority,
// each enriched with the owning project's name and the overdue flag.
func (c *UserController) GetUserTasks(ctx context.Context, id int64) ([]domain.UserTask, error) {
	user, err := c.users.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: id %d", domain.ErrUserNotFound, id)
	}

	tasks, err := c.tasks.GetTasksByUser(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	result := make([]domain.UserTask, 0, len(tasks))
	for _, task := range tasks {
		name := unknownProject
		project, err := c.projects.GetProjectByID(ctx, task.ProjectID)
		if err != nil {
			return nil, err
		}
		if project != nil {
			name = project.Name
		}

		result = append(result, domain.UserTask{
			Task:        task,
			ProjectName: name,
			IsOverdue:   task.Overdue(now),
		})
	}
	return result, nil
}
