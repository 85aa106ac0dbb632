package controller

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"taskdesk/internal/core/domain"
	"taskdesk/internal/core/ports"
)

type ProjectController struct {
	projects ports.ProjectStore
	validate *validator.Validate
}

var _ ports.ProjectController = (*ProjectController)(nil)

func NewProjectController(projects ports.ProjectStore) *ProjectController {
	return &ProjectController{
		projects: projects,
		validate: newValidate(),
	}
}

func (c *ProjectController) AddProject(ctx context.Context, in domain.CreateProjectInput) (*domain.Project, error) {
	if err := checkInput(c.validate, in); err != nil {
		return nil, err
	}
	if !in.StartDate.Before(in.EndDate) {
		return nil, fmt.Errorf("%w: start %s, end %s", domain.ErrDateOrder,
			in.StartDate.Format(time.RFC3339), in.EndDate.Format(time.RFC3339))
	}
	// Compared by calendar day: a project may still start later today.
	if startOfDay(in.StartDate).Before(startOfDay(time.Now())) {
		return nil, fmt.Errorf("%w: %s", domain.ErrStartDateInPast, in.StartDate.Format(time.RFC3339))
	}

	project, err := domain.NewProject(in.Name, in.Description, in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}
	if _, err := c.projects.CreateProject(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (c *ProjectController) GetProject(ctx context.Context, id int64) (*domain.Project, error) {
	return c.projects.GetProjectByID(ctx, id)
}

func (c *ProjectController) GetAllProjects(ctx context.Context) ([]domain.Project, error) {
	return c.projects.GetAllProjects(ctx)
}

// UpdateProject validates only the fields present. Date order is re-checked
// against the merged existing and incoming values; unlike creation, a start
// date in the past is accepted here.
func (c *ProjectController) UpdateProject(ctx context.Context, id int64, in domain.UpdateProjectInput) (bool, error) {
	if in.IsEmpty() {
		return false, nil
	}
	if err := checkInput(c.validate, in); err != nil {
		return false, err
	}

	if in.StartDate != nil || in.EndDate != nil {
		existing, err := c.projects.GetProjectByID(ctx, id)
		if err != nil {
			return false, err
		}
		if existing != nil {
			start := existing.StartDate
			if in.StartDate != nil {
				start = *in.StartDate
			}
			end := existing.EndDate
			if in.EndDate != nil {
				end = *in.EndDate
			}
			if !start.Before(end) {
				return false, fmt.Errorf("%w: start %s, end %s", domain.ErrDateOrder,
					start.Format(time.RFC3339), end.Format(time.RFC3339))
			}
		}
	}

	return c.projects.UpdateProject(ctx, id, in)
}

func (c *ProjectController) UpdateProjectStatus(ctx context.Context, id int64, status domain.ProjectStatus) (bool, error) {
	if !status.Valid() {
		return false, fmt.Errorf("%w: %q", domain.ErrInvalidProjectStatus, status)
	}
	return c.UpdateProject(ctx, id, domain.UpdateProjectInput{Status: &status})
}

func (c *ProjectController) DeleteProject(ctx context.Context, id int64) (bool, error) {
	return c.projects.DeleteProject(ctx, id)
}

func (c *ProjectController) GetProjectProgress(ctx context.Context, id int64) (float64, error) {
	project, err := c.projects.GetProjectByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if project == nil {
		return 0, fmt.Errorf("%w: id %d", domain.ErrProjectNotFound, id)
	}
	return project.Progress(), nil
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
