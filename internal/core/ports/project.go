package ports

import (
	"context"

	"taskdesk/internal/core/domain"
)

type ProjectStore interface {
	CreateProject(ctx context.Context, project *domain.Project) (int64, error)
	GetProjectByID(ctx context.Context, id int64) (*domain.Project, error)
	GetAllProjects(ctx context.Context) ([]domain.Project, error)
	UpdateProject(ctx context.Context, id int64, in domain.UpdateProjectInput) (bool, error)
	DeleteProject(ctx context.Context, id int64) (bool, error)
}

type ProjectController interface {
	AddProject(ctx context.Context, in domain.CreateProjectInput) (*domain.Project, error)
	GetProject(ctx context.Context, id int64) (*domain.Project, error)
	GetAllProjects(ctx context.Context) ([]domain.Project, error)
	UpdateProject(ctx context.Context, id int64, in domain.UpdateProjectInput) (bool, error)
	UpdateProjectStatus(ctx context.Context, id int64, status domain.ProjectStatus) (bool, error)
	DeleteProject(ctx context.Context, id int64) (bool, error)
	GetProjectProgress(ctx context.Context, id int64) (float64, error)
}
