package domain

import (
	"fmt"
	"strings"
	"time"
)

type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusOnHold    ProjectStatus = "on_hold"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectStatusActive, ProjectStatusCompleted, ProjectStatusOnHold:
		return true
	}
	return false
}

type Project struct {
	ID          int64
	Name        string
	Description *string
	StartDate   time.Time
	EndDate     time.Time
	Status      ProjectStatus
}

func NewProject(name string, description *string, start, end time.Time) (*Project, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyProjectName
	}
	if !start.Before(end) {
		return nil, fmt.Errorf("%w: start %s, end %s", ErrDateOrder,
			start.Format(time.RFC3339), end.Format(time.RFC3339))
	}

	return &Project{
		Name:        name,
		Description: description,
		StartDate:   start,
		EndDate:     end,
		Status:      ProjectStatusActive,
	}, nil
}

// Progress derives a completion percentage from the status alone: completed
// projects report 100, on-hold 0, active 50. The ratio of actually completed
// tasks is ignored. Known limitation.
func (p *Project) Progress() float64 {
	switch p.Status {
	case ProjectStatusCompleted:
		return 100.0
	case ProjectStatusOnHold:
		return 0.0
	default:
		return 50.0
	}
}

type CreateProjectInput struct {
	Name        string `validate:"notblank"`
	Description *string
	StartDate   time.Time `validate:"required"`
	EndDate     time.Time `validate:"required"`
}

// UpdateProjectInput applies only the fields that are present. Description
// carries a separate Set flag so that an explicit null (clear the text) can
// be told apart from an absent field.
type UpdateProjectInput struct {
	Name           *string `validate:"omitempty,notblank"`
	Description    *string
	DescriptionSet bool
	StartDate      *time.Time
	EndDate        *time.Time
	Status         *ProjectStatus `validate:"omitempty,oneof=active completed on_hold"`
}

func (in UpdateProjectInput) IsEmpty() bool {
	return in.Name == nil &&
		!in.DescriptionSet &&
		in.StartDate == nil &&
		in.EndDate == nil &&
		in.Status == nil
}
