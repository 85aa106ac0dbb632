package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"taskdesk/internal/core/domain"
	"taskdesk/internal/core/ports"
)

type ProjectRepository struct {
	db *sqlx.DB
}

var _ ports.ProjectStore = (*ProjectRepository)(nil)

func NewProjectRepository(db *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

type projectRow struct {
	ID          int64          `db:"id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	StartDate   string         `db:"start_date"`
	EndDate     string         `db:"end_date"`
	Status      string         `db:"status"`
}

func (r *ProjectRepository) CreateProject(ctx context.Context, project *domain.Project) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO projects (name, description, start_date, end_date, status) VALUES (?, ?, ?, ?, ?)`,
		project.Name, project.Description,
		formatTime(project.StartDate), formatTime(project.EndDate),
		string(project.Status),
	)
	if err != nil {
		return 0, translateSQLiteError(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	project.ID = id
	return id, nil
}

func (r *ProjectRepository) GetProjectByID(ctx context.Context, id int64) (*domain.Project, error) {
	var row projectRow
	err := r.db.GetContext(ctx, &row,
		`SELECT id, name, description, start_date, end_date, status FROM projects WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	project, err := mapProjectRow(row)
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepository) GetAllProjects(ctx context.Context) ([]domain.Project, error) {
	var rows []projectRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT id, name, description, start_date, end_date, status FROM projects ORDER BY start_date DESC`)
	if err != nil {
		return nil, err
	}

	projects := make([]domain.Project, 0, len(rows))
	for _, row := range rows {
		project, err := mapProjectRow(row)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	return projects, nil
}

func (r *ProjectRepository) UpdateProject(ctx context.Context, id int64, in domain.UpdateProjectInput) (bool, error) {
	if in.IsEmpty() {
		return false, nil
	}

	sets := make([]string, 0, 5)
	args := make([]any, 0, 6)
	if in.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *in.Name)
	}
	if in.DescriptionSet {
		sets = append(sets, "description = ?")
		args = append(args, in.Description)
	}
	if in.StartDate != nil {
		sets = append(sets, "start_date = ?")
		args = append(args, formatTime(*in.StartDate))
	}
	if in.EndDate != nil {
		sets = append(sets, "end_date = ?")
		args = append(args, formatTime(*in.EndDate))
	}
	if in.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*in.Status))
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE projects SET %s WHERE id = ?", strings.Join(sets, ", "))
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, translateSQLiteError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// DeleteProject removes the row; the project_id foreign key cascades the
// delete to the project's tasks.
func (r *ProjectRepository) DeleteProject(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return false, translateSQLiteError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func mapProjectRow(row projectRow) (domain.Project, error) {
	start, err := parseTime(row.StartDate)
	if err != nil {
		return domain.Project{}, fmt.Errorf("project %d: %w", row.ID, err)
	}
	end, err := parseTime(row.EndDate)
	if err != nil {
		return domain.Project{}, fmt.Errorf("project %d: %w", row.ID, err)
	}

	project := domain.Project{
		ID:        row.ID,
		Name:      row.Name,
		StartDate: start,
		EndDate:   end,
		Status:    domain.ProjectStatus(row.Status),
	}
	if row.Description.Valid {
		value := row.Description.String
		project.Description = &value
	}
	return project, nil
}
