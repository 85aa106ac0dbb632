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

const taskColumns = `id, title, description, priority, status, due_date, project_id, assignee_id`

type TaskRepository struct {
	db *sqlx.DB
}

var _ ports.TaskStore = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

type taskRow struct {
	ID          int64          `db:"id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Priority    int            `db:"priority"`
	Status      string         `db:"status"`
	DueDate     string         `db:"due_date"`
	ProjectID   int64          `db:"project_id"`
	AssigneeID  int64          `db:"assignee_id"`
}

// CreateTask re-validates both references before inserting. Controllers make
// the same check; this one holds even when the engine is invoked directly.
func (r *TaskRepository) CreateTask(ctx context.Context, task *domain.Task) (int64, error) {
	if err := r.checkReference(ctx, "projects", task.ProjectID, domain.ErrProjectNotFound); err != nil {
		return 0, err
	}
	if err := r.checkReference(ctx, "users", task.AssigneeID, domain.ErrUserNotFound); err != nil {
		return 0, err
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (title, description, priority, status, due_date, project_id, assignee_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		task.Title, task.Description, int(task.Priority), string(task.Status),
		formatTime(task.DueDate), task.ProjectID, task.AssigneeID,
	)
	if err != nil {
		return 0, translateSQLiteError(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	task.ID = id
	return id, nil
}

func (r *TaskRepository) checkReference(ctx context.Context, table string, id int64, sentinel error) error {
	var one int
	err := r.db.GetContext(ctx, &one, fmt.Sprintf("SELECT 1 FROM %s WHERE id = ?", table), id)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: id %d", sentinel, id)
	}
	return err
}

func (r *TaskRepository) GetTaskByID(ctx context.Context, id int64) (*domain.Task, error) {
	var row taskRow
	err := r.db.GetContext(ctx, &row,
		fmt.Sprintf("SELECT %s FROM tasks WHERE id = ?", taskColumns), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	task, err := mapTaskRow(row)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) GetAllTasks(ctx context.Context) ([]domain.Task, error) {
	return r.selectTasks(ctx,
		fmt.Sprintf("SELECT %s FROM tasks ORDER BY due_date ASC", taskColumns))
}

// SearchTasks matches a substring of title or description regardless of
// case. Blank queries never reach this method; the controller intercepts
// them.
func (r *TaskRepository) SearchTasks(ctx context.Context, query string) ([]domain.Task, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	return r.selectTasks(ctx,
		fmt.Sprintf(`SELECT %s FROM tasks
		 WHERE lower(title) LIKE ? OR lower(coalesce(description, '')) LIKE ?
		 ORDER BY due_date ASC`, taskColumns),
		pattern, pattern)
}

func (r *TaskRepository) GetTasksByProject(ctx context.Context, projectID int64) ([]domain.Task, error) {
	return r.selectTasks(ctx,
		fmt.Sprintf("SELECT %s FROM tasks WHERE project_id = ? ORDER BY priority ASC, due_date ASC", taskColumns),
		projectID)
}

func (r *TaskRepository) GetTasksByUser(ctx context.Context, userID int64) ([]domain.Task, error) {
	return r.selectTasks(ctx,
		fmt.Sprintf("SELECT %s FROM tasks WHERE assignee_id = ? ORDER BY due_date ASC, priority ASC", taskColumns),
		userID)
}

func (r *TaskRepository) selectTasks(ctx context.Context, query string, args ...any) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		task, err := mapTaskRow(row)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func (r *TaskRepository) UpdateTask(ctx context.Context, id int64, in domain.UpdateTaskInput) (bool, error) {
	if in.IsEmpty() {
		return false, nil
	}

	sets := make([]string, 0, 7)
	args := make([]any, 0, 8)
	if in.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *in.Title)
	}
	if in.DescriptionSet {
		sets = append(sets, "description = ?")
		args = append(args, in.Description)
	}
	if in.Priority != nil {
		sets = append(sets, "priority = ?")
		args = append(args, int(*in.Priority))
	}
	if in.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*in.Status))
	}
	if in.DueDate != nil {
		sets = append(sets, "due_date = ?")
		args = append(args, formatTime(*in.DueDate))
	}
	if in.ProjectID != nil {
		sets = append(sets, "project_id = ?")
		args = append(args, *in.ProjectID)
	}
	if in.AssigneeID != nil {
		sets = append(sets, "assignee_id = ?")
		args = append(args, *in.AssigneeID)
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE tasks SET %s WHERE id = ?", strings.Join(sets, ", "))
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

func (r *TaskRepository) DeleteTask(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return false, translateSQLiteError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func mapTaskRow(row taskRow) (domain.Task, error) {
	due, err := parseTime(row.DueDate)
	if err != nil {
		return domain.Task{}, fmt.Errorf("task %d: %w", row.ID, err)
	}

	task := domain.Task{
		ID:         row.ID,
		Title:      row.Title,
		Priority:   domain.TaskPriority(row.Priority),
		Status:     domain.TaskStatus(row.Status),
		DueDate:    due,
		ProjectID:  row.ProjectID,
		AssigneeID: row.AssigneeID,
	}
	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}
	return task, nil
}
