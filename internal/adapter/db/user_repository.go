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

type UserRepository struct {
	db *sqlx.DB
}

var _ ports.UserStore = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userRow struct {
	ID               int64  `db:"id"`
	Username         string `db:"username"`
	Email            string `db:"email"`
	Role             string `db:"role"`
	RegistrationDate string `db:"registration_date"`
}

func (r *UserRepository) CreateUser(ctx context.Context, user *domain.User) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (username, email, role, registration_date) VALUES (?, ?, ?, ?)`,
		user.Username, user.Email, string(user.Role), formatTime(user.RegistrationDate),
	)
	if err != nil {
		return 0, translateSQLiteError(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	user.ID = id
	return id, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	var row userRow
	err := r.db.GetContext(ctx, &row,
		`SELECT id, username, email, role, registration_date FROM users WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	user, err := mapUserRow(row)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetAllUsers(ctx context.Context) ([]domain.User, error) {
	var rows []userRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT id, username, email, role, registration_date FROM users ORDER BY username ASC`)
	if err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		user, err := mapUserRow(row)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, id int64, in domain.UpdateUserInput) (bool, error) {
	if in.IsEmpty() {
		return false, nil
	}

	sets := make([]string, 0, 3)
	args := make([]any, 0, 4)
	if in.Username != nil {
		sets = append(sets, "username = ?")
		args = append(args, *in.Username)
	}
	if in.Email != nil {
		sets = append(sets, "email = ?")
		args = append(args, *in.Email)
	}
	if in.Role != nil {
		sets = append(sets, "role = ?")
		args = append(args, string(*in.Role))
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE users SET %s WHERE id = ?", strings.Join(sets, ", "))
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

// DeleteUser removes the row; the assignee_id foreign key cascades the
// delete to the user's tasks.
func (r *UserRepository) DeleteUser(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return false, translateSQLiteError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func mapUserRow(row userRow) (domain.User, error) {
	registered, err := parseTime(row.RegistrationDate)
	if err != nil {
		return domain.User{}, fmt.Errorf("user %d: %w", row.ID, err)
	}

	return domain.User{
		ID:               row.ID,
		Username:         row.Username,
		Email:            row.Email,
		Role:             domain.UserRole(row.Role),
		RegistrationDate: registered,
	}, nil
}
