package ports

import (
	"context"

	"taskdesk/internal/core/domain"
)

// UserStore is the storage contract for users. GetUserByID returns
// (nil, nil) when the id is absent: not-found is not an error on reads.
type UserStore interface {
	CreateUser(ctx context.Context, user *domain.User) (int64, error)
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)
	GetAllUsers(ctx context.Context) ([]domain.User, error)
	UpdateUser(ctx context.Context, id int64, in domain.UpdateUserInput) (bool, error)
	DeleteUser(ctx context.Context, id int64) (bool, error)
}

// UserController is the surface the GUI calls for user management.
type UserController interface {
	AddUser(ctx context.Context, in domain.CreateUserInput) (*domain.User, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	GetAllUsers(ctx context.Context) ([]domain.User, error)
	UpdateUser(ctx context.Context, id int64, in domain.UpdateUserInput) (bool, error)
	DeleteUser(ctx context.Context, id int64) (bool, error)
	GetUserTasks(ctx context.Context, id int64) ([]domain.UserTask, error)
}
