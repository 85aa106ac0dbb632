package controller_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"taskdesk/internal/core/domain"
)

type userStoreMock struct {
	mock.Mock
}

func (m *userStoreMock) CreateUser(ctx context.Context, user *domain.User) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *userStoreMock) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)

	var user *domain.User
	if value := args.Get(0); value != nil {
		user = value.(*domain.User)
	}
	return user, args.Error(1)
}

func (m *userStoreMock) GetAllUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)

	var users []domain.User
	if value := args.Get(0); value != nil {
		users = value.([]domain.User)
	}
	return users, args.Error(1)
}

func (m *userStoreMock) UpdateUser(ctx context.Context, id int64, in domain.UpdateUserInput) (bool, error) {
	args := m.Called(ctx, id, in)
	return args.Bool(0), args.Error(1)
}

func (m *userStoreMock) DeleteUser(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type projectStoreMock struct {
	mock.Mock
}

func (m *projectStoreMock) CreateProject(ctx context.Context, project *domain.Project) (int64, error) {
	args := m.Called(ctx, project)
	return args.Get(0).(int64), args.Error(1)
}

func (m *projectStoreMock) GetProjectByID(ctx context.Context, id int64) (*domain.Project, error) {
	args := m.Called(ctx, id)

	var project *domain.Project
	if value := args.Get(0); value != nil {
		project = value.(*domain.Project)
	}
	return project, args.Error(1)
}

func (m *projectStoreMock) GetAllProjects(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)

	var projects []domain.Project
	if value := args.Get(0); value != nil {
		projects = value.([]domain.Project)
	}
	return projects, args.Error(1)
}

func (m *projectStoreMock) UpdateProject(ctx context.Context, id int64, in domain.UpdateProjectInput) (bool, error) {
	args := m.Called(ctx, id, in)
	return args.Bool(0), args.Error(1)
}

func (m *projectStoreMock) DeleteProject(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type taskStoreMock struct {
	mock.Mock
}

func (m *taskStoreMock) CreateTask(ctx context.Context, task *domain.Task) (int64, error) {
	args := m.Called(ctx, task)
	return args.Get(0).(int64), args.Error(1)
}

func (m *taskStoreMock) GetTaskByID(ctx context.Context, id int64) (*domain.Task, error) {
	args := m.Called(ctx, id)

	var task *domain.Task
	if value := args.Get(0); value != nil {
		task = value.(*domain.Task)
	}
	return task, args.Error(1)
}

func (m *taskStoreMock) GetAllTasks(ctx context.Context) ([]domain.Task, error) {
	args := m.Called(ctx)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskStoreMock) UpdateTask(ctx context.Context, id int64, in domain.UpdateTaskInput) (bool, error) {
	args := m.Called(ctx, id, in)
	return args.Bool(0), args.Error(1)
}

func (m *taskStoreMock) DeleteTask(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *taskStoreMock) SearchTasks(ctx context.Context, query string) ([]domain.Task, error) {
	args := m.Called(ctx, query)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskStoreMock) GetTasksByProject(ctx context.Context, projectID int64) ([]domain.Task, error) {
	args := m.Called(ctx, projectID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskStoreMock) GetTasksByUser(ctx context.Context, userID int64) ([]domain.Task, error) {
	args := m.Called(ctx, userID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}
