package view

import (
	"time"

	"taskdesk/internal/core/domain"
)

func ToUserItems(users []domain.User) []UserItem {
	items := make([]UserItem, 0, len(users))
	for _, user := range users {
		items = append(items, ToUserItem(user))
	}
	return items
}

func ToUserItem(user domain.User) UserItem {
	return UserItem{
		ID:               user.ID,
		Username:         user.Username,
		Email:            user.Email,
		Role:             string(user.Role),
		RegistrationDate: user.RegistrationDate.Format(time.RFC3339),
	}
}

func ToProjectItems(projects []domain.Project) []ProjectItem {
	items := make([]ProjectItem, 0, len(projects))
	for _, project := range projects {
		items = append(items, ToProjectItem(project))
	}
	return items
}

func ToProjectItem(project domain.Project) ProjectItem {
	item := ProjectItem{
		ID:        project.ID,
		Name:      project.Name,
		StartDate: project.StartDate.Format(time.RFC3339),
		EndDate:   project.EndDate.Format(time.RFC3339),
		Status:    string(project.Status),
		Progress:  project.Progress(),
	}
	if project.Description != nil {
		value := *project.Description
		item.Description = &value
	}
	return item
}

func ToTaskItems(tasks []domain.Task) []TaskItem {
	items := make([]TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) TaskItem {
	item := TaskItem{
		ID:         task.ID,
		Title:      task.Title,
		Priority:   int(task.Priority),
		Status:     string(task.Status),
		DueDate:    task.DueDate.Format(time.RFC3339),
		ProjectID:  task.ProjectID,
		AssigneeID: task.AssigneeID,
		IsOverdue:  task.Overdue(time.Now()),
	}
	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}
	return item
}

func ToUserTaskItems(tasks []domain.UserTask) []UserTaskItem {
	items := make([]UserTaskItem, 0, len(tasks))
	for _, task := range tasks {
		item := ToTaskItem(task.Task)
		// The enriched listing carries the flag computed by the controller.
		item.IsOverdue = task.IsOverdue
		items = append(items, UserTaskItem{
			TaskItem:    item,
			ProjectName: task.ProjectName,
		})
	}
	return items
}
