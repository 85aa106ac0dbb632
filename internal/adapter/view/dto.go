// Package view flattens domain entities into the primitive-typed items the
// GUI displays: dates as ISO-8601 strings, derived fields (progress,
// is_overdue) included.
package view

type UserItem struct {
	ID               int64  `json:"id"`
	Username         string `json:"username"`
	Email            string `json:"email"`
	Role             string `json:"role"`
	RegistrationDate string `json:"registration_date"`
}

type ProjectItem struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Status      string  `json:"status"`
	Progress    float64 `json:"progress"`
}

type TaskItem struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Priority    int     `json:"priority"`
	Status      string  `json:"status"`
	DueDate     string  `json:"due_date"`
	ProjectID   int64   `json:"project_id"`
	AssigneeID  int64   `json:"assignee_id"`
	IsOverdue   bool    `json:"is_overdue"`
}

type UserTaskItem struct {
	TaskItem
	ProjectName string `json:"project_name"`
}
