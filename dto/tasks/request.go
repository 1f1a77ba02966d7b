package tasks

import "strings"

type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	DueDate     *string `json:"dueDate"`
	Category    string  `json:"category"`
	Priority    string  `json:"priority"`
}

func (r *CreateTaskRequest) Validate() map[string]string {
	errors := make(map[string]string)
	if strings.TrimSpace(r.Title) == "" {
		errors["title"] = "title is required"
	}
	return errors
}

type ToggleTaskRequest struct {
	Completed bool `json:"completed"`
}
