package dto

type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	DueDate     *string `json:"dueDate"` // RFC 3339, null for no due date
	Priority    string  `json:"priority" binding:"omitempty,oneof=low medium high"`
	Reminder    bool    `json:"reminder"`
}

// UpdateTaskRequest is a full replacement of the task's mutable fields.
type UpdateTaskRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	DueDate     *string `json:"dueDate"` // RFC 3339, null clears the due date
	Priority    string  `json:"priority" binding:"omitempty,oneof=low medium high"`
	Reminder    bool    `json:"reminder"`
	Completed   bool    `json:"completed"`
}
