// Package service defines the backend-agnostic interface for task operations.
package service

// DateFormat is the wire format for task dates (yyyy-MM-dd).
const DateFormat = "2006-01-02"

// Task represents a single task item as the remote API models it.
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsCompleted bool   `json:"isCompleted"`
	Date        string `json:"date"` // yyyy-MM-dd
}

// TaskDraft is the client-side shape of a task before the server assigns
// an id. IsCompleted is always false on creation.
type TaskDraft struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	IsCompleted bool   `json:"isCompleted"`
	Date        string `json:"date"`
}
