// Package service defines the backend-agnostic interface for task operations.
package service

import "context"

// Service defines the interface for remote API operations.
// All HTTP calls go through this interface.
// Commands and the task store never import the HTTP client directly.
type Service interface {
	// Login submits credentials to the auth endpoint and returns the
	// issued token. No credential header is attached.
	Login(ctx context.Context, username, password string) (string, error)

	// Register submits a new-user request. Does not establish a session.
	Register(ctx context.Context, username, password string) error

	// ListTasks returns the user's tasks, optionally filtered to a single
	// date (yyyy-MM-dd). An empty date returns all tasks.
	// Results are in API order (no client-side sorting).
	ListTasks(ctx context.Context, date string) ([]Task, error)

	// GetTask fetches a single task by id.
	GetTask(ctx context.Context, id string) (Task, error)

	// CreateTask creates a task; the server assigns the id and returns
	// the authoritative record.
	CreateTask(ctx context.Context, draft TaskDraft) (Task, error)

	// UpdateTask sends a full replacement for the task with the given id
	// and returns the server's record.
	UpdateTask(ctx context.Context, id string, task Task) (Task, error)

	// DeleteTask deletes a task. Deleting an id that no longer exists
	// fails with a not-found error; the caller reports it, never retries.
	DeleteTask(ctx context.Context, id string) error
}
