// Package tasks maintains the in-memory task collection for the current
// date filter and reconciles it with the remote API.
package tasks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"tido/internal/service"
)

// ValidationError is a local, pre-network rejection of a draft. It is never
// sent to the server.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return e.Field + " is required"
}

// IsValidation reports whether err is a local validation failure.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// Store holds the authoritative client-side task collection, scoped to one
// date filter at a time. Mutations go through the gateway: create appends
// only the server-returned record, remove drops the entry only after the
// server confirms, and toggle applies optimistically with rollback to the
// pre-toggle snapshot on failure.
//
// Operations on different tasks never conflict. Operations on the same task
// are not coordinated: if a toggle and a delete race, the later-resolving
// response wins. CLI commands run sequentially so this stays theoretical,
// but callers driving the store concurrently should know.
type Store struct {
	mu      sync.Mutex
	svc     service.Service
	date    string // active filter, "" = all dates
	items   []service.Task
	state   LoadState
	lastErr string
}

// NewStore creates an idle store with no filter.
func NewStore(svc service.Service) *Store {
	return &Store{svc: svc, state: Idle}
}

// Date returns the active date filter ("" means all dates).
func (s *Store) Date() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.date
}

// State returns the current load state.
func (s *Store) State() LoadState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// LastError returns the most recent user-safe error message, "" if none.
func (s *Store) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Tasks returns a copy of the collection in fetch order, with locally
// created tasks at the tail.
func (s *Store) Tasks() []service.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]service.Task, len(s.items))
	copy(out, s.items)
	return out
}

// SetDateFilter changes the active filter and re-triggers loading.
func (s *Store) SetDateFilter(ctx context.Context, date string) error {
	s.mu.Lock()
	s.date = date
	s.mu.Unlock()
	return s.Reload(ctx)
}

// Reload fetches the collection for the active filter. Success replaces the
// whole collection with the server response; failure keeps the previous
// collection and records the error.
func (s *Store) Reload(ctx context.Context) error {
	s.mu.Lock()
	s.state = Loading
	date := s.date
	s.mu.Unlock()

	fetched, err := s.svc.ListTasks(ctx, date)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = LoadFailed
		s.lastErr = "failed to load tasks: " + err.Error()
		return err
	}
	s.items = fetched
	s.state = Loaded
	s.lastErr = ""
	return nil
}

// Create validates the draft locally, then asks the server to create the
// task. Nothing is added speculatively; on success the server-returned
// record (with the authoritative id) is appended.
func (s *Store) Create(ctx context.Context, draft service.TaskDraft) (service.Task, error) {
	draft.Title = strings.TrimSpace(draft.Title)
	draft.Description = strings.TrimSpace(draft.Description)
	draft.IsCompleted = false

	if draft.Title == "" {
		return service.Task{}, &ValidationError{Field: "title"}
	}
	if draft.Description == "" {
		return service.Task{}, &ValidationError{Field: "description"}
	}
	if draft.Date == "" {
		draft.Date = s.Date()
	}

	created, err := s.svc.CreateTask(ctx, draft)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		// Nothing was speculatively added; the collection is unchanged.
		s.lastErr = "failed to create task: " + err.Error()
		return service.Task{}, err
	}
	s.items = append(s.items, created)
	s.lastErr = ""
	return created, nil
}

// ToggleComplete flips the completion flag optimistically, then sends a
// full replacement to the server. On failure the collection is restored to
// exactly the snapshot taken before the flip.
func (s *Store) ToggleComplete(ctx context.Context, id string) error {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return fmt.Errorf("task not found: %s", id)
	}

	// Snapshot before mutating; rollback restores this exact state.
	snapshot := make([]service.Task, len(s.items))
	copy(snapshot, s.items)

	s.items[idx].IsCompleted = !s.items[idx].IsCompleted
	updated := s.items[idx]
	s.mu.Unlock()

	confirmed, err := s.svc.UpdateTask(ctx, id, updated)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.items = snapshot
		s.lastErr = "failed to update task status: " + err.Error()
		return err
	}
	if idx := s.indexOf(id); idx >= 0 {
		s.items[idx] = confirmed
	}
	s.lastErr = ""
	return nil
}

// Remove deletes the task on the server first and drops the local entry
// only after confirmation. On failure the entry keeps all original fields.
func (s *Store) Remove(ctx context.Context, id string) error {
	err := s.svc.DeleteTask(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.lastErr = "failed to delete task: " + err.Error()
		return err
	}
	if idx := s.indexOf(id); idx >= 0 {
		s.items = append(s.items[:idx], s.items[idx+1:]...)
	}
	s.lastErr = ""
	return nil
}

// indexOf returns the position of id in the collection, -1 if absent.
// Callers must hold mu.
func (s *Store) indexOf(id string) int {
	for i, t := range s.items {
		if t.ID == id {
			return i
		}
	}
	return -1
}
