package commands

import (
	"context"
	"fmt"
	"strconv"

	"tido/internal/service"
	"tido/internal/tasks"
)

// parseTaskNumber parses the single positional task reference: a 1-based
// position within the date-filtered listing, as printed by `tido list`.
func parseTaskNumber(args []string) (int, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("task number required")
	}
	if len(args) > 1 {
		return 0, fmt.Errorf("invalid task reference: %s", args[1])
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid task number: %s", args[0])
	}
	return n, nil
}

// loadFiltered builds a task store for the filter and loads it.
func loadFiltered(ctx context.Context, svc service.Service, date string) (*tasks.Store, error) {
	store := tasks.NewStore(svc)
	if err := store.SetDateFilter(ctx, date); err != nil {
		return nil, err
	}
	return store, nil
}

// taskByNumber resolves a 1-based listing position against the loaded
// collection.
func taskByNumber(store *tasks.Store, num int) (service.Task, error) {
	items := store.Tasks()
	if num < 1 || num > len(items) {
		return service.Task{}, fmt.Errorf("task number out of range: %d", num)
	}
	return items[num-1], nil
}
