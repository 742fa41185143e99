// Package projection derives the current task set by replaying the event log
// from the beginning. There is no cached or incremental state: every call is
// a full rebuild, so the log is always the only truth.
package projection

import (
	"context"

	"taskledger/internal/eventlog"
	"taskledger/internal/models"
)

// Build folds raw log lines, oldest first, into the current task set keyed by
// id. A create inserts or overwrites the entry for its id; a delete removes
// the entry if present and is a no-op otherwise. Lines that do not decode as
// events are skipped, which tolerates a partial trailing write from a crash
// mid-append.
func Build(lines [][]byte) map[string]models.Task {
	tasks := make(map[string]models.Task)
	for _, line := range lines {
		event, err := models.DecodeEvent(line)
		if err != nil {
			continue
		}
		switch event.Type {
		case models.TypeCreate:
			tasks[event.ID] = event.Task()
		case models.TypeDelete:
			delete(tasks, event.ID)
		}
	}
	return tasks
}

// Tasks replays the full log from the store and returns the projected tasks
// as an unordered slice. Ordering is a presentation concern.
func Tasks(ctx context.Context, store *eventlog.Store) ([]models.Task, error) {
	lines, err := store.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	projected := Build(lines)
	tasks := make([]models.Task, 0, len(projected))
	for _, task := range projected {
		tasks = append(tasks, task)
	}
	return tasks, nil
}
