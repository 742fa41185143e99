package models

import (
	"encoding/json"
	"errors"
	"time"
)

// Event types persisted in the log.
const (
	TypeCreate = "create"
	TypeDelete = "delete"
)

// ErrMalformedEvent marks a log line that does not decode into a known event shape.
// The projection skips such lines; it is never surfaced to API callers.
var ErrMalformedEvent = errors.New("malformed event")

// Event is the only persisted entity: a tagged union over create and delete.
// Create carries the full task snapshot; Delete carries the id and deletion time.
type Event struct {
	Type        string `json:"type"`
	ID          string `json:"id"`
	Name        string `json:"name,omitempty"`
	Date        string `json:"date,omitempty"`
	Time        string `json:"time,omitempty"`
	Description string `json:"description,omitempty"`
	Priority    bool   `json:"priority,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	DeletedAt   string `json:"deletedAt,omitempty"`
}

// NewCreateEvent builds a create event from a task, stamping the append time.
func NewCreateEvent(task Task) Event {
	return Event{
		Type:        TypeCreate,
		ID:          task.ID,
		Name:        task.Name,
		Date:        task.Date,
		Time:        task.Time,
		Description: task.Description,
		Priority:    task.Priority,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339Nano),
	}
}

// NewDeleteEvent builds a delete event for the given task id.
func NewDeleteEvent(id string) Event {
	return Event{
		Type:      TypeDelete,
		ID:        id,
		DeletedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}
}

// Task converts a create event back into its task snapshot.
func (e Event) Task() Task {
	return Task{
		ID:          e.ID,
		Name:        e.Name,
		Date:        e.Date,
		Time:        e.Time,
		Description: e.Description,
		Priority:    e.Priority,
		CreatedAt:   e.CreatedAt,
	}
}

// DecodeEvent parses one log line into an Event. Lines that do not parse as
// JSON, carry an unknown type tag, or lack an id are reported as
// ErrMalformedEvent so the caller can skip them.
func DecodeEvent(line []byte) (Event, error) {
	var e Event
	if err := json.Unmarshal(line, &e); err != nil {
		return Event{}, ErrMalformedEvent
	}
	if e.Type != TypeCreate && e.Type != TypeDelete {
		return Event{}, ErrMalformedEvent
	}
	if e.ID == "" {
		return Event{}, ErrMalformedEvent
	}
	return e, nil
}
