package models

// Task is the derived read-model entity. It is never persisted directly;
// it exists only as the result of replaying the event log.
type Task struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Description string `json:"description"`
	Priority    bool   `json:"priority"`
	CreatedAt   string `json:"createdAt"`
}
