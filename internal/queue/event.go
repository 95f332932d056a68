// Package queue defines the content-change messages exchanged over the
// message broker and the consumer that turns them into an audit log.
package queue

// Actions carried by ContentChangedEvent.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionToggle = "toggle"
	ActionDelete = "delete"
)

// ContentChangedEvent is published after every successful change made
// through the admin panel.  It carries enough for an audit trail without
// reading the lists back.
type ContentChangedEvent struct {
	Entity string `json:"entity"`
	Action string `json:"action"`
	ID     string `json:"id"`
	Title  string `json:"title,omitempty"`
	Field  string `json:"field,omitempty"`
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	At     string `json:"at"`
}
