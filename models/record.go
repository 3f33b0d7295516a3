package models

import "time"

// RecordState is the workflow state of a record.
type RecordState string

// Allowed record states.
const (
	StateDraft RecordState = "draft"
	StateTodo  RecordState = "todo"
	StateDoing RecordState = "doing"
	StateDone  RecordState = "done"
	StateTrash RecordState = "trash"
)

// Valid reports whether s is one of the allowed record states.
func (s RecordState) Valid() bool {
	switch s {
	case StateDraft, StateTodo, StateDoing, StateDone, StateTrash:
		return true
	}
	return false
}

// Record is a unit of user data owned by exactly one account.
// OwnerID references the owning account; all mutating operations on a
// record are authorized against that reference.
type Record struct {
	ID          int64       `json:"id"`
	OwnerID     int64       `json:"owner_id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	State       RecordState `json:"state"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Record model.
func (r Record) TableName() string {
	return "records"
}
