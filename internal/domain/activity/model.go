package activity

import "time"

// ActivityType represents the type of activity event
type ActivityType string

const (
	TypeEmployeeAdded   ActivityType = "employee_added"
	TypeEmployeeRemoved ActivityType = "employee_removed"
	TypeEmployeeRenamed ActivityType = "employee_renamed"
)

// ActivityEntry represents an event in the activity journal
type ActivityEntry struct {
	ID           int64        `json:"id"`
	SessionID    string       `json:"session_id,omitempty"`
	EmployeeID   int          `json:"employee_id"`
	ActivityType ActivityType `json:"type"`
	Summary      string       `json:"summary"`
	CreatedAt    time.Time    `json:"created_at"`
}
