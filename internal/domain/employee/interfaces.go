package employee

import (
	"context"

	"github.com/rpggio/rollcall/internal/domain/activity"
)

// ActivityLogger records employee activity in the journal.
type ActivityLogger interface {
	LogActivity(ctx context.Context, entry *activity.ActivityEntry) error
}

// Metrics observes store operations.
type Metrics interface {
	ObserveOperation(operation, outcome string)
	SetEmployees(n int)
}
