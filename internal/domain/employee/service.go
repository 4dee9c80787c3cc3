package employee

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rpggio/rollcall/internal/domain/activity"
	"github.com/rpggio/rollcall/internal/metrics"
)

// Operation names reported to metrics.
const (
	OpAdd    = "add"
	OpRemove = "remove"
	OpFind   = "find"
	OpRename = "rename"
	OpList   = "list"
)

// Service handles employee operations on top of a Store.
type Service struct {
	store      *Store
	activities ActivityLogger
	metrics    Metrics
	logger     *slog.Logger
}

// NewService creates a new employee service. activities, m and logger may be nil.
func NewService(store *Store, activities ActivityLogger, m Metrics, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		store:      store,
		activities: activities,
		metrics:    m,
		logger:     logger,
	}
}

// Add inserts e at the end of the store.
func (s *Service) Add(ctx context.Context, e Employee) {
	s.store.Insert(e)
	s.logger.DebugContext(ctx, "employee added", "id", e.ID(), "kind", e.Kind())
	s.observe(OpAdd, metrics.OutcomeOK)
	s.record(ctx, e.ID(), activity.TypeEmployeeAdded, fmt.Sprintf("added %s %d", e.Kind(), e.ID()))
}

// Remove deletes every employee with the given identifier and returns how
// many were removed. A missing identifier is not an error.
func (s *Service) Remove(ctx context.Context, id int) int {
	n := s.store.Remove(id)
	s.logger.DebugContext(ctx, "employee removed", "id", id, "count", n)
	if n == 0 {
		s.observe(OpRemove, metrics.OutcomeNotFound)
		return 0
	}
	s.observe(OpRemove, metrics.OutcomeOK)
	s.record(ctx, id, activity.TypeEmployeeRemoved, fmt.Sprintf("removed %d record(s) with id %d", n, id))
	return n
}

// Find returns the first employee with the given identifier.
func (s *Service) Find(ctx context.Context, id int) (Employee, error) {
	e, ok := s.store.Find(id)
	if !ok {
		s.observe(OpFind, metrics.OutcomeNotFound)
		return nil, ErrEmployeeNotFound
	}
	s.observe(OpFind, metrics.OutcomeOK)
	return e, nil
}

// Rename changes the name of the first employee with the given identifier.
func (s *Service) Rename(ctx context.Context, id int, name string) error {
	if err := s.store.Rename(id, name); err != nil {
		s.observe(OpRename, metrics.OutcomeNotFound)
		return err
	}
	s.logger.DebugContext(ctx, "employee renamed", "id", id)
	s.observe(OpRename, metrics.OutcomeOK)
	s.record(ctx, id, activity.TypeEmployeeRenamed, fmt.Sprintf("renamed %d to %q", id, name))
	return nil
}

// List returns every employee rendered, in insertion order.
func (s *Service) List(ctx context.Context) []string {
	s.observe(OpList, metrics.OutcomeOK)
	return s.store.Render()
}

func (s *Service) observe(operation, outcome string) {
	if s.metrics == nil {
		return
	}
	s.metrics.ObserveOperation(operation, outcome)
	s.metrics.SetEmployees(s.store.Len())
}

func (s *Service) record(ctx context.Context, id int, typ activity.ActivityType, summary string) {
	if s.activities == nil {
		return
	}
	err := s.activities.LogActivity(ctx, &activity.ActivityEntry{
		EmployeeID:   id,
		ActivityType: typ,
		Summary:      summary,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "failed to journal activity", "type", typ, "id", id, "error", err)
	}
}
