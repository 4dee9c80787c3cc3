package activity_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rpggio/rollcall/internal/domain/activity"
	"github.com/rpggio/rollcall/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestActivityService_LogAndList(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ActivityRepository{}
	entry := &activity.ActivityEntry{
		EmployeeID:   1,
		ActivityType: activity.TypeEmployeeAdded,
		Summary:      "added",
	}

	repo.On("Log", ctx, entry).Return(nil)
	repo.On("List", ctx, activity.ListActivityOptions{Limit: activity.DefaultListLimit}).Return([]activity.ActivityEntry{*entry}, nil)

	svc := activity.NewService(repo, nil)
	require.NoError(t, svc.LogActivity(ctx, entry))
	require.False(t, entry.CreatedAt.IsZero())

	entries, err := svc.GetRecentActivity(ctx, activity.ListActivityOptions{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	repo.AssertExpectations(t)
}

func TestActivityService_LogUsesContextSession(t *testing.T) {
	ctx := activity.WithSession(context.Background(), "sess-1")

	repo := &mocks.ActivityRepository{}
	repo.On("Log", ctx, mock.MatchedBy(func(e *activity.ActivityEntry) bool {
		return e.SessionID == "sess-1"
	})).Return(nil)

	svc := activity.NewService(repo, nil)
	require.NoError(t, svc.LogActivity(ctx, &activity.ActivityEntry{ActivityType: activity.TypeEmployeeRemoved}))
	repo.AssertExpectations(t)
}

func TestActivityService_LogRejectsEmptyEntry(t *testing.T) {
	svc := activity.NewService(&mocks.ActivityRepository{}, nil)
	require.ErrorIs(t, svc.LogActivity(context.Background(), nil), activity.ErrInvalidInput)
	require.ErrorIs(t, svc.LogActivity(context.Background(), &activity.ActivityEntry{}), activity.ErrInvalidInput)
}

func TestActivityService_ListWrapsRepositoryError(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	repo := &mocks.ActivityRepository{}
	repo.On("List", ctx, activity.ListActivityOptions{Limit: 5}).Return(nil, boom)

	svc := activity.NewService(repo, nil)
	_, err := svc.GetRecentActivity(ctx, activity.ListActivityOptions{Limit: 5})
	require.ErrorIs(t, err, boom)
}
