package local

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusconnect-dev/campusconnect/internal/models"
	"github.com/campusconnect-dev/campusconnect/internal/store"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleEvent(id string) *models.Event {
	return &models.Event{
		ID:          id,
		Title:       "Robotics Workshop",
		Description: "Build and program a line follower.",
		Date:        "2026-02-14",
		Time:        "14:00",
		Venue:       "Lab Complex 2",
		Organizer:   "Robotics Club",
		Category:    models.CategoryWorkshop,
		ImageURL:    "https://example.com/robots.jpg",
		Capacity:    40,
		Price:       100,
	}
}

func TestMissingPartitionReturnsDefault(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	events, err := s.GetEvents(ctx)
	require.NoError(t, err)
	assert.Empty(t, events)

	users, err := s.GetUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	regs, err := s.GetRegistrations(ctx)
	require.NoError(t, err)
	assert.Empty(t, regs)
}

func TestEventRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	want := sampleEvent("evt-1")
	require.NoError(t, s.SaveEvent(ctx, want))

	got, err := s.GetEventByID(ctx, "evt-1")
	require.NoError(t, err)
	assert.Equal(t, *want, *got)
}

func TestGetEventByIDNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetEventByID(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSaveEventReplacesByID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	event := sampleEvent("evt-1")
	require.NoError(t, s.SaveEvent(ctx, event))

	event.Title = "Advanced Robotics Workshop"
	event.Capacity = 25
	require.NoError(t, s.SaveEvent(ctx, event))

	events, err := s.GetEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Advanced Robotics Workshop", events[0].Title)
	assert.Equal(t, 25, events[0].Capacity)
}

func TestCorruptSnapshotFailsWithParseError(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.db.Exec(`INSERT INTO snapshots (key, data) VALUES ('events', 'not json at all')`)
	require.NoError(t, err)

	_, err = s.GetEvents(ctx)
	require.Error(t, err)

	var parseErr *store.ParseError
	assert.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "events", parseErr.Key)
}

func TestSaveUserUpsertsByIDOrEmail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	original := &models.User{ID: "u1", Name: "Asha", Email: "asha@college.edu", Role: models.RoleStudent}
	require.NoError(t, s.SaveUser(ctx, original))

	// Same email, different id: replaces rather than duplicating.
	replacement := &models.User{ID: "u2", Name: "Asha K", Email: "asha@college.edu", Role: models.RoleStudent}
	require.NoError(t, s.SaveUser(ctx, replacement))

	users, err := s.GetUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "u2", users[0].ID)
	assert.Equal(t, "Asha K", users[0].Name)
}

func TestFindUserByEmailIsCaseSensitive(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveUser(ctx, &models.User{ID: "u1", Name: "Asha", Email: "Asha@college.edu"}))

	found, err := s.FindUserByEmail(ctx, "Asha@college.edu")
	require.NoError(t, err)
	require.NotNil(t, found)

	// A missing user is a normal outcome, not an error.
	missing, err := s.FindUserByEmail(ctx, "asha@college.edu")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDeleteEventCascadesRegistrations(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveEvent(ctx, sampleEvent("evt-1")))
	require.NoError(t, s.SaveEvent(ctx, sampleEvent("evt-2")))

	_, err := s.InsertRegistration(ctx, "u1", "evt-1")
	require.NoError(t, err)
	_, err = s.InsertRegistration(ctx, "u2", "evt-1")
	require.NoError(t, err)
	_, err = s.InsertRegistration(ctx, "u1", "evt-2")
	require.NoError(t, err)

	require.NoError(t, s.DeleteEvent(ctx, "evt-1"))

	_, err = s.GetEventByID(ctx, "evt-1")
	assert.ErrorIs(t, err, store.ErrNotFound)

	orphaned, err := s.RegistrationsForEvent(ctx, "evt-1")
	require.NoError(t, err)
	assert.Empty(t, orphaned)

	survivors, err := s.RegistrationsForEvent(ctx, "evt-2")
	require.NoError(t, err)
	assert.Len(t, survivors, 1)
}

func TestDeleteRegistration(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.InsertRegistration(ctx, "u1", "evt-1")
	require.NoError(t, err)

	removed, err := s.DeleteRegistration(ctx, "u1", "evt-1")
	require.NoError(t, err)
	assert.True(t, removed)

	// Deleting again is a no-op success.
	removed, err = s.DeleteRegistration(ctx, "u1", "evt-1")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestInsertRegistrationAssignsIDAndTimestamp(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	reg, err := s.InsertRegistration(ctx, "u1", "evt-1")
	require.NoError(t, err)
	assert.NotEmpty(t, reg.ID)
	assert.Equal(t, "u1", reg.UserID)
	assert.Equal(t, "evt-1", reg.EventID)
	assert.False(t, reg.RegistrationDate.IsZero())
}

func TestReplaceEventsOverwritesPartition(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveEvent(ctx, sampleEvent("old")))

	require.NoError(t, s.ReplaceEvents(ctx, []models.Event{*sampleEvent("new-1"), *sampleEvent("new-2")}))

	events, err := s.GetEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)

	_, err = s.GetEventByID(ctx, "old")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
