//go:build unit

package commands_test

import (
	"context"
	"testing"

	"volunteer-hub/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEventInput() commands.CreateEventInput {
	return commands.CreateEventInput{
		Name:      "Festival Solidario 2026",
		Location:  "Madrid",
		Country:   "ES",
		StartDate: "2026-06-12",
		EndDate:   "2026-06-14",
	}
}

func TestCreateEvent(t *testing.T) {
	t.Run("derives the slug from the name", func(t *testing.T) {
		store := newFakeStore()
		cmds := commands.NewEventCommands(&fakeUoW{store: store})

		id, err := cmds.CreateEvent(context.Background(), validEventInput())
		require.NoError(t, err)
		assert.Equal(t, "festival-solidario-2026", store.events[id].Slug)
		assert.Equal(t, "active", store.events[id].State)
	})

	t.Run("rejects a duplicate slug", func(t *testing.T) {
		store := newFakeStore()
		cmds := commands.NewEventCommands(&fakeUoW{store: store})
		_, err := cmds.CreateEvent(context.Background(), validEventInput())
		require.NoError(t, err)

		_, err = cmds.CreateEvent(context.Background(), validEventInput())
		assert.ErrorIs(t, err, commands.ErrDuplicateEventSlug)
	})

	t.Run("rejects invalid dates", func(t *testing.T) {
		store := newFakeStore()
		cmds := commands.NewEventCommands(&fakeUoW{store: store})

		in := validEventInput()
		in.StartDate = "2026-06-15"
		_, err := cmds.CreateEvent(context.Background(), in)
		assert.ErrorIs(t, err, commands.ErrInvalidEventInput)

		in = validEventInput()
		in.EndDate = "not-a-date"
		_, err = cmds.CreateEvent(context.Background(), in)
		assert.ErrorIs(t, err, commands.ErrInvalidEventInput)
	})
}

func TestUpdateEvent(t *testing.T) {
	store := newFakeStore()
	cmds := commands.NewEventCommands(&fakeUoW{store: store})
	id, err := cmds.CreateEvent(context.Background(), validEventInput())
	require.NoError(t, err)

	t.Run("applies partial updates", func(t *testing.T) {
		name := "Festival Solidario (edicion 2026)"
		state := "inactive"
		require.NoError(t, cmds.UpdateEvent(context.Background(), id, commands.UpdateEventInput{Name: &name, State: &state}))
		assert.Equal(t, name, store.events[id].Name)
		assert.Equal(t, "inactive", store.events[id].State)
	})

	t.Run("rejects unknown states", func(t *testing.T) {
		state := "paused"
		err := cmds.UpdateEvent(context.Background(), id, commands.UpdateEventInput{State: &state})
		assert.ErrorIs(t, err, commands.ErrInvalidEventInput)
	})

	t.Run("unknown event", func(t *testing.T) {
		name := "whatever"
		err := cmds.UpdateEvent(context.Background(), uuid.New(), commands.UpdateEventInput{Name: &name})
		assert.ErrorIs(t, err, commands.ErrEventNotFound)
	})
}

func TestArchiveEvent(t *testing.T) {
	store := newFakeStore()
	cmds := commands.NewEventCommands(&fakeUoW{store: store})
	id, err := cmds.CreateEvent(context.Background(), validEventInput())
	require.NoError(t, err)

	require.NoError(t, cmds.ArchiveEvent(context.Background(), id))
	assert.Equal(t, "archived", store.events[id].State)
}

func TestDeleteEvent(t *testing.T) {
	t.Run("deletes an event with no bookings", func(t *testing.T) {
		store := newFakeStore()
		cmds := commands.NewEventCommands(&fakeUoW{store: store})
		id, err := cmds.CreateEvent(context.Background(), validEventInput())
		require.NoError(t, err)

		require.NoError(t, cmds.DeleteEvent(context.Background(), id))
		assert.NotContains(t, store.events, id)
	})

	t.Run("refuses while bookings reference the event", func(t *testing.T) {
		f := newBookingFixture(t, 3, false)
		cmds := commands.NewEventCommands(&fakeUoW{store: f.store})
		f.book(t, f.addUser("ana"))

		err := cmds.DeleteEvent(context.Background(), f.eventID)
		assert.ErrorIs(t, err, commands.ErrEventHasLiveBooking)
	})
}

func TestRoleCommands(t *testing.T) {
	newFixture := func(t *testing.T) (*fakeStore, commands.RoleCommands, uuid.UUID) {
		t.Helper()
		store := newFakeStore()
		eventID, err := commands.NewEventCommands(&fakeUoW{store: store}).
			CreateEvent(context.Background(), validEventInput())
		require.NoError(t, err)
		return store, commands.NewRoleCommands(&fakeUoW{store: store}), eventID
	}

	t.Run("creates a visible role under an existing event", func(t *testing.T) {
		store, cmds, eventID := newFixture(t)

		id, err := cmds.CreateRole(context.Background(), commands.CreateRoleInput{
			EventID:          eventID,
			Name:             "Kitchen",
			ExperienceLevel:  "new",
			RequiresApproval: true,
		})
		require.NoError(t, err)
		assert.True(t, store.roles[id].IsVisible)
		assert.True(t, store.roles[id].RequiresApproval)
	})

	t.Run("rejects roles on unknown events", func(t *testing.T) {
		_, cmds, _ := newFixture(t)

		_, err := cmds.CreateRole(context.Background(), commands.CreateRoleInput{
			EventID: uuid.New(), Name: "Kitchen", ExperienceLevel: "new",
		})
		assert.ErrorIs(t, err, commands.ErrEventNotFound)
	})

	t.Run("rejects unknown experience levels", func(t *testing.T) {
		_, cmds, eventID := newFixture(t)

		_, err := cmds.CreateRole(context.Background(), commands.CreateRoleInput{
			EventID: eventID, Name: "Kitchen", ExperienceLevel: "guru",
		})
		assert.ErrorIs(t, err, commands.ErrInvalidRoleInput)
	})

	t.Run("updates and deletes", func(t *testing.T) {
		store, cmds, eventID := newFixture(t)
		id, err := cmds.CreateRole(context.Background(), commands.CreateRoleInput{
			EventID: eventID, Name: "Kitchen", ExperienceLevel: "new",
		})
		require.NoError(t, err)

		name := "Kitchen crew"
		require.NoError(t, cmds.UpdateRole(context.Background(), id, commands.UpdateRoleInput{Name: &name}))
		assert.Equal(t, name, store.roles[id].Name)

		require.NoError(t, cmds.DeleteRole(context.Background(), id))
		assert.NotContains(t, store.roles, id)

		err = cmds.DeleteRole(context.Background(), id)
		assert.ErrorIs(t, err, commands.ErrRoleNotFound)
	})

	t.Run("refuses to delete a role with shifts", func(t *testing.T) {
		f := newBookingFixture(t, 3, false)
		cmds := commands.NewRoleCommands(&fakeUoW{store: f.store})

		err := cmds.DeleteRole(context.Background(), f.roleID)
		assert.ErrorIs(t, err, commands.ErrRoleHasShifts)
	})
}
