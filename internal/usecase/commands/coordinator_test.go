//go:build unit

package commands_test

import (
	"context"
	"testing"

	"volunteer-hub/internal/domain/shift"
	"volunteer-hub/internal/infra/mailer"
	"volunteer-hub/internal/usecase/commands"
	"volunteer-hub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type coordinatorFixture struct {
	*bookingFixture
	coordCmds commands.CoordinatorCommands
}

func newCoordinatorFixture(t *testing.T) *coordinatorFixture {
	t.Helper()
	base := newBookingFixture(t, 3, false)
	return &coordinatorFixture{
		bookingFixture: base,
		coordCmds: commands.NewCoordinatorCommands(
			&fakeUoW{store: base.store}, commands.NewRoleAssigner(), base.clk),
	}
}

// addGroupedShift adds a shift for a different role sharing the fixture
// shift's event, date and time window, so both land in one slot group.
func (f *coordinatorFixture) addGroupedShift(t *testing.T) *shift.Shift {
	t.Helper()
	roleID := uuid.New()
	f.store.roles[roleID] = &shared.RoleSnapshot{ID: roleID, EventID: f.eventID, Name: "Logistics", IsVisible: true}

	w, err := shift.NewTimeWindow("09:00 - 13:00")
	require.NoError(t, err)
	s, err := shift.NewShift(f.eventID, roleID, shiftDate, w, 3)
	require.NoError(t, err)
	f.store.addShift(s)
	require.Equal(t, f.shift.SlotGroupID(), s.SlotGroupID())
	return s
}

func (f *coordinatorFixture) addForeignShift(t *testing.T) *shift.Shift {
	t.Helper()
	eventID := uuid.New()
	f.store.events[eventID] = &shared.EventSnapshot{ID: eventID, Name: "Recogida de Alimentos", State: "active"}
	roleID := uuid.New()
	f.store.roles[roleID] = &shared.RoleSnapshot{ID: roleID, EventID: eventID, Name: "Driver", IsVisible: true}

	w, err := shift.NewTimeWindow("16:00 - 20:00")
	require.NoError(t, err)
	s, err := shift.NewShift(eventID, roleID, shiftDate.AddDate(0, 0, 7), w, 3)
	require.NoError(t, err)
	f.store.addShift(s)
	return s
}

func TestAssignCoordinator(t *testing.T) {
	t.Run("fans out across the slot group and promotes the user", func(t *testing.T) {
		f := newCoordinatorFixture(t)
		sibling := f.addGroupedShift(t)
		marta := f.addUser("marta")

		require.NoError(t, f.coordCmds.Assign(context.Background(), f.shift.ID(), marta))

		assert.True(t, f.shift.HasCoordinator(marta))
		assert.True(t, sibling.HasCoordinator(marta))
		assert.Equal(t, "coordinator", f.store.users[marta].Role)
		assert.Contains(t, f.store.jobTopics(), mailer.TopicCoordinatorAssigned)
	})

	t.Run("leaves admin roles untouched", func(t *testing.T) {
		f := newCoordinatorFixture(t)
		admin := f.addUser("admin")
		f.store.users[admin].Role = "admin"

		require.NoError(t, f.coordCmds.Assign(context.Background(), f.shift.ID(), admin))
		assert.Equal(t, "admin", f.store.users[admin].Role)
	})

	t.Run("rejects repeat assignments", func(t *testing.T) {
		f := newCoordinatorFixture(t)
		marta := f.addUser("marta")
		require.NoError(t, f.coordCmds.Assign(context.Background(), f.shift.ID(), marta))

		err := f.coordCmds.Assign(context.Background(), f.shift.ID(), marta)
		assert.ErrorIs(t, err, commands.ErrAlreadyCoordinator)
	})

	t.Run("rejects suspended users", func(t *testing.T) {
		f := newCoordinatorFixture(t)
		marta := f.addUser("marta")
		f.store.users[marta].Status = "suspended"

		err := f.coordCmds.Assign(context.Background(), f.shift.ID(), marta)
		assert.ErrorIs(t, err, commands.ErrUserNotOperable)
	})

	t.Run("unknown user and shift", func(t *testing.T) {
		f := newCoordinatorFixture(t)

		err := f.coordCmds.Assign(context.Background(), f.shift.ID(), uuid.New())
		assert.ErrorIs(t, err, commands.ErrUserNotFound)

		err = f.coordCmds.Assign(context.Background(), uuid.New(), f.addUser("marta"))
		assert.ErrorIs(t, err, commands.ErrShiftNotFound)
	})
}

func TestRemoveCoordinator(t *testing.T) {
	assign := func(t *testing.T, f *coordinatorFixture, shiftID, userID uuid.UUID) {
		t.Helper()
		require.NoError(t, f.coordCmds.Assign(context.Background(), shiftID, userID))
	}

	t.Run("fans out, enrolls and demotes when nothing else remains", func(t *testing.T) {
		f := newCoordinatorFixture(t)
		sibling := f.addGroupedShift(t)
		marta := f.addUser("marta")
		assign(t, f, f.shift.ID(), marta)

		require.NoError(t, f.coordCmds.Remove(context.Background(), f.shift.ID(), marta))

		assert.False(t, f.shift.HasCoordinator(marta))
		assert.False(t, sibling.HasCoordinator(marta))
		assert.Equal(t, "volunteer", f.store.users[marta].Role)
		assert.Contains(t, f.store.jobTopics(), mailer.TopicCoordinatorRemoved)

		var enrolled bool
		for _, b := range f.store.bookings {
			if b.UserID() == marta && b.IsGeneralEnrollment() {
				enrolled = true
			}
		}
		assert.True(t, enrolled, "expected a general enrollment keeping the user on the roster")
	})

	t.Run("skips the enrollment when the user still has an active booking", func(t *testing.T) {
		f := newCoordinatorFixture(t)
		marta := f.addUser("marta")
		f.book(t, marta)
		assign(t, f, f.shift.ID(), marta)

		require.NoError(t, f.coordCmds.Remove(context.Background(), f.shift.ID(), marta))

		for _, b := range f.store.bookings {
			assert.False(t, b.IsGeneralEnrollment())
		}
	})

	t.Run("keeps the coordinator role while other assignments remain", func(t *testing.T) {
		f := newCoordinatorFixture(t)
		foreign := f.addForeignShift(t)
		marta := f.addUser("marta")
		assign(t, f, f.shift.ID(), marta)
		assign(t, f, foreign.ID(), marta)

		require.NoError(t, f.coordCmds.Remove(context.Background(), f.shift.ID(), marta))
		assert.Equal(t, "coordinator", f.store.users[marta].Role)

		require.NoError(t, f.coordCmds.Remove(context.Background(), foreign.ID(), marta))
		assert.Equal(t, "volunteer", f.store.users[marta].Role)
	})

	t.Run("rejects users who do not coordinate the shift", func(t *testing.T) {
		f := newCoordinatorFixture(t)

		err := f.coordCmds.Remove(context.Background(), f.shift.ID(), f.addUser("marta"))
		assert.ErrorIs(t, err, commands.ErrNotCoordinator)
	})
}
