//go:build unit

package shift_test

import (
	"testing"
	"time"

	"volunteer-hub/internal/domain/shift"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newShift(t *testing.T, vacancies int) *shift.Shift {
	t.Helper()
	w, err := shift.NewTimeWindow("09:00 - 13:00")
	require.NoError(t, err)
	s, err := shift.NewShift(uuid.New(), uuid.New(), time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), w, vacancies)
	require.NoError(t, err)
	return s
}

func TestNewShift(t *testing.T) {
	t.Run("derives the slot group from event, date and window", func(t *testing.T) {
		eventID := uuid.New()
		date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
		w, err := shift.NewTimeWindow("09:00 - 13:00")
		require.NoError(t, err)

		s, err := shift.NewShift(eventID, uuid.New(), date, w, 5)
		require.NoError(t, err)

		assert.Equal(t, shift.SlotGroupID(eventID, date, w), s.SlotGroupID())
	})

	t.Run("rejects non-positive vacancies", func(t *testing.T) {
		w, err := shift.NewTimeWindow("09:00 - 13:00")
		require.NoError(t, err)

		_, err = shift.NewShift(uuid.New(), uuid.New(), time.Now(), w, 0)
		assert.ErrorIs(t, err, shift.ErrInvalidVacancies)
	})
}

func TestShiftOccupancy(t *testing.T) {
	s := newShift(t, 5)

	assert.Equal(t, 4, s.Occupied(3, 1))
	assert.Equal(t, 1, s.Available(4))
	assert.Equal(t, 0, s.Available(6), "overbooked shift reports zero, not negative")
	assert.False(t, s.IsFull(4))
	assert.True(t, s.IsFull(5))
	assert.True(t, s.IsFull(6))
}

func TestShiftResize(t *testing.T) {
	t.Run("grows freely", func(t *testing.T) {
		s := newShift(t, 5)
		require.NoError(t, s.Resize(8, 5))
		assert.Equal(t, 8, s.TotalVacancies())
	})

	t.Run("shrinks down to the confirmed count", func(t *testing.T) {
		s := newShift(t, 5)
		require.NoError(t, s.Resize(3, 3))
		assert.Equal(t, 3, s.TotalVacancies())
	})

	t.Run("refuses to shrink below confirmed bookings", func(t *testing.T) {
		s := newShift(t, 5)
		assert.ErrorIs(t, s.Resize(2, 3), shift.ErrCapacityReductionBelowBooked)
		assert.Equal(t, 5, s.TotalVacancies())
	})

	t.Run("refuses non-positive capacity", func(t *testing.T) {
		s := newShift(t, 5)
		assert.ErrorIs(t, s.Resize(0, 0), shift.ErrInvalidVacancies)
	})
}

func TestShiftReschedule(t *testing.T) {
	s := newShift(t, 5)
	oldGroup := s.SlotGroupID()

	newDate := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	w, err := shift.NewTimeWindow("14:00 - 18:00")
	require.NoError(t, err)

	s.Reschedule(newDate, w)

	assert.Equal(t, newDate, s.Date())
	assert.Equal(t, "14:00 - 18:00", s.Window().String())
	assert.NotEqual(t, oldGroup, s.SlotGroupID(), "moving a shift moves it to another slot group")
}

func TestShiftCoordinators(t *testing.T) {
	s := newShift(t, 5)
	alice, bob := uuid.New(), uuid.New()

	assert.True(t, s.AddCoordinator(alice))
	assert.False(t, s.AddCoordinator(alice), "adding twice is a no-op")
	assert.True(t, s.AddCoordinator(bob))
	assert.True(t, s.HasCoordinator(alice))

	assert.True(t, s.RemoveCoordinator(alice))
	assert.False(t, s.RemoveCoordinator(alice), "removing twice is a no-op")
	assert.False(t, s.HasCoordinator(alice))
	assert.True(t, s.HasCoordinator(bob))
}

func TestShiftStartsWithinCancellationCutoff(t *testing.T) {
	s := newShift(t, 5)
	start := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	assert.False(t, s.StartsWithinCancellationCutoff(start.Add(-25*time.Hour)))
	assert.True(t, s.StartsWithinCancellationCutoff(start.Add(-24*time.Hour)))
	assert.True(t, s.StartsWithinCancellationCutoff(start.Add(-time.Minute)))
	assert.False(t, s.StartsWithinCancellationCutoff(start))
}
