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

func TestNewTimeWindow(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		errIs error
	}{
		{name: "morning window", raw: "09:00 - 13:00"},
		{name: "no spaces", raw: "09:00-13:00"},
		{name: "evening window", raw: "17:30 - 21:00"},
		{name: "missing separator", raw: "09:00 13:00", errIs: shift.ErrInvalidTimeWindow},
		{name: "end before start", raw: "13:00 - 09:00", errIs: shift.ErrInvalidTimeWindow},
		{name: "end equals start", raw: "09:00 - 09:00", errIs: shift.ErrInvalidTimeWindow},
		{name: "hour out of range", raw: "25:00 - 26:00", errIs: shift.ErrInvalidTimeWindow},
		{name: "garbage", raw: "morning", errIs: shift.ErrInvalidTimeWindow},
		{name: "empty", raw: "", errIs: shift.ErrInvalidTimeWindow},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, err := shift.NewTimeWindow(tc.raw)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.raw, w.String())
		})
	}
}

func TestTimeWindowStartOn(t *testing.T) {
	w, err := shift.NewTimeWindow("09:30 - 13:00")
	require.NoError(t, err)

	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC), w.StartOn(date))
}

func TestWithinCancellationCutoff(t *testing.T) {
	w, err := shift.NewTimeWindow("09:00 - 13:00")
	require.NoError(t, err)
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	start := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		now    time.Time
		within bool
	}{
		{name: "well before cutoff", now: start.Add(-48 * time.Hour), within: false},
		{name: "one minute beyond cutoff", now: start.Add(-24*time.Hour - time.Minute), within: false},
		{name: "exactly 24 hours before", now: start.Add(-24 * time.Hour), within: true},
		{name: "one hour before start", now: start.Add(-time.Hour), within: true},
		{name: "at shift start", now: start, within: false},
		{name: "after shift start", now: start.Add(time.Hour), within: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.within, w.WithinCancellationCutoff(tc.now, date))
		})
	}
}

func TestSlotGroupID(t *testing.T) {
	eventID := uuid.New()
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	morning, err := shift.NewTimeWindow("09:00 - 13:00")
	require.NoError(t, err)

	t.Run("same inputs derive the same group", func(t *testing.T) {
		again, err := shift.NewTimeWindow("09:00 - 13:00")
		require.NoError(t, err)

		assert.Equal(t, shift.SlotGroupID(eventID, date, morning), shift.SlotGroupID(eventID, date, again))
	})

	t.Run("different window derives a different group", func(t *testing.T) {
		evening, err := shift.NewTimeWindow("17:00 - 21:00")
		require.NoError(t, err)

		assert.NotEqual(t, shift.SlotGroupID(eventID, date, morning), shift.SlotGroupID(eventID, date, evening))
	})

	t.Run("different date derives a different group", func(t *testing.T) {
		assert.NotEqual(t,
			shift.SlotGroupID(eventID, date, morning),
			shift.SlotGroupID(eventID, date.AddDate(0, 0, 1), morning))
	})

	t.Run("different event derives a different group", func(t *testing.T) {
		assert.NotEqual(t,
			shift.SlotGroupID(eventID, date, morning),
			shift.SlotGroupID(uuid.New(), date, morning))
	})
}

func TestParseDate(t *testing.T) {
	d, err := shift.ParseDate("2026-03-14")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-14", shift.FormatDate(d))

	_, err = shift.ParseDate("14/03/2026")
	assert.ErrorIs(t, err, shift.ErrInvalidDate)
}
