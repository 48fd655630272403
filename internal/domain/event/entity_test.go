//go:build unit

package event_test

import (
	"testing"
	"time"

	"volunteer-hub/internal/domain/event"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 3, 0, 0, 0, 0, time.UTC)

	t.Run("new event starts active with a derived slug", func(t *testing.T) {
		e, err := event.NewEvent("Festival Solidario 2026", "Madrid", "ES", start, end, "annual fundraiser")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, e.ID())
		assert.Equal(t, "festival-solidario-2026", e.Slug())
		assert.Equal(t, event.StateActive, e.State())
		assert.True(t, e.IsActive())
	})

	t.Run("name is trimmed", func(t *testing.T) {
		e, err := event.NewEvent("  Open Day  ", "Sevilla", "ES", start, end, "")
		require.NoError(t, err)
		assert.Equal(t, "Open Day", e.Name())
		assert.Equal(t, "open-day", e.Slug())
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		_, err := event.NewEvent("   ", "Madrid", "ES", start, end, "")
		assert.ErrorIs(t, err, event.ErrEmptyName)
	})

	t.Run("end before start is rejected", func(t *testing.T) {
		_, err := event.NewEvent("Open Day", "Madrid", "ES", end, start, "")
		assert.ErrorIs(t, err, event.ErrInvalidDates)
	})

	t.Run("single day event is allowed", func(t *testing.T) {
		_, err := event.NewEvent("Open Day", "Madrid", "ES", start, start, "")
		assert.NoError(t, err)
	})
}

func TestEventSlugs(t *testing.T) {
	start := time.Now()
	cases := []struct {
		name string
		slug string
	}{
		{"Festival Solidario", "festival-solidario"},
		{"Año Nuevo 2026", "a-o-nuevo-2026"},
		{"--weird---name--", "weird-name"},
		{"UPPER case", "upper-case"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, err := event.NewEvent(tc.name, "Madrid", "ES", start, start, "")
			require.NoError(t, err)
			assert.Equal(t, tc.slug, e.Slug())
		})
	}
}

func TestEventArchive(t *testing.T) {
	e, err := event.NewEvent("Open Day", "Madrid", "ES", time.Now(), time.Now(), "")
	require.NoError(t, err)

	e.Archive()

	assert.Equal(t, event.StateArchived, e.State())
	assert.False(t, e.IsActive())
}

func TestStateIsValid(t *testing.T) {
	assert.True(t, event.StateActive.IsValid())
	assert.True(t, event.StateInactive.IsValid())
	assert.True(t, event.StateArchived.IsValid())
	assert.False(t, event.State("open").IsValid())
}
