//go:build unit

package mailer_test

import (
	"encoding/json"
	"testing"

	"volunteer-hub/internal/infra/mailer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func payloadBytes(t *testing.T, p mailer.JobPayload) []byte {
	t.Helper()
	b, err := json.Marshal(p)
	require.NoError(t, err)
	return b
}

func TestRender(t *testing.T) {
	payload := mailer.JobPayload{
		Email:      "ana@example.org",
		FullName:   "Ana Garcia",
		EventName:  "Festival Solidario",
		RoleName:   "Kitchen",
		Date:       "2026-06-14",
		TimeWindow: "09:00 - 13:00",
	}

	t.Run("renders every known topic", func(t *testing.T) {
		topics := []string{
			mailer.TopicBookingConfirmed,
			mailer.TopicBookingPending,
			mailer.TopicWaitlistJoined,
			mailer.TopicWaitlistPromoted,
			mailer.TopicCancellationRequested,
			mailer.TopicCancellationApproved,
			mailer.TopicCancellationRejected,
			mailer.TopicBookingCancelled,
			mailer.TopicScheduleChanged,
			mailer.TopicCoordinatorAssigned,
			mailer.TopicCoordinatorRemoved,
			mailer.TopicAttendanceThanks,
			mailer.TopicAttendanceAbsent,
		}
		for _, topic := range topics {
			m, err := mailer.Render(topic, payloadBytes(t, payload))
			require.NoError(t, err, topic)
			assert.Equal(t, "ana@example.org", m.To)
			assert.Equal(t, "Ana Garcia", m.ToName)
			assert.NotEmpty(t, m.Subject, topic)
			assert.Contains(t, m.Body, "Ana Garcia", topic)
		}
	})

	t.Run("schedule change shows old and new slots", func(t *testing.T) {
		p := payload
		p.OldDate = "2026-06-13"
		p.OldWindow = "16:00 - 20:00"

		m, err := mailer.Render(mailer.TopicScheduleChanged, payloadBytes(t, p))
		require.NoError(t, err)
		assert.Contains(t, m.Body, "2026-06-13")
		assert.Contains(t, m.Body, "2026-06-14")
	})

	t.Run("rejection includes the coordinator reason", func(t *testing.T) {
		p := payload
		p.Reason = "shift is critical"

		m, err := mailer.Render(mailer.TopicCancellationRejected, payloadBytes(t, p))
		require.NoError(t, err)
		assert.Contains(t, m.Body, "shift is critical")
	})

	t.Run("unknown topic", func(t *testing.T) {
		_, err := mailer.Render("carrier_pigeon", payloadBytes(t, payload))
		assert.Error(t, err)
	})

	t.Run("garbage payload", func(t *testing.T) {
		_, err := mailer.Render(mailer.TopicBookingConfirmed, []byte("{"))
		assert.Error(t, err)
	})
}
