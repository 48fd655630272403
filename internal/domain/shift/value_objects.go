package shift

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTimeWindow = errors.New("invalid time window format")
	ErrInvalidDate       = errors.New("invalid shift date")
)

const dateLayout = "2006-01-02"

// TimeWindow is the shift's working window as volunteers see it,
// e.g. "09:00 - 13:00". The start half drives the cancellation cutoff.
type TimeWindow struct {
	raw   string
	start time.Duration // offset from midnight
	end   time.Duration
}

func NewTimeWindow(raw string) (TimeWindow, error) {
	parts := strings.Split(raw, "-")
	if len(parts) != 2 {
		return TimeWindow{}, ErrInvalidTimeWindow
	}

	start, err := parseClock(strings.TrimSpace(parts[0]))
	if err != nil {
		return TimeWindow{}, ErrInvalidTimeWindow
	}
	end, err := parseClock(strings.TrimSpace(parts[1]))
	if err != nil {
		return TimeWindow{}, ErrInvalidTimeWindow
	}
	if end <= start {
		return TimeWindow{}, ErrInvalidTimeWindow
	}

	return TimeWindow{raw: raw, start: start, end: end}, nil
}

func parseClock(s string) (time.Duration, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, err
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, ErrInvalidTimeWindow
	}
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute, nil
}

func (w TimeWindow) String() string {
	return w.raw
}

// StartOn anchors the window's start time on the given calendar date.
func (w TimeWindow) StartOn(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, date.Location()).Add(w.start)
}

// WithinCancellationCutoff reports whether the shift start is 24 hours or
// less away. The boundary counts as within: a shift starting in exactly
// 24h0m is auto-cancelled, one already started (or past) is not.
func (w TimeWindow) WithinCancellationCutoff(now, date time.Time) bool {
	untilStart := w.StartOn(date).Sub(now)
	return untilStart <= 24*time.Hour && untilStart > 0
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// slotGroupNamespace seeds the deterministic slot-group derivation so that
// shifts created independently for the same (event, date, window) land in
// the same group without coordination.
var slotGroupNamespace = uuid.MustParse("8f0c2a44-9a1d-4a0b-b5c7-3f1e6d2b9c01")

// SlotGroupID identifies the set of parallel shifts sharing one event, date
// and time window. Coordinator assignment fans out to the whole group.
func SlotGroupID(eventID uuid.UUID, date time.Time, window TimeWindow) uuid.UUID {
	key := eventID.String() + "|" + FormatDate(date) + "|" + window.String()
	return uuid.NewSHA1(slotGroupNamespace, []byte(key))
}
