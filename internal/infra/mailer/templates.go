package mailer

import (
	"encoding/json"
	"fmt"

	"volunteer-hub/internal/pkg/errs"
)

// JobPayload is the envelope every notification job carries. Topic-specific
// fields ride in the same flat structure; absent ones render as empty.
type JobPayload struct {
	Email      string `json:"email"`
	FullName   string `json:"full_name"`
	EventName  string `json:"event_name"`
	RoleName   string `json:"role_name,omitempty"`
	Date       string `json:"date,omitempty"`
	TimeWindow string `json:"time_window,omitempty"`
	Reason     string `json:"reason,omitempty"`
	OldDate    string `json:"old_date,omitempty"`
	OldWindow  string `json:"old_window,omitempty"`
}

type Message struct {
	To      string
	ToName  string
	Subject string
	Body    string
}

// Render turns a queued job into a deliverable message.
func Render(topic string, rawPayload []byte) (*Message, error) {
	var p JobPayload
	if err := json.Unmarshal(rawPayload, &p); err != nil {
		return nil, errs.Wrap(err, "failed to decode notification payload")
	}

	m := &Message{To: p.Email, ToName: p.FullName}

	switch topic {
	case TopicBookingConfirmed:
		m.Subject = "Your shift is confirmed"
		m.Body = fmt.Sprintf("Hi %s,\n\nYour shift as %s on %s (%s) at %s is confirmed.\n\nThank you for volunteering!",
			p.FullName, p.RoleName, p.Date, p.TimeWindow, p.EventName)
	case TopicBookingPending:
		m.Subject = "Your shift request is awaiting approval"
		m.Body = fmt.Sprintf("Hi %s,\n\nYour request for %s on %s (%s) at %s needs coordinator approval. We will email you once it is reviewed.",
			p.FullName, p.RoleName, p.Date, p.TimeWindow, p.EventName)
	case TopicWaitlistJoined:
		m.Subject = "You are on the waiting list"
		m.Body = fmt.Sprintf("Hi %s,\n\nThe %s shift on %s (%s) at %s is full. You are on the waiting list and will be promoted automatically when a spot opens.",
			p.FullName, p.RoleName, p.Date, p.TimeWindow, p.EventName)
	case TopicWaitlistPromoted:
		m.Subject = "A spot opened up: your shift is confirmed"
		m.Body = fmt.Sprintf("Hi %s,\n\nGood news! A spot opened on the %s shift on %s (%s) at %s and your booking is now confirmed.",
			p.FullName, p.RoleName, p.Date, p.TimeWindow, p.EventName)
	case TopicCancellationRequested:
		m.Subject = "We received your cancellation request"
		m.Body = fmt.Sprintf("Hi %s,\n\nWe received your request to cancel the %s shift on %s (%s) at %s. A coordinator will review it shortly.",
			p.FullName, p.RoleName, p.Date, p.TimeWindow, p.EventName)
	case TopicCancellationApproved:
		m.Subject = "Your shift cancellation is approved"
		m.Body = fmt.Sprintf("Hi %s,\n\nYour cancellation of the %s shift on %s (%s) at %s has been approved.",
			p.FullName, p.RoleName, p.Date, p.TimeWindow, p.EventName)
	case TopicCancellationRejected:
		m.Subject = "Your shift cancellation was declined"
		m.Body = fmt.Sprintf("Hi %s,\n\nYour cancellation request for the %s shift on %s (%s) at %s was declined. The booking remains confirmed.\n\n%s",
			p.FullName, p.RoleName, p.Date, p.TimeWindow, p.EventName, p.Reason)
	case TopicBookingCancelled:
		m.Subject = "Your shift was cancelled"
		m.Body = fmt.Sprintf("Hi %s,\n\nYour %s shift on %s (%s) at %s has been cancelled.\n\n%s",
			p.FullName, p.RoleName, p.Date, p.TimeWindow, p.EventName, p.Reason)
	case TopicScheduleChanged:
		m.Subject = "Your shift schedule changed"
		m.Body = fmt.Sprintf("Hi %s,\n\nYour %s shift at %s moved from %s (%s) to %s (%s). If the new time does not work for you, you can request a cancellation.",
			p.FullName, p.RoleName, p.EventName, p.OldDate, p.OldWindow, p.Date, p.TimeWindow)
	case TopicCoordinatorAssigned:
		m.Subject = "You are now a coordinator"
		m.Body = fmt.Sprintf("Hi %s,\n\nYou have been assigned as coordinator for %s on %s (%s) at %s.",
			p.FullName, p.RoleName, p.Date, p.TimeWindow, p.EventName)
	case TopicCoordinatorRemoved:
		m.Subject = "Coordinator assignment removed"
		m.Body = fmt.Sprintf("Hi %s,\n\nYour coordinator assignment for %s on %s (%s) at %s has been removed.",
			p.FullName, p.RoleName, p.Date, p.TimeWindow, p.EventName)
	case TopicAttendanceThanks:
		m.Subject = "Thank you for volunteering!"
		m.Body = fmt.Sprintf("Hi %s,\n\nThank you for your help at %s. We hope to see you again!",
			p.FullName, p.EventName)
	case TopicAttendanceAbsent:
		m.Subject = "We missed you"
		m.Body = fmt.Sprintf("Hi %s,\n\nYou were marked absent for your %s shift on %s at %s. If this looks wrong, please contact the organizers.",
			p.FullName, p.RoleName, p.Date, p.EventName)
	default:
		return nil, errs.New("unknown notification topic: " + topic)
	}

	return m, nil
}

const (
	TopicBookingConfirmed      = "booking_confirmed"
	TopicBookingPending        = "booking_pending"
	TopicWaitlistJoined        = "waitlist_joined"
	TopicWaitlistPromoted      = "waitlist_promoted"
	TopicCancellationRequested = "cancellation_requested"
	TopicCancellationApproved  = "cancellation_approved"
	TopicCancellationRejected  = "cancellation_rejected"
	TopicBookingCancelled      = "booking_cancelled"
	TopicScheduleChanged       = "schedule_changed"
	TopicCoordinatorAssigned   = "coordinator_assigned"
	TopicCoordinatorRemoved    = "coordinator_removed"
	TopicAttendanceThanks      = "attendance_thanks"
	TopicAttendanceAbsent      = "attendance_absent"
)
