package booking

type Status string

const (
	StatusPendingApproval       Status = "pending_approval"
	StatusConfirmed             Status = "confirmed"
	StatusCancellationRequested Status = "cancellation_requested"
	StatusCancelled             Status = "cancelled"
	StatusWaitlist              Status = "waitlist"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPendingApproval, StatusConfirmed, StatusCancellationRequested, StatusCancelled, StatusWaitlist:
		return true
	default:
		return false
	}
}

// IsActive reports whether the booking still claims (or contends for) a
// slot. Cancelled is the only terminal state.
func (s Status) IsActive() bool {
	return s != StatusCancelled
}

type Attendance string

const (
	AttendancePending  Attendance = "pending"
	AttendanceAttended Attendance = "attended"
	AttendanceAbsent   Attendance = "absent"
)

func (a Attendance) IsValid() bool {
	switch a {
	case AttendancePending, AttendanceAttended, AttendanceAbsent:
		return true
	default:
		return false
	}
}
