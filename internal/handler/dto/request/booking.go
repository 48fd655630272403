package request

type CreateBookingRequest struct {
	ShiftID string `json:"shift_id" binding:"required,uuid"`
}

type RejectCancellationRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

type AdminCancelRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

type SetAttendanceRequest struct {
	Attendance string `json:"attendance" binding:"required,oneof=attended absent"`
}
