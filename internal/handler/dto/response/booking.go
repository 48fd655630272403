package response

import (
	"github.com/google/uuid"
)

type CreateBookingResponse struct {
	BookingID uuid.UUID `json:"booking_id"`
	Outcome   string    `json:"outcome"`
	// WaitlistPosition is present only when the outcome is "waitlist".
	WaitlistPosition int `json:"waitlist_position,omitempty"`
}

type CancellationResponse struct {
	BookingID uuid.UUID `json:"booking_id"`
	Status    string    `json:"status"`
}

type IDResponse struct {
	ID uuid.UUID `json:"id"`
}
