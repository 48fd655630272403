package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type ShiftView struct {
	ID                 uuid.UUID         `json:"id"`
	EventID            uuid.UUID         `json:"event_id"`
	RoleID             uuid.UUID         `json:"role_id"`
	RoleName           string            `json:"role_name"`
	SlotGroupID        uuid.UUID         `json:"slot_group_id"`
	Date               time.Time         `json:"date"`
	TimeWindow         string            `json:"time_window"`
	TotalVacancies     int               `json:"total_vacancies"`
	ConfirmedCount     int               `json:"confirmed_count"`
	AvailableVacancies int               `json:"available_vacancies"`
	WaitlistCount      int               `json:"waitlist_count"`
	Coordinators       []CoordinatorView `json:"coordinators"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

type CoordinatorView struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
	Phone    string    `json:"phone,omitempty"`
}

type BookingView struct {
	ID           uuid.UUID  `json:"id"`
	UserID       uuid.UUID  `json:"user_id"`
	UserFullName string     `json:"user_full_name"`
	UserPhone    string     `json:"user_phone,omitempty"`
	ShiftID      *uuid.UUID `json:"shift_id,omitempty"`
	EventID      uuid.UUID  `json:"event_id"`
	RoleName     string     `json:"role_name,omitempty"`
	Date         *time.Time `json:"date,omitempty"`
	TimeWindow   string     `json:"time_window,omitempty"`
	Status       string     `json:"status"`
	Attendance   string     `json:"attendance"`
	RequestedAt  time.Time  `json:"requested_at"`
	CancelledAt  *time.Time `json:"cancelled_at,omitempty"`
}

type WaitlistView struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	FullName string    `json:"full_name"`
	Position int       `json:"position"`
	JoinedAt time.Time `json:"joined_at"`
}

type EventView struct {
	ID          uuid.UUID `json:"id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Country     string    `json:"country"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Description string    `json:"description"`
	State       string    `json:"state"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type RoleView struct {
	ID               uuid.UUID `json:"id"`
	EventID          uuid.UUID `json:"event_id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	DetailedTasks    string    `json:"detailed_tasks"`
	YoutubeURL       string    `json:"youtube_url,omitempty"`
	ExperienceLevel  string    `json:"experience_level"`
	RequiresApproval bool      `json:"requires_approval"`
	IsVisible        bool      `json:"is_visible"`
	ShiftCount       int       `json:"shift_count"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	DNI      string    `json:"dni"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	Status   string    `json:"status"`
}

type UserProfileView struct {
	ID               uuid.UUID  `json:"id"`
	DNI              string     `json:"dni"`
	FullName         string     `json:"full_name"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone"`
	ShirtSize        string     `json:"tshirt_size"`
	IsMember         bool       `json:"is_member"`
	AttendedPrevious bool       `json:"attended_previous"`
	IsOver18         bool       `json:"is_over_18"`
	HowTheyHeard     string     `json:"how_they_heard,omitempty"`
	Role             string     `json:"role"`
	Status           string     `json:"status"`
	LastLogin        *time.Time `json:"last_login,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

type EventMetricsView struct {
	EventID              uuid.UUID `json:"event_id"`
	TotalVolunteers      int       `json:"total_volunteers"`
	TotalBookings        int       `json:"total_bookings"`
	ConfirmedBookings    int       `json:"confirmed_bookings"`
	PendingApprovals     int       `json:"pending_approvals"`
	PendingCancellations int       `json:"pending_cancellations"`
	WaitlistedCount      int       `json:"waitlisted_count"`
	TotalVacancies       int       `json:"total_vacancies"`
	FillRate             float64   `json:"fill_rate"`
	AttendedCount        int       `json:"attended_count"`
	AbsentCount          int       `json:"absent_count"`
}
