package shared

import (
	"time"

	"github.com/google/uuid"
)

// Snapshots are read models used inside command transactions. They carry
// only the fields command logic needs, decoupled from domain entities.

type ShiftSnapshot struct {
	ID             uuid.UUID
	EventID        uuid.UUID
	RoleID         uuid.UUID
	SlotGroupID    uuid.UUID
	Date           time.Time
	TimeWindow     string
	TotalVacancies int
	CoordinatorIDs []uuid.UUID
}

type RoleSnapshot struct {
	ID               uuid.UUID
	EventID          uuid.UUID
	Name             string
	RequiresApproval bool
	IsVisible        bool
}

type BookingSnapshot struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	ShiftID     *uuid.UUID
	EventID     uuid.UUID
	Status      string
	Attendance  string
	RequestedAt time.Time
	CancelledAt *time.Time
}

type UserSnapshot struct {
	ID       uuid.UUID
	DNI      string
	FullName string
	Email    string
	Phone    string
	Role     string
	Status   string
}

type EventSnapshot struct {
	ID        uuid.UUID
	Slug      string
	Name      string
	Location  string
	StartDate time.Time
	EndDate   time.Time
	State     string
}

type WaitlistEntry struct {
	ID       uuid.UUID
	ShiftID  uuid.UUID
	UserID   uuid.UUID
	EventID  uuid.UUID
	Position int
	JoinedAt time.Time
}

type CreateUserParams struct {
	DNI              string
	FullName         string
	Email            string
	Phone            string
	ShirtSize        string
	IsMember         bool
	AttendedPrevious bool
	IsOver18         bool
	HowTheyHeard     string
	Role             string
	PasswordHash     string
}

type CreateEventParams struct {
	Slug        string
	Name        string
	Location    string
	Country     string
	StartDate   time.Time
	EndDate     time.Time
	Description string
	State       string
}

type UpdateEventParams struct {
	Name        *string
	Location    *string
	Country     *string
	StartDate   *time.Time
	EndDate     *time.Time
	Description *string
	State       *string
}

type CreateRoleParams struct {
	EventID          uuid.UUID
	Name             string
	Description      string
	DetailedTasks    string
	YoutubeURL       string
	ExperienceLevel  string
	RequiresApproval bool
	IsVisible        bool
}

type UpdateRoleParams struct {
	Name             *string
	Description      *string
	DetailedTasks    *string
	YoutubeURL       *string
	ExperienceLevel  *string
	RequiresApproval *bool
	IsVisible        *bool
}
