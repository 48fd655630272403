package shift

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNoVacancies                  = errors.New("shift has no vacancies")
	ErrCapacityReductionBelowBooked = errors.New("cannot reduce vacancies below confirmed bookings")
	ErrInvalidVacancies             = errors.New("total vacancies must be positive")
)

type Shift struct {
	id             uuid.UUID
	eventID        uuid.UUID
	roleID         uuid.UUID
	slotGroupID    uuid.UUID
	date           time.Time
	window         TimeWindow
	totalVacancies int
	coordinatorIDs []uuid.UUID
	createdAt      time.Time
	updatedAt      time.Time
}

func NewShift(eventID, roleID uuid.UUID, date time.Time, window TimeWindow, totalVacancies int) (*Shift, error) {
	if totalVacancies <= 0 {
		return nil, ErrInvalidVacancies
	}
	return &Shift{
		id:             uuid.New(),
		eventID:        eventID,
		roleID:         roleID,
		slotGroupID:    SlotGroupID(eventID, date, window),
		date:           date,
		window:         window,
		totalVacancies: totalVacancies,
	}, nil
}

func ReconstructShift(
	id, eventID, roleID, slotGroupID uuid.UUID,
	date time.Time,
	window TimeWindow,
	totalVacancies int,
	coordinatorIDs []uuid.UUID,
	createdAt, updatedAt time.Time,
) *Shift {
	return &Shift{
		id:             id,
		eventID:        eventID,
		roleID:         roleID,
		slotGroupID:    slotGroupID,
		date:           date,
		window:         window,
		totalVacancies: totalVacancies,
		coordinatorIDs: coordinatorIDs,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// Occupied counts confirmed bookings plus coordinators who hold no
// confirmed booking of their own, so a coordinator never occupies two
// slots on the same shift.
func (s *Shift) Occupied(confirmedBookings int, coordinatorsWithoutBooking int) int {
	return confirmedBookings + coordinatorsWithoutBooking
}

func (s *Shift) Available(occupied int) int {
	free := s.totalVacancies - occupied
	if free < 0 {
		return 0
	}
	return free
}

func (s *Shift) IsFull(occupied int) bool {
	return occupied >= s.totalVacancies
}

// Resize changes the declared capacity. Shrinking below already-confirmed
// occupancy is rejected and leaves the shift unchanged.
func (s *Shift) Resize(totalVacancies, confirmedBookings int) error {
	if totalVacancies <= 0 {
		return ErrInvalidVacancies
	}
	if totalVacancies < confirmedBookings {
		return ErrCapacityReductionBelowBooked
	}
	s.totalVacancies = totalVacancies
	return nil
}

// Reschedule moves the shift to a new date or window, re-deriving the slot
// group alongside.
func (s *Shift) Reschedule(date time.Time, window TimeWindow) {
	s.date = date
	s.window = window
	s.slotGroupID = SlotGroupID(s.eventID, date, window)
}

func (s *Shift) HasCoordinator(userID uuid.UUID) bool {
	for _, id := range s.coordinatorIDs {
		if id == userID {
			return true
		}
	}
	return false
}

func (s *Shift) AddCoordinator(userID uuid.UUID) bool {
	if s.HasCoordinator(userID) {
		return false
	}
	s.coordinatorIDs = append(s.coordinatorIDs, userID)
	return true
}

func (s *Shift) RemoveCoordinator(userID uuid.UUID) bool {
	for i, id := range s.coordinatorIDs {
		if id == userID {
			s.coordinatorIDs = append(s.coordinatorIDs[:i], s.coordinatorIDs[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Shift) StartsWithinCancellationCutoff(now time.Time) bool {
	return s.window.WithinCancellationCutoff(now, s.date)
}

func (s *Shift) ID() uuid.UUID               { return s.id }
func (s *Shift) EventID() uuid.UUID          { return s.eventID }
func (s *Shift) RoleID() uuid.UUID           { return s.roleID }
func (s *Shift) SlotGroupID() uuid.UUID      { return s.slotGroupID }
func (s *Shift) Date() time.Time             { return s.date }
func (s *Shift) Window() TimeWindow          { return s.window }
func (s *Shift) TotalVacancies() int         { return s.totalVacancies }
func (s *Shift) CoordinatorIDs() []uuid.UUID { return s.coordinatorIDs }
func (s *Shift) CreatedAt() time.Time        { return s.createdAt }
func (s *Shift) UpdatedAt() time.Time        { return s.updatedAt }
