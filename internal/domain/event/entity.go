package event

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errors.New("event name cannot be empty")
	ErrInvalidDates  = errors.New("event end date cannot precede start date")
	ErrInvalidState  = errors.New("invalid event state")
	ErrEventArchived = errors.New("event is archived")
)

type State string

const (
	StateActive   State = "active"
	StateInactive State = "inactive"
	StateArchived State = "archived"
)

func (s State) IsValid() bool {
	switch s {
	case StateActive, StateInactive, StateArchived:
		return true
	default:
		return false
	}
}

type Event struct {
	id          uuid.UUID
	slug        string
	name        string
	location    string
	country     string
	startDate   time.Time
	endDate     time.Time
	description string
	state       State
	createdAt   time.Time
	updatedAt   time.Time
}

func NewEvent(name, location, country string, startDate, endDate time.Time, description string) (*Event, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if endDate.Before(startDate) {
		return nil, ErrInvalidDates
	}
	return &Event{
		id:          uuid.New(),
		slug:        slugify(name),
		name:        name,
		location:    location,
		country:     country,
		startDate:   startDate,
		endDate:     endDate,
		description: description,
		state:       StateActive,
	}, nil
}

func ReconstructEvent(
	id uuid.UUID,
	slug, name, location, country string,
	startDate, endDate time.Time,
	description string,
	state State,
	createdAt, updatedAt time.Time,
) *Event {
	return &Event{
		id:          id,
		slug:        slug,
		name:        name,
		location:    location,
		country:     country,
		startDate:   startDate,
		endDate:     endDate,
		description: description,
		state:       state,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (e *Event) Archive() {
	e.state = StateArchived
}

func (e *Event) IsActive() bool {
	return e.state == StateActive
}

func slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash && b.Len() > 0 {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func (e *Event) ID() uuid.UUID        { return e.id }
func (e *Event) Slug() string         { return e.slug }
func (e *Event) Name() string         { return e.name }
func (e *Event) Location() string     { return e.location }
func (e *Event) Country() string      { return e.country }
func (e *Event) StartDate() time.Time { return e.startDate }
func (e *Event) EndDate() time.Time   { return e.endDate }
func (e *Event) Description() string  { return e.description }
func (e *Event) State() State         { return e.state }
func (e *Event) CreatedAt() time.Time { return e.createdAt }
func (e *Event) UpdatedAt() time.Time { return e.updatedAt }
