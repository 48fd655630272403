package role

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName              = errors.New("role name cannot be empty")
	ErrInvalidExperienceLevel = errors.New("invalid experience level")
)

type ExperienceLevel string

const (
	ExperienceNew          ExperienceLevel = "new"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
)

func (l ExperienceLevel) IsValid() bool {
	switch l {
	case ExperienceNew, ExperienceIntermediate, ExperienceAdvanced:
		return true
	default:
		return false
	}
}

// Role is an event-scoped volunteer position (reception, logistics,
// coordinator, ...). RequiresApproval gates bookings behind an admin
// decision; coordinator roles additionally trigger slot-group fan-out.
type Role struct {
	id               uuid.UUID
	eventID          uuid.UUID
	name             string
	description      string
	detailedTasks    string
	youtubeURL       string
	experienceLevel  ExperienceLevel
	requiresApproval bool
	isVisible        bool
	createdAt        time.Time
	updatedAt        time.Time
}

func NewRole(eventID uuid.UUID, name, description, detailedTasks, youtubeURL string, level ExperienceLevel, requiresApproval bool) (*Role, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if !level.IsValid() {
		return nil, ErrInvalidExperienceLevel
	}
	return &Role{
		id:               uuid.New(),
		eventID:          eventID,
		name:             name,
		description:      description,
		detailedTasks:    detailedTasks,
		youtubeURL:       youtubeURL,
		experienceLevel:  level,
		requiresApproval: requiresApproval,
		isVisible:        true,
	}, nil
}

func ReconstructRole(
	id, eventID uuid.UUID,
	name, description, detailedTasks, youtubeURL string,
	level ExperienceLevel,
	requiresApproval, isVisible bool,
	createdAt, updatedAt time.Time,
) *Role {
	return &Role{
		id:               id,
		eventID:          eventID,
		name:             name,
		description:      description,
		detailedTasks:    detailedTasks,
		youtubeURL:       youtubeURL,
		experienceLevel:  level,
		requiresApproval: requiresApproval,
		isVisible:        isVisible,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// IsCoordinator matches roles whose name marks them as shift coordination,
// in either language the events run in.
func (r *Role) IsCoordinator() bool {
	name := strings.ToLower(r.name)
	return strings.Contains(name, "coordinador") || strings.Contains(name, "coordinator")
}

func (r *Role) ID() uuid.UUID                    { return r.id }
func (r *Role) EventID() uuid.UUID               { return r.eventID }
func (r *Role) Name() string                     { return r.name }
func (r *Role) Description() string              { return r.description }
func (r *Role) DetailedTasks() string            { return r.detailedTasks }
func (r *Role) YoutubeURL() string               { return r.youtubeURL }
func (r *Role) ExperienceLevel() ExperienceLevel { return r.experienceLevel }
func (r *Role) RequiresApproval() bool           { return r.requiresApproval }
func (r *Role) IsVisible() bool                  { return r.isVisible }
func (r *Role) CreatedAt() time.Time             { return r.createdAt }
func (r *Role) UpdatedAt() time.Time             { return r.updatedAt }
