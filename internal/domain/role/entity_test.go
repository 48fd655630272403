//go:build unit

package role_test

import (
	"testing"

	"volunteer-hub/internal/domain/role"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	eventID := uuid.New()

	t.Run("defaults to visible", func(t *testing.T) {
		r, err := role.NewRole(eventID, "  Reception  ", "front desk", "", "", role.ExperienceNew, false)
		require.NoError(t, err)
		assert.Equal(t, "Reception", r.Name())
		assert.True(t, r.IsVisible())
		assert.False(t, r.RequiresApproval())
	})

	t.Run("rejects blank names", func(t *testing.T) {
		_, err := role.NewRole(eventID, "   ", "", "", "", role.ExperienceNew, false)
		assert.ErrorIs(t, err, role.ErrEmptyName)
	})

	t.Run("rejects unknown experience levels", func(t *testing.T) {
		_, err := role.NewRole(eventID, "Reception", "", "", "", role.ExperienceLevel("guru"), false)
		assert.ErrorIs(t, err, role.ErrInvalidExperienceLevel)
	})
}

func TestExperienceLevelIsValid(t *testing.T) {
	for _, level := range []role.ExperienceLevel{role.ExperienceNew, role.ExperienceIntermediate, role.ExperienceAdvanced} {
		assert.True(t, level.IsValid(), string(level))
	}
	assert.False(t, role.ExperienceLevel("").IsValid())
	assert.False(t, role.ExperienceLevel("expert").IsValid())
}
