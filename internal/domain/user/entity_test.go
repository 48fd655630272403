//go:build unit

package user_test

import (
	"testing"

	"volunteer-hub/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	dni, err := user.NewDNI("12345678")
	require.NoError(t, err)
	email, err := user.NewEmail("ana@example.org")
	require.NoError(t, err)

	u := user.NewUser(dni, "Ana García", email, "+34600000000", user.ShirtM, "hashed")

	assert.NotEqual(t, uuid.Nil, u.ID())
	assert.Equal(t, user.RoleVolunteer, u.Role())
	assert.Equal(t, user.StatusActive, u.Status())
	assert.True(t, u.IsActive())
	assert.True(t, u.CanOperate())
}

func TestNewDNI(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		errIs error
	}{
		{name: "eight digits", raw: "12345678"},
		{name: "six digits", raw: "123456"},
		{name: "padded input is trimmed", raw: " 12345678 "},
		{name: "too short", raw: "12345", errIs: user.ErrInvalidDNI},
		{name: "too long", raw: "12345678901", errIs: user.ErrInvalidDNI},
		{name: "letters", raw: "1234567X", errIs: user.ErrInvalidDNI},
		{name: "empty", raw: "", errIs: user.ErrInvalidDNI},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := user.NewDNI(tc.raw)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewEmail(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		errIs error
	}{
		{name: "plain address", raw: "ana@example.org"},
		{name: "plus alias", raw: "ana+shift@example.org"},
		{name: "no at sign", raw: "ana.example.org", errIs: user.ErrInvalidEmail},
		{name: "no domain", raw: "ana@", errIs: user.ErrInvalidEmail},
		{name: "empty", raw: "", errIs: user.ErrInvalidEmail},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := user.NewEmail(tc.raw)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewCredentials(t *testing.T) {
	t.Run("dni identifier", func(t *testing.T) {
		c, err := user.NewCredentials("12345678", "strongpass")
		require.NoError(t, err)
		assert.False(t, c.Identifier().IsEmail())
		assert.Equal(t, "12345678", c.Identifier().Value())
	})

	t.Run("email identifier", func(t *testing.T) {
		c, err := user.NewCredentials("ana@example.org", "strongpass")
		require.NoError(t, err)
		assert.True(t, c.Identifier().IsEmail())
	})

	t.Run("empty identifier", func(t *testing.T) {
		_, err := user.NewCredentials("  ", "strongpass")
		assert.ErrorIs(t, err, user.ErrEmptyIdentifier)
	})

	t.Run("weak password", func(t *testing.T) {
		_, err := user.NewCredentials("ana@example.org", "short")
		assert.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})
}

func TestNewRole(t *testing.T) {
	for _, valid := range []string{"volunteer", "coordinator", "admin", "superadmin"} {
		r, err := user.NewRole(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, r.String())
	}

	_, err := user.NewRole("manager")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}
