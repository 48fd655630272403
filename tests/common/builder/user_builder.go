//go:build unit || e2e

package builder

import (
	"volunteer-hub/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID       uuid.UUID
	DNI      string
	FullName string
	Email    string
	Role     string
	Status   string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:       uuid.New(),
		DNI:      "12345678",
		FullName: "Ana Garcia",
		Email:    "ana@example.org",
		Role:     "volunteer",
		Status:   "active",
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) BuildAuthorizedView() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       u.ID,
		DNI:      u.DNI,
		FullName: u.FullName,
		Email:    u.Email,
		Role:     u.Role,
		Status:   u.Status,
	}
}
