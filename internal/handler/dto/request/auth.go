package request

import (
	"volunteer-hub/internal/domain/user"
)

type LoginRequest struct {
	// Identifier accepts a DNI or an email address.
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (user.Credentials, error) {
	return user.NewCredentials(r.Identifier, r.Password)
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type RegisterRequest struct {
	DNI              string `json:"dni" binding:"required"`
	FullName         string `json:"full_name" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Phone            string `json:"phone" binding:"required"`
	Password         string `json:"password" binding:"required,min=8"`
	ShirtSize        string `json:"tshirt_size" binding:"required,oneof=S M L XL XXL"`
	IsMember         bool   `json:"is_member"`
	AttendedPrevious bool   `json:"attended_previous"`
	IsOver18         bool   `json:"is_over_18" binding:"required"`
	HowTheyHeard     string `json:"how_they_heard"`
}
