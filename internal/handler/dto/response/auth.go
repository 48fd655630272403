package response

import (
	"volunteer-hub/internal/usecase/queries"

	"github.com/google/uuid"
)

type LoginResponse struct {
	AccessToken string                      `json:"access_token"`
	User        *queries.AuthorizedUserView `json:"user"`
}

type RegisterResponse struct {
	UserID uuid.UUID `json:"user_id"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}
