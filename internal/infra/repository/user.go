package repository

import (
	"context"

	"volunteer-hub/internal/infra"
	"volunteer-hub/internal/infra/db"
	"volunteer-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

var _ shared.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) Create(ctx context.Context, params shared.CreateUserParams) (uuid.UUID, error) {
	id := uuid.New()
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, dni, full_name, email, phone, tshirt_size, is_member,
		                   attended_previous, is_over_18, how_they_heard, role, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		id, params.DNI, params.FullName, params.Email, params.Phone, params.ShirtSize,
		params.IsMember, params.AttendedPrevious, params.IsOver18, params.HowTheyHeard,
		params.Role, params.PasswordHash)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) UpdateRole(ctx context.Context, userID uuid.UUID, role string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users SET role = $2, updated_at = NOW() WHERE id = $1`, userID, role)
	if err != nil {
		return infra.WrapRepoErr("failed to update user role", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET last_login = NOW() WHERE id = $1`, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
