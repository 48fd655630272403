package readstore

import (
	"context"

	"volunteer-hub/internal/infra"
	"volunteer-hub/internal/infra/db"
	"volunteer-hub/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

var (
	_ queries.UserViewRepo  = (*UserReadStore)(nil)
	_ queries.UserReadStore = (*UserReadStore)(nil)
)

// FindCredentialsByIdentifier accepts either a DNI or an email, the two
// identifiers volunteers log in with.
func (r *UserReadStore) FindCredentialsByIdentifier(ctx context.Context, identifier string) (*queries.AuthorizedUserView, string, error) {
	var (
		v    queries.AuthorizedUserView
		hash string
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, dni, full_name, email, role, status, password_hash
		FROM users
		WHERE dni = $1 OR email = $1`, identifier).
		Scan(&v.ID, &v.DNI, &v.FullName, &v.Email, &v.Role, &v.Status, &hash)
	if err != nil {
		return nil, "", infra.WrapRepoErr("failed to find user credentials", err)
	}
	return &v, hash, nil
}

const profileColumns = `id, dni, full_name, email, phone, tshirt_size, is_member,
	attended_previous, is_over_18, how_they_heard, role, status, last_login, created_at`

func (r *UserReadStore) FindProfileByID(ctx context.Context, id uuid.UUID) (*queries.UserProfileView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+profileColumns+` FROM users WHERE id = $1`, id)
	v, err := scanProfile(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user profile", err)
	}
	return v, nil
}

func (r *UserReadStore) FindAuthorizedByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var v queries.AuthorizedUserView
	err := r.db.QueryRow(ctx, `
		SELECT id, dni, full_name, email, role, status FROM users WHERE id = $1`, id).
		Scan(&v.ID, &v.DNI, &v.FullName, &v.Email, &v.Role, &v.Status)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find authorized user", err)
	}
	return &v, nil
}

// FindByEvent lists users who hold a live booking or enrollment on the event.
func (r *UserReadStore) FindByEvent(ctx context.Context, eventID uuid.UUID) ([]*queries.UserProfileView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT `+qualifiedProfileColumns+`
		FROM users u
		JOIN bookings b ON b.user_id = u.id
		WHERE b.event_id = $1 AND b.status != 'cancelled'
		ORDER BY u.full_name`, eventID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query event volunteers", err)
	}
	defer rows.Close()

	var views []*queries.UserProfileView
	for rows.Next() {
		v, err := scanProfile(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan user profile", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate user profiles", err)
	}
	return views, nil
}

const qualifiedProfileColumns = `u.id, u.dni, u.full_name, u.email, u.phone, u.tshirt_size, u.is_member,
	u.attended_previous, u.is_over_18, u.how_they_heard, u.role, u.status, u.last_login, u.created_at`

func scanProfile(row rowScanner) (*queries.UserProfileView, error) {
	var v queries.UserProfileView
	if err := row.Scan(&v.ID, &v.DNI, &v.FullName, &v.Email, &v.Phone, &v.ShirtSize, &v.IsMember,
		&v.AttendedPrevious, &v.IsOver18, &v.HowTheyHeard, &v.Role, &v.Status, &v.LastLogin, &v.CreatedAt); err != nil {
		return nil, err
	}
	return &v, nil
}
