package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	id               uuid.UUID
	dni              DNI
	fullName         string
	email            Email
	phone            string
	shirtSize        ShirtSize
	isMember         bool
	attendedPrevious bool
	isOver18         bool
	howTheyHeard     string
	role             Role
	status           Status
	passwordHash     string
	createdAt        time.Time
	updatedAt        time.Time
}

func NewUser(dni DNI, fullName string, email Email, phone string, shirtSize ShirtSize, passwordHash string) *User {
	return &User{
		id:           uuid.New(),
		dni:          dni,
		fullName:     fullName,
		email:        email,
		phone:        phone,
		shirtSize:    shirtSize,
		role:         RoleVolunteer,
		status:       StatusActive,
		passwordHash: passwordHash,
	}
}

func ReconstructUser(
	id uuid.UUID,
	dni DNI,
	fullName string,
	email Email,
	phone string,
	shirtSize ShirtSize,
	isMember, attendedPrevious, isOver18 bool,
	howTheyHeard string,
	role Role,
	status Status,
	passwordHash string,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:               id,
		dni:              dni,
		fullName:         fullName,
		email:            email,
		phone:            phone,
		shirtSize:        shirtSize,
		isMember:         isMember,
		attendedPrevious: attendedPrevious,
		isOver18:         isOver18,
		howTheyHeard:     howTheyHeard,
		role:             role,
		status:           status,
		passwordHash:     passwordHash,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (u *User) IsActive() bool {
	return u.status == StatusActive
}

func (u *User) CanOperate() bool {
	return u.role == RoleAdmin || u.role == RoleSuperAdmin || u.role == RoleCoordinator
}

func (u *User) ID() uuid.UUID          { return u.id }
func (u *User) DNI() DNI               { return u.dni }
func (u *User) FullName() string       { return u.fullName }
func (u *User) Email() Email           { return u.email }
func (u *User) Phone() string          { return u.phone }
func (u *User) ShirtSize() ShirtSize   { return u.shirtSize }
func (u *User) IsMember() bool         { return u.isMember }
func (u *User) AttendedPrevious() bool { return u.attendedPrevious }
func (u *User) IsOver18() bool         { return u.isOver18 }
func (u *User) HowTheyHeard() string   { return u.howTheyHeard }
func (u *User) Role() Role             { return u.role }
func (u *User) Status() Status         { return u.status }
func (u *User) PasswordHash() string   { return u.passwordHash }
func (u *User) CreatedAt() time.Time   { return u.createdAt }
func (u *User) UpdatedAt() time.Time   { return u.updatedAt }
