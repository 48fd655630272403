package user

type Role string

const (
	RoleVolunteer   Role = "volunteer"
	RoleCoordinator Role = "coordinator"
	RoleAdmin       Role = "admin"
	RoleSuperAdmin  Role = "superadmin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleVolunteer, RoleCoordinator, RoleAdmin, RoleSuperAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

type Status string

const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
	StatusDeleted   Status = "deleted"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusSuspended, StatusDeleted:
		return true
	default:
		return false
	}
}

type ShirtSize string

const (
	ShirtS   ShirtSize = "S"
	ShirtM   ShirtSize = "M"
	ShirtL   ShirtSize = "L"
	ShirtXL  ShirtSize = "XL"
	ShirtXXL ShirtSize = "XXL"
)

func (s ShirtSize) IsValid() bool {
	switch s {
	case ShirtS, ShirtM, ShirtL, ShirtXL, ShirtXXL:
		return true
	default:
		return false
	}
}
