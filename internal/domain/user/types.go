package user

type Role string

const (
	RoleClient  Role = "client"
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleClient, RoleManager, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsEmployee reports whether the role answers support requests on behalf of the hotel.
func (r Role) IsEmployee() bool {
	return r == RoleManager || r == RoleAdmin
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
