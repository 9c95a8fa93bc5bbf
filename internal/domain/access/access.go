package access

import (
	"errors"
	"slices"

	"hotel-booking/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("insufficient role")
)

// Principal is the authenticated identity attached to a request.
type Principal struct {
	UserID uuid.UUID
	Role   user.Role
}

type Decision int

const (
	Allow Decision = iota
	DenyUnauthenticated
	DenyForbidden
)

func (d Decision) Allowed() bool { return d == Allow }

// Err maps a deny decision to its sentinel, nil for Allow.
func (d Decision) Err() error {
	switch d {
	case DenyUnauthenticated:
		return ErrUnauthenticated
	case DenyForbidden:
		return ErrForbidden
	default:
		return nil
	}
}

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case DenyUnauthenticated:
		return "unauthenticated"
	case DenyForbidden:
		return "forbidden"
	default:
		return "unknown"
	}
}

// Authorize checks a principal against the roles an operation declares.
// An operation with no declared roles is open to everyone.
func Authorize(p *Principal, required []user.Role) Decision {
	if len(required) == 0 {
		return Allow
	}
	if p == nil {
		return DenyUnauthenticated
	}
	if !slices.Contains(required, p.Role) {
		return DenyForbidden
	}
	return Allow
}

// AuthorizeAdmin is the strict single-role gate for administrative operations.
func AuthorizeAdmin(p *Principal) Decision {
	if p == nil {
		return DenyUnauthenticated
	}
	if p.Role != user.RoleAdmin {
		return DenyForbidden
	}
	return Allow
}
