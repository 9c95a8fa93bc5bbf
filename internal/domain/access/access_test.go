//go:build unit

package access_test

import (
	"testing"

	"hotel-booking/internal/domain/access"
	"hotel-booking/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func principal(role user.Role) *access.Principal {
	return &access.Principal{UserID: uuid.New(), Role: role}
}

func TestAuthorizeOperation(t *testing.T) {
	tests := []struct {
		name string
		p    *access.Principal
		op   access.Operation
		want access.Decision
	}{
		{name: "client books", p: principal(user.RoleClient), op: access.OpReservationCreate, want: access.Allow},
		{name: "anonymous books", p: nil, op: access.OpReservationCreate, want: access.DenyUnauthenticated},
		{name: "manager books", p: principal(user.RoleManager), op: access.OpReservationCreate, want: access.DenyForbidden},
		{name: "admin books", p: principal(user.RoleAdmin), op: access.OpReservationCreate, want: access.DenyForbidden},
		{name: "manager lists a user's bookings", p: principal(user.RoleManager), op: access.OpReservationListUser, want: access.Allow},
		{name: "client closes a request", p: principal(user.RoleClient), op: access.OpSupportClose, want: access.DenyForbidden},
		{name: "client reads messages", p: principal(user.RoleClient), op: access.OpSupportMessagesList, want: access.Allow},
		{name: "manager reads messages", p: principal(user.RoleManager), op: access.OpSupportMessagesList, want: access.Allow},
		{name: "admin reads messages", p: principal(user.RoleAdmin), op: access.OpSupportMessagesList, want: access.DenyForbidden},
		{name: "anonymous room search", p: nil, op: access.OpRoomSearch, want: access.Allow},
		{name: "anyone authenticated sees themselves", p: principal(user.RoleAdmin), op: access.OpAuthMe, want: access.Allow},
		{name: "unknown operation", p: principal(user.RoleAdmin), op: access.Operation("does.not.exist"), want: access.DenyForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := access.AuthorizeOperation(tt.p, tt.op)
			assert.Equal(t, tt.want, got, "decision was %s", got)
		})
	}
}

func TestAuthorizeAdmin(t *testing.T) {
	assert.Equal(t, access.DenyUnauthenticated, access.AuthorizeAdmin(nil))
	assert.Equal(t, access.DenyForbidden, access.AuthorizeAdmin(principal(user.RoleManager)))
	assert.Equal(t, access.DenyForbidden, access.AuthorizeAdmin(principal(user.RoleClient)))
	assert.Equal(t, access.Allow, access.AuthorizeAdmin(principal(user.RoleAdmin)))
}

func TestDecision_Err(t *testing.T) {
	assert.NoError(t, access.Allow.Err())
	assert.ErrorIs(t, access.DenyUnauthenticated.Err(), access.ErrUnauthenticated)
	assert.ErrorIs(t, access.DenyForbidden.Err(), access.ErrForbidden)
	assert.True(t, access.Allow.Allowed())
	assert.False(t, access.DenyForbidden.Allowed())
}

func TestPoliciesDeclareValidRoles(t *testing.T) {
	for op, roles := range access.Policies {
		for _, r := range roles {
			assert.True(t, r.IsValid(), "operation %s declares invalid role %q", op, r)
		}
	}
}
