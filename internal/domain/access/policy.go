package access

import (
	"hotel-booking/internal/domain/user"
)

type Operation string

const (
	OpReservationCreate    Operation = "reservation.create"
	OpReservationDeleteOwn Operation = "reservation.delete.own"
	OpReservationListOwn   Operation = "reservation.list.own"
	OpReservationListUser  Operation = "reservation.list.user"
	OpReservationDeleteAny Operation = "reservation.delete.any"

	OpSupportOpen           Operation = "support.open"
	OpSupportListClient     Operation = "support.list.client"
	OpSupportListManager    Operation = "support.list.manager"
	OpSupportClose          Operation = "support.close"
	OpSupportMessagesList   Operation = "support.messages.list"
	OpSupportMessagesAppend Operation = "support.messages.append"
	OpSupportMessagesRead   Operation = "support.messages.read"
	OpSupportUnreadCount    Operation = "support.messages.unread"
	OpSupportEvents         Operation = "support.events"

	OpAuthMe            Operation = "auth.me"
	OpUserSearchManager Operation = "user.search.manager"

	OpHotelGet   Operation = "hotel.get"
	OpRoomGet    Operation = "room.get"
	OpRoomSearch Operation = "room.search"
)

var (
	clientOnly       = []user.Role{user.RoleClient}
	managerOnly      = []user.Role{user.RoleManager}
	clientOrManager  = []user.Role{user.RoleClient, user.RoleManager}
	anyAuthenticated = []user.Role{user.RoleClient, user.RoleManager, user.RoleAdmin}
)

// Policies declares the roles each operation requires. Admin-only operations do not
// appear here; they go through AuthorizeAdmin.
var Policies = map[Operation][]user.Role{
	OpReservationCreate:    clientOnly,
	OpReservationDeleteOwn: clientOnly,
	OpReservationListOwn:   clientOnly,
	OpReservationListUser:  managerOnly,
	OpReservationDeleteAny: managerOnly,

	OpSupportOpen:           clientOnly,
	OpSupportListClient:     clientOnly,
	OpSupportListManager:    managerOnly,
	OpSupportClose:          managerOnly,
	OpSupportMessagesList:   clientOrManager,
	OpSupportMessagesAppend: clientOrManager,
	OpSupportMessagesRead:   clientOrManager,
	OpSupportUnreadCount:    clientOrManager,
	OpSupportEvents:         clientOrManager,

	OpAuthMe:            anyAuthenticated,
	OpUserSearchManager: managerOnly,

	OpHotelGet:   nil,
	OpRoomGet:    nil,
	OpRoomSearch: nil,
}

// RequiredRoles returns the declared roles and whether the operation is known.
func RequiredRoles(op Operation) ([]user.Role, bool) {
	roles, ok := Policies[op]
	return roles, ok
}

// AuthorizeOperation looks the operation up in Policies. Unknown operations are forbidden.
func AuthorizeOperation(p *Principal, op Operation) Decision {
	roles, ok := RequiredRoles(op)
	if !ok {
		return DenyForbidden
	}
	return Authorize(p, roles)
}
