package support

import (
	"hotel-booking/internal/domain/user"

	"github.com/google/uuid"
)

// Side is the party reading a thread. All employees share one side.
type Side string

const (
	SideClient   Side = "client"
	SideEmployee Side = "employee"
)

func SideForRole(role user.Role) Side {
	if role.IsEmployee() {
		return SideEmployee
	}
	return SideClient
}

// IsForeign reports whether msg was written by the other party from side's point of view.
// It is the single authorship rule behind both marking and counting unread messages.
func IsForeign(msg Message, clientID uuid.UUID, side Side) bool {
	if side == SideClient {
		return msg.authorID != clientID
	}
	return msg.authorID == clientID
}
