package models

type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleHotelOwner Role = "hotel_owner"
)

// ParseRole maps a token claim to a Role. Unknown or empty claims fall back to RoleUser.
func ParseRole(raw string) Role {
	switch Role(raw) {
	case RoleAdmin, RoleHotelOwner:
		return Role(raw)
	default:
		return RoleUser
	}
}

// Caller is the verified identity every engine operation runs on behalf of.
type Caller struct {
	UserID string
	Role   Role
}

func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// CanManageHotel reports whether the caller owns the hotel or is an admin.
func (c Caller) CanManageHotel(h *Hotel) bool {
	if c.IsAdmin() {
		return true
	}
	return h != nil && h.UserID != "" && h.UserID == c.UserID
}
