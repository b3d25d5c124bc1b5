package constants

// Role values stored on users and embedded in access-token claims.
// ADMIN is the only member today; new roles are added here plus the
// relevant group slice, nothing else has to change.
const (
	RoleAdmin = "ADMIN"
)

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
