package common

// Credential store keys. The layout matches the backend's mobile client so
// the same account state survives a switch between the two.
const (
	KeyToken    = "jwt_token"
	KeyRole     = "user_role"
	KeyUserData = "user_data"
)

// Roles the backend is known to assign. Anything else is treated as unknown
// and denied mutating operations on the client side.
const (
	RoleUser   = "user"
	RoleMaster = "master"
	RoleAdmin  = "admin"
)
