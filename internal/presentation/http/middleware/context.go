package middleware

// gin context keys set by AuthMiddleware
const (
	UserIDKey          = "user_id"
	UserEmailKey       = "user_email"
	UserRolesKey       = "user_roles"
	UserPermissionsKey = "user_permissions"
)
