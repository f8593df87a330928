package constants

// Context keys
const (
	ContextKeyUserID = "user_id"
)

// Validation bounds
const (
	MinPasswordLength = 8
	MinUsernameLength = 3
	MaxUsernameLength = 50
)

// Showcase limits
const (
	MaxShowcaseItems = 5
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Avatar uploads
const (
	AvatarURLPrefix = "/api/uploads/avatars/"
)
