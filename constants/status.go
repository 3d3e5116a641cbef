package constants

// User roles
const (
	RoleTenant   = 0
	RoleLandlord = 1
	RoleAdmin    = 2
)

// User status
const (
	UserStatusActive   = 1
	UserStatusInactive = 0
)

// Star rating bounds
const (
	RatingStarMin = 1
	RatingStarMax = 5
)

// Date layout used by the REST API for arrival/departure dates.
const DateLayout = "2006-01-02"
