package dto

// Messages carried in response bodies. Clients match on them.
const (
	MsgLoginSuccessful    = "Login successful"
	MsgInvalidCredentials = "Invalid credentials"
	MsgInvalidBody        = "Invalid request body"
	MsgNoToken            = "Access denied. No token provided."
	MsgInvalidToken       = "Invalid token."
	MsgDatabaseError      = "Database error"
	MsgInternalError      = "Internal server error"
)
