package constants

// Session token claim keys
const (
	ClaimUUID     = "uuid"
	ClaimUsername = "username"
	ClaimRole     = "role"
)

// AccessCookie is the cookie carrying the session token when the client does
// not send an Authorization header.
const AccessCookie = "access"

// LocalsAccount is the fiber Locals key the auth middleware stores the
// decoded claims under.
const LocalsAccount = "account"
