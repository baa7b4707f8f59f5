package models

// Identity is the authenticated principal derived from a session token.
// A nil *Identity means the request is anonymous.
type Identity struct {
	UserID   int64
	Username string
}

// Credentials is a validated, trimmed username/password pair.
// The password only lives until it has been hashed or verified.
type Credentials struct {
	Username string
	Password string
}
