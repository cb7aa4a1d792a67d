package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the claim set of a session token.
//
// The "sub" claim carries the user id and "jti" the server-side session id;
// the token has no expiry and stays valid until the session is cleared.
type SessionClaims struct {
	jwt.RegisteredClaims

	// Role is the role the user had when the session was opened.
	Role Role `json:"role"`
}

// Session is an opened session: its id, the signed token handed to the
// view layer, and the identity it authenticates.
type Session struct {
	ID       string   `json:"-"`
	Token    string   `json:"token"`
	Identity Identity `json:"identity"`
}

// String returns the signed token.
func (s Session) String() string {
	return s.Token
}
