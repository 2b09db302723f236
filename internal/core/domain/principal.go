package domain

import "errors"

var ErrInvalidToken = errors.New("invalid token")
var ErrForbidden = errors.New("access forbidden")

// Principal is the verified identity carried by a session token. It is
// reconstructed entirely from the token's signed claims; no storage lookup
// is involved after verification.
type Principal struct {
	UserID int64
	Email  string
	Role   Role
}
