// Package identity issues and verifies session credentials. Two
// interchangeable backends exist: the local token backend over the
// credential store, and a hosted provider whose tokens are verified
// against its published JWKS. A deployment selects exactly one via
// configuration; they never share a request path.
package identity

import (
	"errors"
	"strings"

	"github.com/nigelkyalo/mamacare-backend/internal/dto"
)

type Service interface {
	// Register creates a credential record and returns a signed session
	// token plus the public user view.
	Register(req *dto.SignupRequest) (*dto.AuthResponse, error)

	// Authenticate checks an email/password pair. Unknown email and
	// wrong password yield the same ErrInvalidCredentials.
	Authenticate(req *dto.LoginRequest) (*dto.AuthResponse, error)

	// Verify returns the user id carried by a valid token, or "" when
	// the token is missing, malformed, expired, or badly signed.
	// Absence of identity is a normal outcome, never an error.
	Verify(token string) string
}

var (
	ErrMissingFields      = errors.New("first name, last name, email, and password are required")
	ErrEmailTaken         = errors.New("an account with that email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnsupported        = errors.New("operation is owned by the hosted identity provider")
)

// NormalizeEmail applies the canonical form used for uniqueness and
// lookup: trimmed and lower-cased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
