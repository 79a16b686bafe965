package auth

import "errors"

var (
	// ErrMissingCredential means no bearer token was presented at all. This
	// is a caller error, distinct from a token that fails verification.
	ErrMissingCredential = errors.New("no token provided")

	// ErrInvalidCredential covers a bad signature, a malformed payload, and
	// an expired token. The cases are deliberately not distinguishable by
	// callers.
	ErrInvalidCredential = errors.New("invalid or expired token")

	// ErrPrincipalNotFound means the token verified but its subject no
	// longer exists. The HTTP boundary reports it exactly like
	// ErrInvalidCredential so external callers cannot tell a bad token from
	// a deleted account.
	ErrPrincipalNotFound = errors.New("principal not found")

	// ErrForbidden means a valid identity with an insufficient role.
	ErrForbidden = errors.New("insufficient role")
)
