package auth

import "errors"

// ErrInvalidCredentials is returned on login with an unknown email or a
// wrong password. Deliberately undifferentiated so callers cannot probe
// which emails are registered.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidToken covers every token failure: bad signature, malformed
// payload, expiry, wrong signing method, missing subject, or a subject
// that no longer resolves to a user. Callers see a single 401-class error.
var ErrInvalidToken = errors.New("invalid token")

// ErrForbidden is returned when an authenticated user lacks the role a
// gate requires.
var ErrForbidden = errors.New("forbidden")
