package auth

import (
	"context"
	"errors"

	"github.com/restofront/apiserver/internal/store"
	"github.com/restofront/apiserver/types"
)

// UserSource is the slice of the user store the authenticator needs.
// Implementations return store.ErrNotFound for unknown emails.
type UserSource interface {
	GetByEmail(ctx context.Context, email string) (types.User, error)
}

// Authenticator verifies credentials, issues session tokens, and resolves
// inbound tokens back to live user records.
type Authenticator struct {
	users UserSource
	codec *TokenCodec
}

func NewAuthenticator(users UserSource, codec *TokenCodec) *Authenticator {
	return &Authenticator{users: users, codec: codec}
}

// Login verifies the email/password pair and returns a signed token.
// Unknown email and wrong password are indistinguishable to the caller.
func (a *Authenticator) Login(ctx context.Context, email, password string) (string, error) {
	user, err := a.verifyCredentials(ctx, email, password)
	if err != nil {
		return "", err
	}
	return a.codec.Encode(user.Email, user.Role)
}

func (a *Authenticator) verifyCredentials(ctx context.Context, email, password string) (types.User, error) {
	user, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.User{}, ErrInvalidCredentials
		}
		return types.User{}, err
	}
	if !VerifyPassword(password, user.PasswordHash) {
		return types.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// ResolveUser decodes the token and re-fetches the subject's record from
// the store. The returned record is live: a role change or deletion after
// issuance takes effect here, without any revocation machinery. A token
// whose subject no longer exists is reported as ErrInvalidToken.
func (a *Authenticator) ResolveUser(ctx context.Context, tokenString string) (types.User, error) {
	claims, err := a.codec.Decode(tokenString)
	if err != nil {
		return types.User{}, ErrInvalidToken
	}

	user, err := a.users.GetByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.User{}, ErrInvalidToken
		}
		return types.User{}, err
	}
	return user, nil
}

// RequireRole builds a reusable gate bound to one role. Role comparison
// is exact: admin does not satisfy a staff gate.
func (a *Authenticator) RequireRole(role types.Role) Gate {
	return Gate{auth: a, role: role}
}

// Gate checks that a token's live user carries one required role.
type Gate struct {
	auth *Authenticator
	role types.Role
}

// Check resolves the token and compares the live record's role against
// the gate's role. Authentication failures propagate as ErrInvalidToken;
// an authenticated user with the wrong role gets ErrForbidden.
func (g Gate) Check(ctx context.Context, tokenString string) (types.User, error) {
	user, err := g.auth.ResolveUser(ctx, tokenString)
	if err != nil {
		return types.User{}, err
	}
	if user.Role != g.role {
		return types.User{}, ErrForbidden
	}
	return user, nil
}

// Role exposes the role this gate requires.
func (g Gate) Role() types.Role {
	return g.role
}
