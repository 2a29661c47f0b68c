package authctx

import (
	"context"

	"github.com/jrsteele09/fringe-portal/session"
)

// Authenticator exchanges credentials or a refresh token for a new session.
// Errors are returned to the caller unchanged.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*session.Session, error)
	Renew(ctx context.Context, refreshToken string) (*session.Session, error)
}
