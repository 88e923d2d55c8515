// internal/gateway/sqlstore/auth.go
//
// Credential verification for the self-hosted driver.
//
// Admin accounts live in the admin_user table with bcrypt hashes.  A
// successful sign-in mints an opaque local token; there is no server-side
// token registry because the driver and its callers share one process.

package sqlstore

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/bimpartner/launchpad/internal/gateway"
)

// Session returns the current session, or nil when signed out.
func (s *Store) Session(_ context.Context) (*gateway.Session, error) {
	if s.db == nil {
		return nil, gateway.ErrNotConfigured
	}
	return s.session.Current(), nil
}

// OnSessionChange registers fn for session pushes.
func (s *Store) OnSessionChange(fn func(*gateway.Session)) (cancel func()) {
	return s.session.OnSessionChange(fn)
}

// SignIn verifies credentials against admin_user and installs a session.
// A wrong password and an unknown email produce the same error message.
func (s *Store) SignIn(ctx context.Context, email, password string) (*gateway.Session, error) {
	if s.db == nil {
		return nil, gateway.ErrNotConfigured
	}

	var hash string
	err := s.db.GetContext(ctx, &hash,
		`SELECT password_hash FROM admin_user WHERE email = ?`, email)
	if err != nil {
		return nil, &gateway.Error{Message: "invalid login credentials"}
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return nil, &gateway.Error{Message: "invalid login credentials"}
	}

	sess := &gateway.Session{Email: email, AccessToken: uuid.NewString()}
	s.session.Replace(sess)
	zap.S().Infow("sqlstore sign-in", "email", email)
	return sess, nil
}

// SignOut clears the local session.
func (s *Store) SignOut(_ context.Context) error {
	if s.db == nil {
		return gateway.ErrNotConfigured
	}
	s.session.Replace(nil)
	return nil
}
