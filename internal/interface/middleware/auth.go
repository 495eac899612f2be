package middleware

import (
	"context"
	"errors"

	"github.com/autoplus/concesionaria/internal/application"
	"github.com/autoplus/concesionaria/internal/domain/entity"
	"github.com/autoplus/concesionaria/internal/interface/console"
)

// SessionVerifier validates and closes console sessions.
type SessionVerifier interface {
	VerifySession(ctx context.Context, sess *entity.Session) error
	Logout(ctx context.Context, sess *entity.Session)
}

// RequireSession validates the active session before each authenticated menu
// step. Missing or expired sessions are dropped and the console returns to
// the signed-out menu.
func RequireSession(v SessionVerifier) console.Middleware {
	return func(next console.HandlerFunc) console.HandlerFunc {
		return func(c *console.Context) (console.State, error) {
			if c.Session == nil {
				c.Term.Println(console.MsgForbidden)
				return console.StateUnauthenticated, nil
			}
			if err := v.VerifySession(c.Ctx, c.Session); err != nil {
				if errors.Is(err, application.ErrSessionExpired) {
					c.Term.Println(console.MsgSessionExpired)
				} else {
					c.Term.Println(console.MsgForbidden)
				}
				c.Logger().WithError(err).WithField("sid", c.Session.ID).Info("session rejected")
				v.Logout(c.Ctx, c.Session)
				c.Session = nil
				return console.StateUnauthenticated, nil
			}
			return next(c)
		}
	}
}

// RequireRole allows the step only when the session holds one of roles.
func RequireRole(roles ...entity.Role) console.Middleware {
	allowed := make(map[entity.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(next console.HandlerFunc) console.HandlerFunc {
		return func(c *console.Context) (console.State, error) {
			if c.Session == nil {
				c.Term.Println(console.MsgForbidden)
				return console.StateUnauthenticated, nil
			}
			if _, ok := allowed[c.Session.Role]; !ok {
				c.Term.Println(console.MsgForbidden)
				c.Logger().WithField("email", c.Session.Email).WithField("role", c.Session.Role.String()).Warn("role not allowed")
				return console.StateForRole(c.Session.Role), nil
			}
			return next(c)
		}
	}
}
