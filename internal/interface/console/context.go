package console

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/autoplus/concesionaria/internal/domain/entity"
)

// State is a node of the menu state machine.
type State int

const (
	StateUnauthenticated State = iota
	StateUser
	StateAdmin
	StateExited
)

func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateUser:
		return "user"
	case StateAdmin:
		return "admin"
	case StateExited:
		return "exited"
	default:
		return "unknown"
	}
}

// StateForRole selects the menu for a freshly authenticated session.
func StateForRole(r entity.Role) State {
	if r == entity.RoleAdministrator {
		return StateAdmin
	}
	return StateUser
}

// Context carries one menu step: the terminal, the active session (nil when
// signed out) and the state the step started from.
type Context struct {
	Ctx     context.Context
	Term    *Terminal
	Session *entity.Session
	State   State
	Log     *logrus.Entry
}

// Logger returns the step logger, falling back to a discarding entry.
func (c *Context) Logger() *logrus.Entry {
	if c.Log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		c.Log = logrus.NewEntry(l)
	}
	return c.Log
}

// HandlerFunc runs one menu option and returns the next state.
type HandlerFunc func(c *Context) (State, error)

// Middleware wraps a HandlerFunc.
type Middleware func(next HandlerFunc) HandlerFunc

// Routes is implemented by the menu registry; modules add their options to it.
// Exit options are only wrapped by global middleware, so leaving a menu never
// depends on the session still being valid.
type Routes interface {
	Handle(state State, key int, label string, h HandlerFunc)
	HandleExit(state State, key int, label string, h HandlerFunc)
}
