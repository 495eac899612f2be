package router

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/autoplus/concesionaria/internal/domain/entity"
	repo "github.com/autoplus/concesionaria/internal/domain/repository"
	"github.com/autoplus/concesionaria/internal/interface/console"
)

// SessionCloser discards a session that is still open when input ends.
type SessionCloser interface {
	Logout(ctx context.Context, sess *entity.Session)
}

// Dispatcher drives the menu state machine: one choice per step, starting
// signed out and ending in StateExited.
type Dispatcher struct {
	Registry *Registry
	Term     *console.Terminal
	Logger   *logrus.Logger
	Sessions SessionCloser
}

func NewDispatcher(reg *Registry, term *console.Terminal, logger *logrus.Logger) *Dispatcher {
	return &Dispatcher{Registry: reg, Term: term, Logger: logger}
}

// Run loops until the user exits or input ends. A missing seed role is a
// fatal integrity fault.
func (d *Dispatcher) Run(ctx context.Context) error {
	c := &console.Context{Ctx: ctx, Term: d.Term, State: console.StateUnauthenticated}
	for c.State != console.StateExited {
		next, err := d.Next(c)
		if err != nil {
			if errors.Is(err, io.EOF) {
				if c.Session != nil && d.Sessions != nil {
					d.Sessions.Logout(ctx, c.Session)
				}
				c.Session = nil
				d.Term.Println()
				d.Term.Println(console.MsgFarewell)
				return nil
			}
			if errors.Is(err, repo.ErrRoleNotSeeded) && d.Logger != nil {
				d.Logger.WithError(err).Fatal("store integrity fault")
			}
			return err
		}
		c.State = next
	}
	if d.Logger != nil {
		d.Logger.Info("console exited")
	}
	return nil
}

// Next prints the menu for c.State, reads one choice and runs the matching
// option. Unknown choices leave the state unchanged.
func (d *Dispatcher) Next(c *console.Context) (console.State, error) {
	menu := d.Registry.Menu(c.State)
	if menu == nil {
		return c.State, fmt.Errorf("no menu registered for state %s", c.State)
	}

	d.Term.Println()
	d.Term.Println(menu.Title)
	for _, o := range menu.Options {
		d.Term.Printf("%d. %s\n", o.Key, o.Label)
	}
	choice, err := d.Term.Prompt(console.PromptOption)
	if err != nil {
		return c.State, err
	}

	opt, ok := menu.Lookup(choice)
	if !ok {
		d.Term.Println(console.MsgInvalidOption)
		return c.State, nil
	}
	return opt.Handler(c)
}
