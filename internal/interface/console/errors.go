package console

import (
	"errors"
	"io"

	"github.com/autoplus/concesionaria/internal/application"
	repo "github.com/autoplus/concesionaria/internal/domain/repository"
	"github.com/autoplus/concesionaria/pkg/validation"
)

// Report prints the one-line message for a known failure and returns nil so
// the menu continues. End of input and store integrity faults are returned
// to the dispatcher.
func Report(c *Context, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF):
		return err
	case errors.Is(err, validation.ErrPasswordTooShort),
		errors.Is(err, validation.ErrPasswordMissingDigit),
		errors.Is(err, validation.ErrPasswordMissingLetter):
		c.Term.Println(MsgInvalidPassword)
	case errors.Is(err, application.ErrEmailTaken):
		c.Term.Println(MsgEmailTaken)
	case errors.Is(err, application.ErrInvalidCredentials):
		c.Term.Println(MsgInvalidCredentials)
	case errors.Is(err, application.ErrInvalidRole):
		c.Term.Println(MsgInvalidRole)
	case errors.Is(err, application.ErrUserNotFound):
		c.Term.Println(MsgUserNotFound)
	case errors.Is(err, application.ErrSelfDeletion):
		c.Term.Println(MsgSelfDeletion)
	case errors.Is(err, application.ErrForbidden):
		c.Term.Println(MsgForbidden)
	case errors.Is(err, application.ErrSessionExpired):
		c.Term.Println(MsgSessionExpired)
	case errors.Is(err, repo.ErrRoleNotSeeded):
		return err
	default:
		c.Logger().WithError(err).Error("menu step failed")
		c.Term.Println(MsgUnexpected)
	}
	return nil
}
