package console

import (
	"github.com/autoplus/concesionaria/internal/application"
)

type AdminHandler struct {
	Service *application.Service
}

func NewAdminHandler(s *application.Service) *AdminHandler {
	return &AdminHandler{Service: s}
}

// ListUsers prints every user with its role name.
func (h *AdminHandler) ListUsers(c *Context) (State, error) {
	users, err := h.Service.ListUsers(c.Ctx, c.Session)
	if err != nil {
		return c.State, Report(c, err)
	}
	for i := range users {
		c.Term.Println("\n" + users[i].Details())
	}
	return c.State, nil
}

// ChangeRole asks for the target email first and only prompts for the new
// role when the user exists.
func (h *AdminHandler) ChangeRole(c *Context) (State, error) {
	email, err := c.Term.Prompt(PromptUserEmail)
	if err != nil {
		return c.State, err
	}
	if _, err := h.Service.FindUser(c.Ctx, c.Session, email); err != nil {
		return c.State, Report(c, err)
	}
	role, err := c.Term.Prompt(PromptNewRole)
	if err != nil {
		return c.State, err
	}
	if err := h.Service.ChangeRole(c.Ctx, c.Session, email, role); err != nil {
		return c.State, Report(c, err)
	}
	c.Term.Println(MsgRoleChanged)
	return c.State, nil
}

func (h *AdminHandler) DeleteUser(c *Context) (State, error) {
	email, err := c.Term.Prompt(PromptDelete)
	if err != nil {
		return c.State, err
	}
	if err := h.Service.DeleteUser(c.Ctx, c.Session, email); err != nil {
		return c.State, Report(c, err)
	}
	c.Term.Println(MsgUserDeleted)
	return c.State, nil
}
