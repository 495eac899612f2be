package console

import (
	"github.com/autoplus/concesionaria/internal/application"
)

// LoginLimiter throttles repeated sign-in attempts for one key.
type LoginLimiter interface {
	Allow(c *Context, key string) bool
}

type AuthHandler struct {
	Service *application.Service
	Limiter LoginLimiter
}

func NewAuthHandler(s *application.Service, limiter LoginLimiter) *AuthHandler {
	return &AuthHandler{Service: s, Limiter: limiter}
}

// Register prompts for name, email and password and creates a user account.
// The console stays signed out afterwards.
func (h *AuthHandler) Register(c *Context) (State, error) {
	c.Term.Println(MsgRegisterTitle)
	name, err := c.Term.Prompt(PromptName)
	if err != nil {
		return c.State, err
	}
	email, err := c.Term.Prompt(PromptEmail)
	if err != nil {
		return c.State, err
	}
	password, err := c.Term.Prompt(PromptPassword)
	if err != nil {
		return c.State, err
	}

	u, err := h.Service.Register(c.Ctx, application.RegisterInput{Name: name, Email: email, Password: password})
	if err != nil {
		return c.State, Report(c, err)
	}
	c.Term.Printf(MsgWelcome, u.Name, h.Service.Dealership)
	return StateUnauthenticated, nil
}

// Login authenticates the user and selects the menu from the session's role.
func (h *AuthHandler) Login(c *Context) (State, error) {
	c.Term.Println(MsgLoginTitle)
	email, err := c.Term.Prompt(PromptEmail)
	if err != nil {
		return c.State, err
	}
	password, err := c.Term.Prompt(PromptPassword)
	if err != nil {
		return c.State, err
	}

	if h.Limiter != nil && !h.Limiter.Allow(c, "rl:login:email:"+email) {
		c.Term.Println(MsgTooManyAttempts)
		return StateUnauthenticated, nil
	}

	sess, err := h.Service.Authenticate(c.Ctx, email, password)
	if err != nil {
		return StateUnauthenticated, Report(c, err)
	}
	c.Session = sess
	c.Term.Printf(MsgGreeting, sess.Name)
	return StateForRole(sess.Role), nil
}

// Logout discards the session and returns to the signed-out menu.
func (h *AuthHandler) Logout(c *Context) (State, error) {
	if c.Session != nil && !c.Session.IsAdministrator() {
		c.Term.Println(MsgUserFarewell)
	}
	h.Service.Logout(c.Ctx, c.Session)
	c.Session = nil
	return StateUnauthenticated, nil
}

// Exit ends the program.
func (h *AuthHandler) Exit(c *Context) (State, error) {
	c.Term.Println(MsgFarewell)
	return StateExited, nil
}
