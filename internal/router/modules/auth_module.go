package modules

import (
	"github.com/autoplus/concesionaria/internal/interface/console"
)

// AuthModule owns the signed-out menu and the exit option of both role menus.
type AuthModule struct {
	Handler *console.AuthHandler
}

func NewAuthModule(h *console.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(r console.Routes) {
	r.Handle(console.StateUnauthenticated, 1, "Registrarse", m.Handler.Register)
	r.Handle(console.StateUnauthenticated, 2, "Iniciar sesión", m.Handler.Login)
	r.Handle(console.StateUnauthenticated, 3, "Salir", m.Handler.Exit)

	r.HandleExit(console.StateUser, 3, "Salir", m.Handler.Logout)
	r.HandleExit(console.StateAdmin, 5, "Salir", m.Handler.Logout)
}
