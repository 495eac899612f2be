package modules

import "github.com/autoplus/concesionaria/internal/interface/console"

// AdminModule wires the user-management options of the administrator menu.
type AdminModule struct {
	Handler *console.AdminHandler
}

func NewAdminModule(h *console.AdminHandler) *AdminModule {
	return &AdminModule{Handler: h}
}

func (m *AdminModule) Register(r console.Routes) {
	r.Handle(console.StateAdmin, 1, "Ver todos los usuarios", m.Handler.ListUsers)
	r.Handle(console.StateAdmin, 2, "Cambiar rol de usuario", m.Handler.ChangeRole)
	r.Handle(console.StateAdmin, 3, "Eliminar usuario", m.Handler.DeleteUser)
}
