package modules

import "github.com/autoplus/concesionaria/internal/interface/console"

type ProfileModule struct {
	Handler *console.ProfileHandler
}

func NewProfileModule(h *console.ProfileHandler) *ProfileModule {
	return &ProfileModule{Handler: h}
}

func (m *ProfileModule) Register(r console.Routes) {
	r.Handle(console.StateUser, 1, "Ver mis datos", m.Handler.ShowData)
}
