package modules

import "github.com/autoplus/concesionaria/internal/interface/console"

type CatalogModule struct {
	Handler *console.CatalogHandler
}

func NewCatalogModule(h *console.CatalogHandler) *CatalogModule {
	return &CatalogModule{Handler: h}
}

func (m *CatalogModule) Register(r console.Routes) {
	r.Handle(console.StateUser, 2, "Ver vehículos", m.Handler.List)
	r.Handle(console.StateAdmin, 4, "Ver vehículos", m.Handler.List)
}
