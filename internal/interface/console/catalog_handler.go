package console

import "github.com/autoplus/concesionaria/internal/infrastructure/inventory"

type CatalogHandler struct {
	Catalog *inventory.Catalog
}

func NewCatalogHandler(c *inventory.Catalog) *CatalogHandler {
	return &CatalogHandler{Catalog: c}
}

func (h *CatalogHandler) List(c *Context) (State, error) {
	for _, line := range h.Catalog.Lines() {
		c.Term.Println(line)
	}
	return c.State, nil
}
