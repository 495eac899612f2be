// Package inventory holds the dealership's fixed vehicle catalog.
package inventory

import "github.com/autoplus/concesionaria/internal/domain/entity"

// Catalog is a read-only list of vehicles.
type Catalog struct {
	vehicles []entity.Vehicle
}

// NewCatalog returns the AutoPlus showroom stock.
func NewCatalog() *Catalog {
	return &Catalog{vehicles: []entity.Vehicle{
		{Brand: "Toyota", Model: "Hilux", Year: 2022, Price: 28500},
		{Brand: "Ford", Model: "Focus", Year: 2020, Price: 19500},
		{Brand: "Renault", Model: "Sandero", Year: 2023, Price: 17000},
	}}
}

// Vehicles returns a copy of the catalog.
func (c *Catalog) Vehicles() []entity.Vehicle {
	out := make([]entity.Vehicle, len(c.vehicles))
	copy(out, c.vehicles)
	return out
}

// Lines renders the catalog as "- <info>" lines.
func (c *Catalog) Lines() []string {
	out := make([]string, 0, len(c.vehicles))
	for _, v := range c.vehicles {
		out = append(out, "- "+v.Info())
	}
	return out
}
