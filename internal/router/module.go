package router

import "github.com/autoplus/concesionaria/internal/interface/console"

// Module describes a feature module that can register its menu options
type Module interface {
	Register(r console.Routes)
}
