package router

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/autoplus/concesionaria/internal/interface/console"
)

// Option is one numbered entry of a menu.
type Option struct {
	Key     int
	Label   string
	Handler console.HandlerFunc
	Exit    bool
}

// Menu is the ordered option list shown in one state.
type Menu struct {
	Title   string
	Options []Option
}

// Lookup returns the option whose key is exactly choice.
func (m *Menu) Lookup(choice string) (Option, bool) {
	for _, o := range m.Options {
		if strconv.Itoa(o.Key) == choice {
			return o, true
		}
	}
	return Option{}, false
}

type Registry struct {
	menus       map[console.State]*Menu
	middlewares map[console.State][]console.Middleware
	global      []console.Middleware
	modules     []Module
}

func NewRegistry() *Registry {
	return &Registry{
		menus:       map[console.State]*Menu{},
		middlewares: map[console.State][]console.Middleware{},
	}
}

// Title sets the heading printed above the menu of state.
func (r *Registry) Title(state console.State, title string) {
	r.menu(state).Title = title
}

// Use adds middleware to every option of state. With no state given it
// applies to all menus.
func (r *Registry) Use(mw console.Middleware, states ...console.State) {
	if len(states) == 0 {
		r.global = append(r.global, mw)
		return
	}
	for _, s := range states {
		r.middlewares[s] = append(r.middlewares[s], mw)
	}
}

func (r *Registry) Add(mod Module) {
	r.modules = append(r.modules, mod)
}

// Handle registers an option. Registering the same key twice in one state
// panics.
func (r *Registry) Handle(state console.State, key int, label string, h console.HandlerFunc) {
	r.add(state, Option{Key: key, Label: label, Handler: h})
}

// HandleExit registers an option that skips the state's own middleware.
func (r *Registry) HandleExit(state console.State, key int, label string, h console.HandlerFunc) {
	r.add(state, Option{Key: key, Label: label, Handler: h, Exit: true})
}

func (r *Registry) add(state console.State, opt Option) {
	m := r.menu(state)
	key := opt.Key
	for _, o := range m.Options {
		if o.Key == key {
			panic(fmt.Sprintf("router: duplicate option %d in %s menu", key, state))
		}
	}
	m.Options = append(m.Options, opt)
}

// RegisterAll lets every module add its options, then wraps each handler with
// the global middleware followed by the state's own. Exit options get the
// global middleware only.
func (r *Registry) RegisterAll() {
	for _, m := range r.modules {
		m.Register(r)
	}
	for state, m := range r.menus {
		sort.Slice(m.Options, func(i, j int) bool { return m.Options[i].Key < m.Options[j].Key })
		chain := append(append([]console.Middleware{}, r.global...), r.middlewares[state]...)
		for i := range m.Options {
			wrap := chain
			if m.Options[i].Exit {
				wrap = r.global
			}
			h := m.Options[i].Handler
			for j := len(wrap) - 1; j >= 0; j-- {
				h = wrap[j](h)
			}
			m.Options[i].Handler = h
		}
	}
}

// Menu returns the menu for state, or nil when nothing was registered.
func (r *Registry) Menu(state console.State) *Menu {
	return r.menus[state]
}

func (r *Registry) menu(state console.State) *Menu {
	m, ok := r.menus[state]
	if !ok {
		m = &Menu{}
		r.menus[state] = m
	}
	return m
}
