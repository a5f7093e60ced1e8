package router

import "strings"

// Identify registers a name for an Action created by this router and returns
// the Action for chaining. Each name resolves to exactly one Action:
// identifying an Action again under a new name removes its previous mapping,
// and reusing a name re-points it to the new Action. A nil Action panics.
func (r *Router) Identify(name string, a *Action) *Action {
	if a == nil {
		panic("router: Identify called with nil action")
	}
	if a.name != "" && r.named[a.name] == a {
		delete(r.named, a.name)
	}
	a.name = name
	r.named[name] = a
	return a
}

// Find returns the Action registered under name.
func (r *Router) Find(name string) (*Action, bool) {
	a, ok := r.named[name]
	return a, ok
}

// To builds the URL for the named route using its first pattern.
// Replacements are ordered old/new pairs applied as literal text to the
// pattern, conventionally keyed by the placeholder tokens:
//
//	r.To("profile", "{id}", "42") // base + "/user/42" for route "user/{id}"
//
// To never fails: an unknown name is itself used as the literal route.
func (r *Router) To(name string, replacements ...string) string {
	return r.ToRoute(name, 0, replacements...)
}

// ToRoute is To with an explicit pattern index, for Actions registered with
// several routes. An out-of-range offset falls back to the first pattern.
// Like strings.NewReplacer, it panics when replacements has an odd length.
func (r *Router) ToRoute(name string, offset int, replacements ...string) string {
	route := name
	if a, ok := r.named[name]; ok {
		routes := a.Routes()
		if offset < 0 || offset >= len(routes) {
			offset = 0
		}
		route = routes[offset]
	}
	if len(replacements) > 0 {
		route = strings.NewReplacer(replacements...).Replace(route)
	}
	return r.Base() + "/" + strings.Trim(route, "/")
}
