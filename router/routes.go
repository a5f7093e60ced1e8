package router

// Register binds one or more route patterns to handler under the given
// method token and returns the created Action. Actions are tried in
// registration order, and an Action's routes in declaration order.
//
// Register panics on an unknown method or a nil handler; both are programmer
// errors that must fail at setup time, not during dispatch.
func (r *Router) Register(method, route string, handler Handler, more ...string) *Action {
	if handler == nil {
		panic("router: Register called with nil handler")
	}
	seq, ok := r.actions[method]
	if !ok {
		panic("router: unknown method " + method)
	}
	a := &Action{
		routes:  append([]string{route}, more...),
		handler: handler,
	}
	r.actions[method] = append(seq, a)
	return a
}

// Any registers routes matched regardless of the request method.
func (r *Router) Any(route string, handler Handler, more ...string) *Action {
	return r.Register(MethodAny, route, handler, more...)
}

// Get registers routes for GET requests.
func (r *Router) Get(route string, handler Handler, more ...string) *Action {
	return r.Register(MethodGet, route, handler, more...)
}

// Post registers routes for POST requests.
func (r *Router) Post(route string, handler Handler, more ...string) *Action {
	return r.Register(MethodPost, route, handler, more...)
}

// Put registers routes for PUT requests.
func (r *Router) Put(route string, handler Handler, more ...string) *Action {
	return r.Register(MethodPut, route, handler, more...)
}

// Delete registers routes for DELETE requests.
func (r *Router) Delete(route string, handler Handler, more ...string) *Action {
	return r.Register(MethodDelete, route, handler, more...)
}
