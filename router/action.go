package router

// Action is an immutable registration record binding one or more route
// patterns to a handler. Actions are created by Register and live exactly as
// long as the Router that owns them.
type Action struct {
	routes  []string
	handler Handler
	name    string
}

// Routes returns the route patterns in declaration order.
func (a *Action) Routes() []string {
	return a.routes
}

// Name returns the name the Action was last identified under, if any.
func (a *Action) Name() string {
	return a.name
}

// Call invokes the handler with the captured parameters. Handler failures
// are returned unchanged.
func (a *Action) Call(args []string) (any, error) {
	return a.handler(args)
}
