// Package router implements a small request router: route patterns are
// registered per HTTP method, matched against a single request in
// registration order, and the first matching handler is invoked with the
// captured path parameters. It supports:
//
//   - Registration per method or for any method, multiple patterns per action
//   - {name} placeholders capturing one path segment each, passed to the
//     handler positionally
//   - A mount prefix prepended to every route before matching
//   - Method override, so PUT and DELETE can be tunneled through POST
//   - Named routes reversed back into absolute URLs
//   - Error handlers keyed by status code, with a global fallback
//
// A Router is request-scoped: build one per request, register routes, run.
//
// Example usage:
//
//	r := router.New(router.Request{Method: "GET", Path: "/users/7"})
//	r.Get("users/{id}", func(args []string) (any, error) {
//	    return "user " + args[0], nil
//	})
//	r.Error(func(e *httperrors.Error) (any, error) {
//	    return e.Message, nil
//	}, 404)
//
//	out, err := r.Run() // "user 7", nil
//
// To serve over net/http use HTTPHandler, which rebuilds the route table for
// every request:
//
//	handler := &router.HTTPHandler{Setup: func(r *router.Router) {
//	    r.Get("users/{id}", showUser)
//	}}
//	http.ListenAndServe(":8080", handler)
//
// ANY-registered actions are tried before method-specific ones. Within the
// candidate list the first action whose first matching route wins; no
// further routes are examined. A request matching nothing yields a 404
// routed through the error-handler chain (exact code, then global, then
// returned to the caller unchanged).
package router
