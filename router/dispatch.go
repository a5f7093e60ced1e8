package router

import (
	"strings"

	"github.com/en9inerd/go-router/httperrors"
)

// Run determines the effective request method, walks the ANY actions
// followed by the method-specific ones in registration order, and invokes
// the handler of the first route that matches. The search stops at the first
// hit, so at most one handler runs. If nothing matches, the failure is a 404
// with message "Route not found".
//
// An *httperrors.Error (raised by the dispatch itself or returned by a
// handler) is resolved exactly once: by the handler registered for its exact
// code, else by the global handler, else it is returned unchanged. An error
// returned by the error handler itself is not re-resolved.
func (r *Router) Run() (any, error) {
	out, err := r.dispatch()
	if err == nil {
		return out, nil
	}
	he, ok := httperrors.FromError(err)
	if !ok {
		return nil, err
	}
	if handle, ok := r.errHandlers[he.Code]; ok {
		return handle(he)
	}
	if r.global != nil {
		return r.global(he)
	}
	return nil, err
}

func (r *Router) dispatch() (any, error) {
	method := r.effectiveMethod()
	candidates := make([]*Action, 0, len(r.actions[MethodAny])+len(r.actions[method]))
	candidates = append(candidates, r.actions[MethodAny]...)
	candidates = append(candidates, r.actions[method]...)

	for _, a := range candidates {
		for _, route := range a.Routes() {
			if ok, params := r.Matches(route); ok {
				return a.Call(params)
			}
		}
	}
	return nil, httperrors.NotFound("Route not found")
}

// effectiveMethod honors the override value for PUT and DELETE only; any
// other override is ignored and the raw method stands.
func (r *Router) effectiveMethod() string {
	if o := strings.ToUpper(r.override); o == MethodPut || o == MethodDelete {
		return o
	}
	return r.method
}

// Error registers handler for the given status codes, overwriting any prior
// registration per code. With no codes the handler becomes the global
// fallback, consulted only when no exact-code handler exists. A nil handler
// panics.
func (r *Router) Error(handler ErrorHandler, codes ...int) {
	if handler == nil {
		panic("router: Error called with nil handler")
	}
	if len(codes) == 0 {
		r.global = handler
		return
	}
	for _, code := range codes {
		r.errHandlers[code] = handler
	}
}
