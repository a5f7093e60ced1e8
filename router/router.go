package router

import (
	"strings"

	"github.com/en9inerd/go-router/httperrors"
)

// Method tokens accepted by Register. MethodAny actions are candidates for
// every request and are tried before method-specific ones.
const (
	MethodAny    = "ANY"
	MethodGet    = "GET"
	MethodPost   = "POST"
	MethodPut    = "PUT"
	MethodDelete = "DELETE"
)

// Request carries the three request facts the router needs. It is supplied
// explicitly so the router stays independent of any transport.
type Request struct {
	// Method is the raw HTTP method.
	Method string

	// Path is the request path; surrounding slashes are ignored.
	Path string

	// Override optionally tunnels PUT or DELETE through another method
	// (typically a form field, since HTML forms submit only GET and POST).
	Override string
}

// Handler processes a matched request. It receives the captured path
// parameters in pattern order and returns an opaque result. Returning an
// *httperrors.Error routes the failure to a registered error handler; any
// other error propagates out of Run untouched.
type Handler func(args []string) (any, error)

// ErrorHandler resolves an HTTP failure raised during dispatch. Its return
// values become the result of Run.
type ErrorHandler func(e *httperrors.Error) (any, error)

// Router matches one request against a registered set of route patterns and
// dispatches to the first matching handler. A Router is request-scoped:
// construct one per request, register routes, then call Run. It performs no
// locking; registration must complete before Run is called.
type Router struct {
	mount   string
	baseURL string

	method   string
	path     string
	override string

	actions map[string][]*Action
	named   map[string]*Action

	errHandlers map[int]ErrorHandler
	global      ErrorHandler
}

// New creates a request-scoped router with no mount prefix and "/" as the
// URL-generation base.
func New(req Request) *Router {
	return NewWithBase(req, "/", "")
}

// NewWithBase creates a request-scoped router. baseURL is used only for URL
// generation and is normalized to end in a single slash; mount is a path
// prefix prepended to every route before matching.
func NewWithBase(req Request, baseURL, mount string) *Router {
	return &Router{
		mount:    strings.Trim(mount, "/"),
		baseURL:  normalizeBase(baseURL),
		method:   strings.ToUpper(req.Method),
		path:     strings.Trim(req.Path, "/"),
		override: req.Override,
		actions: map[string][]*Action{
			MethodAny:    nil,
			MethodGet:    nil,
			MethodPost:   nil,
			MethodPut:    nil,
			MethodDelete: nil,
		},
		named:       make(map[string]*Action),
		errHandlers: make(map[int]ErrorHandler),
	}
}

// Base returns the absolute prefix for generated URLs: the base URL joined
// with the mount prefix, without a trailing slash.
func (r *Router) Base() string {
	return strings.TrimSuffix(r.baseURL+r.mount, "/")
}
