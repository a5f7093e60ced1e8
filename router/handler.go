package router

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/en9inerd/go-router/httperrors"
)

// SetupFunc registers routes and error handlers on a fresh per-request
// Router.
type SetupFunc func(*Router)

// HTTPHandler adapts the request-scoped Router to net/http. Routers are
// single-use, so the route table is rebuilt on every request: ServeHTTP
// constructs a new Router, hands it to Setup for registration, runs the
// dispatch and writes the result.
//
// Results are written as follows: nil becomes 204 No Content, string and
// []byte are written verbatim, anything else is encoded as JSON. An
// *httperrors.Error left unresolved by the registered error handlers is
// written in its JSON form; any other error becomes a plain 500.
type HTTPHandler struct {
	// Setup registers routes on the per-request Router. Required.
	Setup SetupFunc

	// Mount is the path prefix prepended to every route before matching.
	Mount string

	// BaseURL overrides the URL-generation base. When empty, the base is
	// derived from the request's scheme and host.
	BaseURL string

	// Logger, when set, logs one line per request.
	Logger *slog.Logger
}

// ServeHTTP implements http.Handler.
func (h *HTTPHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	start := time.Now()

	base := h.BaseURL
	if base == "" {
		scheme := "http"
		if req.TLS != nil {
			scheme = "https"
		}
		base = scheme + "://" + req.Host + "/"
	}

	r := NewWithBase(Request{
		Method:   req.Method,
		Path:     req.URL.Path,
		Override: overrideValue(req),
	}, base, h.Mount)
	h.Setup(r)

	out, err := r.Run()
	status := writeResult(w, out, err)

	if h.Logger != nil {
		h.Logger.Info("request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", status,
			"remote", req.RemoteAddr,
			"duration", time.Since(start).String(),
		)
	}
}

// overrideValue reads the method override from the _method form field,
// falling back to the X-HTTP-Method-Override header.
func overrideValue(req *http.Request) string {
	if v := req.PostFormValue("_method"); v != "" {
		return v
	}
	return req.Header.Get("X-HTTP-Method-Override")
}

// writeResult emits the dispatch outcome and returns the status code sent.
func writeResult(w http.ResponseWriter, out any, err error) int {
	if err != nil {
		if he, ok := httperrors.FromError(err); ok {
			he.WriteJSON(w)
			return he.Code
		}
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return http.StatusInternalServerError
	}

	switch v := out.(type) {
	case nil:
		w.WriteHeader(http.StatusNoContent)
		return http.StatusNoContent
	case string:
		_, _ = w.Write([]byte(v))
		return http.StatusOK
	case []byte:
		_, _ = w.Write(v)
		return http.StatusOK
	default:
		buf := &bytes.Buffer{}
		enc := json.NewEncoder(buf)
		enc.SetEscapeHTML(true)
		if err := enc.Encode(v); err != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return http.StatusInternalServerError
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write(buf.Bytes())
		return http.StatusOK
	}
}
