package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(args []string) (any, error) { return nil, nil }

func newReverseRouter() *Router {
	return NewWithBase(Request{Method: "GET"}, "http://example.com/", "")
}

func TestToNamedRoute(t *testing.T) {
	r := newReverseRouter()
	r.Identify("profile", r.Get("user/{id}", noop))

	assert.Equal(t, "http://example.com/user/42", r.To("profile", "{id}", "42"))
}

func TestToUnknownNameIsLiteralRoute(t *testing.T) {
	r := newReverseRouter()

	assert.Equal(t, "http://example.com/unregistered-name", r.To("unregistered-name"))
}

func TestToWithMount(t *testing.T) {
	r := NewWithBase(Request{Method: "GET"}, "http://example.com/", "app")
	r.Identify("profile", r.Get("user/{id}", noop))

	assert.Equal(t, "http://example.com/app/user/42", r.To("profile", "{id}", "42"))
}

func TestToRouteOffset(t *testing.T) {
	r := newReverseRouter()
	r.Identify("docs", r.Get("docs/{page}", noop, "documentation/{page}"))

	assert.Equal(t, "http://example.com/documentation/intro", r.ToRoute("docs", 1, "{page}", "intro"))
	// out-of-range offsets fall back to the first pattern
	assert.Equal(t, "http://example.com/docs/intro", r.ToRoute("docs", 5, "{page}", "intro"))
	assert.Equal(t, "http://example.com/docs/intro", r.ToRoute("docs", -1, "{page}", "intro"))
}

func TestToAppliesReplacementsInOrder(t *testing.T) {
	r := newReverseRouter()
	r.Identify("pair", r.Get("{a}/{b}", noop))

	assert.Equal(t, "http://example.com/1/2", r.To("pair", "{a}", "1", "{b}", "2"))
}

func TestIdentifyRenameRemovesOldMapping(t *testing.T) {
	r := newReverseRouter()
	a := r.Get("user/{id}", noop)

	r.Identify("old", a)
	r.Identify("new", a)

	_, ok := r.Find("old")
	assert.False(t, ok)
	found, ok := r.Find("new")
	require.True(t, ok)
	assert.Same(t, a, found)
	assert.Equal(t, "new", a.Name())
}

func TestIdentifyNameReuseRepoints(t *testing.T) {
	r := newReverseRouter()
	first := r.Get("one", noop)
	second := r.Get("two", noop)

	r.Identify("x", first)
	r.Identify("x", second)

	found, ok := r.Find("x")
	require.True(t, ok)
	assert.Same(t, second, found)

	// renaming the usurped action must not delete the new owner's mapping
	r.Identify("y", first)
	_, ok = r.Find("x")
	assert.True(t, ok)
}

func TestFindUnknown(t *testing.T) {
	r := newReverseRouter()
	_, ok := r.Find("missing")
	assert.False(t, ok)
}
