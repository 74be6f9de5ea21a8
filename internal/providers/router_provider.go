package providers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"dashd/internal/structures"
)

type RouterProviderInterface interface {
	Get(pattern string, handler http.HandlerFunc)
	Post(pattern string, handler http.HandlerFunc)
	Put(pattern string, handler http.HandlerFunc)
	Delete(pattern string, handler http.HandlerFunc)
	Group(fn func(r RouterProviderInterface), middlewares ...func(http.Handler) http.Handler)
	Handler() http.Handler
	GetRoutes() []structures.Route
}

// RouterProvider is a thin route table over chi. Routes are recorded as
// they are registered so tests and the health endpoint can enumerate them.
type RouterProvider struct {
	mux    chi.Router
	routes *[]structures.Route
}

func NewRouterProvider() RouterProviderInterface {
	routes := make([]structures.Route, 0)
	return &RouterProvider{mux: chi.NewRouter(), routes: &routes}
}

func (rp *RouterProvider) record(method, pattern string) {
	*rp.routes = append(*rp.routes, structures.Route{Method: method, Url: pattern})
}

func (rp *RouterProvider) Get(pattern string, handler http.HandlerFunc) {
	rp.mux.Get(pattern, handler)
	rp.record(http.MethodGet, pattern)
}

func (rp *RouterProvider) Post(pattern string, handler http.HandlerFunc) {
	rp.mux.Post(pattern, handler)
	rp.record(http.MethodPost, pattern)
}

func (rp *RouterProvider) Put(pattern string, handler http.HandlerFunc) {
	rp.mux.Put(pattern, handler)
	rp.record(http.MethodPut, pattern)
}

func (rp *RouterProvider) Delete(pattern string, handler http.HandlerFunc) {
	rp.mux.Delete(pattern, handler)
	rp.record(http.MethodDelete, pattern)
}

// Group registers routes on an inline sub-router carrying its own
// middleware stack, typically a per-surface CORS policy.
func (rp *RouterProvider) Group(fn func(r RouterProviderInterface), middlewares ...func(http.Handler) http.Handler) {
	rp.mux.Group(func(r chi.Router) {
		r.Use(middlewares...)
		fn(&RouterProvider{mux: r, routes: rp.routes})
	})
}

func (rp *RouterProvider) Handler() http.Handler {
	return rp.mux
}

func (rp *RouterProvider) GetRoutes() []structures.Route {
	return *rp.routes
}
