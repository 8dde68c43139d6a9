package routerhelper

import (
	"net/http"
	"path"

	"github.com/julienschmidt/httprouter"
)

// RouteGroup registers httprouter handles under a shared path prefix.
type RouteGroup struct {
	router *httprouter.Router
	prefix string
}

func NewRouteGroup(router *httprouter.Router, prefix string) *RouteGroup {
	return &RouteGroup{
		router: router,
		prefix: prefix,
	}
}

func (g *RouteGroup) Group(prefix string) *RouteGroup {
	return NewRouteGroup(g.router, g.path(prefix))
}

func (g *RouteGroup) GET(p string, handle httprouter.Handle) {
	g.router.GET(g.path(p), handle)
}

func (g *RouteGroup) POST(p string, handle httprouter.Handle) {
	g.router.POST(g.path(p), handle)
}

func (g *RouteGroup) Handler(method, p string, handler http.Handler) {
	g.router.Handler(method, g.path(p), handler)
}

func (g *RouteGroup) path(p string) string {
	joined := path.Join(g.prefix, p)
	// path.Join drops the trailing slash httprouter catch-all routes rely on
	if len(p) > 0 && p[len(p)-1] == '/' && joined[len(joined)-1] != '/' {
		joined += "/"
	}
	return joined
}
