package rest

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// Register attaches middlewares and routes to the engine. Group middlewares are applied
// before any route of that group so gin picks them up.
func Register(engine *gin.Engine, middlewares []Middleware, routes []Route) error {
	groups := map[string]*gin.RouterGroup{}
	group := func(name string) *gin.RouterGroup {
		if g, ok := groups[name]; ok {
			return g
		}
		g := engine.Group("/" + name)
		groups[name] = g
		return g
	}

	for _, m := range middlewares {
		if m.Group == GlobalGroup {
			engine.Use(m.Handler)
			continue
		}
		group(m.Group).Use(m.Handler)
	}

	for _, r := range routes {
		if len(r.Handlers) == 0 {
			return fmt.Errorf("route %s %s/%s has no handler", r.Method, r.Group, r.Path)
		}

		g := group(r.Group)
		switch r.Method {
		case GET:
			g.GET(r.Path, r.Handlers...)
		case POST:
			g.POST(r.Path, r.Handlers...)
		case PUT:
			g.PUT(r.Path, r.Handlers...)
		case PATCH:
			g.PATCH(r.Path, r.Handlers...)
		case DELETE:
			g.DELETE(r.Path, r.Handlers...)
		default:
			return fmt.Errorf("unrecognized HTTP method: %s", r.Method)
		}
	}

	return nil
}
