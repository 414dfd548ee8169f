package rest

import "github.com/gin-gonic/gin"

type HttpMethod int

const (
	GET HttpMethod = iota
	POST
	PUT
	PATCH
	DELETE
)

func (m HttpMethod) String() string {
	switch m {
	case GET:
		return "GET"
	case POST:
		return "POST"
	case PUT:
		return "PUT"
	case PATCH:
		return "PATCH"
	case DELETE:
		return "DELETE"
	default:
		return "UNKNOWN"
	}
}

type Route struct {
	Method   HttpMethod
	Path     string
	Handlers []gin.HandlerFunc
	Group    string
}

// NewRoute registers handlers in order; the last one is the endpoint, any before it are
// route-level middleware.
func NewRoute(method HttpMethod, group, path string, handlers ...gin.HandlerFunc) Route {
	return Route{
		Method:   method,
		Path:     path,
		Group:    group,
		Handlers: handlers,
	}
}
