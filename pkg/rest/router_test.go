package rest

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(engine *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	engine.ServeHTTP(w, req)
	return w
}

func TestRegister_GroupsAndMiddleware(t *testing.T) {
	engine := gin.New()

	var trace []string
	mark := func(name string) gin.HandlerFunc {
		return func(c *gin.Context) {
			trace = append(trace, name)
			c.Next()
		}
	}

	middlewares := []Middleware{
		NewMiddleware(GlobalGroup, mark("global")),
		NewMiddleware("api", mark("api")),
	}
	routes := []Route{
		NewRoute(GET, "api", "items/", mark("route"), func(c *gin.Context) { c.Status(http.StatusOK) }),
		NewRoute(DELETE, "internal", "items/:id/", func(c *gin.Context) { c.Status(http.StatusNoContent) }),
	}

	require.NoError(t, Register(engine, middlewares, routes))

	w := serve(engine, http.MethodGet, "/api/items/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"global", "api", "route"}, trace)

	trace = nil
	w = serve(engine, http.MethodDelete, "/internal/items/5/")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, []string{"global"}, trace)
}

func TestRegister_RejectsRouteWithoutHandler(t *testing.T) {
	err := Register(gin.New(), nil, []Route{{Method: GET, Group: "api", Path: "x/"}})
	assert.Error(t, err)
}

func TestRegister_RejectsUnknownMethod(t *testing.T) {
	err := Register(gin.New(), nil, []Route{NewRoute(HttpMethod(42), "api", "x/", func(*gin.Context) {})})
	assert.EqualError(t, err, "unrecognized HTTP method: UNKNOWN")
}
