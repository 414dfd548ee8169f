package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sos-api/pkg/logger"
	"sos-api/pkg/rest"
	"sos-api/src/database"
	"sos-api/src/middleware"
	"sos-api/src/testutils"
	"sos-api/src/user"

	"github.com/gin-gonic/gin"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.InitDefaultLogger(logger.GlobalLoggerConfig{})
	m.Run()
}

func TestBuildRoutes_RegistersEverything(t *testing.T) {
	db := database.NewTestDatabase(t)
	router := testutils.NewRouter()

	middlewares := []rest.Middleware{
		rest.NewMiddleware(apiGroup, middleware.ActingUserMiddleware([]byte("secret"), user.NewRepository(db))),
		rest.NewMiddleware(internalGroup, middleware.InternalAuthMiddleware("internal")),
	}
	require.NoError(t, rest.Register(router, middlewares, buildRoutes(db, rateLimitSettings{})))

	w := testutils.Request(t, router, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = testutils.Request(t, router, http.MethodGet, "/api/contacts/", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = testutils.Request(t, router, http.MethodPost, "/internal/users/", map[string]any{})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	anna := testutils.CreateUser(t, db, "Anna", "")
	token := accessToken(t, []byte("secret"), anna.Id)

	w = authorizedRequest(router, http.MethodGet, "/api/auth/me/", token)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	require.NoError(t, user.NewRepository(db).DeleteCascade(context.Background(), anna.Id))

	w = authorizedRequest(router, http.MethodPost, "/api/contacts/", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"detail": "User not found"}`, w.Body.String())
}

func accessToken(t *testing.T, secret []byte, userId uint) string {
	t.Helper()
	token, err := jwt.NewBuilder().
		Expiration(time.Now().Add(time.Hour)).
		Claim("user_id", userId).
		Claim("token_type", "access").
		Build()
	require.NoError(t, err)

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256, secret))
	require.NoError(t, err)
	return string(signed)
}

func authorizedRequest(router http.Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(`{"identifier": "12ABCD"}`))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimitSettings_Wrap(t *testing.T) {
	noop := func(*gin.Context) {}

	assert.Len(t, rateLimitSettings{}.wrap(noop), 1)
	assert.Len(t, rateLimitSettings{counter: stubCounter{}, limit: 1}.wrap(noop), 2)
}

type stubCounter struct{}

func (stubCounter) Incr(context.Context, string, time.Duration) (int64, error) {
	return 1, nil
}
