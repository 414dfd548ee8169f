package contact

import (
	"fmt"
	"net/http"
	"testing"

	"sos-api/src/database"
	"sos-api/src/middleware"
	"sos-api/src/model"
	"sos-api/src/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func routerFor(handler *Handler, actingUserId uint) *gin.Engine {
	r := testutils.NewRouter()
	api := r.Group("/api", middleware.SetActingUser(actingUserId))
	api.POST("/contacts/", handler.CreateContact)
	api.GET("/contacts/", handler.ListContacts)
	api.GET("/contacts/incoming-requests/", handler.ListIncoming)
	api.GET("/contacts/outgoing-requests/", handler.ListOutgoing)
	api.GET("/contacts/:id/", handler.GetContact)
	api.POST("/contacts/:id/accept/", handler.AcceptContact)
	api.POST("/contacts/:id/cancel/", handler.CancelContact)
	return r
}

func setupUsers(t *testing.T) (*gorm.DB, *Handler, model.User, model.User) {
	db := database.NewTestDatabase(t)
	x := testutils.CreateUser(t, db, "X", "12ABCD")
	y := testutils.CreateUser(t, db, "Y", "34EFGH")
	return db, Build(db), x, y
}

func TestContactScenario(t *testing.T) {
	_, handler, x, y := setupUsers(t)
	asX := routerFor(handler, x.Id)
	asY := routerFor(handler, y.Id)

	w := testutils.Request(t, asX, http.MethodPost, "/api/contacts/", map[string]string{"identifier": "34EFGH"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := testutils.DecodeBody[map[string]any](t, w)
	assert.Equal(t, false, created["is_accepted"])
	assert.Equal(t, false, created["is_favorite"])
	contactId := uint(created["id"].(float64))

	w = testutils.Request(t, asY, http.MethodGet, "/api/contacts/incoming-requests/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, testutils.DecodeBody[[]any](t, w), 1)

	w = testutils.Request(t, asX, http.MethodPost, fmt.Sprintf("/api/contacts/%d/accept/", contactId), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail": "Не найдено."}`, w.Body.String())

	w = testutils.Request(t, asY, http.MethodPost, fmt.Sprintf("/api/contacts/%d/accept/", contactId), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, testutils.DecodeBody[map[string]any](t, w)["is_accepted"])

	w = testutils.Request(t, asY, http.MethodPost, fmt.Sprintf("/api/contacts/%d/accept/", contactId), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"detail": "Уже подтверждено."}`, w.Body.String())

	w = testutils.Request(t, asX, http.MethodGet, "/api/contacts/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, testutils.DecodeBody[[]any](t, w), 1)

	w = testutils.Request(t, asY, http.MethodGet, "/api/contacts/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = testutils.Request(t, asX, http.MethodPost, fmt.Sprintf("/api/contacts/%d/cancel/", contactId), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"detail": "Нельзя отменить — уже принято."}`, w.Body.String())
}

func TestCreateContactValidation(t *testing.T) {
	_, handler, x, _ := setupUsers(t)
	asX := routerFor(handler, x.Id)

	cases := []struct {
		name string
		body string
		want string
	}{
		{"missing identifier", `{}`, `{"identifier": ["Обязательное поле."]}`},
		{"blank identifier", `{"identifier": "  "}`, `{"identifier": ["Это поле не может быть пустым."]}`},
		{"unknown identifier", `{"identifier": "00NONE"}`, `{"identifier": ["Пользователь с таким идентификатором не найден."]}`},
		{"self", `{"identifier": "12ABCD"}`, `{"identifier": ["Нельзя добавить самого себя."]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := testutils.Request(t, asX, http.MethodPost, "/api/contacts/", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, tc.want, w.Body.String())
		})
	}
}

func TestCancelContactHandler(t *testing.T) {
	db, handler, x, y := setupUsers(t)
	asX := routerFor(handler, x.Id)

	w := testutils.Request(t, asX, http.MethodPost, "/api/contacts/", map[string]string{"identifier": "34EFGH"})
	require.Equal(t, http.StatusCreated, w.Code)
	contactId := uint(testutils.DecodeBody[map[string]any](t, w)["id"].(float64))

	w = testutils.Request(t, routerFor(handler, y.Id), http.MethodPost, fmt.Sprintf("/api/contacts/%d/cancel/", contactId), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = testutils.Request(t, asX, http.MethodPost, fmt.Sprintf("/api/contacts/%d/cancel/", contactId), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	var count int64
	require.NoError(t, db.Model(&model.Contact{}).Count(&count).Error)
	assert.Zero(t, count)

	w = testutils.Request(t, asX, http.MethodPost, "/api/contacts/abc/cancel/", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
