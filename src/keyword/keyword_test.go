package keyword

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"sos-api/src/database"
	"sos-api/src/middleware"
	"sos-api/src/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func routerFor(handler *Handler, actingUserId uint) *gin.Engine {
	r := testutils.NewRouter()
	api := r.Group("/api", middleware.SetActingUser(actingUserId))
	api.GET("/keywords/", handler.ListKeywords)
	api.POST("/keywords/", handler.CreateKeyword)
	api.GET("/keywords/:id/", handler.GetKeyword)
	api.PUT("/keywords/:id/", handler.UpdateKeyword)
	api.DELETE("/keywords/:id/", handler.DeleteKeyword)
	return r
}

func TestKeywordValidation(t *testing.T) {
	db := database.NewTestDatabase(t)
	owner := testutils.CreateUser(t, db, "Owner", "")
	router := routerFor(Build(db), owner.Id)

	cases := []struct {
		name string
		body string
		want string
	}{
		{"missing", `{}`, `{"word": ["Обязательное поле."]}`},
		{"blank", `{"word": ""}`, `{"word": ["Это поле не может быть пустым."]}`},
		{"too long", fmt.Sprintf(`{"word": %q}`, strings.Repeat("a", 256)), `{"word": ["Убедитесь, что это значение содержит не более 255 символов."]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := testutils.Request(t, router, http.MethodPost, "/api/keywords/", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, tc.want, w.Body.String())
		})
	}
}

func TestKeywordCrudIsOwnerScoped(t *testing.T) {
	db := database.NewTestDatabase(t)
	owner := testutils.CreateUser(t, db, "Owner", "")
	other := testutils.CreateUser(t, db, "Other", "")
	asOwner := routerFor(Build(db), owner.Id)
	asOther := routerFor(Build(db), other.Id)

	w := testutils.Request(t, asOwner, http.MethodPost, "/api/keywords/", `{"word": "помогите"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	created := testutils.DecodeBody[map[string]any](t, w)
	assert.Equal(t, "помогите", created["word"])
	path := fmt.Sprintf("/api/keywords/%d/", uint(created["id"].(float64)))

	w = testutils.Request(t, asOwner, http.MethodPost, "/api/keywords/", `{"word": "помогите"}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = testutils.Request(t, asOther, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = testutils.Request(t, asOther, http.MethodPut, path, `{"word": "hijack"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = testutils.Request(t, asOther, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = testutils.Request(t, asOwner, http.MethodPut, path, `{"word": "sos"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "sos", testutils.DecodeBody[map[string]any](t, w)["word"])

	w = testutils.Request(t, asOwner, http.MethodGet, "/api/keywords/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, testutils.DecodeBody[[]any](t, w), 2)

	w = testutils.Request(t, asOther, http.MethodGet, "/api/keywords/", nil)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = testutils.Request(t, asOwner, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = testutils.Request(t, asOwner, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
