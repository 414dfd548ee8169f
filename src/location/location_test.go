package location

import (
	"context"
	"net/http"
	"testing"
	"time"

	"sos-api/src/database"
	"sos-api/src/middleware"
	"sos-api/src/model"
	"sos-api/src/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertKeepsSingleRow(t *testing.T) {
	ctx := context.Background()
	db := database.NewTestDatabase(t)
	service := NewService(db, NewRepository(db))
	user := testutils.CreateUser(t, db, "Anna", "")

	first := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return first }
	created, err := service.Update(ctx, user.Id, 55.75, 37.61)
	require.NoError(t, err)

	second := first.Add(time.Minute)
	service.now = func() time.Time { return second }
	updated, err := service.Update(ctx, user.Id, 59.93, 30.33)
	require.NoError(t, err)

	assert.Equal(t, created.Id, updated.Id)
	assert.Equal(t, 59.93, updated.Latitude)
	assert.Equal(t, 30.33, updated.Longitude)
	assert.True(t, second.Equal(updated.UpdatedAt))
	assert.Equal(t, user.Id, updated.User.Id)

	var count int64
	require.NoError(t, db.Model(&model.Location{}).Where("user_id = ?", user.Id).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGetWithoutLocation(t *testing.T) {
	db := database.NewTestDatabase(t)
	service := NewService(db, NewRepository(db))
	user := testutils.CreateUser(t, db, "Anna", "")

	location, err := service.Get(context.Background(), user.Id)
	require.NoError(t, err)
	assert.Nil(t, location)
}

func routerFor(handler *Handler, actingUserId uint) *gin.Engine {
	r := testutils.NewRouter()
	api := r.Group("/api", middleware.SetActingUser(actingUserId))
	api.POST("/location/update/", handler.UpdateLocation)
	api.GET("/location/me/", handler.GetMyLocation)
	api.POST("/location/me/", handler.SetMyLocation)
	return r
}

func TestLocationHandlers(t *testing.T) {
	db := database.NewTestDatabase(t)
	user := testutils.CreateUser(t, db, "Anna", "")
	router := routerFor(Build(db), user.Id)

	w := testutils.Request(t, router, http.MethodGet, "/api/location/me/", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	for _, body := range []string{`{}`, `{"latitude": 1}`, `{"longitude": 1}`, `{"latitude": null, "longitude": 2}`, `not json`, `{"latitude": "Inf", "longitude": 1}`, `{"latitude": 1, "longitude": "NaN"}`} {
		w = testutils.Request(t, router, http.MethodPost, "/api/location/update/", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.JSONEq(t, `{"error": "Отсутствуют координаты"}`, w.Body.String())
	}

	w = testutils.Request(t, router, http.MethodPost, "/api/location/update/", `{"latitude": "55.75", "longitude": 37.61}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "Геолокация успешно обновлена"}`, w.Body.String())

	w = testutils.Request(t, router, http.MethodGet, "/api/location/me/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := testutils.DecodeBody[map[string]any](t, w)
	assert.Equal(t, 55.75, body["latitude"])
	userBody := body["user"].(map[string]any)
	assert.Equal(t, float64(user.Id), userBody["id"])
	assert.NotNil(t, userBody["location"])

	w = testutils.Request(t, router, http.MethodPost, "/api/location/me/", `{"latitude": 1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"longitude": ["Обязательное поле."]}`, w.Body.String())

	w = testutils.Request(t, router, http.MethodPost, "/api/location/me/", `{"latitude": "-Infinity", "longitude": 2}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"latitude": ["Обязательное поле."]}`, w.Body.String())

	w = testutils.Request(t, router, http.MethodPost, "/api/location/me/", `{"latitude": 1, "longitude": 2}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	var count int64
	require.NoError(t, db.Model(&model.Location{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
