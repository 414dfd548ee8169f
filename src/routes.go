package main

import (
	"time"

	"sos-api/pkg/rest"
	"sos-api/src/contact"
	"sos-api/src/favorite"
	"sos-api/src/keyword"
	"sos-api/src/location"
	"sos-api/src/metrics"
	"sos-api/src/middleware"
	"sos-api/src/sos"
	"sos-api/src/user"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	apiGroup      = "api"
	internalGroup = "internal"
	metricsGroup  = "metrics"
)

type rateLimitSettings struct {
	counter middleware.Counter
	limit   int64
	window  time.Duration
}

func (rl rateLimitSettings) wrap(handler gin.HandlerFunc) []gin.HandlerFunc {
	if rl.counter == nil {
		return []gin.HandlerFunc{handler}
	}
	return []gin.HandlerFunc{middleware.RateLimit(rl.counter, rl.limit, rl.window), handler}
}

func buildRoutes(db *gorm.DB, rl rateLimitSettings) []rest.Route {
	userHandler := user.Build(db)
	contactHandler := contact.Build(db)
	favoriteHandler := favorite.Build(db)
	locationHandler := location.Build(db)
	sosHandler := sos.Build(db)
	keywordHandler := keyword.Build(db)

	return []rest.Route{
		rest.NewRoute(rest.GET, apiGroup, "auth/me/", userHandler.GetMe),
		rest.NewRoute(rest.POST, apiGroup, "auth/update-status/", userHandler.UpdateStatus),
		rest.NewRoute(rest.GET, apiGroup, "auth/me/qr/", userHandler.GetIdentifierQR),

		rest.NewRoute(rest.POST, apiGroup, "contacts/", rl.wrap(contactHandler.CreateContact)...),
		rest.NewRoute(rest.GET, apiGroup, "contacts/", contactHandler.ListContacts),
		rest.NewRoute(rest.GET, apiGroup, "contacts/incoming-requests/", contactHandler.ListIncoming),
		rest.NewRoute(rest.GET, apiGroup, "contacts/outgoing-requests/", contactHandler.ListOutgoing),
		rest.NewRoute(rest.GET, apiGroup, "contacts/:id/", contactHandler.GetContact),
		rest.NewRoute(rest.POST, apiGroup, "contacts/:id/accept/", contactHandler.AcceptContact),
		rest.NewRoute(rest.POST, apiGroup, "contacts/:id/cancel/", contactHandler.CancelContact),

		rest.NewRoute(rest.POST, apiGroup, "favorites/", favoriteHandler.AddFavorite),
		rest.NewRoute(rest.GET, apiGroup, "favorites/", favoriteHandler.ListFavorites),
		rest.NewRoute(rest.GET, apiGroup, "favorites/:id/", favoriteHandler.GetFavorite),
		rest.NewRoute(rest.DELETE, apiGroup, "favorites/:id/", favoriteHandler.RemoveFavorite),

		rest.NewRoute(rest.POST, apiGroup, "location/update/", locationHandler.UpdateLocation),
		rest.NewRoute(rest.POST, apiGroup, "location/me/", locationHandler.SetMyLocation),
		rest.NewRoute(rest.GET, apiGroup, "location/me/", locationHandler.GetMyLocation),

		rest.NewRoute(rest.POST, apiGroup, "sos/", rl.wrap(sosHandler.CreateSos)...),
		rest.NewRoute(rest.GET, apiGroup, "sos/", sosHandler.ListSos),
		rest.NewRoute(rest.GET, apiGroup, "sos/:id/", sosHandler.GetSos),
		rest.NewRoute(rest.PATCH, apiGroup, "sos/:id/", sosHandler.UpdateSos),

		rest.NewRoute(rest.GET, apiGroup, "keywords/", keywordHandler.ListKeywords),
		rest.NewRoute(rest.POST, apiGroup, "keywords/", keywordHandler.CreateKeyword),
		rest.NewRoute(rest.GET, apiGroup, "keywords/:id/", keywordHandler.GetKeyword),
		rest.NewRoute(rest.PUT, apiGroup, "keywords/:id/", keywordHandler.UpdateKeyword),
		rest.NewRoute(rest.DELETE, apiGroup, "keywords/:id/", keywordHandler.DeleteKeyword),

		rest.NewRoute(rest.POST, internalGroup, "users/", userHandler.ProvisionUser),
		rest.NewRoute(rest.DELETE, internalGroup, "users/:id/", userHandler.DeleteUser),

		rest.NewRoute(rest.GET, metricsGroup, "", metrics.Handler()),
	}
}
