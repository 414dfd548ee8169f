package favorite

import (
	"net/http"

	"sos-api/src/apierror"
	"sos-api/src/middleware"
	"sos-api/src/model"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

// AddFavorite godoc
// @Summary      Add a user to favorites
// @Tags         Favorites
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      object{contact_id=int}  true  "User to bookmark"
// @Success      201  {object}  serializer.FavoriteDTO
// @Failure      400  {object}  map[string][]string
// @Router       /api/favorites/ [post]
func (h *Handler) AddFavorite(c *gin.Context) {
	var req struct {
		ContactId *uint `json:"contact_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.Respond(c, apierror.FromBindError(err))
		return
	}
	if req.ContactId == nil {
		apierror.Respond(c, apierror.Required("contact_id"))
		return
	}

	favorite, err := h.Service.Add(c.Request.Context(), middleware.ActingUserId(c), *req.ContactId)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	h.respondOne(c, http.StatusCreated, *favorite)
}

// ListFavorites godoc
// @Summary      Favorites of the caller
// @Tags         Favorites
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  serializer.FavoriteDTO
// @Router       /api/favorites/ [get]
func (h *Handler) ListFavorites(c *gin.Context) {
	actingUserId := middleware.ActingUserId(c)
	favorites, err := h.Service.List(c.Request.Context(), actingUserId)
	if err != nil {
		apierror.Respond(c, err)
		return
	}

	dtos, err := h.Service.Serialize(c.Request.Context(), actingUserId, favorites...)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos)
}

// GetFavorite godoc
// @Summary      Favorite by id
// @Tags         Favorites
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Favorite ID"
// @Success      200  {object}  serializer.FavoriteDTO
// @Failure      404  {object}  map[string]string
// @Router       /api/favorites/{id}/ [get]
func (h *Handler) GetFavorite(c *gin.Context) {
	id, err := apierror.ParseId(c, "id")
	if err != nil {
		apierror.Respond(c, err)
		return
	}

	favorite, err := h.Service.Get(c.Request.Context(), middleware.ActingUserId(c), id)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	h.respondOne(c, http.StatusOK, *favorite)
}

// RemoveFavorite godoc
// @Summary      Remove a favorite
// @Tags         Favorites
// @Security     BearerAuth
// @Param        id   path  int  true  "Favorite ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/favorites/{id}/ [delete]
func (h *Handler) RemoveFavorite(c *gin.Context) {
	id, err := apierror.ParseId(c, "id")
	if err != nil {
		apierror.Respond(c, err)
		return
	}

	if err := h.Service.Remove(c.Request.Context(), middleware.ActingUserId(c), id); err != nil {
		apierror.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) respondOne(c *gin.Context, status int, favorite model.FavoriteContact) {
	dtos, err := h.Service.Serialize(c.Request.Context(), middleware.ActingUserId(c), favorite)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(status, dtos[0])
}
