package location

import (
	"net/http"

	reasoncodes "sos-api/pkg/reason_codes"
	"sos-api/src/apierror"
	"sos-api/src/middleware"
	"sos-api/src/serializer"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

type coordinatesRequest struct {
	Latitude  serializer.Number `json:"latitude"`
	Longitude serializer.Number `json:"longitude"`
}

// UpdateLocation godoc
// @Summary      Report current coordinates
// @Tags         Location
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      object{latitude=number,longitude=number}  true  "Coordinates"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Router       /api/location/update/ [post]
func (h *Handler) UpdateLocation(c *gin.Context) {
	var req coordinatesRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.Latitude.Valid || !req.Longitude.Valid {
		apierror.Respond(c, apierror.Plain(reasoncodes.ErrValidation, "Отсутствуют координаты"))
		return
	}

	_, err := h.Service.Update(c.Request.Context(), middleware.ActingUserId(c), req.Latitude.Value, req.Longitude.Value)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Геолокация успешно обновлена"})
}

// SetMyLocation godoc
// @Summary      Create or overwrite own location
// @Tags         Location
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      object{latitude=number,longitude=number}  true  "Coordinates"
// @Success      201  {object}  serializer.LocationDTO
// @Failure      400  {object}  map[string][]string
// @Router       /api/location/me/ [post]
func (h *Handler) SetMyLocation(c *gin.Context) {
	var req coordinatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.Respond(c, apierror.FromBindError(err))
		return
	}
	if !req.Latitude.Valid {
		apierror.Respond(c, apierror.Required("latitude"))
		return
	}
	if !req.Longitude.Valid {
		apierror.Respond(c, apierror.Required("longitude"))
		return
	}

	actingUserId := middleware.ActingUserId(c)
	location, err := h.Service.Update(c.Request.Context(), actingUserId, req.Latitude.Value, req.Longitude.Value)
	if err != nil {
		apierror.Respond(c, err)
		return
	}

	dto, err := h.Service.Serialize(c.Request.Context(), actingUserId, *location)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto)
}

// GetMyLocation godoc
// @Summary      Own location
// @Tags         Location
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  serializer.LocationDTO
// @Success      204
// @Router       /api/location/me/ [get]
func (h *Handler) GetMyLocation(c *gin.Context) {
	actingUserId := middleware.ActingUserId(c)
	location, err := h.Service.Get(c.Request.Context(), actingUserId)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	if location == nil {
		c.Status(http.StatusNoContent)
		return
	}

	dto, err := h.Service.Serialize(c.Request.Context(), actingUserId, *location)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto)
}
