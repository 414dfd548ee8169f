package sos

import (
	"net/http"

	"sos-api/src/apierror"
	"sos-api/src/middleware"
	"sos-api/src/model"
	"sos-api/src/serializer"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

type createSosRequest struct {
	Latitude  serializer.Number `json:"latitude"`
	Longitude serializer.Number `json:"longitude"`
	IsActive  *bool             `json:"is_active"`
}

// CreateSos godoc
// @Summary      Raise an SOS signal
// @Tags         SOS
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      object{latitude=number,longitude=number,is_active=bool}  true  "Signal"
// @Success      201  {object}  serializer.SosSignalDTO
// @Failure      400  {object}  map[string][]string
// @Failure      429  {object}  map[string]string
// @Router       /api/sos/ [post]
func (h *Handler) CreateSos(c *gin.Context) {
	var req createSosRequest
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
	signal, err := h.Service.Create(c.Request.Context(), actingUserId, CreateInput{
		Latitude:  req.Latitude.Value,
		Longitude: req.Longitude.Value,
		IsActive:  req.IsActive,
	})
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	h.respondOne(c, http.StatusCreated, *signal)
}

// ListSos godoc
// @Summary      Own SOS signals, newest first
// @Tags         SOS
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  serializer.SosSignalDTO
// @Router       /api/sos/ [get]
func (h *Handler) ListSos(c *gin.Context) {
	actingUserId := middleware.ActingUserId(c)
	signals, err := h.Service.List(c.Request.Context(), actingUserId)
	if err != nil {
		apierror.Respond(c, err)
		return
	}

	dtos, err := h.Service.Serialize(c.Request.Context(), actingUserId, signals...)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos)
}

// GetSos godoc
// @Summary      Own SOS signal by id
// @Tags         SOS
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Signal ID"
// @Success      200  {object}  serializer.SosSignalDTO
// @Failure      404  {object}  map[string]string
// @Router       /api/sos/{id}/ [get]
func (h *Handler) GetSos(c *gin.Context) {
	id, err := apierror.ParseId(c, "id")
	if err != nil {
		apierror.Respond(c, err)
		return
	}

	signal, err := h.Service.Get(c.Request.Context(), middleware.ActingUserId(c), id)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	h.respondOne(c, http.StatusOK, *signal)
}

// UpdateSos godoc
// @Summary      Activate or deactivate an own SOS signal
// @Tags         SOS
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                    true  "Signal ID"
// @Param        body  body      object{is_active=bool}  true  "State"
// @Success      200  {object}  serializer.SosSignalDTO
// @Failure      400  {object}  map[string][]string
// @Failure      404  {object}  map[string]string
// @Router       /api/sos/{id}/ [patch]
func (h *Handler) UpdateSos(c *gin.Context) {
	id, err := apierror.ParseId(c, "id")
	if err != nil {
		apierror.Respond(c, err)
		return
	}

	var req struct {
		IsActive *bool `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.Respond(c, apierror.FromBindError(err))
		return
	}
	if req.IsActive == nil {
		apierror.Respond(c, apierror.Required("is_active"))
		return
	}

	signal, err := h.Service.SetActive(c.Request.Context(), middleware.ActingUserId(c), id, *req.IsActive)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	h.respondOne(c, http.StatusOK, *signal)
}

func (h *Handler) respondOne(c *gin.Context, status int, signal model.SosSignal) {
	dtos, err := h.Service.Serialize(c.Request.Context(), middleware.ActingUserId(c), signal)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(status, dtos[0])
}
