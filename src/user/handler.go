package user

import (
	"net/http"
	"strconv"

	reasoncodes "sos-api/pkg/reason_codes"
	"sos-api/src/apierror"
	"sos-api/src/middleware"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

// GetMe godoc
// @Summary      Current user
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  serializer.UserDTO
// @Failure      401  {object}  map[string]string
// @Router       /api/auth/me/ [get]
func (h *Handler) GetMe(c *gin.Context) {
	dto, err := h.Service.GetMe(c.Request.Context(), middleware.ActingUserId(c))
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto)
}

// UpdateStatus godoc
// @Summary      Update online status
// @Description  Sets is_online (coerced by truthiness) and stamps last_seen
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      object{is_online=bool}  true  "Status"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /api/auth/update-status/ [post]
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req struct {
		IsOnline any `json:"is_online"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.IsOnline == nil {
		apierror.Respond(c, apierror.Plain(reasoncodes.ErrValidation, "Missing is_online field"))
		return
	}

	user, err := h.Service.UpdateOnlineStatus(c.Request.Context(), middleware.ActingUserId(c), truthy(req.IsOnline))
	if err != nil {
		apierror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Status updated",
		"is_online": user.IsOnline,
		"last_seen": user.LastSeen,
	})
}

// GetIdentifierQR godoc
// @Summary      Identifier QR code
// @Tags         Auth
// @Produce      png
// @Security     BearerAuth
// @Param        size  query  int  false  "Image size in pixels"
// @Success      200
// @Failure      404  {object}  map[string]string
// @Router       /api/auth/me/qr/ [get]
func (h *Handler) GetIdentifierQR(c *gin.Context) {
	size, _ := strconv.Atoi(c.Query("size"))
	if size > 1024 {
		size = 1024
	}

	png, err := h.Service.IdentifierQR(c.Request.Context(), middleware.ActingUserId(c), size)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// ProvisionUser godoc
// @Summary      Provision a user
// @Description  Called by the auth provider when an account is registered
// @Tags         Internal
// @Accept       json
// @Produce      json
// @Param        body  body      ProvisionInput  true  "User"
// @Success      201  {object}  serializer.UserDTO
// @Failure      400  {object}  map[string]interface{}
// @Router       /internal/users/ [post]
func (h *Handler) ProvisionUser(c *gin.Context) {
	var req ProvisionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.Respond(c, apierror.FromBindError(err))
		return
	}

	user, err := h.Service.Provision(c.Request.Context(), req)
	if err != nil {
		apierror.Respond(c, err)
		return
	}

	dto, err := h.Service.GetMe(c.Request.Context(), user.Id)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto)
}

// DeleteUser godoc
// @Summary      Delete a user and everything it owns
// @Tags         Internal
// @Param        id   path  int  true  "User ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /internal/users/{id}/ [delete]
func (h *Handler) DeleteUser(c *gin.Context) {
	id, err := apierror.ParseId(c, "id")
	if err != nil {
		apierror.Respond(c, err)
		return
	}

	if err := h.Service.DeleteUser(c.Request.Context(), id); err != nil {
		apierror.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// truthy follows the usual JSON truthiness: false, 0, "" and empty containers are false.
func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != ""
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	default:
		return v != nil
	}
}
