package contact

import (
	"net/http"
	"strings"

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

type createContactRequest struct {
	Identifier *string `json:"identifier"`
}

// CreateContact godoc
// @Summary      Send a contact request
// @Tags         Contacts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      object{identifier=string}  true  "Identifier of the other user"
// @Success      201  {object}  serializer.ContactDTO
// @Failure      400  {object}  map[string][]string
// @Router       /api/contacts/ [post]
func (h *Handler) CreateContact(c *gin.Context) {
	var req createContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.Respond(c, apierror.FromBindError(err))
		return
	}
	if req.Identifier == nil {
		apierror.Respond(c, apierror.Required("identifier"))
		return
	}
	identifier := strings.TrimSpace(*req.Identifier)
	if identifier == "" {
		apierror.Respond(c, apierror.Blank("identifier"))
		return
	}

	actingUserId := middleware.ActingUserId(c)
	contact, err := h.Service.Request(c.Request.Context(), actingUserId, identifier)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	h.respondOne(c, http.StatusCreated, *contact)
}

// ListContacts godoc
// @Summary      Confirmed contacts
// @Description  Accepted contacts the caller initiated
// @Tags         Contacts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  serializer.ContactDTO
// @Router       /api/contacts/ [get]
func (h *Handler) ListContacts(c *gin.Context) {
	contacts, err := h.Service.ListConfirmed(c.Request.Context(), middleware.ActingUserId(c))
	h.respondList(c, contacts, err)
}

// GetContact godoc
// @Summary      Confirmed contact by id
// @Tags         Contacts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Contact ID"
// @Success      200  {object}  serializer.ContactDTO
// @Failure      404  {object}  map[string]string
// @Router       /api/contacts/{id}/ [get]
func (h *Handler) GetContact(c *gin.Context) {
	id, err := apierror.ParseId(c, "id")
	if err != nil {
		apierror.Respond(c, err)
		return
	}

	contact, err := h.Service.GetConfirmed(c.Request.Context(), middleware.ActingUserId(c), id)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	h.respondOne(c, http.StatusOK, *contact)
}

// AcceptContact godoc
// @Summary      Accept an incoming request
// @Tags         Contacts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Contact ID"
// @Success      200  {object}  serializer.ContactDTO
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/contacts/{id}/accept/ [post]
func (h *Handler) AcceptContact(c *gin.Context) {
	id, err := apierror.ParseId(c, "id")
	if err != nil {
		apierror.Respond(c, err)
		return
	}

	contact, err := h.Service.Accept(c.Request.Context(), middleware.ActingUserId(c), id)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	h.respondOne(c, http.StatusOK, *contact)
}

// CancelContact godoc
// @Summary      Cancel an outgoing request
// @Tags         Contacts
// @Security     BearerAuth
// @Param        id   path      int  true  "Contact ID"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/contacts/{id}/cancel/ [post]
func (h *Handler) CancelContact(c *gin.Context) {
	id, err := apierror.ParseId(c, "id")
	if err != nil {
		apierror.Respond(c, err)
		return
	}

	if err := h.Service.Cancel(c.Request.Context(), middleware.ActingUserId(c), id); err != nil {
		apierror.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListIncoming godoc
// @Summary      Pending requests sent to the caller
// @Tags         Contacts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  serializer.ContactDTO
// @Router       /api/contacts/incoming-requests/ [get]
func (h *Handler) ListIncoming(c *gin.Context) {
	contacts, err := h.Service.ListIncoming(c.Request.Context(), middleware.ActingUserId(c))
	h.respondList(c, contacts, err)
}

// ListOutgoing godoc
// @Summary      Pending requests sent by the caller
// @Tags         Contacts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  serializer.ContactDTO
// @Router       /api/contacts/outgoing-requests/ [get]
func (h *Handler) ListOutgoing(c *gin.Context) {
	contacts, err := h.Service.ListOutgoing(c.Request.Context(), middleware.ActingUserId(c))
	h.respondList(c, contacts, err)
}

func (h *Handler) respondOne(c *gin.Context, status int, contact model.Contact) {
	dtos, err := h.Service.Serialize(c.Request.Context(), middleware.ActingUserId(c), contact)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(status, dtos[0])
}

func (h *Handler) respondList(c *gin.Context, contacts []model.Contact, err error) {
	if err != nil {
		apierror.Respond(c, err)
		return
	}

	dtos, err := h.Service.Serialize(c.Request.Context(), middleware.ActingUserId(c), contacts...)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos)
}
