package keyword

import (
	"net/http"
	"strings"

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

type keywordRequest struct {
	Word *string `json:"word" binding:"omitempty,max=255"`
}

func bindWord(c *gin.Context) (string, error) {
	var req keywordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return "", apierror.FromBindError(err)
	}
	if req.Word == nil {
		return "", apierror.Required("word")
	}
	word := strings.TrimSpace(*req.Word)
	if word == "" {
		return "", apierror.Blank("word")
	}
	return word, nil
}

// ListKeywords godoc
// @Summary      Own trigger keywords
// @Tags         Keywords
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  serializer.KeywordDTO
// @Router       /api/keywords/ [get]
func (h *Handler) ListKeywords(c *gin.Context) {
	keywords, err := h.Service.List(c.Request.Context(), middleware.ActingUserId(c))
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Keywords(keywords))
}

// CreateKeyword godoc
// @Summary      Add a trigger keyword
// @Tags         Keywords
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      object{word=string}  true  "Keyword"
// @Success      201  {object}  serializer.KeywordDTO
// @Failure      400  {object}  map[string][]string
// @Router       /api/keywords/ [post]
func (h *Handler) CreateKeyword(c *gin.Context) {
	word, err := bindWord(c)
	if err != nil {
		apierror.Respond(c, err)
		return
	}

	keyword, err := h.Service.Create(c.Request.Context(), middleware.ActingUserId(c), word)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Keyword(*keyword))
}

// GetKeyword godoc
// @Summary      Keyword by id
// @Tags         Keywords
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Keyword ID"
// @Success      200  {object}  serializer.KeywordDTO
// @Failure      404  {object}  map[string]string
// @Router       /api/keywords/{id}/ [get]
func (h *Handler) GetKeyword(c *gin.Context) {
	id, err := apierror.ParseId(c, "id")
	if err != nil {
		apierror.Respond(c, err)
		return
	}

	keyword, err := h.Service.Get(c.Request.Context(), middleware.ActingUserId(c), id)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Keyword(*keyword))
}

// UpdateKeyword godoc
// @Summary      Replace a keyword
// @Tags         Keywords
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                  true  "Keyword ID"
// @Param        body  body      object{word=string}  true  "Keyword"
// @Success      200  {object}  serializer.KeywordDTO
// @Failure      400  {object}  map[string][]string
// @Failure      404  {object}  map[string]string
// @Router       /api/keywords/{id}/ [put]
func (h *Handler) UpdateKeyword(c *gin.Context) {
	id, err := apierror.ParseId(c, "id")
	if err != nil {
		apierror.Respond(c, err)
		return
	}

	word, err := bindWord(c)
	if err != nil {
		apierror.Respond(c, err)
		return
	}

	keyword, err := h.Service.Update(c.Request.Context(), middleware.ActingUserId(c), id, word)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Keyword(*keyword))
}

// DeleteKeyword godoc
// @Summary      Delete a keyword
// @Tags         Keywords
// @Security     BearerAuth
// @Param        id   path  int  true  "Keyword ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/keywords/{id}/ [delete]
func (h *Handler) DeleteKeyword(c *gin.Context) {
	id, err := apierror.ParseId(c, "id")
	if err != nil {
		apierror.Respond(c, err)
		return
	}

	if err := h.Service.Delete(c.Request.Context(), middleware.ActingUserId(c), id); err != nil {
		apierror.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
