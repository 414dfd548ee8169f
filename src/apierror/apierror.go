package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"sos-api/pkg/logger"
	reasoncodes "sos-api/pkg/reason_codes"

	"github.com/gin-gonic/gin"
)

const (
	MsgRequired = "Обязательное поле."
	MsgBlank    = "Это поле не может быть пустым."
	MsgNotFound = "Не найдено."
)

type responseKind int

const (
	kindField responseKind = iota
	kindDetail
	kindError
)

// Error is a domain failure that knows how it is rendered to a client.
type Error struct {
	Reason  reasoncodes.ReasonCode
	Field   string
	Message string
	kind    responseKind
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Reason, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Reason, e.Message)
}

// FieldError renders as {"<field>": ["<message>"]}.
func FieldError(reason reasoncodes.ReasonCode, field, message string) *Error {
	return &Error{Reason: reason, Field: field, Message: message, kind: kindField}
}

// Detail renders as {"detail": "<message>"}.
func Detail(reason reasoncodes.ReasonCode, message string) *Error {
	return &Error{Reason: reason, Message: message, kind: kindDetail}
}

// Plain renders as {"error": "<message>"}.
func Plain(reason reasoncodes.ReasonCode, message string) *Error {
	return &Error{Reason: reason, Message: message, kind: kindError}
}

func NotFound() *Error {
	return Detail(reasoncodes.ErrNotFound, MsgNotFound)
}

func Required(field string) *Error {
	return FieldError(reasoncodes.ErrValidation, field, MsgRequired)
}

func Blank(field string) *Error {
	return FieldError(reasoncodes.ErrValidation, field, MsgBlank)
}

// Is reports whether err is an *Error carrying the given reason.
func Is(err error, reason reasoncodes.ReasonCode) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Reason == reason
}

func (e *Error) Status() int {
	switch e.Reason {
	case reasoncodes.ErrNotFound:
		if e.kind == kindField {
			return http.StatusBadRequest
		}
		return http.StatusNotFound
	case reasoncodes.ErrUnauthorized:
		return http.StatusUnauthorized
	case reasoncodes.ErrThrottled:
		return http.StatusTooManyRequests
	default:
		return http.StatusBadRequest
	}
}

func (e *Error) Body() gin.H {
	switch e.kind {
	case kindField:
		return gin.H{e.Field: []string{e.Message}}
	case kindError:
		return gin.H{"error": e.Message}
	default:
		return gin.H{"detail": e.Message}
	}
}

// Respond writes err to the client. Anything that is not an *Error is logged and hidden
// behind a 500.
func Respond(c *gin.Context, err error) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		c.AbortWithStatusJSON(apiErr.Status(), apiErr.Body())
		return
	}

	logger.FromContext(c.Request.Context()).Errorf(err, "Unhandled error on %s %s", c.Request.Method, c.FullPath())
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
}

// ParseId reads a positive integer path parameter; anything else is reported as not found.
func ParseId(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, NotFound()
	}
	return uint(id), nil
}
