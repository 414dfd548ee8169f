package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"sos-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const (
	actingUserKey   = "acting_user_id"
	userIdClaim     = "user_id"
	tokenTypeClaim  = "token_type"
	msgNoCredential = "Authentication credentials were not provided."
	msgInvalidToken = "Given token not valid for any token type"
	msgUserNotFound = "User not found"
)

type UserChecker interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

// ActingUserMiddleware verifies the HS256 bearer token issued by the auth provider and
// stores its user_id claim on the context. With a non-nil users the claimed user must
// still exist.
func ActingUserMiddleware(secret []byte, users UserChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, found := strings.CutPrefix(header, "Bearer ")
		if header == "" || !found || strings.TrimSpace(raw) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": msgNoCredential})
			return
		}

		userId, ok := parseActingUser(strings.TrimSpace(raw), secret)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": msgInvalidToken})
			return
		}

		if users != nil {
			exists, err := users.Exists(c.Request.Context(), userId)
			if err != nil {
				logger.FromContext(c.Request.Context()).Errorf(err, "Could not look up user %d", userId)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
				return
			}
			if !exists {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": msgUserNotFound})
				return
			}
		}

		c.Set(actingUserKey, userId)
		requestLogger := logger.FromContext(c.Request.Context()).WithField("user_id", userId)
		c.Request = c.Request.WithContext(requestLogger.IntoContext(c.Request.Context()))
		c.Next()
	}
}

func parseActingUser(raw string, secret []byte) (uint, bool) {
	token, err := jwt.Parse([]byte(raw), jwt.WithKey(jwa.HS256, secret), jwt.WithValidate(true))
	if err != nil {
		return 0, false
	}

	if tokenType, ok := token.Get(tokenTypeClaim); ok && tokenType != "access" {
		return 0, false
	}

	claim, ok := token.Get(userIdClaim)
	if !ok {
		return 0, false
	}
	return claimToId(claim)
}

func claimToId(claim any) (uint, bool) {
	var (
		id  uint64
		err error
	)
	switch v := claim.(type) {
	case float64:
		if v <= 0 || v != float64(uint64(v)) {
			return 0, false
		}
		id = uint64(v)
	case json.Number:
		id, err = strconv.ParseUint(v.String(), 10, 64)
	case string:
		id, err = strconv.ParseUint(v, 10, 64)
	default:
		return 0, false
	}
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// ActingUserId returns the user authenticated by ActingUserMiddleware.
func ActingUserId(c *gin.Context) uint {
	return c.GetUint(actingUserKey)
}

// SetActingUser is used by tests that bypass token verification.
func SetActingUser(userId uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(actingUserKey, userId)
		c.Next()
	}
}
