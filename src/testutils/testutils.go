// Package testutils holds fixtures shared by the package tests.
package testutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"sos-api/src/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var userSeq atomic.Uint64

// CreateUser inserts a user with unique email and phone. identifier may be empty.
func CreateUser(t testing.TB, db *gorm.DB, firstName, identifier string) model.User {
	t.Helper()

	n := userSeq.Add(1)
	user := model.User{
		Email:       fmt.Sprintf("user%d@example.com", n),
		PhoneNumber: fmt.Sprintf("+7900%07d", n),
		FirstName:   firstName,
		LastName:    "Test",
		Username:    fmt.Sprintf("user%d", n),
		Role:        model.RoleUser,
	}
	if identifier != "" {
		user.Identifier = &identifier
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	return user
}

// Request sends a JSON request through the router and returns the recorder.
func Request(t testing.TB, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("Failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// DecodeBody unmarshals the recorder body into T.
func DecodeBody[T any](t testing.TB, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("Failed to decode body %q: %v", w.Body.String(), err)
	}
	return out
}

func NewRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}
