package apierror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	reasoncodes "sos-api/pkg/reason_codes"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func respond(t *testing.T, err error) (int, map[string]any) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	Respond(c, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestRespond(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name:         "Field error",
			err:          Required("latitude"),
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"latitude": []any{MsgRequired}},
		},
		{
			name:         "Not found as field error stays 400",
			err:          FieldError(reasoncodes.ErrNotFound, "identifier", "missing"),
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"identifier": []any{"missing"}},
		},
		{
			name:         "Not found detail",
			err:          NotFound(),
			expectedCode: http.StatusNotFound,
			expectedBody: map[string]any{"detail": MsgNotFound},
		},
		{
			name:         "Plain error key",
			err:          Plain(reasoncodes.ErrValidation, "Missing is_online field"),
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"error": "Missing is_online field"},
		},
		{
			name:         "Wrapped api error",
			err:          fmt.Errorf("accept: %w", Detail(reasoncodes.ErrAlreadyDone, "done")),
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"detail": "done"},
		},
		{
			name:         "Throttled",
			err:          Detail(reasoncodes.ErrThrottled, "slow down"),
			expectedCode: http.StatusTooManyRequests,
			expectedBody: map[string]any{"detail": "slow down"},
		},
		{
			name:         "Unknown error is hidden",
			err:          errors.New("db exploded"),
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]any{"detail": "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := respond(t, tt.err)
			assert.Equal(t, tt.expectedCode, code)
			assert.Equal(t, tt.expectedBody, body)
		})
	}
}

func TestIs(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", NotFound())
	assert.True(t, Is(err, reasoncodes.ErrNotFound))
	assert.False(t, Is(err, reasoncodes.ErrConflict))
	assert.False(t, Is(errors.New("plain"), reasoncodes.ErrNotFound))
}

func TestParseId(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, raw := range []string{"abc", "0", "-1", ""} {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Params = gin.Params{{Key: "id", Value: raw}}
		_, err := ParseId(c, "id")
		assert.True(t, Is(err, reasoncodes.ErrNotFound), raw)
	}

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Params = gin.Params{{Key: "id", Value: "42"}}
	id, err := ParseId(c, "id")
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
}

type bindInput struct {
	PhoneNumber string `validate:"required"`
	Word        string `validate:"max=3"`
}

func TestFromBindError(t *testing.T) {
	v := validator.New()

	err := FromBindError(v.Struct(bindInput{Word: "ok"}))
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "phone_number", apiErr.Field)
	assert.Equal(t, MsgRequired, apiErr.Message)

	err = FromBindError(v.Struct(bindInput{PhoneNumber: "1", Word: "toolong"}))
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "word", apiErr.Field)
	assert.Equal(t, "Убедитесь, что это значение содержит не более 3 символов.", apiErr.Message)

	err = FromBindError(json.Unmarshal([]byte(`{`), &bindInput{}))
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, map[string]any{"detail": "Некорректный JSON."}, map[string]any(apiErr.Body()))
}
