package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPErrorHandler(t *testing.T) {
	tests := []struct {
		name           string
		handler        echo.HandlerFunc
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "bad parameter",
			handler: func(c echo.Context) error {
				return NewBadParameterError("invalid filter", nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   ErrBadParameter,
		},
		{
			name: "entity not found",
			handler: func(c echo.Context) error {
				return NewEntityNotFoundError("no services found", nil)
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   ErrEntityNotFound,
		},
		{
			name: "unauthenticated",
			handler: func(c echo.Context) error {
				return NewUnauthenticatedError("invalid API key", nil)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   ErrUnauthenticated,
		},
		{
			name: "plain error becomes internal",
			handler: func(c echo.Context) error {
				return assert.AnError
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   ErrInternalServerError,
		},
		{
			name: "echo http error keeps status",
			handler: func(c echo.Context) error {
				return echo.NewHTTPError(http.StatusNotFound, "Not Found")
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   ErrInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			RegisterErrorHandler(e, log.NewNopLogger())
			e.GET("/boom", tt.handler)

			req := httptest.NewRequest(http.MethodGet, "/boom", nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			var body ErrResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.expectedCode, body.Error.Code)
		})
	}
}

func TestHTTPErrorHandler_UnknownCodeDefaultsToInternal(t *testing.T) {
	h := NewHTTPErrorHandler(NewErrorCodeToStatusCodeMaps(), log.NewNopLogger())
	assert.Equal(t, http.StatusInternalServerError, h.getStatusCode("no_such_code"))
}
