package service

import (
	"net/http"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

// RegisterErrorHandler registers the custom error handler on the echo instance.
func RegisterErrorHandler(e *echo.Echo, logger log.Logger) {
	e.HTTPErrorHandler = NewHTTPErrorHandler(NewErrorCodeToStatusCodeMaps(), logger).Handler
}

// NewErrorCodeToStatusCodeMaps creates an error code to http status mapping.
func NewErrorCodeToStatusCodeMaps() map[string]int {
	var errorCodeToStatusCodeMaps = make(map[string]int)
	errorCodeToStatusCodeMaps[ErrBadParameter] = http.StatusBadRequest
	errorCodeToStatusCodeMaps[ErrEntityNotFound] = http.StatusNotFound
	errorCodeToStatusCodeMaps[ErrUnauthenticated] = http.StatusUnauthorized
	errorCodeToStatusCodeMaps[ErrInternalServerError] = http.StatusInternalServerError

	return errorCodeToStatusCodeMaps
}

// HTTPErrorHandler maps DirectoryError codes to HTTP status codes and renders
// the {"error":{code,message}} body used by the read-only discovery surface.
type HTTPErrorHandler struct {
	errorCodeToHTTPStatusCodeMap map[string]int
	logger                       log.Logger
}

// NewHTTPErrorHandler creates a new instance of the HTTPErrorHandler.
func NewHTTPErrorHandler(errorCodeToStatusCodeMaps map[string]int, logger log.Logger) *HTTPErrorHandler {
	return &HTTPErrorHandler{
		errorCodeToHTTPStatusCodeMap: errorCodeToStatusCodeMaps,
		logger:                       logger,
	}
}

func (h *HTTPErrorHandler) getStatusCode(errorCode string) int {
	status, ok := h.errorCodeToHTTPStatusCodeMap[errorCode]
	if ok {
		return status
	}

	return http.StatusInternalServerError
}

// Handler handles errors returned by echo handlers.
func (h *HTTPErrorHandler) Handler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	dirErr := ToDirectoryError(err)
	if dirErr == nil {
		dirErr = &DirectoryError{Code: ErrInternalServerError, Message: "an internal server error has occurred", Inner: err}
	}

	var statusCode int
	if he, ok := err.(*echo.HTTPError); ok {
		m, _ := he.Message.(string)
		dirErr = &DirectoryError{Code: ErrInternalServerError, Message: m, Inner: err}
		statusCode = he.Code
	} else {
		statusCode = h.getStatusCode(dirErr.Code)
	}

	level.Error(h.logger).Log(
		"msg", "HTTP request error",
		"err", err,
	)

	if !c.Response().Committed {
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(statusCode)
		} else {
			_ = c.JSON(statusCode, ErrResponse{Error: dirErr})
		}
	}
}

// ErrResponse from server.
type ErrResponse struct {
	Error *DirectoryError `json:"error,omitempty"`
}
