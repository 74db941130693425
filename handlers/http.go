package handlers

import (
	"net/http"

	"citydirectory/domain"
	"citydirectory/helpers"
	"citydirectory/interfaces"
	"citydirectory/service"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
)

// HTTPServer is the read-only HTTP surface over the store, for consumers
// that cannot speak gRPC. Mutations go through the gRPC Directory service
// only.
type HTTPServer struct {
	store  interfaces.Store
	logger log.Logger
}

// NewHTTPServer creates a new HTTPServer.
func NewHTTPServer(store interfaces.Store, logger log.Logger) *HTTPServer {
	logger = log.WithPrefix(logger, "component", "HTTPServer")
	return &HTTPServer{
		store:  helpers.NilPanic(store, "handlers.http.go: store is required"),
		logger: logger,
	}
}

// RegisterRoutes mounts the discovery routes on e.
func RegisterRoutes(e *echo.Echo, server *HTTPServer) {
	e.GET("/v1/services", server.GetServices)
}

// serviceJSON is one element of the services array in the response.
type serviceJSON struct {
	ServiceType string `json:"service_type"`
	ServiceID   string `json:"service_id"`
	Address     string `json:"address"`
}

// servicesResponse is the JSON shape of GET /v1/services.
type servicesResponse struct {
	Services []serviceJSON `json:"services"`
}

// GetServices (GET /v1/services?service_type=) returns the non-stale records
// matching the optional type filter. Returns 404 (entity_not_found) when
// nothing matches, mirroring the gRPC surface's empty stream.
func (h *HTTPServer) GetServices(ectx echo.Context) error {
	serviceType := ectx.QueryParam("service_type")

	records := h.store.Query(serviceType)
	if len(records) == 0 {
		return service.NewEntityNotFoundError("no services found", nil)
	}

	return ectx.JSON(http.StatusOK, toServicesResponse(records))
}

func toServicesResponse(records []domain.ServiceRecord) servicesResponse {
	services := make([]serviceJSON, 0, len(records))
	for _, r := range records {
		services = append(services, serviceJSON{
			ServiceType: r.ServiceType,
			ServiceID:   r.ServiceID,
			Address:     r.Address,
		})
	}
	return servicesResponse{Services: services}
}
