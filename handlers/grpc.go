// Package handlers contains the gRPC and HTTP surfaces of the directory.
//
//go:generate protoc --proto_path=.. --go_out=.. --go-grpc_out=.. --go_opt=module=citydirectory --go-grpc_opt=module=citydirectory ../api/directory.proto
package handlers

import (
	"context"

	"citydirectory/domain"
	"citydirectory/helpers"
	"citydirectory/interfaces"
	"citydirectory/metrics"
	"citydirectory/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"google.golang.org/grpc"
)

// Status texts returned in Confirmation. Both are successful outcomes; the
// distinction is informational only.
const (
	StatusRegistered = "Service registered successfully"
	StatusUpdated    = "Service registration updated"
)

// grpcServer implements the Directory service: Register and DiscoverServices
// over the store. It performs no network I/O of its own beyond the stream it
// is handed; all store access is a brief critical section.
type grpcServer struct {
	UnimplementedDirectoryServer
	store     interfaces.Store
	collector *metrics.Collector
	logger    log.Logger
}

// NewGrpcServer creates the Directory handler. Panics on nil dependencies.
func NewGrpcServer(store interfaces.Store, collector *metrics.Collector, logger log.Logger) *grpcServer {
	return &grpcServer{
		store:     helpers.NilPanic(store, "handlers.grpc.go: store is required"),
		collector: helpers.NilPanic(collector, "handlers.grpc.go: collector is required"),
		logger:    log.WithPrefix(helpers.NilPanic(logger, "handlers.grpc.go: logger is required"), "component", "directory"),
	}
}

// Register validates the record and inserts or refreshes its entry. The
// store is not touched when validation fails.
func (s *grpcServer) Register(ctx context.Context, req *ServiceInfo) (*Confirmation, error) {
	if req == nil {
		return nil, service.NewBadParameterError("request is nil", nil)
	}

	record := domain.ServiceRecord{
		ServiceType: req.ServiceType,
		ServiceID:   req.ServiceId,
		Address:     req.Address,
	}
	if err := record.Validate(); err != nil {
		s.collector.RecordRejection()
		return nil, service.NewBadParameterError(err.Error(), nil)
	}

	isNew := s.store.Put(record)
	s.collector.RecordRegistration(isNew)
	s.collector.SetRegisteredServices(s.store.Size())

	status := StatusUpdated
	if isNew {
		status = StatusRegistered
	}
	level.Info(s.logger).Log(
		"msg", status,
		"service_type", record.ServiceType,
		"service_id", record.ServiceID,
		"address", record.Address,
	)

	return &Confirmation{Status: status}, nil
}

// DiscoverServices streams the non-stale records matching the filter, one
// at a time. The snapshot is taken at call time; registrations arriving
// afterwards are not guaranteed to appear. A well-formed (possibly empty)
// filter never fails; if the client disconnects mid-stream the handler
// stops producing rather than erroring.
func (s *grpcServer) DiscoverServices(req *ServiceFilter, stream grpc.ServerStreamingServer[ServiceInfo]) error {
	serviceType := req.GetServiceType()
	records := s.store.Query(serviceType)

	ctx := stream.Context()
	sent := 0
	for _, record := range records {
		select {
		case <-ctx.Done():
			level.Debug(s.logger).Log("msg", "discovery stream cancelled", "sent", sent)
			return nil
		default:
		}
		err := stream.Send(&ServiceInfo{
			ServiceType: record.ServiceType,
			ServiceId:   record.ServiceID,
			Address:     record.Address,
		})
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		sent++
	}

	level.Info(s.logger).Log("msg", "discovery completed", "service_type", serviceType, "sent", sent)
	return nil
}
