// Package directory is the worker-facing client of the service directory:
// self-registration with an in-process fast path, discovery, and a renewal
// loop that keeps an instance visible past the staleness timeout.
package directory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"citydirectory/auth"
	"citydirectory/domain"
	"citydirectory/handlers"
	"citydirectory/helpers"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// DefaultCallTimeout bounds one remote round-trip.
const DefaultCallTimeout = 5 * time.Second

// DefaultRenewInterval is how often KeepRegistered re-registers. A third of
// the staleness timeout leaves two retries before an entry would expire.
const DefaultRenewInterval = domain.ServiceTimeout / 3

// LocalRegistrar is the in-process fast path: when the directory lives in
// the same process, its handler is injected here and registration skips the
// network round-trip entirely. The handlers gRPC server satisfies this.
type LocalRegistrar interface {
	Register(ctx context.Context, info *handlers.ServiceInfo) (*handlers.Confirmation, error)
}

// Options configures a Client.
type Options struct {
	// Target is the directory's well-known address (host:port). Required.
	Target string
	// APIKey is the shared secret attached to every call. Required.
	APIKey string
	// Local, when set, is tried before the remote path.
	Local LocalRegistrar
	// CallTimeout bounds each remote round-trip. Defaults to DefaultCallTimeout.
	CallTimeout time.Duration
	// Logger is required.
	Logger log.Logger
	// DialOptions are appended to the defaults when opening a transport.
	DialOptions []grpc.DialOption
}

// Client talks to the service directory on behalf of a worker. Transports
// are opened per call and released on every exit path; the client holds no
// long-lived connection.
type Client struct {
	target      string
	apiKey      string
	local       LocalRegistrar
	callTimeout time.Duration
	logger      log.Logger
	dialOptions []grpc.DialOption
}

// NewClient creates a directory client. Panics on missing target, API key
// or logger.
func NewClient(opts Options) *Client {
	timeout := opts.CallTimeout
	if timeout <= 0 {
		timeout = DefaultCallTimeout
	}
	return &Client{
		target:      helpers.StrPanic(opts.Target, "directory.client.go: target is required"),
		apiKey:      helpers.StrPanic(opts.APIKey, "directory.client.go: api key is required"),
		local:       opts.Local,
		callTimeout: timeout,
		logger:      log.WithPrefix(helpers.NilPanic(opts.Logger, "directory.client.go: logger is required"), "component", "directory_client"),
		dialOptions: opts.DialOptions,
	}
}

// NewServiceID generates a per-instance identifier for the given kind.
func NewServiceID(kind domain.ServiceKind) string {
	return fmt.Sprintf("%s-%s", kind, uuid.NewString())
}

// RegisterSelf announces a worker of the given kind at address, with a
// freshly generated service id. It tries the local fast path first when one
// was injected, then falls back to the remote path. Failure of both is
// returned to the caller: inability to register is a deployment error, not
// something to swallow. Returns the generated service id.
func (c *Client) RegisterSelf(ctx context.Context, kind domain.ServiceKind, address string) (string, error) {
	record := domain.ServiceRecord{
		ServiceType: kind.String(),
		ServiceID:   NewServiceID(kind),
		Address:     address,
	}
	if err := c.register(ctx, record); err != nil {
		return "", err
	}
	return record.ServiceID, nil
}

// KeepRegistered registers the worker and then re-registers it every
// interval (DefaultRenewInterval when <= 0), keeping the same service id,
// until ctx is cancelled. The initial registration failing is fatal;
// renewal failures are logged and retried on the next tick, since the entry
// stays live for the full staleness timeout.
func (c *Client) KeepRegistered(ctx context.Context, kind domain.ServiceKind, address string, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultRenewInterval
	}
	record := domain.ServiceRecord{
		ServiceType: kind.String(),
		ServiceID:   NewServiceID(kind),
		Address:     address,
	}

	if err := c.register(ctx, record); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := c.register(ctx, record); err != nil {
				level.Warn(c.logger).Log(
					"msg", "registration renewal failed",
					"service_id", record.ServiceID,
					"err", err,
				)
			}
		}
	}
}

// ListServices returns the live instances of the given type, or of every
// type when serviceType is empty, materializing the discovery stream.
func (c *Client) ListServices(ctx context.Context, serviceType string) ([]domain.ServiceRecord, error) {
	conn, err := c.dial()
	if err != nil {
		return nil, fmt.Errorf("failed to reach directory at %s: %w", c.target, err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()

	stream, err := handlers.NewDirectoryClient(conn).DiscoverServices(ctx, &handlers.ServiceFilter{ServiceType: serviceType})
	if err != nil {
		return nil, fmt.Errorf("service discovery failed: %w", err)
	}

	var records []domain.ServiceRecord
	for {
		info, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, fmt.Errorf("service discovery failed: %w", err)
		}
		records = append(records, domain.ServiceRecord{
			ServiceType: info.GetServiceType(),
			ServiceID:   info.GetServiceId(),
			Address:     info.GetAddress(),
		})
	}
}

func (c *Client) register(ctx context.Context, record domain.ServiceRecord) error {
	info := &handlers.ServiceInfo{
		ServiceType: record.ServiceType,
		ServiceId:   record.ServiceID,
		Address:     record.Address,
	}

	if c.local != nil {
		conf, err := c.local.Register(ctx, info)
		if err == nil {
			level.Info(c.logger).Log(
				"msg", "local registration successful",
				"service_type", record.ServiceType,
				"address", record.Address,
				"status", conf.GetStatus(),
			)
			return nil
		}
		level.Error(c.logger).Log("msg", "local registration failed, attempting remote registration", "err", err)
	}

	conf, err := c.registerRemote(ctx, info)
	if err != nil {
		return fmt.Errorf("service registration failed for %s at %s: %w", record.ServiceType, record.Address, err)
	}
	level.Info(c.logger).Log(
		"msg", "remote registration successful",
		"service_type", record.ServiceType,
		"address", record.Address,
		"status", conf.GetStatus(),
	)
	return nil
}

// registerRemote opens a transport to the directory, performs the Register
// call, and releases the transport whatever the outcome.
func (c *Client) registerRemote(ctx context.Context, info *handlers.ServiceInfo) (*handlers.Confirmation, error) {
	conn, err := c.dial()
	if err != nil {
		return nil, fmt.Errorf("failed to reach directory at %s: %w", c.target, err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()

	return handlers.NewDirectoryClient(conn).Register(ctx, info)
}

func (c *Client) dial() (*grpc.ClientConn, error) {
	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithChainUnaryInterceptor(auth.UnaryClientInterceptor(c.apiKey)),
		grpc.WithChainStreamInterceptor(auth.StreamClientInterceptor(c.apiKey)),
	}
	opts = append(opts, c.dialOptions...)
	return grpc.NewClient(c.target, opts...)
}
