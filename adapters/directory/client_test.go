package directory

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"citydirectory/auth"
	"citydirectory/domain"
	"citydirectory/handlers"
	"citydirectory/metrics"
	"citydirectory/service"

	"github.com/go-kit/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"
)

const testAPIKey = "test-secret"

// startDirectory runs a real directory gRPC server, auth and error
// interceptors included, on an in-memory listener.
func startDirectory(t *testing.T) (*service.MemoryStore, *bufconn.Listener) {
	t.Helper()

	logger := log.NewNopLogger()
	store := service.NewMemoryStore(func() time.Time { return time.Now().UTC() })
	collector := metrics.NewCollector(prometheus.NewRegistry())
	keys := auth.NewStaticKeyStore(testAPIKey)

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			service.DirectoryErrorToGRPCInterceptor(logger),
			auth.UnaryServerInterceptor(keys, logger),
		),
		grpc.ChainStreamInterceptor(
			service.DirectoryErrorToGRPCStreamInterceptor(logger),
			auth.StreamServerInterceptor(keys, logger),
		),
	)
	handlers.RegisterDirectoryServer(srv, handlers.NewGrpcServer(store, collector, logger))

	lis := bufconn.Listen(1024 * 1024)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	return store, lis
}

func bufDialOption(lis *bufconn.Listener) grpc.DialOption {
	return grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	})
}

func newBufClient(lis *bufconn.Listener, apiKey string, local LocalRegistrar) *Client {
	return NewClient(Options{
		Target:      "passthrough:///bufnet",
		APIKey:      apiKey,
		Local:       local,
		CallTimeout: 2 * time.Second,
		Logger:      log.NewNopLogger(),
		DialOptions: []grpc.DialOption{bufDialOption(lis)},
	})
}

func TestClient_RegisterSelf_Remote(t *testing.T) {
	store, lis := startDirectory(t)
	client := newBufClient(lis, testAPIKey, nil)

	serviceID, err := client.RegisterSelf(context.Background(), domain.KindTraffic, "10.0.0.1:9000")

	require.NoError(t, err)
	assert.Contains(t, serviceID, "traffic-")
	require.Equal(t, 1, store.Size())

	records := store.Query("traffic")
	require.Len(t, records, 1)
	assert.Equal(t, serviceID, records[0].ServiceID)
	assert.Equal(t, "10.0.0.1:9000", records[0].Address)
}

func TestClient_RegisterSelf_InvalidKeyFailsLoudly(t *testing.T) {
	store, lis := startDirectory(t)
	client := newBufClient(lis, "wrong-key", nil)

	_, err := client.RegisterSelf(context.Background(), domain.KindTraffic, "10.0.0.1:9000")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "registration failed")
	assert.Equal(t, 0, store.Size())
}

func TestClient_RegisterSelf_Unreachable(t *testing.T) {
	client := NewClient(Options{
		Target:      "localhost:1", // nothing listens here
		APIKey:      testAPIKey,
		CallTimeout: 200 * time.Millisecond,
		Logger:      log.NewNopLogger(),
	})

	_, err := client.RegisterSelf(context.Background(), domain.KindBin, "10.0.0.1:9000")
	require.Error(t, err)
}

// localRegistrarMock fakes the in-process directory handle.
type localRegistrarMock struct {
	mu           sync.Mutex
	RegisterFunc func(ctx context.Context, info *handlers.ServiceInfo) (*handlers.Confirmation, error)
	calls        []*handlers.ServiceInfo
}

func (m *localRegistrarMock) Register(ctx context.Context, info *handlers.ServiceInfo) (*handlers.Confirmation, error) {
	m.mu.Lock()
	m.calls = append(m.calls, info)
	m.mu.Unlock()
	return m.RegisterFunc(ctx, info)
}

func (m *localRegistrarMock) Calls() []*handlers.ServiceInfo {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*handlers.ServiceInfo(nil), m.calls...)
}

func TestClient_RegisterSelf_LocalFastPath(t *testing.T) {
	local := &localRegistrarMock{
		RegisterFunc: func(ctx context.Context, info *handlers.ServiceInfo) (*handlers.Confirmation, error) {
			return &handlers.Confirmation{Status: handlers.StatusRegistered}, nil
		},
	}
	// target points nowhere: the local path must win without dialing
	client := NewClient(Options{
		Target: "localhost:1",
		APIKey: testAPIKey,
		Local:  local,
		Logger: log.NewNopLogger(),
	})

	_, err := client.RegisterSelf(context.Background(), domain.KindNoise, "10.0.0.5:9000")

	require.NoError(t, err)
	require.Len(t, local.Calls(), 1)
	assert.Equal(t, "noise", local.Calls()[0].GetServiceType())
}

func TestClient_RegisterSelf_LocalFailureFallsBackToRemote(t *testing.T) {
	store, lis := startDirectory(t)
	local := &localRegistrarMock{
		RegisterFunc: func(ctx context.Context, info *handlers.ServiceInfo) (*handlers.Confirmation, error) {
			return nil, assert.AnError
		},
	}
	client := newBufClient(lis, testAPIKey, local)

	_, err := client.RegisterSelf(context.Background(), domain.KindBin, "10.0.0.2:9000")

	require.NoError(t, err)
	assert.Len(t, local.Calls(), 1)
	assert.Equal(t, 1, store.Size())
}

func TestClient_ListServices(t *testing.T) {
	store, lis := startDirectory(t)
	store.Put(domain.ServiceRecord{ServiceType: "traffic", ServiceID: "t1", Address: "10.0.0.1:9000"})
	store.Put(domain.ServiceRecord{ServiceType: "bin", ServiceID: "b1", Address: "10.0.0.2:9000"})

	client := newBufClient(lis, testAPIKey, nil)

	all, err := client.ListServices(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	traffic, err := client.ListServices(context.Background(), "traffic")
	require.NoError(t, err)
	require.Len(t, traffic, 1)
	assert.Equal(t, "t1", traffic[0].ServiceID)

	none, err := client.ListServices(context.Background(), "noise")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestClient_KeepRegistered_RenewsSameID(t *testing.T) {
	renewed := make(chan *handlers.ServiceInfo, 16)
	local := &localRegistrarMock{
		RegisterFunc: func(ctx context.Context, info *handlers.ServiceInfo) (*handlers.Confirmation, error) {
			renewed <- info
			return &handlers.Confirmation{Status: handlers.StatusUpdated}, nil
		},
	}
	client := NewClient(Options{
		Target: "localhost:1",
		APIKey: testAPIKey,
		Local:  local,
		Logger: log.NewNopLogger(),
	})

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- client.KeepRegistered(ctx, domain.KindTraffic, "10.0.0.1:9000", 10*time.Millisecond)
	}()

	var ids []string
	for len(ids) < 3 {
		select {
		case info := <-renewed:
			ids = append(ids, info.GetServiceId())
		case <-time.After(time.Second):
			t.Fatal("renewal never happened")
		}
	}
	cancel()

	require.ErrorIs(t, <-errCh, context.Canceled)
	// the identity is stable across renewals
	assert.Equal(t, ids[0], ids[1])
	assert.Equal(t, ids[0], ids[2])
}

func TestClient_KeepRegistered_InitialFailureIsFatal(t *testing.T) {
	client := NewClient(Options{
		Target:      "localhost:1",
		APIKey:      testAPIKey,
		CallTimeout: 200 * time.Millisecond,
		Logger:      log.NewNopLogger(),
	})

	err := client.KeepRegistered(context.Background(), domain.KindTraffic, "10.0.0.1:9000", 10*time.Millisecond)
	require.Error(t, err)
	require.NotErrorIs(t, err, context.Canceled)
}

func TestNewServiceID(t *testing.T) {
	a := NewServiceID(domain.KindTraffic)
	b := NewServiceID(domain.KindTraffic)

	assert.Contains(t, a, "traffic-")
	assert.NotEqual(t, a, b)
}
