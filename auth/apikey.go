// Package auth gates every directory call with a shared-secret API key
// carried in request metadata. It runs at the transport boundary: the
// protocol handlers never see an unauthenticated call.
package auth

import (
	"context"

	"citydirectory/helpers"
	"citydirectory/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// APIKeyHeader is the metadata key carrying the shared secret, on both the
// client and the server side.
const APIKeyHeader = "x-api-key"

const (
	msgMissingAPIKey     = "missing API key"
	msgInvalidAPIKey     = "invalid API key"
	msgInternalAuthError = "internal authentication error"
)

// UnaryServerInterceptor rejects unary calls that lack a valid API key.
func UnaryServerInterceptor(keys interfaces.KeyStore, logger log.Logger) grpc.UnaryServerInterceptor {
	keys = helpers.NilPanic(keys, "auth.apikey.go: key store is required")
	logger = log.WithPrefix(helpers.NilPanic(logger, "auth.apikey.go: logger is required"), "component", "auth")
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if err := authenticate(ctx, keys, logger, info.FullMethod); err != nil {
			return nil, err
		}
		return handler(ctx, req)
	}
}

// StreamServerInterceptor rejects streaming calls that lack a valid API key.
func StreamServerInterceptor(keys interfaces.KeyStore, logger log.Logger) grpc.StreamServerInterceptor {
	keys = helpers.NilPanic(keys, "auth.apikey.go: key store is required")
	logger = log.WithPrefix(helpers.NilPanic(logger, "auth.apikey.go: logger is required"), "component", "auth")
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		if err := authenticate(ss.Context(), keys, logger, info.FullMethod); err != nil {
			return err
		}
		return handler(srv, ss)
	}
}

// authenticate extracts the API key from incoming metadata and checks it
// against the key store. A store failure maps to Internal, never to a
// silent accept.
func authenticate(ctx context.Context, keys interfaces.KeyStore, logger log.Logger, method string) error {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return status.Error(codes.Unauthenticated, msgMissingAPIKey)
	}
	vals := md.Get(APIKeyHeader)
	if len(vals) == 0 || vals[0] == "" {
		return status.Error(codes.Unauthenticated, msgMissingAPIKey)
	}

	valid, err := keys.Validate(ctx, vals[0])
	if err != nil {
		level.Error(logger).Log("msg", "key store lookup failed", "method", method, "err", err)
		return status.Error(codes.Internal, msgInternalAuthError)
	}
	if !valid {
		level.Info(logger).Log("msg", "rejected call with invalid API key", "method", method)
		return status.Error(codes.Unauthenticated, msgInvalidAPIKey)
	}
	return nil
}

// UnaryClientInterceptor attaches the API key to every outbound unary call.
func UnaryClientInterceptor(apiKey string) grpc.UnaryClientInterceptor {
	apiKey = helpers.StrPanic(apiKey, "auth.apikey.go: apiKey is required")
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		ctx = metadata.AppendToOutgoingContext(ctx, APIKeyHeader, apiKey)
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}

// StreamClientInterceptor attaches the API key to every outbound stream.
func StreamClientInterceptor(apiKey string) grpc.StreamClientInterceptor {
	apiKey = helpers.StrPanic(apiKey, "auth.apikey.go: apiKey is required")
	return func(ctx context.Context, desc *grpc.StreamDesc, cc *grpc.ClientConn, method string, streamer grpc.Streamer, opts ...grpc.CallOption) (grpc.ClientStream, error) {
		ctx = metadata.AppendToOutgoingContext(ctx, APIKeyHeader, apiKey)
		return streamer(ctx, desc, cc, method, opts...)
	}
}
