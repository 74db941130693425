package service

import (
	"context"
	"errors"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// directoryErrorCodeToGRPCCode maps DirectoryError codes to gRPC status codes.
func directoryErrorCodeToGRPCCode(code string) codes.Code {
	switch code {
	case ErrBadParameter:
		return codes.InvalidArgument
	case ErrEntityNotFound:
		return codes.NotFound
	case ErrUnauthenticated:
		return codes.Unauthenticated
	case ErrInternalServerError:
		return codes.Internal
	default:
		return codes.Unknown
	}
}

// DirectoryErrorToGRPC converts an error to a gRPC status error. DirectoryError
// is mapped to the corresponding gRPC code and message; a status error passes
// through unchanged; anything else becomes codes.Unknown with "internal error".
func DirectoryErrorToGRPC(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	var dirErr DirectoryError
	if errors.As(err, &dirErr) {
		return status.Error(directoryErrorCodeToGRPCCode(dirErr.Code), dirErr.Message)
	}
	return status.Error(codes.Unknown, "internal error")
}

// DirectoryErrorToGRPCInterceptor returns a unary server interceptor that
// converts handler errors to gRPC status errors and logs them.
func DirectoryErrorToGRPCInterceptor(logger log.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err != nil {
			logHandlerError(logger, info.FullMethod, err)
			err = DirectoryErrorToGRPC(err)
		}
		return resp, err
	}
}

// DirectoryErrorToGRPCStreamInterceptor is the stream-side counterpart of
// DirectoryErrorToGRPCInterceptor, needed because discovery is server-streaming.
func DirectoryErrorToGRPCStreamInterceptor(logger log.Logger) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		err := handler(srv, ss)
		if err != nil {
			logHandlerError(logger, info.FullMethod, err)
			err = DirectoryErrorToGRPC(err)
		}
		return err
	}
}

func logHandlerError(logger log.Logger, method string, err error) {
	var dirErr DirectoryError
	if errors.As(err, &dirErr) {
		level.Info(logger).Log(
			"msg", "gRPC handler error",
			"method", method,
			"error_code", dirErr.Code,
			"error_message", dirErr.Message,
			"error", err,
		)
		return
	}
	level.Error(logger).Log(
		"msg", "gRPC handler error",
		"method", method,
		"err", err,
	)
}
