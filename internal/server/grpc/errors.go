package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/vaultshare/internal/common"
)

// toStatus maps a service error onto a gRPC status whose message is the
// stable code from common.Code. Unknown errors are logged and hidden.
func (s *GRPCServer) toStatus(ctx context.Context, method string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	switch {
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}

	var code codes.Code
	switch {
	case errors.Is(err, common.ErrNotFound):
		code = codes.NotFound
	case errors.Is(err, common.ErrAlreadyExists):
		code = codes.AlreadyExists
	case errors.Is(err, common.ErrConflict):
		code = codes.Aborted
	case errors.Is(err, common.ErrAccessDenied):
		code = codes.PermissionDenied
	case errors.Is(err, common.ErrInvalidState), errors.Is(err, common.ErrNotFriends):
		code = codes.FailedPrecondition
	case errors.Is(err, common.ErrShape), errors.Is(err, common.ErrValidation):
		code = codes.InvalidArgument
	case errors.Is(err, common.ErrStoreUnavailable):
		code = codes.Unavailable
	case errors.Is(err, common.ErrUnauthenticated), errors.Is(err, common.ErrInvalidToken):
		code = codes.Unauthenticated
	default:
		s.logger.Error(ctx, "request failed", "method", method, "error", err)
		return status.Error(codes.Internal, common.Code(err))
	}
	s.logger.Debug(ctx, "request rejected", "method", method, "error", err)
	return status.Error(code, common.Code(err))
}
