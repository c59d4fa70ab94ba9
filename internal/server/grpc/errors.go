package grpc

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/freshify/internal/common"
	"github.com/dmitrijs2005/freshify/internal/inventory"
)

// Status messages the client matches on.
const (
	msgAnalysisFailed = "could not analyze image"
	msgRecipeFailed   = "could not suggest recipe"
	msgSaveFailed     = "could not save"
	msgInternal       = "internal error"
)

// toStatus maps the error taxonomy onto gRPC codes. Validation messages are
// passed through; infrastructure details are not.
func toStatus(err error, remoteMsg string) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	var (
		re      *common.RemoteServiceError
		illegal *inventory.ErrIllegalTransition
	)
	switch {
	case errors.Is(err, common.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrAuthorization):
		return status.Error(codes.PermissionDenied, "forbidden")
	case errors.Is(err, common.ErrNotFoundOrForbidden), errors.Is(err, common.ErrNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.As(err, &illegal):
		return status.Error(codes.FailedPrecondition, illegal.Error())
	case errors.Is(err, common.ErrAlreadyExists):
		return status.Error(codes.AlreadyExists, "already exists")
	case errors.Is(err, common.ErrRefreshTokenExpired):
		return status.Error(codes.Unauthenticated, common.ErrRefreshTokenExpired.Error())
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.As(err, &re):
		if re.Message != "" {
			return status.Error(codes.Unavailable, remoteMsg+": "+re.Message)
		}
		return status.Error(codes.Unavailable, remoteMsg)
	case errors.Is(err, common.ErrStorage):
		return status.Error(codes.Internal, msgSaveFailed)
	default:
		return status.Error(codes.Internal, msgInternal)
	}
}
