package grpc

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/freshify/internal/common"
	"github.com/dmitrijs2005/freshify/internal/inventory"
)

func TestToStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode codes.Code
		wantMsg  string
	}{
		{"validation", common.NewValidationError("quantity", "must be >= 0"), codes.InvalidArgument, "invalid argument: quantity must be >= 0"},
		{"authorization", common.ErrAuthorization, codes.PermissionDenied, "forbidden"},
		{"not found or forbidden", fmt.Errorf("x: %w", common.ErrNotFoundOrForbidden), codes.NotFound, "not found"},
		{"not found", common.ErrNotFound, codes.NotFound, "not found"},
		{"completed", &inventory.ErrIllegalTransition{From: inventory.Completed, Via: inventory.Waste}, codes.FailedPrecondition, "illegal transition waste from completed"},
		{"exists", common.ErrAlreadyExists, codes.AlreadyExists, "already exists"},
		{"unauthorized", common.ErrorUnauthorized, codes.Unauthenticated, "unauthorized"},
		{"refresh expired", common.ErrRefreshTokenExpired, codes.Unauthenticated, "refresh token expired"},
		{"remote", &common.RemoteServiceError{Service: "analysis", Message: "no food items detected"}, codes.Unavailable, "could not analyze image: no food items detected"},
		{"remote without message", &common.RemoteServiceError{Service: "analysis", Err: errors.New("eof")}, codes.Unavailable, "could not analyze image"},
		{"storage", fmt.Errorf("db error: %w: %w", common.ErrStorage, errors.New("conn reset")), codes.Internal, "could not save"},
		{"unknown", errors.New("boom"), codes.Internal, "internal error"},
		{"already a status", status.Error(codes.Aborted, "x"), codes.Aborted, "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := toStatus(tt.err, msgAnalysisFailed)
			st := status.Convert(err)
			assert.Equal(t, tt.wantCode, st.Code())
			assert.Equal(t, tt.wantMsg, st.Message())
		})
	}

	assert.NoError(t, toStatus(nil, msgInternal))
}
