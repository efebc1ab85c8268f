package impl

import (
	"context"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestClassifyOrderError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want *domainerrors.BaseError
	}{
		{name: "repository permission sentinel", err: errors.Join(repository.ErrPermissionDenied, errors.New("denied")), want: domainerrors.ErrOrderPermissionDenied},
		{name: "grpc permission denied", err: status.Error(codes.PermissionDenied, "missing or insufficient permissions"), want: domainerrors.ErrOrderPermissionDenied},
		{name: "wrapped grpc permission denied", err: errors.Wrap(status.Error(codes.PermissionDenied, "nope"), "create order"), want: domainerrors.ErrOrderPermissionDenied},
		{name: "permission text", err: errors.New("firestore: permission-denied"), want: domainerrors.ErrOrderPermissionDenied},
		{name: "store unavailable sentinel", err: errors.Join(repository.ErrStoreUnavailable, errors.New("dial")), want: domainerrors.ErrOrderNetwork},
		{name: "grpc unavailable", err: status.Error(codes.Unavailable, "connection reset"), want: domainerrors.ErrOrderNetwork},
		{name: "grpc deadline", err: status.Error(codes.DeadlineExceeded, "slow"), want: domainerrors.ErrOrderNetwork},
		{name: "context deadline", err: errors.Wrap(context.DeadlineExceeded, "commit"), want: domainerrors.ErrOrderNetwork},
		{name: "network text", err: errors.New("network is unreachable"), want: domainerrors.ErrOrderNetwork},
		{name: "anything else", err: errors.New("document too large"), want: domainerrors.ErrOrderFailed},
		{name: "grpc internal", err: status.Error(codes.Internal, "boom"), want: domainerrors.ErrOrderFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyOrderError(tt.err)
			assert.True(t, errors.Is(got, tt.want), "got %v", got)
		})
	}
}

func TestClassifyOrderError_KeepsDomainErrors(t *testing.T) {
	err := domainerrors.ErrShippingAddressRequired

	assert.Same(t, err, classifyOrderError(err))
	assert.NoError(t, classifyOrderError(nil))
}

func TestClassifyOrderError_UserMessages(t *testing.T) {
	assert.Equal(t, "You don't have permission to place this order. Please sign in again.", domainerrors.ErrOrderPermissionDenied.Message())
	assert.Equal(t, "Network error. Please check your connection and try again.", domainerrors.ErrOrderNetwork.Message())
	assert.Equal(t, "Failed to place order. Please try again.", domainerrors.ErrOrderFailed.Message())
}
