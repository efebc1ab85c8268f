package firestore

import (
	"context"
	"strings"

	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// translateError joins gRPC failures with the repository failure kinds and
// wraps the result with message.
func translateError(err error, message string) error {
	if err == nil {
		return nil
	}

	wrapped := errors.Wrap(err, message)

	switch status.Code(err) {
	case codes.PermissionDenied, codes.Unauthenticated:
		return errors.Join(repository.ErrPermissionDenied, wrapped)
	case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted:
		return errors.Join(repository.ErrStoreUnavailable, wrapped)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return errors.Join(repository.ErrStoreUnavailable, wrapped)
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "permission-denied") || strings.Contains(msg, "permission denied") {
		return errors.Join(repository.ErrPermissionDenied, wrapped)
	}

	return wrapped
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

func isAlreadyExists(err error) bool {
	return status.Code(err) == codes.AlreadyExists
}
